package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/whatif/internal/domain"
	"github.com/alexanderramin/whatif/internal/engine"
)

// FormatResult renders the full evaluation output: the portfolio summary,
// the per-project staffing grid, and the bucket utilization matrix.
func FormatResult(result *engine.ScenarioResult) string {
	var b strings.Builder

	b.WriteString(formatSummary(result))
	b.WriteString("\n\n")
	b.WriteString(Header("Projects") + "\n")
	b.WriteString(projectGrid(result))
	b.WriteString("\n" + Header("Bucket utilization") + "\n")
	b.WriteString(utilizationMatrix(result))

	return RenderBox("Scenario result", b.String())
}

func formatSummary(result *engine.ScenarioResult) string {
	parts := []string{
		StyleGreen.Render(fmt.Sprintf("%d staffed", result.StaffedCount)),
		StyleYellow.Render(fmt.Sprintf("%d partial", result.PartialCount)),
		StyleRed.Render(fmt.Sprintf("%d unstaffed", result.UnstaffedCount)),
	}
	line := strings.Join(parts, Dim("  ·  "))
	if result.TotalDeficit > 0 {
		line += "\n" + StyleRed.Render(fmt.Sprintf("Total deficit: %sh", Hours(result.TotalDeficit)))
	} else {
		line += "\n" + StyleGreen.Render("Fully staffed, no deficit")
	}
	return line
}

func projectGrid(result *engine.ScenarioResult) string {
	headers := append([]string{"RANK", "PROJECT", "STATUS"}, result.Months...)
	headers = append(headers, "DEFICIT")

	rows := make([][]string, 0, len(result.Projects))
	for i := range result.Projects {
		out := &result.Projects[i]
		row := []string{
			fmt.Sprintf("%d", out.Rank),
			Bold(out.Name),
			StatusIndicator(out.Overall),
		}
		for _, m := range result.Months {
			row = append(row, monthCell(out.Months[m]))
		}
		deficit := Dim("--")
		if out.TotalDeficit > 0 {
			deficit = StyleRed.Render(Hours(out.TotalDeficit) + "h")
		}
		row = append(row, deficit)
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// monthCell renders one project-month as glyph plus allocated/demand, or a
// dim dot when the month carries no demand.
func monthCell(c engine.MonthCell) string {
	if c.Demand == 0 {
		return StyleDim.Render("·")
	}
	numbers := fmt.Sprintf("%s/%s", Hours(c.Allocated), Hours(c.Demand))
	return StatusGlyph(c.Status) + " " + StatusStyle(c.Status).Render(numbers)
}

func utilizationMatrix(result *engine.ScenarioResult) string {
	keys := make([]domain.BucketKey, 0, len(result.Buckets))
	for k := range result.Buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	headers := append([]string{"BUCKET"}, result.Months...)
	headers = append(headers, "PEAK")
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		u := result.Buckets[k]
		label := fmt.Sprintf("%s / %s / %s", u.Team, u.Role, u.Location)
		if u.IsVirtual {
			label += StylePurple.Render(" (virtual)")
		}
		row := []string{label}
		peak := 0
		for _, m := range result.Months {
			pct := u.UtilizationPct[m]
			if pct > peak {
				peak = pct
			}
			row = append(row, utilizationCell(pct))
		}
		row = append(row, RenderUtilizationBar(peak, 8))
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

func utilizationCell(pct int) string {
	text := fmt.Sprintf("%d%%", pct)
	switch {
	case pct >= 100:
		return StyleRed.Render(text)
	case pct >= 80:
		return StyleYellow.Render(text)
	case pct == 0:
		return Dim(text)
	default:
		return StyleGreen.Render(text)
	}
}
