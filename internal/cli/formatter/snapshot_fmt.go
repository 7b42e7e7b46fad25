package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/whatif/internal/domain"
)

// FormatSnapshotList renders a styled snapshot list inside a bordered box.
func FormatSnapshotList(snapshots []*domain.Snapshot) string {
	headers := []string{"ID", "NAME", "SOURCE", "MONTHS", "IMPORTED"}
	rows := make([][]string, 0, len(snapshots))

	for _, s := range snapshots {
		source := s.FileName
		if strings.TrimSpace(source) == "" {
			source = Dim("--")
		}
		window := Dim("--")
		if len(s.Months) > 0 {
			window = fmt.Sprintf("%s-%s", s.Months[0], s.Months[len(s.Months)-1])
		}
		rows = append(rows, []string{
			Dim(TruncID(s.ID)),
			Bold(s.Name),
			source,
			window,
			HumanDate(s.CreatedAt),
		})
	}

	return RenderBox("Snapshots", RenderTable(headers, rows))
}

// FormatSnapshotShow renders snapshot metadata plus its capacity and demand
// tables.
func FormatSnapshotShow(s *domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(s.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), Dim(TruncID(s.ID))))
	if s.FileName != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SOURCE  "), s.FileName))
	}
	if !s.ParsedAt.IsZero() {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PARSED  "), HumanTimestamp(s.ParsedAt)))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("IMPORTED"), HumanTimestamp(s.CreatedAt)))
	b.WriteString("\n")

	b.WriteString(Header("Capacity") + "\n")
	b.WriteString(capacityTable(s))
	b.WriteString("\n")
	b.WriteString(Header("Demand") + "\n")
	b.WriteString(demandTable(s))

	return RenderBox("", b.String())
}

func capacityTable(s *domain.Snapshot) string {
	headers := append([]string{"TEAM", "ROLE", "LOCATION"}, s.Months...)
	rows := make([][]string, 0, len(s.Buckets))
	for i := range s.Buckets {
		b := &s.Buckets[i]
		row := []string{b.Team, b.Role, b.Location}
		for _, m := range s.Months {
			row = append(row, Hours(b.CapacityFor(m)))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

func demandTable(s *domain.Snapshot) string {
	headers := append([]string{"PROJECT", "TEAM", "ROLE", "LOCATION"}, s.Months...)
	headers = append(headers, "TOTAL")
	rows := make([][]string, 0, len(s.Projects))
	for i := range s.Projects {
		p := &s.Projects[i]
		row := []string{Bold(p.Name), p.Team, p.Role, p.Location}
		for _, m := range s.Months {
			row = append(row, Hours(p.DemandFor(m)))
		}
		row = append(row, Hours(p.TotalDemand))
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}
