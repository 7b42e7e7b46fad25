package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/whatif/internal/domain"
)

// FormatScenarioList renders the scenarios of a snapshot with a compact
// summary of which levers each one pulls.
func FormatScenarioList(scenarios []*domain.Scenario) string {
	headers := []string{"ID", "NAME", "LEVERS", "UPDATED"}
	rows := make([][]string, 0, len(scenarios))

	for _, sc := range scenarios {
		rows = append(rows, []string{
			Dim(TruncID(sc.ID)),
			Bold(sc.Name),
			leverSummary(sc),
			HumanDate(sc.UpdatedAt),
		})
	}

	return RenderBox("Scenarios", RenderTable(headers, rows))
}

func leverSummary(sc *domain.Scenario) string {
	var parts []string
	if n := len(sc.VirtualResources); n > 0 {
		parts = append(parts, fmt.Sprintf("%d virtual", n))
	}
	if n := len(sc.TimelineShifts); n > 0 {
		parts = append(parts, fmt.Sprintf("%d shifted", n))
	}
	if len(parts) == 0 {
		return Dim("priority only")
	}
	return strings.Join(parts, ", ")
}

// FormatScenarioShow renders one scenario's full lever state. Project names
// are resolved against the snapshot; ids the snapshot no longer knows render
// as dimmed raw ids.
func FormatScenarioShow(sc *domain.Scenario, snap *domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(sc.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), Dim(TruncID(sc.ID))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SNAPSHOT"), snap.Name))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED "), HumanTimestamp(sc.UpdatedAt)))
	b.WriteString("\n")

	b.WriteString(Header("Priority order") + "\n")
	b.WriteString(priorityTable(sc, snap))

	if len(sc.VirtualResources) > 0 {
		b.WriteString("\n" + Header("Virtual resources") + "\n")
		b.WriteString(FormatVirtualResources(sc.VirtualResources))
	}

	if len(sc.TimelineShifts) > 0 {
		b.WriteString("\n" + Header("Timeline shifts") + "\n")
		b.WriteString(FormatTimelineShifts(sc, snap))
	}

	return RenderBox("", b.String())
}

func priorityTable(sc *domain.Scenario, snap *domain.Snapshot) string {
	headers := []string{"RANK", "PROJECT", "DEMAND", "SHIFT"}
	rows := make([][]string, 0, len(sc.PriorityOrder))
	for i, id := range sc.PriorityOrder {
		name := Dim(TruncID(id))
		demand := Dim("--")
		if p := snap.ProjectByID(id); p != nil {
			name = Bold(p.Name)
			demand = Hours(p.TotalDemand)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			name,
			demand,
			ShiftBadge(sc.ShiftFor(id)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatVirtualResources renders the virtual resource list with 0-based
// indexes, the same indexes "virtual rm" accepts.
func FormatVirtualResources(resources []domain.VirtualResource) string {
	headers := []string{"#", "TEAM", "ROLE", "LOCATION", "HOURS/MO"}
	rows := make([][]string, 0, len(resources))
	for i, v := range resources {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			v.Team,
			v.Role,
			v.Location,
			StylePurple.Render("+" + Hours(v.HoursPerMonth)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTimelineShifts lists the projects with a nonzero shift in priority
// order.
func FormatTimelineShifts(sc *domain.Scenario, snap *domain.Snapshot) string {
	headers := []string{"PROJECT", "SHIFT"}
	var rows [][]string
	for _, id := range sc.PriorityOrder {
		s := sc.ShiftFor(id)
		if s == 0 {
			continue
		}
		name := Dim(TruncID(id))
		if p := snap.ProjectByID(id); p != nil {
			name = Bold(p.Name)
		}
		rows = append(rows, []string{name, ShiftBadge(s)})
	}
	return RenderTable(headers, rows)
}

// ShiftBadge renders a timeline shift as a signed month count. Zero renders
// dimmed since it means no shift.
func ShiftBadge(shift int) string {
	switch {
	case shift > 0:
		return StyleBlue.Render(fmt.Sprintf("+%dmo", shift))
	case shift < 0:
		return StyleBlue.Render(fmt.Sprintf("%dmo", shift))
	default:
		return Dim("--")
	}
}
