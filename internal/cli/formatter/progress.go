package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderUtilizationBar renders a utilization bar like [████░░░░]  45%.
// Coloring follows utilization semantics: green is healthy headroom, yellow
// is near capacity, red is saturated. Percentages above 100 clamp the bar
// but keep the printed number.
func RenderUtilizationBar(pct int, width int) string {
	if width < 2 {
		width = 2
	}

	clamped := pct
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	filled := clamped * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct >= 100 {
		style = StyleRed
	} else if pct >= 80 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
