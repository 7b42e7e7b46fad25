package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Hours formats an hour amount without trailing decimal noise. Whole values
// print as integers, fractional values keep one decimal place.
func Hours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%d", int64(h))
	}
	return fmt.Sprintf("%.1f", h)
}

// TruncID returns the first 8 characters of an id, or the id itself when
// shorter.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a date with time, for provenance displays.
func HumanTimestamp(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}
