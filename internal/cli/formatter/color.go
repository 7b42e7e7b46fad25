package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/whatif/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the lipgloss style for a staffing status.
func StatusStyle(status domain.MonthStatus) lipgloss.Style {
	switch status {
	case domain.StatusStaffed:
		return StyleGreen
	case domain.StatusPartial:
		return StyleYellow
	case domain.StatusUnstaffed:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored staffing indicator such as "● STAFFED".
func StatusIndicator(status domain.MonthStatus) string {
	switch status {
	case domain.StatusStaffed:
		return StyleGreen.Render("● STAFFED")
	case domain.StatusPartial:
		return StyleYellow.Render("● PARTIAL")
	case domain.StatusUnstaffed:
		return StyleRed.Render("● UNSTAFFED")
	default:
		return StyleDim.Render("● NO DEMAND")
	}
}

// StatusGlyph returns a compact one-cell status marker for month grids.
func StatusGlyph(status domain.MonthStatus) string {
	switch status {
	case domain.StatusStaffed:
		return StyleGreen.Render("✓")
	case domain.StatusPartial:
		return StyleYellow.Render("◐")
	case domain.StatusUnstaffed:
		return StyleRed.Render("✗")
	default:
		return StyleDim.Render("·")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
