// ABOUTME: Shared lipgloss styles for consistent terminal output
// ABOUTME: Defines colors, panels and the availability grading used by reports and forms

package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors - Core palette
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Danger    = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Text      = lipgloss.Color("#F9FAFB") // Light
	Accent    = lipgloss.Color("#8B5CF6") // Lighter purple for highlights

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted)

	// Status indicators
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	StatusWarning = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusCritical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	// Label style for metric names
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Value style for emphasized data
	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)
)

// Grading thresholds in nines
const (
	NinesHigh = 4.0 // 99.99%
	NinesLow  = 2.0 // 99%
)

// ForNines returns the status style for an availability expressed in nines.
// A nil value means a perfect configuration.
func ForNines(nines *float64) lipgloss.Style {
	switch {
	case nines == nil || *nines >= NinesHigh:
		return StatusOK
	case *nines >= NinesLow:
		return StatusWarning
	default:
		return StatusCritical
	}
}

// FormTheme returns the huh theme shared by the menu and input forms
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(Danger)
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(Primary).
		SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(Muted)

	t.Blurred = t.Focused
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	return t
}

// Grade badge colors
var (
	badgeOKBg   = lipgloss.Color("#10B981")
	badgeWarnBg = lipgloss.Color("#F59E0B")
	badgeCritBg = lipgloss.Color("#EF4444")
)

// GradeBadge renders an inline OK, WARN or CRIT badge for an availability
// expressed in nines, using the ForNines thresholds
func GradeBadge(nines *float64) string {
	text, bg, fg := "OK", badgeOKBg, lipgloss.Color("#FFFFFF")
	switch {
	case nines == nil || *nines >= NinesHigh:
	case *nines >= NinesLow:
		text, bg, fg = "WARN", badgeWarnBg, lipgloss.Color("#000000")
	default:
		text, bg = "CRIT", badgeCritBg
	}

	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true).
		Render(text)
}
