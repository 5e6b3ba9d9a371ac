// ABOUTME: Main menu for the interactive calculator
// ABOUTME: Lets the user pick the probability or MTBF/MTTR calculation, or quit

package menu

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cyan1/Availability/internal/tui/styles"
)

// Choice represents the selected menu entry
type Choice int

const (
	ChoiceProbability Choice = iota
	ChoiceRates
	ChoiceQuit
)

type option struct {
	label string
	value Choice
}

// Menu represents the calculation selection menu
type Menu struct {
	options    []option
	selected   Choice
	accessible bool
	in         io.Reader
	out        io.Writer
}

// New creates the menu. Accessible mode replaces the interactive select with
// a numbered prompt suitable for screen readers and non-TTY input.
func New(in io.Reader, out io.Writer, accessible bool) *Menu {
	return &Menu{
		options: []option{
			{label: "1. Individual component availability", value: ChoiceProbability},
			{label: "2. MTBF and MTTR", value: ChoiceRates},
			{label: "Quit", value: ChoiceQuit},
		},
		selected:   ChoiceProbability,
		accessible: accessible,
		in:         in,
		out:        out,
	}
}

// Run displays the menu and returns the selected entry
func (m *Menu) Run() (Choice, error) {
	options := make([]huh.Option[Choice], 0, len(m.options))
	for _, opt := range m.options {
		options = append(options, huh.NewOption(opt.label, opt.value))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Choice]().
				Title("Select calculation").
				Options(options...).
				Value(&m.selected),
		),
	).WithTheme(styles.FormTheme()).
		WithAccessible(m.accessible).
		WithInput(m.in).
		WithOutput(m.out).
		WithProgramOptions(tea.WithInput(m.in), tea.WithOutput(m.out))

	if err := form.Run(); err != nil {
		return ChoiceQuit, err
	}
	return m.selected, nil
}

// String returns the string representation of a Choice
func (c Choice) String() string {
	switch c {
	case ChoiceProbability:
		return "probability"
	case ChoiceRates:
		return "rates"
	case ChoiceQuit:
		return "quit"
	default:
		return "unknown"
	}
}
