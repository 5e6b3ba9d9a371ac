// ABOUTME: Input forms gathering component parameters for a calculation
// ABOUTME: huh inputs with validators so parse and range errors are shown inline

package form

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/tui/styles"
)

// Form collects inputs for one calculation
type Form struct {
	accessible bool
	in         io.Reader
	out        io.Writer

	// Field values (strings for huh)
	availability string
	mtbf         string
	mttr         string
	have         string
	need         string
}

// New creates a form reading from in and drawing to out
func New(in io.Reader, out io.Writer, accessible bool) *Form {
	return &Form{
		accessible: accessible,
		in:         in,
		out:        out,
		have:       "3",
		need:       "2",
	}
}

// Probability asks for component availability and the counts
func (f *Form) Probability() (models.CalculationRequest, error) {
	form := f.build(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter component availability").
				Description("A probability between 0 and 1").
				Placeholder("e.g., 0.9").
				Value(&f.availability).
				Validate(validateProbability),
			f.haveInput(),
			f.needInput(),
		).Title("Individual component availability"),
	)
	if err := form.Run(); err != nil {
		return models.CalculationRequest{}, err
	}
	return parseProbability(f.availability, f.have, f.need)
}

// Rates asks for component MTBF, MTTR and the counts
func (f *Form) Rates() (models.CalculationRequest, error) {
	form := f.build(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the MTBF for a single component").
				Placeholder("e.g., 1000").
				Value(&f.mtbf).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Enter the MTTR for a single component").
				Description("Same time unit as MTBF").
				Placeholder("e.g., 8").
				Value(&f.mttr).
				Validate(validatePositiveFloat),
			f.haveInput(),
			f.needInput(),
		).Title("MTBF and MTTR"),
	)
	if err := form.Run(); err != nil {
		return models.CalculationRequest{}, err
	}
	return parseRates(f.mtbf, f.mttr, f.have, f.need)
}

func (f *Form) build(group *huh.Group) *huh.Form {
	return huh.NewForm(group).
		WithTheme(styles.FormTheme()).
		WithAccessible(f.accessible).
		WithInput(f.in).
		WithOutput(f.out).
		WithProgramOptions(tea.WithInput(f.in), tea.WithOutput(f.out))
}

func (f *Form) haveInput() *huh.Input {
	return huh.NewInput().
		Title("Enter the total number of system components").
		CharLimit(3).
		Value(&f.have).
		Validate(validateHave)
}

func (f *Form) needInput() *huh.Input {
	return huh.NewInput().
		Title("Enter the number of components that need to be up").
		CharLimit(3).
		Value(&f.need).
		Validate(func(s string) error {
			return validateNeed(s, f.have)
		})
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("please enter a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("please enter a finite number")
	}
	return v, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("please enter a whole number")
	}
	return v, nil
}

func validateProbability(s string) error {
	v, err := parseFloat(s)
	if err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("must be between 0 and 1")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := parseFloat(s)
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateHave(s string) error {
	v, err := parseInt(s)
	if err != nil {
		return err
	}
	if v < 1 || v > config.MaxFactorialComponents {
		return fmt.Errorf("must be between 1 and %d", config.MaxFactorialComponents)
	}
	return nil
}

// validateNeed only checks need against have once have itself parses
func validateNeed(s, have string) error {
	v, err := parseInt(s)
	if err != nil {
		return err
	}
	if v < 1 {
		return fmt.Errorf("must be at least 1")
	}
	if h, err := parseInt(have); err == nil && v > h {
		return fmt.Errorf("cannot exceed the total number of components (%d)", h)
	}
	return nil
}

func parseCounts(have, need string) (int, int, error) {
	if err := validateHave(have); err != nil {
		return 0, 0, fmt.Errorf("total components: %w", err)
	}
	if err := validateNeed(need, have); err != nil {
		return 0, 0, fmt.Errorf("components needed: %w", err)
	}
	h, _ := parseInt(have)
	n, _ := parseInt(need)
	return h, n, nil
}

func parseProbability(availability, have, need string) (models.CalculationRequest, error) {
	if err := validateProbability(availability); err != nil {
		return models.CalculationRequest{}, fmt.Errorf("availability: %w", err)
	}
	h, n, err := parseCounts(have, need)
	if err != nil {
		return models.CalculationRequest{}, err
	}
	a, _ := parseFloat(availability)
	return models.CalculationRequest{Have: h, Need: n, Availability: &a}, nil
}

func parseRates(mtbf, mttr, have, need string) (models.CalculationRequest, error) {
	if err := validatePositiveFloat(mtbf); err != nil {
		return models.CalculationRequest{}, fmt.Errorf("mtbf: %w", err)
	}
	if err := validatePositiveFloat(mttr); err != nil {
		return models.CalculationRequest{}, fmt.Errorf("mttr: %w", err)
	}
	h, n, err := parseCounts(have, need)
	if err != nil {
		return models.CalculationRequest{}, err
	}
	b, _ := parseFloat(mtbf)
	r, _ := parseFloat(mttr)
	return models.CalculationRequest{Have: h, Need: n, MTBF: &b, MTTR: &r}, nil
}
