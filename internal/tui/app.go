// ABOUTME: Interactive calculator loop driving the menu, input forms and result panels
// ABOUTME: Repeats until the user picks Quit or aborts a prompt

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/tui/form"
	"github.com/cyan1/Availability/internal/tui/menu"
	"github.com/cyan1/Availability/internal/tui/report"
	"github.com/cyan1/Availability/internal/tui/styles"
)

// Evaluator computes one configuration, locally or through the API
type Evaluator interface {
	Evaluate(ctx context.Context, req models.CalculationRequest) (models.CalculationResponse, error)
}

// Prompter gathers the user's choices
type Prompter interface {
	Choose() (menu.Choice, error)
	Probability() (models.CalculationRequest, error)
	Rates() (models.CalculationRequest, error)
}

// Options configures the interactive session
type Options struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool
}

// App runs the menu loop
type App struct {
	eval       Evaluator
	prompt     Prompter
	out        io.Writer
	accessible bool
}

// huhPrompter shows huh forms on the configured terminal
type huhPrompter struct {
	opts Options
}

func (p huhPrompter) Choose() (menu.Choice, error) {
	return menu.New(p.opts.In, p.opts.Out, p.opts.Accessible).Run()
}

func (p huhPrompter) Probability() (models.CalculationRequest, error) {
	return form.New(p.opts.In, p.opts.Out, p.opts.Accessible).Probability()
}

func (p huhPrompter) Rates() (models.CalculationRequest, error) {
	return form.New(p.opts.In, p.opts.Out, p.opts.Accessible).Rates()
}

// New creates an App using huh prompts
func New(eval Evaluator, opts Options) *App {
	return NewWithPrompter(eval, huhPrompter{opts: opts}, opts.Out, opts.Accessible)
}

// NewWithPrompter creates an App with a custom prompter
func NewWithPrompter(eval Evaluator, prompt Prompter, out io.Writer, accessible bool) *App {
	return &App{eval: eval, prompt: prompt, out: out, accessible: accessible}
}

// Run loops until Quit is chosen, a prompt is aborted or ctx is done.
// Calculation errors are shown and the loop continues.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, styles.Title.Render("AvailabilityCalculator"))

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		choice, err := a.prompt.Choose()
		if err != nil {
			return ignoreAbort(err)
		}

		var req models.CalculationRequest
		switch choice {
		case menu.ChoiceProbability:
			req, err = a.prompt.Probability()
		case menu.ChoiceRates:
			req, err = a.prompt.Rates()
		default:
			return nil
		}
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			fmt.Fprintf(a.out, "Error: %v\n\n", err)
			continue
		}

		resp, err := a.eval.Evaluate(ctx, req)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n\n", err)
			continue
		}

		if a.accessible {
			report.WriteStatistics(a.out, resp)
		} else {
			fmt.Fprintln(a.out, report.Render(resp))
		}
		fmt.Fprintln(a.out)
	}
}

func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
