// ABOUTME: check command for CI/CD availability gates
// ABOUTME: Exits non-zero when a configuration falls below the target availability

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/tui/report"
)

var (
	checkComponents componentFlags
	checkTarget     float64
	checkHave       int
	checkNeed       int
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a configuration against a target availability",
	Long: `Evaluate a configuration and exit non-zero if its availability is
below the target.

Exit codes:
  0 - Availability meets the target
  1 - Availability below the target
  2 - Error (invalid input, connectivity)`,
	Example: `  availcalc check --target 0.999 --availability 0.99 --have 3 --need 2`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req := checkComponents.params(cmd).Request(checkHave, checkNeed)
		b, err := newBackend()
		if err != nil {
			os.Exit(printError(os.Stdout, err))
		}
		exitCode := runCheck(ctx, os.Stdout, b, req, checkTarget)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkComponents.register(checkCmd)
	checkCmd.Flags().Float64Var(&checkTarget, "target", 0.999, "Minimum acceptable availability (0-1)")
	checkCmd.Flags().IntVar(&checkHave, "have", 0, "Total number of components")
	checkCmd.Flags().IntVar(&checkNeed, "need", 0, "Number of components that need to be up")
	checkCmd.MarkFlagRequired("have")
	checkCmd.MarkFlagRequired("need")
}

// checkResult is the outcome of comparing one configuration to the target
type checkResult struct {
	resp   models.CalculationResponse
	target float64
	passed bool
}

// runCheck evaluates the configuration and returns exit code
func runCheck(ctx context.Context, w io.Writer, b backend, req models.CalculationRequest, target float64) int {
	if err := validateTarget(target); err != nil {
		return printError(w, err)
	}

	resp, err := b.Evaluate(ctx, req)
	if err != nil {
		return printError(w, err)
	}

	result := checkResult{resp: resp, target: target, passed: resp.Availability >= target}

	if IsJSONOutput() {
		out, err := formatCheckJSON(result)
		if err != nil {
			return printError(w, err)
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatCheckHuman(result))
	}

	if !result.passed {
		return 1
	}
	return 0
}

// validateTarget ensures the target is a usable availability
func validateTarget(target float64) error {
	if target <= 0 || target > 1 {
		return fmt.Errorf("--target must be greater than 0 and at most 1")
	}
	return nil
}

// formatCheckHuman formats the check result for human readability
func formatCheckHuman(r checkResult) string {
	symbol := "✓"
	if !r.passed {
		symbol = "✗"
	}
	output := fmt.Sprintf("%s %s availability: %.10f (target: %.10f, nines: %s)\n",
		symbol, r.resp.Label(), r.resp.Availability, r.target, report.FormatNines(r.resp.Nines))

	if r.passed {
		output += "\nPASSED: configuration meets the target"
	} else {
		output += fmt.Sprintf("\nFAILED: configuration is %.10f below the target", r.target-r.resp.Availability)
	}
	return output
}

// formatCheckJSON formats the check result as JSON
func formatCheckJSON(r checkResult) (string, error) {
	status := "passed"
	if !r.passed {
		status = "failed"
	}

	return formatJSON(map[string]any{
		"status":        status,
		"target":        r.target,
		"configuration": r.resp,
	})
}
