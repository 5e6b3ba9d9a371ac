// ABOUTME: probability and rates commands for single configurations
// ABOUTME: Print the Output Statistics block or the JSON response

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/models"
	"github.com/cyan1/Availability/internal/tui/report"
)

var (
	probabilityOpts struct {
		name         string
		availability float64
		have         int
		need         int
	}
	ratesOpts struct {
		name       string
		mtbf, mttr float64
		have       int
		need       int
	}
)

var probabilityCmd = &cobra.Command{
	Use:   "probability",
	Short: "Availability from per-component availability",
	Long: `Compute the availability of a need-of-have configuration from the
availability of a single component.

Exit codes:
  0 - Calculated
  2 - Error (invalid input, connectivity)`,
	Example: `  availcalc probability --availability 0.9 --have 3 --need 2`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req := models.CalculationRequest{
			Name:         probabilityOpts.name,
			Have:         probabilityOpts.have,
			Need:         probabilityOpts.need,
			Availability: &probabilityOpts.availability,
		}
		exitCode := runCalculate(ctx, os.Stdout, req)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Availability, MTBF and MTTR from per-component MTBF and MTTR",
	Long: `Compute availability, MTBF and MTTR of a need-of-have configuration
from the MTBF and MTTR of a single component. MTBF and MTTR of the
configuration are reported in the same time unit as the inputs.

Exit codes:
  0 - Calculated
  2 - Error (invalid input, connectivity)`,
	Example: `  availcalc rates --mtbf 100 --mttr 5 --have 3 --need 2`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req := models.CalculationRequest{
			Name: ratesOpts.name,
			Have: ratesOpts.have,
			Need: ratesOpts.need,
			MTBF: &ratesOpts.mtbf,
			MTTR: &ratesOpts.mttr,
		}
		exitCode := runCalculate(ctx, os.Stdout, req)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(probabilityCmd)
	probabilityCmd.Flags().StringVar(&probabilityOpts.name, "name", "", "Optional label for the configuration")
	probabilityCmd.Flags().Float64Var(&probabilityOpts.availability, "availability", 0, "Availability of a single component (0-1)")
	probabilityCmd.Flags().IntVar(&probabilityOpts.have, "have", 0, "Total number of components")
	probabilityCmd.Flags().IntVar(&probabilityOpts.need, "need", 0, "Number of components that need to be up")
	for _, f := range []string{"availability", "have", "need"} {
		probabilityCmd.MarkFlagRequired(f)
	}

	rootCmd.AddCommand(ratesCmd)
	ratesCmd.Flags().StringVar(&ratesOpts.name, "name", "", "Optional label for the configuration")
	ratesCmd.Flags().Float64Var(&ratesOpts.mtbf, "mtbf", 0, "MTBF of a single component")
	ratesCmd.Flags().Float64Var(&ratesOpts.mttr, "mttr", 0, "MTTR of a single component")
	ratesCmd.Flags().IntVar(&ratesOpts.have, "have", 0, "Total number of components")
	ratesCmd.Flags().IntVar(&ratesOpts.need, "need", 0, "Number of components that need to be up")
	for _, f := range []string{"mtbf", "mttr", "have", "need"} {
		ratesCmd.MarkFlagRequired(f)
	}
}

// runCalculate evaluates one configuration and returns the exit code
func runCalculate(ctx context.Context, w io.Writer, req models.CalculationRequest) int {
	b, err := newBackend()
	if err != nil {
		return printError(w, err)
	}
	return calculateWith(ctx, w, b, req)
}

func calculateWith(ctx context.Context, w io.Writer, b backend, req models.CalculationRequest) int {
	resp, err := b.Evaluate(ctx, req)
	if err != nil {
		return printError(w, err)
	}

	if IsJSONOutput() {
		if err := printJSON(w, resp); err != nil {
			return printError(w, err)
		}
	} else {
		report.WriteStatistics(w, resp)
	}
	return 0
}
