// ABOUTME: sweep command evaluating every need from 1 to have
// ABOUTME: Shows how availability falls as more components are required

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
	sweepComponents componentFlags
	sweepHave       int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate every need from 1 to have",
	Long: `Evaluate 1-of-have, 2-of-have, ... have-of-have for the same components.
Give either --availability or both --mtbf and --mttr.`,
	Example: `  availcalc sweep --availability 0.99 --have 5
  availcalc sweep --mtbf 1000 --mttr 8 --have 4 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req := models.SweepRequest{ComponentParams: sweepComponents.params(cmd), Have: sweepHave}
		b, err := newBackend()
		if err != nil {
			os.Exit(printError(os.Stdout, err))
		}
		exitCode := runSweep(ctx, os.Stdout, b, req)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepComponents.register(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepHave, "have", 0, "Total number of components")
	sweepCmd.MarkFlagRequired("have")
}

// runSweep executes the sweep and returns exit code
func runSweep(ctx context.Context, w io.Writer, b backend, req models.SweepRequest) int {
	resp, err := b.Sweep(ctx, req)
	if err != nil {
		return printError(w, err)
	}

	if IsJSONOutput() {
		if err := printJSON(w, resp); err != nil {
			return printError(w, err)
		}
	} else {
		fmt.Fprintln(w, report.RenderSweep(resp))
	}
	return 0
}
