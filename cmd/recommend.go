// ABOUTME: recommend command sizing a redundant configuration
// ABOUTME: Finds the smallest have whose availability meets the target

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
	recommendComponents componentFlags
	recommendTarget     float64
	recommendNeed       int
	recommendMaxHave    int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Find the smallest configuration meeting a target",
	Long: `Add spare components to a configuration needing --need components until
its availability reaches --target, up to --max-have components.

Exit codes:
  0 - A configuration meets the target
  1 - No configuration up to --max-have meets the target
  2 - Error (invalid input, connectivity)`,
	Example: `  availcalc recommend --availability 0.9 --need 2 --target 0.999`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req := models.RecommendRequest{
			ComponentParams: recommendComponents.params(cmd),
			Need:            recommendNeed,
			Target:          recommendTarget,
			MaxHave:         recommendMaxHave,
		}
		b, err := newBackend()
		if err != nil {
			os.Exit(printError(os.Stdout, err))
		}
		exitCode := runRecommend(ctx, os.Stdout, b, req)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendComponents.register(recommendCmd)
	recommendCmd.Flags().Float64Var(&recommendTarget, "target", 0.999, "Target availability (0-1)")
	recommendCmd.Flags().IntVar(&recommendNeed, "need", 0, "Number of components that need to be up")
	recommendCmd.Flags().IntVar(&recommendMaxHave, "max-have", 0, "Largest configuration to consider (default need+10)")
	recommendCmd.MarkFlagRequired("need")
}

// runRecommend searches for a configuration and returns exit code
func runRecommend(ctx context.Context, w io.Writer, b backend, req models.RecommendRequest) int {
	resp, err := b.Recommend(ctx, req)
	if err != nil {
		return printError(w, err)
	}

	if IsJSONOutput() {
		if err := printJSON(w, resp); err != nil {
			return printError(w, err)
		}
	} else {
		fmt.Fprintln(w, formatRecommendHuman(resp))
	}

	if !resp.Met {
		return 1
	}
	return 0
}

func formatRecommendHuman(resp models.RecommendResponse) string {
	if resp.Met {
		return fmt.Sprintf("Use %s: availability %.10f meets target %.10f\n\n%s",
			resp.Result.Label(), resp.Result.Availability, resp.Target, report.Render(resp.Result))
	}
	return fmt.Sprintf("No configuration up to %s meets target %.10f (best: %.10f)",
		resp.Result.Label(), resp.Target, resp.Result.Availability)
}
