// ABOUTME: batch command evaluating configurations listed in a YAML file
// ABOUTME: Exits non-zero when any configuration is invalid

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/services"
	"github.com/cyan1/Availability/internal/tui/report"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate configurations from a YAML file",
	Long: `Evaluate every configuration listed in a YAML file:

  configurations:
    - name: web
      availability: 0.99
      have: 3
      need: 2
    - name: db
      mtbf: 1000
      mttr: 8
      have: 2
      need: 1

Exit codes:
  0 - All configurations evaluated
  1 - One or more configurations were invalid
  2 - Error (unreadable file, connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		b, err := newBackend()
		if err != nil {
			os.Exit(printError(os.Stdout, err))
		}
		exitCode := runBatch(ctx, os.Stdout, b, batchFile)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "YAML batch file")
	batchCmd.MarkFlagRequired("file")
}

// runBatch loads and evaluates the batch file and returns exit code
func runBatch(ctx context.Context, w io.Writer, b backend, path string) int {
	reqs, err := services.LoadBatchFile(path)
	if err != nil {
		return printError(w, err)
	}

	resp, err := b.Batch(ctx, reqs)
	if err != nil {
		return printError(w, err)
	}

	if IsJSONOutput() {
		if err := printJSON(w, resp); err != nil {
			return printError(w, err)
		}
	} else {
		fmt.Fprintln(w, report.RenderBatch(resp))
	}

	if resp.Failed > 0 {
		return 1
	}
	return 0
}
