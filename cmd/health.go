// ABOUTME: Health command for the availcalc CLI
// ABOUTME: Checks server connectivity and service status

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/client"
	"github.com/cyan1/Availability/internal/models"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server connectivity",
	Long:  `Check connectivity to an availcalc server and report its status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		return printError(w, err)
	}

	if IsJSONOutput() {
		out, err := formatHealthJSON(url, resp)
		if err != nil {
			return printError(w, err)
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *models.HealthResponse) string {
	return fmt.Sprintf(`Server:   %s
Status:   %s
Version:  %s
Uptime:   %ds
Cache:    %t`, url, resp.Status, resp.Version, resp.UptimeSeconds, resp.CacheEnabled)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *models.HealthResponse) (string, error) {
	return formatJSON(map[string]any{
		"server":         url,
		"status":         resp.Status,
		"version":        resp.Version,
		"uptime_seconds": resp.UptimeSeconds,
		"cache_enabled":  resp.CacheEnabled,
	})
}
