// ABOUTME: Root command for the availcalc CLI
// ABOUTME: Handles global flags, logging setup and backend selection

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/logger"
)

var (
	apiURL     string
	jsonOutput bool
	remote     bool
)

const defaultAPIURL = "http://localhost:8080"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "availcalc",
	Short: "N-out-of-H availability calculator",
	Long: `availcalc computes availability, MTBF and MTTR for redundant systems
where "need" of "have" identical components must be up.

Calculations run locally unless --remote is given, in which case they are
sent to an availcalc server (see "availcalc serve").

Environment Variables:
  AVAILCALC_API_URL  Server URL for --remote and health (default: http://localhost:8080)
  LOG_LEVEL          debug, info, warn or error (default: info)
  LOG_FORMAT         text or json (default: text)`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Server URL (overrides AVAILCALC_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false, "Send calculations to the server instead of computing locally")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("AVAILCALC_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// IsRemote returns whether calculations go through the API
func IsRemote() bool {
	return remote
}
