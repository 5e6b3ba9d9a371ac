// ABOUTME: menu command running the interactive calculator
// ABOUTME: Loops over the calculation menu until the user quits

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/tui"
)

var menuAccessible bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive calculator",
	Long: `Choose a calculation, enter component parameters and see the result,
repeating until you select Quit.

Use --accessible for plain numbered prompts (screen readers, piped input).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		b, err := newBackend()
		if err != nil {
			return err
		}

		app := tui.New(b, tui.Options{
			In:         os.Stdin,
			Out:        os.Stdout,
			Accessible: menuAccessible || os.Getenv("ACCESSIBLE") != "",
		})
		return app.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.Flags().BoolVar(&menuAccessible, "accessible", false, "Use accessible prompts instead of the interactive UI")
}
