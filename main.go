// ABOUTME: Entry point for the availcalc CLI
// ABOUTME: N-out-of-H availability calculator with an interactive menu and HTTP API

package main

import (
	"fmt"
	"os"

	"github.com/cyan1/Availability/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
