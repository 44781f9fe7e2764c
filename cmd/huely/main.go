// ABOUTME: Entry point for huely CLI.
// ABOUTME: Invokes the root Cobra command with panic capture.
package main

import (
	"fmt"
	"os"
)

func main() {
	// Capture turns panics into ring-buffer entries and a plain error.
	if err := errlog.Capture(rootCmd.Execute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
