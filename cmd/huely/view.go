// ABOUTME: CLI command for the interactive tracker view.
// ABOUTME: Hands the tracker name to the view through the parameter stash.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:     "view [name]",
	Aliases: []string{"v"},
	Short:   "Open the interactive tracker view",
	Long: `Open a tracker in the full-screen interactive view.

Move with the arrow keys (or hjkl), press enter on a day to open the
editor, paint with 1-4, clear with 0, and attach a note with tab.
Press ctrl+l to inspect captured errors. q quits.

With no name, the first tracker is opened.

EXAMPLES:

  huely view Meditation
  huely view`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The requested tracker travels through the one-shot parameter
		// stash; reading it consumes it.
		if len(args) == 1 {
			if err := store.SetParams(map[string]string{"tracker": args[0]}); err != nil {
				return fmt.Errorf("failed to stash view parameters: %w", err)
			}
		}

		params, err := store.TakeParams()
		if err != nil {
			return fmt.Errorf("failed to read view parameters: %w", err)
		}

		var name string
		if params != nil {
			name = params["tracker"]
		}
		if name == "" {
			trackers, err := store.List()
			if err != nil {
				return fmt.Errorf("failed to list trackers: %w", err)
			}
			if len(trackers) == 0 {
				fmt.Println(loc.Translate("NO_TRACKERS"))
				return nil
			}
			name = trackers[0].Name
		}

		t, err := findTrackerByName(name)
		if err != nil {
			return err
		}

		return tui.Run(store, t, loc, errlog)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
