// ABOUTME: CLI command for deleting trackers.
// ABOUTME: Removes the tracker and every date annotation it carries.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a tracker",
	Long: `Delete a tracker by name.

CAUTION:

  This permanently deletes the tracker and all of its entries.
  There is no undo. Run 'huely backup' first if unsure.

EXAMPLES:

  huely delete Meditation
  huely rm "Morning run"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := findTrackerByName(args[0])
		if err != nil {
			return err
		}

		if _, err := store.Remove(t); err != nil {
			return fmt.Errorf("failed to delete tracker: %w", err)
		}

		color.Yellow("✗ %s", loc.Translate("TRACKER_DELETED"))
		fmt.Printf("  %s %s\n",
			t.Name,
			color.New(color.Faint).Sprintf("(%d entries)", len(t.Dates)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
