// ABOUTME: CLI command for renaming trackers.
// ABOUTME: Identity follows the creation timestamp, so history survives renames.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/models"
)

var renameCmd = &cobra.Command{
	Use:     "rename <name> <new-name>",
	Aliases: []string{"mv"},
	Short:   "Rename a tracker",
	Long: `Rename a tracker. All of its date annotations are kept.

Examples:
  huely rename Mediation Meditation
  huely mv "Morning run" Running`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		newName := models.SanitizeName(args[1])
		if newName == "" {
			return fmt.Errorf("tracker name must not be empty")
		}

		t, err := findTrackerByName(args[0])
		if err != nil {
			return err
		}

		old := t.Name
		t.Name = newName
		if _, err := store.Update(t); err != nil {
			return fmt.Errorf("failed to rename tracker: %w", err)
		}

		color.Green("✓ %s", loc.Translate("TRACKER_RENAMED"))
		fmt.Printf("  %s -> %s\n", old, newName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
