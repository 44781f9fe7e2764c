// ABOUTME: CLI command for creating trackers.
// ABOUTME: Sanitizes the name and treats duplicates as a no-op.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/models"
)

var addCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a", "new"},
	Short:   "Create a tracker",
	Long: `Create a new tracker.

Names are trimmed and control characters are stripped. Creating a
tracker with a name that already exists does nothing.

Examples:
  huely add Meditation
  huely add "Morning run"
  huely add Slept well`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := models.SanitizeName(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("tracker name must not be empty")
		}

		before, err := store.List()
		if err != nil {
			return fmt.Errorf("failed to list trackers: %w", err)
		}
		after, err := store.Add(name)
		if err != nil {
			return fmt.Errorf("failed to add tracker: %w", err)
		}

		if len(after) == len(before) {
			fmt.Println(loc.Translate("TRACKER_EXISTS"))
			return nil
		}

		color.Green("✓ %s", loc.Translate("TRACKER_CREATED"))
		fmt.Printf("  %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
