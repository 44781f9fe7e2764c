// ABOUTME: Root Cobra command for huely CLI.
// ABOUTME: Handles config, locale, and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/config"
	"github.com/harperreed/huely/internal/i18n"
	"github.com/harperreed/huely/internal/logbuf"
	"github.com/harperreed/huely/internal/storage"
)

var (
	cfg    *config.Config
	store  storage.Store
	loc    *i18n.Localizer
	errlog = logbuf.New()
)

var rootCmd = &cobra.Command{
	Use:   "huely",
	Short: "Colorful habit and mood tracker",
	Long: `Huely tracks anything you want to color in, one day at a time.

Each tracker is a year-long heatmap. Every day can carry one of four
color categories plus an optional note. Over time the grid shows the
shape of a habit at a glance.

QUICK START:

  $ huely add Meditation                  # Create a tracker
  $ huely mark Meditation 3               # Color today with category 3
  $ huely mark Meditation 2 --date 2024-06-01
  $ huely mark Meditation 4 --note "60 minutes"
  $ huely show Meditation                 # Print the year heatmap
  $ huely view Meditation                 # Open the interactive view

CATEGORIES:

  Dates take a category from 1 to 4. What the colors mean is up to
  you: intensity, mood, effort. 0 (or --clear) removes the color.

BACKUP:

  $ huely export json                     # Dump everything to stdout
  $ huely backup                          # Write a timestamped backup file
  $ huely import Huely-Backup__....json   # Restore (replaces all data)

MCP INTEGRATION:

  Run 'huely mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "huely": { "command": "huely", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Trackers are stored in a local Badger database at
  ~/.local/share/huely. Nothing ever leaves your machine.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		loc = cfg.Localizer()

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
