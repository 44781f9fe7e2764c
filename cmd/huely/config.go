// ABOUTME: CLI command for inspecting and changing huely configuration.
// ABOUTME: Persists data directory and locale overrides to the config file.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/config"
	"github.com/harperreed/huely/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show the active configuration and where it comes from.

The config file lives at ~/.config/huely/config.json. Unset values
fall back to the XDG data directory and the locale detected from the
environment (HUELY_LANG, LC_ALL, LANG).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("config   %s\n", config.GetConfigPath())
		fmt.Printf("datadir  %s", cfg.GetDataDir())
		if cfg.DataDir == "" {
			fmt.Printf(" %s", faint.Sprint("(default)"))
		}
		fmt.Println()
		fmt.Printf("locale   %s", cfg.GetLocale())
		if cfg.Locale == "" {
			fmt.Printf(" %s", faint.Sprint("(detected)"))
		}
		fmt.Println()
		return nil
	},
}

var configLocaleCmd = &cobra.Command{
	Use:   "locale <tag>",
	Short: "Set the display locale",
	Long: `Pin the display locale instead of detecting it from the environment.

Supported locales: en, de. Unknown tags fall back to English.

EXAMPLES:

  huely config locale de
  huely config locale en`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Locale = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		l := i18n.Load(args[0])
		color.Green("✓ Locale set to %s", l.Tag())
		return nil
	},
}

var configDataDirCmd = &cobra.Command{
	Use:   "datadir <path>",
	Short: "Set the data directory",
	Long: `Move tracker storage to a different directory.

Existing data is not migrated automatically; export before switching
and import afterwards if you want to carry it over.

EXAMPLES:

  huely config datadir ~/Dropbox/huely`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DataDir = args[0]
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Data directory set")
		fmt.Printf("  %s\n", config.ExpandPath(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configLocaleCmd)
	configCmd.AddCommand(configDataDirCmd)
	rootCmd.AddCommand(configCmd)
}
