// ABOUTME: CLI commands for exporting, backing up, and importing tracker data.
// ABOUTME: Supports JSON and YAML export plus timestamped backup files.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export all tracker data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  huely export json                 # Export all data as JSON
  huely export json -o backup.json  # Save to file
  huely export yaml                 # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		backup, err := store.GetAllData()
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.RenderJSON(backup)
		case "yaml":
			data, err = storage.RenderYAML(backup)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ %s", loc.Translate("DATA_EXPORTED"))
			fmt.Printf("  %s\n", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a timestamped backup file",
	Long: `Write a full JSON backup to a timestamped file in the current
directory, e.g. Huely-Backup__2024-06-15_14-30-00.json.

EXAMPLES:

  huely backup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := store.GetAllData()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		data, err := storage.RenderJSON(backup)
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}

		filename := storage.BackupFilename(time.Now())
		if err := os.WriteFile(filename, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}

		color.Green("✓ %s", loc.Translate("DATA_EXPORTED"))
		fmt.Printf("  %s\n", filename)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracker data from a backup",
	Long: `Import tracker data from a previously exported JSON file.

CAUTION:

  Import replaces ALL existing data with the backup's contents.
  Run 'huely backup' first if the current data matters.

Both the current backup envelope and the bare key-map form written
by old versions are accepted.

EXAMPLES:

  huely import Huely-Backup__2024-06-15_14-30-00.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		backup, err := storage.ParseBackup(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := store.ImportData(backup); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ %s", loc.Translate("DATA_IMPORTED"))
		fmt.Printf("  %s\n", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(importCmd)
}
