// ABOUTME: CLI command for listing trackers.
// ABOUTME: Shows a 7-day sparkline, name, and entry count per tracker.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List trackers",
	Long: `List all trackers, sorted by name.

OUTPUT FORMAT:

  Each line shows: LAST-7-DAYS  NAME  (ENTRIES)

  The seven cells cover the last week, oldest to newest. A colored
  block means the day carries a category, a dot means it is empty.

EXAMPLES:

  huely list
  huely ls`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trackers, err := store.List()
		if err != nil {
			return fmt.Errorf("failed to list trackers: %w", err)
		}

		if len(trackers) == 0 {
			fmt.Println(loc.Translate("NO_TRACKERS"))
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range trackers {
			fmt.Printf("%s  %s %s\n",
				sparkline(t, time.Now()),
				t.Name,
				faint.Sprintf("(%d)", len(t.Dates)))
		}
		return nil
	},
}

// sparkline renders the tracker's last seven days, oldest first.
func sparkline(t *models.Tracker, now time.Time) string {
	days := dateutil.EnumerateDays(now.AddDate(0, 0, -6), now)

	out := ""
	// EnumerateDays yields newest first.
	for i := len(days) - 1; i >= 0; i-- {
		a := t.Dates[dateutil.ISODate(days[i])]
		out += categoryCell(a.Category)
	}
	return out
}

// categoryCell prints a single colored block for a category.
func categoryCell(c models.Category) string {
	switch c {
	case 1:
		return color.RedString("█")
	case 2:
		return color.YellowString("█")
	case 3:
		return color.GreenString("█")
	case 4:
		return color.BlueString("█")
	default:
		return color.New(color.Faint).Sprint("·")
	}
}

// findTrackerByName resolves a tracker by its sanitized name.
func findTrackerByName(name string) (*models.Tracker, error) {
	trackers, err := store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}
	want := models.SanitizeName(name)
	for _, t := range trackers {
		if t.Name == want {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tracker not found: %s", want)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
