// ABOUTME: CLI command for marking tracker dates.
// ABOUTME: Sets a category and optional note, or clears the day entirely.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/models"
)

var (
	markDate  string
	markNote  string
	markClear bool
)

var markCmd = &cobra.Command{
	Use:     "mark <name> [category]",
	Aliases: []string{"m"},
	Short:   "Mark a date on a tracker",
	Long: `Mark a date on a tracker with a category from 1 to 4.

The date defaults to today. Category 0 removes the color but keeps
any note; --clear removes the whole entry including the note.

EXAMPLES:

  huely mark Meditation 3
  huely mark Meditation 2 --date 2024-06-01
  huely mark Meditation 4 --note "60 minutes"
  huely mark Meditation --note "skipped, travel day"
  huely mark Meditation --date 2024-06-01 --clear`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := markDate
		if date == "" {
			date = dateutil.ISODate(time.Now())
		}
		if _, err := dateutil.ParseISODate(date); err != nil {
			return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
		}

		t, err := findTrackerByName(args[0])
		if err != nil {
			return err
		}

		if markClear {
			t.Clear(date)
			if _, err := store.Update(t); err != nil {
				return fmt.Errorf("failed to clear date: %w", err)
			}
			color.Yellow("✗ Cleared %s", date)
			return nil
		}

		category := models.CategoryNone
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || (n != 0 && !models.Category(n).IsValid()) {
				return fmt.Errorf("category must be 0-4, got %q", args[1])
			}
			category = models.Category(n)
		} else if markNote == "" {
			return fmt.Errorf("nothing to do: give a category, --note, or --clear")
		}

		if cmd.Flags().Changed("note") || markNote != "" {
			t.SetNote(date, markNote)
		}
		if len(args) == 2 {
			t.Mark(date, category)
		}
		if _, err := store.Update(t); err != nil {
			return fmt.Errorf("failed to mark date: %w", err)
		}

		a := t.Dates[date]
		color.Green("✓ %s %s", t.Name, date)
		fmt.Printf("  %s", categoryCell(a.Category))
		if a.Note != "" {
			fmt.Printf(" %s", color.New(color.Faint).Sprint(a.Note))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	markCmd.Flags().StringVar(&markDate, "date", "", "date to mark (YYYY-MM-DD, default today)")
	markCmd.Flags().StringVar(&markNote, "note", "", "note for the date")
	markCmd.Flags().BoolVar(&markClear, "clear", false, "remove the whole entry for the date")
	rootCmd.AddCommand(markCmd)
}
