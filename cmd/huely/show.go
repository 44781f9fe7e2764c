// ABOUTME: CLI command for printing a tracker's year heatmap.
// ABOUTME: Static render of the calendar grid, newest week on top.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/grid"
	"github.com/harperreed/huely/internal/models"
)

var showWeeks int

var showCmd = &cobra.Command{
	Use:     "show <name>",
	Aliases: []string{"s"},
	Short:   "Print a tracker heatmap",
	Long: `Print a tracker's calendar heatmap to the terminal.

The grid covers at least the last year, extended back if older
entries exist. Weeks run top to bottom, newest first. The first
weekday of each row follows your locale.

EXAMPLES:

  huely show Meditation
  huely show Meditation -n 12    # Only the last 12 weeks`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := findTrackerByName(args[0])
		if err != nil {
			return err
		}

		g := grid.Build(t.Dates, grid.Options{
			Today:        time.Now(),
			FirstWeekday: dateutil.FirstWeekday(loc.Tag()),
			MonthName:    loc.MonthShort,
			WeekdayName:  loc.WeekdayShort,
		})

		fmt.Println(t.Name)
		fmt.Println()
		printHeader(g)

		weeks := g.Weeks
		if showWeeks > 0 && showWeeks < len(weeks) {
			weeks = weeks[:showWeeks]
		}
		for _, w := range weeks {
			printWeek(w)
		}
		return nil
	},
}

const gutterWidth = 4

func printHeader(g *grid.Grid) {
	faint := color.New(color.Faint)
	var b strings.Builder
	col := 0
	for _, slot := range g.Header {
		w := 0
		for i := 0; i < slot.Span && col < 9; i++ {
			if col == 0 || col == 8 {
				w += gutterWidth
			} else {
				w += 2
			}
			col++
		}
		b.WriteString(padCell(slot.Label, w))
	}
	fmt.Println(faint.Sprint(b.String()))
}

func printWeek(w grid.Week) {
	faint := color.New(color.Faint)
	fmt.Print(faint.Sprint(padCell(w.MonthLabel, gutterWidth)))
	for _, c := range w.Cells {
		fmt.Print(heatCell(c))
	}
	fmt.Println(faint.Sprint(padCell(w.MonthLabel, gutterWidth)))
}

// heatCell renders one day as a two-character block.
func heatCell(c grid.Cell) string {
	if !c.Active {
		return "  "
	}
	if c.Category == models.CategoryNone {
		if c.HasNote {
			return color.New(color.Faint).Sprint("·•")
		}
		return color.New(color.Faint).Sprint("··")
	}
	block := "██"
	if c.HasNote {
		block = "█•"
	}
	switch c.Category {
	case 1:
		return color.RedString(block)
	case 2:
		return color.YellowString(block)
	case 3:
		return color.GreenString(block)
	default:
		return color.BlueString(block)
	}
}

func padCell(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func init() {
	showCmd.Flags().IntVarP(&showWeeks, "weeks", "n", 0, "limit to the most recent N weeks")
	rootCmd.AddCommand(showCmd)
}
