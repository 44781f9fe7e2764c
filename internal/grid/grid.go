// ABOUTME: Calendar grid builder for the year heatmap view.
// ABOUTME: Partitions a rolling day window into week columns and binds annotations.
package grid

import (
	"time"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/models"
)

// DaysPerWeek is the fixed height of a week column.
const DaysPerWeek = 7

// Cell is one day position in the grid. Inactive cells pad the newest,
// still-incomplete week up to the fixed column height.
type Cell struct {
	Date     string // ISO date, empty when inactive
	Active   bool
	Category models.Category
	HasNote  bool
}

// Week is one column of up to seven consecutive days, ordered
// first-weekday-first. MonthLabel is the short month name when the column
// contains the first day of a month; the renderer shows it both above and
// below the column.
type Week struct {
	MonthLabel string
	Cells      [DaysPerWeek]Cell
}

// HeaderSlot is one slot of the weekday header. The original layout
// compresses the seven-day week into six slots: the Monday, Wednesday and
// Friday slots carry a label and span two render columns, the rest are
// single-width padding. Renderers are free to ignore the spans.
type HeaderSlot struct {
	Label string
	Span  int
}

// Grid is the fully laid-out heatmap: newest week first, exactly the order
// the view renders rows in.
type Grid struct {
	Start        time.Time // oldest rendered day, aligned to FirstWeekday
	End          time.Time // newest rendered day (today at build time)
	FirstWeekday time.Weekday
	Weeks        []Week
	Header       []HeaderSlot
}

// Options configures a grid build. Zero values fall back to today, a
// Sunday-start week, and English names.
type Options struct {
	Today        time.Time
	FirstWeekday time.Weekday
	MonthName    func(time.Month) string
	WeekdayName  func(time.Weekday) string
}

func (o *Options) fill() {
	if o.Today.IsZero() {
		o.Today = time.Now()
	}
	o.Today = dateutil.Midnight(o.Today)
	if o.MonthName == nil {
		o.MonthName = func(m time.Month) string { return m.String()[:3] }
	}
	if o.WeekdayName == nil {
		o.WeekdayName = func(wd time.Weekday) string { return wd.String()[:3] }
	}
}

// Build lays out the year grid for a tracker's dates map.
//
// The window runs from today back 364 days, extended further when the
// oldest annotated date predates the default window so history is never
// clipped, then walked back to the nearest first-weekday so the oldest
// column is complete.
func Build(dates map[string]models.Annotation, opts Options) *Grid {
	opts.fill()
	weekdayEnd := dateutil.LastWeekday(opts.FirstWeekday)

	start := windowStart(dates, opts.Today)
	for start.Weekday() != opts.FirstWeekday {
		start = start.AddDate(0, 0, -1)
	}

	days := dateutil.EnumerateDays(start, opts.Today)

	// Partition descending days into week columns. A day on the week's last
	// weekday closes the column below it and opens the next (older) one,
	// except at the very end of the sequence. Days are prepended so each
	// column reads oldest-first.
	columns := [][]time.Time{nil}
	for i, day := range days {
		if day.Weekday() == weekdayEnd && i < len(days)-1 {
			columns = append(columns, nil)
		}
		last := len(columns) - 1
		columns[last] = append([]time.Time{day}, columns[last]...)
	}

	g := &Grid{
		Start:        start,
		End:          opts.Today,
		FirstWeekday: opts.FirstWeekday,
		Header:       buildHeader(opts.FirstWeekday, opts.WeekdayName),
	}
	for _, col := range columns {
		if len(col) == 0 {
			continue
		}
		g.Weeks = append(g.Weeks, buildWeek(col, dates, opts.MonthName))
	}
	return g
}

// windowStart picks the window's oldest day: today minus 364 days, or the
// tracker's earliest annotated date when that is older still.
func windowStart(dates map[string]models.Annotation, today time.Time) time.Time {
	start := today.AddDate(0, 0, -dateutil.WindowDays)
	earliest := ""
	for date := range dates {
		if earliest == "" || date < earliest {
			earliest = date
		}
	}
	if earliest != "" {
		if d, err := dateutil.ParseISODate(earliest); err == nil && d.Before(start) {
			start = d
		}
	}
	return start
}

func buildWeek(col []time.Time, dates map[string]models.Annotation, monthName func(time.Month) string) Week {
	var w Week
	for i, day := range col {
		if day.Day() == 1 {
			w.MonthLabel = monthName(day.Month())
		}
		iso := dateutil.ISODate(day)
		cell := Cell{Date: iso, Active: true}
		if a, ok := dates[iso]; ok {
			cell.Category = a.Category
			cell.HasNote = a.Note != ""
		}
		w.Cells[i] = cell
	}
	return w
}

// buildHeader lays out the weekday header. The compressed six-slot form
// only works when Monday sits in the first three columns, which covers
// every real first-weekday (Saturday, Sunday, Monday); any other start
// degrades to a plain one-label-per-day header.
func buildHeader(first time.Weekday, name func(time.Weekday) string) []HeaderSlot {
	monday := dateutil.MondayColumn(first)
	if monday > 2 {
		slots := []HeaderSlot{{Span: 1}}
		for i := 0; i < DaysPerWeek; i++ {
			wd := time.Weekday((int(first) + i) % 7)
			slots = append(slots, HeaderSlot{Label: name(wd), Span: 1})
		}
		return append(slots, HeaderSlot{Span: 1})
	}

	slots := make([]HeaderSlot, 6)
	for k := range slots {
		slots[k].Span = 1
	}
	for j, wd := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
		slots[monday+1+j] = HeaderSlot{Label: name(wd), Span: 2}
	}
	return slots
}

// HasDate reports whether the grid has an active cell for the ISO date.
func (g *Grid) HasDate(iso string) bool {
	for _, w := range g.Weeks {
		for _, c := range w.Cells {
			if c.Active && c.Date == iso {
				return true
			}
		}
	}
	return false
}

// NeedsRebuild reports whether the grid is stale for the given day: a grid
// built yesterday has no cell for today once the date rolls over.
func (g *Grid) NeedsRebuild(today time.Time) bool {
	if g == nil {
		return true
	}
	return !g.HasDate(dateutil.ISODate(dateutil.Midnight(today)))
}
