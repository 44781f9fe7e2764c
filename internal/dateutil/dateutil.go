// ABOUTME: Locale-aware calendar math for the year heatmap.
// ABOUTME: First-weekday lookup, descending day enumeration, ISO date helpers.
package dateutil

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// ISOLayout is the canonical YYYY-MM-DD date format used as map keys.
const ISOLayout = "2006-01-02"

// WindowDays is the default heatmap window: today plus the 364 days before it.
const WindowDays = 364

// Regions whose week starts on Saturday or Sunday, per CLDR week data.
// Everything else starts on Monday.
var saturdayFirst = map[string]bool{
	"AE": true, "AF": true, "BH": true, "DJ": true, "DZ": true,
	"EG": true, "IQ": true, "IR": true, "JO": true, "KW": true,
	"LY": true, "OM": true, "QA": true, "SD": true, "SY": true,
}

var sundayFirst = map[string]bool{
	"AG": true, "AS": true, "BD": true, "BR": true, "BS": true,
	"BT": true, "BW": true, "BZ": true, "CA": true, "CN": true,
	"CO": true, "DM": true, "DO": true, "ET": true, "GT": true,
	"GU": true, "HK": true, "HN": true, "ID": true, "IL": true,
	"IN": true, "JM": true, "JP": true, "KE": true, "KH": true,
	"KR": true, "LA": true, "MH": true, "MM": true, "MO": true,
	"MT": true, "MX": true, "MZ": true, "NI": true, "NP": true,
	"PA": true, "PE": true, "PH": true, "PK": true, "PR": true,
	"PY": true, "SA": true, "SG": true, "SV": true, "TH": true,
	"TT": true, "TW": true, "US": true, "VE": true, "VI": true,
	"WS": true, "YE": true, "ZA": true, "ZW": true,
}

// FirstWeekday returns the locale's first day of the week. Unknown or
// undetermined regions fall back to Sunday, matching the app's historical
// behavior when week information was unavailable.
func FirstWeekday(tag language.Tag) time.Weekday {
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return time.Sunday
	}
	switch {
	case saturdayFirst[region.String()]:
		return time.Saturday
	case sundayFirst[region.String()]:
		return time.Sunday
	default:
		return time.Monday
	}
}

// FirstWeekdayForLocale parses a BCP-47 locale string and returns its first
// weekday. Bad input falls back to Sunday.
func FirstWeekdayForLocale(locale string) time.Weekday {
	tag, err := language.Parse(locale)
	if err != nil {
		return time.Sunday
	}
	return FirstWeekday(tag)
}

// LastWeekday returns the last day of a week that starts at first:
// (first + 6) mod 7.
func LastWeekday(first time.Weekday) time.Weekday {
	return time.Weekday((int(first) + 6) % 7)
}

// MondayColumn returns the zero-based column index Monday occupies within a
// week whose leftmost column is first.
func MondayColumn(first time.Weekday) int {
	return (int(time.Monday) - int(first) + 7) % 7
}

// Midnight normalizes t to local midnight of its calendar day. All day
// arithmetic in this package runs on normalized values so DST shifts cannot
// skip or duplicate a day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EnumerateDays returns every calendar day from start to end inclusive,
// most recent first. Zero start defaults to end minus 364 days; zero end
// defaults to today. start may be arbitrarily far before end.
func EnumerateDays(start, end time.Time) []time.Time {
	if end.IsZero() {
		end = time.Now()
	}
	end = Midnight(end)
	if start.IsZero() {
		start = end.AddDate(0, 0, -WindowDays)
	}
	start = Midnight(start)

	if start.After(end) {
		return nil
	}

	var days []time.Time
	for d := end; !d.Before(start); d = d.AddDate(0, 0, -1) {
		days = append(days, d)
	}
	return days
}

// ISODate formats t as YYYY-MM-DD in t's own location.
func ISODate(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISODate parses a YYYY-MM-DD string into local midnight of that day.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}
