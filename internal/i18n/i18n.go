// ABOUTME: Flat-map string localization with embedded JSON resources.
// ABOUTME: Missing keys degrade to the raw key with a logged warning.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.German,
}

var matcher = language.NewMatcher(supported)

var weekdayKeys = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// Localizer resolves translation keys against one loaded language map.
type Localizer struct {
	tag     language.Tag
	strings map[string]string
}

// Detect returns the locale string from the environment: HUELY_LANG wins,
// then LC_ALL and LANG, else empty.
func Detect() string {
	for _, name := range []string{"HUELY_LANG", "LC_ALL", "LANG"} {
		if v := os.Getenv(name); v != "" {
			// "de_DE.UTF-8" -> "de-DE"
			v = strings.SplitN(v, ".", 2)[0]
			return strings.ReplaceAll(v, "_", "-")
		}
	}
	return ""
}

// Load builds a Localizer for the given locale string. Empty input detects
// the locale from the environment; unsupported languages fall back to
// English. Loading never fails: a broken resource degrades to raw keys.
func Load(locale string) *Localizer {
	if locale == "" {
		locale = Detect()
	}

	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()

	l := &Localizer{tag: tag, strings: map[string]string{}}
	data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", base.String()))
	if err != nil {
		log.Warn("language resource missing", "lang", base.String(), "err", err)
		return l
	}
	if err := json.Unmarshal(data, &l.strings); err != nil {
		log.Warn("language resource malformed", "lang", base.String(), "err", err)
	}
	return l
}

// Tag returns the matched language tag. The tracker view derives the
// locale's first weekday from it.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Translate resolves a key. Missing keys return the key itself and log a
// warning; rendering is never blocked on a translation.
func (l *Localizer) Translate(key string) string {
	if s, ok := l.strings[key]; ok {
		return s
	}
	log.Warn("translation missing", "key", key)
	return key
}

// WeekdayShort returns the localized short weekday name.
func (l *Localizer) WeekdayShort(wd time.Weekday) string {
	return l.Translate("WEEKDAY_SHORT_" + weekdayKeys[wd])
}

// WeekdayLong returns the localized full weekday name.
func (l *Localizer) WeekdayLong(wd time.Weekday) string {
	return l.Translate("WEEKDAY_LONG_" + weekdayKeys[wd])
}

// MonthShort returns the localized short month name.
func (l *Localizer) MonthShort(m time.Month) string {
	return l.Translate("MONTH_SHORT_" + strconv.Itoa(int(m)))
}

// MonthLong returns the localized full month name.
func (l *Localizer) MonthLong(m time.Month) string {
	return l.Translate("MONTH_LONG_" + strconv.Itoa(int(m)))
}

// LongDate renders a date the way the popover header shows it, e.g.
// "Friday, Mar 1, 2024" or "Freitag, 1. Mär 2024".
func (l *Localizer) LongDate(t time.Time) string {
	r := strings.NewReplacer(
		"{weekday}", l.WeekdayLong(t.Weekday()),
		"{month}", l.MonthShort(t.Month()),
		"{day}", strconv.Itoa(t.Day()),
		"{year}", strconv.Itoa(t.Year()),
	)
	return r.Replace(l.Translate("LONG_DATE"))
}
