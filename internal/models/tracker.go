// ABOUTME: Tracker model and per-date annotation tuple for habit data.
// ABOUTME: Defines paint categories, note handling, and the dates-map invariant.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Category is the paint state recorded for a single day.
// Zero means "no category"; valid painted values are 1 through 4.
type Category int

const (
	CategoryNone Category = 0
	CategoryMin  Category = 1
	CategoryMax  Category = 4
)

// IsValid reports whether c is a paintable category value.
func (c Category) IsValid() bool {
	return c >= CategoryMin && c <= CategoryMax
}

// Annotation is the value stored for one calendar date: a paint category
// and an optional note. It serializes as the compact tuple format used by
// the app's backups: [category], [category, "note"] or [null, "note"].
type Annotation struct {
	Category Category
	Note     string
}

// IsZero reports whether the annotation carries neither category nor note.
// Zero annotations must not be stored (the date key is removed instead).
func (a Annotation) IsZero() bool {
	return a.Category == CategoryNone && a.Note == ""
}

// MarshalJSON renders the annotation as its tuple form.
func (a Annotation) MarshalJSON() ([]byte, error) {
	tuple := make([]any, 0, 2)
	if a.Category == CategoryNone {
		tuple = append(tuple, nil)
	} else {
		tuple = append(tuple, int(a.Category))
	}
	if a.Note != "" {
		tuple = append(tuple, a.Note)
	}
	return json.Marshal(tuple)
}

// UnmarshalJSON parses the tuple form. Legacy scalar markers are not
// accepted here; the storage layer migrates those before decoding.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("annotation is not a tuple: %w", err)
	}

	*a = Annotation{}
	if len(tuple) == 0 {
		return nil
	}

	if string(tuple[0]) != "null" {
		var c int
		if err := json.Unmarshal(tuple[0], &c); err != nil {
			return fmt.Errorf("annotation category: %w", err)
		}
		a.Category = Category(c)
	}
	if len(tuple) > 1 {
		if err := json.Unmarshal(tuple[1], &a.Note); err != nil {
			return fmt.Errorf("annotation note: %w", err)
		}
	}
	return nil
}

// Tracker is one named habit/mood log. Created (milliseconds since epoch)
// is the record's identity; there is no separate id field.
type Tracker struct {
	Name    string                `json:"name"`
	Created int64                 `json:"created"`
	Dates   map[string]Annotation `json:"dates"`
}

// NewTracker creates a Tracker with the current creation timestamp and an
// empty dates map.
func NewTracker(name string) *Tracker {
	return &Tracker{
		Name:    name,
		Created: time.Now().UnixMilli(),
		Dates:   map[string]Annotation{},
	}
}

// Mark sets the paint category for an ISO date, preserving any note.
// Passing CategoryNone removes the category; if that leaves the annotation
// empty the date key is removed entirely.
func (t *Tracker) Mark(date string, c Category) {
	a := t.Dates[date]
	a.Category = c
	t.put(date, a)
}

// SetNote replaces the note for an ISO date, preserving any category.
// The note is trimmed; an empty result counts as "no note".
func (t *Tracker) SetNote(date, note string) {
	a := t.Dates[date]
	a.Note = strings.TrimSpace(note)
	t.put(date, a)
}

// Clear removes the date's annotation entirely.
func (t *Tracker) Clear(date string) {
	delete(t.Dates, date)
}

func (t *Tracker) put(date string, a Annotation) {
	if a.IsZero() {
		delete(t.Dates, date)
		return
	}
	if t.Dates == nil {
		t.Dates = map[string]Annotation{}
	}
	t.Dates[date] = a
}

// EarliestDate returns the oldest annotated ISO date, if any. ISO dates
// order lexicographically, so a plain string compare suffices.
func (t *Tracker) EarliestDate() (string, bool) {
	earliest := ""
	for date := range t.Dates {
		if earliest == "" || date < earliest {
			earliest = date
		}
	}
	return earliest, earliest != ""
}

// SanitizeName normalizes user-entered tracker names: trimmed, control
// characters stripped.
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
