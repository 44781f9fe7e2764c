// ABOUTME: Legacy schema migration for stored tracker data.
// ABOUTME: Wraps pre-1.1.0 scalar date markers into [category, note?] tuples.
package storage

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/harperreed/huely/internal/models"
)

// rawTracker is the half-decoded stored form: date values stay raw so the
// migration can probe their shape before the model parses them.
type rawTracker struct {
	Name    string                     `json:"name"`
	Created int64                      `json:"created"`
	Dates   map[string]json.RawMessage `json:"dates"`
}

// migrateAnnotations upgrades legacy scalar date markers ("2024-03-01": 2)
// to the tuple form ("2024-03-01": [2]). It is a pure transform: the caller
// performs the write-back when changed is true.
//
// Migration state is assumed uniform across all records: finding a single
// tuple-shaped value means the data is already migrated and the input is
// returned untouched.
func migrateAnnotations(raws []rawTracker) (out []rawTracker, changed bool) {
	for _, r := range raws {
		for _, v := range r.Dates {
			if isTuple(v) {
				return raws, false
			}
		}
	}

	for _, r := range raws {
		for date, v := range r.Dates {
			r.Dates[date] = append(append(json.RawMessage("["), v...), ']')
			changed = true
		}
	}
	return raws, changed
}

func isTuple(v json.RawMessage) bool {
	for _, b := range v {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

// toTracker finishes decoding a rawTracker into the model form. Annotation
// values that still fail to parse are dropped rather than failing the load.
func (r rawTracker) toTracker() *models.Tracker {
	t := &models.Tracker{
		Name:    r.Name,
		Created: r.Created,
		Dates:   make(map[string]models.Annotation, len(r.Dates)),
	}
	for date, v := range r.Dates {
		var a models.Annotation
		if err := json.Unmarshal(v, &a); err != nil {
			log.Warn("dropping unreadable annotation", "date", date, "err", err)
			continue
		}
		if !a.IsZero() {
			t.Dates[date] = a
		}
	}
	return t
}
