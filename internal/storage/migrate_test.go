// ABOUTME: Tests for the legacy annotation migration.
// ABOUTME: Covers scalar wrapping, the already-migrated probe, and write-back on List.
package storage

import (
	"encoding/json"
	"testing"

	"golang.org/x/text/language"
)

func TestMigrateWrapsScalars(t *testing.T) {
	raws := []rawTracker{
		{
			Name:    "Mood",
			Created: 1,
			Dates: map[string]json.RawMessage{
				"2024-03-01": json.RawMessage(`2`),
				"2024-03-02": json.RawMessage(`4`),
			},
		},
	}

	out, changed := migrateAnnotations(raws)
	if !changed {
		t.Fatal("expected migration to report a change")
	}
	if got := string(out[0].Dates["2024-03-01"]); got != `[2]` {
		t.Errorf("migrated value = %s, want [2]", got)
	}
	if got := string(out[0].Dates["2024-03-02"]); got != `[4]` {
		t.Errorf("migrated value = %s, want [4]", got)
	}
}

func TestMigrateSkipsIfAnyTuplePresent(t *testing.T) {
	raws := []rawTracker{
		{
			Name:    "Mood",
			Created: 1,
			Dates: map[string]json.RawMessage{
				"2024-03-01": json.RawMessage(`[2,"note"]`),
			},
		},
		{
			Name:    "Sleep",
			Created: 2,
			Dates: map[string]json.RawMessage{
				"2024-03-02": json.RawMessage(`3`),
			},
		},
	}

	// A single tuple anywhere means the data set is treated as migrated.
	out, changed := migrateAnnotations(raws)
	if changed {
		t.Error("expected no change when tuples are present")
	}
	if got := string(out[1].Dates["2024-03-02"]); got != `3` {
		t.Errorf("value rewritten despite skip: %s", got)
	}
}

func TestMigrateEmptyInput(t *testing.T) {
	if _, changed := migrateAnnotations(nil); changed {
		t.Error("empty input must not report a change")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	raws := []rawTracker{
		{
			Name:    "Mood",
			Created: 1,
			Dates:   map[string]json.RawMessage{"2024-03-01": json.RawMessage(`2`)},
		},
	}

	once, changed := migrateAnnotations(raws)
	if !changed {
		t.Fatal("first pass should migrate")
	}
	twice, changed := migrateAnnotations(once)
	if changed {
		t.Error("second pass should detect migrated data")
	}
	if got := string(twice[0].Dates["2024-03-01"]); got != `[2]` {
		t.Errorf("value after second pass = %s", got)
	}
}

func TestListMigratesLegacyBlobAndWritesBack(t *testing.T) {
	s := OpenMemory(language.English).(*store)
	defer s.Close()

	legacy := `[{"name":"Mood","created":1700000000000,"dates":{"2024-03-01":2}}]`
	if err := s.kv.set(TrackersKey, []byte(legacy)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if a := list[0].Dates["2024-03-01"]; a.Category != 2 {
		t.Errorf("annotation = %+v, want category 2", a)
	}

	// The migrated blob was written back: the stored form is now tuples.
	blob, ok, _ := s.kv.get(TrackersKey)
	if !ok {
		t.Fatal("blob missing after migration")
	}
	var raws []rawTracker
	if err := json.Unmarshal(blob, &raws); err != nil {
		t.Fatalf("stored blob unreadable: %v", err)
	}
	if got := string(raws[0].Dates["2024-03-01"]); got != `[2]` {
		t.Errorf("stored value = %s, want [2]", got)
	}
}

func TestToTrackerDropsUnreadableAnnotations(t *testing.T) {
	r := rawTracker{
		Name:    "Mood",
		Created: 1,
		Dates: map[string]json.RawMessage{
			"2024-03-01": json.RawMessage(`[2]`),
			"2024-03-02": json.RawMessage(`{"bad":"shape"}`),
		},
	}

	tr := r.toTracker()
	if len(tr.Dates) != 1 {
		t.Errorf("got %d annotations, want 1", len(tr.Dates))
	}
	if a := tr.Dates["2024-03-01"]; a.Category != 2 {
		t.Errorf("annotation = %+v", a)
	}
}
