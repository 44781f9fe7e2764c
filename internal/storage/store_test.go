// ABOUTME: Tests for tracker store CRUD and ordering.
// ABOUTME: Runs against the in-memory backend; badger specifics live in badger_test.go.
package storage

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/harperreed/huely/internal/models"
)

func TestAddAndList(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	list, err := s.Add("Meditation")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Meditation" {
		t.Fatalf("list after Add = %v", list)
	}

	list, err = s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Meditation" {
		t.Fatalf("List = %v, want one tracker named Meditation", list)
	}
	if list[0].Created == 0 {
		t.Error("expected Created timestamp to be set")
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	if _, err := s.Add("X"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	list, err := s.Add("X")
	if err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("duplicate Add grew the list to %d", len(list))
	}
}

func TestListEmptyStore(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

func TestUpdateReplacesByCreated(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	list, _ := s.Add("Mood")
	tr := list[0]
	tr.Mark("2024-03-01", 2)
	tr.SetNote("2024-03-01", "felt calm")

	if _, err := s.Update(tr); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Update duplicated the record: %d entries", len(list))
	}
	a := list[0].Dates["2024-03-01"]
	if a.Category != 2 || a.Note != "felt calm" {
		t.Errorf("annotation = %+v, want category 2 with note", a)
	}
}

func TestUpdateUnknownInserts(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	tr := models.NewTracker("Ghost")
	list, err := s.Update(tr)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ghost" {
		t.Errorf("list = %v, want inserted tracker", list)
	}
}

func TestRemove(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	list, _ := s.Add("A")
	s.Add("B")

	list, err := s.Remove(list[0])
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "B" {
		t.Errorf("list after Remove = %v, want only B", list)
	}
}

func TestListSortedByName(t *testing.T) {
	s := OpenMemory(language.German)
	defer s.Close()

	s.Add("Zucker")
	s.Add("Atmen")
	s.Add("Österreich") // collation puts Ö with O, not after Z

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"Atmen", "Österreich", "Zucker"}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("list[%d] = %s, want %s", i, list[i].Name, name)
		}
	}
}

func TestUpdatePreservesSortOrder(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	s.Add("Banana")
	list, _ := s.Add("Apple")

	var banana *models.Tracker
	for _, tr := range list {
		if tr.Name == "Banana" {
			banana = tr
		}
	}
	banana.Mark("2024-01-01", 1)

	list, err := s.Update(banana)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if list[0].Name != "Apple" || list[1].Name != "Banana" {
		t.Errorf("order after Update = [%s %s]", list[0].Name, list[1].Name)
	}
}

func TestMalformedBlobTreatedAsEmpty(t *testing.T) {
	s := OpenMemory(language.English).(*store)
	defer s.Close()

	if err := s.kv.set(TrackersKey, []byte("{not json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list for malformed blob, got %d", len(list))
	}
}

func TestParamsStashReadOnce(t *testing.T) {
	s := OpenMemory(language.English)
	defer s.Close()

	if err := s.SetParams(map[string]string{"tracker": "Meditation"}); err != nil {
		t.Fatalf("SetParams failed: %v", err)
	}

	params, err := s.TakeParams()
	if err != nil {
		t.Fatalf("TakeParams failed: %v", err)
	}
	if params["tracker"] != "Meditation" {
		t.Errorf("params = %v", params)
	}

	// The stash is consumed by the first reader.
	params, err = s.TakeParams()
	if err != nil {
		t.Fatalf("second TakeParams failed: %v", err)
	}
	if params != nil {
		t.Errorf("expected cleared stash, got %v", params)
	}
}
