// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs command handlers directly against an in-memory store.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/harperreed/huely/internal/config"
	"github.com/harperreed/huely/internal/i18n"
	"github.com/harperreed/huely/internal/models"
	"github.com/harperreed/huely/internal/storage"
)

// setupCLI wires the package globals to an in-memory store.
func setupCLI(t *testing.T) {
	t.Helper()

	store = storage.OpenMemory(language.English)
	loc = i18n.Load("en")
	cfg = &config.Config{}
	t.Cleanup(func() {
		_ = store.Close()
		store = nil
	})
}

func resetMarkFlags() {
	markDate = ""
	markNote = ""
	markClear = false
}

func TestAddCommand(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"Meditation"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// Multi-word names are joined.
	if err := addCmd.RunE(addCmd, []string{"Morning", "run"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	// Duplicate is a no-op, not an error.
	if err := addCmd.RunE(addCmd, []string{"Meditation"}); err != nil {
		t.Fatalf("duplicate add failed: %v", err)
	}

	trackers, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(trackers) != 2 {
		t.Fatalf("expected 2 trackers, got %d", len(trackers))
	}
	if trackers[0].Name != "Meditation" || trackers[1].Name != "Morning run" {
		t.Errorf("unexpected names: %q, %q", trackers[0].Name, trackers[1].Name)
	}
}

func TestAddCommandEmptyName(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestRenameCommand(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"Mediation"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := renameCmd.RunE(renameCmd, []string{"Mediation", "Meditation"}); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	trackers, _ := store.List()
	if len(trackers) != 1 || trackers[0].Name != "Meditation" {
		t.Errorf("rename not persisted: %+v", trackers)
	}

	if err := renameCmd.RunE(renameCmd, []string{"Nope", "Whatever"}); err == nil {
		t.Error("expected error renaming missing tracker")
	}
}

func TestDeleteCommand(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"Meditation"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := deleteCmd.RunE(deleteCmd, []string{"Meditation"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	trackers, _ := store.List()
	if len(trackers) != 0 {
		t.Errorf("expected no trackers, got %d", len(trackers))
	}

	if err := deleteCmd.RunE(deleteCmd, []string{"Meditation"}); err == nil {
		t.Error("expected error deleting missing tracker")
	}
}

func TestMarkCommand(t *testing.T) {
	setupCLI(t)
	resetMarkFlags()

	if err := addCmd.RunE(addCmd, []string{"Mood"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	markDate = "2024-06-15"
	if err := markCmd.RunE(markCmd, []string{"Mood", "3"}); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	markDate = "2024-06-14"
	markNote = "rough day"
	if err := markCmd.RunE(markCmd, []string{"Mood", "1"}); err != nil {
		t.Fatalf("mark with note failed: %v", err)
	}

	resetMarkFlags()
	markDate = "2024-06-13"
	markNote = "observation"
	if err := markCmd.RunE(markCmd, []string{"Mood"}); err != nil {
		t.Fatalf("note-only mark failed: %v", err)
	}

	trackers, _ := store.List()
	dates := trackers[0].Dates
	if a := dates["2024-06-15"]; a.Category != 3 {
		t.Errorf("2024-06-15 = %+v, want category 3", a)
	}
	if a := dates["2024-06-14"]; a.Category != 1 || a.Note != "rough day" {
		t.Errorf("2024-06-14 = %+v", a)
	}
	if a := dates["2024-06-13"]; a.Category != models.CategoryNone || a.Note != "observation" {
		t.Errorf("2024-06-13 = %+v", a)
	}
}

func TestMarkCommandClear(t *testing.T) {
	setupCLI(t)
	resetMarkFlags()

	if err := addCmd.RunE(addCmd, []string{"Mood"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	markDate = "2024-06-15"
	markNote = "note"
	if err := markCmd.RunE(markCmd, []string{"Mood", "2"}); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	resetMarkFlags()
	markDate = "2024-06-15"
	markClear = true
	if err := markCmd.RunE(markCmd, []string{"Mood"}); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	trackers, _ := store.List()
	if _, ok := trackers[0].Dates["2024-06-15"]; ok {
		t.Error("cleared entry should be gone, note included")
	}
}

func TestMarkCommandValidation(t *testing.T) {
	setupCLI(t)
	resetMarkFlags()

	if err := addCmd.RunE(addCmd, []string{"Mood"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tests := []struct {
		name string
		date string
		args []string
	}{
		{"bad category", "2024-06-15", []string{"Mood", "7"}},
		{"non-numeric category", "2024-06-15", []string{"Mood", "three"}},
		{"bad date", "June 15", []string{"Mood", "2"}},
		{"missing tracker", "2024-06-15", []string{"Sleep", "2"}},
		{"nothing to do", "2024-06-15", []string{"Mood"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetMarkFlags()
			markDate = tt.date
			if err := markCmd.RunE(markCmd, tt.args); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	setupCLI(t)
	resetMarkFlags()

	if err := addCmd.RunE(addCmd, []string{"Mood"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	markDate = "2024-06-15"
	if err := markCmd.RunE(markCmd, []string{"Mood", "4"}); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "backup.json")
	exportOutput = file
	t.Cleanup(func() { exportOutput = "" })
	if err := exportCmd.RunE(exportCmd, []string{"json"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if !strings.Contains(string(data), "Mood") {
		t.Errorf("backup missing tracker:\n%s", data)
	}

	// Wipe and restore.
	if err := deleteCmd.RunE(deleteCmd, []string{"Mood"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := importCmd.RunE(importCmd, []string{file}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	trackers, _ := store.List()
	if len(trackers) != 1 || trackers[0].Dates["2024-06-15"].Category != 4 {
		t.Errorf("restore incomplete: %+v", trackers)
	}
}

func TestExportYAML(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"Mood"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "backup.yaml")
	exportOutput = file
	t.Cleanup(func() { exportOutput = "" })
	if err := exportCmd.RunE(exportCmd, []string{"yaml"}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if !strings.Contains(string(data), "trackers") {
		t.Errorf("yaml missing trackers key:\n%s", data)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	setupCLI(t)

	file := filepath.Join(t.TempDir(), "garbage.json")
	if err := os.WriteFile(file, []byte("not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := importCmd.RunE(importCmd, []string{file}); err == nil {
		t.Error("expected error importing garbage")
	}
}

func TestSparkline(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tr := models.NewTracker("Mood")
	tr.Mark("2024-06-15", 3)
	tr.Mark("2024-06-13", 1)

	line := sparkline(tr, now)
	cells := strings.Count(line, "█") + strings.Count(line, "·")
	if cells != 7 {
		t.Errorf("sparkline has %d cells, want 7: %q", cells, line)
	}
	if strings.Count(line, "█") != 2 {
		t.Errorf("sparkline has %d marked cells, want 2: %q", strings.Count(line, "█"), line)
	}
}

func TestFindTrackerByNameSanitizes(t *testing.T) {
	setupCLI(t)

	if err := addCmd.RunE(addCmd, []string{"Meditation"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tr, err := findTrackerByName("  Meditation  ")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if tr.Name != "Meditation" {
		t.Errorf("wrong tracker: %q", tr.Name)
	}
}
