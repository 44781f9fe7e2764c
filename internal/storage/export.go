// ABOUTME: Backup export and import for the tracker store.
// ABOUTME: Supports the app's bare key-map backups plus a versioned envelope, JSON or YAML.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// BackupData is the full-store backup: every storage key with its raw JSON
// value, wrapped in a small envelope.
type BackupData struct {
	Version    string                     `json:"version"`
	ExportedAt time.Time                  `json:"exported_at"`
	Tool       string                     `json:"tool"`
	Entries    map[string]json.RawMessage `json:"entries"`
}

// BackupFilename returns the timestamped default export filename.
func BackupFilename(t time.Time) string {
	return "Huely-Backup__" + t.Format("2006-01-02_15-04-05") + ".json"
}

// GetAllData snapshots every stored key for export.
func (s *store) GetAllData() (*BackupData, error) {
	keys, err := s.kv.keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	entries := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		value, ok, err := s.kv.get(key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", key, err)
		}
		if ok {
			entries[key] = json.RawMessage(value)
		}
	}

	return &BackupData{
		Version:    "1.1.0",
		ExportedAt: time.Now(),
		Tool:       "huely",
		Entries:    entries,
	}, nil
}

// ImportData replaces the entire store with the backup's entries.
func (s *store) ImportData(data *BackupData) error {
	existing, err := s.kv.keys()
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}
	for _, key := range existing {
		if err := s.kv.delete(key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}

	for key, value := range data.Entries {
		if err := s.kv.set(key, value); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
	}
	return nil
}

// RenderJSON renders a backup as indented JSON.
func RenderJSON(b *BackupData) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// RenderYAML renders a backup as YAML, with entry values expanded into
// structured form instead of raw JSON strings.
func RenderYAML(b *BackupData) ([]byte, error) {
	entries := make(map[string]any, len(b.Entries))
	for key, raw := range b.Entries {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		entries[key] = v
	}

	return yaml.Marshal(struct {
		Version    string         `yaml:"version"`
		ExportedAt string         `yaml:"exported_at"`
		Tool       string         `yaml:"tool"`
		Entries    map[string]any `yaml:"entries"`
	}{
		Version:    b.Version,
		ExportedAt: b.ExportedAt.Format(time.RFC3339),
		Tool:       b.Tool,
		Entries:    entries,
	})
}

// ParseBackup reads a backup file. Both the versioned envelope and the
// app's original bare key-map form ({"trackers": [...]}) are accepted.
func ParseBackup(data []byte) (*BackupData, error) {
	var envelope BackupData
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Entries != nil {
		return &envelope, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unrecognized backup format: %w", err)
	}
	return &BackupData{Entries: entries}, nil
}
