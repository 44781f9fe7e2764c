// ABOUTME: Tracker store: CRUD over a single serialized blob in key-value storage.
// ABOUTME: Owns name ordering (locale collation) and migrate-on-read write-back.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/harperreed/huely/internal/models"
)

const (
	// TrackersKey holds the full tracker list as one JSON blob.
	TrackersKey = "trackers"
	// ParamsKey is the stash used to hand parameters to the next view.
	ParamsKey = "state_params"
)

// Store is the durable tracker store. Every mutation is a read-modify-write
// of the whole blob; interleaved writers are not coordinated and the last
// write wins.
type Store interface {
	List() ([]*models.Tracker, error)
	Add(name string) ([]*models.Tracker, error)
	Update(t *models.Tracker) ([]*models.Tracker, error)
	Remove(t *models.Tracker) ([]*models.Tracker, error)

	// Backup
	GetAllData() (*BackupData, error)
	ImportData(data *BackupData) error

	// View-parameter stash
	SetParams(params map[string]string) error
	TakeParams() (map[string]string, error)

	Close() error
}

// kv is the minimal key-value contract a Store backend provides.
type kv interface {
	get(key string) ([]byte, bool, error)
	set(key string, value []byte) error
	delete(key string) error
	keys() ([]string, error)
	close() error
}

type store struct {
	kv       kv
	collator *collate.Collator
}

func newStore(backend kv, tag language.Tag) *store {
	return &store{
		kv:       backend,
		collator: collate.New(tag),
	}
}

// List deserializes the stored blob, applying the legacy annotation
// migration once when needed. Missing or malformed data yields an empty
// list, never an error the caller has to handle.
func (s *store) List() ([]*models.Tracker, error) {
	blob, ok, err := s.kv.get(TrackersKey)
	if err != nil {
		return nil, fmt.Errorf("read trackers: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var raws []rawTracker
	if err := json.Unmarshal(blob, &raws); err != nil {
		log.Warn("stored tracker data malformed, starting empty", "err", err)
		return nil, nil
	}

	raws, changed := migrateAnnotations(raws)

	trackers := make([]*models.Tracker, 0, len(raws))
	for _, r := range raws {
		trackers = append(trackers, r.toTracker())
	}

	if changed {
		if err := s.persist(trackers); err != nil {
			return nil, fmt.Errorf("write back migrated trackers: %w", err)
		}
	}

	s.sortByName(trackers)
	return trackers, nil
}

// Add appends a new tracker unless one with the exact name already exists,
// in which case the current list is returned unchanged.
func (s *store) Add(name string) ([]*models.Tracker, error) {
	trackers, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, t := range trackers {
		if t.Name == name {
			return trackers, nil
		}
	}

	trackers = append(trackers, models.NewTracker(name))
	if err := s.persist(trackers); err != nil {
		return nil, err
	}
	s.sortByName(trackers)
	return trackers, nil
}

// Update replaces the record whose Created matches; a tracker with no match
// is inserted.
func (s *store) Update(t *models.Tracker) ([]*models.Tracker, error) {
	trackers, err := s.List()
	if err != nil {
		return nil, err
	}

	kept := trackers[:0]
	for _, existing := range trackers {
		if existing.Created != t.Created {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, t)

	if err := s.persist(kept); err != nil {
		return nil, err
	}
	s.sortByName(kept)
	return kept, nil
}

// Remove deletes the record whose Created matches.
func (s *store) Remove(t *models.Tracker) ([]*models.Tracker, error) {
	trackers, err := s.List()
	if err != nil {
		return nil, err
	}

	kept := trackers[:0]
	for _, existing := range trackers {
		if existing.Created != t.Created {
			kept = append(kept, existing)
		}
	}

	if err := s.persist(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SetParams stashes parameters for the next view to pick up.
func (s *store) SetParams(params map[string]string) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	return s.kv.set(ParamsKey, data)
}

// TakeParams reads the stashed parameters and clears them; the stash is
// consumed by exactly one reader.
func (s *store) TakeParams() (map[string]string, error) {
	blob, ok, err := s.kv.get(ParamsKey)
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if err := s.kv.delete(ParamsKey); err != nil {
		return nil, fmt.Errorf("clear params: %w", err)
	}

	var params map[string]string
	if err := json.Unmarshal(blob, &params); err != nil {
		return nil, nil
	}
	return params, nil
}

func (s *store) Close() error {
	return s.kv.close()
}

// persist writes the whole list back as one blob, sorted by name.
func (s *store) persist(trackers []*models.Tracker) error {
	s.sortByName(trackers)
	data, err := json.Marshal(trackers)
	if err != nil {
		return fmt.Errorf("marshal trackers: %w", err)
	}
	if err := s.kv.set(TrackersKey, data); err != nil {
		return fmt.Errorf("write trackers: %w", err)
	}
	return nil
}

func (s *store) sortByName(trackers []*models.Tracker) {
	sort.SliceStable(trackers, func(i, j int) bool {
		return s.collator.CompareString(trackers[i].Name, trackers[j].Name) < 0
	})
}
