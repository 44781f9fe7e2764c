// ABOUTME: In-memory store backend for tests and the view's unit tests.
// ABOUTME: Implements the kv contract over a plain map.
package storage

import (
	"sort"

	"golang.org/x/text/language"
)

// OpenMemory returns a Store backed by process memory. Nothing is durable;
// intended for tests.
func OpenMemory(tag language.Tag) Store {
	return newStore(&memKV{values: map[string][]byte{}}, tag)
}

type memKV struct {
	values map[string][]byte
}

func (m *memKV) get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}

func (m *memKV) delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *memKV) keys() ([]string, error) {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memKV) close() error {
	return nil
}
