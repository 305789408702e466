// Package storage persists one JSON snapshot per store. A snapshot is the
// whole serialized collection of a store, overwritten on every mutation.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var ErrEmptyName = errors.New("snapshot name cannot be empty")

type Snapshotter interface {
	// Load decodes the named snapshot into dst. found is false when no
	// snapshot has been written under name yet.
	Load(ctx context.Context, name string, dst any) (found bool, err error)
	Save(ctx context.Context, name string, src any) error
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, name string, dst any) (bool, error) {
	const op = "storage.MemoryStore.Load"
	if name == "" {
		return false, fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	m.mu.RLock()
	raw, ok := m.data[name]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (m *MemoryStore) Save(_ context.Context, name string, src any) error {
	const op = "storage.MemoryStore.Save"
	if name == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyName)
	}

	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	m.data[name] = raw
	m.mu.Unlock()
	return nil
}

// Names lists the snapshots written so far.
func (m *MemoryStore) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	return names
}
