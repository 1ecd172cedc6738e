package cart

import (
	"context"
	"sync"
)

// Store is the persistence port for cart snapshots. Implementations hold one
// serialized snapshot per session key, overwritten wholesale on every write.
type Store interface {
	// Get returns the stored snapshot and whether one exists.
	Get(ctx context.Context, sessionID string) (string, bool, error)
	// Set overwrites the stored snapshot.
	Set(ctx context.Context, sessionID string, snapshot string) error
	// Clear removes the stored snapshot.
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is a map-backed Store for tests and local development.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: map[string]string{}}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshot, ok := m.snapshots[sessionID]
	return snapshot, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, sessionID string, snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[sessionID] = snapshot
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, sessionID)
	return nil
}
