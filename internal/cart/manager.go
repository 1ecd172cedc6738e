package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// Manager binds the pure state machine to a Store, one snapshot per session.
// Mutations are total: a broken store degrades to in-memory behavior for the
// request at hand, it never fails a cart action.
type Manager struct {
	store Store
	logg  *logger.Logger

	mu       sync.Mutex
	hydrated map[string]bool
}

// Snapshot is a hydrated view of one session's cart.
type Snapshot struct {
	State    State
	Hydrated bool
}

func NewManager(store Store, logg *logger.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	return &Manager{
		store:    store,
		logg:     logg,
		hydrated: map[string]bool{},
	}, nil
}

// Hydrate loads the session's persisted snapshot. A read failure or missing
// key yields the empty state. The Hydrated flag starts false and flips true
// exactly once per session, after the first read attempt regardless of
// outcome.
func (m *Manager) Hydrate(ctx context.Context, sessionID string) Snapshot {
	state := m.load(ctx, sessionID)

	m.mu.Lock()
	m.hydrated[sessionID] = true
	m.mu.Unlock()

	return Snapshot{State: state, Hydrated: true}
}

// IsHydrated reports whether the session has gone through its first read.
func (m *Manager) IsHydrated(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hydrated[sessionID]
}

// Add applies the add action and persists the result.
func (m *Manager) Add(ctx context.Context, sessionID string, item Item) State {
	return m.apply(ctx, sessionID, func(s State) State { return s.Add(item) })
}

// Increment applies the increment action and persists the result.
func (m *Manager) Increment(ctx context.Context, sessionID, itemID string) State {
	return m.apply(ctx, sessionID, func(s State) State { return s.Increment(itemID) })
}

// Decrement applies the decrement action and persists the result.
func (m *Manager) Decrement(ctx context.Context, sessionID, itemID string) State {
	return m.apply(ctx, sessionID, func(s State) State { return s.Decrement(itemID) })
}

// Remove applies the remove action and persists the result.
func (m *Manager) Remove(ctx context.Context, sessionID, itemID string) State {
	return m.apply(ctx, sessionID, func(s State) State { return s.Remove(itemID) })
}

// Clear empties the session's cart and drops the persisted snapshot.
func (m *Manager) Clear(ctx context.Context, sessionID string) State {
	if err := m.store.Clear(ctx, sessionID); err != nil {
		m.logg.Error(m.logg.WithCartSession(ctx, sessionID), "clearing cart snapshot failed", err)
	}
	return Empty()
}

func (m *Manager) apply(ctx context.Context, sessionID string, action func(State) State) State {
	next := action(m.load(ctx, sessionID))
	m.persist(ctx, sessionID, next)
	return next
}

func (m *Manager) load(ctx context.Context, sessionID string) State {
	raw, found, err := m.store.Get(ctx, sessionID)
	if err != nil {
		m.logg.Error(m.logg.WithCartSession(ctx, sessionID), "reading cart snapshot failed", err)
		return Empty()
	}
	if !found {
		return Empty()
	}
	return DecodeSnapshot(raw)
}

func (m *Manager) persist(ctx context.Context, sessionID string, state State) {
	snapshot, err := EncodeSnapshot(state)
	if err != nil {
		m.logg.Error(m.logg.WithCartSession(ctx, sessionID), "encoding cart snapshot failed", err)
		return
	}
	if err := m.store.Set(ctx, sessionID, snapshot); err != nil {
		m.logg.Error(m.logg.WithCartSession(ctx, sessionID), "writing cart snapshot failed", err)
	}
}
