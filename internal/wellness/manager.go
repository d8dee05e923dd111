package wellness

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mindscope-app/mindscope/internal/adapter/oracle"
	"github.com/mindscope-app/mindscope/internal/repository"
)

// sessionEntry tracks one user's session through its load. ready closes when
// the load settles; until then only the creating goroutine touches sess/err.
type sessionEntry struct {
	ready chan struct{}
	sess  *Session
	err   error
}

// Manager hands out one Session per signed-in user and re-loads state on
// identity changes. It owns the sessions' lifecycle: a logout deactivates
// and evicts the user's session. A session is never handed out before its
// load completes; concurrent first accesses wait on the same load.
type Manager struct {
	store  repository.Store
	oracle *oracle.Oracle
	log    *slog.Logger

	mu      sync.Mutex
	entries map[string]*sessionEntry
}

// NewManager creates a session manager.
func NewManager(store repository.Store, ora *oracle.Oracle, log *slog.Logger) *Manager {
	return &Manager{
		store:   store,
		oracle:  ora,
		log:     log,
		entries: make(map[string]*sessionEntry),
	}
}

// Session returns the user's session, loading persisted state on first
// access. Callers racing the first access block until that load settles and
// share its outcome.
func (m *Manager) Session(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	if e, ok := m.entries[userID]; ok {
		m.mu.Unlock()
		select {
		case <-e.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if e.err != nil {
			return nil, e.err
		}
		return e.sess, nil
	}

	e := &sessionEntry{ready: make(chan struct{})}
	m.entries[userID] = e
	m.mu.Unlock()

	s := NewSession(userID, m.store, m.oracle, m.log)
	if err := s.Load(ctx); err != nil {
		e.err = err
		close(e.ready)

		m.mu.Lock()
		if m.entries[userID] == e {
			delete(m.entries, userID)
		}
		m.mu.Unlock()
		return nil, err
	}

	e.sess = s
	close(e.ready)
	return s, nil
}

// Evict deactivates and removes the user's session, typically on logout.
// In-flight background work settles as a no-op.
func (m *Manager) Evict(userID string) {
	m.mu.Lock()
	e, ok := m.entries[userID]
	if ok {
		delete(m.entries, userID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	<-e.ready
	if e.sess != nil {
		e.sess.Deactivate()
	}
}

// Close deactivates all sessions and waits for background work to settle.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := make([]*sessionEntry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	m.entries = make(map[string]*sessionEntry)
	m.mu.Unlock()

	for _, e := range entries {
		<-e.ready
		if e.sess != nil {
			e.sess.Deactivate()
			e.sess.Close()
		}
	}
}
