package booking

import (
	"sync"

	"github.com/Babismam/gym-frontend/internal/auth"
)

// APIFactory builds an API bound to one member's session, so remote calls
// carry the member's own token.
type APIFactory func(session auth.Session) API

// Manager hands out one coordinator per member. Coordinators live from the
// member's first schedule load until logout; their in-memory view is only a
// responsiveness convenience and is rebuilt from server data on every load.
type Manager struct {
	mu           sync.Mutex
	apiFactory   APIFactory
	notifier     Notifier
	confirmer    Confirmer
	coordinators map[int]*Coordinator
}

func NewManager(apiFactory APIFactory, notifier Notifier, confirmer Confirmer) *Manager {
	if confirmer == nil {
		confirmer = AlwaysConfirm
	}
	return &Manager{
		apiFactory:   apiFactory,
		notifier:     notifier,
		confirmer:    confirmer,
		coordinators: make(map[int]*Coordinator),
	}
}

// Coordinator returns the member's coordinator, creating it on first use.
func (m *Manager) Coordinator(session auth.Session) *Coordinator {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.coordinators[session.UserID]; ok {
		return c
	}

	c := NewCoordinator(session, m.apiFactory(session), m.notifier, m.confirmer)
	m.coordinators[session.UserID] = c
	return c
}

// Drop forgets the member's coordinator, e.g. at logout.
func (m *Manager) Drop(memberID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.coordinators, memberID)
}
