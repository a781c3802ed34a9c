// Package session owns per-conversation state and sequences the
// recommendation pipeline: rules first, the model path only when no rule
// fires.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/metalagman/stackadvisor/internal/advisor"
	"github.com/metalagman/stackadvisor/internal/memory"
)

// Session is the explicit per-conversation state object: the current
// project details snapshot, the bounded model memory, and the full
// display transcript. Never looked up through ambient globals; callers
// hold and pass the handle.
type Session struct {
	ID         string
	Details    advisor.ProjectDetails
	Memory     *memory.Window
	Transcript []advisor.Turn
}

// New creates a session with default project details and an empty
// memory window of the given size.
func New(windowSize int) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Details: advisor.DefaultProjectDetails(),
		Memory:  memory.NewWindow(windowSize),
	}
}

// ClearHistory empties the model memory and the display transcript.
// Project details stay untouched.
func (s *Session) ClearHistory() {
	s.Memory.Clear()
	s.Transcript = nil
}

// Manager partitions sessions by ID. Sessions never share mutable
// state; the lock only guards the map itself.
type Manager struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	windowSize int
}

// NewManager creates a session manager whose sessions use the given
// memory window size.
func NewManager(windowSize int) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		windowSize: windowSize,
	}
}

// Create registers and returns a fresh session.
func (m *Manager) Create() *Session {
	s := New(m.windowSize)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session for the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}
