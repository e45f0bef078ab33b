package events

import (
	"sync"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/rules"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events.
// Publish may be called from many goroutines at once.
type Manager struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	em.mu.RLock()
	defer em.mu.RUnlock()
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types ---

// SessionStartEvent is published when an interactive session begins.
type SessionStartEvent struct {
	Choices []rules.Choice
}

// RoundPlayedEvent carries the complete result of one round.
type RoundPlayedEvent struct {
	User     rules.Choice
	Computer rules.Choice
	Outcome  rules.Outcome
}

// SessionEndEvent is published when the player leaves an interactive session.
type SessionEndEvent struct {
	Rounds int
}
