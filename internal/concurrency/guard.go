package concurrency

import (
	"sync"
)

// Guard is the single mutual-exclusion lock serializing every
// read-modify-write of the deck state store and every persistence snapshot.
// Coarse-grained on purpose: one mutation at a time system-wide is enough at
// human command rates, and it keeps saves from ever observing a half-applied
// operation.
type Guard struct {
	mu sync.Mutex
}

// NewGuard creates a new Guard
func NewGuard() *Guard {
	return &Guard{}
}

// Lock acquires the guard
func (g *Guard) Lock() {
	g.mu.Lock()
}

// Unlock releases the guard
func (g *Guard) Unlock() {
	g.mu.Unlock()
}

// Do runs fn while holding the guard, releasing it on every exit path
// including panics.
func (g *Guard) Do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}
