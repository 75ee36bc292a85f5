// Package store holds the single authoritative simulation state.
//
// The store follows a single-writer discipline: the engine commits a
// new state with Apply exactly once per tick, while the renderer and
// snapshot writer read independent copies through View. Store is NOT
// thread-safe; the cooperative frame loop is its only client.
package store

import "github.com/san-kum/expansim/internal/cosmos"

type Store struct {
	state cosmos.State
}

func New(initial cosmos.State) *Store {
	return &Store{state: initial.Clone()}
}

// View returns a deep copy of the current state. Readers can never
// reach the authoritative particle slice through it.
func (s *Store) View() cosmos.State {
	return s.state.Clone()
}

// Apply commits the engine's freshly computed state. The tick is atomic
// from a reader's perspective: either the old state or the new one is
// visible, never a partial update.
func (s *Store) Apply(next cosmos.State) {
	s.state = next
}

// TogglePause flips the pause flag and reports the new value. Pause is
// part of simulation state but is the one field written outside the
// engine, on behalf of the control surface.
func (s *Store) TogglePause() bool {
	s.state.Paused = !s.state.Paused
	return s.state.Paused
}

func (s *Store) Paused() bool { return s.state.Paused }
