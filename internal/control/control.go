// Package control maps discrete external control events (keyboard or
// otherwise) onto configuration changes and engine commands. No event
// touches particle data; physical state changes all route through the
// expansion engine.
package control

import (
	"github.com/san-kum/expansim/internal/config"
	"github.com/san-kum/expansim/internal/cosmos"
	"github.com/san-kum/expansim/internal/snapshot"
)

type Event int

const (
	TogglePause Event = iota
	DotSizeUp
	DotSizeDown
	Save
	Quit
)

func (e Event) String() string {
	switch e {
	case TogglePause:
		return "toggle-pause"
	case DotSizeUp:
		return "dot-size-up"
	case DotSizeDown:
		return "dot-size-down"
	case Save:
		return "save"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Result reports what an event did: a quit signal, the path of a saved
// snapshot, or the error a save produced.
type Result struct {
	Quit         bool
	SnapshotPath string
	Err          error
}

// StateStore is the slice of the store the surface needs: a readable
// view plus the delegated pause flag.
type StateStore interface {
	View() cosmos.State
	TogglePause() bool
}

// Surface owns the render dot size and forwards everything else.
type Surface struct {
	store   StateStore
	writer  *snapshot.Writer
	dotSize int
}

func New(store StateStore, writer *snapshot.Writer, dotSize int) *Surface {
	return &Surface{
		store:   store,
		writer:  writer,
		dotSize: config.ClampDotSize(dotSize),
	}
}

func (s *Surface) DotSize() int { return s.dotSize }

// Handle applies one control event. Save failures come back in the
// result rather than stopping anything.
func (s *Surface) Handle(ev Event) Result {
	switch ev {
	case TogglePause:
		s.store.TogglePause()
	case DotSizeUp:
		s.dotSize = config.ClampDotSize(s.dotSize + 1)
	case DotSizeDown:
		s.dotSize = config.ClampDotSize(s.dotSize - 1)
	case Save:
		path, err := s.writer.Save(s.store.View())
		return Result{SnapshotPath: path, Err: err}
	case Quit:
		return Result{Quit: true}
	}
	return Result{}
}
