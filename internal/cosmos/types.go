package cosmos

import "math"

// Particle is a massless point carried by the expansion. Velocities are
// the Hubble-flow velocities v = H·r, kept alongside positions so a
// persisted state is self-describing.
type Particle struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// State is the authoritative simulation state for a run. The particle
// count is fixed for the lifetime of a run; only the engine produces
// new states, and only the store holds the current one.
type State struct {
	Particles   []Particle
	ScaleFactor float64
	Elapsed     float64
	Steps       int
	Paused      bool
}

// NewState wraps an initial particle field with starting scalars
// (scale factor 1.0, time zero, running).
func NewState(field []Particle) State {
	return State{
		Particles:   field,
		ScaleFactor: 1.0,
	}
}

func (s State) Clone() State {
	c := s
	c.Particles = make([]Particle, len(s.Particles))
	copy(c.Particles, s.Particles)
	return c
}

func (s State) IsValid() bool {
	if !finite(s.ScaleFactor) || !finite(s.Elapsed) {
		return false
	}
	for _, p := range s.Particles {
		if !finite(p.X) || !finite(p.Y) || !finite(p.VX) || !finite(p.VY) {
			return false
		}
	}
	return true
}

// Radius returns the largest particle distance from the origin, used by
// renderers to fit the field into view.
func (s State) Radius() float64 {
	max := 0.0
	for _, p := range s.Particles {
		if r := math.Hypot(p.X, p.Y); r > max {
			max = r
		}
	}
	return max
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
