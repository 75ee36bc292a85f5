package cosmos

import "fmt"

// Engine advances simulation state one tick at a time under its growth
// law. Advance is pure: it never mutates its input and identical inputs
// yield identical outputs.
type Engine struct {
	law GrowthLaw
}

func NewEngine(law GrowthLaw) *Engine {
	return &Engine{law: law}
}

func (e *Engine) Law() GrowthLaw { return e.law }

// Advance computes the state after one tick of length dt. A paused
// state passes through unchanged. On error the input state comes back
// untouched; callers keep what they had.
func (e *Engine) Advance(s State, dt float64) (State, error) {
	if dt <= 0 || !finite(dt) {
		return s, fmt.Errorf("%w: dt=%v", ErrInvalidTimeStep, dt)
	}
	if s.Paused {
		return s.Clone(), nil
	}

	next := s.Clone()
	next.ScaleFactor = e.law.Next(s.ScaleFactor, dt)
	ratio := next.ScaleFactor / s.ScaleFactor
	h := e.law.Rate()

	// Self-similar expansion about the origin: positions scale with the
	// factor ratio, velocities track the Hubble flow v = H·r.
	for i := range next.Particles {
		p := &next.Particles[i]
		p.X *= ratio
		p.Y *= ratio
		p.VX = h * p.X
		p.VY = h * p.Y
	}

	next.Elapsed += dt
	next.Steps++
	return next, nil
}
