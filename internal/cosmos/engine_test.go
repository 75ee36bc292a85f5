package cosmos

import (
	"errors"
	"math"
	"testing"
)

func gridState() State {
	return NewState([]Particle{
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	})
}

func TestAdvanceLinearGrowth(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.1})

	next, err := eng.Advance(gridState(), 1.0)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if math.Abs(next.ScaleFactor-1.1) > 1e-12 {
		t.Errorf("expected scale factor 1.1, got %v", next.ScaleFactor)
	}
	if math.Abs(next.Particles[0].X-1.1) > 1e-12 || math.Abs(next.Particles[0].Y-1.1) > 1e-12 {
		t.Errorf("expected particle (1,1) -> (1.1,1.1), got (%v,%v)", next.Particles[0].X, next.Particles[0].Y)
	}
	if next.Steps != 1 {
		t.Errorf("expected 1 step, got %d", next.Steps)
	}
	if math.Abs(next.Elapsed-1.0) > 1e-12 {
		t.Errorf("expected elapsed 1.0, got %v", next.Elapsed)
	}
}

func TestAdvanceHubbleVelocities(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.1})

	next, err := eng.Advance(gridState(), 1.0)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	for i, p := range next.Particles {
		if math.Abs(p.VX-0.1*p.X) > 1e-12 || math.Abs(p.VY-0.1*p.Y) > 1e-12 {
			t.Errorf("particle %d: expected v = H·r, got (%v,%v) at (%v,%v)", i, p.VX, p.VY, p.X, p.Y)
		}
	}
}

func TestAdvanceInvalidTimeStep(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.1})
	initial := gridState()

	for _, dt := range []float64{0, -0.5, math.NaN(), math.Inf(1)} {
		prev, err := eng.Advance(initial, dt)
		if !errors.Is(err, ErrInvalidTimeStep) {
			t.Errorf("dt=%v: expected ErrInvalidTimeStep, got %v", dt, err)
		}
		if prev.Steps != 0 || prev.ScaleFactor != 1.0 {
			t.Errorf("dt=%v: state changed on failed advance", dt)
		}
	}
}

func TestAdvancePausedNoOp(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.1})
	s := gridState()
	s.Paused = true
	s.Elapsed = 3.5
	s.Steps = 7

	next, err := eng.Advance(s, 0.02)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if next.ScaleFactor != s.ScaleFactor || next.Elapsed != s.Elapsed || next.Steps != s.Steps {
		t.Error("paused advance changed scalar state")
	}
	for i := range s.Particles {
		if next.Particles[i] != s.Particles[i] {
			t.Errorf("paused advance changed particle %d", i)
		}
	}
}

func TestAdvanceDeterminism(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.07})
	s := NewState(RandomField(50, 100.0, 0.07, 42))

	a, err := eng.Advance(s, 0.02)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	b, err := eng.Advance(s, 0.02)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if a.ScaleFactor != b.ScaleFactor || a.Elapsed != b.Elapsed {
		t.Error("repeated advance not bit-identical in scalars")
	}
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Errorf("repeated advance not bit-identical at particle %d", i)
		}
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	eng := NewEngine(Linear{GrowthRate: 0.1})
	s := gridState()

	if _, err := eng.Advance(s, 1.0); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if s.ScaleFactor != 1.0 || s.Steps != 0 {
		t.Error("advance mutated input scalars")
	}
	if s.Particles[0].X != 1 || s.Particles[0].Y != 1 {
		t.Error("advance mutated input particles")
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		field []Particle
		want  error
	}{
		{"empty", nil, ErrEmptyField},
		{"nan position", []Particle{{X: math.NaN()}}, ErrInvalidField},
		{"inf velocity", []Particle{{VX: math.Inf(-1)}}, ErrInvalidField},
		{"ok", []Particle{{X: 1, Y: 2}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRandomFieldDeterministic(t *testing.T) {
	a := RandomField(20, 50.0, 0.05, 7)
	b := RandomField(20, 50.0, 0.05, 7)

	if len(a) != 20 {
		t.Fatalf("expected 20 particles, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("seeded field differs at particle %d", i)
		}
	}
}

func TestGetLaw(t *testing.T) {
	law, err := GetLaw("linear", 0.05)
	if err != nil {
		t.Fatalf("get law failed: %v", err)
	}
	if law.Rate() != 0.05 {
		t.Errorf("expected rate 0.05, got %v", law.Rate())
	}

	if _, err := GetLaw("desitter", 0.05); !errors.Is(err, ErrUnknownLaw) {
		t.Errorf("expected ErrUnknownLaw, got %v", err)
	}
}
