package cosmos

import (
	"fmt"
	"math/rand"
)

// RandomField seeds n particles uniformly in [-spread, spread]^2 with
// Hubble-flow initial velocities for the given growth rate. The same
// seed always produces the same field.
func RandomField(n int, spread, rate float64, seed int64) []Particle {
	rng := rand.New(rand.NewSource(seed))
	field := make([]Particle, n)
	for i := range field {
		x := rng.Float64()*2*spread - spread
		y := rng.Float64()*2*spread - spread
		field[i] = Particle{X: x, Y: y, VX: rate * x, VY: rate * y}
	}
	return field
}

// ValidateField rejects initial configurations the engine cannot run:
// empty fields and non-finite coordinates. Fatal at startup.
func ValidateField(field []Particle) error {
	if len(field) == 0 {
		return ErrEmptyField
	}
	for i, p := range field {
		if !finite(p.X) || !finite(p.Y) || !finite(p.VX) || !finite(p.VY) {
			return fmt.Errorf("%w: particle %d", ErrInvalidField, i)
		}
	}
	return nil
}
