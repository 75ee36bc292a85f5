package cosmos

import (
	"fmt"
	"sort"
)

// GrowthLaw decides how the scale factor evolves over one tick. The
// engine never looks inside; alternative cosmologies plug in here.
type GrowthLaw interface {
	// Next returns the scale factor after a tick of length dt.
	Next(scale, dt float64) float64
	// Rate returns the Hubble parameter used for flow velocities.
	Rate() float64
	Name() string
}

// Linear grows the scale factor by a fixed fraction of itself per unit
// time: a' = a·(1 + rate·dt).
type Linear struct {
	GrowthRate float64
}

func (l Linear) Next(scale, dt float64) float64 { return scale * (1 + l.GrowthRate*dt) }
func (l Linear) Rate() float64                  { return l.GrowthRate }
func (l Linear) Name() string                   { return "linear" }

type lawFactory func(rate float64) GrowthLaw

var laws = map[string]lawFactory{
	"linear": func(rate float64) GrowthLaw { return Linear{GrowthRate: rate} },
}

// GetLaw builds a registered growth law by name.
func GetLaw(name string, rate float64) (GrowthLaw, error) {
	factory, ok := laws[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownLaw, name, LawNames())
	}
	return factory(rate), nil
}

// LawNames lists registered growth laws in stable order.
func LawNames() []string {
	names := make([]string, 0, len(laws))
	for name := range laws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
