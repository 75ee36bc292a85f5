// Package cosmos provides the core model for a toy 2D cosmological
// expansion: a fixed field of point particles carried outward by a
// uniformly growing scale factor.
//
// The central pieces are:
//
//   - [Particle]: a point with position and Hubble-flow velocity
//   - [State]: the full simulation state for one run
//   - [GrowthLaw]: pluggable policy for how the scale factor grows
//   - [Engine]: pure state-transition function advancing one tick
//
// # Example
//
//	field := cosmos.RandomField(200, 200.0, 0.05, 42)
//	eng := cosmos.NewEngine(cosmos.Linear{Rate: 0.05})
//	next, _ := eng.Advance(cosmos.NewState(field), 0.02)
//
// # Thread Safety
//
// Engine and State are NOT thread-safe. The intended use is a
// single-threaded cooperative loop that advances, commits, and renders
// in order each frame.
package cosmos
