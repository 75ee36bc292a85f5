package cosmos_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/expansim/internal/cosmos"
)

var _ = Describe("Engine expansion", func() {
	var (
		eng   *cosmos.Engine
		state cosmos.State
	)

	BeforeEach(func() {
		eng = cosmos.NewEngine(cosmos.Linear{GrowthRate: 0.05})
		state = cosmos.NewState(cosmos.RandomField(100, 200.0, 0.05, 1))
	})

	It("keeps the scale factor non-decreasing over unpaused ticks", func() {
		prev := state.ScaleFactor
		for i := 0; i < 500; i++ {
			next, err := eng.Advance(state, 0.02)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.ScaleFactor).To(BeNumerically(">", prev))
			prev = next.ScaleFactor
			state = next
		}
	})

	It("never changes the particle count", func() {
		n := len(state.Particles)
		for i := 0; i < 200; i++ {
			next, err := eng.Advance(state, 0.02)
			Expect(err).NotTo(HaveOccurred())
			Expect(next.Particles).To(HaveLen(n))
			state = next
		}
	})

	It("scales every position by the same factor about the origin", func() {
		next, err := eng.Advance(state, 1.0)
		Expect(err).NotTo(HaveOccurred())

		ratio := next.ScaleFactor / state.ScaleFactor
		for i, p := range state.Particles {
			Expect(next.Particles[i].X).To(BeNumerically("~", p.X*ratio, 1e-9))
			Expect(next.Particles[i].Y).To(BeNumerically("~", p.Y*ratio, 1e-9))
		}
	})

	It("keeps state finite over long runs", func() {
		for i := 0; i < 1000; i++ {
			next, err := eng.Advance(state, 0.02)
			Expect(err).NotTo(HaveOccurred())
			state = next
		}
		Expect(state.IsValid()).To(BeTrue())
	})

	It("rejects a zero timestep and leaves the state usable", func() {
		_, err := eng.Advance(state, 0)
		Expect(err).To(MatchError(cosmos.ErrInvalidTimeStep))

		next, err := eng.Advance(state, 0.02)
		Expect(err).NotTo(HaveOccurred())
		Expect(next.Steps).To(Equal(state.Steps + 1))
	})
})
