package synth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/urm/core"
	"github.com/sarchlab/urm/synth"
	"github.com/sarchlab/urm/verify"
)

func compute(p core.Program, inputs ...int) int {
	got, err := verify.Compute(p, inputs...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return got
}

func expectLabelsInRange(p core.Program) {
	halt := p.Halt()
	for _, inst := range p.Instructions() {
		for _, l := range inst.Targets() {
			ExpectWithOffset(1, l).To(And(
				BeNumerically(">=", 1),
				BeNumerically("<=", halt),
			))
		}
	}
}

var _ = Describe("Compose", func() {
	It("should refuse zero inner programs", func() {
		_, err := synth.Compose(synth.Succ())

		Expect(err).To(MatchError(synth.ErrArity))
		Expect(func() { synth.MustCompose(synth.Succ()) }).To(Panic())
	})

	It("should apply h to the result of g", func() {
		p := synth.MustCompose(synth.Succ(), synth.Succ())

		Expect(compute(p, 3)).To(Equal(5))
		expectLabelsInRange(p)
	})

	It("should feed every g the same arguments", func() {
		swapSub := synth.MustCompose(synth.Sub(), synth.Proj(2), synth.Proj(1))

		Expect(compute(swapSub, 3, 10)).To(Equal(7))
		Expect(compute(swapSub, 10, 3)).To(Equal(0))
	})

	It("should treat an empty g as the identity on its first argument", func() {
		p := synth.MustCompose(synth.Succ(), synth.Proj(1))

		Expect(compute(p, 5)).To(Equal(6))
	})

	It("should return g1's result for an empty h", func() {
		p := synth.MustCompose(synth.Proj(1), synth.Succ(), synth.Zero())

		Expect(compute(p, 5)).To(Equal(6))
	})

	It("should keep inputs above h's footprint intact until they are copied", func() {
		p := synth.MustCompose(synth.Proj(1), synth.Proj(3))

		Expect(compute(p, 4, 5, 6)).To(Equal(6))
	})

	It("should compute a constant from no inputs", func() {
		Expect(compute(synth.One())).To(Equal(1))
	})
})

var _ = Describe("PrimRec", func() {
	It("should return g at y = 0", func() {
		p := synth.PrimRec(synth.Succ(), synth.Zero())

		Expect(compute(p, 0, 4)).To(Equal(5))
	})

	It("should apply h once per unit of y", func() {
		count := synth.PrimRec(synth.Zero(), synth.MustCompose(synth.Succ(), synth.Proj(2)))

		Expect(compute(count, 6)).To(Equal(6))
		expectLabelsInRange(count)
	})

	It("should pass the previous index to h", func() {
		p := synth.PrimRec(synth.Zero(), synth.Proj(1))

		Expect(compute(p, 1)).To(Equal(0))
		Expect(compute(p, 5)).To(Equal(4))
	})

	It("should handle an empty g and an empty h", func() {
		p := synth.PrimRec(synth.Proj(1), synth.Proj(1))

		Expect(compute(p, 0, 5)).To(Equal(5))
		Expect(compute(p, 3, 5)).To(Equal(2))
	})

	It("should pass the preserved arguments to h", func() {
		p := synth.PrimRec(synth.Zero(), synth.Proj(3))

		Expect(compute(p, 2, 9)).To(Equal(9))
	})
})

var _ = Describe("Minimize", func() {
	It("should find the least root", func() {
		h := synth.MustCompose(synth.Sub(), synth.Proj(2), synth.Proj(1))
		p := synth.Minimize(h)

		Expect(compute(p, 5)).To(Equal(5))
		Expect(compute(p, 0)).To(Equal(0))
		expectLabelsInRange(p)
	})

	It("should return 0 when h is empty", func() {
		Expect(compute(synth.Minimize(synth.Proj(1)), 3)).To(Equal(0))
	})

	It("should not halt without a root", func() {
		p := synth.Minimize(synth.Succ())

		_, err := verify.ComputeBounded(p, 10_000, 1)

		Expect(err).To(MatchError(core.ErrStepLimit))
	})
})
