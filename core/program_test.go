package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/urm/core"
)

var _ = Describe("Program", func() {
	It("should place the halt label one past the last instruction", func() {
		p := core.MustProgram(
			core.Dec{Reg: 2, Next: 2, Else: 3},
			core.Inc{Reg: 1, Next: 1},
		)

		Expect(p.Len()).To(Equal(2))
		Expect(p.Halt()).To(Equal(core.Label(3)))
		Expect(p.At(2)).To(Equal(core.Inc{Reg: 1, Next: 1}))
	})

	It("should accept the empty program", func() {
		p, err := core.NewProgram()

		Expect(err).NotTo(HaveOccurred())
		Expect(p.Empty()).To(BeTrue())
		Expect(p.Halt()).To(Equal(core.Label(1)))
		Expect(p.Footprint()).To(Equal(1))
	})

	It("should accept a jump to the halt label", func() {
		_, err := core.NewProgram(core.Inc{Reg: 1, Next: 2})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should reject a jump past the halt label", func() {
		_, err := core.NewProgram(core.Inc{Reg: 1, Next: 3})

		Expect(err).To(MatchError(core.ErrMalformed))

		var labelErr *core.LabelError
		Expect(err).To(BeAssignableToTypeOf(labelErr))
		labelErr = err.(*core.LabelError)
		Expect(labelErr.At).To(Equal(core.Label(1)))
		Expect(labelErr.Label).To(Equal(core.Label(3)))
		Expect(labelErr.Halt).To(Equal(core.Label(2)))
	})

	It("should reject label zero", func() {
		_, err := core.NewProgram(core.Dec{Reg: 1, Next: 0, Else: 2})

		Expect(err).To(MatchError(core.ErrMalformed))
	})

	It("should reject register zero", func() {
		_, err := core.NewProgram(core.Inc{Reg: 0, Next: 2})

		Expect(err).To(MatchError(core.ErrMalformed))
		Expect(err).To(BeAssignableToTypeOf(&core.RegisterError{}))
	})

	It("should reject a nil instruction", func() {
		_, err := core.NewProgram(nil)

		Expect(err).To(MatchError(core.ErrMalformed))
	})

	It("should panic in MustProgram on a malformed program", func() {
		Expect(func() {
			core.MustProgram(core.Inc{Reg: 1, Next: 5})
		}).To(Panic())
	})

	It("should panic when reading outside the program", func() {
		p := core.MustProgram(core.Inc{Reg: 1, Next: 2})

		Expect(func() { p.At(0) }).To(Panic())
		Expect(func() { p.At(2) }).To(Panic())
	})

	It("should not share storage with the caller", func() {
		insts := []core.Instruction{core.Inc{Reg: 1, Next: 2}}
		p := core.MustProgram(insts...)

		insts[0] = core.Inc{Reg: 9, Next: 2}
		out := p.Instructions()
		out[0] = core.Inc{Reg: 7, Next: 2}

		Expect(p.At(1)).To(Equal(core.Inc{Reg: 1, Next: 2}))
	})

	It("should report the largest register as the footprint", func() {
		p := core.MustProgram(
			core.Inc{Reg: 4, Next: 2},
			core.Dec{Reg: 7, Next: 3, Else: 3},
		)

		Expect(p.Footprint()).To(Equal(7))
	})

	It("should print one instruction per line", func() {
		p := core.MustProgram(
			core.Dec{Reg: 2, Next: 2, Else: 3},
			core.Inc{Reg: 1, Next: 1},
		)

		Expect(p.String()).To(Equal("R2-=>2,3\nR1+=>1\n"))
	})
})

var _ = Describe("Instruction", func() {
	It("should relabel registers and both branches", func() {
		mapLabel := func(l core.Label) core.Label { return l + 10 }

		Expect(core.Inc{Reg: 1, Next: 2}.Relabel(3, mapLabel)).
			To(Equal(core.Inc{Reg: 4, Next: 12}))
		Expect(core.Dec{Reg: 2, Next: 1, Else: 3}.Relabel(0, mapLabel)).
			To(Equal(core.Dec{Reg: 2, Next: 11, Else: 13}))
	})

	It("should list targets in branch order", func() {
		Expect(core.Dec{Reg: 1, Next: 4, Else: 7}.Targets()).
			To(Equal([]core.Label{4, 7}))
	})
})
