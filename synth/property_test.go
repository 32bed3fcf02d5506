package synth_test

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/urm/core"
	"github.com/sarchlab/urm/synth"
	valgen "github.com/sarchlab/urm/util"
	"github.com/sarchlab/urm/verify"
)

const (
	// Terms whose evaluation goes past these bounds are not run on the
	// machine; their step counts grow too fast.
	maxTermValue = 12
	termBudget   = 200

	termSteps = 20_000_000
)

// term is a primitive recursive function built from Zero, Succ, Proj,
// Compose and PrimRec, together with its synthesized program and a direct
// evaluator.
type term struct {
	name    string
	arity   int
	program core.Program
	eval    func(args []int, budget *int) (int, bool)
}

// value evaluates t on args. It reports false once a value exceeds
// maxTermValue or more than termBudget sub-terms have been evaluated.
func (t term) value(args ...int) (int, bool) {
	budget := termBudget
	return t.eval(args, &budget)
}

func arg(args []int, i int) int {
	if i > len(args) {
		return 0
	}

	return args[i-1]
}

func bounded(v int, budget *int) (int, bool) {
	*budget--
	return v, *budget >= 0 && v <= maxTermValue
}

type termGen struct {
	rng *rand.Rand
}

func (g termGen) intn(n int) int {
	return valgen.MakeRandomGen(g.rng, 0, n-1)()
}

func (g termGen) term(depth, arity int) term {
	if depth == 0 {
		return g.leaf(arity)
	}

	switch g.intn(4) {
	case 0:
		return g.leaf(arity)
	case 1, 2:
		gs := make([]term, 1+g.intn(2))
		for i := range gs {
			gs[i] = g.term(depth-1, arity)
		}
		return composeTerm(g.term(depth-1, len(gs)), gs, arity)
	default:
		if arity == 0 {
			return g.leaf(arity)
		}
		return primRecTerm(g.term(depth-1, arity-1), g.term(depth-1, arity+1), arity)
	}
}

func (g termGen) leaf(arity int) term {
	switch k := g.intn(arity + 2); k {
	case 0:
		return term{
			name:    "zero",
			arity:   arity,
			program: synth.Zero(),
			eval: func(_ []int, budget *int) (int, bool) {
				return bounded(0, budget)
			},
		}
	case 1:
		return term{
			name:    "succ",
			arity:   arity,
			program: synth.Succ(),
			eval: func(args []int, budget *int) (int, bool) {
				return bounded(arg(args, 1)+1, budget)
			},
		}
	default:
		i := k - 1
		return term{
			name:    fmt.Sprintf("proj%d", i),
			arity:   arity,
			program: synth.Proj(i),
			eval: func(args []int, budget *int) (int, bool) {
				return bounded(arg(args, i), budget)
			},
		}
	}
}

func composeTerm(h term, gs []term, arity int) term {
	names := make([]string, len(gs))
	programs := make([]core.Program, len(gs))
	for i, g := range gs {
		names[i] = g.name
		programs[i] = g.program
	}

	return term{
		name:    fmt.Sprintf("compose(%s; %s)", h.name, strings.Join(names, ", ")),
		arity:   arity,
		program: synth.MustCompose(h.program, programs...),
		eval: func(args []int, budget *int) (int, bool) {
			vals := make([]int, len(gs))
			for i, g := range gs {
				v, ok := g.eval(args, budget)
				if !ok {
					return 0, false
				}
				vals[i] = v
			}

			return h.eval(vals, budget)
		},
	}
}

func primRecTerm(base, step term, arity int) term {
	return term{
		name:    fmt.Sprintf("primrec(%s; %s)", base.name, step.name),
		arity:   arity,
		program: synth.PrimRec(base.program, step.program),
		eval: func(args []int, budget *int) (int, bool) {
			xs := make([]int, arity-1)
			for i := range xs {
				xs[i] = arg(args, i+2)
			}

			f, ok := base.eval(xs, budget)
			for y := 0; ok && y < arg(args, 1); y++ {
				f, ok = step.eval(append([]int{y, f}, xs...), budget)
			}

			return f, ok
		},
	}
}

// computeWithin runs p on the functional simulator and reports false if it
// hits the step limit.
func computeWithin(p core.Program, inputs ...int) (int, bool) {
	got, err := verify.ComputeBounded(p, termSteps, inputs...)
	if errors.Is(err, core.ErrStepLimit) {
		return 0, false
	}

	ExpectWithOffset(1, err).NotTo(HaveOccurred())

	return got, true
}

var _ = Describe("Random recursive programs", func() {
	var (
		gen      termGen
		arities  valgen.Gen
		argument valgen.Gen
	)

	BeforeEach(func() {
		gen = termGen{rng: rand.New(rand.NewSource(2024))}
		arities = valgen.MakeRandomGen(gen.rng, 0, 3)
		argument = valgen.MakeRandomGen(gen.rng, 0, 3)
	})

	It("should compute what their definitions compute", func() {
		checked := 0
		for trial := 0; trial < 300; trial++ {
			t := gen.term(3, arities())

			expectLabelsInRange(t.program)
			Expect(verify.CheckLabels(t.name, t.program.Instructions())).To(BeEmpty())

			args := valgen.Take(argument, t.arity)
			want, ok := t.value(args...)
			if !ok {
				continue
			}

			got, ok := computeWithin(t.program, args...)
			if !ok {
				continue
			}

			Expect(got).To(Equal(want), "%s on %v", t.name, args)
			checked++
		}

		Expect(checked).To(BeNumerically(">=", 100))
	})

	It("should apply h to the results of every g", func() {
		checked := 0
		for trial := 0; trial < 100; trial++ {
			arity := arities()
			gs := make([]term, 1+gen.intn(3))
			for i := range gs {
				gs[i] = gen.term(2, arity)
			}
			h := gen.term(2, len(gs))
			c := composeTerm(h, gs, arity)

			expectLabelsInRange(c.program)

			args := valgen.Take(argument, arity)
			if _, ok := c.value(args...); !ok {
				continue
			}

			vals := make([]int, len(gs))
			for i, g := range gs {
				v, ok := computeWithin(g.program, args...)
				Expect(ok).To(BeTrue(), "%s on %v", g.name, args)
				vals[i] = v
			}
			want, ok := computeWithin(h.program, vals...)
			Expect(ok).To(BeTrue())

			got, ok := computeWithin(c.program, args...)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(want), "%s on %v", c.name, args)
			checked++
		}

		Expect(checked).To(BeNumerically(">=", 30))
	})

	It("should start at g and step through h", func() {
		checked := 0
		for trial := 0; trial < 100; trial++ {
			k := gen.intn(3)
			base := gen.term(2, k)
			step := gen.term(2, k+2)
			p := primRecTerm(base, step, k+1)

			expectLabelsInRange(p.program)

			xs := valgen.Take(argument, k)
			y := argument()
			if _, ok := p.value(append([]int{y + 1}, xs...)...); !ok {
				continue
			}

			atZero, ok := computeWithin(p.program, append([]int{0}, xs...)...)
			Expect(ok).To(BeTrue())
			wantZero, ok := computeWithin(base.program, xs...)
			Expect(ok).To(BeTrue())
			Expect(atZero).To(Equal(wantZero), "%s at 0 on %v", p.name, xs)

			prev, ok := computeWithin(p.program, append([]int{y}, xs...)...)
			Expect(ok).To(BeTrue())
			next, ok := computeWithin(p.program, append([]int{y + 1}, xs...)...)
			Expect(ok).To(BeTrue())
			want, ok := computeWithin(step.program, append([]int{y, prev}, xs...)...)
			Expect(ok).To(BeTrue())
			Expect(next).To(Equal(want), "%s at %d on %v", p.name, y+1, xs)
			checked++
		}

		Expect(checked).To(BeNumerically(">=", 30))
	})
})
