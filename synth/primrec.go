package synth

import "github.com/sarchlab/urm/core"

// primRecLayout names the registers of a PrimRec output. The recursion
// argument y arrives in register 1, which then serves as the up-counter.
type primRecLayout struct {
	yUp   int
	xs    int // first preserved argument; arguments occupy xs..xs+nx-1
	nx    int
	zone  Zone // g and h run here; slot 1 holds their result
	acc   int  // f(yUp, xs) between iterations
	yDown int
	mem   int
}

func newPrimRecLayout(g, h core.Program) primRecLayout {
	m := max(g.Footprint(), h.Footprint())

	// h reads (y, f(y, xs), xs...), so its zone needs two slots more than
	// there are arguments to preserve.
	zone := AllocateZones(m+1, m+2, 1)[0]

	return primRecLayout{
		yUp:   1,
		xs:    2,
		nx:    m,
		zone:  zone,
		acc:   zone.End() + 1,
		yDown: zone.End() + 2,
		mem:   zone.End() + 3,
	}
}

// PrimRec returns a program computing f with
//
//	f(0, xs)   = g(xs)
//	f(y+1, xs) = h(y, f(y, xs), xs)
//
// The program moves y into a down-counter, computes g once, then runs h
// once per unit of the down-counter while counting register 1 back up.
func PrimRec(g, h core.Program) core.Program {
	l := newPrimRecLayout(g, h)

	var a assembler

	a.clear(l.mem, l.yDown, l.acc)
	a.clearRange(l.zone.Base, l.zone.End())
	a.move(l.yUp, l.yDown)

	for i := 0; i < l.nx; i++ {
		a.copy(l.xs+i, []int{l.zone.Reg(1 + i)}, l.mem)
	}
	a.then(g, l.zone.Shift())
	a.move(l.zone.Reg(1), l.acc)

	test := a.next()
	body := primRecStep(l, h)
	done := test + 1 + core.Label(body.Len())

	a.emit(core.Dec{Reg: l.yDown, Next: test + 1, Else: done})
	a.place(body, 0, test)

	a.clear(l.yUp)
	a.move(l.acc, l.yUp)

	p := a.program()
	logSynth("primrec", p)

	return p
}

// primRecStep is one iteration of the loop. It halts when the iteration is
// done; PrimRec points that halt back at the loop test.
func primRecStep(l primRecLayout, h core.Program) core.Program {
	var b assembler

	b.clearRange(l.zone.Base, l.zone.End())
	b.copy(l.yUp, []int{l.zone.Reg(1)}, l.mem)
	b.move(l.acc, l.zone.Reg(2))
	for i := 0; i < l.nx; i++ {
		b.copy(l.xs+i, []int{l.zone.Reg(3 + i)}, l.mem)
	}
	b.emit(core.Inc{Reg: l.yUp, Next: b.next() + 1})

	b.then(h, l.zone.Shift())
	b.move(l.zone.Reg(1), l.acc)

	return b.program()
}
