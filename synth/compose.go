package synth

import (
	"errors"
	"fmt"

	"github.com/sarchlab/urm/core"
)

// ErrArity is wrapped by every ArityError.
var ErrArity = errors.New("wrong number of sub-programs")

// ArityError reports a combinator called with too few sub-programs.
type ArityError struct {
	Combinator string
	Got        int
	Min        int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: %s needs at least %d, got %d",
		ErrArity, e.Combinator, e.Min, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// Compose returns a program computing h(g1(x), ..., gn(x)).
//
// Every gi runs in its own zone on a copy of registers 1..gMax, where gMax
// is the largest footprint among the gs. The results are then gathered
// into registers 1..n and h runs in place. An empty gi returns its first
// argument; an empty h returns g1's result.
func Compose(h core.Program, gs ...core.Program) (core.Program, error) {
	n := len(gs)
	if n == 0 {
		return core.Program{}, &ArityError{Combinator: "compose", Got: 0, Min: 1}
	}

	gMax := 1
	for _, g := range gs {
		gMax = max(gMax, g.Footprint())
	}
	hMax := max(n, h.Footprint())

	// Zones start past inputs 1..gMax as well as past h's registers.
	zones := AllocateZones(max(hMax, gMax), gMax, n)
	mem := zones[n-1].End() + 1

	var a assembler

	a.clearRange(gMax+1, mem)

	for j := 1; j <= gMax; j++ {
		dsts := make([]int, n)
		for k, z := range zones {
			dsts[k] = z.Reg(j)
		}
		a.copy(j, dsts, mem)
	}

	for k, g := range gs {
		a.then(g, zones[k].Shift())
	}

	a.clearRange(1, hMax)
	for k, z := range zones {
		a.move(z.Reg(1), k+1)
	}

	a.then(h, 0)

	p := a.program()
	logSynth("compose", p, "N", n)

	return p, nil
}

// MustCompose is Compose for callers that always pass at least one g.
func MustCompose(h core.Program, gs ...core.Program) core.Program {
	p, err := Compose(h, gs...)
	if err != nil {
		panic(err)
	}

	return p
}
