package synth

import "github.com/sarchlab/urm/core"

// Minimize returns a program computing the least y with h(y, xs) = 0.
// The result is partial: when h has no root for xs the program never
// halts.
func Minimize(h core.Program) core.Program {
	m := h.Footprint()

	// xs stay where the caller put them; h reads at most m-1 of them.
	nx := max(m-1, 1)
	y := nx + 1
	zone := AllocateZones(y, m, 1)[0]
	mem := zone.End() + 1

	var a assembler

	a.clear(y, mem)

	loop := a.next()
	a.clearRange(zone.Base, zone.End())
	a.copy(y, []int{zone.Reg(1)}, mem)
	for i := 1; i < m; i++ {
		a.copy(i, []int{zone.Reg(i + 1)}, mem)
	}
	a.then(h, zone.Shift())

	test := a.next()
	found := test + 2
	a.emit(
		core.Dec{Reg: zone.Reg(1), Next: test + 1, Else: found},
		core.Inc{Reg: y, Next: loop},
	)

	a.clear(1)
	a.move(y, 1)

	p := a.program()
	logSynth("min", p)

	return p
}
