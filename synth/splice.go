package synth

import (
	"log/slog"

	"github.com/sarchlab/urm/core"
)

// Splice returns p's instructions rewritten for placement at absolute
// address start inside a larger program. Registers are shifted by shift.
// A label l <= p.Len() becomes start+l-1 and p's halt label becomes cont.
// An empty program yields no instructions; start and cont then coincide.
func Splice(p core.Program, start, cont core.Label, shift int) []core.Instruction {
	halt := p.Halt()
	relabel := func(l core.Label) core.Label {
		if l == halt {
			return cont
		}
		return start + l - 1
	}

	insts := p.Instructions()
	out := make([]core.Instruction, len(insts))
	for i, inst := range insts {
		out[i] = inst.Relabel(shift, relabel)
	}

	return out
}

// assembler lays out phases back to back. Every address it hands out is
// absolute within the program being assembled.
type assembler struct {
	code []core.Instruction
}

// next returns the address the next emitted instruction will occupy.
func (a *assembler) next() core.Label {
	return core.Label(len(a.code) + 1)
}

// place splices p at the next address, halting into cont.
func (a *assembler) place(p core.Program, shift int, cont core.Label) {
	a.code = append(a.code, Splice(p, a.next(), cont, shift)...)
}

// then splices p so that its halt falls through to whatever is emitted
// after it.
func (a *assembler) then(p core.Program, shift int) {
	a.place(p, shift, a.next()+core.Label(p.Len()))
}

func (a *assembler) emit(insts ...core.Instruction) {
	a.code = append(a.code, insts...)
}

func (a *assembler) clear(regs ...int) {
	for _, r := range regs {
		a.then(ClearProgram(r), 0)
	}
}

func (a *assembler) clearRange(from, to int) {
	for r := from; r <= to; r++ {
		a.then(ClearProgram(r), 0)
	}
}

func (a *assembler) copy(src int, dsts []int, mem int) {
	a.then(CopyProgram(src, dsts, mem), 0)
}

func (a *assembler) move(src int, dsts ...int) {
	a.then(MoveProgram(src, dsts...), 0)
}

// program validates the assembled code. An out-of-range label here is a
// bug in a combinator, so it panics.
func (a *assembler) program() core.Program {
	return core.MustProgram(a.code...)
}

func logSynth(combinator string, p core.Program, args ...any) {
	slog.Debug("Synthesized",
		append([]any{
			"Combinator", combinator,
			"Len", p.Len(),
			"Footprint", p.Footprint(),
		}, args...)...,
	)
}
