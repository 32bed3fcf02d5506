package core

import "fmt"

// Label is a 1-based instruction address. The label one past the last
// instruction of a program is that program's halt label.
type Label int

// Instruction is one of Inc or Dec.
type Instruction interface {
	// Register returns the register the instruction reads or writes.
	Register() int

	// Targets returns the labels control may continue at.
	Targets() []Label

	// Relabel returns a copy with the register shifted by shift and every
	// target passed through mapLabel. The receiver is not modified.
	Relabel(shift int, mapLabel func(Label) Label) Instruction

	String() string

	isInstruction()
}

// Inc increments Reg and continues at Next.
type Inc struct {
	Reg  int
	Next Label
}

// Register returns the incremented register.
func (i Inc) Register() int { return i.Reg }

// Targets returns the single continuation.
func (i Inc) Targets() []Label { return []Label{i.Next} }

// Relabel returns a rewritten copy of the instruction.
func (i Inc) Relabel(shift int, mapLabel func(Label) Label) Instruction {
	return Inc{Reg: i.Reg + shift, Next: mapLabel(i.Next)}
}

func (i Inc) String() string {
	return fmt.Sprintf("R%d+=>%d", i.Reg, i.Next)
}

func (Inc) isInstruction() {}

// Dec decrements Reg and continues at Next if Reg is nonzero. Otherwise it
// leaves Reg untouched and continues at Else.
type Dec struct {
	Reg  int
	Next Label
	Else Label
}

// Register returns the tested register.
func (d Dec) Register() int { return d.Reg }

// Targets returns the nonzero and the zero continuation, in that order.
func (d Dec) Targets() []Label { return []Label{d.Next, d.Else} }

// Relabel returns a rewritten copy of the instruction. Both branches are
// mapped independently.
func (d Dec) Relabel(shift int, mapLabel func(Label) Label) Instruction {
	return Dec{
		Reg:  d.Reg + shift,
		Next: mapLabel(d.Next),
		Else: mapLabel(d.Else),
	}
}

func (d Dec) String() string {
	return fmt.Sprintf("R%d-=>%d,%d", d.Reg, d.Next, d.Else)
}

func (Dec) isInstruction() {}
