package core

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Program is an immutable sequence of instructions. Instruction i lives at
// label i+1, and Halt() names the address one past the last instruction.
type Program struct {
	insts []Instruction
}

// NewProgram copies insts into a Program. It rejects registers below 1 and
// labels outside [1, len+1].
func NewProgram(insts ...Instruction) (Program, error) {
	p := Program{insts: make([]Instruction, len(insts))}
	copy(p.insts, insts)

	if err := p.validate(); err != nil {
		return Program{}, err
	}

	return p, nil
}

// MustProgram is NewProgram that panics on a malformed program.
func MustProgram(insts ...Instruction) Program {
	p, err := NewProgram(insts...)
	if err != nil {
		panic(err)
	}

	return p
}

func (p Program) validate() error {
	halt := p.Halt()

	for i, inst := range p.insts {
		at := Label(i + 1)

		if inst == nil {
			return &RegisterError{At: at, Reg: 0}
		}

		if inst.Register() < 1 {
			return &RegisterError{At: at, Reg: inst.Register()}
		}

		for _, l := range inst.Targets() {
			if l < 1 || l > halt {
				return &LabelError{At: at, Label: l, Halt: halt}
			}
		}
	}

	return nil
}

// Len returns the number of instructions.
func (p Program) Len() int {
	return len(p.insts)
}

// Halt returns the halt label, len+1.
func (p Program) Halt() Label {
	return Label(len(p.insts) + 1)
}

// At returns the instruction at label l. It panics if l is not an
// instruction address.
func (p Program) At(l Label) Instruction {
	if l < 1 || int(l) > len(p.insts) {
		panic(fmt.Sprintf("label %d is not an instruction of a %d-instruction program", l, len(p.insts)))
	}

	return p.insts[l-1]
}

// Instructions returns a copy of the instruction sequence.
func (p Program) Instructions() []Instruction {
	out := make([]Instruction, len(p.insts))
	copy(out, p.insts)
	return out
}

// Footprint returns the largest register index the program references, or
// 1 for a program that references none.
func (p Program) Footprint() int {
	m := 1
	for _, inst := range p.insts {
		if inst.Register() > m {
			m = inst.Register()
		}
	}

	return m
}

// Empty reports whether the program has no instructions.
func (p Program) Empty() bool {
	return len(p.insts) == 0
}

// String returns the printed form, one instruction per line.
func (p Program) String() string {
	var sb strings.Builder
	for _, inst := range p.insts {
		sb.WriteString(inst.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintProgram writes a numbered listing of the program to stdout.
func PrintProgram(p Program) {
	WriteListing(os.Stdout, p)
}

// WriteListing writes one numbered line per instruction followed by the
// halt label.
func WriteListing(w io.Writer, p Program) {
	for i, inst := range p.insts {
		fmt.Fprintf(w, "%4d: %s\n", i+1, inst)
	}
	fmt.Fprintf(w, "%4d: HALT\n", p.Halt())
}
