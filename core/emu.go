package core

import "fmt"

// Registers is a register file indexed by register number. Index 0 is
// unused. Registers past the end read as zero.
type Registers []int

// Get returns the value of register reg.
func (r Registers) Get(reg int) int {
	if reg < 1 || reg >= len(r) {
		return 0
	}

	return r[reg]
}

// Values returns registers 1..n.
func (r Registers) Values(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Get(i + 1)
	}

	return out
}

// State is the architectural state of a machine running a program.
type State struct {
	PC        Label
	Registers Registers
	Steps     uint64
}

// NewState returns a state at label 1 with every register zero except
// inputs[i] in register i+1. The register file is sized for p.
func NewState(p Program, inputs []int) *State {
	n := p.Footprint()
	if len(inputs) > n {
		n = len(inputs)
	}

	s := &State{PC: 1, Registers: make(Registers, n+1)}
	copy(s.Registers[1:], inputs)

	return s
}

type instEmulator struct {
}

// RunInst executes one instruction and advances the PC.
func (i instEmulator) RunInst(inst Instruction, state *State) {
	switch inst := inst.(type) {
	case Inc:
		i.runInc(inst, state)
	case Dec:
		i.runDec(inst, state)
	default:
		panic("unknown instruction type")
	}

	state.Steps++
}

func (i instEmulator) runInc(inst Inc, state *State) {
	state.Registers[inst.Reg]++
	state.PC = inst.Next
}

func (i instEmulator) runDec(inst Dec, state *State) {
	if state.Registers[inst.Reg] == 0 {
		state.PC = inst.Else
		return
	}

	state.Registers[inst.Reg]--
	state.PC = inst.Next
}

// Halted reports whether state's PC has reached p's halt label.
func Halted(p Program, state *State) bool {
	return state.PC >= p.Halt()
}

// Run executes p from state until the halt label. A nonzero maxSteps
// bounds the total instruction count of state; reaching it returns an
// error wrapping ErrStepLimit with the machine left where it stopped.
func Run(p Program, state *State, maxSteps uint64) error {
	trace := TraceEnabled()
	emu := instEmulator{}
	halt := p.Halt()

	for state.PC < halt {
		if maxSteps > 0 && state.Steps >= maxSteps {
			return fmt.Errorf("%w: %d steps, PC %d", ErrStepLimit, state.Steps, state.PC)
		}

		inst := p.insts[state.PC-1]
		if trace {
			Trace("Inst",
				"PC", state.PC,
				"Inst", inst.String(),
				"Value", state.Registers.Get(inst.Register()),
			)
		}

		emu.RunInst(inst, state)
	}

	return nil
}

// Step executes the instruction at state.PC. It returns true once the
// program has halted, without executing anything further. The register
// file must be at least p.Footprint()+1 long, as NewState makes it.
func Step(p Program, state *State) (halted bool) {
	if Halted(p, state) {
		return true
	}

	inst := p.insts[state.PC-1]
	if TraceEnabled() {
		Trace("Inst",
			"PC", state.PC,
			"Inst", inst.String(),
			"Value", state.Registers.Get(inst.Register()),
		)
	}

	instEmulator{}.RunInst(inst, state)

	return Halted(p, state)
}
