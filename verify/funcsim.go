package verify

import (
	"fmt"

	"github.com/sarchlab/urm/core"
)

// FunctionalSimulator executes a program without cycle timing.
type FunctionalSimulator struct {
	program core.Program
	state   *core.State
}

// NewFunctionalSimulator creates a simulator with every register zero.
func NewFunctionalSimulator(program core.Program) *FunctionalSimulator {
	return &FunctionalSimulator{
		program: program,
		state:   core.NewState(program, nil),
	}
}

// SetInputs resets the machine to label 1 with inputs[i] in register i+1.
func (fs *FunctionalSimulator) SetInputs(inputs ...int) error {
	if err := core.ValidateInputs(inputs); err != nil {
		return err
	}

	fs.state = core.NewState(fs.program, inputs)

	return nil
}

// Run executes until the halt label. A nonzero maxSteps bounds the number
// of instructions executed since the last SetInputs.
func (fs *FunctionalSimulator) Run(maxSteps uint64) error {
	if fs.state == nil {
		return fmt.Errorf("FunctionalSimulator not properly initialized")
	}

	return core.Run(fs.program, fs.state, maxSteps)
}

// Halted reports whether the machine reached the halt label.
func (fs *FunctionalSimulator) Halted() bool {
	return core.Halted(fs.program, fs.state)
}

// Result returns register 1.
func (fs *FunctionalSimulator) Result() int {
	return fs.state.Registers.Get(1)
}

// GetRegisterValue returns the value of a register.
func (fs *FunctionalSimulator) GetRegisterValue(reg int) int {
	return fs.state.Registers.Get(reg)
}

// Steps returns the number of instructions executed since the last
// SetInputs.
func (fs *FunctionalSimulator) Steps() uint64 {
	return fs.state.Steps
}

// State exposes the machine state for dumps.
func (fs *FunctionalSimulator) State() *core.State {
	return fs.state
}
