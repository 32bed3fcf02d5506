package core

import (
	"errors"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
)

// Core is a register machine simulated as an akita component. It executes
// one instruction per cycle and stops ticking at the halt label or at the
// step limit.
type Core struct {
	*sim.TickingComponent

	code     Program
	state    *State
	maxSteps uint64
}

// MapProgram sets the program that the core needs to run and resets the
// register file.
func (c *Core) MapProgram(program Program) {
	c.code = program
	c.state = NewState(program, nil)
}

// SetInputs resets the machine to label 1 with inputs[i] in register i+1.
func (c *Core) SetInputs(inputs []int) error {
	if c.state == nil {
		return errors.New("no program mapped")
	}

	if err := ValidateInputs(inputs); err != nil {
		return err
	}

	c.state = NewState(c.code, inputs)

	return nil
}

// Start schedules the first cycle on the next clock edge.
func (c *Core) Start() {
	c.TickLater()
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.state == nil || Halted(c.code, c.state) {
		return false
	}

	if c.maxSteps > 0 && c.state.Steps >= c.maxSteps {
		slog.Warn("StepLimit",
			"Core", c.Name(),
			"Steps", c.state.Steps,
			"PC", c.state.PC,
		)
		return false
	}

	if Step(c.code, c.state) {
		slog.Debug("Halt",
			"Core", c.Name(),
			"Time", float64(c.Engine.CurrentTime()),
			"Steps", c.state.Steps,
			"R1", c.state.Registers.Get(1),
		)
		LogState(c.state)
	}

	return true
}

// Halted reports whether the program reached its halt label.
func (c *Core) Halted() bool {
	return c.state != nil && Halted(c.code, c.state)
}

// ReadRegister returns the current value of a register.
func (c *Core) ReadRegister(reg int) int {
	if c.state == nil {
		return 0
	}

	return c.state.Registers.Get(reg)
}

// Steps returns the number of instructions executed since the last reset.
func (c *Core) Steps() uint64 {
	if c.state == nil {
		return 0
	}

	return c.state.Steps
}
