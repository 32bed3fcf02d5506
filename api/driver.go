// Package api defines the driver API for the simulated register machine.
package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sarchlab/urm/core"
)

// Machine is a register machine that the driver can run programs on.
// core.Core implements it.
type Machine interface {
	// MapProgram loads a program and clears the registers.
	MapProgram(program core.Program)

	// SetInputs resets the machine to label 1 with inputs[i] in register
	// i+1.
	SetInputs(inputs []int) error

	// Start schedules the machine's first cycle on its engine.
	Start()

	Halted() bool
	ReadRegister(reg int) int
	Steps() uint64
}

// Engine runs scheduled events until there are none left. sim.Engine
// satisfies it.
type Engine interface {
	Run() error
}

// Driver provides the interface to run programs on a simulated machine.
type Driver interface {
	// RegisterMachine sets the machine that later calls run on.
	RegisterMachine(m Machine)

	// MapProgram maps the program to the registered machine.
	MapProgram(program core.Program)

	// FeedIn sets the values of registers 1..len(inputs) for the next run.
	FeedIn(inputs []int) error

	// Run runs the mapped program on the fed inputs and collects register
	// 1. A machine stopped by its step limit yields core.ErrStepLimit.
	Run() (int, error)
}

type driverImpl struct {
	name   string
	engine Engine

	machine Machine
	mapped  bool
	inputs  []int
}

// RegisterMachine registers a machine to the driver.
func (d *driverImpl) RegisterMachine(m Machine) {
	d.machine = m
	d.mapped = false
}

// MapProgram dispatches a program to the machine.
func (d *driverImpl) MapProgram(program core.Program) {
	if d.machine == nil {
		panic("no machine registered")
	}

	d.machine.MapProgram(program)
	d.mapped = true
}

// FeedIn records the inputs of the next run.
func (d *driverImpl) FeedIn(inputs []int) error {
	if err := core.ValidateInputs(inputs); err != nil {
		return err
	}

	d.inputs = append([]int(nil), inputs...)

	return nil
}

// Run runs the mapped program to completion.
func (d *driverImpl) Run() (int, error) {
	if d.machine == nil || !d.mapped {
		return 0, errors.New("no program mapped")
	}

	if err := d.machine.SetInputs(d.inputs); err != nil {
		return 0, err
	}

	slog.Info("Run", "Driver", d.name, "Inputs", d.inputs)

	d.machine.Start()
	if err := d.engine.Run(); err != nil {
		return 0, fmt.Errorf("engine: %w", err)
	}

	if !d.machine.Halted() {
		return 0, fmt.Errorf("%w: %d steps", core.ErrStepLimit, d.machine.Steps())
	}

	result := d.machine.ReadRegister(1)
	slog.Info("Done",
		"Driver", d.name,
		"Steps", d.machine.Steps(),
		"Result", result,
	)

	return result, nil
}
