package api

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/urm/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	maxSteps uint64
}

// WithEngine sets the engine.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the machine the driver builds.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithMaxSteps sets the step limit of the machine. Zero means no limit.
func (b DriverBuilder) WithMaxSteps(n uint64) DriverBuilder {
	b.maxSteps = n
	return b
}

// Build creates a driver together with the machine it drives.
func (b DriverBuilder) Build(name string) Driver {
	if b.engine == nil {
		panic("DriverBuilder needs an engine")
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	d := &driverImpl{
		name:   name,
		engine: b.engine,
	}

	machine := core.NewBuilder().
		WithEngine(b.engine).
		WithFreq(freq).
		WithMaxSteps(b.maxSteps).
		Build(name + ".Core")
	d.RegisterMachine(machine)

	return d
}
