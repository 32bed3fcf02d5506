// Package synth builds register-machine programs out of other programs
// using composition, primitive recursion and minimization.
//
// # Register layout
//
// A synthesized program never executes its sub-programs in place. Each
// sub-program gets a zone, a window of consecutive registers past every
// register the surrounding program uses, and is spliced into the output
// with its registers shifted into that window:
//
//	1 .. callerMax            inputs and the caller's own registers
//	zone 1                    sub-program 1, registers shifted by Base-1
//	zone 2                    ...
//	mem, counters             scratch registers taken after the last zone
//
// Values move between zones only through the transfer micro-programs in
// transfer.go. Reading a register without consuming it uses the
// copy-via-scratch protocol, which requires the scratch register to be zero
// and leaves it zero.
//
// # Control flow
//
// Every sub-program is written with labels relative to itself and halts by
// jumping to its own halt label. Splice rewrites those labels to absolute
// addresses in the output and redirects the halt label to a continuation,
// normally the first instruction of the next phase.
package synth

import "fmt"

// Zone is a window of Size registers starting at Base.
type Zone struct {
	Base int
	Size int
}

// End returns the last register of the zone.
func (z Zone) End() int {
	return z.Base + z.Size - 1
}

// Reg returns the absolute register of the 1-based slot.
func (z Zone) Reg(slot int) int {
	return z.Base + slot - 1
}

// Shift returns the register delta that moves a sub-program's register 1
// onto the zone's first register.
func (z Zone) Shift() int {
	return z.Base - 1
}

// AllocateZones places n zones of size registers each directly after
// register callerMax. The k-th zone (1-indexed) starts at
// callerMax + 1 + (k-1)*size.
func AllocateZones(callerMax, size, n int) []Zone {
	zones := make([]Zone, n)
	for k := range zones {
		zones[k] = Zone{Base: callerMax + 1 + k*size, Size: size}
	}

	checkDisjoint(callerMax, zones)

	return zones
}

// checkDisjoint panics if a zone overlaps the caller's registers or
// another zone. Zones are expected in ascending order.
func checkDisjoint(callerMax int, zones []Zone) {
	last := callerMax
	for i, z := range zones {
		if z.Size < 1 || z.Base <= last {
			panic(fmt.Sprintf("zone %d [%d, %d] overlaps registers up to %d",
				i+1, z.Base, z.End(), last))
		}
		last = z.End()
	}
}
