// Package verify checks register-machine programs without the timed
// simulator.
//
// It provides three tools:
//
// 1. Static Lint (lint.go): structural checks on finished programs
//   - STRUCT: registers below 1, labels outside [1, len+1]
//   - REACH: instructions that cannot be reached from label 1
//   - HALT: programs whose halt label cannot be reached at all
//
// 2. Functional Simulator (funcsim.go): a fast interpreter
//   - Resets every register to zero, loads the inputs into registers 1..n
//   - Runs from label 1 until the halt label
//   - Takes an optional step limit, which is how callers observe programs
//     that do not halt (a minimization without a root, for example)
//
// 3. Report (report.go): runs lint and a list of test cases and renders the
// outcome as tables.
//
// # Usage Example
//
//	programs := synth.Library()
//
//	issues := verify.RunLint(programs)
//	for _, issue := range issues {
//	    log.Printf("[%s] %s@%d: %s", issue.Type, issue.Program, issue.At, issue.Message)
//	}
//
//	got, err := verify.ComputeBounded(programs["add"], 1_000_000, 3, 4)
//	if errors.Is(err, core.ErrStepLimit) {
//	    // did not halt within the budget
//	}
package verify

import (
	"github.com/sarchlab/urm/core"
)

// Compute runs p on inputs until it halts and returns register 1. It does
// not return if p does not halt.
func Compute(p core.Program, inputs ...int) (int, error) {
	return ComputeBounded(p, 0, inputs...)
}

// ComputeBounded is Compute with a step limit. A zero maxSteps means no
// limit. Running out of steps returns an error wrapping core.ErrStepLimit.
func ComputeBounded(p core.Program, maxSteps uint64, inputs ...int) (int, error) {
	fs := NewFunctionalSimulator(p)
	if err := fs.SetInputs(inputs...); err != nil {
		return 0, err
	}

	if err := fs.Run(maxSteps); err != nil {
		return 0, err
	}

	return fs.Result(), nil
}
