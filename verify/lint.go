package verify

import (
	"fmt"
	"sort"

	"github.com/sarchlab/urm/core"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Register below 1 or label outside [1, len+1]
	IssueReach  IssueType = "REACH"  // Instruction unreachable from label 1
	IssueHalt   IssueType = "HALT"   // Halt label unreachable from label 1
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT, REACH or HALT
	Program string                 // Name of the program
	At      core.Label             // Offending instruction, 0 if not applicable
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// RunLint performs static checks on every program. Issues are ordered by
// program name, then by address.
func RunLint(programs map[string]core.Program) []Issue {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	var issues []Issue
	for _, name := range names {
		issues = append(issues, LintProgram(name, programs[name])...)
	}

	return issues
}

// LintProgram checks a single program.
func LintProgram(name string, p core.Program) []Issue {
	insts := p.Instructions()

	issues := CheckLabels(name, insts)
	if len(issues) > 0 {
		// Reachability is meaningless with targets outside the program.
		return issues
	}

	return append(issues, checkReachability(name, insts)...)
}

// CheckLabels reports registers below 1 and labels outside [1, len+1] in a
// raw instruction sequence. A core.Program never contains either; this is
// for sequences that have not been through core.NewProgram yet.
func CheckLabels(name string, insts []core.Instruction) []Issue {
	var issues []Issue
	halt := core.Label(len(insts) + 1)

	for i, inst := range insts {
		at := core.Label(i + 1)

		if inst.Register() < 1 {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Program: name,
				At:      at,
				Message: fmt.Sprintf("%s uses register %d", inst, inst.Register()),
				Details: map[string]interface{}{"register": inst.Register()},
			})
		}

		for _, l := range inst.Targets() {
			if l >= 1 && l <= halt {
				continue
			}

			issues = append(issues, Issue{
				Type:    IssueStruct,
				Program: name,
				At:      at,
				Message: fmt.Sprintf("%s jumps to %d, outside [1, %d]", inst, l, halt),
				Details: map[string]interface{}{
					"label": int(l),
					"halt":  int(halt),
				},
			})
		}
	}

	return issues
}

func checkReachability(name string, insts []core.Instruction) []Issue {
	halt := core.Label(len(insts) + 1)
	reached := make([]bool, len(insts)+2)

	work := []core.Label{1}
	reached[1] = true
	for len(work) > 0 {
		l := work[len(work)-1]
		work = work[:len(work)-1]

		if l == halt {
			continue
		}

		for _, t := range insts[l-1].Targets() {
			if !reached[t] {
				reached[t] = true
				work = append(work, t)
			}
		}
	}

	var issues []Issue
	for i, inst := range insts {
		if reached[i+1] {
			continue
		}

		issues = append(issues, Issue{
			Type:    IssueReach,
			Program: name,
			At:      core.Label(i + 1),
			Message: fmt.Sprintf("%s is unreachable from label 1", inst),
		})
	}

	if !reached[halt] {
		issues = append(issues, Issue{
			Type:    IssueHalt,
			Program: name,
			Message: fmt.Sprintf("halt label %d is unreachable; the program never halts", halt),
			Details: map[string]interface{}{"halt": int(halt)},
		})
	}

	return issues
}
