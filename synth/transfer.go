package synth

import "github.com/sarchlab/urm/core"

// ClearProgram sets register r to zero.
//
//	1: Dec r -> 1 else 2
func ClearProgram(r int) core.Program {
	return core.MustProgram(core.Dec{Reg: r, Next: 1, Else: 2})
}

// CopyProgram adds the value of src to every register in dsts and leaves
// src unchanged. mem must be zero on entry and is zero again on exit.
//
// With a single destination:
//
//	1: Dec src -> 2 else 4
//	2: Inc dst -> 3
//	3: Inc mem -> 1
//	4: Dec mem -> 5 else 6
//	5: Inc src -> 4
func CopyProgram(src int, dsts []int, mem int) core.Program {
	k := len(dsts)
	drain := core.Label(k + 3)

	insts := make([]core.Instruction, 0, k+4)
	insts = append(insts, core.Dec{Reg: src, Next: 2, Else: drain})
	for i, d := range dsts {
		insts = append(insts, core.Inc{Reg: d, Next: core.Label(i + 3)})
	}
	insts = append(insts,
		core.Inc{Reg: mem, Next: 1},
		core.Dec{Reg: mem, Next: drain + 1, Else: drain + 2},
		core.Inc{Reg: src, Next: drain},
	)

	return core.MustProgram(insts...)
}

// MoveProgram adds the value of src to every register in dsts and leaves
// src at zero. With no destinations it clears src.
//
//	1: Dec src -> 2 else 3
//	2: Inc dst -> 1
func MoveProgram(src int, dsts ...int) core.Program {
	k := len(dsts)
	if k == 0 {
		return ClearProgram(src)
	}

	insts := make([]core.Instruction, 0, k+1)
	insts = append(insts, core.Dec{Reg: src, Next: 2, Else: core.Label(k + 2)})
	for i, d := range dsts {
		next := core.Label(i + 3)
		if i == k-1 {
			next = 1
		}
		insts = append(insts, core.Inc{Reg: d, Next: next})
	}

	return core.MustProgram(insts...)
}
