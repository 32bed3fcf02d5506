package synth

import (
	"fmt"

	"github.com/sarchlab/urm/core"
)

// Zero returns 0.
func Zero() core.Program {
	return ClearProgram(1)
}

// Succ returns x+1.
func Succ() core.Program {
	return core.MustProgram(core.Inc{Reg: 1, Next: 2})
}

// Proj returns its i-th argument. Proj(1) is the empty program.
func Proj(i int) core.Program {
	if i < 1 {
		panic(fmt.Sprintf("projection index %d must be at least 1", i))
	}

	if i == 1 {
		return core.MustProgram()
	}

	var a assembler
	a.clear(1)
	a.move(i, 1)

	return a.program()
}

// One returns the constant 1, built as Succ after Zero.
func One() core.Program {
	return MustCompose(Succ(), Zero())
}

// Add returns y+x.
func Add() core.Program {
	return PrimRec(Proj(1), MustCompose(Succ(), Proj(2)))
}

// Mul returns y*x by adding x to the running product y times.
func Mul() core.Program {
	return PrimRec(Zero(), MustCompose(Add(), Proj(2), Proj(3)))
}

// mulByAddend is Mul with the inner addition recursing on x instead of on
// the running product. It runs far fewer steps when x is small.
func mulByAddend() core.Program {
	return PrimRec(Zero(), MustCompose(Add(), Proj(3), Proj(2)))
}

// Pred returns x-1, or 0 for 0.
func Pred() core.Program {
	return PrimRec(Zero(), Proj(1))
}

// Sub returns x-y, or 0 when y > x.
func Sub() core.Program {
	subFrom := PrimRec(Proj(1), MustCompose(Pred(), Proj(2)))
	return MustCompose(subFrom, Proj(2), Proj(1))
}

// Factorial returns n!.
func Factorial() core.Program {
	step := MustCompose(mulByAddend(), Proj(2), MustCompose(Succ(), Proj(1)))
	return PrimRec(One(), step)
}

// Div returns the least y with x - y*d <= 0, i.e. x/d rounded up. It does
// not halt for d = 0 and x > 0.
func Div() core.Program {
	return Minimize(MustCompose(Sub(), Proj(2), MustCompose(Mul(), Proj(1), Proj(3))))
}

// Multiply is a hand-written x*y that leaves y intact.
func Multiply() core.Program {
	return core.MustProgram(
		core.Dec{Reg: 1, Next: 2, Else: 7},
		core.Dec{Reg: 2, Next: 3, Else: 5},
		core.Inc{Reg: 3, Next: 4},
		core.Inc{Reg: 4, Next: 2},
		core.Dec{Reg: 4, Next: 6, Else: 1},
		core.Inc{Reg: 2, Next: 5},
		core.Dec{Reg: 3, Next: 8, Else: 9},
		core.Inc{Reg: 1, Next: 7},
	)
}

// Library returns the standard programs by name.
func Library() map[string]core.Program {
	return map[string]core.Program{
		"zero":     Zero(),
		"one":      One(),
		"succ":     Succ(),
		"proj1":    Proj(1),
		"proj2":    Proj(2),
		"proj3":    Proj(3),
		"add":      Add(),
		"mul":      Mul(),
		"pred":     Pred(),
		"sub":      Sub(),
		"fact":     Factorial(),
		"div":      Div(),
		"multiply": Multiply(),
	}
}
