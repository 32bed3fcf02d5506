package core

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("parse error")

	// ErrValidation is wrapped by every ValidationError.
	ErrValidation = errors.New("invalid register value")

	// ErrMalformed is wrapped by LabelError and RegisterError.
	ErrMalformed = errors.New("malformed program")

	// ErrStepLimit is returned when an execution is stopped by an external
	// step limit before reaching the halt label.
	ErrStepLimit = errors.New("step limit reached before halt")
)

// ParseError reports an instruction line that does not match the
// instruction syntax.
type ParseError struct {
	Line int // 1-based line number, 0 for a single instruction
	Text string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %q", ErrParse, e.Line, e.Text)
	}
	return fmt.Sprintf("%v: %q", ErrParse, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// ValidationError reports an input register holding a value the machine
// cannot represent.
type ValidationError struct {
	Register int
	Value    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: R%d = %s", ErrValidation, e.Register, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// LabelError reports an instruction whose target lies outside [1, len+1].
type LabelError struct {
	At    Label
	Label Label
	Halt  Label
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%v: instruction %d jumps to %d, outside [1, %d]",
		ErrMalformed, e.At, e.Label, e.Halt)
}

func (e *LabelError) Unwrap() error { return ErrMalformed }

// RegisterError reports an instruction referencing a register below 1.
type RegisterError struct {
	At  Label
	Reg int
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("%v: instruction %d uses register %d", ErrMalformed, e.At, e.Reg)
}

func (e *RegisterError) Unwrap() error { return ErrMalformed }
