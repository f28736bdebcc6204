package arith

// The three failure messages are fixed so callers can log and compare
// deterministically. Every error kind in this package renders as one of them.
const (
	overflowMsg  = "arithmetic overflow"
	underflowMsg = "arithmetic underflow"
	undefinedMsg = "arithmetic result undefined"
)

// Overflow is returned when the true result of a checked operation exceeds
// the maximum representable value of its type.
type Overflow struct{}

func (Overflow) Error() string { return overflowMsg }

// Range widens to the equivalent RangeError.
func (Overflow) Range() RangeError { return RangeOverflow }

// Arithmetic widens to the equivalent ArithmeticError.
func (Overflow) Arithmetic() ArithmeticError { return ArithmeticOverflow }

// Underflow is returned when the true result of a checked operation is below
// the minimum representable value of its type.
type Underflow struct{}

func (Underflow) Error() string { return underflowMsg }

// Range widens to the equivalent RangeError.
func (Underflow) Range() RangeError { return RangeUnderflow }

// Arithmetic widens to the equivalent ArithmeticError.
func (Underflow) Arithmetic() ArithmeticError { return ArithmeticUnderflow }

// Undefined is returned when a checked operation has no defined numeric
// result for its operands, such as division or remainder by zero.
type Undefined struct{}

func (Undefined) Error() string { return undefinedMsg }

// Arithmetic widens to the equivalent ArithmeticError.
func (Undefined) Arithmetic() ArithmeticError { return ArithmeticUndefined }

// RangeError is the union of Overflow and Underflow, returned by checked
// operators that can fail in either direction but are always defined
// (signed add, sub and mul).
//
// There is no narrowing conversion back to Overflow or Underflow; match on
// the constants or use errors.Is against the narrow kinds instead.
type RangeError uint8

const (
	RangeUnderflow RangeError = iota + 1
	RangeOverflow
)

func (e RangeError) Error() string {
	if e == RangeUnderflow {
		return underflowMsg
	}
	return overflowMsg
}

// Arithmetic widens to the equivalent ArithmeticError.
func (e RangeError) Arithmetic() ArithmeticError {
	if e == RangeUnderflow {
		return ArithmeticUnderflow
	}
	return ArithmeticOverflow
}

// Is reports whether e represents the same failure as a narrow error kind,
// so errors.Is(err, Overflow{}) holds for RangeOverflow.
func (e RangeError) Is(target error) bool {
	switch target.(type) {
	case Overflow:
		return e == RangeOverflow
	case Underflow:
		return e == RangeUnderflow
	}
	return false
}

// ArithmeticError is the union of Overflow, Underflow and Undefined,
// returned by checked operators that can fail for more than one reason
// (signed division, which may be undefined or overflow).
//
// There is no narrowing conversion; match on the constants or use errors.Is
// against the narrow kinds instead.
type ArithmeticError uint8

const (
	ArithmeticUndefined ArithmeticError = iota + 1
	ArithmeticUnderflow
	ArithmeticOverflow
)

func (e ArithmeticError) Error() string {
	switch e {
	case ArithmeticUndefined:
		return undefinedMsg
	case ArithmeticUnderflow:
		return underflowMsg
	}
	return overflowMsg
}

// Is reports whether e represents the same failure as a narrow error kind,
// so errors.Is(err, Undefined{}) holds for ArithmeticUndefined.
func (e ArithmeticError) Is(target error) bool {
	switch target.(type) {
	case Overflow:
		return e == ArithmeticOverflow
	case Underflow:
		return e == ArithmeticUnderflow
	case Undefined:
		return e == ArithmeticUndefined
	}
	return false
}
