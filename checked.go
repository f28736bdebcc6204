package arith

import (
	"golang.org/x/exp/constraints"
)

// isUnsigned reports whether T is an unsigned type. It compiles to a
// constant for any instantiation.
func isUnsigned[T constraints.Integer]() bool {
	return ^T(0) >= 0
}

// minOf returns the smallest representable value of T.
func minOf[T constraints.Integer]() T {
	if isUnsigned[T]() {
		return 0
	}
	// Double -1 until the shift wraps the sign away.
	min := ^T(0)
	for next := min << 1; next < min; next = next << 1 {
		min = next
	}
	return min
}

// maxOf returns the largest representable value of T.
func maxOf[T constraints.Integer]() T {
	if isUnsigned[T]() {
		return ^T(0)
	}
	return ^minOf[T]()
}

// CheckedAdd returns a + b, or an error if the true sum is not representable
// in T.
//
// For signed T the error is a RangeError: RangeOverflow when a >= 0,
// RangeUnderflow when a < 0. For unsigned T the error is always Overflow.
func CheckedAdd[T constraints.Integer](a, b T) (T, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		if isUnsigned[T]() {
			return 0, Overflow{}
		}
		if a >= 0 {
			return 0, RangeOverflow
		}
		return 0, RangeUnderflow
	}
	return sum, nil
}

// CheckedSub returns a - b, or an error if the true difference is not
// representable in T.
//
// For signed T the error is a RangeError: RangeOverflow when a >= 0,
// RangeUnderflow when a < 0. For unsigned T the error is always Underflow,
// as an unsigned difference can only drop below zero.
func CheckedSub[T constraints.Integer](a, b T) (T, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		if isUnsigned[T]() {
			return 0, Underflow{}
		}
		if a >= 0 {
			return 0, RangeOverflow
		}
		return 0, RangeUnderflow
	}
	return diff, nil
}

// CheckedMul returns a * b, or an error if the true product is not
// representable in T.
//
// For signed T the error is a RangeError: RangeOverflow when the operand
// signs agree, RangeUnderflow when they differ. For unsigned T the error is
// always Overflow.
func CheckedMul[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if isUnsigned[T]() {
		if a > maxOf[T]()/b {
			return 0, Overflow{}
		}
		return a * b, nil
	}

	// Bounds are checked before multiplying so no intermediate wraps, and
	// the divisions below can never hit the MIN/-1 case: MIN only ever
	// appears as a dividend with a positive divisor.
	var fail bool
	if a > 0 {
		if b > 0 {
			fail = a > maxOf[T]()/b
		} else {
			fail = b < minOf[T]()/a
		}
	} else {
		if b > 0 {
			fail = a < minOf[T]()/b
		} else {
			fail = b < maxOf[T]()/a
		}
	}
	if fail {
		if (a >= 0) == (b >= 0) {
			return 0, RangeOverflow
		}
		return 0, RangeUnderflow
	}
	return a * b, nil
}

// CheckedDiv returns a / b (truncated division), or an error if the quotient
// is undefined or not representable in T.
//
// The error is an ArithmeticError: ArithmeticUndefined when b == 0, and for
// signed T ArithmeticOverflow when a is the minimum value and b == -1, the
// one quotient whose magnitude exceeds the maximum. For unsigned T the error
// is always Undefined, as unsigned division cannot overflow.
func CheckedDiv[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		if isUnsigned[T]() {
			return 0, Undefined{}
		}
		return 0, ArithmeticUndefined
	}
	if !isUnsigned[T]() && b == ^T(0) && a == minOf[T]() {
		return 0, ArithmeticOverflow
	}
	return a / b, nil
}

// CheckedRem returns a % b (truncated modulus), or Undefined if b == 0.
//
// For signed T, MIN % -1 succeeds and returns 0: the quotient overflows but
// the remainder is exact, matching hardware remainder semantics.
func CheckedRem[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, Undefined{}
	}
	if !isUnsigned[T]() && b == ^T(0) {
		// x % -1 is always 0; answer without dividing.
		return 0, nil
	}
	return a % b, nil
}

// CheckedNeg returns -a, or an error if the negation is not representable
// in T.
//
// For signed T the only failure is the minimum value, which returns
// Overflow. For unsigned T every nonzero value fails with Underflow.
func CheckedNeg[T constraints.Integer](a T) (T, error) {
	if isUnsigned[T]() {
		if a != 0 {
			return 0, Underflow{}
		}
		return 0, nil
	}
	if a == minOf[T]() {
		return 0, Overflow{}
	}
	return -a, nil
}
