package arith

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// saturate maps a checked-arithmetic failure onto the nearest representable
// value: the maximum for overflow, the minimum for underflow.
func saturate[T constraints.Integer](err error) T {
	if errors.Is(err, Overflow{}) {
		return maxOf[T]()
	}
	return minOf[T]()
}

// SaturatingAdd returns a + b, clamped to the representable range of T.
func SaturatingAdd[T constraints.Integer](a, b T) T {
	v, err := CheckedAdd(a, b)
	if err != nil {
		return saturate[T](err)
	}
	return v
}

// SaturatingSub returns a - b, clamped to the representable range of T.
func SaturatingSub[T constraints.Integer](a, b T) T {
	v, err := CheckedSub(a, b)
	if err != nil {
		return saturate[T](err)
	}
	return v
}

// SaturatingMul returns a * b, clamped to the representable range of T.
func SaturatingMul[T constraints.Integer](a, b T) T {
	v, err := CheckedMul(a, b)
	if err != nil {
		return saturate[T](err)
	}
	return v
}

// SaturatingNeg returns -a, clamped to the representable range of T.
//
// For signed T, negating the minimum returns the maximum. For unsigned T,
// negating anything nonzero returns 0.
func SaturatingNeg[T constraints.Integer](a T) T {
	v, err := CheckedNeg(a)
	if err != nil {
		return saturate[T](err)
	}
	return v
}
