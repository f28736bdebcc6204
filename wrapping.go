package arith

import (
	"golang.org/x/exp/constraints"
)

// The wrapping operators reduce the true result modulo 2^W into the
// representable range: two's-complement wraparound for signed types, plain
// modular arithmetic for unsigned. Go's built-in operators already behave
// this way for every integer type, so these exist to name the semantics and
// complete the operator families.

// WrappingAdd returns a + b reduced modulo 2^W.
func WrappingAdd[T constraints.Integer](a, b T) T { return a + b }

// WrappingSub returns a - b reduced modulo 2^W.
func WrappingSub[T constraints.Integer](a, b T) T { return a - b }

// WrappingMul returns a * b reduced modulo 2^W.
func WrappingMul[T constraints.Integer](a, b T) T { return a * b }

// WrappingNeg returns -a reduced modulo 2^W. For signed T the minimum value
// negates to itself; for unsigned T this is 2^W - a for nonzero a.
func WrappingNeg[T constraints.Integer](a T) T { return -a }
