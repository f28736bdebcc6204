package arith

import (
	"fmt"
	"math/big"
	"math/bits"
)

// I128 is a signed (two's complement) 128-bit integer. Like the built-in
// integer types it is a value type: operators consume and produce values,
// never mutate in place.
type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Values outside the range
// clamp to MinI128/MaxI128 and set accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0
	abs := v
	if neg {
		abs = new(big.Int).Abs(v)
	}

	u, acc := U128FromBigInt(abs)
	if !neg {
		if !acc || u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), true
	}
	if !acc || u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	if u == minI128AsAbsU128 {
		return MinI128, true
	}
	return u.AsI128().Neg(), true
}

// RandI128 generates a positive signed 128-bit random integer from an
// external source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & signMask, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	return i.AsBigInt().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	if i.hi&signBit == 0 {
		i.AsU128().IntoBigInt(b)
		return
	}
	i.Abs().AsU128().IntoBigInt(b)
	b.Neg(b)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{hi: i.hi, lo: i.lo}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, 1, 0)
	v.hi = i.hi + carry
	return v
}

func (i I128) Dec() (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, 1, 0)
	v.hi = i.hi - borrow
	return v
}

// Add returns i + n, wrapping around the 128-bit boundary. CheckedAdd and
// SaturatingAdd catch the wrap instead.
func (i I128) Add(n I128) (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, n.lo, 0)
	v.hi, _ = bits.Add64(i.hi, n.hi, carry)
	return v
}

// Sub returns i - n, wrapping around the 128-bit boundary.
func (i I128) Sub(n I128) (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(i.hi, n.hi, borrow)
	return v
}

// Neg returns -i, wrapping around the 128-bit boundary: negating MinI128
// yields MinI128 again.
func (i I128) Neg() (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(0, i.lo, 0)
	v.hi, _ = bits.Sub64(0, i.hi, borrow)
	return v
}

// Abs returns the absolute value of i as an I128, wrapping around the
// 128-bit boundary: the absolute value of MinI128 is MinI128 again. Combine
// with AsU128 to get the true magnitude.
func (i I128) Abs() I128 {
	if i.hi&signBit == 0 {
		return i
	}
	return i.Neg()
}

// Mul returns i * n, wrapping around the 128-bit boundary.
func (i I128) Mul(n I128) I128 {
	// Two's complement multiplication is sign-oblivious in the low 128 bits.
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	return i.Cmp(n) > 0
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	return i.Cmp(n) >= 0
}

func (i I128) LessThan(n I128) bool {
	return i.Cmp(n) < 0
}

func (i I128) LessOrEqualTo(n I128) bool {
	return i.Cmp(n) <= 0
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by     with the result truncated to zero
//	r = i - by*q
//
// I128 does not support big.Int.DivMod()-style Euclidean division.
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
	}

	qu, ru := i.Abs().AsU128().QuoRem(by.Abs().AsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

// CheckedAdd returns i + n, or a RangeError if the true sum is outside
// [MinI128, MaxI128]: RangeOverflow when i >= 0, RangeUnderflow when i < 0.
func (i I128) CheckedAdd(n I128) (I128, error) {
	v := i.Add(n)
	// Overflow iff the operands share a sign the result does not.
	if (i.hi^n.hi)&signBit == 0 && (v.hi^i.hi)&signBit != 0 {
		if i.hi&signBit == 0 {
			return I128{}, RangeOverflow
		}
		return I128{}, RangeUnderflow
	}
	return v, nil
}

// CheckedSub returns i - n, or a RangeError if the true difference is
// outside [MinI128, MaxI128]: RangeOverflow when i >= 0, RangeUnderflow
// when i < 0.
func (i I128) CheckedSub(n I128) (I128, error) {
	v := i.Sub(n)
	// Overflow iff the operand signs differ and the result's differs from i's.
	if (i.hi^n.hi)&signBit != 0 && (v.hi^i.hi)&signBit != 0 {
		if i.hi&signBit == 0 {
			return I128{}, RangeOverflow
		}
		return I128{}, RangeUnderflow
	}
	return v, nil
}

// CheckedMul returns i * n, or a RangeError if the true product is outside
// [MinI128, MaxI128]: RangeOverflow when the operand signs agree,
// RangeUnderflow when they differ.
func (i I128) CheckedMul(n I128) (I128, error) {
	if i.IsZero() || n.IsZero() {
		return I128{}, nil
	}
	neg := (i.hi^n.hi)&signBit != 0

	p, err := i.Abs().AsU128().CheckedMul(n.Abs().AsU128())
	if err == nil {
		if neg {
			if p.LessOrEqualTo(minI128AsAbsU128) {
				return p.AsI128().Neg(), nil
			}
		} else if p.LessOrEqualTo(maxI128AsU128) {
			return p.AsI128(), nil
		}
	}
	if neg {
		return I128{}, RangeUnderflow
	}
	return I128{}, RangeOverflow
}

// CheckedDiv returns i / n, or an ArithmeticError: ArithmeticUndefined when
// n is zero, ArithmeticOverflow for MinI128 / -1, the one quotient whose
// magnitude exceeds MaxI128.
func (i I128) CheckedDiv(n I128) (I128, error) {
	if n.IsZero() {
		return I128{}, ArithmeticUndefined
	}
	if i == MinI128 && n == minusOneI128 {
		return I128{}, ArithmeticOverflow
	}
	return i.Quo(n), nil
}

// CheckedRem returns i % n, or Undefined if n is zero.
//
// MinI128 % -1 succeeds and returns zero: the quotient overflows but the
// remainder is exact, matching hardware remainder semantics.
func (i I128) CheckedRem(n I128) (I128, error) {
	if n.IsZero() {
		return I128{}, Undefined{}
	}
	if n == minusOneI128 {
		// x % -1 is always 0; answer without dividing.
		return I128{}, nil
	}
	return i.Rem(n), nil
}

// CheckedNeg returns -i, or Overflow for MinI128, whose positive
// counterpart is not representable.
func (i I128) CheckedNeg() (I128, error) {
	if i == MinI128 {
		return I128{}, Overflow{}
	}
	return i.Neg(), nil
}

// SaturatingAdd returns i + n, clamping to MinI128/MaxI128 on under- or
// overflow.
func (i I128) SaturatingAdd(n I128) I128 {
	v, err := i.CheckedAdd(n)
	if err != nil {
		return saturate128(err)
	}
	return v
}

// SaturatingSub returns i - n, clamping to MinI128/MaxI128 on under- or
// overflow.
func (i I128) SaturatingSub(n I128) I128 {
	v, err := i.CheckedSub(n)
	if err != nil {
		return saturate128(err)
	}
	return v
}

// SaturatingMul returns i * n, clamping to MinI128/MaxI128 on under- or
// overflow.
func (i I128) SaturatingMul(n I128) I128 {
	v, err := i.CheckedMul(n)
	if err != nil {
		return saturate128(err)
	}
	return v
}

// SaturatingNeg returns -i, except that negating MinI128 returns MaxI128,
// the closest representable value.
func (i I128) SaturatingNeg() I128 {
	if i == MinI128 {
		return MaxI128
	}
	return i.Neg()
}

func saturate128(err error) I128 {
	if err == RangeOverflow {
		return MaxI128
	}
	return MinI128
}

// WrappingAdd returns i + n with two's complement wraparound.
func (i I128) WrappingAdd(n I128) I128 { return i.Add(n) }

// WrappingSub returns i - n with two's complement wraparound.
func (i I128) WrappingSub(n I128) I128 { return i.Sub(n) }

// WrappingMul returns i * n with two's complement wraparound.
func (i I128) WrappingMul(n I128) I128 { return i.Mul(n) }

// WrappingNeg returns -i with two's complement wraparound: MinI128 negates
// to itself.
func (i I128) WrappingNeg() I128 { return i.Neg() }
