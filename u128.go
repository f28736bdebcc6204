package arith

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. Like the built-in integer types it is
// a value type: operators consume and produce values, never mutate in place.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromBigInt creates a U128 from a big.Int. Values outside the range
// clamp to zero/MaxU128 and set accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}
	var hi, lo big.Int
	lo.And(v, maxBigUint64)
	hi.Rsh(v, 64)
	return U128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

// RandU128 generates an unsigned 128-bit random integer from an external
// source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Add(b, &lo)
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret
// it as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{hi: u.hi, lo: u.lo}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you
// convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

// Add returns u + n, wrapping around the 128-bit boundary. CheckedAdd and
// SaturatingAdd catch the wrap instead.
func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

// Sub returns u - n, wrapping around the 128-bit boundary.
func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Mul returns u * n, wrapping around the 128-bit boundary.
func (u U128) Mul(n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated to zero
//	r = u - by*q
//
// U128 does not support big.Int.DivMod()-style Euclidean division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic("arith: division by zero")
		}
		if u.hi < by.lo {
			q.lo, r.lo = bits.Div64(u.hi, u.lo, by.lo)
		} else {
			q.hi = u.hi / by.lo
			q.lo, r.lo = bits.Div64(u.hi%by.lo, u.lo, by.lo)
		}
		return q, r
	}

	if u.Cmp(by) < 0 {
		return q, u // it's 100% remainder
	}
	return u.quoRemBin(by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// quoRemBin is restoring binary long division. Requires by != 0 and
// u >= by; with by.hi != 0 the loop runs at most 64 times.
func (u U128) quoRemBin(by U128) (q, r U128) {
	shift := int(by.LeadingZeros() - u.LeadingZeros())
	by = by.Lsh(uint(shift))
	for ; shift >= 0; shift-- {
		q = q.Lsh(1)
		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}
		by = by.Rsh(1)
	}
	return q, u
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// CheckedAdd returns u + n, or Overflow if the true sum exceeds MaxU128.
func (u U128) CheckedAdd(n U128) (U128, error) {
	lo, carry := bits.Add64(u.lo, n.lo, 0)
	hi, carry := bits.Add64(u.hi, n.hi, carry)
	if carry != 0 {
		return U128{}, Overflow{}
	}
	return U128{hi: hi, lo: lo}, nil
}

// CheckedSub returns u - n, or Underflow if the true difference is below
// zero.
func (u U128) CheckedSub(n U128) (U128, error) {
	lo, borrow := bits.Sub64(u.lo, n.lo, 0)
	hi, borrow := bits.Sub64(u.hi, n.hi, borrow)
	if borrow != 0 {
		return U128{}, Underflow{}
	}
	return U128{hi: hi, lo: lo}, nil
}

// CheckedMul returns u * n, or Overflow if the true product exceeds MaxU128.
func (u U128) CheckedMul(n U128) (U128, error) {
	// The 256-bit product is hi*n.hi<<128 + (hi*n.lo + lo*n.hi)<<64 +
	// lo*n.lo; anything landing at bit 128 or above is overflow.
	if u.hi != 0 && n.hi != 0 {
		return U128{}, Overflow{}
	}
	c1, m1 := bits.Mul64(u.hi, n.lo)
	c2, m2 := bits.Mul64(u.lo, n.hi)
	if c1 != 0 || c2 != 0 {
		return U128{}, Overflow{}
	}
	hi, lo := bits.Mul64(u.lo, n.lo)
	mid, carry := bits.Add64(m1, m2, 0)
	if carry != 0 {
		return U128{}, Overflow{}
	}
	hi, carry = bits.Add64(hi, mid, 0)
	if carry != 0 {
		return U128{}, Overflow{}
	}
	return U128{hi: hi, lo: lo}, nil
}

// CheckedDiv returns u / n, or Undefined if n is zero. Unsigned division
// cannot overflow.
func (u U128) CheckedDiv(n U128) (U128, error) {
	if n.IsZero() {
		return U128{}, Undefined{}
	}
	return u.Quo(n), nil
}

// CheckedRem returns u % n, or Undefined if n is zero.
func (u U128) CheckedRem(n U128) (U128, error) {
	if n.IsZero() {
		return U128{}, Undefined{}
	}
	return u.Rem(n), nil
}

// CheckedNeg returns -u, or Underflow for any nonzero u.
func (u U128) CheckedNeg() (U128, error) {
	if !u.IsZero() {
		return U128{}, Underflow{}
	}
	return u, nil
}

// SaturatingAdd returns u + n, clamping to MaxU128 on overflow.
func (u U128) SaturatingAdd(n U128) U128 {
	v, err := u.CheckedAdd(n)
	if err != nil {
		return MaxU128
	}
	return v
}

// SaturatingSub returns u - n, clamping to zero on underflow.
func (u U128) SaturatingSub(n U128) U128 {
	v, err := u.CheckedSub(n)
	if err != nil {
		return zeroU128
	}
	return v
}

// SaturatingMul returns u * n, clamping to MaxU128 on overflow.
func (u U128) SaturatingMul(n U128) U128 {
	v, err := u.CheckedMul(n)
	if err != nil {
		return MaxU128
	}
	return v
}

// SaturatingNeg returns zero, the nearest representable value to -u for
// every unsigned u.
func (u U128) SaturatingNeg() U128 {
	return zeroU128
}

// WrappingAdd returns u + n reduced modulo 2^128.
func (u U128) WrappingAdd(n U128) U128 { return u.Add(n) }

// WrappingSub returns u - n reduced modulo 2^128.
func (u U128) WrappingSub(n U128) U128 { return u.Sub(n) }

// WrappingMul returns u * n reduced modulo 2^128.
func (u U128) WrappingMul(n U128) U128 { return u.Mul(n) }

// WrappingNeg returns 2^128 - u for nonzero u, zero otherwise.
func (u U128) WrappingNeg() U128 { return zeroU128.Sub(u) }
