package arith

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"golang.org/x/exp/constraints"
)

func testCheckedOp[T constraints.Integer](t *testing.T, op func(a, b T) (T, error), a, b, expect T, expectErr error) {
	t.Helper()
	tt := assert.WrapTB(t)
	v, err := op(a, b)
	tt.MustEqual(expectErr, err, "%v op %v", a, b)
	tt.MustEqual(expect, v, "%v op %v", a, b)
}

func TestCheckedAddInt8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect int8
		err          error
	}{
		{100, 27, 127, nil},
		{100, 28, 0, RangeOverflow},
		{-100, -28, -128, nil},
		{-100, -29, 0, RangeUnderflow},
		{-128, 127, -1, nil},
		{127, -128, -1, nil},
		{0, 0, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedAdd[int8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedAddUint8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect uint8
		err          error
	}{
		{200, 55, 255, nil},
		{200, 56, 0, Overflow{}},
		{255, 255, 0, Overflow{}},
		{0, 0, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d+%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedAdd[uint8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedAddWiderTypes(t *testing.T) {
	testCheckedOp[int64](t, CheckedAdd[int64], math.MaxInt64, 1, 0, RangeOverflow)
	testCheckedOp[int64](t, CheckedAdd[int64], math.MinInt64, -1, 0, RangeUnderflow)
	testCheckedOp[int64](t, CheckedAdd[int64], math.MaxInt64, 0, math.MaxInt64, nil)
	testCheckedOp[int16](t, CheckedAdd[int16], math.MaxInt16, 1, 0, RangeOverflow)
	testCheckedOp[int32](t, CheckedAdd[int32], math.MinInt32, -1, 0, RangeUnderflow)
	testCheckedOp[uint64](t, CheckedAdd[uint64], math.MaxUint64, 1, 0, Overflow{})
	testCheckedOp[uint](t, CheckedAdd[uint], math.MaxUint, 1, 0, Overflow{})
	testCheckedOp[int](t, CheckedAdd[int], math.MaxInt, 1, 0, RangeOverflow)
}

func TestCheckedSubInt8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect int8
		err          error
	}{
		{0, -127, 127, nil},
		{0, -128, 0, RangeOverflow},
		{-1, 127, -128, nil},
		{-2, 127, 0, RangeUnderflow},
		{100, 100, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedSub[int8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedSubUint8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect uint8
		err          error
	}{
		{100, 100, 0, nil},
		{0, 1, 0, Underflow{}},
		{1, 255, 0, Underflow{}},
		{255, 255, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d-%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedSub[uint8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedMulInt8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect int8
		err          error
	}{
		{15, 8, 120, nil},
		{16, 8, 0, RangeOverflow},
		{16, -8, -128, nil},
		{43, -3, 0, RangeUnderflow},
		{-43, 3, 0, RangeUnderflow},
		{-127, -1, 127, nil},
		{-128, -1, 0, RangeOverflow},
		{-1, -128, 0, RangeOverflow},
		{-128, 1, -128, nil},
		{-64, 2, -128, nil},
		{-65, 2, 0, RangeUnderflow},
		{0, -128, 0, nil},
		{-128, 0, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d*%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedMul[int8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedMulUint8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect uint8
		err          error
	}{
		{85, 3, 255, nil},
		{16, 16, 0, Overflow{}},
		{255, 1, 255, nil},
		{255, 0, 0, nil},
		{128, 2, 0, Overflow{}},
	} {
		t.Run(fmt.Sprintf("%d/%d*%d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedMul[uint8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedDivInt8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect int8
		err          error
	}{
		{100, 10, 10, nil},
		{100, 0, 0, ArithmeticUndefined},
		{-128, -1, 0, ArithmeticOverflow},
		{-128, 1, -128, nil},
		{-127, -1, 127, nil},
		{7, -2, -3, nil}, // truncated, not floored
		{-7, 2, -3, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d div %d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedDiv[int8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedDivUint8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect uint8
		err          error
	}{
		{100, 10, 10, nil},
		{100, 0, 0, Undefined{}},
		{255, 1, 255, nil},
		{0, 255, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d div %d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedDiv[uint8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedRemInt8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect int8
		err          error
	}{
		{99, 10, 9, nil},
		{99, -10, 9, nil},
		{-99, 10, -9, nil},
		{-99, -10, -9, nil},
		{-128, -1, 0, nil}, // division would overflow; the remainder is exact
		{99, 0, 0, Undefined{}},
		{127, -1, 0, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d rem %d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedRem[int8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedRemUint8(t *testing.T) {
	for idx, tc := range []struct {
		a, b, expect uint8
		err          error
	}{
		{99, 10, 9, nil},
		{99, 0, 0, Undefined{}},
		{10, 255, 10, nil},
	} {
		t.Run(fmt.Sprintf("%d/%d rem %d", idx, tc.a, tc.b), func(t *testing.T) {
			testCheckedOp(t, CheckedRem[uint8], tc.a, tc.b, tc.expect, tc.err)
		})
	}
}

func TestCheckedNeg(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := CheckedNeg[int8](127)
	tt.MustOK(err)
	tt.MustEqual(int8(-127), v)

	v, err = CheckedNeg[int8](-128)
	tt.MustEqual(error(Overflow{}), err)
	tt.MustEqual(int8(0), v)

	v, err = CheckedNeg[int8](0)
	tt.MustOK(err)
	tt.MustEqual(int8(0), v)

	u, err := CheckedNeg[uint8](0)
	tt.MustOK(err)
	tt.MustEqual(uint8(0), u)

	u, err = CheckedNeg[uint8](1)
	tt.MustEqual(error(Underflow{}), err)
	tt.MustEqual(uint8(0), u)

	i64, err := CheckedNeg[int64](math.MinInt64)
	tt.MustEqual(error(Overflow{}), err)
	tt.MustEqual(int64(0), i64)
}

// The dynamic error type per operator is part of the contract: signed
// add/sub/mul fail with RangeError, division with ArithmeticError, the rest
// with their single narrow kind.
func TestCheckedErrorTypes(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := CheckedAdd[int8](127, 1)
	_, ok := err.(RangeError)
	tt.MustAssert(ok, "signed add: %T", err)

	_, err = CheckedAdd[uint8](255, 1)
	_, ok = err.(Overflow)
	tt.MustAssert(ok, "unsigned add: %T", err)

	_, err = CheckedSub[uint8](0, 1)
	_, ok = err.(Underflow)
	tt.MustAssert(ok, "unsigned sub: %T", err)

	_, err = CheckedDiv[int8](1, 0)
	_, ok = err.(ArithmeticError)
	tt.MustAssert(ok, "signed div: %T", err)

	_, err = CheckedDiv[uint8](1, 0)
	_, ok = err.(Undefined)
	tt.MustAssert(ok, "unsigned div: %T", err)

	_, err = CheckedRem[int8](1, 0)
	_, ok = err.(Undefined)
	tt.MustAssert(ok, "rem: %T", err)

	_, err = CheckedNeg[int8](-128)
	_, ok = err.(Overflow)
	tt.MustAssert(ok, "signed neg: %T", err)

	_, err = CheckedNeg[uint8](1)
	_, ok = err.(Underflow)
	tt.MustAssert(ok, "unsigned neg: %T", err)
}

func TestBounds(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(int8(math.MinInt8), minOf[int8]())
	tt.MustEqual(int8(math.MaxInt8), maxOf[int8]())
	tt.MustEqual(int16(math.MinInt16), minOf[int16]())
	tt.MustEqual(int32(math.MaxInt32), maxOf[int32]())
	tt.MustEqual(int64(math.MinInt64), minOf[int64]())
	tt.MustEqual(int64(math.MaxInt64), maxOf[int64]())
	tt.MustEqual(int(math.MinInt), minOf[int]())
	tt.MustEqual(uint8(0), minOf[uint8]())
	tt.MustEqual(uint8(math.MaxUint8), maxOf[uint8]())
	tt.MustEqual(uint64(math.MaxUint64), maxOf[uint64]())
	tt.MustEqual(uint(math.MaxUint), maxOf[uint]())
}
