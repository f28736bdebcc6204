/*
Package arith provides the integer arithmetic operators the standard library
leaves out: checked (fallible), saturating and wrapping add/sub/mul/neg, plus
checked div/rem, over every integer width including 128-bit.

All operators are pure functions over value types; nothing is mutated and no
shared state is allocated. The checked operators never panic: every failure
comes back as an error. Only the plain Quo/Rem/QuoRem methods panic on a zero
divisor, the same way the built-in / and % do.

For the built-in integer types the operators are generic functions:

	v, err := arith.CheckedAdd[int8](100, 28)   // 0, RangeOverflow
	v = arith.SaturatingAdd[int8](100, 28)      // 127
	v = arith.WrappingAdd[int8](100, 28)        // -128

The type set of constraints.Integer is the capability: a type either belongs
to it and gets every operator, or it does not. For the 128-bit types U128 and
I128 the same operators are methods, and the CheckedOps, SaturatingOps and
WrappingOps interfaces describe them:

	u1 := arith.U128From64(math.MaxUint64)
	v, err := u1.CheckedMul(u1)                 // U128{}, Overflow

Checked operators classify every failure:

	Overflow    "arithmetic overflow"
	Underflow   "arithmetic underflow"
	Undefined   "arithmetic result undefined"

RangeError unions overflow/underflow for operators that can fail in either
direction but are always defined (signed add/sub/mul); ArithmeticError unions
all three for division. Narrow kinds widen losslessly via Range() and
Arithmetic(); errors.Is matches a union value against its narrow kind:

	_, err := arith.CheckedDiv[int8](-128, -1)
	errors.Is(err, arith.Overflow{})            // true
*/
package arith
