package arith

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128     I128
	zeroU128     U128
	minusOneI128 = I128{hi: maxUint64, lo: maxUint64}

	// minI128AsAbsU128 is the magnitude of MinI128 as an unsigned value;
	// maxI128AsU128 is MaxI128's bit pattern reinterpreted.
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)

// RandSource is the portion of a random number generator needed to produce
// random 128-bit values. math/rand's *Rand satisfies it.
type RandSource interface {
	Uint64() uint64
}
