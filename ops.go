package arith

// CheckedOps describes the fallible operator set over a value type. The
// built-in integer types get the same capability through the generic
// Checked* functions; U128 and I128 implement it as methods.
type CheckedOps[T any] interface {
	CheckedAdd(n T) (T, error)
	CheckedSub(n T) (T, error)
	CheckedMul(n T) (T, error)
	CheckedDiv(n T) (T, error)
	CheckedRem(n T) (T, error)
	CheckedNeg() (T, error)
}

// SaturatingOps describes the clamp-on-overflow operator set over a value
// type.
type SaturatingOps[T any] interface {
	SaturatingAdd(n T) T
	SaturatingSub(n T) T
	SaturatingMul(n T) T
	SaturatingNeg() T
}

// WrappingOps describes the modulo-2^W operator set over a value type.
type WrappingOps[T any] interface {
	WrappingAdd(n T) T
	WrappingSub(n T) T
	WrappingMul(n T) T
	WrappingNeg() T
}

var (
	_ CheckedOps[U128]    = U128{}
	_ SaturatingOps[U128] = U128{}
	_ WrappingOps[U128]   = U128{}

	_ CheckedOps[I128]    = I128{}
	_ SaturatingOps[I128] = I128{}
	_ WrappingOps[I128]   = I128{}
)
