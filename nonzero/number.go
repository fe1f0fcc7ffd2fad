package nonzero

import (
	"fmt"
)

// Number is the method set that all nonzero integer kinds of this package have in common. It allows code to be
// written once for every domain.
type Number[N any] interface {
	fmt.Stringer

	Compare(other N) int
	Equal(other N) bool
	Less(other N) bool
	Greater(other N) bool

	Add(other N) N
	Sub(other N) N
	Mul(other N) N
	Div(other N) N
	CheckedAdd(other N) (N, bool)
	CheckedSub(other N) (N, bool)
	CheckedMul(other N) (N, bool)
	CheckedDiv(other N) (N, bool)
	Increment() N

	IsEven() bool
	IsOdd() bool
	TrailingZeros() int
	TrailingOnes() int
	BitLen() int
	WithoutTrailingZeros() N

	Big() Big
}

// FixedWidth is implemented by the kinds that have a natural bit width.
type FixedWidth interface {
	LeadingZeros() int
	LeadingOnes() int
}

var (
	_ Number[NonZero[uint8]]   = NonZero[uint8]{}
	_ Number[NonZero[uint16]]  = NonZero[uint16]{}
	_ Number[NonZero[uint32]]  = NonZero[uint32]{}
	_ Number[NonZero[uint64]]  = NonZero[uint64]{}
	_ Number[NonZero[uint]]    = NonZero[uint]{}
	_ Number[NonZero[uintptr]] = NonZero[uintptr]{}
	_ Number[U128]             = U128{}
	_ Number[U256]             = U256{}
	_ Number[Big]              = Big{}

	_ FixedWidth = NonZero[uint64]{}
	_ FixedWidth = U128{}
	_ FixedWidth = U256{}
)
