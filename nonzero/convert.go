package nonzero

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/iotaledger/hive.go/constraints"
	"lukechampine.com/uint128"
)

// Widen converts a NonZero into a domain that is at least as wide. The conversion can not lose information and the
// result is therefore nonzero as well. It panics if To is narrower than From.
func Widen[To, From constraints.Unsigned](n NonZero[From]) NonZero[To] {
	if bitWidth[To]() < bitWidth[From]() {
		panicf(ErrNarrowing, "%d bits into %d bits", bitWidth[From](), bitWidth[To]())
	}

	return NonZero[To]{value: To(n.value)}
}

// Convert converts a NonZero into another fixed-width domain and returns false if the value does not fit.
func Convert[To, From constraints.Unsigned](n NonZero[From]) (NonZero[To], bool) {
	converted := To(n.value)
	if uint64(converted) != uint64(n.value) {
		return NonZero[To]{}, false
	}

	return NonZero[To]{value: converted}, true
}

// U128 widens n into the 128-bit domain.
func (n NonZero[T]) U128() U128 {
	return U128{value: uint128.From64(uint64(n.value))}
}

// U256 widens n into the 256-bit domain.
func (n NonZero[T]) U256() U256 {
	return U256{value: *uint256.NewInt(uint64(n.value))}
}

// Big widens n into the arbitrary-precision domain.
func (n NonZero[T]) Big() Big {
	return Big{value: new(big.Int).SetUint64(uint64(n.value))}
}
