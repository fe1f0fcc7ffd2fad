package nonzero

import (
	"math/bits"

	"github.com/iotaledger/hive.go/constraints"
)

// bitWidth returns the number of bits of T.
func bitWidth[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}

// IsEven returns true if the wrapped value is divisible by two.
func (n NonZero[T]) IsEven() bool {
	return n.value&1 == 0
}

// IsOdd returns true if the wrapped value is not divisible by two.
func (n NonZero[T]) IsOdd() bool {
	return n.value&1 == 1
}

// TrailingZeros returns the number of trailing zero bits of the wrapped value.
func (n NonZero[T]) TrailingZeros() int {
	return bits.TrailingZeros64(uint64(n.value))
}

// LeadingZeros returns the number of leading zero bits of the wrapped value within the width of T.
func (n NonZero[T]) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(n.value)) - (64 - bitWidth[T]())
}

// TrailingOnes returns the number of trailing one bits of the wrapped value.
func (n NonZero[T]) TrailingOnes() int {
	return bits.TrailingZeros64(^uint64(n.value))
}

// LeadingOnes returns the number of leading one bits of the wrapped value within the width of T.
func (n NonZero[T]) LeadingOnes() int {
	return bits.LeadingZeros64(uint64(^n.value)) - (64 - bitWidth[T]())
}

// BitLen returns the minimum number of bits required to represent the wrapped value.
func (n NonZero[T]) BitLen() int {
	return bits.Len64(uint64(n.value))
}

// WithoutTrailingZeros strips all trailing zero bits, which yields the largest odd factor of the wrapped value.
func (n NonZero[T]) WithoutTrailingZeros() NonZero[T] {
	return NonZero[T]{value: n.value >> n.TrailingZeros()}
}

// region limbs ////////////////////////////////////////////////////////////////////////////////////////////////////////

// The helpers below operate on little-endian 64-bit limbs (least significant limb first) and back the wide domains.

func limbsTrailingZeros(limbs ...uint64) int {
	for i, limb := range limbs {
		if limb != 0 {
			return i*64 + bits.TrailingZeros64(limb)
		}
	}

	return len(limbs) * 64
}

func limbsLeadingZeros(limbs ...uint64) int {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return (len(limbs)-1-i)*64 + bits.LeadingZeros64(limbs[i])
		}
	}

	return len(limbs) * 64
}

func limbsTrailingOnes(limbs ...uint64) (count int) {
	for _, limb := range limbs {
		ones := bits.TrailingZeros64(^limb)
		count += ones

		if ones < 64 {
			break
		}
	}

	return count
}

func limbsLeadingOnes(limbs ...uint64) (count int) {
	for i := len(limbs) - 1; i >= 0; i-- {
		ones := bits.LeadingZeros64(^limbs[i])
		count += ones

		if ones < 64 {
			break
		}
	}

	return count
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
