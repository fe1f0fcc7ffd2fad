package nonzero

import (
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// U128 is a 128-bit unsigned integer that is known to not equal zero.
//
// The zero value of U128 is not valid. Instances have to be created through NewU128, MustU128, OneU128 or
// NewU128Unchecked.
type U128 struct {
	value uint128.Uint128
}

// NewU128 returns a U128 wrapping the given value and true, or false if the value is zero.
func NewU128(value uint128.Uint128) (U128, bool) {
	if value.IsZero() {
		return U128{}, false
	}

	return U128{value: value}, true
}

// NewU128Unchecked returns a U128 wrapping the given value without checking it.
//
// The caller must guarantee that value is not zero.
func NewU128Unchecked(value uint128.Uint128) U128 {
	return U128{value: value}
}

// MustU128 returns a U128 wrapping the given value and panics if the value is zero.
func MustU128(value uint128.Uint128) U128 {
	nonZero, ok := NewU128(value)
	if !ok {
		panicf(ErrZero, "MustU128(%s)", value)
	}

	return nonZero
}

// OneU128 returns the multiplicative identity of the 128-bit domain.
func OneU128() U128 {
	return U128{value: uint128.From64(1)}
}

// Get returns the wrapped value.
func (n U128) Get() uint128.Uint128 {
	return n.value
}

// Set replaces the wrapped value if the given value is not zero and returns true.
func (n *U128) Set(value uint128.Uint128) bool {
	if value.IsZero() {
		return false
	}

	n.value = value

	return true
}

// SetUnchecked replaces the wrapped value without checking it.
//
// The caller must guarantee that value is not zero.
func (n *U128) SetUnchecked(value uint128.Uint128) {
	n.value = value
}

// Replace sets the wrapped value and returns the previous one. If the new value is zero, nothing is changed and false
// is returned.
func (n *U128) Replace(value uint128.Uint128) (previous uint128.Uint128, ok bool) {
	previous = n.value
	if !n.Set(value) {
		return uint128.Zero, false
	}

	return previous, true
}

// Swap exchanges the wrapped values of both instances.
func (n *U128) Swap(other *U128) {
	n.value, other.value = other.value, n.value
}

// Map applies f to the wrapped value and returns the result if it is not zero.
func (n U128) Map(f func(uint128.Uint128) uint128.Uint128) (U128, bool) {
	return NewU128(f(n.value))
}

// MapUnchecked applies f to the wrapped value and wraps the result without checking it.
//
// The caller must guarantee that f never returns zero.
func (n U128) MapUnchecked(f func(uint128.Uint128) uint128.Uint128) U128 {
	return NewU128Unchecked(f(n.value))
}

// CheckedAdd returns n + other, or false if the sum does not fit into 128 bits.
func (n U128) CheckedAdd(other U128) (U128, bool) {
	sum := n.value.AddWrap(other.value)
	if sum.Cmp(n.value) < 0 {
		return U128{}, false
	}

	return U128{value: sum}, true
}

// CheckedSub returns n - other, or false if n is not greater than other.
func (n U128) CheckedSub(other U128) (U128, bool) {
	if n.value.Cmp(other.value) <= 0 {
		return U128{}, false
	}

	return U128{value: n.value.Sub(other.value)}, true
}

// CheckedMul returns n * other, or false if the product does not fit into 128 bits.
func (n U128) CheckedMul(other U128) (U128, bool) {
	product := n.value.MulWrap(other.value)
	if !product.Div(other.value).Equals(n.value) {
		return U128{}, false
	}

	return U128{value: product}, true
}

// CheckedDiv returns the truncated quotient n / other, or false if n is less than other.
func (n U128) CheckedDiv(other U128) (U128, bool) {
	if n.value.Cmp(other.value) < 0 {
		return U128{}, false
	}

	return U128{value: n.value.Div(other.value)}, true
}

// Add returns n + other. It panics if the sum does not fit into 128 bits.
func (n U128) Add(other U128) U128 {
	sum, ok := n.CheckedAdd(other)
	if !ok {
		panicf(ErrOverflow, "%s + %s", n, other)
	}

	return sum
}

// Sub returns n - other. It panics if n is not greater than other.
func (n U128) Sub(other U128) U128 {
	difference, ok := n.CheckedSub(other)
	if !ok {
		panicf(ErrSubtractionUnderflow, "%s - %s", n, other)
	}

	return difference
}

// Mul returns n * other. It panics if the product does not fit into 128 bits.
func (n U128) Mul(other U128) U128 {
	product, ok := n.CheckedMul(other)
	if !ok {
		panicf(ErrOverflow, "%s * %s", n, other)
	}

	return product
}

// Div returns the truncated quotient n / other. It panics if n is less than other.
func (n U128) Div(other U128) U128 {
	quotient, ok := n.CheckedDiv(other)
	if !ok {
		panicf(ErrDivisionTruncatesToZero, "%s / %s", n, other)
	}

	return quotient
}

// AddAssign sets n to n + other.
func (n *U128) AddAssign(other U128) {
	*n = n.Add(other)
}

// SubAssign sets n to n - other.
func (n *U128) SubAssign(other U128) {
	*n = n.Sub(other)
}

// MulAssign sets n to n * other.
func (n *U128) MulAssign(other U128) {
	*n = n.Mul(other)
}

// DivAssign sets n to n / other.
func (n *U128) DivAssign(other U128) {
	*n = n.Div(other)
}

// Increment returns n + 1. It panics if n is the largest 128-bit value.
func (n U128) Increment() U128 {
	return n.Add(OneU128())
}

// Compare returns -1 if n is smaller than other, 0 if both are equal and 1 if n is bigger.
func (n U128) Compare(other U128) int {
	return n.value.Cmp(other.value)
}

// Equal returns true if both instances wrap the same value.
func (n U128) Equal(other U128) bool {
	return n.value.Equals(other.value)
}

// Less returns true if n is smaller than other.
func (n U128) Less(other U128) bool {
	return n.value.Cmp(other.value) < 0
}

// Greater returns true if n is bigger than other.
func (n U128) Greater(other U128) bool {
	return n.value.Cmp(other.value) > 0
}

// IsEven returns true if the wrapped value is divisible by two.
func (n U128) IsEven() bool {
	return n.value.Lo&1 == 0
}

// IsOdd returns true if the wrapped value is not divisible by two.
func (n U128) IsOdd() bool {
	return n.value.Lo&1 == 1
}

// TrailingZeros returns the number of trailing zero bits of the wrapped value.
func (n U128) TrailingZeros() int {
	return limbsTrailingZeros(n.value.Lo, n.value.Hi)
}

// LeadingZeros returns the number of leading zero bits of the wrapped value within 128 bits.
func (n U128) LeadingZeros() int {
	return limbsLeadingZeros(n.value.Lo, n.value.Hi)
}

// TrailingOnes returns the number of trailing one bits of the wrapped value.
func (n U128) TrailingOnes() int {
	return limbsTrailingOnes(n.value.Lo, n.value.Hi)
}

// LeadingOnes returns the number of leading one bits of the wrapped value within 128 bits.
func (n U128) LeadingOnes() int {
	return limbsLeadingOnes(n.value.Lo, n.value.Hi)
}

// BitLen returns the minimum number of bits required to represent the wrapped value.
func (n U128) BitLen() int {
	return 128 - n.LeadingZeros()
}

// WithoutTrailingZeros strips all trailing zero bits, which yields the largest odd factor of the wrapped value.
func (n U128) WithoutTrailingZeros() U128 {
	return U128{value: n.value.Rsh(uint(n.TrailingZeros()))}
}

// U256 widens n into the 256-bit domain.
func (n U128) U256() U256 {
	return U256{value: uint256.Int{n.value.Lo, n.value.Hi, 0, 0}}
}

// Big widens n into the arbitrary-precision domain.
func (n U128) Big() Big {
	return Big{value: n.value.Big()}
}

// String returns the decimal representation of the wrapped value.
func (n U128) String() string {
	return n.value.String()
}

// ParseU128 parses a U128 from its textual representation (see Parse for the accepted formats).
func ParseU128(text string) (U128, error) {
	value, err := parseBig(text, 128)
	if err != nil {
		return U128{}, err
	}

	return U128{value: uint128.FromBig(value)}, nil
}
