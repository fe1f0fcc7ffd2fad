package nonzero

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Big is an arbitrary-precision unsigned integer that is known to not equal zero.
//
// The wrapped big.Int is never mutated after construction: every operation, including the mutating ones, replaces it
// with a freshly allocated one. Copies of a Big can therefore share it safely. The zero value of Big is not valid.
type Big struct {
	value *big.Int
}

// NewBig returns a Big wrapping a copy of the given value and true, or false if the value is nil, zero or negative.
func NewBig(value *big.Int) (Big, bool) {
	if value == nil || value.Sign() <= 0 {
		return Big{}, false
	}

	return Big{value: new(big.Int).Set(value)}, true
}

// NewBigUnchecked returns a Big that takes ownership of the given value without checking or copying it.
//
// The caller must guarantee that value is positive and must not modify it afterwards.
func NewBigUnchecked(value *big.Int) Big {
	return Big{value: value}
}

// MustBig returns a Big wrapping the given value and panics if the value is nil, zero or negative.
func MustBig(value *big.Int) Big {
	nonZero, ok := NewBig(value)
	if !ok {
		panicf(ErrZero, "MustBig(%v)", value)
	}

	return nonZero
}

// BigFromUint64 returns a Big wrapping the given value and true, or false if the value is zero.
func BigFromUint64(value uint64) (Big, bool) {
	if value == 0 {
		return Big{}, false
	}

	return Big{value: new(big.Int).SetUint64(value)}, true
}

// OneBig returns the multiplicative identity of the arbitrary-precision domain.
func OneBig() Big {
	return Big{value: big.NewInt(1)}
}

// Get returns a copy of the wrapped value.
func (n Big) Get() *big.Int {
	return new(big.Int).Set(n.value)
}

// Set replaces the wrapped value with a copy of the given value if it is positive and returns true.
func (n *Big) Set(value *big.Int) bool {
	replacement, ok := NewBig(value)
	if !ok {
		return false
	}

	*n = replacement

	return true
}

// SetUnchecked makes n take ownership of the given value without checking or copying it.
//
// The caller must guarantee that value is positive and must not modify it afterwards.
func (n *Big) SetUnchecked(value *big.Int) {
	n.value = value
}

// Replace sets the wrapped value and returns the previous one. If the new value is not positive, nothing is changed and
// false is returned.
func (n *Big) Replace(value *big.Int) (previous *big.Int, ok bool) {
	previous = n.Get()
	if !n.Set(value) {
		return nil, false
	}

	return previous, true
}

// Swap exchanges the wrapped values of both instances.
func (n *Big) Swap(other *Big) {
	n.value, other.value = other.value, n.value
}

// Map applies f to a copy of the wrapped value and returns the result if it is positive.
func (n Big) Map(f func(*big.Int) *big.Int) (Big, bool) {
	return NewBig(f(n.Get()))
}

// MapUnchecked applies f to a copy of the wrapped value and takes ownership of the result without checking it.
//
// The caller must guarantee that f returns a positive value.
func (n Big) MapUnchecked(f func(*big.Int) *big.Int) Big {
	return NewBigUnchecked(f(n.Get()))
}

// CheckedAdd returns n + other. Arbitrary-precision additions always succeed.
func (n Big) CheckedAdd(other Big) (Big, bool) {
	return n.Add(other), true
}

// CheckedSub returns n - other, or false if n is not greater than other.
func (n Big) CheckedSub(other Big) (Big, bool) {
	if n.value.Cmp(other.value) <= 0 {
		return Big{}, false
	}

	return Big{value: new(big.Int).Sub(n.value, other.value)}, true
}

// CheckedMul returns n * other. Arbitrary-precision multiplications always succeed.
func (n Big) CheckedMul(other Big) (Big, bool) {
	return n.Mul(other), true
}

// CheckedDiv returns the truncated quotient n / other, or false if n is less than other.
func (n Big) CheckedDiv(other Big) (Big, bool) {
	if n.value.Cmp(other.value) < 0 {
		return Big{}, false
	}

	return Big{value: new(big.Int).Quo(n.value, other.value)}, true
}

// Add returns n + other.
func (n Big) Add(other Big) Big {
	return Big{value: new(big.Int).Add(n.value, other.value)}
}

// Sub returns n - other. It panics if n is not greater than other.
func (n Big) Sub(other Big) Big {
	difference, ok := n.CheckedSub(other)
	if !ok {
		panicf(ErrSubtractionUnderflow, "%s - %s", n, other)
	}

	return difference
}

// Mul returns n * other.
func (n Big) Mul(other Big) Big {
	return Big{value: new(big.Int).Mul(n.value, other.value)}
}

// Div returns the truncated quotient n / other. It panics if n is less than other.
func (n Big) Div(other Big) Big {
	quotient, ok := n.CheckedDiv(other)
	if !ok {
		panicf(ErrDivisionTruncatesToZero, "%s / %s", n, other)
	}

	return quotient
}

// AddAssign sets n to n + other.
func (n *Big) AddAssign(other Big) {
	*n = n.Add(other)
}

// SubAssign sets n to n - other.
func (n *Big) SubAssign(other Big) {
	*n = n.Sub(other)
}

// MulAssign sets n to n * other.
func (n *Big) MulAssign(other Big) {
	*n = n.Mul(other)
}

// DivAssign sets n to n / other.
func (n *Big) DivAssign(other Big) {
	*n = n.Div(other)
}

// Increment returns n + 1.
func (n Big) Increment() Big {
	return Big{value: new(big.Int).Add(n.value, big.NewInt(1))}
}

// Compare returns -1 if n is smaller than other, 0 if both are equal and 1 if n is bigger.
func (n Big) Compare(other Big) int {
	return n.value.Cmp(other.value)
}

// Equal returns true if both instances wrap the same value.
func (n Big) Equal(other Big) bool {
	return n.value.Cmp(other.value) == 0
}

// Less returns true if n is smaller than other.
func (n Big) Less(other Big) bool {
	return n.value.Cmp(other.value) < 0
}

// Greater returns true if n is bigger than other.
func (n Big) Greater(other Big) bool {
	return n.value.Cmp(other.value) > 0
}

// IsEven returns true if the wrapped value is divisible by two.
func (n Big) IsEven() bool {
	return n.value.Bit(0) == 0
}

// IsOdd returns true if the wrapped value is not divisible by two.
func (n Big) IsOdd() bool {
	return n.value.Bit(0) == 1
}

// TrailingZeros returns the number of trailing zero bits of the wrapped value.
func (n Big) TrailingZeros() int {
	return int(n.value.TrailingZeroBits())
}

// TrailingOnes returns the number of trailing one bits of the wrapped value.
func (n Big) TrailingOnes() int {
	// the trailing ones of v are the trailing zeros of v+1
	return int(new(big.Int).Add(n.value, big.NewInt(1)).TrailingZeroBits())
}

// LeadingZeros returns the number of leading zero bits of the wrapped value within the given width. Arbitrary-precision
// integers have no natural width, so it has to be provided by the caller.
func (n Big) LeadingZeros(width int) (int, error) {
	bitLen := n.value.BitLen()
	if bitLen > width {
		return 0, errors.Wrapf(ErrWidthTooSmall, "%d bits needed, %d given", bitLen, width)
	}

	return width - bitLen, nil
}

// LeadingOnes returns the number of leading one bits of the wrapped value within the given width.
func (n Big) LeadingOnes(width int) (int, error) {
	bitLen := n.value.BitLen()
	if bitLen > width {
		return 0, errors.Wrapf(ErrWidthTooSmall, "%d bits needed, %d given", bitLen, width)
	}
	if bitLen < width {
		return 0, nil
	}

	// complement within the width: (2^width - 1) - v
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))

	return width - new(big.Int).Sub(mask, n.value).BitLen(), nil
}

// BitLen returns the minimum number of bits required to represent the wrapped value.
func (n Big) BitLen() int {
	return n.value.BitLen()
}

// WithoutTrailingZeros strips all trailing zero bits, which yields the largest odd factor of the wrapped value.
func (n Big) WithoutTrailingZeros() Big {
	return Big{value: new(big.Int).Rsh(n.value, n.value.TrailingZeroBits())}
}

// Big returns n itself, which allows Big to be used wherever a conversion into the arbitrary-precision domain is
// expected.
func (n Big) Big() Big {
	return n
}

// String returns the decimal representation of the wrapped value.
func (n Big) String() string {
	return n.value.String()
}

// Format formats the wrapped value as if it was passed to fmt directly.
func (n Big) Format(state fmt.State, verb rune) {
	n.value.Format(state, verb)
}

// ParseBig parses a Big from its textual representation (see Parse for the accepted formats).
func ParseBig(text string) (Big, error) {
	value, err := parseBig(text, 0)
	if err != nil {
		return Big{}, err
	}

	return Big{value: value}, nil
}
