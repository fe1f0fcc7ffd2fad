package nonzero

import (
	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer that is known to not equal zero.
//
// The wrapped uint256.Int is stored by value, so copies of a U256 never share storage. The zero value of U256 is not
// valid.
type U256 struct {
	value uint256.Int
}

// NewU256 returns a U256 wrapping a copy of the given value and true, or false if the value is nil or zero.
func NewU256(value *uint256.Int) (U256, bool) {
	if value == nil || value.IsZero() {
		return U256{}, false
	}

	return U256{value: *value}, true
}

// NewU256Unchecked returns a U256 wrapping a copy of the given value without checking it.
//
// The caller must guarantee that value is neither nil nor zero.
func NewU256Unchecked(value *uint256.Int) U256 {
	return U256{value: *value}
}

// MustU256 returns a U256 wrapping the given value and panics if the value is nil or zero.
func MustU256(value *uint256.Int) U256 {
	nonZero, ok := NewU256(value)
	if !ok {
		panicf(ErrZero, "MustU256(%v)", value)
	}

	return nonZero
}

// OneU256 returns the multiplicative identity of the 256-bit domain.
func OneU256() U256 {
	return U256{value: *uint256.NewInt(1)}
}

// Get returns a copy of the wrapped value.
func (n U256) Get() *uint256.Int {
	value := n.value

	return &value
}

// Set replaces the wrapped value with a copy of the given value if it is not nil or zero and returns true.
func (n *U256) Set(value *uint256.Int) bool {
	if value == nil || value.IsZero() {
		return false
	}

	n.value = *value

	return true
}

// SetUnchecked replaces the wrapped value without checking it.
//
// The caller must guarantee that value is neither nil nor zero.
func (n *U256) SetUnchecked(value *uint256.Int) {
	n.value = *value
}

// Replace sets the wrapped value and returns the previous one. If the new value is nil or zero, nothing is changed and
// false is returned.
func (n *U256) Replace(value *uint256.Int) (previous *uint256.Int, ok bool) {
	previous = n.Get()
	if !n.Set(value) {
		return nil, false
	}

	return previous, true
}

// Swap exchanges the wrapped values of both instances.
func (n *U256) Swap(other *U256) {
	n.value, other.value = other.value, n.value
}

// Map applies f to a copy of the wrapped value and returns the result if it is not zero.
func (n U256) Map(f func(*uint256.Int) *uint256.Int) (U256, bool) {
	return NewU256(f(n.Get()))
}

// MapUnchecked applies f to a copy of the wrapped value and wraps the result without checking it.
//
// The caller must guarantee that f never returns nil or zero.
func (n U256) MapUnchecked(f func(*uint256.Int) *uint256.Int) U256 {
	return NewU256Unchecked(f(n.Get()))
}

// CheckedAdd returns n + other, or false if the sum does not fit into 256 bits.
func (n U256) CheckedAdd(other U256) (U256, bool) {
	var sum uint256.Int
	if _, overflow := sum.AddOverflow(&n.value, &other.value); overflow {
		return U256{}, false
	}

	return U256{value: sum}, true
}

// CheckedSub returns n - other, or false if n is not greater than other.
func (n U256) CheckedSub(other U256) (U256, bool) {
	if n.value.Cmp(&other.value) <= 0 {
		return U256{}, false
	}

	var difference uint256.Int
	difference.Sub(&n.value, &other.value)

	return U256{value: difference}, true
}

// CheckedMul returns n * other, or false if the product does not fit into 256 bits.
func (n U256) CheckedMul(other U256) (U256, bool) {
	var product uint256.Int
	if _, overflow := product.MulOverflow(&n.value, &other.value); overflow {
		return U256{}, false
	}

	return U256{value: product}, true
}

// CheckedDiv returns the truncated quotient n / other, or false if n is less than other.
func (n U256) CheckedDiv(other U256) (U256, bool) {
	if n.value.Cmp(&other.value) < 0 {
		return U256{}, false
	}

	var quotient uint256.Int
	quotient.Div(&n.value, &other.value)

	return U256{value: quotient}, true
}

// Add returns n + other. It panics if the sum does not fit into 256 bits.
func (n U256) Add(other U256) U256 {
	sum, ok := n.CheckedAdd(other)
	if !ok {
		panicf(ErrOverflow, "%s + %s", n, other)
	}

	return sum
}

// Sub returns n - other. It panics if n is not greater than other.
func (n U256) Sub(other U256) U256 {
	difference, ok := n.CheckedSub(other)
	if !ok {
		panicf(ErrSubtractionUnderflow, "%s - %s", n, other)
	}

	return difference
}

// Mul returns n * other. It panics if the product does not fit into 256 bits.
func (n U256) Mul(other U256) U256 {
	product, ok := n.CheckedMul(other)
	if !ok {
		panicf(ErrOverflow, "%s * %s", n, other)
	}

	return product
}

// Div returns the truncated quotient n / other. It panics if n is less than other.
func (n U256) Div(other U256) U256 {
	quotient, ok := n.CheckedDiv(other)
	if !ok {
		panicf(ErrDivisionTruncatesToZero, "%s / %s", n, other)
	}

	return quotient
}

// AddAssign sets n to n + other.
func (n *U256) AddAssign(other U256) {
	*n = n.Add(other)
}

// SubAssign sets n to n - other.
func (n *U256) SubAssign(other U256) {
	*n = n.Sub(other)
}

// MulAssign sets n to n * other.
func (n *U256) MulAssign(other U256) {
	*n = n.Mul(other)
}

// DivAssign sets n to n / other.
func (n *U256) DivAssign(other U256) {
	*n = n.Div(other)
}

// Increment returns n + 1. It panics if n is the largest 256-bit value.
func (n U256) Increment() U256 {
	return n.Add(OneU256())
}

// Compare returns -1 if n is smaller than other, 0 if both are equal and 1 if n is bigger.
func (n U256) Compare(other U256) int {
	return n.value.Cmp(&other.value)
}

// Equal returns true if both instances wrap the same value.
func (n U256) Equal(other U256) bool {
	return n.value == other.value
}

// Less returns true if n is smaller than other.
func (n U256) Less(other U256) bool {
	return n.value.Lt(&other.value)
}

// Greater returns true if n is bigger than other.
func (n U256) Greater(other U256) bool {
	return n.value.Gt(&other.value)
}

// IsEven returns true if the wrapped value is divisible by two.
func (n U256) IsEven() bool {
	return n.value[0]&1 == 0
}

// IsOdd returns true if the wrapped value is not divisible by two.
func (n U256) IsOdd() bool {
	return n.value[0]&1 == 1
}

// TrailingZeros returns the number of trailing zero bits of the wrapped value.
func (n U256) TrailingZeros() int {
	return limbsTrailingZeros(n.value[:]...)
}

// LeadingZeros returns the number of leading zero bits of the wrapped value within 256 bits.
func (n U256) LeadingZeros() int {
	return limbsLeadingZeros(n.value[:]...)
}

// TrailingOnes returns the number of trailing one bits of the wrapped value.
func (n U256) TrailingOnes() int {
	return limbsTrailingOnes(n.value[:]...)
}

// LeadingOnes returns the number of leading one bits of the wrapped value within 256 bits.
func (n U256) LeadingOnes() int {
	return limbsLeadingOnes(n.value[:]...)
}

// BitLen returns the minimum number of bits required to represent the wrapped value.
func (n U256) BitLen() int {
	return n.value.BitLen()
}

// WithoutTrailingZeros strips all trailing zero bits, which yields the largest odd factor of the wrapped value.
func (n U256) WithoutTrailingZeros() U256 {
	var odd uint256.Int
	odd.Rsh(&n.value, uint(n.TrailingZeros()))

	return U256{value: odd}
}

// Big widens n into the arbitrary-precision domain.
func (n U256) Big() Big {
	return Big{value: n.value.ToBig()}
}

// String returns the decimal representation of the wrapped value.
func (n U256) String() string {
	return n.value.ToBig().String()
}

// ParseU256 parses a U256 from its textual representation (see Parse for the accepted formats).
func ParseU256(text string) (U256, error) {
	value, err := parseBig(text, 256)
	if err != nil {
		return U256{}, err
	}

	converted, _ := uint256.FromBig(value)

	return U256{value: *converted}, nil
}
