package nonzero

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/iotaledger/hive.go/constraints"
)

// region NonZero //////////////////////////////////////////////////////////////////////////////////////////////////////

// NonZero is an unsigned integer of a fixed-width domain (uint8, uint16, uint32, uint64, uint or uintptr) that is known
// to not equal zero.
//
// The zero value of NonZero is not valid. Instances have to be created through New, Must, One or NewUnchecked.
type NonZero[T constraints.Unsigned] struct {
	value T
}

// New returns a NonZero wrapping the given value and true, or false if the value is zero.
func New[T constraints.Unsigned](value T) (NonZero[T], bool) {
	if value == 0 {
		return NonZero[T]{}, false
	}

	return NonZero[T]{value: value}, true
}

// NewUnchecked returns a NonZero wrapping the given value without checking it.
//
// The caller must guarantee that value is not zero. Passing zero produces an instance that breaks the guarantee of the
// type and the results of all of its methods are undefined.
func NewUnchecked[T constraints.Unsigned](value T) NonZero[T] {
	return NonZero[T]{value: value}
}

// Must returns a NonZero wrapping the given value and panics if the value is zero.
func Must[T constraints.Unsigned](value T) NonZero[T] {
	nonZero, ok := New(value)
	if !ok {
		panicf(ErrZero, "Must(%d)", value)
	}

	return nonZero
}

// One returns the multiplicative identity of the domain.
func One[T constraints.Unsigned]() NonZero[T] {
	return NonZero[T]{value: 1}
}

// Get returns the wrapped value.
func (n NonZero[T]) Get() T {
	return n.value
}

// Set replaces the wrapped value if the given value is not zero and returns true. If the value is zero, the receiver
// stays unchanged and false is returned.
func (n *NonZero[T]) Set(value T) bool {
	if value == 0 {
		return false
	}

	n.value = value

	return true
}

// SetUnchecked replaces the wrapped value without checking it.
//
// The caller must guarantee that value is not zero.
func (n *NonZero[T]) SetUnchecked(value T) {
	n.value = value
}

// Replace sets the wrapped value and returns the previous one. If the new value is zero, nothing is changed and false
// is returned.
func (n *NonZero[T]) Replace(value T) (previous T, ok bool) {
	previous = n.value
	if !n.Set(value) {
		return 0, false
	}

	return previous, true
}

// Swap exchanges the wrapped values of both instances.
func (n *NonZero[T]) Swap(other *NonZero[T]) {
	n.value, other.value = other.value, n.value
}

// Map applies f to the wrapped value and returns the result if it is not zero.
func (n NonZero[T]) Map(f func(T) T) (NonZero[T], bool) {
	return New(f(n.value))
}

// MapUnchecked applies f to the wrapped value and wraps the result without checking it.
//
// The caller must guarantee that f never returns zero.
func (n NonZero[T]) MapUnchecked(f func(T) T) NonZero[T] {
	return NewUnchecked(f(n.value))
}

// CheckedAdd returns n + other, or false if the sum does not fit into T.
func (n NonZero[T]) CheckedAdd(other NonZero[T]) (NonZero[T], bool) {
	sum := n.value + other.value
	if sum < n.value {
		return NonZero[T]{}, false
	}

	return NonZero[T]{value: sum}, true
}

// CheckedSub returns n - other, or false if n is not greater than other.
func (n NonZero[T]) CheckedSub(other NonZero[T]) (NonZero[T], bool) {
	if n.value <= other.value {
		return NonZero[T]{}, false
	}

	return NonZero[T]{value: n.value - other.value}, true
}

// CheckedMul returns n * other, or false if the product does not fit into T.
func (n NonZero[T]) CheckedMul(other NonZero[T]) (NonZero[T], bool) {
	product := n.value * other.value
	if product/other.value != n.value {
		return NonZero[T]{}, false
	}

	return NonZero[T]{value: product}, true
}

// CheckedDiv returns the truncated quotient n / other, or false if n is less than other.
func (n NonZero[T]) CheckedDiv(other NonZero[T]) (NonZero[T], bool) {
	if n.value < other.value {
		return NonZero[T]{}, false
	}

	return NonZero[T]{value: n.value / other.value}, true
}

// Add returns n + other. It panics if the sum does not fit into T.
func (n NonZero[T]) Add(other NonZero[T]) NonZero[T] {
	sum, ok := n.CheckedAdd(other)
	if !ok {
		panicf(ErrOverflow, "%d + %d", n.value, other.value)
	}

	return sum
}

// Sub returns n - other. It panics if n is not greater than other.
func (n NonZero[T]) Sub(other NonZero[T]) NonZero[T] {
	difference, ok := n.CheckedSub(other)
	if !ok {
		panicf(ErrSubtractionUnderflow, "%d - %d", n.value, other.value)
	}

	return difference
}

// Mul returns n * other. It panics if the product does not fit into T.
func (n NonZero[T]) Mul(other NonZero[T]) NonZero[T] {
	product, ok := n.CheckedMul(other)
	if !ok {
		panicf(ErrOverflow, "%d * %d", n.value, other.value)
	}

	return product
}

// Div returns the truncated quotient n / other. It panics if n is less than other.
func (n NonZero[T]) Div(other NonZero[T]) NonZero[T] {
	quotient, ok := n.CheckedDiv(other)
	if !ok {
		panicf(ErrDivisionTruncatesToZero, "%d / %d", n.value, other.value)
	}

	return quotient
}

// AddAssign sets n to n + other.
func (n *NonZero[T]) AddAssign(other NonZero[T]) {
	*n = n.Add(other)
}

// SubAssign sets n to n - other.
func (n *NonZero[T]) SubAssign(other NonZero[T]) {
	*n = n.Sub(other)
}

// MulAssign sets n to n * other.
func (n *NonZero[T]) MulAssign(other NonZero[T]) {
	*n = n.Mul(other)
}

// DivAssign sets n to n / other.
func (n *NonZero[T]) DivAssign(other NonZero[T]) {
	*n = n.Div(other)
}

// Increment returns n + 1. It panics if n is the largest value of T.
func (n NonZero[T]) Increment() NonZero[T] {
	return n.Add(One[T]())
}

// Compare returns -1 if n is smaller than other, 0 if both are equal and 1 if n is bigger.
func (n NonZero[T]) Compare(other NonZero[T]) int {
	return cmp.Compare(n.value, other.value)
}

// Equal returns true if both instances wrap the same value.
func (n NonZero[T]) Equal(other NonZero[T]) bool {
	return n.value == other.value
}

// Less returns true if n is smaller than other.
func (n NonZero[T]) Less(other NonZero[T]) bool {
	return n.value < other.value
}

// Greater returns true if n is bigger than other.
func (n NonZero[T]) Greater(other NonZero[T]) bool {
	return n.value > other.value
}

// String returns the decimal representation of the wrapped value.
func (n NonZero[T]) String() string {
	return strconv.FormatUint(uint64(n.value), 10)
}

// Format formats the wrapped value as if it was passed to fmt directly.
func (n NonZero[T]) Format(state fmt.State, verb rune) {
	if verb == 's' {
		verb = 'd'
	}

	fmt.Fprintf(state, fmt.FormatString(state, verb), n.value)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
