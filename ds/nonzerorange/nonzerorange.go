package nonzerorange

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
	"lukechampine.com/uint128"

	"github.com/Mearkatz/beetle-nonzero/nonzero"
)

// Steppable is the constraint for the elements of a Range. All nonzero integer kinds of the nonzero package satisfy
// it.
type Steppable[N any] interface {
	fmt.Stringer

	// Compare returns -1 if the receiver is smaller than other, 0 if both are equal and 1 if it is bigger.
	Compare(other N) int

	// Increment returns the successor of the receiver.
	Increment() N
}

// Range is a lazy, forward-only sequence of nonzero integers that is bounded by a start and a stop value.
//
// Every call to Next first increments the cursor (which starts at start) and then yields it, as long as the cursor is
// smaller than stop. The first emitted value is therefore start+1 and the last one is stop: a Range from 1 to 5 yields
// 2, 3, 4 and 5. A Range whose start is not smaller than its stop is empty. Once exhausted, a Range stays exhausted.
//
// A Range is not safe for concurrent use.
type Range[N Steppable[N]] struct {
	start   N
	stop    N
	current N
}

// New creates a Range from the given bounds. It does not validate that start is smaller than stop.
func New[N Steppable[N]](start, stop N) *Range[N] {
	return &Range[N]{
		start:   start,
		stop:    stop,
		current: start,
	}
}

// FromRaw creates a Range over a fixed-width domain from raw bounds and returns false if either of them is zero.
func FromRaw[T constraints.Unsigned](start, stop T) (*Range[nonzero.NonZero[T]], bool) {
	startValue, startOK := nonzero.New(start)
	stopValue, stopOK := nonzero.New(stop)
	if !startOK || !stopOK {
		return nil, false
	}

	return New(startValue, stopValue), true
}

// FromRawU128 creates a Range over the 128-bit domain from raw bounds and returns false if either of them is zero.
func FromRawU128(start, stop uint128.Uint128) (*Range[nonzero.U128], bool) {
	startValue, startOK := nonzero.NewU128(start)
	stopValue, stopOK := nonzero.NewU128(stop)
	if !startOK || !stopOK {
		return nil, false
	}

	return New(startValue, stopValue), true
}

// FromRawU256 creates a Range over the 256-bit domain from raw bounds and returns false if either of them is nil or
// zero.
func FromRawU256(start, stop *uint256.Int) (*Range[nonzero.U256], bool) {
	startValue, startOK := nonzero.NewU256(start)
	stopValue, stopOK := nonzero.NewU256(stop)
	if !startOK || !stopOK {
		return nil, false
	}

	return New(startValue, stopValue), true
}

// FromRawBig creates a Range over the arbitrary-precision domain from raw bounds and returns false if either of them
// is nil, zero or negative.
func FromRawBig(start, stop *big.Int) (*Range[nonzero.Big], bool) {
	startValue, startOK := nonzero.NewBig(start)
	stopValue, stopOK := nonzero.NewBig(stop)
	if !startOK || !stopOK {
		return nil, false
	}

	return New(startValue, stopValue), true
}

// Start returns the lower bound of the Range.
func (r *Range[N]) Start() N {
	return r.start
}

// Stop returns the upper bound of the Range.
func (r *Range[N]) Stop() N {
	return r.stop
}

// Current returns the cursor, which is the value that was emitted last (or start if nothing was emitted yet).
func (r *Range[N]) Current() N {
	return r.current
}

// HasNext returns true if the next call to Next yields a value.
func (r *Range[N]) HasNext() bool {
	return r.current.Compare(r.stop) < 0
}

// Next advances the cursor by one and returns it. If the Range is exhausted, false is returned.
func (r *Range[N]) Next() (next N, ok bool) {
	if !r.HasNext() {
		return next, false
	}

	r.current = r.current.Increment()

	return r.current, true
}

// ForEach calls the consumer with every remaining value until the Range is exhausted or the consumer returns false.
func (r *Range[N]) ForEach(consumer func(value N) bool) {
	for next, ok := r.Next(); ok; next, ok = r.Next() {
		if !consumer(next) {
			return
		}
	}
}

// Collect drains the Range and returns the remaining values.
func (r *Range[N]) Collect() (values []N) {
	r.ForEach(func(value N) bool {
		values = append(values, value)

		return true
	})

	return values
}

// Strings drains the Range and returns the textual representations of the remaining values.
func (r *Range[N]) Strings() []string {
	return lo.Map(r.Collect(), func(value N) string {
		return value.String()
	})
}

// String returns a human-readable version of the Range.
func (r *Range[N]) String() string {
	return fmt.Sprintf("Range[%s, %s]", r.start, r.stop)
}
