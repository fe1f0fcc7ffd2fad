package nonzero

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrZero is returned if a value that has to be nonzero is zero.
	ErrZero = errors.New("value is zero")

	// ErrNegative is returned if an arbitrary-precision value is negative.
	ErrNegative = errors.New("value is negative")

	// ErrParse is returned if a textual representation can not be parsed into an unsigned integer.
	ErrParse = errors.New("failed to parse unsigned integer")

	// ErrOverflow is the cause of the panic that is raised if an addition or multiplication leaves the domain.
	ErrOverflow = errors.New("arithmetic overflow")

	// ErrSubtractionUnderflow is the cause of the panic that is raised if the minuend is not greater than the
	// subtrahend.
	ErrSubtractionUnderflow = errors.New("minuend must be greater than subtrahend")

	// ErrDivisionTruncatesToZero is the cause of the panic that is raised if the dividend is less than the divisor.
	ErrDivisionTruncatesToZero = errors.New("dividend must not be less than divisor")

	// ErrNarrowing is the cause of the panic that is raised if Widen is asked to convert into a narrower domain.
	ErrNarrowing = errors.New("target domain is narrower than source domain")

	// ErrWidthTooSmall is returned if a value does not fit into the requested bit width.
	ErrWidthTooSmall = errors.New("value does not fit into width")
)

// panicf raises a precondition violation. The panic value is an error marked as an assertion failure that matches
// cause via errors.Is.
func panicf(cause error, format string, args ...any) {
	panic(errors.WithAssertionFailure(errors.Wrapf(cause, format, args...)))
}
