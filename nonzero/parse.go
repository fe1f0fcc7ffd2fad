package nonzero

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/constraints"
	"github.com/spf13/cast"
)

// Parse parses a NonZero from its textual representation. Decimal values are accepted as well as values with a "0b",
// "0o" or "0x" prefix and underscores between digits. The returned error matches ErrParse if the text is not a valid
// unsigned integer of T and ErrZero if it denotes zero.
func Parse[T constraints.Unsigned](text string) (NonZero[T], error) {
	value, err := strconv.ParseUint(strings.TrimSpace(text), 0, bitWidth[T]())
	if err != nil {
		return NonZero[T]{}, errors.Mark(errors.Wrapf(err, "failed to parse %q", text), ErrParse)
	}

	nonZero, ok := New(T(value))
	if !ok {
		return NonZero[T]{}, errors.Wrapf(ErrZero, "failed to parse %q", text)
	}

	return nonZero, nil
}

// FromAny converts a loosely typed value (as found in decoded configuration files or environment variables) into a
// NonZero. Strings are parsed like Parse does. Floats are accepted only if they denote a whole number.
// The returned error matches ErrParse if the value has no unsigned integer interpretation, ErrWidthTooSmall if it does
// not fit into T and ErrZero if it is zero.
func FromAny[T constraints.Unsigned](value any) (NonZero[T], error) {
	switch typedValue := value.(type) {
	case string:
		return Parse[T](typedValue)
	case float32:
		return fromFloat[T](float64(typedValue))
	case float64:
		return fromFloat[T](typedValue)
	}

	raw, err := cast.ToUint64E(value)
	if err != nil {
		return NonZero[T]{}, errors.Mark(errors.Wrapf(err, "failed to convert %v", value), ErrParse)
	}

	return fromUint64[T](raw)
}

// fromFloat converts a float that denotes a whole number (JSON decodes all numbers as float64).
func fromFloat[T constraints.Unsigned](value float64) (NonZero[T], error) {
	switch {
	case value != math.Trunc(value):
		return NonZero[T]{}, errors.Wrapf(ErrParse, "%v is not a whole number", value)
	case value < 0:
		return NonZero[T]{}, errors.Wrapf(ErrParse, "%v is negative", value)
	case value >= math.Exp2(64):
		return NonZero[T]{}, errors.Wrapf(ErrWidthTooSmall, "%v needs more than 64 bits", value)
	}

	return fromUint64[T](uint64(value))
}

func fromUint64[T constraints.Unsigned](raw uint64) (NonZero[T], error) {
	if uint64(T(raw)) != raw {
		return NonZero[T]{}, errors.Wrapf(ErrWidthTooSmall, "%d needs more than %d bits", raw, bitWidth[T]())
	}

	nonZero, ok := New(T(raw))
	if !ok {
		return NonZero[T]{}, errors.Wrapf(ErrZero, "failed to convert %d", raw)
	}

	return nonZero, nil
}

// parseBig parses a positive big.Int that needs at most maxBits bits (0 means unlimited).
func parseBig(text string, maxBits int) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(text), 0)
	if !ok {
		return nil, errors.Wrapf(ErrParse, "%q", text)
	}

	switch {
	case value.Sign() < 0:
		return nil, errors.Wrapf(ErrNegative, "failed to parse %q", text)
	case value.Sign() == 0:
		return nil, errors.Wrapf(ErrZero, "failed to parse %q", text)
	case maxBits > 0 && value.BitLen() > maxBits:
		return nil, errors.Wrapf(ErrWidthTooSmall, "%q needs more than %d bits", text, maxBits)
	}

	return value, nil
}
