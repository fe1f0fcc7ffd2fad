package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/Mearkatz/beetle-nonzero/ds/nonzerorange"
	"github.com/Mearkatz/beetle-nonzero/nonzero"
)

// handler executes the commands for a single domain.
type handler interface {
	inspect(out io.Writer, text string) error
	iterate(out io.Writer, startText, stopText string, params ParametersRange) (printed uint, truncated bool, err error)
	calc(out io.Writer, lhsText, operator, rhsText string) error
}

var handlers = map[string]handler{
	"u8":      domainHandler[nonzero.NonZero[uint8]]{parse: nonzero.Parse[uint8]},
	"u16":     domainHandler[nonzero.NonZero[uint16]]{parse: nonzero.Parse[uint16]},
	"u32":     domainHandler[nonzero.NonZero[uint32]]{parse: nonzero.Parse[uint32]},
	"u64":     domainHandler[nonzero.NonZero[uint64]]{parse: nonzero.Parse[uint64]},
	"uint":    domainHandler[nonzero.NonZero[uint]]{parse: nonzero.Parse[uint]},
	"uintptr": domainHandler[nonzero.NonZero[uintptr]]{parse: nonzero.Parse[uintptr]},
	"u128":    domainHandler[nonzero.U128]{parse: nonzero.ParseU128},
	"u256":    domainHandler[nonzero.U256]{parse: nonzero.ParseU256},
	"big":     domainHandler[nonzero.Big]{parse: nonzero.ParseBig},
}

func domainNames() []string {
	names := lo.Keys(handlers)
	sort.Strings(names)

	return names
}

// domainHandler implements the commands for every nonzero kind N.
type domainHandler[N nonzero.Number[N]] struct {
	parse func(text string) (N, error)
}

func (d domainHandler[N]) inspect(out io.Writer, text string) error {
	value, err := d.parse(text)
	if err != nil {
		return err
	}

	lines := [][2]any{
		{"value", value.String()},
		{"parity", lo.Cond(value.IsEven(), "even", "odd")},
		{"bit length", value.BitLen()},
		{"trailing zeros", value.TrailingZeros()},
		{"trailing ones", value.TrailingOnes()},
	}

	// arbitrary-precision values have no natural width to count leading bits in
	if fixedWidth, isFixedWidth := any(value).(nonzero.FixedWidth); isFixedWidth {
		lines = append(lines, [2]any{"leading zeros", fixedWidth.LeadingZeros()}, [2]any{"leading ones", fixedWidth.LeadingOnes()})
	}

	lines = append(lines, [2]any{"odd part", value.WithoutTrailingZeros().String()})

	for _, line := range lines {
		if _, err := fmt.Fprintf(out, "%-15s %v\n", line[0].(string)+":", line[1]); err != nil {
			return errors.Wrap(err, "unable to write output")
		}
	}

	return nil
}

func (d domainHandler[N]) iterate(out io.Writer, startText, stopText string, params ParametersRange) (printed uint, truncated bool, err error) {
	start, err := d.parse(startText)
	if err != nil {
		return 0, false, errors.Wrap(err, "invalid start")
	}

	stop, err := d.parse(stopText)
	if err != nil {
		return 0, false, errors.Wrap(err, "invalid stop")
	}

	valueRange := nonzerorange.New(start, stop)
	valueRange.ForEach(func(value N) bool {
		if _, err = fmt.Fprintln(out, value.String()); err != nil {
			err = errors.Wrap(err, "unable to write output")

			return false
		}
		printed++

		return !params.Limited || printed < params.Limit.Get()
	})
	if err != nil {
		return printed, false, err
	}

	return printed, valueRange.HasNext(), nil
}

func (d domainHandler[N]) calc(out io.Writer, lhsText, operator, rhsText string) error {
	lhs, err := d.parse(lhsText)
	if err != nil {
		return errors.Wrap(err, "invalid left operand")
	}

	rhs, err := d.parse(rhsText)
	if err != nil {
		return errors.Wrap(err, "invalid right operand")
	}

	var (
		result N
		ok     bool
		cause  error
	)

	switch operator {
	case "+":
		result, ok = lhs.CheckedAdd(rhs)
		cause = nonzero.ErrOverflow
	case "-":
		result, ok = lhs.CheckedSub(rhs)
		cause = nonzero.ErrSubtractionUnderflow
	case "*":
		result, ok = lhs.CheckedMul(rhs)
		cause = nonzero.ErrOverflow
	case "/":
		result, ok = lhs.CheckedDiv(rhs)
		cause = nonzero.ErrDivisionTruncatesToZero
	default:
		return errors.Wrapf(ErrUnknownOperator, "%q", operator)
	}

	if !ok {
		return errors.Wrapf(cause, "%s %s %s", lhs, operator, rhs)
	}

	if _, err := fmt.Fprintln(out, result.String()); err != nil {
		return errors.Wrap(err, "unable to write output")
	}

	return nil
}
