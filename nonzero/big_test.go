package nonzero

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestNewBig(t *testing.T) {
	_, ok := NewBig(nil)
	require.False(t, ok)

	_, ok = NewBig(big.NewInt(0))
	require.False(t, ok)

	_, ok = NewBig(big.NewInt(-3))
	require.False(t, ok)

	source := big.NewInt(5)
	nonZero, ok := NewBig(source)
	require.True(t, ok)

	source.SetInt64(0)
	require.Equal(t, "5", nonZero.String(), "the constructor must copy its input")

	_, ok = BigFromUint64(0)
	require.False(t, ok)

	fromUint64, ok := BigFromUint64(12)
	require.True(t, ok)
	require.Equal(t, "12", fromUint64.String())

	requireAssertionPanic(t, ErrZero, func() {
		MustBig(big.NewInt(0))
	})
}

func TestBig_GetReturnsCopy(t *testing.T) {
	nonZero := MustBig(big.NewInt(7))

	nonZero.Get().SetInt64(0)

	require.Equal(t, "7", nonZero.String())
}

func TestBig_CopiesAreIndependent(t *testing.T) {
	original := MustBig(big.NewInt(7))
	copied := original

	copied.AddAssign(OneBig())
	require.True(t, copied.Set(big.NewInt(100)))

	require.Equal(t, "7", original.String())
	require.Equal(t, "100", copied.String())
}

func TestBig_SetReplaceSwapMap(t *testing.T) {
	nonZero := OneBig()

	require.False(t, nonZero.Set(big.NewInt(0)))
	require.False(t, nonZero.Set(big.NewInt(-1)))
	require.Equal(t, "1", nonZero.String())

	previous, ok := nonZero.Replace(big.NewInt(9))
	require.True(t, ok)
	require.Equal(t, int64(1), previous.Int64())

	other := MustBig(big.NewInt(4))
	nonZero.Swap(&other)
	require.Equal(t, "4", nonZero.String())
	require.Equal(t, "9", other.String())

	_, ok = nonZero.Map(func(value *big.Int) *big.Int { return value.Neg(value) })
	require.False(t, ok)
	require.Equal(t, "4", nonZero.String())

	squared := nonZero.MapUnchecked(func(value *big.Int) *big.Int { return value.Mul(value, value) })
	require.Equal(t, "16", squared.String())

	nonZero.SetUnchecked(big.NewInt(3))
	require.Equal(t, "3", nonZero.String())
}

func TestBig_Arithmetic(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(t, ok)

	a := MustBig(huge)
	b := MustBig(big.NewInt(1_000_000_007))

	expectedSum := new(big.Int).Add(huge, big.NewInt(1_000_000_007))
	require.Equal(t, expectedSum.String(), a.Add(b).String())

	expectedProduct := new(big.Int).Mul(huge, big.NewInt(1_000_000_007))
	require.Equal(t, expectedProduct.String(), a.Mul(b).String())

	expectedDifference := new(big.Int).Sub(huge, big.NewInt(1_000_000_007))
	require.Equal(t, expectedDifference.String(), a.Sub(b).String())

	expectedQuotient := new(big.Int).Quo(huge, big.NewInt(1_000_000_007))
	require.Equal(t, expectedQuotient.String(), a.Div(b).String())

	sum, ok := a.CheckedAdd(b)
	require.True(t, ok)
	require.True(t, sum.Equal(a.Add(b)))

	product, ok := a.CheckedMul(b)
	require.True(t, ok)
	require.True(t, product.Equal(a.Mul(b)))

	_, ok = b.CheckedSub(a)
	require.False(t, ok)

	_, ok = b.CheckedDiv(a)
	require.False(t, ok)

	requireAssertionPanic(t, ErrSubtractionUnderflow, func() {
		a.Sub(a)
	})

	requireAssertionPanic(t, ErrDivisionTruncatesToZero, func() {
		b.Div(a)
	})

	value := MustBig(big.NewInt(10))
	value.MulAssign(MustBig(big.NewInt(3)))
	value.SubAssign(MustBig(big.NewInt(6)))
	value.DivAssign(MustBig(big.NewInt(4)))
	value.AddAssign(OneBig())
	require.Equal(t, "7", value.String())
	require.Equal(t, "8", value.Increment().String())
}

func TestBig_Bits(t *testing.T) {
	value := MustBig(big.NewInt(166))

	require.True(t, value.IsEven())
	require.False(t, value.IsOdd())
	require.Equal(t, 1, value.TrailingZeros())
	require.Equal(t, 0, value.TrailingOnes())
	require.Equal(t, 8, value.BitLen())
	require.Equal(t, "83", value.WithoutTrailingZeros().String())
	require.Equal(t, 3, MustBig(big.NewInt(7)).TrailingOnes())

	powerOfTwo := MustBig(new(big.Int).Lsh(big.NewInt(1), 100))
	require.Equal(t, 100, powerOfTwo.TrailingZeros())
	require.Equal(t, "1", powerOfTwo.WithoutTrailingZeros().String())
}

func TestBig_LeadingBits(t *testing.T) {
	value := MustBig(big.NewInt(166))

	leadingZeros, err := value.LeadingZeros(8)
	require.NoError(t, err)
	require.Equal(t, 0, leadingZeros)

	leadingZeros, err = value.LeadingZeros(16)
	require.NoError(t, err)
	require.Equal(t, 8, leadingZeros)

	_, err = value.LeadingZeros(4)
	require.True(t, errors.Is(err, ErrWidthTooSmall))

	leadingOnes, err := value.LeadingOnes(8)
	require.NoError(t, err)
	require.Equal(t, 1, leadingOnes)

	leadingOnes, err = MustBig(big.NewInt(255)).LeadingOnes(8)
	require.NoError(t, err)
	require.Equal(t, 8, leadingOnes)

	leadingOnes, err = MustBig(big.NewInt(255)).LeadingOnes(16)
	require.NoError(t, err)
	require.Equal(t, 0, leadingOnes)

	leadingOnes, err = MustBig(big.NewInt(0b11101)).LeadingOnes(5)
	require.NoError(t, err)
	require.Equal(t, 3, leadingOnes)

	_, err = value.LeadingOnes(7)
	require.True(t, errors.Is(err, ErrWidthTooSmall))
}

func TestBig_Format(t *testing.T) {
	value := MustBig(big.NewInt(42))

	require.Equal(t, "42", value.String())
	require.Equal(t, "42", fmt.Sprint(value))
	require.Equal(t, "2a", fmt.Sprintf("%x", value))
	require.True(t, value.Equal(value.Big()))
}

func TestParseBig(t *testing.T) {
	nonZero, err := ParseBig("  1_000_000_000_000_000_000_000_000_000  ")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000000000", nonZero.String())

	_, err = ParseBig("0")
	require.True(t, errors.Is(err, ErrZero))

	_, err = ParseBig("-1")
	require.True(t, errors.Is(err, ErrNegative))

	_, err = ParseBig("1e9")
	require.True(t, errors.Is(err, ErrParse))
}
