package nonzero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type bitCounts struct {
	trailingZeros int
	leadingZeros  int
	trailingOnes  int
	leadingOnes   int
	bitLen        int
}

func countBits[T interface{ ~uint8 | ~uint16 | ~uint32 | ~uint64 }](n NonZero[T]) bitCounts {
	return bitCounts{
		trailingZeros: n.TrailingZeros(),
		leadingZeros:  n.LeadingZeros(),
		trailingOnes:  n.TrailingOnes(),
		leadingOnes:   n.LeadingOnes(),
		bitLen:        n.BitLen(),
	}
}

func TestNonZero_BitCounts(t *testing.T) {
	tests := []struct {
		name     string
		actual   bitCounts
		expected bitCounts
	}{
		{"uint8 0b10100110", countBits(Must[uint8](0b10100110)), bitCounts{1, 0, 0, 1, 8}},
		{"uint8 1", countBits(Must[uint8](1)), bitCounts{0, 7, 1, 0, 1}},
		{"uint8 max", countBits(Must[uint8](math.MaxUint8)), bitCounts{0, 0, 8, 8, 8}},
		{"uint16 0x00f0", countBits(Must[uint16](0x00f0)), bitCounts{4, 8, 0, 0, 8}},
		{"uint16 0xff0f", countBits(Must[uint16](0xff0f)), bitCounts{0, 0, 4, 8, 16}},
		{"uint32 1<<31", countBits(Must[uint32](1 << 31)), bitCounts{31, 0, 0, 1, 32}},
		{"uint64 max", countBits(Must[uint64](math.MaxUint64)), bitCounts{0, 0, 64, 64, 64}},
		{"uint64 1<<40", countBits(Must[uint64](1 << 40)), bitCounts{40, 23, 0, 0, 41}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.actual)
		})
	}
}

func TestNonZero_BitCountsPlatformWidth(t *testing.T) {
	require.Equal(t, bitWidth[uint](), Must[uint](1).LeadingZeros()+1)
	require.Equal(t, bitWidth[uintptr](), Must[uintptr](1).LeadingZeros()+1)
}

func TestNonZero_Parity(t *testing.T) {
	require.True(t, Must[uint8](2).IsEven())
	require.False(t, Must[uint8](2).IsOdd())
	require.True(t, Must[uint8](3).IsOdd())
	require.False(t, Must[uint8](3).IsEven())
}

func TestNonZero_WithoutTrailingZeros(t *testing.T) {
	require.Equal(t, uint8(83), Must[uint8](166).WithoutTrailingZeros().Get())
	require.Equal(t, uint8(1), Must[uint8](128).WithoutTrailingZeros().Get())
	require.Equal(t, uint16(83), Must[uint16](166).WithoutTrailingZeros().Get())
	require.Equal(t, uint64(1), Must[uint64](1<<63).WithoutTrailingZeros().Get())
	require.Equal(t, uint32(7), Must[uint32](7).WithoutTrailingZeros().Get())

	for value := 1; value <= math.MaxUint16; value++ {
		odd := Must(uint16(value)).WithoutTrailingZeros()

		require.True(t, odd.IsOdd())
		require.Equal(t, uint16(value), odd.Get()<<Must(uint16(value)).TrailingZeros())
	}
}

func TestLimbs(t *testing.T) {
	require.Equal(t, 64, limbsTrailingZeros(0, 1))
	require.Equal(t, 63, limbsLeadingZeros(0, 1))
	require.Equal(t, 64, limbsTrailingOnes(math.MaxUint64, 0))
	require.Equal(t, 65, limbsTrailingOnes(math.MaxUint64, 1))
	require.Equal(t, 64, limbsLeadingOnes(0, math.MaxUint64))
	require.Equal(t, 128, limbsLeadingOnes(math.MaxUint64, math.MaxUint64))
	require.Equal(t, 128, limbsLeadingZeros(0, 0))
}
