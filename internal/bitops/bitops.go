package bitops

import "math/bits"

// FFS64 returns the 1-indexed position of the least significant set bit of x,
// or 0 if x is zero.
func FFS64(x uint64) int {
	if x == 0 {
		return 0
	}
	return bits.TrailingZeros64(x) + 1
}

// FFS32 is FFS64 for 32-bit words.
func FFS32(x uint32) int {
	if x == 0 {
		return 0
	}
	return bits.TrailingZeros32(x) + 1
}

// CeilDiv returns ceil(a / b) for a >= 0 and b > 0.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CeilLog2 returns the smallest w with 1<<w >= n. CeilLog2(0) and CeilLog2(1)
// are both 0.
func CeilLog2(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}

const signBit64 = uint64(1) << 63

// RankOfInt64 maps i to the number of int64 values smaller than i.
// For all x < y, RankOfInt64(x) < RankOfInt64(y).
func RankOfInt64(i int64) uint64 {
	return uint64(i) ^ signBit64
}

// IntAtRank64 is the inverse of RankOfInt64.
func IntAtRank64(r uint64) int64 {
	return int64(r ^ signBit64)
}
