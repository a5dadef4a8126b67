// Package bitword implements fixed-width word/mask arithmetic shared across
// the synthesis engine: popcount, forward bit scans, and significant-bit
// counts, the way the original's utils.hpp declared them
// (countNonZeroBits, findPositiveBitPosition, getSignificantBitCount).
package bitword

import "math/bits"

// PopCount returns the number of set bits in value.
func PopCount(value uint64) int {
	return bits.OnesCount64(value)
}

// FindSetBit returns the position of the lowest set bit in value at or
// after start, or -1 if no such bit exists. Position 0 is the
// least-significant bit.
func FindSetBit(value uint64, start int) int {
	if start < 0 {
		start = 0
	}
	if start >= 64 {
		return -1
	}
	masked := value &^ (uint64(1)<<uint(start) - 1)
	if masked == 0 {
		return -1
	}
	return bits.TrailingZeros64(masked)
}

// FindHighestSetBit returns the position of the highest set bit in value,
// or -1 if value is zero.
func FindHighestSetBit(value uint64) int {
	if value == 0 {
		return -1
	}
	return bits.Len64(value) - 1
}

// SignificantBitCount returns floor(log2(value))+1, i.e. the number of bits
// needed to represent value (0 for value == 0).
func SignificantBitCount(value uint64) int {
	return bits.Len64(value)
}

// Mask returns a mask with exactly the single bit at position set.
func Mask(position int) uint64 {
	return uint64(1) << uint(position)
}

// BitsForSize returns the number of bits needed to index a table of the
// given size (size must be a power of two, size == 1<<n).
func BitsForSize(size int) int {
	n := 0
	for s := size; s > 1; s >>= 1 {
		n++
	}
	return n
}
