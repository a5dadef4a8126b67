// Package rmspectrum computes the Reed-Muller spectrum of a truth table: the
// sequence S[i] = XOR over all j subset-of i of T[j]. A table is in
// canonical (identity) form iff S[i] == i for i == 0 and for every
// single-bit i, and S[i] == 0 for every i with two or more bits set.
//
// Grounded on _examples/original_source/RmGenerator.cpp's use of
// RmSpectraUtils::calculateRmSpectra/isSpectraRowIdent/isVariableRow; the
// subset-sum definition itself is computed here via the standard XOR zeta
// transform (the superset-closed analog of a prefix sum), since no
// RmSpectraUtils source file was included in the retrieval pack.
package rmspectrum

import "github.com/katalvlaran/revlogic/bitword"

// Spectrum is the Reed-Muller spectrum of a truth table: Spectrum[i] is the
// XOR of T[j] over every j that is a submask of i.
type Spectrum []uint64

// Calculate computes the Reed-Muller spectrum of table via an in-place XOR
// zeta transform: for each bit position b, every index with b set absorbs
// the value at the same index with b cleared. This computes, for every i,
// the XOR of table[j] over all j subset-of i in O(size * n) instead of the
// naive O(size^2) subset enumeration.
func Calculate(table []uint64) Spectrum {
	size := len(table)
	s := make(Spectrum, size)
	copy(s, table)

	for b := 0; (1 << uint(b)) < size; b++ {
		bit := 1 << uint(b)
		for i := 0; i < size; i++ {
			if i&bit != 0 {
				s[i] ^= s[i^bit]
			}
		}
	}
	return s
}

// IsRowIdent reports whether the spectrum row at index already has its
// canonical value, i.e. needs no further gates: index itself for row 0 and
// for variable rows, 0 for every row whose index has two or more bits set.
func IsRowIdent(row uint64, index int) bool {
	if index != 0 && !IsVariableRow(index) {
		return row == 0
	}
	return row == uint64(index)
}

// IsVariableRow reports whether index names a single variable, i.e. has
// exactly one bit set.
func IsVariableRow(index int) bool {
	return bitword.PopCount(uint64(index)) == 1
}
