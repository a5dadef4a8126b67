package rmspectrum_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/rmspectrum"
	"github.com/katalvlaran/revlogic/ttable"
	"github.com/stretchr/testify/assert"
)

// naiveCalculate cross-checks Calculate against the O(size^2) subset-sum
// definition directly.
func naiveCalculate(table []uint64) rmspectrum.Spectrum {
	size := len(table)
	s := make(rmspectrum.Spectrum, size)
	for i := 0; i < size; i++ {
		var acc uint64
		for j := 0; j < size; j++ {
			if j&i == j { // j subset-of i
				acc ^= table[j]
			}
		}
		s[i] = acc
	}
	return s
}

func TestCalculateIdentityIsCanonical(t *testing.T) {
	table := ttable.Identity(3)
	s := rmspectrum.Calculate(table)
	for i, row := range s {
		assert.True(t, rmspectrum.IsRowIdent(row, i), "row %d: got %d", i, row)
	}
}

func TestCalculateMatchesNaiveDefinition(t *testing.T) {
	tables := []ttable.TruthTable{
		ttable.Identity(3),
		{0, 1, 3, 2},
		{1, 2, 3, 0},
		{7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, table := range tables {
		got := rmspectrum.Calculate(table)
		want := naiveCalculate(table)
		assert.Equal(t, []uint64(want), []uint64(got), "table %v", table)
	}
}

func TestIsVariableRow(t *testing.T) {
	assert.True(t, rmspectrum.IsVariableRow(1))
	assert.True(t, rmspectrum.IsVariableRow(2))
	assert.True(t, rmspectrum.IsVariableRow(4))
	assert.False(t, rmspectrum.IsVariableRow(0))
	assert.False(t, rmspectrum.IsVariableRow(3))
	assert.False(t, rmspectrum.IsVariableRow(5))
}

func TestIsRowIdent(t *testing.T) {
	assert.True(t, rmspectrum.IsRowIdent(0, 5))  // non-variable row: canonical value is 0
	assert.False(t, rmspectrum.IsRowIdent(5, 5)) // the identity's spectrum never has S[5] == 5
	assert.False(t, rmspectrum.IsRowIdent(5, 4))
}
