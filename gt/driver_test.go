package gt_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/gt"
	"github.com/katalvlaran/revlogic/permutation"
	"github.com/katalvlaran/revlogic/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertReproducesTable runs Driver.Generate and checks the round-trip law:
// applying the resulting scheme reproduces the original table bit-exactly.
func assertReproducesTable(t *testing.T, table ttable.TruthTable) {
	t.Helper()

	s, err := gt.NewDriver().Generate(table)
	require.NoError(t, err)

	for x, want := range table {
		got := s.Apply(uint64(x))
		assert.Equal(t, want, got, "x=%d", x)
	}
}

func TestGenerateIdentityYieldsEmptyScheme(t *testing.T) {
	s, err := gt.NewDriver().Generate(ttable.Identity(3))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestGenerateSingleTransposition(t *testing.T) {
	// T = {3,1,2,0}: swap endpoints 0 and 3, fix 1 and 2.
	assertReproducesTable(t, ttable.TruthTable{3, 1, 2, 0})
}

func TestGenerateFourCycle(t *testing.T) {
	assertReproducesTable(t, ttable.TruthTable{1, 2, 3, 0})
}

func TestGenerateTwoDisjointTranspositions(t *testing.T) {
	// T = {1,0,3,2}: two independent swaps (0,1) and (2,3).
	assertReproducesTable(t, ttable.TruthTable{1, 0, 3, 2})
}

func TestGenerateEightPointPermutation(t *testing.T) {
	assertReproducesTable(t, ttable.TruthTable{4, 5, 6, 7, 0, 1, 2, 3})
}

func TestGenerateRejectsNonPermutation(t *testing.T) {
	_, err := gt.NewDriver().Generate(ttable.TruthTable{0, 0, 2, 3})
	assert.ErrorIs(t, err, permutation.ErrNotAPermutation)
}

func TestForceRightIsBetterStillReproducesTable(t *testing.T) {
	table := ttable.TruthTable{1, 2, 3, 0}
	d := &gt.Driver{ForceRightIsBetter: true}

	s, err := d.Generate(table)
	require.NoError(t, err)
	for x, want := range table {
		assert.Equal(t, want, s.Apply(uint64(x)), "x=%d", x)
	}
}

func TestPartialGeneratorResidualElementCountDecreases(t *testing.T) {
	perm, err := permutation.CreatePermutation(ttable.TruthTable{4, 5, 6, 7, 0, 1, 2, 3}, false)
	require.NoError(t, err)

	n := 3
	current := gt.NewPartialGenerator(n, perm)
	current.PrepareForGeneration()

	prevCount := perm.ElementCount()
	steps := 0
	for {
		differs, err := current.IsLeftAndRightMultiplicationDiffers()
		require.NoError(t, err)

		var residual permutation.Permutation
		if !differs {
			residual, err = current.GetResidualPermutation(true)
			require.NoError(t, err)
		} else {
			left, err := current.GetResidualPermutation(true)
			require.NoError(t, err)
			right, err := current.GetResidualPermutation(false)
			require.NoError(t, err)

			leftGen := gt.NewPartialGenerator(n, left)
			leftGen.PrepareForGeneration()
			rightGen := gt.NewPartialGenerator(n, right)
			rightGen.PrepareForGeneration()

			if leftGen.GetPartialResultParams().IsBetterThan(rightGen.GetPartialResultParams()) {
				residual = left
			} else {
				residual = right
			}
		}

		require.Less(t, residual.ElementCount(), prevCount)
		prevCount = residual.ElementCount()
		steps++
		require.Less(t, steps, 20, "too many steps: not converging")

		if residual.IsEmpty() {
			break
		}
		current = gt.NewPartialGenerator(n, residual)
		current.PrepareForGeneration()
	}
}
