package permutation_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/permutation"
	"github.com/katalvlaran/revlogic/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePermutationIdentity(t *testing.T) {
	p, err := permutation.CreatePermutation(ttable.Identity(3), false)
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestCreatePermutationSingleSwap(t *testing.T) {
	// 0->0,1->1,2->3,3->2
	table := ttable.TruthTable{0, 1, 3, 2}
	p, err := permutation.CreatePermutation(table, false)
	require.NoError(t, err)

	require.Equal(t, 1, p.Length())
	cyc := p.Cycles()[0]
	assert.ElementsMatch(t, []uint64{2, 3}, cyc.Points())
}

func TestCreatePermutationFourCycle(t *testing.T) {
	// 0->1,1->2,2->3,3->0
	table := ttable.TruthTable{1, 2, 3, 0}
	p, err := permutation.CreatePermutation(table, false)
	require.NoError(t, err)

	require.Equal(t, 1, p.Length())
	assert.Equal(t, 4, p.Cycles()[0].Length())
}

func TestCreatePermutationRejectsNonBijection(t *testing.T) {
	table := ttable.TruthTable{0, 0, 2, 3}
	_, err := permutation.CreatePermutation(table, false)
	assert.ErrorIs(t, err, permutation.ErrNotAPermutation)
}

func TestCreatePermutationCompletesToEven(t *testing.T) {
	// single swap of 1,2 in a 4-point domain: odd permutation, two fixed points (0,3) available.
	table := ttable.TruthTable{0, 2, 1, 3}
	p, err := permutation.CreatePermutation(table, true)
	require.NoError(t, err)
	assert.True(t, p.IsEven())
	assert.Equal(t, 2, p.Length())
}

func TestFromMappingRoundTrips(t *testing.T) {
	var p permutation.Permutation
	p.Append(permutation.NewCycle([]uint64{0, 1, 2}))
	p.Append(permutation.NewCycle([]uint64{4, 5}))

	m := p.Mapping(6)
	rebuilt, err := permutation.FromMapping(m)
	require.NoError(t, err)

	assert.Equal(t, p.ElementCount(), rebuilt.ElementCount())
	assert.Equal(t, p.Mapping(6), rebuilt.Mapping(6))
}

func TestComposeDisjointCyclesUnion(t *testing.T) {
	var a permutation.Permutation
	a.Append(permutation.NewCycle([]uint64{0, 1}))

	var b permutation.Permutation
	b.Append(permutation.NewCycle([]uint64{2, 3}))

	composed, err := permutation.Compose(4, a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, composed.ElementCount())
	assert.Equal(t, []uint64{1, 0, 3, 2}, composed.Mapping(4))
}

func TestComposeOverlappingCyclesCancel(t *testing.T) {
	var a permutation.Permutation
	a.Append(permutation.NewCycle([]uint64{0, 1}))

	// composing a with itself (apply the same swap twice) must cancel out.
	composed, err := permutation.Compose(2, a, a)
	require.NoError(t, err)
	assert.True(t, composed.IsEmpty())
}

func TestComposeNonCommutative(t *testing.T) {
	var a permutation.Permutation
	a.Append(permutation.NewCycle([]uint64{0, 1, 2}))

	var b permutation.Permutation
	b.Append(permutation.NewCycle([]uint64{1, 2, 3}))

	ab, err := permutation.Compose(4, a, b)
	require.NoError(t, err)
	ba, err := permutation.Compose(4, b, a)
	require.NoError(t, err)

	assert.NotEqual(t, ab.Mapping(4), ba.Mapping(4))
}
