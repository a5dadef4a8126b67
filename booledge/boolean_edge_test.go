package booledge_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/booledge"
	"github.com/katalvlaran/revlogic/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEdgeCoversTranspositionPair(t *testing.T) {
	transpositions := []permutation.Transposition{
		permutation.NewTransposition(4, 5),
		permutation.NewTransposition(6, 7),
	}
	s := booledge.NewFromTranspositions(3, 0b111, transpositions)

	edge := s.FindEdge()
	require.True(t, edge.Valid)
	assert.Equal(t, uint64(4), edge.BaseValue)
	assert.Equal(t, uint64(0b011), edge.StarsMask)
	assert.Equal(t, 2, edge.CoveredTranspositionCount)
	assert.False(t, edge.IsFull())
	assert.True(t, edge.Has(4))
	assert.True(t, edge.Has(5))
	assert.True(t, edge.Has(6))
	assert.True(t, edge.Has(7))
	assert.False(t, edge.Has(0))
}

func TestFindEdgeOnFullCube(t *testing.T) {
	words := []uint64{0, 1, 2, 3}
	s := booledge.NewFromWords(2, words, 0b11)

	edge := s.FindEdge()
	require.True(t, edge.Valid)
	assert.True(t, edge.IsFull())
	assert.Equal(t, uint64(4), edge.Capacity())
}

func TestFindEdgeExplicitModeFallsBackToFullyPresentSubcube(t *testing.T) {
	// only 3 of the 4 words in the {0,1,2,3} subcube are present, so the
	// dimension-2 edge can't qualify; explicit mode falls back to the
	// dimension-1 edge {base=0, stars=bit1} = {0,2}, both present.
	words := []uint64{0, 1, 2}
	s := booledge.NewFromWords(2, words, 0b11)
	s.ExplicitEdge = true

	edge := s.FindEdge()
	require.True(t, edge.Valid)
	assert.Equal(t, uint64(0), edge.BaseValue)
	assert.Equal(t, uint64(0b10), edge.StarsMask)
	assert.Equal(t, uint64(2), edge.Capacity())
}

func TestFindEdgeInvalidWhenNoCoverageReached(t *testing.T) {
	words := []uint64{0, 3}
	s := booledge.NewFromWords(2, words, 0b11)
	s.CoverageThreshold = 0.99

	edge := s.FindEdge()
	assert.False(t, edge.Valid)
}

func TestFilterTranspositionsByEdge(t *testing.T) {
	transpositions := []permutation.Transposition{
		permutation.NewTransposition(4, 5),
		permutation.NewTransposition(6, 7),
		permutation.NewTransposition(0, 1),
	}
	edge := booledge.BooleanEdge{N: 3, BaseValue: 4, StarsMask: 0b011, Valid: true}

	filtered := booledge.FilterTranspositionsByEdge(edge, transpositions)
	assert.ElementsMatch(t, []permutation.Transposition{
		permutation.NewTransposition(4, 5),
		permutation.NewTransposition(6, 7),
	}, filtered)
}

func TestGetEdgeSet(t *testing.T) {
	edge := booledge.BooleanEdge{N: 3, BaseValue: 4, StarsMask: 0b011, Valid: true}
	set := booledge.GetEdgeSet(edge)
	assert.Len(t, set, 4)
	for _, w := range []uint64{4, 5, 6, 7} {
		_, ok := set[w]
		assert.True(t, ok, "expected %d in edge set", w)
	}
}

func TestFindMaxEdgeDimensionBehavior(t *testing.T) {
	// a 4-word input over a 3-bit cube can realize at most a dimension-2
	// edge (floor(log2(4)) == 2), which FindEdge should actually reach here
	// since all four words share the same upper bit.
	words := []uint64{4, 5, 6, 7}
	s := booledge.NewFromWords(3, words, 0b111)
	edge := s.FindEdge()
	require.True(t, edge.Valid)
	assert.Equal(t, uint64(4), edge.Capacity())
}
