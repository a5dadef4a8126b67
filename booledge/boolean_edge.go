// Package booledge implements BooleanEdge, a maximal subcube of the n-cube
// covered by a set of input words (typically the endpoints of a batch of
// transpositions), and the search that finds it.
//
// Ported from the declared surface of
// _examples/original_source/engine/BooleanEdgeSearcher.h (BooleanEdge,
// BooleanEdgeSearcher, findEdge/checkEdge/findMaxEdgeDimension/
// filterTranspositionsByEdge/getEdgeSubset/getEdgeSet). The corresponding
// .cpp was not available in the retrieval pack, so the search body below is
// an original implementation built against that header's declared shape.
package booledge

import (
	"github.com/katalvlaran/revlogic/bitword"
	"github.com/katalvlaran/revlogic/permutation"
)

// BooleanEdge is a subcube (baseValue, starsMask) of the n-cube: the set of
// words w with w &^ starsMask == baseValue. It covers 2^popcount(starsMask)
// words. The zero value is invalid.
type BooleanEdge struct {
	N                         int
	BaseValue                 uint64
	StarsMask                 uint64
	Valid                     bool
	CoveredTranspositionCount int
}

// IsFull reports whether the edge spans every bit of the n-cube.
func (e BooleanEdge) IsFull() bool {
	return e.Valid && e.StarsMask == fullMask(e.N)
}

// Has reports whether x belongs to the edge's subcube.
func (e BooleanEdge) Has(x uint64) bool {
	return e.Valid && x&^e.StarsMask == e.BaseValue
}

// Capacity returns the number of words the edge's subcube contains.
func (e BooleanEdge) Capacity() uint64 {
	if !e.Valid {
		return 0
	}
	return uint64(1) << uint(bitword.PopCount(e.StarsMask))
}

func fullMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// Searcher finds a maximal BooleanEdge covering a set of input words.
type Searcher struct {
	// N is the bit width of the cube being searched.
	N int
	// InitialMask restricts which bit positions may become star bits.
	InitialMask uint64
	// ExplicitEdge, when true, requires the returned edge's entire subcube
	// (all 2^k words) to be present in the input; otherwise CoverageThreshold
	// of the input is enough.
	ExplicitEdge bool
	// CoverageThreshold is the minimum fraction of the input set a
	// non-explicit edge must cover. Default 0.5, exposed here as a tunable
	// field rather than hardcoded.
	CoverageThreshold float64

	input          map[uint64]struct{}
	transpositions []permutation.Transposition
}

// NewFromWords builds a Searcher over an explicit set of words.
func NewFromWords(n int, words []uint64, initialMask uint64) *Searcher {
	s := &Searcher{N: n, InitialMask: initialMask, CoverageThreshold: 0.5}
	s.input = make(map[uint64]struct{}, len(words))
	for _, w := range words {
		s.input[w] = struct{}{}
	}
	return s
}

// NewFromTranspositions builds a Searcher over the union of the endpoints of
// transpositions, remembering them so FindEdge can populate
// CoveredTranspositionCount and GetEdgeSubset can filter them.
func NewFromTranspositions(n int, initialMask uint64, transpositions []permutation.Transposition) *Searcher {
	s := &Searcher{N: n, InitialMask: initialMask, CoverageThreshold: 0.5, transpositions: transpositions}
	s.input = make(map[uint64]struct{}, 2*len(transpositions))
	for _, t := range transpositions {
		for _, p := range t.Support() {
			s.input[p] = struct{}{}
		}
	}
	return s
}

// findMaxEdgeDimension returns floor(log2(length)), the widest subcube that
// could possibly fit inside an input set of the given size.
func findMaxEdgeDimension(length int) int {
	if length < 1 {
		return 0
	}
	return bitword.FindHighestSetBit(uint64(length))
}

// initialMaskBits returns the bit positions set in InitialMask, ordered by
// descending input frequency: bits most of the input agrees on are tried
// first, since they are the most likely to yield a large covered group.
func (s *Searcher) initialMaskBits() []int {
	var bits []int
	for b := 0; b < s.N; b++ {
		if s.InitialMask&bitword.Mask(b) != 0 {
			bits = append(bits, b)
		}
	}

	freq := make(map[int]int, len(bits))
	for _, b := range bits {
		mask := bitword.Mask(b)
		count := 0
		for w := range s.input {
			if w&mask != 0 {
				count++
			}
		}
		freq[b] = count
	}

	for i := 1; i < len(bits); i++ {
		for j := i; j > 0 && freq[bits[j]] > freq[bits[j-1]]; j-- {
			bits[j], bits[j-1] = bits[j-1], bits[j]
		}
	}
	return bits
}

// checkEdge groups the input by baseValue under the given starsMask and
// returns the largest group, i.e. the base value and member count of the
// best subcube of that shape.
func (s *Searcher) checkEdge(starsMask uint64) (baseValue uint64, covered int) {
	counts := make(map[uint64]int)
	var bestBase uint64
	bestCount := -1
	for w := range s.input {
		base := w &^ starsMask
		counts[base]++
		if counts[base] > bestCount {
			bestCount = counts[base]
			bestBase = base
		}
	}
	return bestBase, bestCount
}

// accepts reports whether a (starsMask, covered) pair satisfies this
// searcher's coverage policy.
func (s *Searcher) accepts(starsMask uint64, covered int) bool {
	if covered <= 0 {
		return false
	}
	capacity := int(uint64(1) << uint(bitword.PopCount(starsMask)))
	if s.ExplicitEdge {
		return covered == capacity
	}
	threshold := s.CoverageThreshold
	if threshold <= 0 {
		threshold = 0.5
	}
	return float64(covered) >= threshold*float64(len(s.input))
}

// FindEdge searches for the maximal-dimension BooleanEdge satisfying this
// searcher's coverage policy, trying star-mask sizes from the
// information-theoretic maximum down to 1. Returns an invalid BooleanEdge if
// none qualifies.
func (s *Searcher) FindEdge() BooleanEdge {
	length := len(s.input)
	kMax := findMaxEdgeDimension(length)
	bits := s.initialMaskBits()
	if kMax > len(bits) {
		kMax = len(bits)
	}

	for k := kMax; k >= 1; k-- {
		var best BooleanEdge
		for _, combo := range combinations(bits, k) {
			starsMask := uint64(0)
			for _, b := range combo {
				starsMask |= bitword.Mask(b)
			}
			baseValue, covered := s.checkEdge(starsMask)
			if !s.accepts(starsMask, covered) {
				continue
			}
			candidate := BooleanEdge{
				N:         s.N,
				BaseValue: baseValue,
				StarsMask: starsMask,
				Valid:     true,
			}
			candidate.CoveredTranspositionCount = s.coveredTranspositionCount(candidate, covered)
			if s.better(candidate, best) {
				best = candidate
			}
		}
		if best.Valid {
			return best
		}
	}
	return BooleanEdge{N: s.N}
}

// better implements the tie-break policy among candidates of equal
// dimension (the outer FindEdge loop already prefers higher dimension):
// larger CoveredTranspositionCount wins, falling back to the numeric
// starsMask value only to keep the choice deterministic.
func (s *Searcher) better(a, b BooleanEdge) bool {
	if !b.Valid {
		return true
	}
	if a.CoveredTranspositionCount != b.CoveredTranspositionCount {
		return a.CoveredTranspositionCount > b.CoveredTranspositionCount
	}
	return a.StarsMask > b.StarsMask
}

func (s *Searcher) coveredTranspositionCount(edge BooleanEdge, coveredWords int) int {
	if len(s.transpositions) == 0 {
		return coveredWords
	}
	count := 0
	for _, t := range s.transpositions {
		if edge.Has(t.X) && edge.Has(t.Y) {
			count++
		}
	}
	return count
}

// FilterTranspositionsByEdge returns the subset of transpositions whose both
// endpoints lie inside edge.
func FilterTranspositionsByEdge(edge BooleanEdge, transpositions []permutation.Transposition) []permutation.Transposition {
	var out []permutation.Transposition
	for _, t := range transpositions {
		if edge.Has(t.X) && edge.Has(t.Y) {
			out = append(out, t)
		}
	}
	return out
}

// GetEdgeSubset returns the subset of this searcher's own transpositions
// covered by edge.
func (s *Searcher) GetEdgeSubset(edge BooleanEdge) []permutation.Transposition {
	return FilterTranspositionsByEdge(edge, s.transpositions)
}

// GetEdgeSet enumerates every word belonging to edge's subcube.
func GetEdgeSet(edge BooleanEdge) map[uint64]struct{} {
	if !edge.Valid {
		return nil
	}
	var starBits []int
	for b := 0; b < edge.N; b++ {
		if edge.StarsMask&bitword.Mask(b) != 0 {
			starBits = append(starBits, b)
		}
	}

	out := make(map[uint64]struct{}, edge.Capacity())
	subsetCount := 1 << uint(len(starBits))
	for subset := 0; subset < subsetCount; subset++ {
		w := edge.BaseValue
		for i, b := range starBits {
			if subset&(1<<uint(i)) != 0 {
				w |= bitword.Mask(b)
			}
		}
		out[w] = struct{}{}
	}
	return out
}

// combinations returns every k-element subset of items, as index-free copies
// of items in ascending order.
func combinations(items []int, k int) [][]int {
	if k <= 0 || k > len(items) {
		return nil
	}
	var out [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int(nil), chosen...))
			return
		}
		for i := start; i <= len(items)-(k-len(chosen)); i++ {
			pick(i+1, append(chosen, items[i]))
		}
	}
	pick(0, nil)
	return out
}
