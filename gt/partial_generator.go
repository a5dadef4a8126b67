// Package gt implements the group-theoretic synthesizer: PartialGenerator
// picks the cheapest next reduction step out of one permutation (a single
// transposition, or a Boolean edge covering several), and Driver applies it
// repeatedly, comparing left- and right-multiplication residuals, until the
// permutation is exhausted.
//
// Ported from the declared surface of
// _examples/original_source/engine/GtGenerator.cpp (reducePermutation,
// implementPartialResult, checkPermutationValidity, getPermutation) and the
// PartialGtGenerator interface implied by its call sites (setPermutation,
// prepareForGeneration, isLeftAndRightMultiplicationDiffers,
// getResidualPermutation, getPartialResultParams, implementPartialResult).
// PartialGtGenerator.cpp itself was not present in the retrieval pack, so
// the gate-synthesis bodies below (realizeTransposition, realizeEdge) are an
// original derivation from a prose description of the method, not a port;
// see DESIGN.md for the reasoning and the simplification taken for partial
// edge coverage.
package gt

import (
	"github.com/katalvlaran/revlogic/bitword"
	"github.com/katalvlaran/revlogic/booledge"
	"github.com/katalvlaran/revlogic/gate"
	"github.com/katalvlaran/revlogic/permutation"
)

// ResultKind tags which shape of partial result a PartialGenerator chose.
type ResultKind int

const (
	// KindNone means no partial result was chosen, because the held
	// permutation is already empty.
	KindNone ResultKind = iota
	// KindTransposition means a single transposition was chosen.
	KindTransposition
	// KindEdge means a Boolean edge covering two or more transpositions was
	// chosen.
	KindEdge
)

// PartialResultParams is a scalar summary of one generator's chosen partial
// result, used purely as an ordering when comparing left vs right residual
// candidates.
type PartialResultParams struct {
	IsEdge                    bool
	CoveredTranspositionCount int
	ResidualElementCount      int
}

// IsBetterThan reports whether p should be preferred over o: edge-based
// beats non-edge; among edge-based, larger transposition coverage wins;
// ties (and the non-edge-vs-non-edge case) break on smaller residual
// elementCount.
func (p PartialResultParams) IsBetterThan(o PartialResultParams) bool {
	if p.IsEdge != o.IsEdge {
		return p.IsEdge
	}
	if p.IsEdge && p.CoveredTranspositionCount != o.CoveredTranspositionCount {
		return p.CoveredTranspositionCount > o.CoveredTranspositionCount
	}
	return p.ResidualElementCount < o.ResidualElementCount
}

// PartialGenerator holds one permutation and the next reduction step
// precomputed against it.
type PartialGenerator struct {
	N    int
	Perm permutation.Permutation

	// ExplicitEdge, when true, requires the edge search to find a subcube
	// fully covered by the candidate transpositions, rather than accepting the
	// default majority-coverage threshold. Propagated from Driver.EdgeExplicitMode.
	ExplicitEdge bool

	kind       ResultKind
	transposit permutation.Transposition
	edge       booledge.BooleanEdge
	covered    []permutation.Transposition // the transpositions the chosen result actually realizes
}

// NewPartialGenerator returns a PartialGenerator over perm, an n-bit-wide
// permutation. Call PrepareForGeneration before using any other method.
func NewPartialGenerator(n int, perm permutation.Permutation) *PartialGenerator {
	return &PartialGenerator{N: n, Perm: perm}
}

// PrepareForGeneration computes the candidate transposition (the first
// transposition of the longest cycle) and the candidate edge (edge-search
// over one representative transposition per cycle, which are disjoint since
// cycles are disjoint), then keeps whichever realizes more transpositions.
func (g *PartialGenerator) PrepareForGeneration() {
	cycles := g.Perm.Cycles()
	if len(cycles) == 0 {
		g.kind = KindNone
		return
	}

	var representatives []permutation.Transposition
	longestIdx := 0
	for i, c := range cycles {
		c.ResetCursor()
		tr, ok := c.NextTransposition()
		if !ok {
			continue
		}
		representatives = append(representatives, tr)
		if c.Length() > cycles[longestIdx].Length() {
			longestIdx = i
		}
	}

	cycles[longestIdx].ResetCursor()
	candidateTransposition, _ := cycles[longestIdx].NextTransposition()

	fullMask := fullMaskFor(g.N)
	searcher := booledge.NewFromTranspositions(g.N, fullMask, representatives)
	searcher.ExplicitEdge = g.ExplicitEdge
	edge := searcher.FindEdge()

	if edge.Valid && edge.CoveredTranspositionCount >= 2 {
		g.kind = KindEdge
		g.edge = edge
		g.covered = searcher.GetEdgeSubset(edge)
		return
	}

	g.kind = KindTransposition
	g.transposit = candidateTransposition
	g.covered = []permutation.Transposition{candidateTransposition}
}

func fullMaskFor(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// realized returns the permutation formed by the transpositions this
// generator's chosen partial result realizes, i.e. the value "r" that
// GetResidualPermutation composes with the held permutation.
func (g *PartialGenerator) realized() permutation.Permutation {
	r := permutation.Empty()
	for _, t := range g.covered {
		r.Append(permutation.NewCycle([]uint64{t.X, t.Y}))
	}
	return r
}

// GetResidualPermutation returns the permutation remaining after peeling the
// chosen partial result off the held permutation, composed on the left
// (left=true: r applied first, then Perm) or right (Perm applied first, then
// r) — see permutation.Compose's doc comment for the composition order this
// relies on.
func (g *PartialGenerator) GetResidualPermutation(left bool) (permutation.Permutation, error) {
	size := 1 << uint(g.N)
	r := g.realized()
	if left {
		return permutation.Compose(size, r, g.Perm)
	}
	return permutation.Compose(size, g.Perm, r)
}

// IsLeftAndRightMultiplicationDiffers reports whether peeling the chosen
// partial result off the left gives a different residual than peeling it
// off the right.
func (g *PartialGenerator) IsLeftAndRightMultiplicationDiffers() (bool, error) {
	if g.kind == KindNone {
		return false, nil
	}
	size := 1 << uint(g.N)
	left, err := g.GetResidualPermutation(true)
	if err != nil {
		return false, err
	}
	right, err := g.GetResidualPermutation(false)
	if err != nil {
		return false, err
	}
	leftMap := left.Mapping(size)
	rightMap := right.Mapping(size)
	for i := range leftMap {
		if leftMap[i] != rightMap[i] {
			return true, nil
		}
	}
	return false, nil
}

// GetPartialResultParams summarizes this generator's own chosen partial
// result, for comparison against a sibling generator's.
func (g *PartialGenerator) GetPartialResultParams() PartialResultParams {
	if g.kind == KindNone {
		return PartialResultParams{ResidualElementCount: g.Perm.ElementCount()}
	}
	return PartialResultParams{
		IsEdge:                    g.kind == KindEdge,
		CoveredTranspositionCount: len(g.covered),
		ResidualElementCount:      g.Perm.ElementCount(),
	}
}

// ImplementPartialResult returns the gate sequence realizing the chosen
// partial result.
func (g *PartialGenerator) ImplementPartialResult() ([]gate.ReverseElement, error) {
	switch g.kind {
	case KindTransposition:
		return realizeTransposition(g.N, g.transposit)
	case KindEdge:
		capacity := g.edge.Capacity()
		if capacity > 0 && uint64(len(g.covered)) == capacity/2 && allAlongStar(g.edge, g.covered) {
			e, err := realizeEdge(g.N, g.edge)
			if err != nil {
				return nil, err
			}
			return []gate.ReverseElement{e}, nil
		}
		// the covered transpositions don't exactly fill the edge's
		// combinatorial subcube along one star bit, so a single generalized
		// Toffoli can't realize exactly this set without also touching
		// uncovered points: fall back to one gate block per transposition.
		var out []gate.ReverseElement
		for _, t := range g.covered {
			gates, err := realizeTransposition(g.N, t)
			if err != nil {
				return nil, err
			}
			out = append(out, gates...)
		}
		return out, nil
	default:
		return nil, ErrNoPartialResult
	}
}

// allAlongStar reports whether every covered transposition differs by
// exactly the edge's lowest star bit, the condition under which a single
// controlled-NOT (no conjugation) correctly realizes all of them at once.
func allAlongStar(edge booledge.BooleanEdge, covered []permutation.Transposition) bool {
	t := bitword.FindSetBit(edge.StarsMask, 0)
	if t < 0 {
		return false
	}
	maskT := bitword.Mask(t)
	for _, tr := range covered {
		if tr.X^tr.Y != maskT {
			return false
		}
	}
	return true
}

// realizeTransposition builds the gate sequence swapping a single pair of
// points and fixing everything else, via the conjugate-align-swap-unconjugate
// pattern: align every bit the pair differs on (other
// than the lowest, t) using broad CNOTs controlled on t, swap with one fully
// discriminated CNOT on t, then undo the alignment.
func realizeTransposition(n int, tr permutation.Transposition) ([]gate.ReverseElement, error) {
	larger, smaller := tr.Y, tr.X
	d := larger ^ smaller
	tBit := bitword.FindSetBit(d, 0)
	maskT := bitword.Mask(tBit)
	av := (larger >> uint(tBit)) & 1

	var conjugation []gate.ReverseElement
	for p := 0; p < n; p++ {
		maskP := bitword.Mask(p)
		if maskP == maskT || d&maskP == 0 {
			continue
		}
		var inv uint64
		if av == 0 {
			inv = maskT
		}
		e, err := gate.NewInverted(n, maskP, maskT, inv)
		if err != nil {
			return nil, err
		}
		conjugation = append(conjugation, e)
	}

	full := fullMaskFor(n)
	controlFull := full &^ maskT
	invFull := controlFull &^ smaller
	center, err := gate.NewInverted(n, maskT, controlFull, invFull)
	if err != nil {
		return nil, err
	}

	out := make([]gate.ReverseElement, 0, 2*len(conjugation)+1)
	out = append(out, conjugation...)
	out = append(out, center)
	out = append(out, conjugation...)
	return out, nil
}

// realizeEdge builds the single generalized Toffoli realizing an edge whose
// covered transpositions exactly fill its subcube along one star bit: target
// the lowest star bit, control on every non-star bit with baseValue
// selecting polarity.
func realizeEdge(n int, edge booledge.BooleanEdge) (gate.ReverseElement, error) {
	t := bitword.FindSetBit(edge.StarsMask, 0)
	maskT := bitword.Mask(t)
	full := fullMaskFor(n)
	controlMask := full &^ edge.StarsMask
	inversionMask := controlMask &^ edge.BaseValue
	return gate.NewInverted(n, maskT, controlMask, inversionMask)
}
