package gt

import (
	"github.com/katalvlaran/revlogic/bitword"
	"github.com/katalvlaran/revlogic/gate"
	"github.com/katalvlaran/revlogic/permutation"
	"github.com/katalvlaran/revlogic/scheme"
	"github.com/katalvlaran/revlogic/ttable"
)

// Driver synthesizes a Scheme by repeatedly applying PartialGenerator to a
// permutation's current residual, comparing left- and right-multiplication
// outcomes, until nothing remains. Ported from GtGenerator.cpp's generate /
// reducePermutation loop, rewritten as one while-loop over the current
// PartialGenerator instead of GtGenerator.cpp's mutually-recursive
// reducePermutation calls.
type Driver struct {
	// ForceRightIsBetter is a debug-only override that makes the
	// right-multiplication residual win every left/right comparison, for
	// deterministic tests.
	ForceRightIsBetter bool

	// EdgeExplicitMode requires edge search to find a fully-covered subcube
	// rather than accepting majority coverage; propagated to every
	// PartialGenerator this Driver creates.
	EdgeExplicitMode bool

	// CompleteToEven extends an odd permutation to even by pairing two
	// fixed points, as permutation.CreatePermutation's completeToEven
	// parameter does, before synthesis begins.
	CompleteToEven bool
}

// NewDriver returns a Driver with default (unforced) comparison behavior.
func NewDriver() *Driver {
	return &Driver{}
}

// Generate validates that table is a bijection, builds its permutation, and
// synthesizes a Scheme realizing it.
func (d *Driver) Generate(table ttable.TruthTable) (*scheme.Scheme, error) {
	perm, err := permutation.CreatePermutation(table, d.CompleteToEven)
	if err != nil {
		return nil, err
	}

	n := bitword.BitsForSize(len(table))
	s := scheme.New()
	if perm.IsEmpty() {
		return s, nil
	}

	cursor := s.End()
	current := d.newGenerator(n, perm)

	for current != nil {
		next, err := d.reduceStep(s, &cursor, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return s, nil
}

func (d *Driver) reduceStep(s *scheme.Scheme, cursor *scheme.Cursor, g *PartialGenerator) (*PartialGenerator, error) {
	differs, err := g.IsLeftAndRightMultiplicationDiffers()
	if err != nil {
		return nil, err
	}

	if !differs {
		elements, err := g.ImplementPartialResult()
		if err != nil {
			return nil, err
		}
		insertElements(cursor, elements, true)

		residual, err := g.GetResidualPermutation(true)
		if err != nil {
			return nil, err
		}
		if residual.IsEmpty() {
			return nil, nil
		}
		return d.newGenerator(g.N, residual), nil
	}

	leftResidual, err := g.GetResidualPermutation(true)
	if err != nil {
		return nil, err
	}
	rightResidual, err := g.GetResidualPermutation(false)
	if err != nil {
		return nil, err
	}

	leftGen := d.newGenerator(g.N, leftResidual)
	rightGen := d.newGenerator(g.N, rightResidual)

	isLeftBetter := leftGen.GetPartialResultParams().IsBetterThan(rightGen.GetPartialResultParams())
	if d.ForceRightIsBetter {
		isLeftBetter = false
	}

	elements, err := g.ImplementPartialResult()
	if err != nil {
		return nil, err
	}
	insertElements(cursor, elements, isLeftBetter)

	if isLeftBetter {
		if leftResidual.IsEmpty() {
			return nil, nil
		}
		return leftGen, nil
	}
	if rightResidual.IsEmpty() {
		return nil, nil
	}
	return rightGen, nil
}

// newGenerator builds a PartialGenerator over perm carrying this Driver's
// edge-search policy, and prepares it for generation.
func (d *Driver) newGenerator(n int, perm permutation.Permutation) *PartialGenerator {
	g := NewPartialGenerator(n, perm)
	g.ExplicitEdge = d.EdgeExplicitMode
	g.PrepareForGeneration()
	return g
}

// insertElements splices elements, in reverse order, immediately before
// *cursor (matching GtGenerator.cpp's forrcin-then-insert loop), then
// advances the cursor past the block for a left-multiplication step (the
// next step's gates belong further back; gates already emitted stay ahead)
// or leaves it in place for a right-multiplication step (the next step's
// gates belong in front of this block, not after it).
func insertElements(cursor *scheme.Cursor, elements []gate.ReverseElement, isLeftMultiplication bool) {
	c := *cursor
	for i := len(elements) - 1; i >= 0; i-- {
		c = c.Insert(elements[i])
	}
	if isLeftMultiplication {
		c = c.Advance(len(elements))
	}
	*cursor = c
}
