package engine

import (
	"github.com/katalvlaran/revlogic/gt"
	"github.com/katalvlaran/revlogic/permutation"
	"github.com/katalvlaran/revlogic/rmgen"
	"github.com/katalvlaran/revlogic/scheme"
	"github.com/katalvlaran/revlogic/ttable"
)

// Synthesize turns table into a Scheme realizing it, dispatching by opts
// into one of RM-only, GT-only, or hybrid (RM as a pre-pass whose residual
// feeds GT). Errors returned are the value-typed kinds
// permutation.ErrNotAPermutation, permutation.ErrCannotCompleteToEven, and
// synerr.Violation — Synthesize itself introduces no new error kind.
func Synthesize(table ttable.TruthTable, opts ...Option) (*scheme.Scheme, error) {
	cfg := newOptions(opts...)
	if !table.IsPermutation() {
		return nil, permutation.ErrNotAPermutation
	}
	useRM, useGT := cfg.useRM, cfg.useGT
	if !useRM && !useGT {
		// Neither generator selected is not a meaningful configuration; GT
		// alone can synthesize any permutation, so it is the fallback.
		useGT = true
	}

	driver := &gt.Driver{
		ForceRightIsBetter: cfg.debug.ForceRightIsBetter,
		EdgeExplicitMode:   cfg.edgeExplicit,
		CompleteToEven:     cfg.completeToEven,
	}

	if useRM && !useGT {
		cfg.tracer.Trace("rm_only_start", map[string]any{"size": len(table)})
		s, _, err := rmgen.New().WithMaxWeight(cfg.rmMaxWeight).Generate(table)
		if err != nil {
			return nil, err
		}
		cfg.tracer.Trace("rm_only_done", map[string]any{"gates": s.Len()})
		return s, nil
	}

	if useGT && !useRM {
		cfg.tracer.Trace("gt_only_start", map[string]any{"size": len(table)})
		s, err := driver.Generate(table)
		if err != nil {
			return nil, err
		}
		cfg.tracer.Trace("gt_only_done", map[string]any{"gates": s.Len()})
		return s, nil
	}

	// Hybrid: RM pre-pass, then GT finishes whatever residual remains.
	cfg.tracer.Trace("hybrid_rm_pass_start", map[string]any{"size": len(table)})
	rmScheme, residual, err := rmgen.New().WithMaxWeight(cfg.rmMaxWeight).Generate(table)
	if err != nil {
		return nil, err
	}
	cfg.tracer.Trace("hybrid_rm_pass_done", map[string]any{"gates": rmScheme.Len(), "residual_is_identity": residual.IsIdentity()})

	if residual.IsIdentity() {
		return rmScheme, nil
	}

	cfg.tracer.Trace("hybrid_gt_pass_start", map[string]any{"size": len(residual)})
	gtScheme, err := driver.Generate(residual)
	if err != nil {
		return nil, err
	}
	cfg.tracer.Trace("hybrid_gt_pass_done", map[string]any{"gates": gtScheme.Len()})

	return concat(gtScheme, rmScheme), nil
}

// concat returns a new Scheme applying first's gates, then second's, in
// that order. Used to compose the hybrid path: since rmgen.Generate builds
// its scheme R such that R.Apply(residual[x]) == table[x], and gt.Generate
// builds G such that G.Apply(x) == residual[x], the combined scheme must
// run G first and R second to reproduce table[x] for every x.
func concat(first, second *scheme.Scheme) *scheme.Scheme {
	out := scheme.New()
	for _, e := range first.Elements() {
		out.PushBack(e)
	}
	for _, e := range second.Elements() {
		out.PushBack(e)
	}
	return out
}
