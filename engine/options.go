// Package engine exposes the one operation external callers need:
// Synthesize, which turns a truth table into a Scheme. It dispatches
// between the RM synthesizer, the GT synthesizer, or both chained as a
// pre-pass/fallback pair, per the Options a caller supplies.
//
// The configuration pattern generalizes builder.BuilderOption/builderConfig
// (github.com/katalvlaran/revlogic/_examples/katalvlaran-lvlath's
// builder/config.go): Option mutates an unexported options struct, later
// options win, nil-valued options are no-ops.
package engine

// Option customizes a Synthesize call. Option constructors never panic at
// runtime.
type Option func(cfg *options)

// options holds the resolved configuration for one Synthesize call.
type options struct {
	completeToEven bool
	useRM          bool
	useGT          bool
	rmMaxWeight    int
	edgeExplicit   bool
	tracer         Tracer
	debug          DebugPolicy
}

// newOptions returns the default configuration — both generators enabled
// (hybrid), no weight bound, majority-coverage edge search, no tracing —
// then applies opts in order.
func newOptions(opts ...Option) *options {
	cfg := &options{
		useRM:       true,
		useGT:       true,
		rmMaxWeight: -1,
		tracer:      NopTracer{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCompletePermutationToEven toggles the complete-permutation-to-even
// option: when true, an odd permutation is extended to even by pairing two
// previously fixed points before GT synthesis begins.
func WithCompletePermutationToEven(v bool) Option {
	return func(cfg *options) { cfg.completeToEven = v }
}

// WithRMGenerator toggles whether the RM synthesizer runs at all.
func WithRMGenerator(v bool) Option {
	return func(cfg *options) { cfg.useRM = v }
}

// WithGTGenerator toggles whether the GT synthesizer runs.
func WithGTGenerator(v bool) Option {
	return func(cfg *options) { cfg.useGT = v }
}

// WithRMMaxWeight bounds the spectrum-row popcount the RM synthesizer will
// process before stopping early and handing its residual to GT. Negative
// means unbounded. With GT disabled, the residual is not synthesized: the
// RM scheme built up to the bound is returned as is, and it does not
// realize the table when the bound was hit.
func WithRMMaxWeight(maxWeight int) Option {
	return func(cfg *options) { cfg.rmMaxWeight = maxWeight }
}

// WithEdgeExplicitMode requires GT's Boolean edge search to find a subcube
// fully covered by candidate transpositions rather than a majority-covered
// one.
func WithEdgeExplicitMode(v bool) Option {
	return func(cfg *options) { cfg.edgeExplicit = v }
}

// WithTracer installs t as the engine's tracing sink. A nil t is a no-op,
// leaving the previously configured tracer (or NopTracer) in place.
func WithTracer(t Tracer) Option {
	return func(cfg *options) {
		if t != nil {
			cfg.tracer = t
		}
	}
}

// WithDebugPolicy installs p as the engine's debug override policy, an
// injectable-policy-object alternative to ad hoc debug flags.
func WithDebugPolicy(p DebugPolicy) Option {
	return func(cfg *options) { cfg.debug = p }
}
