package engine

// Tracer receives structured progress events from a Synthesize call, an
// interface replacement for ad hoc debug logging. Generalized from
// flow.FlowOptions.Verbose's fmt.Printf-on-a-bool pattern
// (_examples/katalvlaran-lvlath/flow/edmonds_karp.go) into something a
// caller can redirect without the engine depending on any particular
// logging library.
type Tracer interface {
	Trace(event string, fields map[string]any)
}

// NopTracer discards every event. It is the zero-value default: Synthesize
// never needs to check whether a tracer is present.
type NopTracer struct{}

// Trace implements Tracer by doing nothing.
func (NopTracer) Trace(string, map[string]any) {}

// DebugPolicy toggles alternate synthesis branches for deterministic
// testing, an injectable-policy-object alternative to ad hoc debug flags.
type DebugPolicy struct {
	// ForceRightIsBetter makes GT's left/right residual comparison always
	// prefer the right-multiplication branch.
	ForceRightIsBetter bool
}
