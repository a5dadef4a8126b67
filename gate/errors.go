package gate

import "errors"

// ErrMaskOverlap indicates that a ReverseElement's target and control masks
// share at least one bit, or that its inversion mask is not a subset of its
// control mask. These are input-validation checks and are never elided by
// synerr.StrictMode.
var ErrMaskOverlap = errors.New("gate: target/control mask overlap or invalid inversion mask")

// ErrBadTarget indicates a target mask that does not have exactly one bit
// set.
var ErrBadTarget = errors.New("gate: target mask must have exactly one bit set")
