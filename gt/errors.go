package gt

import "errors"

// ErrNoPartialResult indicates ImplementPartialResult was called on a
// generator prepared over an empty permutation, which never happens through
// the normal Driver loop; surfaced defensively rather than panicking.
var ErrNoPartialResult = errors.New("gt: no partial result to implement")
