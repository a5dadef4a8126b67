package permutation

import "errors"

// ErrNotAPermutation indicates the input truth table is not a bijection:
// either an output is outside [0, len(table)) or two inputs share an output.
var ErrNotAPermutation = errors.New("permutation: truth table is not a bijection")

// ErrCannotCompleteToEven indicates an odd permutation was asked to
// complete to even but fewer than two fixed points remain to pair up.
var ErrCannotCompleteToEven = errors.New("permutation: fewer than two fixed points available")
