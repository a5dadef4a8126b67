package permutation

// Transposition is an unordered pair {X, Y} with X != Y. X is kept as the
// smaller of the two values so that two Transpositions built from the same
// pair of points compare equal.
type Transposition struct {
	X, Y uint64
}

// NewTransposition builds a Transposition from two distinct points, ordering
// them so the smaller one is X.
func NewTransposition(a, b uint64) Transposition {
	if a <= b {
		return Transposition{X: a, Y: b}
	}
	return Transposition{X: b, Y: a}
}

// Support returns the two points the transposition moves.
func (t Transposition) Support() [2]uint64 {
	return [2]uint64{t.X, t.Y}
}

// Has reports whether point p is one of the transposition's endpoints.
func (t Transposition) Has(p uint64) bool {
	return p == t.X || p == t.Y
}

// Other returns the endpoint that isn't p; it panics if p isn't an endpoint,
// matching the invariant that callers only ask this of a point they already
// know is covered.
func (t Transposition) Other(p uint64) uint64 {
	switch p {
	case t.X:
		return t.Y
	case t.Y:
		return t.X
	default:
		panic("permutation: Other called with a point outside the transposition")
	}
}

// Disjoint reports whether t and o share no endpoint.
func (t Transposition) Disjoint(o Transposition) bool {
	return t.X != o.X && t.X != o.Y && t.Y != o.X && t.Y != o.Y
}

// AreDisjoint reports whether every pair of transpositions in ts shares no
// endpoint, i.e. ts forms an involution.
func AreDisjoint(ts []Transposition) bool {
	seen := make(map[uint64]bool, 2*len(ts))
	for _, t := range ts {
		for _, p := range t.Support() {
			if seen[p] {
				return false
			}
			seen[p] = true
		}
	}
	return true
}
