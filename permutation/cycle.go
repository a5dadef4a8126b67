package permutation

// Cycle is a non-empty ordered sequence [a0, a1, ..., a_{k-1}] meaning
// a_i maps to a_{(i+1) mod k}. Length-1 cycles (fixed points) are never
// constructed; Cycle always has length >= 2.
type Cycle struct {
	points []uint64
	cursor int // stateful read position for NextTransposition
}

// NewCycle builds a Cycle from an ordered list of points. It panics if
// points has fewer than two elements — callers (findPieces/mergePieces,
// FromMapping) never hand it a fixed point, by construction.
func NewCycle(points []uint64) Cycle {
	if len(points) < 2 {
		panic("permutation: a Cycle must have length >= 2")
	}
	cp := make([]uint64, len(points))
	copy(cp, points)
	return Cycle{points: cp}
}

// Length returns the number of points in the cycle.
func (c Cycle) Length() int {
	return len(c.points)
}

// At returns the point at position i (0-based, mod Length()).
func (c Cycle) At(i int) uint64 {
	return c.points[((i%len(c.points))+len(c.points))%len(c.points)]
}

// Points returns the cycle's points in order, a0 first.
func (c Cycle) Points() []uint64 {
	out := make([]uint64, len(c.points))
	copy(out, c.points)
	return out
}

// Image returns the image of x under this cycle: the point it maps to if x
// appears in the cycle, and x itself (a fixed point) otherwise.
func (c Cycle) Image(x uint64) uint64 {
	for i, p := range c.points {
		if p == x {
			return c.points[(i+1)%len(c.points)]
		}
	}
	return x
}

// Contains reports whether x is one of the cycle's points.
func (c Cycle) Contains(x uint64) bool {
	for _, p := range c.points {
		if p == x {
			return true
		}
	}
	return false
}

// ShiftToPutSmallestFirst rotates the cycle in place so its smallest point
// is a0, giving a canonical form for comparing two cycles that describe the
// same orbit.
func (c *Cycle) ShiftToPutSmallestFirst() {
	if len(c.points) == 0 {
		return
	}
	minIdx := 0
	for i, p := range c.points {
		if p < c.points[minIdx] {
			minIdx = i
		}
	}
	if minIdx == 0 {
		return
	}
	rotated := make([]uint64, len(c.points))
	for i := range c.points {
		rotated[i] = c.points[(minIdx+i)%len(c.points)]
	}
	c.points = rotated
}

// TranspositionCount returns the number of transpositions a greedy
// decomposition of this cycle yields: Length()-1.
func (c Cycle) TranspositionCount() int {
	return len(c.points) - 1
}

// ResetCursor rewinds NextTransposition back to the start of the cycle.
func (c *Cycle) ResetCursor() {
	c.cursor = 0
}

// NextTransposition is a stateful cursor yielding the cycle's
// Length()-1 transpositions one at a time, anchored at a0:
// {a0,a1}, {a0,a2}, ..., {a0,a_{k-1}}. It returns ok == false once
// exhausted; call ResetCursor to iterate again.
func (c *Cycle) NextTransposition() (t Transposition, ok bool) {
	if c.cursor >= len(c.points)-1 {
		return Transposition{}, false
	}
	c.cursor++
	return NewTransposition(c.points[0], c.points[c.cursor]), true
}

// Transpositions returns the full greedy decomposition of the cycle as a
// slice, without disturbing the stateful cursor.
func (c Cycle) Transpositions() []Transposition {
	out := make([]Transposition, 0, len(c.points)-1)
	for i := 1; i < len(c.points); i++ {
		out = append(out, NewTransposition(c.points[0], c.points[i]))
	}
	return out
}
