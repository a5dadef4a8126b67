package permutation

import "fmt"

// Permutation is an ordered multiset of disjoint, non-trivial (length >= 2)
// cycles.
type Permutation struct {
	cycles []Cycle
}

// Empty returns the identity permutation (no cycles).
func Empty() Permutation {
	return Permutation{}
}

// Append adds a cycle to the permutation. Callers are responsible for
// disjointness; PermutationUtils and FromMapping both guarantee it.
func (p *Permutation) Append(c Cycle) {
	p.cycles = append(p.cycles, c)
}

// Cycles returns the permutation's cycles in order.
func (p Permutation) Cycles() []Cycle {
	out := make([]Cycle, len(p.cycles))
	copy(out, p.cycles)
	return out
}

// Length returns the number of cycles.
func (p Permutation) Length() int {
	return len(p.cycles)
}

// IsEmpty reports whether the permutation has no cycles (is the identity).
func (p Permutation) IsEmpty() bool {
	return len(p.cycles) == 0
}

// ElementCount returns the sum of cycle lengths, i.e. the number of points
// actually moved.
func (p Permutation) ElementCount() int {
	total := 0
	for _, c := range p.cycles {
		total += c.Length()
	}
	return total
}

// IsEven reports whether the permutation's parity is even: the sum, over
// cycles, of (length-1) is even.
func (p Permutation) IsEven() bool {
	sum := 0
	for _, c := range p.cycles {
		sum += c.TranspositionCount()
	}
	return sum%2 == 0
}

// MovedPoints returns the set of points any cycle moves.
func (p Permutation) MovedPoints() map[uint64]bool {
	moved := make(map[uint64]bool)
	for _, c := range p.cycles {
		for _, x := range c.Points() {
			moved[x] = true
		}
	}
	return moved
}

// Image returns the image of x: the point it maps to under whichever cycle
// contains it, or x itself if no cycle moves it.
func (p Permutation) Image(x uint64) uint64 {
	for _, c := range p.cycles {
		if c.Contains(x) {
			return c.Image(x)
		}
	}
	return x
}

// Mapping expands the permutation into an explicit bijection array of the
// given size (size must cover every moved point); unmoved points map to
// themselves.
func (p Permutation) Mapping(size int) []uint64 {
	m := make([]uint64, size)
	for i := range m {
		m[i] = uint64(i)
	}
	for _, c := range p.cycles {
		pts := c.Points()
		for i, x := range pts {
			m[x] = pts[(i+1)%len(pts)]
		}
	}
	return m
}

// CompleteToEven appends a transposition of two previously-unused fixed
// points to make an odd permutation even. tableSize
// bounds the domain to search for fixed points in [0, tableSize). Returns
// ErrCannotCompleteToEven if fewer than two fixed points exist.
func (p *Permutation) CompleteToEven(tableSize int) error {
	if p.IsEven() {
		return nil
	}
	moved := p.MovedPoints()
	fixed := make([]uint64, 0, 2)
	for x := 0; x < tableSize && len(fixed) < 2; x++ {
		if !moved[uint64(x)] {
			fixed = append(fixed, uint64(x))
		}
	}
	if len(fixed) < 2 {
		return ErrCannotCompleteToEven
	}
	p.Append(NewCycle([]uint64{fixed[0], fixed[1]}))
	return nil
}

// String renders the permutation as its cycle notation, for logs and test
// failures.
func (p Permutation) String() string {
	if p.IsEmpty() {
		return "()"
	}
	s := ""
	for _, c := range p.cycles {
		s += "("
		for i, x := range c.Points() {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%d", x)
		}
		s += ")"
	}
	return s
}
