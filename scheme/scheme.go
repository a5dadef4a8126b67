// Package scheme implements Scheme, the ordered sequence of gate.ReverseElement
// values a synthesizer emits. It is built on container/list — the stdlib
// analog of the original's deque-with-stable-iterators — so that a
// generator can hold a moving insertion point (a Cursor) while repeatedly
// splicing gate blocks in front of or behind it, the way GtGenerator.cpp's
// Scheme::iterator does.
package scheme

import (
	"container/list"

	"github.com/katalvlaran/revlogic/gate"
)

// Scheme is an ordered sequence of ReverseElements. The empty Scheme is the
// identity. Scheme performs no simplification of its own: the synthesizer
// that builds it owns all optimality decisions.
type Scheme struct {
	elements *list.List
}

// New returns an empty Scheme.
func New() *Scheme {
	return &Scheme{elements: list.New()}
}

// Len returns the number of gates in the scheme.
func (s *Scheme) Len() int {
	return s.elements.Len()
}

// PushFront adds e as the new first gate.
func (s *Scheme) PushFront(e gate.ReverseElement) {
	s.elements.PushFront(e)
}

// PushBack adds e as the new last gate.
func (s *Scheme) PushBack(e gate.ReverseElement) {
	s.elements.PushBack(e)
}

// Elements returns the gates in forward (application) order.
func (s *Scheme) Elements() []gate.ReverseElement {
	out := make([]gate.ReverseElement, 0, s.elements.Len())
	for el := s.elements.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(gate.ReverseElement))
	}
	return out
}

// ReverseElements returns the gates in reverse order.
func (s *Scheme) ReverseElements() []gate.ReverseElement {
	out := make([]gate.ReverseElement, 0, s.elements.Len())
	for el := s.elements.Back(); el != nil; el = el.Prev() {
		out = append(out, el.Value.(gate.ReverseElement))
	}
	return out
}

// Apply runs every gate, in order, against word w and returns the result.
func (s *Scheme) Apply(w uint64) uint64 {
	for el := s.elements.Front(); el != nil; el = el.Next() {
		w = el.Value.(gate.ReverseElement).Apply(w)
	}
	return w
}

// ApplyToTable runs the whole scheme against every entry of table, in place.
func (s *Scheme) ApplyToTable(table []uint64) {
	for i, w := range table {
		table[i] = s.Apply(w)
	}
}

// Reversed returns a new Scheme with the same gates in reverse order. Since
// every ReverseElement is its own inverse, composing a scheme with its
// Reversed() yields the identity.
func (s *Scheme) Reversed() *Scheme {
	r := New()
	for el := s.elements.Front(); el != nil; el = el.Next() {
		r.PushFront(el.Value.(gate.ReverseElement))
	}
	return r
}

// Cursor is a stable position within a Scheme, used by generators that need
// to insert gate blocks at a moving point (see gt.Driver). The Cursor
// returned by End() denotes "one past the last element"; inserting there
// appends.
type Cursor struct {
	s    *Scheme
	elem *list.Element // nil means End()
}

// Front returns a Cursor at the first element, or End() if the scheme is
// empty.
func (s *Scheme) Front() Cursor {
	return Cursor{s: s, elem: s.elements.Front()}
}

// End returns the past-the-end Cursor.
func (s *Scheme) End() Cursor {
	return Cursor{s: s, elem: nil}
}

// Insert places e immediately before the cursor's current position and
// returns a new Cursor pointing at the freshly inserted element.
func (c Cursor) Insert(e gate.ReverseElement) Cursor {
	var el *list.Element
	if c.elem == nil {
		el = c.s.elements.PushBack(e)
	} else {
		el = c.s.elements.InsertBefore(e, c.elem)
	}
	return Cursor{s: c.s, elem: el}
}

// Advance moves the cursor forward by n positions (n >= 0), stopping at
// End() if it runs out of elements first.
func (c Cursor) Advance(n int) Cursor {
	cur := c.elem
	for i := 0; i < n && cur != nil; i++ {
		cur = cur.Next()
	}
	return Cursor{s: c.s, elem: cur}
}
