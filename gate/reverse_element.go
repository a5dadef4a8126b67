// Package gate implements ReverseElement, the generalized Toffoli gate: a
// single target bit, a set of control bits, and an optional set of control
// bits interpreted as active-low. Every gate is its own inverse.
package gate

import (
	"fmt"

	"github.com/katalvlaran/revlogic/bitword"
	"github.com/katalvlaran/revlogic/ttable"
)

// ReverseElement is one generalized Toffoli gate over an n-bit word.
//
//   - TargetMask has exactly one bit set: the bit the gate flips.
//   - ControlMask is disjoint from TargetMask: the bits that must all read 1
//     (or 0, where InversionMask says so) for the gate to fire.
//   - InversionMask is a subset of ControlMask: bits where the control is
//     active-low.
type ReverseElement struct {
	N             int
	TargetMask    uint64
	ControlMask   uint64
	InversionMask uint64
}

// New builds an uncontrolled NOT: a ReverseElement with the given target bit
// and no controls.
func New(n int, targetMask uint64) (ReverseElement, error) {
	return NewControlled(n, targetMask, 0)
}

// NewControlled builds a ReverseElement with the given target and control
// masks and no inversion. Returns ErrBadTarget if targetMask doesn't have
// exactly one bit set, or ErrMaskOverlap if target and control overlap.
func NewControlled(n int, targetMask, controlMask uint64) (ReverseElement, error) {
	return NewInverted(n, targetMask, controlMask, 0)
}

// NewInverted builds a fully general ReverseElement and validates its
// invariants: exactly one target bit, target/control disjoint, inversion a
// subset of control. These checks are input validation and are never
// elided regardless of synerr.StrictMode.
func NewInverted(n int, targetMask, controlMask, inversionMask uint64) (ReverseElement, error) {
	if bitword.PopCount(targetMask) != 1 {
		return ReverseElement{}, fmt.Errorf("gate.New: target=%#x: %w", targetMask, ErrBadTarget)
	}
	if targetMask&controlMask != 0 {
		return ReverseElement{}, fmt.Errorf("gate.New: target=%#x control=%#x: %w", targetMask, controlMask, ErrMaskOverlap)
	}
	if inversionMask&^controlMask != 0 {
		return ReverseElement{}, fmt.Errorf("gate.New: inversion=%#x not a subset of control=%#x: %w", inversionMask, controlMask, ErrMaskOverlap)
	}
	return ReverseElement{N: n, TargetMask: targetMask, ControlMask: controlMask, InversionMask: inversionMask}, nil
}

// Apply returns the effect of the gate on word w: if every control bit
// reads 1 after XOR-ing in InversionMask, flip TargetMask; otherwise return
// w unchanged.
func (e ReverseElement) Apply(w uint64) uint64 {
	if (w^e.InversionMask)&e.ControlMask == e.ControlMask {
		return w ^ e.TargetMask
	}
	return w
}

// ApplyToTable mutates table in place, in ascending index order, applying
// Apply to every entry. It is its own inverse: applying the same element
// twice restores the original table.
func (e ReverseElement) ApplyToTable(table ttable.TruthTable) {
	for i, w := range table {
		table[i] = e.Apply(w)
	}
}

// Inverse returns the element itself: every ReverseElement is an
// involution.
func (e ReverseElement) Inverse() ReverseElement {
	return e
}

// Equal reports whether e and o describe the same gate.
func (e ReverseElement) Equal(o ReverseElement) bool {
	return e.N == o.N && e.TargetMask == o.TargetMask &&
		e.ControlMask == o.ControlMask && e.InversionMask == o.InversionMask
}

// String renders the gate as "NOT[n=..](target)" when it has no controls, or
// as "CNOT[n=..](target=.., control=.., inv=..)" with all three masks in hex,
// for logs and test failures.
func (e ReverseElement) String() string {
	if e.ControlMask == 0 {
		return fmt.Sprintf("NOT[n=%d](%#x)", e.N, e.TargetMask)
	}
	return fmt.Sprintf("CNOT[n=%d](target=%#x, control=%#x, inv=%#x)", e.N, e.TargetMask, e.ControlMask, e.InversionMask)
}
