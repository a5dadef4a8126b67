// Package rmgen synthesizes a Scheme by repeatedly examining the
// Reed-Muller spectrum of a working truth table and emitting gates that
// zero out non-canonical rows, until the table reaches canonical
// (identity) form or a configured weight bound hands the remainder to
// another synthesizer.
//
// Ported from _examples/original_source/RmGenerator.cpp's generate()
// and applyTransformation(), restructured around the rmspectrum and gate
// packages instead of the original's inline word arithmetic.
package rmgen

import (
	"fmt"

	"github.com/katalvlaran/revlogic/bitword"
	"github.com/katalvlaran/revlogic/gate"
	"github.com/katalvlaran/revlogic/rmspectrum"
	"github.com/katalvlaran/revlogic/scheme"
	"github.com/katalvlaran/revlogic/synerr"
	"github.com/katalvlaran/revlogic/ttable"
)

// Generator drives a truth table toward canonical form row by row.
type Generator struct {
	// MaxWeight bounds the spectrum-row popcount this generator will
	// process; a row whose weight exceeds it stops generation early and
	// returns the scheme built so far alongside the not-yet-canonical
	// residual table, for a fallback synthesizer to finish. Negative means
	// unlimited, which is what New sets; the zero value 0 stops at the first
	// non-canonical row with a nonzero spectrum after the row-0 pass.
	MaxWeight int
}

// New returns a Generator with no weight bound.
func New() *Generator {
	return &Generator{MaxWeight: -1}
}

// WithMaxWeight returns a copy of g with MaxWeight set.
func (g Generator) WithMaxWeight(maxWeight int) *Generator {
	g.MaxWeight = maxWeight
	return &g
}

// Generate drives table toward canonical form, returning the accumulated
// scheme and the residual working table (identity, if generation ran to
// completion; otherwise the table at the point a weight bound was hit).
func (g *Generator) Generate(table ttable.TruthTable) (*scheme.Scheme, ttable.TruthTable, error) {
	working := table.Clone()
	size := len(working)
	n := bitword.BitsForSize(size)
	s := scheme.New()

	emit := func(e gate.ReverseElement) {
		s.PushFront(e)
		e.ApplyToTable(working)
	}

	spectra := rmspectrum.Calculate(working)

	// Row 0: clear every bit set in S[0] with an uncontrolled NOT.
	row0 := spectra[0]
	changed := false
	for mask := uint64(1); mask <= row0; mask <<= 1 {
		if row0&mask == 0 {
			continue
		}
		e, err := gate.New(n, mask)
		if err != nil {
			return nil, nil, err
		}
		emit(e)
		changed = true
	}
	if changed {
		spectra = rmspectrum.Calculate(working)
	}

	msb := uint64(1) << uint(n-1)

	for index := 0; index < size; index++ {
		row := spectra[index]
		if rmspectrum.IsRowIdent(row, index) {
			continue
		}

		if g.MaxWeight >= 0 && bitword.PopCount(row) > g.MaxWeight {
			return s, working, nil
		}

		if rmspectrum.IsVariableRow(index) {
			if row&uint64(index) == 0 {
				mask := msb
				for mask != 0 && row&mask == 0 {
					mask >>= 1
				}
				if mask == 0 || mask == uint64(index) {
					return nil, nil, synerr.New("rmgen.Generate", fmt.Sprintf("failed to process variable row %d: no usable high bit in spectrum row %#x", index, row))
				}
				e, err := gate.NewControlled(n, uint64(index), mask)
				if err != nil {
					return nil, nil, err
				}
				emit(e)
			}

			for mask := uint64(1); mask <= row; mask <<= 1 {
				if mask == uint64(index) || row&mask == 0 {
					continue
				}
				e, err := gate.NewControlled(n, mask, uint64(index))
				if err != nil {
					return nil, nil, err
				}
				emit(e)
			}
		} else {
			var controlMask uint64
			for mask := msb; mask != 0; mask >>= 1 {
				if row&mask != 0 && uint64(index)&mask == 0 {
					controlMask = mask
					break
				}
			}
			if controlMask == 0 {
				return nil, nil, synerr.New("rmgen.Generate", fmt.Sprintf("failed to process non-variable row %d: no usable control bit in spectrum row %#x", index, row))
			}

			var buffered []gate.ReverseElement
			for mask := uint64(1); mask <= row; mask <<= 1 {
				if mask == controlMask || row&mask == 0 {
					continue
				}
				e, err := gate.NewControlled(n, mask, controlMask)
				if err != nil {
					return nil, nil, err
				}
				buffered = append(buffered, e)
				emit(e)
			}

			e, err := gate.NewControlled(n, controlMask, uint64(index))
			if err != nil {
				return nil, nil, err
			}
			emit(e)

			// Propagation check: if some other row of the pre-step spectrum
			// already carries controlMask, flipping it here would break
			// that row's canonical form, so replay the buffered gates.
			needApply := false
			for i, otherRow := range spectra {
				if i == index {
					continue
				}
				if otherRow&controlMask != 0 {
					needApply = true
					break
				}
			}
			if needApply {
				for _, buf := range buffered {
					emit(buf)
				}
			}
		}

		spectra = rmspectrum.Calculate(working)
	}

	return s, working, nil
}
