// build.go ports the original's PermutationUtils::createPermutation: walk
// the truth table collecting cycle fragments ("pieces"), merge fragments
// whose endpoints chain together, then wrap the result as a Permutation.
//
// Ported from _examples/original_source/engine/PermutationUtils.cpp
// (findPieces, mergePieces), generalized from the C++ sentinel-in-place
// walk to Go slices with a -1 sentinel.
package permutation

import (
	"fmt"

	"github.com/katalvlaran/revlogic/synerr"
	"github.com/katalvlaran/revlogic/ttable"
)

const pieceUndefined = int64(-1)

// CreatePermutation builds a Permutation from table. If table is not a
// bijection it returns ErrNotAPermutation. If completeToEven is true and the
// resulting permutation is odd, it is extended with a transposition of two
// fixed points (ErrCannotCompleteToEven if fewer than two remain).
func CreatePermutation(table ttable.TruthTable, completeToEven bool) (Permutation, error) {
	if !table.IsPermutation() {
		return Permutation{}, ErrNotAPermutation
	}

	pieces, err := findPieces(table)
	if err != nil {
		return Permutation{}, err
	}
	cycles := mergePieces(pieces)

	var p Permutation
	for _, c := range cycles {
		p.Append(NewCycle(c))
	}

	if completeToEven && !p.IsEven() {
		if err := p.CompleteToEven(len(table)); err != nil {
			return Permutation{}, err
		}
	}

	return p, nil
}

// FromMapping derives a Permutation directly from a total bijection array
// (mapping[x] is the image of x), used internally by Compose to turn an
// explicit composed function back into cycle notation. Unlike
// CreatePermutation, it does not check that mapping is a bijection.
func FromMapping(mapping []uint64) (Permutation, error) {
	pieces, err := findPieces(mapping)
	if err != nil {
		return Permutation{}, err
	}
	cycles := mergePieces(pieces)

	var p Permutation
	for _, c := range cycles {
		p.Append(NewCycle(c))
	}
	return p, nil
}

// Compose returns the permutation equal to applying first, then second,
// i.e. result(x) = second.Image(first.Image(x)), expanded over a domain of
// the given size. This is how gt.PartialGenerator derives left/right
// residuals; see its GetResidualPermutation doc comment.
func Compose(size int, first, second Permutation) (Permutation, error) {
	fm := first.Mapping(size)
	sm := second.Mapping(size)
	out := make([]uint64, size)
	for x := range out {
		out[x] = sm[fm[x]]
	}
	return FromMapping(out)
}

// findPieces walks table by ascending input index, following
// x -> T[x] -> T[T[x]] -> ... and marking each visited output consumed,
// stopping when the walk returns to x (a complete cycle) or reaches an
// already-consumed index (a partial piece, left for mergePieces).
func findPieces(input []uint64) ([][]uint64, error) {
	size := len(input)
	table := make([]int64, size)
	for i, y := range input {
		table[i] = int64(y)
	}

	var pieces [][]uint64
	for x := 0; x < size; x++ {
		y := table[x]
		if y == pieceUndefined {
			continue
		}
		if y == int64(x) {
			table[x] = pieceUndefined
			continue
		}

		piece := []uint64{uint64(x)}
		z := y
		for z != int64(x) {
			if len(piece) > size {
				if err := synerr.NewIfStrict("permutation.findPieces", fmt.Sprintf("piece longer than table size at x=%d", x)); err != nil {
					return nil, err
				}
			}
			piece = append(piece, uint64(z))

			temp := table[z]
			if temp != z && temp != pieceUndefined {
				table[z] = pieceUndefined
				z = temp
			} else {
				table[z] = pieceUndefined
				break
			}
		}
		table[x] = pieceUndefined
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// mergePieces repeatedly scans the fragment list, splicing any fragment
// whose first/last element chains onto another's last/first, until a full
// pass produces no further merges.
func mergePieces(pieces [][]uint64) [][]uint64 {
	current := pieces
	for {
		next := make([][]uint64, 0, len(current))
		anyMerge := false

		for _, piece := range current {
			first := piece[0]
			last := piece[len(piece)-1]
			merged := false

			for i, cyc := range next {
				cycStart := cyc[0]
				cycEnd := cyc[len(cyc)-1]

				switch {
				case cycStart == last:
					combined := make([]uint64, 0, len(piece)-1+len(cyc))
					combined = append(combined, piece[:len(piece)-1]...)
					combined = append(combined, cyc...)
					next[i] = combined
					merged = true
				case cycEnd == first:
					combined := make([]uint64, 0, len(cyc)+len(piece)-1)
					combined = append(combined, cyc...)
					combined = append(combined, piece[1:]...)
					next[i] = combined
					merged = true
				}
				if merged {
					anyMerge = true
					break
				}
			}

			if !merged {
				next = append(next, piece)
			}
		}

		current = next
		if !anyMerge {
			return current
		}
	}
}
