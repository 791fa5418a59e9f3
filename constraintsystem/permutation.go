package constraintsystem

import (
	"golang.org/x/exp/slices"

	"github.com/dlogzk/plonkipa/witness"
)

// buildPermutation turns the union-find classes built by Connect() into a
// wiring permutation: every copy-constraint class becomes one cycle over
// its member cells, each cell pointing at the next (sorted by (wire, row)
// for a deterministic, reproducible cycle order — without this, two
// semantically identical constraint systems built in a different call
// order could compile to different (but equally valid) sigma permutations,
// which would make proving-key/verifying-key hashes depend on build order).
//
// Grounded on the teacher's getSupportPermutation/buildPermutation
// (backend/plonk/bls12-377/setup.go), generalized from 3 wire columns to
// witness.Width (15).
func (cs *ConstraintSystem) buildPermutation(n int) (sigmaWire, sigmaRow [witness.Width][]int, err error) {
	for w := 0; w < witness.Width; w++ {
		sigmaWire[w] = make([]int, n)
		sigmaRow[w] = make([]int, n)
		for row := 0; row < n; row++ {
			sigmaWire[w][row] = w
			sigmaRow[w][row] = row
		}
	}

	classes := make(map[cell][]cell)
	for w := 0; w < witness.Width; w++ {
		for row := 0; row < n; row++ {
			c := cell{w, row}
			root := cs.find(c)
			classes[root] = append(classes[root], c)
		}
	}

	for _, members := range classes {
		if len(members) < 2 {
			continue
		}
		sorted := append([]cell(nil), members...)
		slices.SortFunc(sorted, func(a, b cell) int {
			if a.wire != b.wire {
				return a.wire - b.wire
			}
			return a.row - b.row
		})

		for i, c := range sorted {
			next := sorted[(i+1)%len(sorted)]
			sigmaWire[c.wire][c.row] = next.wire
			sigmaRow[c.wire][c.row] = next.row
		}
	}

	return sigmaWire, sigmaRow, nil
}
