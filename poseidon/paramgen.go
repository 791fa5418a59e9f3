package poseidon

import (
	"crypto/sha256"
	"encoding/binary"
)

// GenerateParameters deterministically derives a full set of Poseidon
// parameters from a domain-separation label, grounded on the
// generateRoundConstants/generateMDS helpers of other_examples' poseidon.go
// (a PRG-seeded generator), adapted to produce values in an arbitrary field
// T via SetBytes rather than being hardwired to one modulus.
//
// The MDS matrix is a Cauchy matrix (M[i][j] = 1/(x_i - y_j), x_i and y_j
// drawn from two disjoint PRG streams), which is MDS for any field as long
// as the x_i and y_j are pairwise distinct — true with overwhelming
// probability for a field this large.
func GenerateParameters[T any, PT Field[T]](label string, width, roundsFull int, alpha uint64) *Parameters[T, PT] {
	prg := newLabelPRG[T, PT](label)

	rc := make([][]T, roundsFull)
	for r := range rc {
		row := make([]T, width)
		for i := range row {
			row[i] = prg.nextElement()
		}
		rc[r] = row
	}

	xs := make([]T, width)
	ys := make([]T, width)
	for i := 0; i < width; i++ {
		xs[i] = prg.nextElement()
		ys[i] = prg.nextElement()
	}
	mds := make([][]T, width)
	for i := 0; i < width; i++ {
		row := make([]T, width)
		for j := 0; j < width; j++ {
			var negYj, diff T
			PT(&negYj).Neg(&ys[j])
			PT(&diff).Add(&xs[i], &negYj)
			PT(&row[j]).Inverse(&diff)
		}
		mds[i] = row
	}

	return &Parameters[T, PT]{
		Width:          width,
		RoundsFull:     roundsFull,
		Alpha:          alpha,
		MDS:            mds,
		RoundConstants: rc,
	}
}

// labelPRG is a simple counter-mode SHA-256 stream, domain-separated by
// label, used only to seed Poseidon constants deterministically (this is a
// parameter generator, not part of the security-critical hash path).
type labelPRG[T any, PT Field[T]] struct {
	label   string
	counter uint64
}

func newLabelPRG[T any, PT Field[T]](label string) *labelPRG[T, PT] {
	return &labelPRG[T, PT]{label: label}
}

func (g *labelPRG[T, PT]) nextElement() T {
	h := sha256.New()
	h.Write([]byte(g.label))
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], g.counter)
	h.Write(ctr[:])
	g.counter++
	digest := h.Sum(nil)

	var e T
	PT(&e).SetBytes(digest)
	return e
}
