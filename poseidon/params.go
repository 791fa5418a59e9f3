package poseidon

// Parameters holds a Poseidon permutation instance: state width, the number
// of full rounds (this instantiation runs full rounds only, per §4.6 — no
// partial-round split), the round constants (one width-sized vector per
// round) and the MDS matrix, plus the S-box exponent.
//
// T is the field element type (ScalarField or BaseField); PT is its
// pointer-receiver method set, supplied by callers as the Field[T] type
// argument.
type Parameters[T any, PT Field[T]] struct {
	Width      int
	RoundsFull int
	Alpha      uint64
	MDS        [][]T
	RoundConstants [][]T
}

// round returns the width-length round constant vector for round r.
func (p *Parameters[T, PT]) round(r int) []T {
	return p.RoundConstants[r]
}
