package poseidon

import "math/big"

// Permute runs the Poseidon permutation over state in place. Every round is
// a full round (§4.6: "ROUNDS_FULL full rounds, no partial rounds" — unlike
// the more common full+partial split): add round constants, apply the S-box
// x^alpha to each element, then multiply by the MDS matrix.
func Permute[T any, PT Field[T]](params *Parameters[T, PT], state []T) {
	if len(state) != params.Width {
		panic("poseidon: state width mismatch")
	}
	alpha := new(big.Int).SetUint64(params.Alpha)

	for r := 0; r < params.RoundsFull; r++ {
		rc := params.round(r)
		for i := range state {
			PT(&state[i]).Add(&state[i], &rc[i])
			PT(&state[i]).Exp(state[i], alpha)
		}
		mix(params, state)
	}
}

// OneRound applies round index r of the permutation to a copy of state and
// returns the result, leaving state untouched. The Poseidon custom gate
// (gates.Poseidon) checks one round per row against this rather than
// duplicating the round arithmetic.
func OneRound[T any, PT Field[T]](params *Parameters[T, PT], r int, state []T) []T {
	if len(state) != params.Width {
		panic("poseidon: state width mismatch")
	}
	alpha := new(big.Int).SetUint64(params.Alpha)
	out := make([]T, params.Width)
	copy(out, state)

	rc := params.round(r)
	for i := range out {
		PT(&out[i]).Add(&out[i], &rc[i])
		PT(&out[i]).Exp(out[i], alpha)
	}
	mix(params, out)
	return out
}

// mix replaces state with MDS * state.
func mix[T any, PT Field[T]](params *Parameters[T, PT], state []T) {
	width := params.Width
	next := make([]T, width)
	for i := 0; i < width; i++ {
		var acc T
		PT(&acc).SetZero()
		row := params.MDS[i]
		for j := 0; j < width; j++ {
			var term T
			PT(&term).Mul(&row[j], &state[j])
			PT(&acc).Add(&acc, &term)
		}
		next[i] = acc
	}
	copy(state, next)
}
