// Package poseidon implements the Poseidon permutation (§4.6) and the two
// sponge instantiations built over it. Grounded on the sponge shape of
// other_examples' PoseidonSponge (Absorb/Squeeze/absorbBlock), adapted to
// full-rounds-only parameters and to a generic field so the permutation core
// is written once rather than once per field.
package poseidon

// Sponge is a duplex-free absorb/squeeze sponge over the Poseidon
// permutation: capacity 1 (the last state element), rate Width-1.
type Sponge[T any, PT Field[T]] struct {
	params     *Parameters[T, PT]
	state      []T
	absorbPos  int
	squeezePos int
	squeezing  bool
}

// NewSponge builds a fresh sponge with an all-zero initial state.
func NewSponge[T any, PT Field[T]](params *Parameters[T, PT]) Sponge[T, PT] {
	state := make([]T, params.Width)
	for i := range state {
		PT(&state[i]).SetZero()
	}
	return Sponge[T, PT]{params: params, state: state}
}

func (s *Sponge[T, PT]) rate() int { return s.params.Width - 1 }

// Absorb folds a field element into the sponge's rate portion, permuting
// whenever the rate fills up. Absorbing after squeezing has begun restarts
// the absorb phase (matches the Fiat–Shamir "absorb challenge mid-protocol"
// use in §4.7).
func (s *Sponge[T, PT]) Absorb(x *T) {
	if s.squeezing {
		s.squeezing = false
		s.absorbPos = 0
	}
	if s.absorbPos == s.rate() {
		Permute(s.params, s.state)
		s.absorbPos = 0
	}
	PT(&s.state[s.absorbPos]).Add(&s.state[s.absorbPos], x)
	s.absorbPos++
}

// Squeeze extracts the next rate-sized output element, permuting as needed.
func (s *Sponge[T, PT]) Squeeze() T {
	if !s.squeezing || s.squeezePos == s.rate() {
		Permute(s.params, s.state)
		s.squeezing = true
		s.squeezePos = 0
	}
	out := s.state[s.squeezePos]
	s.squeezePos++
	return out
}

// Fork returns an independent copy of the sponge's state, for the
// "branch the transcript without mutating the shared prefix" pattern §5
// calls out (e.g. trying several challenge derivations from one point).
func (s *Sponge[T, PT]) Fork() Sponge[T, PT] {
	state := make([]T, len(s.state))
	copy(state, s.state)
	return Sponge[T, PT]{
		params:     s.params,
		state:      state,
		absorbPos:  s.absorbPos,
		squeezePos: s.squeezePos,
		squeezing:  s.squeezing,
	}
}
