package poseidon

import "github.com/dlogzk/plonkipa/curve"

// SpongeFr is the scalar-field sponge (FrSponge of §4.6): absorbs proof
// evaluations and squeezes the scalar-field part of the Fiat–Shamir
// transcript (§4.7's ScalarChallenge and round-challenge derivations).
type SpongeFr struct {
	inner Sponge[curve.ScalarField, *curve.ScalarField]
}

// FrWidth/FrRoundsFull/FrAlpha fix the scalar-field permutation shape used
// throughout this module; §4.6 leaves the concrete width/round-count to the
// implementation, so these are pinned here rather than left as magic
// numbers scattered through callers.
const (
	FrWidth      = 3
	FrRoundsFull = 63
	FrAlpha      = 5
)

var frParams = GenerateParameters[curve.ScalarField, *curve.ScalarField]("plonkipa/poseidon/fr", FrWidth, FrRoundsFull, FrAlpha)

// NewSpongeFr returns a fresh scalar-field sponge.
func NewSpongeFr() SpongeFr {
	return SpongeFr{inner: NewSponge(frParams)}
}

func (s *SpongeFr) Absorb(x *curve.ScalarField) { s.inner.Absorb(x) }
func (s *SpongeFr) Squeeze() curve.ScalarField  { return s.inner.Squeeze() }
func (s *SpongeFr) Fork() SpongeFr              { return SpongeFr{inner: s.inner.Fork()} }

// FrParams exposes the scalar-field permutation parameters so the Poseidon
// custom gate (gates.Poseidon) can check one round transition the same way
// SpongeFr does internally.
func FrParams() *Parameters[curve.ScalarField, *curve.ScalarField] { return frParams }
