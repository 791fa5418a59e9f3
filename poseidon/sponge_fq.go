package poseidon

import "github.com/dlogzk/plonkipa/curve"

// SpongeFq is the base-field sponge (FqSponge of §4.6): absorbs curve
// points (via their affine coordinates, themselves base-field elements) and
// squeezes base-field challenges, the sponge the IPA prover/verifier use to
// commit to round (L, R) pairs before the scalar-field sponge takes over.
type SpongeFq struct {
	inner Sponge[curve.BaseField, *curve.BaseField]
}

const (
	FqWidth      = 3
	FqRoundsFull = 63
	FqAlpha      = 5
)

var fqParams = GenerateParameters[curve.BaseField, *curve.BaseField]("plonkipa/poseidon/fq", FqWidth, FqRoundsFull, FqAlpha)

// NewSpongeFq returns a fresh base-field sponge.
func NewSpongeFq() SpongeFq {
	return SpongeFq{inner: NewSponge(fqParams)}
}

func (s *SpongeFq) Absorb(x *curve.BaseField) { s.inner.Absorb(x) }
func (s *SpongeFq) Squeeze() curve.BaseField  { return s.inner.Squeeze() }
func (s *SpongeFq) Fork() SpongeFq            { return SpongeFq{inner: s.inner.Fork()} }

// AbsorbPoint folds a curve point's affine coordinates into the sponge.
// The point at infinity is rejected (errs.ErrOracleCommit) since absorbing
// (0,0) would silently collide with a legitimate point on some curves.
func (s *SpongeFq) AbsorbPoint(p *curve.Point) error {
	if p.IsInfinity() {
		return errOracleCommitInfinity
	}
	s.Absorb(&p.X)
	s.Absorb(&p.Y)
	return nil
}
