// Package curve is the thin façade this module puts over the external
// field/curve collaborator. Field and curve arithmetic are out of scope for
// this spec (assumed available); everything here is a re-export or a small
// deterministic helper, never a from-scratch implementation of arithmetic.
//
// The concrete instantiation is BLS12-377: its scalar field Fr is F_r, its
// base (coordinate) field Fp is F_q, and its G1 group is the commitment
// curve. BLS12-377's Fp is BW6-761's Fr, the amicable relationship the data
// model (§3) gestures at without pinning a modulus.
package curve

import (
	"io"
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ScalarField is F_r, the scalar field proofs and commitments are built over.
type ScalarField = fr.Element

// BaseField is F_q, the coordinate field of Point, used by the base-field
// sponge (FqSponge) and the group map.
type BaseField = fp.Element

// Point is a short-Weierstrass affine curve point, or the point at infinity.
type Point = bls12377.G1Affine

// Jac is the Jacobian (projective) form used for batched addition.
type Jac = bls12377.G1Jac

// Parameters bundles the curve-specific constants this spec requires to be
// injected rather than hard-coded (§3, §9 Open Question #2).
type Parameters struct {
	// EndoQ satisfies ϕ((x,y)) = (EndoQ*x, y) on Point, the base-field half
	// of the curve endomorphism.
	EndoQ BaseField
	// EndoR satisfies [EndoR]P = ϕ(P) on the prime-order subgroup, the
	// scalar-field half used by ScalarChallenge reconstruction.
	EndoR ScalarField
	// ChallengeNonResidue is the fixed quadratic non-residue of F_r used to
	// coerce a squeezed challenge into one with a square root (§4.7). The
	// spec's source hard-codes 7; here it is a parameter of the curve
	// instantiation.
	ChallengeNonResidue ScalarField
}

// BW12377 is the concrete curve parameterization used throughout this
// module. EndoQ/EndoR are the standard GLV endomorphism constants for
// BLS12-377's G1 (cube roots of unity in Fp/Fr respectively); callers that
// need a different curve supply their own Parameters value instead of using
// this one.
var BW12377 = Parameters{
	EndoQ: func() BaseField {
		var e BaseField
		// Primitive cube root of unity in Fp (GLV beta for BLS12-377 G1).
		e.SetString("80949648264912719408558363140637477264845294720710499478137287262712535938301461879813459410945")
		return e
	}(),
	EndoR: func() ScalarField {
		var e ScalarField
		// Primitive cube root of unity in Fr (GLV lambda for BLS12-377 G1).
		e.SetString("91893752504881257701523279626832445440")
		return e
	}(),
	ChallengeNonResidue: func() ScalarField {
		var e ScalarField
		e.SetUint64(7)
		return e
	}(),
}

// Generator returns the standard G1 generator of the curve.
func Generator() Point {
	_, _, g1, _ := bls12377.Generators()
	return g1
}

// MultiExpConfig controls the parallelism of a batched scalar multiplication;
// it is re-exported so callers configuring internal/msm don't need to reach
// into gnark-crypto directly.
type MultiExpConfig = bls12377.MultiExpConfig // re-export ecc.MultiExpConfig alias under the curve package

// MultiExp computes sum_i scalars[i]*points[i], returning the Jacobian
// accumulator. It is the default (CPU, Pippenger-under-the-hood) multi-scalar
// multiplication kernel; internal/msm.Kernel wraps this behind a pluggable
// seam (§9).
func MultiExp(points []Point, scalars []ScalarField, config MultiExpConfig) (*Jac, error) {
	var acc Jac
	_, err := acc.MultiExp(points, scalars, config)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// RandomScalar draws a uniform ScalarField element (crypto/rand-backed, via
// gnark-crypto's own Element.SetRandom — randomness generation itself is
// out of scope for this module, per its Non-goals; this just calls the
// assumed-available primitive).
func RandomScalar() (ScalarField, error) {
	var e ScalarField
	_, err := e.SetRandom()
	return e, err
}

// ScalarToBigInt reduces a ScalarField element to its canonical big.Int
// representation, as required by Point.ScalarMultiplication.
func ScalarToBigInt(s *ScalarField) *big.Int {
	var b big.Int
	s.BigInt(&b)
	return &b
}

// ScalarMul returns [s]P in affine form.
func ScalarMul(p Point, s *ScalarField) Point {
	var res Point
	res.ScalarMultiplication(&p, ScalarToBigInt(s))
	return res
}

// Encoder/Decoder re-export gnark-crypto's canonical point encoding
// (NewEncoder/NewDecoder, WriteTo/ReadFrom-friendly), the pattern
// `famouswizard-gnark`'s mpcsetup marshal.go uses throughout (§6).
type Encoder = bls12377.Encoder
type Decoder = bls12377.Decoder

func NewEncoder(w io.Writer, options ...func(*Encoder)) *Encoder {
	return bls12377.NewEncoder(w, options...)
}

func NewDecoder(r io.Reader, options ...func(*Decoder)) *Decoder {
	return bls12377.NewDecoder(r, options...)
}

// CurveB is the short-Weierstrass constant term of BLS12-377's G1 equation
// y^2 = x^3 + CurveB (A = 0); groupmap needs it to test candidate x
// coordinates for a square right-hand side.
func CurveB() BaseField {
	var b BaseField
	b.SetUint64(1)
	return b
}

// JacToAffine batch-normalizes Jacobian points to affine form.
func JacToAffine(j *Jac) Point {
	var p Point
	p.FromJacobian(j)
	return p
}
