package constraintsystem

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/dlogzk/plonkipa/curve"
)

// Interpolate converts Lagrange-basis values (one per row of d) into
// coefficient form. gnark-crypto's FFTInverse leaves its output
// bit-reversed under the DIF decimation; BitReverse restores natural
// coefficient order, the same FFTInverse+BitReverse pairing the teacher's
// setup/prove code uses throughout.
func Interpolate(d *fft.Domain, values []curve.ScalarField) []curve.ScalarField {
	coeffs := make([]curve.ScalarField, d.Cardinality)
	copy(coeffs, values)
	d.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return coeffs
}

// Evaluate forward-transforms coeffs (zero-padded to d's size) into
// Lagrange-basis values on d.
func Evaluate(d *fft.Domain, coeffs []curve.ScalarField) []curve.ScalarField {
	values := make([]curve.ScalarField, d.Cardinality)
	copy(values, coeffs)
	d.FFT(values, fft.DIF)
	fft.BitReverse(values)
	return values
}

// Rotate returns a cyclic rotation of evals by shift positions — the small
// domain's generator is the large domain's d.Generator raised to
// large.Cardinality/small.Cardinality, so "evaluate the same polynomial one
// small-domain step ahead" is exactly this rotation of its large-domain
// evaluation vector (no second FFT needed).
func Rotate(evals []curve.ScalarField, shift int) []curve.ScalarField {
	n := len(evals)
	shift %= n
	if shift < 0 {
		shift += n
	}
	out := make([]curve.ScalarField, n)
	copy(out, evals[shift:])
	copy(out[n-shift:], evals[:shift])
	return out
}

// DomainPoints returns d.Generator^0, ^1, ..., ^(Cardinality-1) in the same
// natural order Evaluate's FFT+BitReverse pairing produces, so callers
// walking a columnView's mid/large slices alongside this array see each
// evaluation paired with the field point it was taken at.
func DomainPoints(d *fft.Domain) []curve.ScalarField {
	out := make([]curve.ScalarField, d.Cardinality)
	p := curve.ScalarField{}
	p.SetUint64(1)
	for i := range out {
		out[i] = p
		p.Mul(&p, &d.Generator)
	}
	return out
}

// HornerEval evaluates coeffs (low-degree-first) at x via Horner's method.
func HornerEval(coeffs []curve.ScalarField, x curve.ScalarField) curve.ScalarField {
	var acc curve.ScalarField
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &coeffs[i])
	}
	return acc
}

// DivideByVanishing divides the polynomial t (coefficients, low degree
// first) by the vanishing polynomial X^n - 1, returning the quotient and
// remainder. Exploits X^n-1's sparse structure directly in coefficient
// space (q_{j-n} = t_j + q_j for j from the top down) rather than going
// through a coset FFT, so it needs nothing beyond the domain size n.
func DivideByVanishing(t []curve.ScalarField, n int) (q, r []curve.ScalarField) {
	l := len(t)
	qLen := l - n
	if qLen < 0 {
		qLen = 0
	}
	q = make([]curve.ScalarField, qLen)
	for j := l - 1; j >= n; j-- {
		qj := atOrZero(q, j)
		q[j-n].Add(&t[j], &qj)
	}
	r = make([]curve.ScalarField, n)
	for j := 0; j < n && j < l; j++ {
		qj := atOrZero(q, j)
		r[j].Add(&t[j], &qj)
	}
	for j := l; j < n; j++ {
		// t has fewer than n coefficients: remainder is t itself, already
		// zero-valued beyond l from make's zero-initialization.
		_ = j
	}
	return q, r
}

func atOrZero(s []curve.ScalarField, i int) curve.ScalarField {
	if i < len(s) {
		return s[i]
	}
	return curve.ScalarField{}
}

// PublicLagrange returns the (negated) public-input polynomial's Lagrange
// values over a size-n domain: -public[i] at row i for i < len(public), 0
// elsewhere. Negated so that the generic gate's "...+ public(X) = 0"
// identity reads as the witness's public row cancelling the declared value.
func PublicLagrange(n int, public []curve.ScalarField) []curve.ScalarField {
	out := make([]curve.ScalarField, n)
	for i, p := range public {
		out[i].Neg(&p)
	}
	return out
}

// EvalPublicAt evaluates that same (negated) public polynomial at x via the
// barycentric Lagrange-basis formula, without ever interpolating it —
// public values and domain rows are all either party needs (§4.5 verifier
// step 2: "reconstruct the public-input polynomial's evaluation... using
// Lagrange basis").
func EvalPublicAt(cs *ConstraintSystem, x curve.ScalarField, public []curve.ScalarField) curve.ScalarField {
	var acc curve.ScalarField
	if len(public) == 0 {
		return acc
	}
	n := cs.Domains.N
	gen := cs.Domains.Domain.Generator

	w := curve.ScalarField{}
	w.SetUint64(1)
	for _, p := range public {
		var denom, inv, term curve.ScalarField
		denom.Sub(&x, &w)
		inv.Inverse(&denom)
		term.Mul(&inv, &p)
		term.Mul(&term, &w)
		acc.Sub(&acc, &term)
		w.Mul(&w, &gen)
	}

	var xn, one, numerator, nInv curve.ScalarField
	one.SetUint64(1)
	xn.Exp(x, big.NewInt(int64(n)))
	numerator.Sub(&xn, &one)
	nInv.SetUint64(uint64(n))
	nInv.Inverse(&nInv)
	acc.Mul(&acc, &numerator)
	acc.Mul(&acc, &nInv)
	return acc
}
