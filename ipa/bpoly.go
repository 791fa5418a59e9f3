package ipa

import "github.com/dlogzk/plonkipa/curve"

// BPoly evaluates the folding polynomial b(x) = prod_i (chalInv[i] +
// chal[i] * x^(2^(k-1-i))) at x, grounded on
// original_source/dlog/commitment/src/commitment.rs's `b_poly`. The
// verifier uses this (rather than recomputing the full folded b vector) to
// check an opening in O(log N) field operations instead of O(N).
func BPoly(chal, chalInv []curve.ScalarField, x curve.ScalarField) curve.ScalarField {
	k := len(chal)
	powTwos := make([]curve.ScalarField, k)
	powTwos[0] = x
	for i := 1; i < k; i++ {
		var sq curve.ScalarField
		sq.Mul(&powTwos[i-1], &powTwos[i-1])
		powTwos[i] = sq
	}

	var res curve.ScalarField
	res.SetUint64(1)
	for i := 0; i < k; i++ {
		var term curve.ScalarField
		term.Mul(&chal[i], &powTwos[k-1-i])
		term.Add(&term, &chalInv[i])
		res.Mul(&res, &term)
	}
	return res
}

// BPolyCoefficients expands the same product into its length-2^k
// coefficient vector (the "s" array both open and verify use to fold G
// itself), grounded on `b_poly_coefficients`.
func BPolyCoefficients(s0 curve.ScalarField, chalSquared []curve.ScalarField) []curve.ScalarField {
	rounds := len(chalSquared)
	length := 1 << rounds
	s := make([]curve.ScalarField, length)
	for i := range s {
		s[i].SetUint64(1)
	}
	s[0] = s0

	k := 0
	pow := 1
	for i := 1; i < length; i++ {
		if i == pow {
			k++
			pow <<= 1
		}
		s[i].Mul(&s[i-(pow>>1)], &chalSquared[rounds-1-(k-1)])
	}
	return s
}

// InnerProd computes <xs, ys>, the scalar the IPA halving rounds fold down
// to their single final value (§4.1).
func InnerProd(xs, ys []curve.ScalarField) curve.ScalarField {
	var res curve.ScalarField
	for i := range xs {
		var term curve.ScalarField
		term.Mul(&xs[i], &ys[i])
		res.Add(&res, &term)
	}
	return res
}

// Pows returns [1, x, x^2, ..., x^(d-1)].
func Pows(d int, x curve.ScalarField) []curve.ScalarField {
	out := make([]curve.ScalarField, d)
	acc := curve.ScalarField{}
	acc.SetUint64(1)
	for i := 0; i < d; i++ {
		out[i] = acc
		acc.Mul(&acc, &x)
	}
	return out
}

// EvalPolynomial evaluates a coefficient vector (low-degree first) at x via
// Horner's method.
func EvalPolynomial(coeffs []curve.ScalarField, x curve.ScalarField) curve.ScalarField {
	var res curve.ScalarField
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &coeffs[i])
	}
	return res
}
