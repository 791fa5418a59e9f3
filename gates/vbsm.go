package gates

import "github.com/dlogzk/plonkipa/curve"

// VBSM is the variable-base scalar multiplication gate (§4.4), spanning two
// rows of 15 wires. Each row pair processes 5 bits of the scalar (b1, b2 on
// this row; b1, b2, b3 on the next) via the double-and-add-with-lookahead
// identities below.
//
// Wire layout (this row, tagged GateVarBaseMul):
//
//	0:xT 1:yT 2:xS 3:yS 4:xP 5:yP 6:n 7:xR 8:yR 9:s1 10:s2 11:b1 12:s3 13:s4 14:b2
//
// Wire layout (next row, tagged GateZero):
//
//	0:s5 1:b3 2:xS 3:yS 4:xP 5:yP 6:n 7:xR 8:yR 9:xV 10:yV 11:s1 12:b1 13:s3 14:b2
//
// Grounded on
// original_source/circuits/plonk-15-wires/src/polynomials/varbasemul.rs
// (vbmul_quot / vbmul_scalars): the 23 raw identities below are a direct
// transliteration of that file's `s` array, in the same order, so alpha[i]
// there lines up with Identities()[i] here.
type VBSM struct{}

// Identities returns the 23 raw (unscaled) VBSM identity values for one
// (this, next) row pair. All 23 must be zero for the row to satisfy the
// gate.
func (VBSM) Identities(this, next [15]curve.ScalarField) [23]curve.ScalarField {
	var two curve.ScalarField
	two.SetUint64(2)
	var one curve.ScalarField
	one.SetUint64(1)

	dbl := func(x curve.ScalarField) curve.ScalarField { return mul(two, x) }
	boolCheck := func(b curve.ScalarField) curve.ScalarField { return sub(b, square(b)) }

	xT, yT, xS := this[0], this[1], this[2]
	_ = xS
	xP, yP, n := this[4], this[5], this[6]
	xR, yR, s1, s2, b1, s3, s4, b2 := this[7], this[8], this[9], this[10], this[11], this[12], this[13], this[14]

	s5, b3 := next[0], next[1]
	xPn, yPn, xRn, yRn := next[4], next[5], next[7], next[8]
	xV, yV := next[9], next[10]
	s1n, b1n, s3n, b2n := next[11], next[12], next[13], next[14]

	xpmxr := sub(xPn, xRn)
	xrmxv := sub(xRn, xV)
	xvmxs := sub(xV, next[2])

	var out [23]curve.ScalarField
	// booleanity of the scalar bits
	out[0] = boolCheck(b1)
	out[1] = boolCheck(b2)
	out[2] = boolCheck(b1n)
	out[3] = boolCheck(b2n)
	out[4] = boolCheck(next[1])

	// bit-packing accumulator: n = 32*n_next + 16*b2 + 8*b1 + 4*b3_next + 2*b2_next + b1_next
	packed := dbl(next[6])
	packed = dbl(add(packed, b2))
	packed = dbl(add(packed, b1))
	packed = dbl(add(packed, b3))
	packed = dbl(add(packed, b2n))
	packed = add(packed, b1n)
	out[5] = sub(packed, n)

	// this-row EC identities
	out[6] = add(sub(mul(sub(xP, xT), s1), yP), mul(yT, sub(dbl(b1), one)))
	out[7] = add(sub(square(s1), square(s2)), sub(xR, xT))
	out[8] = sub(mul(sub(add(dbl(xP), xT), square(s1)), add(s1, s2)), dbl(yP))
	out[9] = sub(sub(mul(sub(xP, xR), s2), yR), yP)
	out[10] = add(sub(mul(sub(xR, xT), s3), yR), mul(yT, sub(dbl(b2), one)))
	out[11] = add(sub(square(s3), square(s4)), sub(xS, xT))
	out[12] = sub(mul(sub(add(dbl(xR), xT), square(s3)), add(s3, s4)), dbl(yR))
	out[13] = sub(sub(mul(sub(xR, xS), s4), next[3]), yR)

	// next-row EC identities
	out[14] = add(sub(mul(sub(xT, xPn), s1n), mul(sub(dbl(b1n), one), yT)), yPn)
	out[15] = sub(mul(add(sub(dbl(xPn), square(s1n)), xT), add(add(mul(xpmxr, s1n), yRn), yPn)), mul(xpmxr, dbl(yPn)))
	out[16] = sub(square(add(yRn, yPn)), mul(square(xpmxr), add(sub(square(s1n), xT), xRn)))
	out[17] = add(sub(mul(sub(xT, xRn), s3n), mul(sub(dbl(b2n), one), yT)), yRn)
	out[18] = sub(mul(add(sub(dbl(xRn), square(s3n)), xT), add(add(mul(xrmxv, s3n), yV), yRn)), mul(xrmxv, dbl(yRn)))
	out[19] = sub(square(add(yV, yRn)), mul(square(xrmxv), add(sub(square(s3n), xT), xV)))
	out[20] = add(sub(mul(sub(xT, xV), s5), mul(sub(dbl(b3), one), yT)), yV)
	out[21] = sub(mul(add(sub(dbl(xV), square(s5)), xT), add(add(mul(xvmxs, s5), next[3]), yV)), mul(xvmxs, dbl(yV)))
	out[22] = sub(square(add(next[3], yV)), mul(square(xvmxs), add(sub(square(s5), xT), next[2])))

	return out
}

// Evaluate folds the 23 identities by successive powers of alpha (§4.3),
// returning the combined quotient-numerator contribution for this row pair.
func (g VBSM) Evaluate(this, next [15]curve.ScalarField, alpha curve.ScalarField) curve.ScalarField {
	ids := g.Identities(this, next)
	pow := AlphaPowers(alpha, len(ids))
	var acc curve.ScalarField
	acc.SetZero()
	for i, v := range ids {
		acc = add(acc, mul(pow[i], v))
	}
	return acc
}
