package ipa

import (
	"math/big"

	"github.com/dlogzk/plonkipa/curve"
)

// ShamirSum computes [uInv]gLo + [u]gHi as a single simultaneous
// double-and-add pass over both scalars' bits, rather than two independent
// scalar multiplications followed by an addition. Grounded on
// original_source/dlog/commitment/src/commitment.rs's `shamir_sum`: every
// round of ipa.Open/Verify folds a pair of SRS bases this way, so a correct,
// obviously-equivalent-to-naive implementation matters more here than
// squeezing out the last bit of the 16-entry windowed variant
// (`window_shamir`) the original also offers as a faster but more
// error-prone alternative.
func ShamirSum(uInv curve.ScalarField, gLo curve.Point, u curve.ScalarField, gHi curve.Point) curve.Point {
	sumPoint := curve.JacToAffine(addAffine(gLo, gHi))

	bitsInv := bigIntBits(curve.ScalarToBigInt(&uInv))
	bitsU := bigIntBits(curve.ScalarToBigInt(&u))
	n := len(bitsInv)
	if len(bitsU) > n {
		n = len(bitsU)
	}

	var acc curve.Jac
	for i := n - 1; i >= 0; i-- {
		acc.Double(&acc)
		bInv := bitAt(bitsInv, i)
		bU := bitAt(bitsU, i)
		switch {
		case bInv && bU:
			acc.AddMixed(&sumPoint)
		case bU:
			acc.AddMixed(&gHi)
		case bInv:
			acc.AddMixed(&gLo)
		}
	}
	return curve.JacToAffine(&acc)
}

// NaiveCombine is the two-scalar-mul-then-add reference implementation
// ShamirSum must always agree with; kept separate (rather than collapsing
// them into one function) so a property test can assert the equivalence
// rather than assume it.
func NaiveCombine(uInv curve.ScalarField, gLo curve.Point, u curve.ScalarField, gHi curve.Point) curve.Point {
	lo := curve.ScalarMul(gLo, &uInv)
	hi := curve.ScalarMul(gHi, &u)
	return curve.JacToAffine(addAffine(lo, hi))
}

func addAffine(a, b curve.Point) *curve.Jac {
	var aj curve.Jac
	aj.FromAffine(&a)
	aj.AddMixed(&b)
	return &aj
}

func bigIntBits(v *big.Int) []bool {
	bits := make([]bool, v.BitLen())
	for i := range bits {
		bits[i] = v.Bit(i) == 1
	}
	return bits
}

func bitAt(bits []bool, i int) bool {
	if i >= len(bits) {
		return false
	}
	return bits[i]
}
