package transcript

import (
	"math/big"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/internal/endo"
)

// ChallengeBits is the width a squeezed challenge is truncated to before
// being reinterpreted as a scalar via the curve endomorphism (§4.7): wide
// enough for soundness, narrow enough that the bit-folding recurrence below
// is cheap and that the endo-VBSM gate (§4.4) can process it in a fixed,
// public number of rows.
const ChallengeBits = 128

// ScalarChallenge is a short (ChallengeBits-wide) challenge squeezed from
// the transcript, kept in its raw bit form until ToField folds it into a
// full scalar. Keeping the raw bits around (rather than immediately
// reducing to a scalar) is what lets the endo-VBSM gate recompute the same
// folding inside a circuit, bit by bit, and have it match.
type ScalarChallenge struct {
	bits [ChallengeBits]bool // bits[0] is the least significant bit
}

// SqueezeScalarChallenge squeezes a full scalar-field challenge and
// truncates it to its low ChallengeBits bits.
func (t *Transcript) SqueezeScalarChallenge() ScalarChallenge {
	full := t.SqueezeScalar()
	return scalarChallengeFromBigInt(curve.ScalarToBigInt(&full))
}

func scalarChallengeFromBigInt(v *big.Int) ScalarChallenge {
	var sc ScalarChallenge
	for i := 0; i < ChallengeBits; i++ {
		sc.bits[i] = v.Bit(i) == 1
	}
	return sc
}

// ToField reconstructs the full scalar a*endoR + b the ChallengeBits bits
// fold into, via §4.7's doubling + conditional-add recurrence — the GLV
// trick that lets a short challenge drive a fast multi-exponentiation
// without ever materializing the (much larger) scalar it represents.
func (sc ScalarChallenge) ToField(endoR curve.ScalarField) curve.ScalarField {
	a := endo.Seed()
	b := endo.Seed()

	// Pairs are folded from the most-significant pair down to the least
	// significant, matching the recurrence's "a,b start at 2 and double
	// every step" normalization.
	for i := ChallengeBits/2 - 1; i >= 0; i-- {
		signBit := sc.bits[2*i]
		placeBit := sc.bits[2*i+1]
		a, b = endo.FoldBit(a, b, signBit, placeBit)
	}
	return endo.Final(a, b, endoR)
}

// Bits exposes the raw bit decomposition (little-endian) so a caller laying
// out endo-VBSM gate rows can derive per-row accumulator values without
// recomputing the squeeze.
func (sc ScalarChallenge) Bits() [ChallengeBits]bool {
	return sc.bits
}
