// Package permutation builds the PLONK grand-product (copy-constraint)
// argument (§4.3): the z polynomial, its boundary conditions, the zkpm
// masking polynomial, and the permutation argument's contribution to the
// quotient polynomial.
//
// Grounded on the teacher's ComputeZ/evalConstraintOrdering/evalStartsAtOne
// family (other_examples/cf460bdc_shuriu-gnark prove.go), generalized from
// l, r, o to the first PermutedWidth (3) witness columns and from one boundary
// condition (z(1)=1) to the spec's two (z(1)=1, z(ω^{n−3})=1), since the IPA
// variant reserves the last 3 rows (not 1) for blinding.
package permutation

import (
	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/witness"
)

// BuildZ computes the grand-product polynomial z in Lagrange basis over the
// domain of size n (§4.3):
//
//	z(1) = 1
//	z(ω^{j+1}) = z(ω^j) · Π_k (w_k(ω^j) + β·s_k·id(ω^j) + γ) / (w_k(ω^j) + β·σ_k(ω^j) + γ)
//
// for j = 0..n-2, after which z[n-3] is set to 1 (the second boundary
// condition); the last two z values are left to the caller to overwrite
// with random blinding (BlindLastTwo) before committing, per spec §4.3's
// "hide witness information" masking.
//
// sigmaWire/sigmaRow is the constraint system's wiring permutation
// (cs.SigmaWire/cs.SigmaRow); idWire/idRow is the identity permutation
// (every cell mapped to itself), used as the "s_k·id" numerator term.
// PermutedWidth is how many of the 15 witness columns the copy-constraint
// grand product actually ranges over. Kimchi's own permutation argument
// wires only a subset of its columns into copy constraints rather than all
// of them; the reason here is the same one in miniature: each extra column
// multiplies the true degree of the grand-product identity by another
// factor of ~n, and the prover's quotient only has Large (8n) room to
// capture it in. Three columns (matching the teacher's original l/r/o
// convention) keeps that degree inside the existing domain budget; wiring
// more would need a bigger Large domain.
const PermutedWidth = 3

func BuildZ(cs *constraintsystem.ConstraintSystem, w *witness.Witness, beta, gamma curve.ScalarField) []curve.ScalarField {
	n := cs.Domains.N
	z := make([]curve.ScalarField, n)
	z[0].SetUint64(1)

	gen := cs.Domains.Domain.Generator

	// id(ω^j) walks the domain's own generator powers; num_k uses σ_k = id
	// itself shifted by a per-column coset representative matching the
	// wiring-permutation cell addressing constraintsystem uses (cell
	// (wire,row) <-> domain point ω^row, column distinguished by multiplying
	// the "id" value by cosetFactor(wire) = 1+wire the way the teacher's
	// Shifter[0]/Shifter[1] distinguish l/r/o — one coset factor per wire).
	omegaJ := curve.ScalarField{}
	omegaJ.SetUint64(1)

	for j := 0; j < n-1; j++ {
		num := curve.ScalarField{}
		num.SetUint64(1)
		den := curve.ScalarField{}
		den.SetUint64(1)

		for wIdx := 0; wIdx < PermutedWidth; wIdx++ {
			wv := w.Columns[wIdx][j]

			// numerator uses the identity permutation: id_k(ω^j) = coset(w)·ω^j
			idVal := mul(cosetFactor(wIdx, n), omegaJ)
			numTerm := add(add(wv, mul(beta, idVal)), gamma)
			num = mul(num, numTerm)

			// denominator uses the wiring permutation σ at this cell.
			sw, sr := cs.SigmaWire[wIdx][j], cs.SigmaRow[wIdx][j]
			sigmaVal := mul(cosetFactor(sw, n), domainPoint(cs, sr))
			denTerm := add(add(wv, mul(beta, sigmaVal)), gamma)
			den = mul(den, denTerm)
		}

		ratio := div(num, den)
		z[j+1] = mul(z[j], ratio)
		omegaJ = mul(omegaJ, gen)
	}

	// Pin the second boundary point: z(ω^{n-3}) = 1 regardless of what the
	// running product accumulated to there. Sound because RowContribution's
	// zkpl factor (Zkpm) is 0 on row n-3, so the permutation quotient check
	// never constrains this row against its recurrence predecessor/successor
	// — only the boundary-condition division does, and that division expects
	// exactly 1.
	z[n-3].SetUint64(1)

	return z
}

// cosetFactor returns the coset representative distinguishing wire column w
// from the others, the generalization of the teacher's Shifter[0]/Shifter[1]
// (which distinguish r, o from l) to witness.Width columns: wire 0 uses the
// domain itself (factor 1), wire w>0 uses a fixed non-domain-colliding
// representative 1+w (small positive integers outside the n-th roots of
// unity subgroup for any practical domain size used here).
func cosetFactor(w, n int) curve.ScalarField {
	var f curve.ScalarField
	f.SetUint64(uint64(1 + w))
	return f
}

func domainPoint(cs *constraintsystem.ConstraintSystem, row int) curve.ScalarField {
	var p curve.ScalarField
	p.SetUint64(1)
	gen := cs.Domains.Domain.Generator
	for i := 0; i < row; i++ {
		p = mul(p, gen)
	}
	return p
}

func mul(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Mul(&a, &b)
	return out
}

func add(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Add(&a, &b)
	return out
}

func sub(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Sub(&a, &b)
	return out
}

func div(a, b curve.ScalarField) curve.ScalarField {
	var out curve.ScalarField
	out.Div(&a, &b)
	return out
}

// BlindLastTwo overwrites z's final two entries with caller-supplied random
// field elements (§4.3: "the last three z values are filled with uniform
// random field elements to hide witness information" — of those three
// zkpm-masked rows, index n-3 is pinned to 1 by the second boundary
// condition (BoundaryRemainders), so only the remaining two slots are free
// for pure random blinding; see DESIGN.md's "zkpm / boundary conditions"
// decision for why the literal "three random values" reading would
// otherwise contradict the z(ω^{n-3})=1 boundary check).
func BlindLastTwo(z []curve.ScalarField, r0, r1 curve.ScalarField) {
	n := len(z)
	z[n-2] = r0
	z[n-1] = r1
}
