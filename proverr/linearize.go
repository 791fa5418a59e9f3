package proverr

import (
	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/gates"
	"github.com/dlogzk/plonkipa/poseidon"
	"github.com/dlogzk/plonkipa/witness"
)

// evalFAt computes the generic/custom-gate linearization scalar f(ζ) —
// Prove and Verify both call this, Prove with evaluations it just computed
// from its own coefficient polynomials, Verify with the evaluations the
// proof claims (and that the IPA openings bind). Selector and round-
// constant values are evaluated directly from cs (public data, no
// commitment needed — see DESIGN.md's "public selectors" decision) rather
// than read from a committed polynomial.
//
// evalFAt itself covers only the generic and addition gates; evalFAtFull
// adds Poseidon and VBSM, and EvalFAtComplete adds EndoVBSM. EndoVBSM's term
// needs the accumulator's *previous*-row value, which would add a third
// Fiat-Shamir evaluation point across every polynomial; this scheme keeps
// that need local to wire 7 alone (nPrev, opened separately — see
// Proof.NPrevEval).
func evalFAt(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	wires [witness.Width]curve.ScalarField,
	sel SelectorViews,
	pub ColumnView,
	alpha curve.ScalarField,
) curve.ScalarField {
	ql := constraintsystem.HornerEval(sel.ql.coeffs, zeta)
	qr := constraintsystem.HornerEval(sel.qr.coeffs, zeta)
	qm := constraintsystem.HornerEval(sel.qm.coeffs, zeta)
	qo := constraintsystem.HornerEval(sel.qo.coeffs, zeta)
	qc := constraintsystem.HornerEval(sel.qc.coeffs, zeta)
	qAdd := constraintsystem.HornerEval(sel.qAdd.coeffs, zeta)
	publicAt := constraintsystem.HornerEval(pub.coeffs, zeta)

	allAlpha := GateAlphaSchedule(alpha)

	genId := (gates.Generic{}).Evaluate(wires, ql, qr, qm, qo, qc, publicAt)
	var f curve.ScalarField
	f.Mul(&allAlpha[2], &genId)

	addId := (gates.Addition{}).Evaluate(wires, alpha)
	var addTerm curve.ScalarField
	addTerm.Mul(&allAlpha[3], &addId)
	addTerm.Mul(&addTerm, &qAdd)
	f.Add(&f, &addTerm)

	return f
}

// evalFAtFull is evalFAt generalized to the two-row gates (Poseidon, VBSM),
// which additionally need the next row's wire values (available from the
// opened ζ·ω evaluations).
func evalFAtFull(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	this, next [witness.Width]curve.ScalarField,
	sel SelectorViews,
	pub ColumnView,
	alpha curve.ScalarField,
	starts map[int]int,
) curve.ScalarField {
	f := evalFAt(cs, zeta, this, sel, pub, alpha)
	allAlpha := GateAlphaSchedule(alpha)

	qVbsm := constraintsystem.HornerEval(sel.qVbsm.coeffs, zeta)
	vbsmId := (gates.VBSM{}).Evaluate(this, next, alpha)
	var vbsmTerm curve.ScalarField
	vbsmTerm.Mul(&allAlpha[5], &vbsmId)
	vbsmTerm.Mul(&vbsmTerm, &qVbsm)
	f.Add(&f, &vbsmTerm)

	qPoseidon := constraintsystem.HornerEval(sel.qPoseidon.coeffs, zeta)
	poseidonId := evalPoseidonIdentity(cs, zeta, this, next, alpha, starts)
	var poseidonTerm curve.ScalarField
	poseidonTerm.Mul(&allAlpha[4], &poseidonId)
	poseidonTerm.Mul(&poseidonTerm, &qPoseidon)
	f.Add(&f, &poseidonTerm)

	return f
}

// EndoAccumulatorWire is which witness column EndoVBSM's running
// accumulator lives in — wire 7 in its this-row layout (gates.EndoVBSM's
// doc comment).
const EndoAccumulatorWire = 7

// EvalFAtComplete is evalFAtFull plus EndoVBSM's term, which alone among
// the custom gates needs a third evaluation point (nPrev, at ζ·ω⁻¹ — see
// Proof.NPrevEval) since it checks its accumulator against the *previous*
// row rather than the next one.
func EvalFAtComplete(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	this, next [witness.Width]curve.ScalarField,
	nPrev curve.ScalarField,
	sel SelectorViews,
	pub ColumnView,
	alpha curve.ScalarField,
	starts map[int]int,
	endoQ curve.BaseField,
) curve.ScalarField {
	f := evalFAtFull(cs, zeta, this, next, sel, pub, alpha, starts)
	allAlpha := GateAlphaSchedule(alpha)

	qEndoVbsm := constraintsystem.HornerEval(sel.qEndoVbsm.coeffs, zeta)
	endoId := (gates.EndoVBSM{}).Evaluate(endoQ, this, nPrev, alpha)
	var endoTerm curve.ScalarField
	endoTerm.Mul(&allAlpha[6], &endoId)
	endoTerm.Mul(&endoTerm, &qEndoVbsm)
	f.Add(&f, &endoTerm)

	return f
}

// evalPoseidonIdentity evaluates the Poseidon round-chain identity at an
// arbitrary point rather than a domain index, reading each round's
// constants off the same round-constant polynomials roundConstantViews
// builds (HornerEval'd at zeta instead of read from a mid/large slice).
func evalPoseidonIdentity(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	this, next [witness.Width]curve.ScalarField,
	alpha curve.ScalarField,
	starts map[int]int,
) curve.ScalarField {
	rc := roundConstantViews(cs, starts)
	params := poseidon.FrParams()

	boundary := func(r int) [3]curve.ScalarField {
		if r == roundsPerRow {
			return [3]curve.ScalarField{next[0], next[1], next[2]}
		}
		return [3]curve.ScalarField{this[3*r], this[3*r+1], this[3*r+2]}
	}

	pow := gates.AlphaPowers(alpha, roundsPerRow*3)
	var acc curve.ScalarField
	k := 0
	for r := 0; r < roundsPerRow; r++ {
		in := boundary(r)
		want := boundary(r + 1)
		roundRC := [3]curve.ScalarField{
			constraintsystem.HornerEval(rc[r][0].coeffs, zeta),
			constraintsystem.HornerEval(rc[r][1].coeffs, zeta),
			constraintsystem.HornerEval(rc[r][2].coeffs, zeta),
		}
		got := poseidonRound(params, roundRC, in)
		for j := 0; j < 3; j++ {
			var diff, term curve.ScalarField
			diff.Sub(&got[j], &want[j])
			term.Mul(&pow[k], &diff)
			acc.Add(&acc, &term)
			k++
		}
	}
	return acc
}

func NextPoint(cs *constraintsystem.ConstraintSystem, zeta curve.ScalarField) curve.ScalarField {
	gen := cs.Domains.Domain.Generator
	var out curve.ScalarField
	out.Mul(&zeta, &gen)
	return out
}

func PrevPoint(cs *constraintsystem.ConstraintSystem, zeta curve.ScalarField) curve.ScalarField {
	genInv := cs.Domains.Domain.GeneratorInv
	var out curve.ScalarField
	out.Mul(&zeta, &genInv)
	return out
}
