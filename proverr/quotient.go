package proverr

import (
	"math/big"

	"github.com/dlogzk/plonkipa/constraintsystem"
	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/gates"
	"github.com/dlogzk/plonkipa/internal/utils"
	"github.com/dlogzk/plonkipa/permutation"
	"github.com/dlogzk/plonkipa/poseidon"
	"github.com/dlogzk/plonkipa/witness"
)

// roundsPerRow mirrors gates.Poseidon's 5-rounds-per-row packing.
const roundsPerRow = 5

// SelectorViews is every selector column built into a ColumnView, so the
// quotient assembly can read its mid/large-domain value the same way it
// reads a witness column's.
type SelectorViews struct {
	ql, qr, qm, qo, qc                ColumnView
	qPoseidon, qAdd, qVbsm, qEndoVbsm ColumnView
}

func BuildSelectorViews(cs *constraintsystem.ConstraintSystem) SelectorViews {
	s := cs.Selectors
	return SelectorViews{
		ql:        BuildView(cs, s.QL),
		qr:        BuildView(cs, s.QR),
		qm:        BuildView(cs, s.QM),
		qo:        BuildView(cs, s.QO),
		qc:        BuildView(cs, s.QC),
		qPoseidon: BuildView(cs, s.QPoseidon),
		qAdd:      BuildView(cs, s.QAdd),
		qVbsm:     BuildView(cs, s.QVbsm),
		qEndoVbsm: BuildView(cs, s.QEndoVbsm),
	}
}

func BuildSigmaViews(cs *constraintsystem.ConstraintSystem) [permutation.PermutedWidth]ColumnView {
	var out [permutation.PermutedWidth]ColumnView
	for k := 0; k < permutation.PermutedWidth; k++ {
		out[k] = BuildView(cs, permutation.SigmaLagrange(cs, k))
	}
	return out
}

func BuildZkpmView(cs *constraintsystem.ConstraintSystem) ColumnView {
	n := cs.Domains.N
	vals := make([]curve.ScalarField, n)
	for row := 0; row < n; row++ {
		vals[row] = permutation.Zkpm(cs, row)
	}
	return BuildView(cs, vals)
}

// LagrangeBasisView builds L_row(X), the degree-<n polynomial that's 1 at
// domain row `row` and 0 at every other domain row — ordinary public data
// (depends only on n and row, not on any witness), built the same way a
// selector is: interpolate a one-hot Lagrange vector.
func LagrangeBasisView(cs *constraintsystem.ConstraintSystem, row int) ColumnView {
	n := cs.Domains.N
	vals := make([]curve.ScalarField, n)
	vals[row].SetUint64(1)
	return BuildView(cs, vals)
}

// PoseidonStartRounds maps every GatePoseidon row to the global round index
// its packed block of 5 rounds starts at, in row order. AddPoseidonGate
// only tags a row as Poseidon; it carries no record of which of the
// permutation's RoundsFull rounds that row covers, so this reconstructs the
// same sequential layout the witness-building side must have used to lay
// consecutive poseidon rows out.
func PoseidonStartRounds(cs *constraintsystem.ConstraintSystem) map[int]int {
	n := cs.Domains.N
	starts := make(map[int]int)
	next := 0
	for row := 0; row < n; row++ {
		if cs.Gates.At(row) == constraintsystem.GatePoseidon {
			starts[row] = next
			next += roundsPerRow
		}
	}
	return starts
}

// roundConstantViews builds, for each of the 5 packed rounds and each of
// the 3 state elements, a ColumnView of that round's constant — present at
// the rows PoseidonStartRounds assigns it to, zero elsewhere. This is what
// lets the Poseidon identity below be evaluated at an arbitrary mid/large
// domain point instead of only at the small-domain rows a Go-int round
// index could address: the round constant becomes ordinary public
// polynomial data, exactly like a selector.
func roundConstantViews(cs *constraintsystem.ConstraintSystem, starts map[int]int) [roundsPerRow][3]ColumnView {
	n := cs.Domains.N
	params := poseidon.FrParams()
	var out [roundsPerRow][3]ColumnView
	for r := 0; r < roundsPerRow; r++ {
		for j := 0; j < 3; j++ {
			vals := make([]curve.ScalarField, n)
			for row, start := range starts {
				vals[row] = params.RoundConstants[start+r][j]
			}
			out[r][j] = BuildView(cs, vals)
		}
	}
	return out
}

// poseidonRound applies one Poseidon round (add round constants, S-box,
// MDS mix) to in, mirroring poseidon.OneRound but taking the round
// constants directly rather than looking them up by a Go-int round index —
// see roundConstantViews for why.
func poseidonRound(params *poseidon.Parameters[curve.ScalarField, *curve.ScalarField], rc, in [3]curve.ScalarField) [3]curve.ScalarField {
	alphaExp := new(big.Int).SetUint64(params.Alpha)
	var added [3]curve.ScalarField
	for i := 0; i < 3; i++ {
		added[i].Add(&in[i], &rc[i])
		added[i].Exp(added[i], alphaExp)
	}
	var out [3]curve.ScalarField
	for i := 0; i < 3; i++ {
		row := params.MDS[i]
		for j := 0; j < 3; j++ {
			var term curve.ScalarField
			term.Mul(&row[j], &added[j])
			out[i].Add(&out[i], &term)
		}
	}
	return out
}

func CosetFactor(k int) curve.ScalarField {
	var f curve.ScalarField
	f.SetUint64(uint64(1 + k))
	return f
}

// assembleQuotient builds the combined quotient numerator across the mid
// (generic, addition) and large (poseidon, vbsm, endo-vbsm, permutation)
// domains, adds the two permutation boundary-condition quotients, divides
// by the vanishing polynomial X^n-1, and returns the quotient's
// coefficients.
//
// allAlpha is the 7-element alpha-power schedule: [0]/[1] scale the two
// boundary conditions, [2..6] scale the generic/addition/poseidon/
// vbsm/endo-vbsm gate sums respectively — an outer factor on top of each
// gate's own internal alpha-folding, needed because every gate's Evaluate
// independently restarts at alpha^0 so different gate kinds could collide
// in the combined sum without it.
func assembleQuotient(
	cs *constraintsystem.ConstraintSystem,
	wv [witness.Width]ColumnView,
	sel SelectorViews,
	pub ColumnView,
	zv ColumnView,
	sigma [permutation.PermutedWidth]ColumnView,
	zkpm ColumnView,
	endoQ curve.BaseField,
	beta, gamma, alpha curve.ScalarField,
	allAlpha [7]curve.ScalarField,
	starts map[int]int,
) ([]curve.ScalarField, []curve.ScalarField, error) {
	mid := cs.Domains.Mid
	large := cs.Domains.Large

	quotMid := make([]curve.ScalarField, mid)
	for i := 0; i < mid; i++ {
		var wires [witness.Width]curve.ScalarField
		for k := range wires {
			wires[k] = wv[k].mid[i]
		}

		genId := (gates.Generic{}).Evaluate(wires, sel.ql.mid[i], sel.qr.mid[i], sel.qm.mid[i], sel.qo.mid[i], sel.qc.mid[i], pub.mid[i])
		var term curve.ScalarField
		term.Mul(&allAlpha[2], &genId)
		quotMid[i] = term

		addId := (gates.Addition{}).Evaluate(wires, alpha)
		var addTerm curve.ScalarField
		addTerm.Mul(&allAlpha[3], &addId)
		addTerm.Mul(&addTerm, &sel.qAdd.mid[i])
		quotMid[i].Add(&quotMid[i], &addTerm)
	}

	rc := roundConstantViews(cs, starts)
	params := poseidon.FrParams()

	n := cs.Domains.N
	l1 := LagrangeBasisView(cs, 0)
	lNm3 := LagrangeBasisView(cs, n-3)
	var one curve.ScalarField
	one.SetUint64(1)

	// Every large-domain index is an independent evaluation (no index reads
	// another index's quotLarge entry), so the whole loop is a pure
	// element-wise transform — exactly what utils.Parallelize exists for,
	// the same way the teacher's prove.go parallelizes its own per-point
	// gate-evaluation loops.
	quotLarge := make([]curve.ScalarField, large)
	utils.Parallelize(large, func(start, end int) {
		for i := start; i < end; i++ {
			var wires, nextWires [witness.Width]curve.ScalarField
			for k := range wires {
				wires[k] = wv[k].large[i]
				nextWires[k] = wv[k].largeNext[i]
			}

			poseidonId := evalPoseidonAt(params, rc, wires, nextWires, alpha, i)
			var poseidonTerm curve.ScalarField
			poseidonTerm.Mul(&allAlpha[4], &poseidonId)
			poseidonTerm.Mul(&poseidonTerm, &sel.qPoseidon.large[i])

			vbsmId := (gates.VBSM{}).Evaluate(wires, nextWires, alpha)
			var vbsmTerm curve.ScalarField
			vbsmTerm.Mul(&allAlpha[5], &vbsmId)
			vbsmTerm.Mul(&vbsmTerm, &sel.qVbsm.large[i])

			endoId := (gates.EndoVBSM{}).Evaluate(endoQ, wires, wv[EndoAccumulatorWire].largePrev[i], alpha)
			var endoTerm curve.ScalarField
			endoTerm.Mul(&allAlpha[6], &endoId)
			endoTerm.Mul(&endoTerm, &sel.qEndoVbsm.large[i])

			permTerm := permutationContribution(cs, wv, sigma, zv, zkpm, beta, gamma, i)

			// Boundary conditions z(1)=1, z(ω^{n-3})=1 (§4.3), folded into
			// the same combined numerator via the Lagrange basis
			// polynomials that are 1 at exactly one domain row rather than
			// via a separate synthetic division — so they get divided by
			// X^n-1 exactly once, alongside everything else, instead of
			// twice.
			var zMinusOne curve.ScalarField
			zMinusOne.Sub(&zv.large[i], &one)
			var b1, b2 curve.ScalarField
			b1.Mul(&allAlpha[0], &l1.large[i])
			b1.Mul(&b1, &zMinusOne)
			b2.Mul(&allAlpha[1], &lNm3.large[i])
			b2.Mul(&b2, &zMinusOne)

			var sum curve.ScalarField
			sum.Add(&poseidonTerm, &vbsmTerm)
			sum.Add(&sum, &endoTerm)
			sum.Add(&sum, &permTerm)
			sum.Add(&sum, &b1)
			sum.Add(&sum, &b2)
			quotLarge[i] = sum
		}
	})

	return quotMid, quotLarge, nil
}

// evalPoseidonAt evaluates the Poseidon round-chain identity (§4.4, 5
// packed rounds) at large-domain index i, folding the 15 raw sub-identities
// by successive powers of alpha the same way gates.Poseidon.Evaluate does.
func evalPoseidonAt(
	params *poseidon.Parameters[curve.ScalarField, *curve.ScalarField],
	rc [roundsPerRow][3]ColumnView,
	this, next [witness.Width]curve.ScalarField,
	alpha curve.ScalarField,
	i int,
) curve.ScalarField {
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
		roundRC := [3]curve.ScalarField{rc[r][0].large[i], rc[r][1].large[i], rc[r][2].large[i]}
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

// permutationContribution mirrors permutation.RowContribution's formula
// (the grand-product copy-constraint check), generalized from small-domain
// row lookups to a large-domain point: id_k's linear polynomial is the
// point itself (scaled by CosetFactor), σ_k is read from its own
// ColumnView rather than cs.SigmaWire/SigmaRow, and only
// permutation.PermutedWidth wire columns participate (see PermutedWidth's
// doc comment for why not all 15).
func permutationContribution(
	cs *constraintsystem.ConstraintSystem,
	wv [witness.Width]ColumnView,
	sigma [permutation.PermutedWidth]ColumnView,
	zv, zkpm ColumnView,
	beta, gamma curve.ScalarField,
	i int,
) curve.ScalarField {
	point := largePoint(cs, i)
	var wires, sigmas [permutation.PermutedWidth]curve.ScalarField
	for k := 0; k < permutation.PermutedWidth; k++ {
		wires[k] = wv[k].large[i]
		sigmas[k] = sigma[k].large[i]
	}
	return permutationCore(point, wires, sigmas, zv.large[i], zv.largeNext[i], zkpm.large[i], beta, gamma)
}

// largePoint is the field point the large domain's i-th (naturally-ordered)
// evaluation sits at.
func largePoint(cs *constraintsystem.ConstraintSystem, i int) curve.ScalarField {
	return constraintsystem.DomainPoints(cs.Domains.DomainLarge)[i]
}

// permutationCore is the copy-constraint grand-product check (§4.3),
// mirroring permutation.RowContribution's formula exactly: both
// permutationContribution (evaluated at a large-domain index, for building
// the quotient) and PermutationIdentityAt (evaluated at ζ, for Verify's
// independent recomputation) fold their per-point inputs through this same
// body so the two can never silently drift apart.
func permutationCore(
	point curve.ScalarField,
	wires, sigmas [permutation.PermutedWidth]curve.ScalarField,
	zHere, zNext, zkpmHere curve.ScalarField,
	beta, gamma curve.ScalarField,
) curve.ScalarField {
	num := curve.ScalarField{}
	num.SetUint64(1)
	den := curve.ScalarField{}
	den.SetUint64(1)

	for k := 0; k < permutation.PermutedWidth; k++ {
		cf := CosetFactor(k)
		var idVal curve.ScalarField
		idVal.Mul(&cf, &point)
		var numTerm curve.ScalarField
		numTerm.Mul(&beta, &idVal)
		numTerm.Add(&numTerm, &wires[k])
		numTerm.Add(&numTerm, &gamma)
		num.Mul(&num, &numTerm)

		var denTerm curve.ScalarField
		denTerm.Mul(&beta, &sigmas[k])
		denTerm.Add(&denTerm, &wires[k])
		denTerm.Add(&denTerm, &gamma)
		den.Mul(&den, &denTerm)
	}

	var lhs, rhs, diff, out curve.ScalarField
	lhs.Mul(&num, &zHere)
	rhs.Mul(&den, &zNext)
	diff.Sub(&lhs, &rhs)
	out.Mul(&diff, &zkpmHere)
	return out
}

// PermutationIdentityAt is permutationCore evaluated at ζ rather than a
// large-domain index, the form Verify needs: σ_k(ζ) and zkpm(ζ) are read
// directly off their (public, independently-built) coefficient polynomials
// instead of a large-domain array, and w_k(ζ), z(ζ), z(ζ·ω) come from the
// proof's own opened evaluations.
func PermutationIdentityAt(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	witnessAtZeta [witness.Width]curve.ScalarField,
	sigma [permutation.PermutedWidth]ColumnView,
	zkpm ColumnView,
	zAtZeta, zAtZetaOmega curve.ScalarField,
	beta, gamma curve.ScalarField,
) curve.ScalarField {
	var wires, sigmas [permutation.PermutedWidth]curve.ScalarField
	for k := 0; k < permutation.PermutedWidth; k++ {
		wires[k] = witnessAtZeta[k]
		sigmas[k] = constraintsystem.HornerEval(sigma[k].coeffs, zeta)
	}
	zkpmAtZeta := constraintsystem.HornerEval(zkpm.coeffs, zeta)
	return permutationCore(zeta, wires, sigmas, zAtZeta, zAtZetaOmega, zkpmAtZeta, beta, gamma)
}

// BoundaryIdentityAt is the §4.3 boundary-condition terms
// (allAlpha[0]*L1(ζ)*(z(ζ)-1) + allAlpha[1]*L_{n-3}(ζ)*(z(ζ)-1)), folded
// into the quotient's Large-domain sum by assembleQuotient and recomputed
// here at ζ the same way the rest of the f(ζ)/permutation terms are:
// directly from the public Lagrange-basis polynomials, no large-domain
// array needed.
func BoundaryIdentityAt(
	cs *constraintsystem.ConstraintSystem,
	zeta curve.ScalarField,
	zAtZeta curve.ScalarField,
	allAlpha [7]curve.ScalarField,
) curve.ScalarField {
	n := cs.Domains.N
	l1 := LagrangeBasisView(cs, 0)
	lNm3 := LagrangeBasisView(cs, n-3)

	var one, zMinusOne curve.ScalarField
	one.SetUint64(1)
	zMinusOne.Sub(&zAtZeta, &one)

	l1AtZeta := constraintsystem.HornerEval(l1.coeffs, zeta)
	lNm3AtZeta := constraintsystem.HornerEval(lNm3.coeffs, zeta)

	var b1, b2 curve.ScalarField
	b1.Mul(&allAlpha[0], &l1AtZeta)
	b1.Mul(&b1, &zMinusOne)
	b2.Mul(&allAlpha[1], &lNm3AtZeta)
	b2.Mul(&b2, &zMinusOne)

	var out curve.ScalarField
	out.Add(&b1, &b2)
	return out
}

func errDivision(remainder []curve.ScalarField) error {
	for _, r := range remainder {
		if !r.IsZero() {
			return errs.ErrPolyDivision
		}
	}
	return nil
}
