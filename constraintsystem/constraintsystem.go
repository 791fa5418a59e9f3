package constraintsystem

import (
	"fmt"

	"github.com/dlogzk/plonkipa/curve"
	"github.com/dlogzk/plonkipa/errs"
	"github.com/dlogzk/plonkipa/witness"
)

// Selectors holds the per-row coefficient columns every gate identity reads
// from: the five generic-gate selectors (§4.2 generic gate
// qm*l*r+ql*l+qr*r+qo*o+qc+public=0) plus one boolean-valued selector per
// custom gate kind, gating whether that gate's extra identity applies to a
// row.
type Selectors struct {
	QL, QR, QM, QO, QC []curve.ScalarField
	QPoseidon          []curve.ScalarField
	QAdd               []curve.ScalarField
	QVbsm              []curve.ScalarField
	QEndoVbsm          []curve.ScalarField
}

func newSelectors(n int) *Selectors {
	mk := func() []curve.ScalarField { return make([]curve.ScalarField, n) }
	return &Selectors{
		QL: mk(), QR: mk(), QM: mk(), QO: mk(), QC: mk(),
		QPoseidon: mk(), QAdd: mk(), QVbsm: mk(), QEndoVbsm: mk(),
	}
}

// cell identifies one (wire, row) witness slot.
type cell struct {
	wire, row int
}

// ConstraintSystem is the compiled PLONK arithmetization: the three
// evaluation domains, per-row selectors, per-row gate-kind tags, and the
// wiring permutation connecting witness cells that must hold equal values.
type ConstraintSystem struct {
	Domains   *Domains
	Selectors *Selectors
	Gates     *GateTags

	nextRow int

	// union-find over (wire,row) cells, for building the copy-constraint
	// cycles (§4.3) once building is done.
	parent map[cell]cell

	// PublicRows marks which rows carry a public input in wire 0 (the
	// convention this constraint system uses, mirroring the teacher's
	// "public input in the first column" layout).
	PublicRows []int

	compiled bool
	// Sigma is the wiring permutation, generalized from the teacher's
	// 3-column sigma to W=15: SigmaWire[w][row]/SigmaRow[w][row] say that
	// cell (w, row) maps to (SigmaWire[w][row], SigmaRow[w][row]) — the
	// next cell in its copy-constraint cycle.
	SigmaWire [witness.Width][]int
	SigmaRow  [witness.Width][]int
}

// New allocates an empty constraint system with room for n rows. n is not
// rounded: Compile builds the domains with NewDomains, which rejects an n
// that is not a power of two.
func New(n int) *ConstraintSystem {
	return &ConstraintSystem{
		Selectors: newSelectors(n),
		Gates:     NewGateTags(n),
		parent:    make(map[cell]cell),
	}
}

func (cs *ConstraintSystem) find(c cell) cell {
	p, ok := cs.parent[c]
	if !ok || p == c {
		cs.parent[c] = c
		return c
	}
	root := cs.find(p)
	cs.parent[c] = root
	return root
}

// Connect records a copy constraint: wire `wa` of row `ra` must equal wire
// `wb` of row `rb`.
func (cs *ConstraintSystem) Connect(wa, ra, wb, rb int) {
	a, b := cell{wa, ra}, cell{wb, rb}
	ra2, rb2 := cs.find(a), cs.find(b)
	if ra2 != rb2 {
		cs.parent[ra2] = rb2
	}
}

// AddGenericGate assigns row's generic-gate selectors (§4.2).
func (cs *ConstraintSystem) AddGenericGate(row int, ql, qr, qm, qo, qc curve.ScalarField) {
	cs.Selectors.QL[row] = ql
	cs.Selectors.QR[row] = qr
	cs.Selectors.QM[row] = qm
	cs.Selectors.QO[row] = qo
	cs.Selectors.QC[row] = qc
	cs.Gates.Tag(row, GateGeneric)
}

// AddPoseidonGate tags row as a Poseidon permutation round.
func (cs *ConstraintSystem) AddPoseidonGate(row int) {
	one := curve.ScalarField{}
	one.SetUint64(1)
	cs.Selectors.QPoseidon[row] = one
	cs.Gates.Tag(row, GatePoseidon)
}

// AddAdditionGate tags row as a short-Weierstrass point-addition row.
func (cs *ConstraintSystem) AddAdditionGate(row int) {
	one := curve.ScalarField{}
	one.SetUint64(1)
	cs.Selectors.QAdd[row] = one
	cs.Gates.Tag(row, GateAddition)
}

// AddVarBaseMulGate tags row as a variable-base-scalar-mul accumulator row.
func (cs *ConstraintSystem) AddVarBaseMulGate(row int) {
	one := curve.ScalarField{}
	one.SetUint64(1)
	cs.Selectors.QVbsm[row] = one
	cs.Gates.Tag(row, GateVarBaseMul)
}

// AddEndoMulGate tags row as an endomorphism-accelerated scalar-mul row.
func (cs *ConstraintSystem) AddEndoMulGate(row int) {
	one := curve.ScalarField{}
	one.SetUint64(1)
	cs.Selectors.QEndoVbsm[row] = one
	cs.Gates.Tag(row, GateEndoMul)
}

// MarkPublic records that row carries a public input.
func (cs *ConstraintSystem) MarkPublic(row int) {
	cs.PublicRows = append(cs.PublicRows, row)
}

// Compile finalizes the constraint system: builds the three evaluation
// domains for the number of rows the selector columns were sized for, and
// builds the wiring permutation from the recorded Connect() copy
// constraints.
func (cs *ConstraintSystem) Compile() error {
	n := len(cs.Selectors.QL)
	domains, err := NewDomains(n)
	if err != nil {
		return fmt.Errorf("%w: constraint system has %d rows", err, n)
	}
	cs.Domains = domains

	sigmaWire, sigmaRow, err := cs.buildPermutation(n)
	if err != nil {
		return err
	}
	cs.SigmaWire = sigmaWire
	cs.SigmaRow = sigmaRow
	cs.compiled = true
	return nil
}

var errNotCompiled = fmt.Errorf("%w: constraint system not compiled", errs.ErrProofCreation)

// EnsureCompiled reports whether Compile has already run, so proverr/verifierr
// can fail fast with a typed error instead of reading nil Domains/Sigma
// fields.
func (cs *ConstraintSystem) EnsureCompiled() error {
	if !cs.compiled {
		return errNotCompiled
	}
	return nil
}
