package constraintsystem

import "github.com/bits-and-blooms/bitset"

// GateKind tags which custom gate identity (§4.2, §4.4) a row must satisfy.
// A row carries exactly one non-zero gate-kind selector; GateZero rows carry
// no gate constraint at all (only wiring).
type GateKind int

const (
	GateZero GateKind = iota
	GateGeneric
	GatePoseidon
	GateAddition
	GateVarBaseMul
	GateEndoMul

	numGateKinds
)

func (k GateKind) String() string {
	switch k {
	case GateGeneric:
		return "generic"
	case GatePoseidon:
		return "poseidon"
	case GateAddition:
		return "addition"
	case GateVarBaseMul:
		return "vbsm"
	case GateEndoMul:
		return "endomul"
	default:
		return "zero"
	}
}

// GateTags is a per-row bitset per gate kind: `Rows[k].Test(i)` reports
// whether row i carries gate kind k. Using bits-and-blooms/bitset rather
// than a `[]GateKind` keeps the common "which rows use gate k" query (used
// when assembling that gate's quotient contribution) a single bitset scan
// instead of a full-row linear filter.
type GateTags struct {
	n    int
	Rows [numGateKinds]*bitset.BitSet
}

// NewGateTags allocates an all-zero (GateZero) tagging for n rows.
func NewGateTags(n int) *GateTags {
	gt := &GateTags{n: n}
	for k := range gt.Rows {
		gt.Rows[k] = bitset.New(uint(n))
	}
	return gt
}

// Tag marks row as carrying gate kind k (clearing any previous tag on that
// row, since a row carries at most one gate kind).
func (gt *GateTags) Tag(row int, k GateKind) {
	for kind := range gt.Rows {
		if GateKind(kind) == k {
			gt.Rows[kind].Set(uint(row))
		} else {
			gt.Rows[kind].Clear(uint(row))
		}
	}
}

// At returns the gate kind tagged on row, or GateZero if none.
func (gt *GateTags) At(row int) GateKind {
	for k := GateKind(1); k < numGateKinds; k++ {
		if gt.Rows[k].Test(uint(row)) {
			return k
		}
	}
	return GateZero
}
