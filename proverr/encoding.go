package proverr

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/dlogzk/plonkipa/errs"
)

// Encode serializes a proof to CBOR: a compact, self-describing binary
// format a verifier running on a different machine (or reading the proof
// back off disk) can decode without out-of-band schema knowledge — the
// same tradeoff the teacher's witness-shaped aux data makes cbor for,
// applied here to the one object actually crosses a network or disk
// boundary in this module.
func (p *Proof) Encode() ([]byte, error) {
	out, err := cbor.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProofCreation, err)
	}
	return out, nil
}

// DecodeProof is Encode's inverse.
func DecodeProof(data []byte) (*Proof, error) {
	var p Proof
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrProofVerification, err)
	}
	return &p, nil
}
