// Package constraintsystem is the PLONK arithmetization layer (§4.2–§4.3):
// gates, selectors, the wiring permutation, and the three evaluation-domain
// views the prover needs (the constraint system's own size n, and two
// larger subgroup domains for evaluating higher-degree gate/quotient identities
// without aliasing).
//
// Grounded on the teacher's backend/plonk/bls12-377/setup.go (`Trace`,
// `buildPermutation`, `computePermutationPolynomials`,
// `getSupportPermutation`, `initFFTDomain`), generalized from gnark's
// 3-column SparseR1CS wiring to this spec's 15-wire, multi-gate-kind model.
package constraintsystem

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/dlogzk/plonkipa/errs"
)

// Domains bundles the three FFT views a PLONK prover needs: the
// constraint-system's native size n (DomainMid = 4n and DomainLarge = 8n
// are plain subgroup domains, no coset shift, four/eight times larger, sized to hold the highest-degree
// quotient terms the custom gates produce without wraparound).
type Domains struct {
	N     int
	Mid   int
	Large int

	Domain      *fft.Domain
	DomainMid   *fft.Domain
	DomainLarge *fft.Domain
}

// NewDomains builds the three domains for a constraint system of n rows. n
// must already be a power of two (callers round up row counts themselves so
// this stays a pure constructor, not a silent-rounding one).
func NewDomains(n int) (*Domains, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: domain size %d is not a power of two", errs.ErrDomainCreation, n)
	}
	return &Domains{
		N:           n,
		Mid:         4 * n,
		Large:       8 * n,
		Domain:      fft.NewDomain(uint64(n)),
		DomainMid:   fft.NewDomain(uint64(4 * n)),
		DomainLarge: fft.NewDomain(uint64(8 * n)),
	}, nil
}
