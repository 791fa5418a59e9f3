// Package errs holds the typed failure kinds of §7. Every fallible public
// operation in this module returns one of these (wrapped with context via
// fmt.Errorf("%w: ...", errs.ErrX)) rather than panicking or retrying.
package errs

import "errors"

var (
	// ErrWitnessInconsistent: witness length != W*n.
	ErrWitnessInconsistent = errors.New("witness: length does not match column width * domain size")

	// ErrProofCreation: a derived invariant failed during proving
	// (e.g. z[n-3] != 1).
	ErrProofCreation = errors.New("prove: derived invariant failed")

	// ErrPolyDivision: a polynomial claimed divisible by another has a
	// nonzero remainder. Fatal: either a bug or a malformed input.
	ErrPolyDivision = errors.New("polynomial division: nonzero remainder")

	// ErrProofVerification: a verifier-side algebraic check failed.
	ErrProofVerification = errors.New("verify: algebraic identity check failed")

	// ErrOpenProof: an IPA batch check failed.
	ErrOpenProof = errors.New("ipa: batch opening check failed")

	// ErrDomainCreation: requested domain size unsupported by available
	// roots of unity.
	ErrDomainCreation = errors.New("domain: unsupported size")

	// ErrOracleCommit: sponge absorbed an invalid element (e.g. point at
	// infinity).
	ErrOracleCommit = errors.New("sponge: invalid element absorbed")
)
