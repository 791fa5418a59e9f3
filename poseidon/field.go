package poseidon

import "math/big"

// Field is the minimal pointer-receiver method set both ScalarField
// (fr.Element) and BaseField (fp.Element) satisfy. Writing the permutation
// once against this constraint — rather than twice, by hand, per field —
// avoids the two sponges (§4.6 FqSponge/FrSponge) drifting apart, while
// still compiling down to the same field-specific arithmetic gnark-crypto
// generates per curve.
type Field[T any] interface {
	*T
	Add(a, b *T) *T
	Mul(a, b *T) *T
	Neg(a *T) *T
	Set(a *T) *T
	SetZero() *T
	SetUint64(uint64) *T
	SetBytes(b []byte) *T
	Marshal() []byte
	Equal(a *T) bool
	Exp(x T, k *big.Int) *T
	Inverse(a *T) *T
}
