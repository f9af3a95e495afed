// Package field declares the arithmetic capability the permutation and
// sponge require from a finite-field element implementation.
package field

// Element constrains a pointer to a field element type E to the operations
// used by the permutation and sponge. The method shapes follow the
// gnark-crypto field packages, so their element types (bn254 fr, bls12-377
// fr, babybear, ...) satisfy the constraint directly.
type Element[E any] interface {
	*E

	// Add sets the receiver to x+y and returns it.
	Add(x, y *E) *E
	// Mul sets the receiver to x*y and returns it.
	Mul(x, y *E) *E
	// SetZero sets the receiver to the additive identity and returns it.
	SetZero() *E
}
