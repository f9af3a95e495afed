package poseidon254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// InitialStateFromSeed derives a Width-element initial sponge state from a
// domain-separation label using SHAKE128. Each lane is read as 48 uniform
// bytes reduced mod the field modulus, so distinct labels give independent,
// near-uniform states. Deterministic for a given label.
func InitialStateFromSeed(label []byte) [Width]fr.Element {
	shake := sha3.NewShake128()
	shake.Write(label)

	var out [Width]fr.Element
	buf := make([]byte, 48)
	for i := range out {
		shake.Read(buf)
		out[i].SetBigInt(new(big.Int).SetBytes(buf))
	}
	return out
}

// HashWithSeed hashes inputs with an initial state derived from label.
// Equivalent to HashWithInitialState(InitialStateFromSeed(label), inputs...).
func HashWithSeed(label []byte, inputs ...fr.Element) (fr.Element, error) {
	return HashWithInitialState(InitialStateFromSeed(label), inputs...)
}
