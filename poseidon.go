// Package poseidon254 implements the Poseidon hash over the BN254 scalar
// field: x^5 S-box, state width 3, rate 1 (the x5/254/3 instance of the
// reference parameters at https://extgit.isec.tugraz.at/krypto/hadeshash).
//
// The hash drives a rate-1 sponge over the Poseidon permutation: one absorb
// per input element, then one squeeze for the digest. The generic pieces
// live in the permutation and sponge packages and work over any gnark-crypto
// field; this package fixes the field and the parameter set.
package poseidon254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidon254/internal/params"
	"github.com/vocdoni/poseidon254/sponge"
)

const (
	// Width is the permutation state size in field elements.
	Width = params.X5StateSize
	// Rate is the number of lanes absorbed or squeezed per block. The
	// remaining Width-Rate lanes are the hidden capacity.
	Rate = 1
)

// Sponge is a sponge over the x5/254/3 Poseidon permutation.
type Sponge = sponge.Sponge[fr.Element, *fr.Element]

// Hash absorbs the input elements in order into a sponge with an all-zero
// initial state and returns the first squeezed element.
//
// The all-zero initial state mirrors the reference implementation; it is a
// placeholder rather than a standardized value. Callers needing domain
// separation should use HashWithInitialState.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	return HashWithInitialState([Width]fr.Element{}, inputs...)
}

// HashWithInitialState is Hash with an explicit initial sponge state, for
// callers that separate domains by seeding the capacity (see
// InitialStateFromSeed).
func HashWithInitialState(initial [Width]fr.Element, inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) == 0 {
		return fr.Element{}, fmt.Errorf("poseidon254: need at least 1 input")
	}
	s, err := NewSponge(initial)
	if err != nil {
		return fr.Element{}, err
	}
	for i := range inputs {
		s.Absorb(inputs[i : i+1])
	}
	return s.Squeeze()[0], nil
}

// NewSponge returns a rate-1 sponge over the x5/254/3 permutation for
// streaming absorb/squeeze use. Repeated Squeeze calls yield an extendable
// output stream.
func NewSponge(initial [Width]fr.Element) (*Sponge, error) {
	return sponge.New[fr.Element](params.X5254T3Config(), Rate, initial[:])
}
