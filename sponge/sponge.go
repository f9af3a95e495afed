// Package sponge implements a sponge construction over field elements,
// generic over the permutation that diffuses the state.
package sponge

import (
	"fmt"

	"github.com/vocdoni/poseidon254/field"
)

// Permutation is the single capability a sponge needs: an in-place
// permutation of the full state.
type Permutation[E any] interface {
	Permute(state []E)
}

// Sponge holds a state of Width() field elements, of which the first Rate()
// lanes are exposed to Absorb and Squeeze; the remaining lanes are the
// hidden capacity. A Sponge is single-owner mutable state and must not be
// used from multiple goroutines without external synchronization.
type Sponge[E any, PE field.Element[E]] struct {
	perm  Permutation[E]
	state []E
	rate  int
}

// New constructs a sponge over perm with the given rate. The state width is
// len(initial) and the initial state is copied in verbatim, with no padding
// or pre-hashing; callers wanting domain separation pass a non-zero initial
// state. New fails when rate is outside [1, len(initial)].
func New[E any, PE field.Element[E]](perm Permutation[E], rate int, initial []E) (*Sponge[E, PE], error) {
	if perm == nil {
		return nil, fmt.Errorf("sponge: nil permutation")
	}
	if rate < 1 {
		return nil, fmt.Errorf("sponge: rate must be at least 1, got %d", rate)
	}
	if rate > len(initial) {
		return nil, fmt.Errorf("sponge: rate %d exceeds state width %d", rate, len(initial))
	}
	state := make([]E, len(initial))
	copy(state, initial)
	return &Sponge[E, PE]{perm: perm, state: state, rate: rate}, nil
}

// Absorb adds block lane-wise into the first Rate() lanes of the state and
// then permutes the full state, capacity lanes included. block must hold
// exactly Rate() elements; anything else is a caller bug and panics.
func (s *Sponge[E, PE]) Absorb(block []E) {
	if len(block) != s.rate {
		panic(fmt.Sprintf("sponge: block size %d, want %d", len(block), s.rate))
	}
	for i := 0; i < s.rate; i++ {
		PE(&s.state[i]).Add(&s.state[i], &block[i])
	}
	s.perm.Permute(s.state)
}

// Squeeze copies out the first Rate() lanes as the output block and then
// permutes the state. The post-squeeze permutation re-randomizes the exposed
// lanes, so consecutive Squeeze calls yield independent blocks.
func (s *Sponge[E, PE]) Squeeze() []E {
	out := make([]E, s.rate)
	copy(out, s.state[:s.rate])
	s.perm.Permute(s.state)
	return out
}

// Rate returns the number of lanes absorbed or squeezed per block.
func (s *Sponge[E, PE]) Rate() int { return s.rate }

// Width returns the total state size.
func (s *Sponge[E, PE]) Width() int { return len(s.state) }
