// Package permutation implements the Poseidon permutation generically over a
// prime-field element type. A Config bundles the constants that define one
// concrete permutation (round counts, round-constant table, MDS matrix and
// S-box); Permute applies the round schedule to a state in place.
package permutation

import (
	"fmt"

	"github.com/vocdoni/poseidon254/field"
)

// Config is an immutable Poseidon parameter set for a state of Width()
// lanes. Build one with NewConfig; a Config is safe for concurrent use, as
// Permute never writes to it.
type Config[E any, PE field.Element[E]] struct {
	width         int
	fullRounds    int
	partialRounds int

	// roundConstants holds width*(fullRounds+partialRounds) elements,
	// consumed lane-major, one per lane per round, never reused.
	roundConstants []E
	// mds is the diffusion matrix, row-major, width*width elements.
	mds []E

	sbox func(*E)
}

// NewConfig validates a parameter set once and returns an immutable Config.
//
// fullRounds must be even (the full rounds are split in halves around the
// partial rounds), mds must be square and match the round-constant table,
// which needs exactly len(mds)*(fullRounds+partialRounds) entries. The sbox
// mutates a single lane in place. All inputs are copied; the caller keeps
// ownership of its slices.
func NewConfig[E any, PE field.Element[E]](fullRounds, partialRounds int, mds [][]E, roundConstants []E, sbox func(*E)) (*Config[E, PE], error) {
	if fullRounds < 0 || fullRounds%2 != 0 {
		return nil, fmt.Errorf("poseidon254: full rounds must be even and non-negative, got %d", fullRounds)
	}
	if partialRounds < 0 {
		return nil, fmt.Errorf("poseidon254: partial rounds must be non-negative, got %d", partialRounds)
	}
	width := len(mds)
	if width == 0 {
		return nil, fmt.Errorf("poseidon254: empty mds matrix")
	}
	for i, row := range mds {
		if len(row) != width {
			return nil, fmt.Errorf("poseidon254: mds matrix is not square: row %d has %d columns, want %d", i, len(row), width)
		}
	}
	if want := width * (fullRounds + partialRounds); len(roundConstants) != want {
		return nil, fmt.Errorf("poseidon254: round constant count mismatch: got %d, want %d", len(roundConstants), want)
	}
	if sbox == nil {
		return nil, fmt.Errorf("poseidon254: nil sbox")
	}

	c := &Config[E, PE]{
		width:          width,
		fullRounds:     fullRounds,
		partialRounds:  partialRounds,
		roundConstants: make([]E, len(roundConstants)),
		mds:            make([]E, 0, width*width),
		sbox:           sbox,
	}
	copy(c.roundConstants, roundConstants)
	for _, row := range mds {
		c.mds = append(c.mds, row...)
	}
	return c, nil
}

// Width returns the state size the permutation operates on.
func (c *Config[E, PE]) Width() int { return c.width }

// FullRounds returns the total number of full rounds.
func (c *Config[E, PE]) FullRounds() int { return c.fullRounds }

// PartialRounds returns the number of partial rounds.
func (c *Config[E, PE]) PartialRounds() int { return c.partialRounds }

// Permute applies the Poseidon permutation to state in place. state must
// hold exactly Width() lanes; anything else is a caller bug and panics.
//
// Each round adds the next unconsumed round constant to every lane, applies
// the S-box (to every lane in a full round, to lane 0 only in a partial
// round) and multiplies the state by the MDS matrix. The partial rounds sit
// between the two halves of the full rounds.
func (c *Config[E, PE]) Permute(state []E) {
	if len(state) != c.width {
		panic(fmt.Sprintf("poseidon254: state size %d, want %d", len(state), c.width))
	}
	rF := c.fullRounds / 2
	next := 0

	for r := 0; r < rF; r++ {
		next = c.addRoundConstants(state, next)
		for i := range state {
			c.sbox(&state[i])
		}
		c.mix(state)
	}

	for r := 0; r < c.partialRounds; r++ {
		next = c.addRoundConstants(state, next)
		c.sbox(&state[0])
		c.mix(state)
	}

	for r := 0; r < rF; r++ {
		next = c.addRoundConstants(state, next)
		for i := range state {
			c.sbox(&state[i])
		}
		c.mix(state)
	}
}

func (c *Config[E, PE]) addRoundConstants(state []E, next int) int {
	for i := range state {
		PE(&state[i]).Add(&state[i], &c.roundConstants[next])
		next++
	}
	return next
}

// mix replaces state with the matrix-vector product mds*state,
// result[i] = sum_j mds[i][j]*state[j].
func (c *Config[E, PE]) mix(state []E) {
	newState := make([]E, c.width)
	for i := 0; i < c.width; i++ {
		var sum E
		PE(&sum).SetZero()
		rowOffset := i * c.width
		for j := 0; j < c.width; j++ {
			var prod E
			PE(&prod).Mul(&c.mds[rowOffset+j], &state[j])
			PE(&sum).Add(&sum, &prod)
		}
		newState[i] = sum
	}
	copy(state, newState)
}
