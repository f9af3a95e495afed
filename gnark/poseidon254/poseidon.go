// Package poseidon254 provides the x5/254/3 Poseidon hash as a gnark
// circuit gadget. It mirrors the native sponge flow of the root package and
// shares its parameter tables, so in-circuit and native digests agree.
package poseidon254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidon254/internal/params"
)

// Hash computes the rate-1 Poseidon hash of inputs inside a circuit,
// starting from the all-zero state, matching poseidon254.Hash.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	var initial [params.X5StateSize]frontend.Variable
	for i := range initial {
		initial[i] = 0
	}
	return HashWithInitialState(api, initial, inputs...)
}

// HashWithInitialState is Hash with an explicit initial sponge state,
// matching poseidon254.HashWithInitialState.
func HashWithInitialState(api frontend.API, initial [params.X5StateSize]frontend.Variable, inputs ...frontend.Variable) (frontend.Variable, error) {
	if len(inputs) == 0 {
		var zero frontend.Variable
		return zero, fmt.Errorf("poseidon254: need at least 1 input")
	}
	p := params.X5254T3()
	state := make([]frontend.Variable, p.StateSize)
	copy(state, initial[:])
	for _, in := range inputs {
		state[0] = api.Add(state[0], in)
		state = permute(api, p, state)
	}
	return state[0], nil
}

func permute(api frontend.API, p *params.X5, state []frontend.Variable) []frontend.Variable {
	t := p.StateSize
	rF := p.FullRounds / 2
	round := 0

	for r := 0; r < rF; r++ {
		circuitAddArcRow(api, state, p.RoundConstants, round, t)
		round++
		circuitFullSBox(api, state)
		state = circuitMix(api, state, p.MDS, t)
	}

	for r := 0; r < p.PartialRounds; r++ {
		circuitAddArcRow(api, state, p.RoundConstants, round, t)
		round++
		state[0] = circuitExp5(api, state[0])
		state = circuitMix(api, state, p.MDS, t)
	}

	for r := 0; r < rF; r++ {
		circuitAddArcRow(api, state, p.RoundConstants, round, t)
		round++
		circuitFullSBox(api, state)
		state = circuitMix(api, state, p.MDS, t)
	}

	return state
}

func circuitAddArcRow(api frontend.API, state []frontend.Variable, arc []fr.Element, round, width int) {
	offset := round * width
	for i := 0; i < width; i++ {
		state[i] = api.Add(state[i], arc[offset+i])
	}
}

func circuitMix(api frontend.API, state []frontend.Variable, matrix []fr.Element, width int) []frontend.Variable {
	out := make([]frontend.Variable, width)
	for i := 0; i < width; i++ {
		offset := i * width
		sum := api.Mul(state[0], matrix[offset])
		for j := 1; j < width; j++ {
			sum = api.Add(sum, api.Mul(state[j], matrix[offset+j]))
		}
		out[i] = sum
	}
	return out
}

func circuitFullSBox(api frontend.API, state []frontend.Variable) {
	for i := range state {
		state[i] = circuitExp5(api, state[i])
	}
}

func circuitExp5(api frontend.API, v frontend.Variable) frontend.Variable {
	v2 := api.Mul(v, v)
	v4 := api.Mul(v2, v2)
	return api.Mul(v4, v)
}
