package params

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidon254/permutation"
)

// Config is the permutation configuration instantiated over the BN254
// scalar field.
type Config = permutation.Config[fr.Element, *fr.Element]

// The x5/254/3 parameter set: x^5 S-box, 254-bit field, state width 3,
// 8 full and 57 partial rounds. Round constants and MDS matrix follow the
// Poseidon reference implementation (Grain LFSR derivation) at
// https://extgit.isec.tugraz.at/krypto/hadeshash.
const (
	X5StateSize     = 3
	X5FullRounds    = 8
	X5PartialRounds = 57
)

//go:embed constants.txt
var x5ConstantsRaw string

var x5MDSRows = []string{
	"109b7f411ba0e4c9b2b70caf5c36a7b194be7c11ad24378bfedb68592ba8118b 16ed41e13bb9c0c66ae119424fddbcbc9314dc9fdbdeea55d6c64543dc4903e0 2b90bba00fca0589f617e7dcbfe82e0df706ab640ceb247b791a93b74e36736d",
	"2969f27eed31a480b9c36c764379dbca2cc8fdd1415c3dded62940bcde0bd771 2e2419f9ec02ec394c9871c832963dc1b89d743c8c7b964029b2311687b1fe23 101071f0032379b697315876690f053d148d4e109f5fb065c8aacc55a0f89bfa",
	"143021ec686a3f330d5f9e654638065ce6cd79e28c5b3753326244ee65a1b1a7 176cc029695ad02582a70eff08a6fd99d057e12e58e7d7b6b16cdfabc8ee2911 19a3fc0a56702bf417ba7fee3802593fa644470307043f7773279cd71d25d5e0",
}

// X5 bundles the raw x5/254/3 tables for consumers that work on the tables
// directly instead of going through the generic permutation (the gnark
// circuit gadget).
type X5 struct {
	StateSize     int
	FullRounds    int
	PartialRounds int

	// RoundConstants is flat and lane-major: the constant for round r,
	// lane i sits at r*StateSize+i.
	RoundConstants []fr.Element
	// MDS is the diffusion matrix, flat and row-major.
	MDS []fr.Element
}

var loadX5Once = sync.OnceValue(loadX5)

// X5254T3 returns the raw x5/254/3 tables. The tables are parsed from the
// embedded data on first use and shared, read-only, for the life of the
// process.
func X5254T3() *X5 { return loadX5Once() }

func loadX5() *X5 {
	constants, err := ParseConstants(x5ConstantsRaw)
	if err != nil {
		panic(fmt.Sprintf("poseidon254: embedded x5/254/3 constants are corrupt: %v", err))
	}
	if len(constants) != X5StateSize*(X5FullRounds+X5PartialRounds) {
		panic(fmt.Sprintf("poseidon254: embedded x5/254/3 constants: got %d entries, want %d",
			len(constants), X5StateSize*(X5FullRounds+X5PartialRounds)))
	}
	matrix, err := ParseMatrix(x5MDSRows)
	if err != nil {
		panic(fmt.Sprintf("poseidon254: embedded x5/254/3 mds matrix is corrupt: %v", err))
	}
	flat := make([]fr.Element, 0, X5StateSize*X5StateSize)
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	return &X5{
		StateSize:      X5StateSize,
		FullRounds:     X5FullRounds,
		PartialRounds:  X5PartialRounds,
		RoundConstants: constants,
		MDS:            flat,
	}
}

var buildX5ConfigOnce = sync.OnceValue(buildX5Config)

// X5254T3Config returns the x5/254/3 permutation configuration, built once
// and immutable thereafter.
func X5254T3Config() *Config { return buildX5ConfigOnce() }

func buildX5Config() *Config {
	p := X5254T3()
	mds := make([][]fr.Element, p.StateSize)
	for i := range mds {
		mds[i] = p.MDS[i*p.StateSize : (i+1)*p.StateSize]
	}
	cfg, err := permutation.NewConfig[fr.Element](p.FullRounds, p.PartialRounds, mds, p.RoundConstants, SBoxX5)
	if err != nil {
		panic(fmt.Sprintf("poseidon254: embedded x5/254/3 parameter set rejected: %v", err))
	}
	return cfg
}

// SBoxX5 raises a lane to the fifth power in place. 5 is coprime to the
// multiplicative group order of the BN254 scalar field, so the map is a
// bijection.
func SBoxX5(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Mul(x, x)
	x4.Mul(&x2, &x2)
	x.Mul(&x4, x)
}
