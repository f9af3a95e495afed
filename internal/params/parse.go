// Package params holds the concrete Poseidon parameter sets over the BN254
// scalar field and the parsing of their hex-encoded tables.
package params

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// elementFromHex decodes a big-endian hex string into a canonical field
// element. Values at or above the modulus are rejected rather than reduced,
// so a corrupted table cannot silently alias another one.
func elementFromHex(s string) (fr.Element, error) {
	var e fr.Element
	b, err := hex.DecodeString(s)
	if err != nil {
		return e, fmt.Errorf("poseidon254: invalid hex %q: %w", s, err)
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fr.Modulus()) >= 0 {
		return e, fmt.Errorf("poseidon254: value %q exceeds the field modulus", s)
	}
	e.SetBigInt(v)
	return e, nil
}

// ParseConstants parses hex-encoded field elements, one per line, into a
// slice. Blank lines are skipped.
func ParseConstants(raw string) ([]fr.Element, error) {
	var out []fr.Element
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		e, err := elementFromHex(line)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ParseMatrix parses a square matrix given as rows of space-separated
// hex-encoded field elements. Every row must have exactly len(rows) entries.
func ParseMatrix(rows []string) ([][]fr.Element, error) {
	t := len(rows)
	matrix := make([][]fr.Element, t)
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != t {
			return nil, fmt.Errorf("poseidon254: matrix row %d has %d entries, want %d", i, len(fields), t)
		}
		matrix[i] = make([]fr.Element, t)
		for j, s := range fields {
			e, err := elementFromHex(s)
			if err != nil {
				return nil, err
			}
			matrix[i][j] = e
		}
	}
	return matrix, nil
}
