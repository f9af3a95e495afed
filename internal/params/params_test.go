package params

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) fr.Element {
	t.Helper()
	e, err := elementFromHex(s)
	require.NoError(t, err)
	return e
}

func TestParseConstants(t *testing.T) {
	raw := "0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e\n00f1445235f2148c5986587169fc1bcd887b08d4d00868df5696fff40956e864"
	elements, err := ParseConstants(raw)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	// Checking the sum against a known hex value verifies the parse without
	// depending on the internal element representation.
	var sum fr.Element
	sum.Add(&elements[0], &elements[1])
	expected := mustHex(t, "0fdae9e4f08ca9a529dfdf47c0f027ee9d3fa210e1c39272e3b8d4670e2476d2")
	require.True(t, expected.Equal(&sum), "sum mismatch: got %s", sum.String())
}

func TestParseConstantsSkipsBlankLines(t *testing.T) {
	raw := "0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e\n\n00f1445235f2148c5986587169fc1bcd887b08d4d00868df5696fff40956e864\n\n\n"
	elements, err := ParseConstants(raw)
	require.NoError(t, err)
	require.Len(t, elements, 2)
}

func TestParseConstantsRejectsBadInput(t *testing.T) {
	_, err := ParseConstants("not-hex")
	require.Error(t, err)

	// The modulus itself is not a canonical element.
	_, err = ParseConstants("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")
	require.Error(t, err)
}

func TestParseMatrix(t *testing.T) {
	matrix, err := ParseMatrix(x5MDSRows)
	require.NoError(t, err)
	require.Len(t, matrix, 3)
	for _, row := range matrix {
		require.Len(t, row, 3)
	}

	m00 := mustHex(t, "109b7f411ba0e4c9b2b70caf5c36a7b194be7c11ad24378bfedb68592ba8118b")
	m11 := mustHex(t, "2e2419f9ec02ec394c9871c832963dc1b89d743c8c7b964029b2311687b1fe23")
	m22 := mustHex(t, "19a3fc0a56702bf417ba7fee3802593fa644470307043f7773279cd71d25d5e0")
	require.True(t, m00.Equal(&matrix[0][0]))
	require.True(t, m11.Equal(&matrix[1][1]))
	require.True(t, m22.Equal(&matrix[2][2]))
}

func TestParseMatrixRejectsRaggedRows(t *testing.T) {
	_, err := ParseMatrix([]string{
		"0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e 00f1445235f2148c5986587169fc1bcd887b08d4d00868df5696fff40956e864",
		"0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e",
	})
	require.Error(t, err)
}

func TestX5Tables(t *testing.T) {
	p := X5254T3()
	require.Equal(t, 3, p.StateSize)
	require.Equal(t, 8, p.FullRounds)
	require.Equal(t, 57, p.PartialRounds)
	require.Len(t, p.RoundConstants, 3*(8+57))
	require.Len(t, p.MDS, 9)

	first := mustHex(t, "0ee9a592ba9a9518d05986d656f40c2114c4993c11bb29938d21d47304cd8e6e")
	second := mustHex(t, "00f1445235f2148c5986587169fc1bcd887b08d4d00868df5696fff40956e864")
	require.True(t, first.Equal(&p.RoundConstants[0]))
	require.True(t, second.Equal(&p.RoundConstants[1]))
}

// Permuting [0,1,2] must reproduce the reference implementation's output for
// the x5/254/3 instance.
func TestX5PermutationVector(t *testing.T) {
	cfg := X5254T3Config()
	require.Equal(t, 3, cfg.Width())

	state := make([]fr.Element, 3)
	state[1].SetInt64(1)
	state[2].SetInt64(2)
	cfg.Permute(state)

	expected := []fr.Element{
		mustHex(t, "115cc0f5e7d690413df64c6b9662e9cf2a3617f2743245519e19607a4417189a"),
		mustHex(t, "0fca49b798923ab0239de1c9e7a4a9a2210312b6a2f616d18b5a87f9b628ae29"),
		mustHex(t, "0e7ae82e40091e63cbd4f16a6d16310b3729d4b6e138fcf54110e2867045a30c"),
	}
	for i := range expected {
		require.True(t, expected[i].Equal(&state[i]), "lane %d: got %s", i, state[i].String())
	}
}

func TestSBoxX5(t *testing.T) {
	var x, want fr.Element
	x.SetInt64(3)
	want.SetInt64(243)
	SBoxX5(&x)
	require.True(t, want.Equal(&x))
}
