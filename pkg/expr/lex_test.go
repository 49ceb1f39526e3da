package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := tokenize(" 12.5*(3 + 4.)")
	require.NoError(t, err)

	var kinds []tokenKind
	var texts []string
	for _, tok := range toks {
		kinds = append(kinds, tok.kind)
		texts = append(texts, tok.String())
	}
	require.Equal(t, []tokenKind{tokenNum, tokenOp, tokenOpen, tokenNum, tokenOp, tokenNum, tokenClose}, kinds)
	require.Equal(t, []string{"12.5", "*", "(", "3", "+", "4.", ")"}, texts)
	require.Equal(t, 12.5, toks[0].value)
	require.Equal(t, opMul, toks[1].op)
}

func TestTokenizeErrors(t *testing.T) {
	for _, s := range []string{"", "   ", "1..2", "1.2.3", ".", "2+.5", "1x"} {
		_, err := tokenize(s)
		require.Error(t, err, "input %q", s)
		require.True(t, IsInvalid(err))
	}
}

func TestValidChars(t *testing.T) {
	require.True(t, validChars("1 + 2.5 * (3 - 4) / 5"))
	require.False(t, validChars(""))
	require.False(t, validChars("1e5"))
	require.False(t, validChars("1_000"))
	require.False(t, validChars("½"))
	require.False(t, validChars("2^3"))
}
