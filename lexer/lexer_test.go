package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/token"
)

func TestTokenizeSimpleExpression(t *testing.T) {
	toks, rej := Tokenize([]rune("1..2"), grammar.E2021)
	require.Nil(t, rej)
	require.Len(t, toks, 4)
	assert.Equal(t, token.IntegerLiteral, toks[0].Kind)
	assert.Equal(t, token.Punctuation, toks[1].Kind)
	assert.Equal(t, token.Punctuation, toks[2].Kind)
	assert.Equal(t, token.IntegerLiteral, toks[3].Kind)
}

func TestTokenizeExtentRoundTrip(t *testing.T) {
	input := "fn main() { /* hi */ let x = 1; }"
	toks, rej := Tokenize([]rune(input), grammar.E2021)
	require.Nil(t, rej)
	total := 0
	for _, tok := range toks {
		total += tok.CharLen
	}
	assert.Equal(t, len([]rune(input)), total)
}

func TestTokenizeRejectsUnterminatedBlockComment(t *testing.T) {
	_, rej := Tokenize([]rune("/* xyz /*/"), grammar.E2021)
	require.NotNil(t, rej)
}

func TestFirstNonWhitespaceTokenSkipsWhitespaceAndComments(t *testing.T) {
	tok, ok := FirstNonWhitespaceToken([]rune("  // hi\nfn"), grammar.E2021)
	require.True(t, ok)
	assert.Equal(t, token.Identifier, tok.Kind)
}

func TestFirstNonWhitespaceTokenFindsAttributeBracket(t *testing.T) {
	tok, ok := FirstNonWhitespaceToken([]rune("[feature(x)]"), grammar.E2021)
	require.True(t, ok)
	assert.Equal(t, token.Punctuation, tok.Kind)
	assert.Equal(t, '[', tok.Mark)
}
