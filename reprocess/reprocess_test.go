package reprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/grammar"
	"github.com/lukeod/rustlex/peg"
	"github.com/lukeod/rustlex/token"
)

// tryTop mirrors grammar_test.go's helper: try every top-level nonterminal
// for ed at the start of input, in priority order, and reprocess whichever
// wins.
func tryTop(t *testing.T, ed grammar.Edition, input string) (token.Token, *RejectionReason) {
	t.Helper()
	g := grammar.Build(ed)
	s := charstream.New([]rune(input))
	ev := peg.NewEvaluator(g)
	for _, name := range g.TopLevel() {
		snap := s.Pos()
		m, ok := ev.Eval(s, peg.Rule(name))
		if ok {
			return Reprocess(name, m, s)
		}
		s.Restore(snap)
	}
	t.Fatalf("no top-level nonterminal matched %q", input)
	return token.Token{}, nil
}

func TestSimpleEscapeInCharLiteral(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `'\n'`)
	require.Nil(t, rej)
	assert.Equal(t, token.CharacterLiteral, tok.Kind)
	assert.Equal(t, '\n', tok.RepresentedCharacter)
}

func TestByteLiteralRejectsNonAscii(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, "b'é'")
	require.NotNil(t, rej)
	assert.Equal(t, LexFail, rej.Tag)
}

func TestHexEscapeByteLiteral(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `b'\xff'`)
	require.Nil(t, rej)
	assert.Equal(t, token.ByteLiteral, tok.Kind)
	assert.Equal(t, byte(0xFF), tok.RepresentedByte)
}

func TestStringLiteralWithUnicodeEscape(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `"a\u{41}b"`)
	require.Nil(t, rej)
	assert.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, "aAb", tok.RepresentedString)
}

func TestStringLiteralRejectsInvalidUnicodeEscape(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, `"\u{d800}"`)
	require.NotNil(t, rej)
}

func TestByteStringLiteral(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `b"ab\x00"`)
	require.Nil(t, rej)
	assert.Equal(t, token.ByteStringLiteral, tok.Kind)
	assert.Equal(t, []byte{'a', 'b', 0}, tok.RepresentedBytes)
}

func TestCStringLiteralRejectsEmbeddedNul(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, `c"ab\0cd"`)
	require.NotNil(t, rej)
}

func TestCStringLiteralHexEscapeByte(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `c"a\xffb"`)
	require.Nil(t, rej)
	assert.Equal(t, token.CStringLiteral, tok.Kind)
	assert.Equal(t, []byte{'a', 0xFF, 'b'}, tok.RepresentedBytes)
}

func TestRawStringLiteral(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `r#"a\nb"#`)
	require.Nil(t, rej)
	assert.Equal(t, token.RawStringLiteral, tok.Kind)
	assert.Equal(t, `a\nb`, tok.RepresentedString)
}

func TestRawByteStringRejectsNonAscii(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, `br"é"`)
	require.NotNil(t, rej)
}

func TestRawCStringAllowsNonAscii(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, `cr"é"`)
	require.Nil(t, rej)
	assert.Equal(t, token.RawCStringLiteral, tok.Kind)
	assert.Equal(t, []byte("é"), tok.RepresentedBytes)
}

func TestIdentifierAppliesNFC(t *testing.T) {
	// "e" + combining acute (U+0301) normalizes to "é" (U+00E9).
	tok, rej := tryTop(t, grammar.E2021, "é")
	require.Nil(t, rej)
	assert.Equal(t, token.Identifier, tok.Kind)
	assert.Equal(t, "é", tok.RepresentedIdent)
}

func TestRawIdentifierRejectsCrate(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, "r#crate")
	require.NotNil(t, rej)
	assert.Equal(t, LexFail, rej.Tag)
}

func TestRawIdentifierAcceptsOrdinaryWord(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "r#fn")
	require.Nil(t, rej)
	assert.Equal(t, token.RawIdentifier, tok.Kind)
	assert.Equal(t, "fn", tok.RepresentedIdent)
}

func TestLifetimeOrLabelName(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "'a")
	require.Nil(t, rej)
	assert.Equal(t, token.LifetimeOrLabel, tok.Kind)
	assert.Equal(t, "a", tok.Name)
}

func TestOuterDocLineComment(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "/// hello")
	require.Nil(t, rej)
	assert.Equal(t, token.LineComment, tok.Kind)
	assert.Equal(t, token.OuterDoc, tok.Style)
	assert.Equal(t, " hello", tok.Body)
}

func TestInnerDocLineComment(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "//! hello")
	require.Nil(t, rej)
	assert.Equal(t, token.InnerDoc, tok.Style)
}

func TestPlainLineCommentIsNotDoc(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "//// hello")
	require.Nil(t, rej)
	assert.Equal(t, token.NonDoc, tok.Style)
}

func TestIntegerLiteralHex(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "0xFFu8")
	require.Nil(t, rej)
	assert.Equal(t, token.IntegerLiteral, tok.Kind)
	assert.Equal(t, token.Hex, tok.IntBase)
	assert.Equal(t, "FF", tok.Digits)
	assert.Equal(t, "u8", tok.Suffix)
}

func TestIntegerLiteralRejectsBadBinaryDigits(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, "0b102")
	require.NotNil(t, rej)
}

func TestFloatLiteral(t *testing.T) {
	tok, rej := tryTop(t, grammar.E2021, "1.5e10f64")
	require.Nil(t, rej)
	assert.Equal(t, token.FloatLiteral, tok.Kind)
	assert.Equal(t, "f64", tok.Suffix)
	assert.Equal(t, "1.5e10", tok.FloatBody)
}

func TestUnterminatedBlockCommentRejects(t *testing.T) {
	_, rej := tryTop(t, grammar.E2021, "/* xyz /*/")
	require.NotNil(t, rej)
	assert.Equal(t, LexFail, rej.Tag)
}

func TestReservedPrefixRejects(t *testing.T) {
	_, rej := tryTop(t, grammar.E2015, `foo"bar"`)
	require.NotNil(t, rej)
}
