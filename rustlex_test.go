package rustlex

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex/token"
)

func tokenizeDefault(t *testing.T, input string) []token.Token {
	t.Helper()
	toks, rej := Tokenize([]byte(input), Options{Edition: E2021})
	require.Nil(t, rej, "unexpected rejection: %v", rej)
	return toks
}

// --- Universal property 1: extent round-trip ---

func TestExtentRoundTrip(t *testing.T) {
	inputs := []string{
		"fn main() {}",
		"let x: &str = \"hi\\n\";",
		"/* outer /* inner */ tail */",
		"r#\"raw\"#",
		"'a' 'b'",
	}
	for _, in := range inputs {
		toks := tokenizeDefault(t, in)
		total := 0
		for _, tok := range toks {
			total += tok.CharLen
		}
		assert.Equal(t, len([]rune(in)), total, "input %q", in)
	}
}

// --- Universal property 2: determinism ---

func TestDeterminism(t *testing.T) {
	input := "fn main() { let x = 1; }"
	a := tokenizeDefault(t, input)
	b := tokenizeDefault(t, input)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

// --- Universal property 3: progress ---

func TestProgressEveryTokenConsumesAtLeastOneChar(t *testing.T) {
	toks := tokenizeDefault(t, "fn main() {}")
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.CharLen, 1)
	}
}

// --- Universal property 4: edition monotonicity of reservations ---

func TestEditionMonotonicityReservedPrefixRejectedIn2021(t *testing.T) {
	_, rej := Tokenize([]byte("k#foo"), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

// --- Universal property 5: NFC identity ---

func TestIdentifierIsNFC(t *testing.T) {
	toks := tokenizeDefault(t, "foo")
	require.Len(t, toks, 1)
	require.Equal(t, token.Identifier, toks[0].Kind)
	assert.True(t, isNFC(toks[0].RepresentedIdent))
}

func isNFC(s string) bool {
	// Recognises only plain-ASCII strings, which are trivially in NFC; any
	// non-ASCII string reports false, NFC or not.
	for _, r := range s {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// --- Universal property 6: lifetime non-normalisation ---

func TestLifetimeNameMatchesSourceVerbatim(t *testing.T) {
	toks := tokenizeDefault(t, "'a")
	require.Len(t, toks, 1)
	assert.Equal(t, token.LifetimeOrLabel, toks[0].Kind)
	assert.Equal(t, "a", toks[0].Name)
}

// --- Universal property 7: C-string NUL freedom ---

func TestCStringRejectsEmbeddedNul(t *testing.T) {
	_, rej := Tokenize([]byte(`c"a\0b"`), Options{Edition: E2021})
	require.NotNil(t, rej)
}

// --- Universal property 9: hash balance ---

func TestRawStringRequiresBalancedHashes(t *testing.T) {
	_, rej := Tokenize([]byte(`r#"ab"`), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

// --- Concrete scenarios ---

func TestScenario1HexIntegerLiteral(t *testing.T) {
	toks := tokenizeDefault(t, "0x3")
	require.Len(t, toks, 1)
	assert.Equal(t, token.IntegerLiteral, toks[0].Kind)
	assert.Equal(t, token.Hex, toks[0].IntBase)
	assert.Equal(t, "3", toks[0].Digits)
	assert.Equal(t, "", toks[0].Suffix)
}

func TestScenario2BadBinaryDigitsRejected(t *testing.T) {
	_, rej := Tokenize([]byte("0b1e2"), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

func TestScenario3RawStringWithInnerQuoteAndHash(t *testing.T) {
	toks := tokenizeDefault(t, `r#"ab"c"#xyz`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.RawStringLiteral, toks[0].Kind)
	assert.Equal(t, `ab"c`, toks[0].RepresentedString)
	assert.Equal(t, "xyz", toks[0].Suffix)
}

func TestScenario4UnicodeEscapeCharLiteral(t *testing.T) {
	toks := tokenizeDefault(t, `'\u{211D}'`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.CharacterLiteral, toks[0].Kind)
	assert.Equal(t, rune(0x211D), toks[0].RepresentedCharacter)
	assert.Equal(t, "", toks[0].Suffix)
}

func TestScenario5ByteStringHexEscape(t *testing.T) {
	toks := tokenizeDefault(t, `b"\x80"`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.ByteStringLiteral, toks[0].Kind)
	assert.Equal(t, []byte{0x80}, toks[0].RepresentedBytes)
}

func TestScenario6CStringEmbeddedNulRejected(t *testing.T) {
	_, rej := Tokenize([]byte(`c"a\0b"`), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

func TestScenario7NestedBlockCommentNonDoc(t *testing.T) {
	toks := tokenizeDefault(t, "/* /* */ */")
	require.Len(t, toks, 1)
	assert.Equal(t, token.BlockComment, toks[0].Kind)
	assert.Equal(t, token.NonDoc, toks[0].Style)
	assert.Equal(t, "", toks[0].Body)
}

func TestScenario8UnbalancedNestedBlockCommentRejected(t *testing.T) {
	_, rej := Tokenize([]byte("/* xyz /*/"), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

func TestScenario9LifetimeNamePreserved(t *testing.T) {
	toks := tokenizeDefault(t, "'Kelvin")
	require.Len(t, toks, 1)
	assert.Equal(t, "Kelvin", toks[0].Name)
}

func TestScenario10BOMStripped(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("fn")...)
	toks, rej := Tokenize(input, Options{Edition: E2021})
	require.Nil(t, rej)
	require.Len(t, toks, 1)
	assert.Equal(t, "fn", toks[0].RepresentedIdent)
}

func TestScenario11ShebangLineRemoved(t *testing.T) {
	toks, rej := Tokenize([]byte("#!/usr/bin/env foo\nfn"), Options{Edition: E2021, Cleaning: CleaningShebang})
	require.Nil(t, rej)
	require.Len(t, toks, 1)
	assert.Equal(t, "fn", toks[0].RepresentedIdent)
}

func TestScenario12ShebangRetainedBeforeAttribute(t *testing.T) {
	toks, rej := Tokenize([]byte("#![feature(x)]"), Options{Edition: E2021, Cleaning: CleaningShebang})
	require.Nil(t, rej)
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.Punctuation, toks[0].Kind)
	assert.Equal(t, '#', toks[0].Mark)
}

func TestScenario13TwoDotsAreTwoPunctuationTokens(t *testing.T) {
	toks := tokenizeDefault(t, "1..2")
	require.Len(t, toks, 4)
	assert.Equal(t, token.IntegerLiteral, toks[0].Kind)
	assert.Equal(t, "1", toks[0].Digits)
	assert.Equal(t, token.Punctuation, toks[1].Kind)
	assert.Equal(t, '.', toks[1].Mark)
	assert.Equal(t, token.Punctuation, toks[2].Kind)
	assert.Equal(t, '.', toks[2].Mark)
	assert.Equal(t, token.IntegerLiteral, toks[3].Kind)
	assert.Equal(t, "2", toks[3].Digits)
}

func TestScenario14RawIdentifierCrateRejected(t *testing.T) {
	_, rej := Tokenize([]byte("r#crate"), Options{Edition: E2021})
	assert.NotNil(t, rej)
}

// --- Doc-comment lowering option ---

func TestLowerDocCommentsOption(t *testing.T) {
	toks, rej := Tokenize([]byte("/// hi\nfn"), Options{Edition: E2021, LowerDocComments: true})
	require.Nil(t, rej)
	require.Greater(t, len(toks), 2)
	assert.Equal(t, token.Punctuation, toks[0].Kind)
	assert.Equal(t, '#', toks[0].Mark)
}

func TestLowerDocCommentsOffLeavesRawComment(t *testing.T) {
	toks := tokenizeDefault(t, "/// hi\nfn")
	require.GreaterOrEqual(t, len(toks), 2)
	assert.Equal(t, token.LineComment, toks[0].Kind)
	assert.Equal(t, token.OuterDoc, toks[0].Style)
}

// --- Cleanup failures surface as RejectionReason too ---

func TestBadUTF8Rejected(t *testing.T) {
	_, rej := Tokenize([]byte{0xFF, 0xFE}, Options{Edition: E2021})
	require.NotNil(t, rej)
	assert.Equal(t, BadUTF8, rej.Tag)
}
