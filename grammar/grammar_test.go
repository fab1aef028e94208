package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex/charstream"
	"github.com/lukeod/rustlex/peg"
)

func tryTop(t *testing.T, g *Grammar, input string) (peg.Match, string, bool) {
	t.Helper()
	s := charstream.New([]rune(input))
	ev := peg.NewEvaluator(g)
	for _, name := range g.TopLevel() {
		snapPos := s.Pos()
		m, ok := ev.Eval(s, peg.Rule(name))
		if ok {
			return m, name, true
		}
		s.Restore(snapPos)
	}
	return peg.Match{}, "", false
}

func TestBuildDoesNotPanicForAnyEdition(t *testing.T) {
	for _, ed := range []Edition{E2015, E2021, E2024} {
		assert.NotPanics(t, func() { Build(ed) })
	}
}

func TestHexIntegerWinsOverDecimal(t *testing.T) {
	g := Build(E2021)
	m, kind, ok := tryTop(t, g, "0x3")
	require.True(t, ok)
	assert.Equal(t, "Integer_literal", kind)
	assert.Equal(t, 3, m.CharLen)
}

func TestDotDotIsTwoPunctuationTokens(t *testing.T) {
	g := Build(E2021)
	s := charstream.New([]rune("1..2"))
	ev := peg.NewEvaluator(g)

	m, ok := ev.Eval(s, peg.Rule("Integer_literal"))
	require.True(t, ok)
	assert.Equal(t, 1, m.CharLen)

	m, ok = ev.Eval(s, peg.Rule("Punctuation"))
	require.True(t, ok)
	assert.Equal(t, 1, m.CharLen)

	m, ok = ev.Eval(s, peg.Rule("Punctuation"))
	require.True(t, ok)
	assert.Equal(t, 1, m.CharLen)

	m, ok = ev.Eval(s, peg.Rule("Integer_literal"))
	require.True(t, ok)
	assert.Equal(t, 1, m.CharLen)
}

func TestNestedBlockCommentBalances(t *testing.T) {
	g := Build(E2021)
	m, kind, ok := tryTop(t, g, "/* /* */ */")
	require.True(t, ok)
	assert.Equal(t, "Block_comment", kind)
	assert.Equal(t, 11, m.CharLen)
}

func TestUnbalancedNestedBlockCommentRejectedByGrammarShape(t *testing.T) {
	g := Build(E2021)
	_, kind, ok := tryTop(t, g, "/* xyz /*/")
	require.True(t, ok)
	assert.Equal(t, "Unterminated_block_comment", kind)
}

func TestRawStringHashBalance(t *testing.T) {
	g := Build(E2021)
	m, kind, ok := tryTop(t, g, `r#"ab"c"#xyz`)
	require.True(t, ok)
	assert.Equal(t, "Raw_double_quoted_literal", kind)
	assert.Equal(t, len([]rune(`r#"ab"c"#xyz`)), m.CharLen)
}

func TestLifetimeOrLabel(t *testing.T) {
	g := Build(E2021)
	m, kind, ok := tryTop(t, g, "'Kelvin")
	require.True(t, ok)
	assert.Equal(t, "Lifetime_or_label", kind)
	assert.Equal(t, 7, m.CharLen)
}

func TestAmbiguousQuoteIdentQuoteFailsEveryAlternative(t *testing.T) {
	g := Build(E2021)
	_, kind, ok := tryTop(t, g, "'ab'c")
	require.True(t, ok, "falls through to the unterminated-literal catch-all")
	assert.Equal(t, "Unterminated_literal", kind)
}

func TestRawIdentifierRejectsNothingAtGrammarLevel(t *testing.T) {
	// r#crate is grammatically a raw identifier; package reprocess is
	// responsible for rejecting it because "crate" cannot be raw.
	g := Build(E2021)
	m, kind, ok := tryTop(t, g, "r#crate")
	require.True(t, ok)
	assert.Equal(t, "Raw_identifier", kind)
	assert.Equal(t, 7, m.CharLen)
}

func TestFloatTrailingDotStopsBeforeSecondDot(t *testing.T) {
	g := Build(E2021)
	s := charstream.New([]rune("1..2"))
	ev := peg.NewEvaluator(g)
	_, ok := ev.Eval(s, peg.Rule("Float_literal"))
	assert.False(t, ok, "1..2 must not be consumed as a trailing-dot float")
}
