package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/rustlex/grammar"
)

func TestCleanStripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("fn")...)
	s, rej := Clean(input, grammar.E2021, ModeNone)
	require.Nil(t, rej)
	assert.Equal(t, []rune("fn"), s.Remaining())
}

func TestCleanRejectsIllFormedUTF8(t *testing.T) {
	_, rej := Clean([]byte{0xFF, 0xFE}, grammar.E2021, ModeNone)
	require.NotNil(t, rej)
	assert.Equal(t, 0, rej.Offset)
}

func TestCleanNormalizesCRLF(t *testing.T) {
	s, rej := Clean([]byte("a\r\nb"), grammar.E2021, ModeNone)
	require.Nil(t, rej)
	assert.Equal(t, []rune("a\nb"), s.Remaining())
}

func TestCleanPreservesIsolatedCR(t *testing.T) {
	s, rej := Clean([]byte("a\rb"), grammar.E2021, ModeNone)
	require.Nil(t, rej)
	assert.Equal(t, []rune("a\rb"), s.Remaining())
}

func TestCleanCRCRLFYieldsCRLF(t *testing.T) {
	s, rej := Clean([]byte("a\r\r\nb"), grammar.E2021, ModeNone)
	require.Nil(t, rej)
	assert.Equal(t, []rune("a\r\nb"), s.Remaining())
}

func TestCleanRemovesShebangLine(t *testing.T) {
	s, rej := Clean([]byte("#!/usr/bin/env foo\nfn"), grammar.E2021, ModeShebang)
	require.Nil(t, rej)
	assert.Equal(t, []rune("fn"), s.Remaining())
}

func TestCleanKeepsShebangBeforeAttribute(t *testing.T) {
	s, rej := Clean([]byte("#![feature(x)]"), grammar.E2021, ModeShebang)
	require.Nil(t, rej)
	assert.Equal(t, []rune("#![feature(x)]"), s.Remaining())
}

func TestCleanRemovesFrontmatter(t *testing.T) {
	// The closing fence's own trailing newline is not part of the fence
	// match (it may carry an info-string-like tail instead), so it
	// survives into the cleaned output as leading whitespace.
	input := "---\ntitle: x\n---\nfn main() {}"
	s, rej := Clean([]byte(input), grammar.E2021, ModeShebangAndFrontmatter)
	require.Nil(t, rej)
	assert.Equal(t, []rune("\nfn main() {}"), s.Remaining())
}

func TestCleanRejectsMalformedFrontmatterFence(t *testing.T) {
	input := "---\ntitle: x\nno closing fence here"
	_, rej := Clean([]byte(input), grammar.E2021, ModeShebangAndFrontmatter)
	require.NotNil(t, rej)
	assert.Equal(t, 1, int(rej.Tag))
}
