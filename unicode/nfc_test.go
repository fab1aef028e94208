package unicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNFC(t *testing.T) {
	// "e" + combining acute (U+0301) composes to U+00E9 (é).
	decomposed := "é"
	composed := ToNFC(decomposed)
	assert.Equal(t, "é", composed)
	assert.True(t, IsNFC(composed))
	assert.False(t, IsNFC(decomposed))
}

func TestToNFCIdempotent(t *testing.T) {
	s := ToNFC("café")
	assert.Equal(t, s, ToNFC(s))
}
