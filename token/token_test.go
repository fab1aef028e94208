package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "IntegerLiteral", IntegerLiteral.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenEnd(t *testing.T) {
	tok := Token{CharOffset: 3, CharLen: 4}
	assert.Equal(t, 7, tok.End())
}

func TestBaseAndStyleStrings(t *testing.T) {
	assert.Equal(t, "Hex", Hex.String())
	assert.Equal(t, "OuterDoc", OuterDoc.String())
}
