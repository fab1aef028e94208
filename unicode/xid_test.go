package unicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsXIDStart(t *testing.T) {
	assert.True(t, IsXIDStart('a'))
	assert.True(t, IsXIDStart('Z'))
	assert.False(t, IsXIDStart('_'), "underscore is IDENT_START but not XID_Start on its own")
	assert.True(t, IsXIDStart('π'))
	assert.False(t, IsXIDStart('1'))
	assert.False(t, IsXIDStart(' '))
}

func TestIsXIDContinue(t *testing.T) {
	assert.True(t, IsXIDContinue('a'))
	assert.True(t, IsXIDContinue('1'))
	assert.True(t, IsXIDContinue('_'))
	assert.False(t, IsXIDContinue(' '))
	assert.False(t, IsXIDContinue('-'))
}

func TestIsPatternWhiteSpace(t *testing.T) {
	for _, c := range []rune{' ', '\t', '\n', '\r', 0x0085, 0x200E, 0x2028} {
		assert.Truef(t, IsPatternWhiteSpace(c), "expected %U to be Pattern_White_Space", c)
	}
	assert.False(t, IsPatternWhiteSpace('a'))
}
