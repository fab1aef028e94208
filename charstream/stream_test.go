package charstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamPeekAdvance(t *testing.T) {
	s := New([]rune("aé中"))
	r, ok := s.Peek(0)
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = s.Peek(1)
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = s.Peek(10)
	assert.False(t, ok)

	assert.Equal(t, 0, s.ByteOffset())
	s.Advance(1)
	assert.Equal(t, 1, s.ByteOffset()) // 'a' is one byte
	s.Advance(1)
	assert.Equal(t, 3, s.ByteOffset()) // 'é' is two bytes
	s.Advance(1)
	assert.True(t, s.AtEnd())
	assert.Equal(t, 6, s.ByteOffset()) // '中' is three bytes
}

func TestStreamSaveRestore(t *testing.T) {
	s := New([]rune("abc"))
	s.Advance(2)
	mark := s.Save()
	s.Advance(1)
	assert.True(t, s.AtEnd())
	s.Restore(mark)
	assert.False(t, s.AtEnd())
	assert.Equal(t, 2, s.Pos())
}

func TestStreamRemaining(t *testing.T) {
	s := New([]rune("abc"))
	s.Advance(1)
	assert.Equal(t, []rune("bc"), s.Remaining())
}

func TestNewWithOffsetsPanicsOnBadLength(t *testing.T) {
	assert.Panics(t, func() {
		NewWithOffsets([]rune("ab"), []int{0, 1})
	})
}
