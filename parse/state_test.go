package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_AdvanceAndPeek(t *testing.T) {
	s := NewState([]string{"-q", "80", "in.png"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Advance())
	assert.Equal(t, "-q", s.CurrentArg())
	assert.Equal(t, 0, s.Pos())

	next, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "80", next)
	assert.Equal(t, "-q", s.CurrentArg(), "peek should not move the cursor")

	value, ok := s.Skip()
	assert.True(t, ok)
	assert.Equal(t, "80", value)
	assert.Equal(t, 1, s.Pos())

	assert.True(t, s.Advance())
	assert.Equal(t, "in.png", s.CurrentArg())
	assert.False(t, s.Advance())

	_, ok = s.Peek()
	assert.False(t, ok)
	_, ok = s.Skip()
	assert.False(t, ok)
}

func TestState_PushFront(t *testing.T) {
	s := NewState([]string{"-vvL", "in.png"})
	assert.True(t, s.Advance())

	s.PushFront("-v", "-v", "-L")
	assert.Equal(t, 4, s.Len())

	var seen []string
	for s.Advance() {
		seen = append(seen, s.CurrentArg())
		if s.CurrentArg() == "-L" {
			assert.Equal(t, 0, s.Pos(), "expanded arguments keep the position of their source")
		}
	}
	assert.Equal(t, []string{"-v", "-v", "-L", "in.png"}, seen)
	assert.Equal(t, 1, s.Pos())
}
