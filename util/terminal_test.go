package util

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Width            int
	Err              error
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsTerminalResult
}

func (m *MockTerminal) GetSize(fd int) (int, int, error) {
	return m.Width, 24, m.Err
}

func TestTerminalWidth(t *testing.T) {
	tests := []struct {
		name     string
		writer   func() any
		term     *MockTerminal
		expected int
	}{
		{
			name:     "buffer is never a terminal",
			writer:   func() any { return &bytes.Buffer{} },
			term:     &MockTerminal{IsTerminalResult: true, Width: 120},
			expected: 0,
		},
		{
			name:     "file attached to terminal",
			writer:   func() any { return os.Stdout },
			term:     &MockTerminal{IsTerminalResult: true, Width: 120},
			expected: 120,
		},
		{
			name:     "file not attached to terminal",
			writer:   func() any { return os.Stdout },
			term:     &MockTerminal{IsTerminalResult: false, Width: 120},
			expected: 0,
		},
		{
			name:     "size error",
			writer:   func() any { return os.Stdout },
			term:     &MockTerminal{IsTerminalResult: true, Err: errors.New("no size")},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.writer()
			switch v := w.(type) {
			case *bytes.Buffer:
				assert.Equal(t, tt.expected, TerminalWidth(v, tt.term))
			case *os.File:
				assert.Equal(t, tt.expected, TerminalWidth(v, tt.term))
			}
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("set output quality (0-100) for lossy compression", 20)
	assert.Equal(t, []string{"set output quality", "(0-100) for lossy", "compression"}, lines)

	assert.Equal(t, []string{"no wrap here"}, Wrap("no wrap here", 0))
	assert.Equal(t, []string{"superlongword"}, Wrap("superlongword", 4))
	assert.Equal(t, []string{""}, Wrap("", 10))
	assert.Equal(t, []string{"größe über", "alles"}, Wrap("größe über alles", 10), "width counts runes, not bytes")
}
