package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal abstracts the x/term calls so help rendering can be tested without a tty
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal forwards to golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the column count of w when it is an *os.File attached to a terminal, 0 otherwise.
func TerminalWidth(w io.Writer, t Terminal) int {
	f, ok := w.(*os.File)
	if !ok || t == nil {
		return 0
	}

	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return 0
	}

	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}

	return width
}
