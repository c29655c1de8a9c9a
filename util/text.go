package util

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap splits s into lines of at most width runes, breaking on whitespace. Words longer than width are kept whole.
// A width <= 0 disables wrapping.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	return strings.Split(wordwrap.WrapString(s, uint(width)), "\n")
}
