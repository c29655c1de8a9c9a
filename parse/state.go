package parse

import (
	"github.com/ef-ds/deque"
)

// State represents the current state of the argument parser
type State interface {
	Pos() int                    // Index of the current argument in the original input, -1 before the first Advance
	Advance() bool               // Move to the next pending argument, returning false when none is left
	CurrentArg() string          // Get the current argument
	Peek() (string, bool)        // Look at the next pending argument without consuming it
	Skip() (string, bool)        // Consume the next pending argument (typically a flag value)
	PushFront(newArgs ...string) // Queue arguments ahead of the remaining input, in order
	Len() int                    // Number of arguments still pending
}

type entry struct {
	value string
	pos   int
}

// DefaultState is the default implementation of the State interface. Pending arguments live in a deque
// so that expanded forms (such as split short-flag clusters) can be queued in front of the remaining input.
type DefaultState struct {
	pending *deque.Deque
	current entry
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	s := &DefaultState{
		pending: deque.New(),
		current: entry{pos: -1},
	}
	for i, a := range args {
		s.pending.PushBack(entry{value: a, pos: i})
	}

	return s
}

// Pos returns the position of the current argument in the original input.
// Arguments queued with PushFront share the position of the argument they were derived from.
func (s *DefaultState) Pos() int {
	return s.current.pos
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	v, ok := s.pending.PopFront()
	if !ok {
		return false
	}
	s.current = v.(entry)

	return true
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current.value
}

// Peek returns the next argument without advancing
func (s *DefaultState) Peek() (string, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return v.(entry).value, true
}

// Skip consumes the next argument and returns it
func (s *DefaultState) Skip() (string, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return "", false
	}
	s.current = v.(entry)

	return s.current.value, true
}

// PushFront queues newArgs so that the next Advance returns newArgs[0]
func (s *DefaultState) PushFront(newArgs ...string) {
	for i := len(newArgs) - 1; i >= 0; i-- {
		s.pending.PushFront(entry{value: newArgs[i], pos: s.current.pos})
	}
}

// Len returns the number of pending arguments
func (s *DefaultState) Len() int {
	return s.pending.Len()
}
