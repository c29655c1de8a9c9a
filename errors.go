package heifopt

import (
	"fmt"

	"github.com/napalu/heifopt/types"
)

// ParseError reports a command-line value that does not satisfy the declared schema. Err is one of the
// package sentinel errors so callers can use errors.Is; errors.As gives access to the offending flag and value.
type ParseError struct {
	Flag  string       // long name, short name or value name of the offending argument
	Value string       // the value as supplied, empty when no value was involved
	Range *types.Range // set for range violations
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Range != nil:
		return fmt.Sprintf("invalid value '%s' for flag '%s': %s, expected an integer in %s", e.Value, e.Flag, e.Err, e.Range)
	case e.Value != "":
		return fmt.Sprintf("invalid value '%s' for flag '%s': %s", e.Value, e.Flag, e.Err)
	default:
		return fmt.Sprintf("%s '%s'", e.Err, e.Flag)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
