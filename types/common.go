package types

import (
	"fmt"
	"math"
)

// OptionType used to define Flag types (such as Standalone, Single, Counter)
type OptionType int

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case Standalone:
		return "standalone"
	case Single:
		return "single"
	case Counter:
		return "counter"
	case File:
		return "file"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// TakesValue reports whether a flag of this type consumes a value from the command-line
func (o OptionType) TakesValue() bool {
	return o == Single || o == File
}

const (
	Empty      OptionType = iota // Empty denotes a Flag which is not set
	Single     OptionType = 1    // Single denotes a Flag accepting a string value
	Standalone OptionType = 2    // Standalone denotes a boolean Flag (does not accept a value)
	Counter    OptionType = 3    // Counter denotes a repeatable boolean Flag whose value is the number of occurrences
	File       OptionType = 4    // File denotes a Flag whose value is a path (stored as given, never opened)
)

// ValueHint tells completion scripts what kind of value a Flag expects
type ValueHint int

const (
	HintNone     ValueHint = iota // no hint, plain value
	HintAnyPath                   // any filesystem path
	HintFilePath                  // a path to a file
	HintDirPath                   // a path to a directory
)

// String returns the string representation of a ValueHint
func (h ValueHint) String() string {
	switch h {
	case HintAnyPath:
		return "path"
	case HintFilePath:
		return "file"
	case HintDirPath:
		return "dir"
	default:
		return "none"
	}
}

// IsPath is true for hints which denote a filesystem path
func (h ValueHint) IsPath() bool {
	return h != HintNone
}

// Range is an inclusive integer interval used to validate numeric Flag values
type Range struct {
	Min int64
	Max int64
}

// Contains reports whether v lies within [Min, Max]
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Span returns the number of integers in the range, saturating at math.MaxUint64
// for the full int64 interval
func (r Range) Span() uint64 {
	if r.Max < r.Min {
		return 0
	}

	d := uint64(r.Max) - uint64(r.Min)
	if d == math.MaxUint64 {
		return d
	}

	return d + 1
}

// String renders the range as "[min, max]"
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
