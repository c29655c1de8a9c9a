package heifopt

import (
	"errors"
	"io"

	"github.com/napalu/heifopt/util"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Bindable lists the variable types BindFlag accepts
type Bindable interface {
	~string | ~int | int8 | int16 | int32 | int64 | ~uint | uint8 | uint16 | uint32 | uint64 | bool
}

// ConfigureCmdLineFunc is used when defining Parser options
type ConfigureCmdLineFunc func(cmdLine *Parser, err *error)

// ConfigureArgumentFunc is used when defining Flag arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// PositionalArgument describes a command-line argument which was not matched as a flag or a flag value.
type PositionalArgument struct {
	Position int       // index in the argument vector passed to Parse
	Value    string    // the argument as given
	Argument *Argument // the declared positional it was assigned to, nil if none
}

// FlagInfo is used to store information about a flag
type FlagInfo struct {
	Argument *Argument
	Long     string // long name, empty for flags only reachable by their short form
}

// Parser opaque struct used in all Flag manipulation
type Parser struct {
	programName    string
	description    string
	acceptedFlags  *orderedmap.OrderedMap // key -> *FlagInfo, in declaration order
	longNames      map[string]string      // long name -> key
	lookup         map[string]string      // short name -> key
	positionals    []string               // keys of positional arguments, ordered by position
	options        map[string]string
	counts         map[string]int
	positionalArgs []PositionalArgument
	errors         []error
	bind           map[string]any
	shortCircuit   bool
	terminal       util.Terminal
	stderr         io.Writer
	stdout         io.Writer
}

var (
	ErrFlagNotFound       = errors.New("flag not found")
	ErrEmptyFlag          = errors.New("can't set empty flag")
	ErrFlagAlreadyExists  = errors.New("flag already exists")
	ErrShortFlagConflict  = errors.New("short flag already exists")
	ErrInvalidShortFlag   = errors.New("short flag must be a single character")
	ErrPositionConflict   = errors.New("position already taken")
	ErrRangeNotApplicable = errors.New("ranges only apply to flags which take a value")
	ErrBindNilPointer     = errors.New("can't bind flag to nil")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrFlagExpectsValue   = errors.New("flag expects a value")
	ErrUnexpectedValue    = errors.New("flag does not take a value")
	ErrInvalidBoolean     = errors.New("value is not a valid boolean")
	ErrInvalidInteger     = errors.New("value is not a valid integer")
	ErrOutOfRange         = errors.New("value out of range")
	ErrDuplicateFlag      = errors.New("flag cannot be used multiple times")
	ErrRequiredFlag       = errors.New("missing required flag")
	ErrRequiredPositional = errors.New("missing required argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

const (
	FmtErrorWithString = "%w: %s"
)
