package heifopt

import (
	"fmt"
	"unicode/utf8"

	"github.com/napalu/heifopt/types"
)

// NewArg convenience initialization method to configure flags. Configuration errors are kept on the
// Argument and reported when it is added to a Parser.
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	for _, config := range configs {
		var err error
		config(argument, &err)
		if err != nil && argument.configErr == nil {
			argument.configErr = err
		}
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithDescription("set output quality"),
//	    WithType(types.Single),
//	    WithRange(0, 100),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithShortFlag sets the single-character short form of a flag. Short flags may be clustered on the
// command-line, so `-vv` counts a Counter flag twice and `-q80` passes 80 to a value flag.
func WithShortFlag(shortFlag string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if utf8.RuneCountInString(shortFlag) != 1 {
			*err = fmt.Errorf("%w: got '%s'", ErrInvalidShortFlag, shortFlag)
			return
		}
		argument.Short = shortFlag
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// WithType - one of four types:
//  1. Single - a flag which expects a value
//  2. Standalone - a boolean flag which by default takes no value (defaults to true) but may accept `--flag=false`
//  3. Counter - a repeatable flag whose value is the number of times it was seen
//  4. File - a flag which expects a path; the path is stored as given and never opened
func WithType(typeof types.OptionType) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.TypeOf = typeof
	}
}

// SetRequired when true, the flag must be supplied on the command-line
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// WithDefaultValue sets the default value for the argument
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = defaultValue
	}
}

// WithValueName sets the placeholder used for the flag value in help output
func WithValueName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ValueName = name
	}
}

// WithValueHint tells completion scripts to offer files, directories or any path for the flag value
func WithValueHint(hint types.ValueHint) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Hint = hint
	}
}

// WithRange restricts the flag to integer values within [min, max]. Values outside the range fail Parse
// with a ParseError wrapping ErrOutOfRange; they are never clamped.
func WithRange(min, max int64) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if min > max {
			*err = fmt.Errorf("invalid range: min %d is greater than max %d", min, max)
			return
		}
		argument.Range = &types.Range{Min: min, Max: max}
	}
}

// SetDeprecated marks the flag as deprecated in help output. Deprecated flags are still accepted.
func SetDeprecated(deprecated bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Deprecated = deprecated
	}
}

// SetShortCircuit marks a flag (such as --help) whose presence suspends required flag and argument checks
func SetShortCircuit(shortCircuit bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ShortCircuit = shortCircuit
	}
}

// WithPosition declares the argument as positional at the given index among positional arguments
func WithPosition(idx int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if idx < 0 {
			*err = fmt.Errorf("positional index must be non-negative, got: %d", idx)
			return
		}
		argument.Position = &idx
	}
}
