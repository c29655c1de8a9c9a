package heifopt

import (
	"fmt"
	"strings"

	"github.com/napalu/heifopt/types"
)

// Argument defines a command-line Flag
type Argument struct {
	Description  string
	TypeOf       types.OptionType
	Required     bool
	Short        string
	DefaultValue string
	ValueName    string          // placeholder shown in help, e.g. FILE
	Hint         types.ValueHint // what kind of value completion should offer
	Range        *types.Range    // inclusive bounds for integer values
	Deprecated   bool            // still accepted, marked in help
	ShortCircuit bool            // when seen, required checks are skipped (help-style flags)
	Position     *int            // set for positional arguments
	configErr    error
}

// NewArgument convenience initialization method to describe Flags. Alternatively, Use NewArg to
// configure Argument using option functions.
func NewArgument(shortFlag string, description string, typeOf types.OptionType, required bool, defaultValue string) *Argument {
	return &Argument{
		Description:  description,
		TypeOf:       typeOf,
		Required:     required,
		Short:        shortFlag,
		DefaultValue: defaultValue,
	}
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	return strings.TrimLeft(fmt.Sprintf("%s %s %s", a.short(), a.description(), a.required()), " ")
}

func (a *Argument) ensureInit() {
	if a.TypeOf == types.Empty {
		a.TypeOf = types.Single
	}
}

func (a *Argument) isPositional() bool {
	return a.Position != nil
}

// placeholder is the value token shown after the flag name in help output
func (a *Argument) placeholder() string {
	if !a.TypeOf.TakesValue() {
		return ""
	}
	if a.ValueName != "" {
		return "<" + a.ValueName + ">"
	}
	if a.Range != nil {
		return fmt.Sprintf("<%d-%d>", a.Range.Min, a.Range.Max)
	}
	if a.Hint.IsPath() {
		return "<" + strings.ToUpper(a.Hint.String()) + ">"
	}

	return "<value>"
}

func (a *Argument) short() string {
	if a.Short == "" {
		return ""
	}

	return "or -" + a.Short
}

func (a *Argument) required() string {
	if a.Required {
		return "(required)"
	}

	return "(optional)"
}

func (a *Argument) description() string {
	d := a.DefaultValue
	if d != "" {
		return fmt.Sprintf("\"%s\" (defaults to: %s)", a.Description, d)
	}

	return fmt.Sprintf("\"%s\"", a.Description)
}
