// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package heifopt provides support for command-line processing of single-command tools such as heif-enc.
//
// It supports 4 types of flags:
//
//	Single - a flag which expects a value, optionally restricted to an integer range
//	Standalone - a boolean flag which by default takes no value (defaults to true) but may accept `--flag=false`
//	Counter - a repeatable boolean flag which counts its occurrences (`-vv` is 2)
//	File - a flag which expects a path, stored as given
//
// Positional arguments are declared with WithPosition. A Parser also describes itself for completion
// (see GetCompletionData) so the completion package can render shell scripts from the same declaration.
package heifopt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/napalu/heifopt/completion"
	"github.com/napalu/heifopt/parse"
	"github.com/napalu/heifopt/types"
	"github.com/napalu/heifopt/util"
	orderedmap "github.com/wk8/go-ordered-map"
)

// NewParser convenience initialization method. Use NewParserWith to
// configure Parser using option functions.
func NewParser() *Parser {
	return &Parser{
		acceptedFlags:  orderedmap.New(),
		longNames:      map[string]string{},
		lookup:         map[string]string{},
		positionals:    []string{},
		options:        map[string]string{},
		counts:         map[string]int{},
		positionalArgs: []PositionalArgument{},
		errors:         []error{},
		bind:           make(map[string]any, 1),
		terminal:       util.DefaultTerminal{},
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
}

// ProgramName returns the configured program name, or the base name of the running executable
func (p *Parser) ProgramName() string {
	if p.programName != "" {
		return p.programName
	}

	return filepath.Base(os.Args[0])
}

// Description returns the program description set with WithProgramDescription
func (p *Parser) Description() string {
	return p.description
}

// Parse processes args (without the program name) against the declared flags and positional arguments.
// Returns true when no error was found; errors are available through GetErrors. Each call starts from a
// clean state, so a Parser can be reused.
func (p *Parser) Parse(args []string) bool {
	p.reset()

	terminated := false
	state := parse.NewState(args)
	for state.Advance() {
		cur := state.CurrentArg()
		switch {
		case terminated || !isFlag(cur):
			p.positionalArgs = append(p.positionalArgs, PositionalArgument{Position: state.Pos(), Value: cur})
		case cur == "--":
			terminated = true
		case isLongFlag(cur):
			p.parseLongFlag(state, cur[2:])
		default:
			p.parseShortFlags(state, cur[1:])
		}
	}

	p.setPositionalArguments()
	p.validateRequired()

	return len(p.errors) == 0
}

// ParseString splits argString with POSIX shell quoting rules and calls Parse
func (p *Parser) ParseString(argString string) bool {
	args, err := parse.Split(argString)
	if err != nil {
		p.reset()
		p.addError(fmt.Errorf("could not split arguments: %w", err))
		return false
	}

	return p.Parse(args)
}

// ShortCircuited is true when the last Parse saw a flag declared with SetShortCircuit (such as --help)
func (p *Parser) ShortCircuited() bool {
	return p.shortCircuit
}

// GetPositionalArgs returns the positional arguments seen by the last Parse, in command-line order
func (p *Parser) GetPositionalArgs() []PositionalArgument {
	return p.positionalArgs
}

// GetPositionalArgCount returns the number of positional arguments seen by the last Parse
func (p *Parser) GetPositionalArgCount() int {
	return len(p.positionalArgs)
}

// Get returns the value of a flag (by long name, short name or positional name). When the flag was not
// supplied its default value is returned. The second return value is false when there is neither.
func (p *Parser) Get(flag string) (string, bool) {
	key, info, found := p.resolve(flag)
	if !found {
		return "", false
	}
	if value, ok := p.options[key]; ok {
		return value, true
	}
	if info.Argument.DefaultValue != "" {
		return info.Argument.DefaultValue, true
	}

	return "", false
}

// GetOrDefault calls Get and returns defaultValue when the flag has no value
func (p *Parser) GetOrDefault(flag string, defaultValue string) string {
	value, found := p.Get(flag)
	if !found {
		return defaultValue
	}

	return value
}

// GetBool attempts to convert the value of a Standalone flag to a bool
func (p *Parser) GetBool(flag string) (bool, error) {
	value, found := p.Get(flag)
	if !found {
		return false, fmt.Errorf(FmtErrorWithString, ErrFlagNotFound, flag)
	}

	return strconv.ParseBool(value)
}

// GetInt attempts to convert the value of a flag to an int64 of the given bitSize
func (p *Parser) GetInt(flag string, bitSize int) (int64, error) {
	value, found := p.Get(flag)
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrFlagNotFound, flag)
	}

	return strconv.ParseInt(value, 10, bitSize)
}

// GetCount returns how often a Counter flag was seen by the last Parse
func (p *Parser) GetCount(flag string) int {
	key, _, found := p.resolve(flag)
	if !found {
		return 0
	}

	return p.counts[key]
}

// HasFlag returns true when the flag (or positional argument) was supplied on the command-line
func (p *Parser) HasFlag(flag string) bool {
	key, _, found := p.resolve(flag)
	if !found {
		return false
	}
	_, ok := p.options[key]

	return ok
}

// GetOptions returns the flags and positional arguments supplied on the command-line, in declaration order
func (p *Parser) GetOptions() []types.KeyValue[string, string] {
	keyValues := make([]types.KeyValue[string, string], 0, len(p.options))
	p.eachFlag(func(key string, _ *FlagInfo) {
		if value, ok := p.options[key]; ok {
			keyValues = append(keyValues, types.KeyValue[string, string]{Key: key, Value: value})
		}
	})

	return keyValues
}

// AddFlag is used to define a Flag. A Flag represents a command line option with a "long" name and an
// optional single-character "short" form, prefixed by '--' and '-' respectively. A flag with an empty
// long name is only reachable through its short form. Arguments configured WithPosition are registered
// as positional arguments under flag.
func (p *Parser) AddFlag(flag string, argument *Argument) error {
	if argument == nil {
		return fmt.Errorf("argument for flag '%s' is nil", flag)
	}
	if argument.configErr != nil {
		return fmt.Errorf("flag '%s': %w", flag, argument.configErr)
	}
	argument.ensureInit()

	if argument.Range != nil && !argument.TypeOf.TakesValue() {
		return fmt.Errorf("%w: flag '%s' is %s", ErrRangeNotApplicable, flag, argument.TypeOf)
	}

	if argument.isPositional() {
		return p.addPositional(flag, argument)
	}

	key := flag
	if key == "" {
		key = argument.Short
	}
	if key == "" {
		return ErrEmptyFlag
	}

	if _, exists := p.acceptedFlags.Get(key); exists {
		return fmt.Errorf("%w: '%s'", ErrFlagAlreadyExists, key)
	}
	if flag != "" {
		if _, exists := p.longNames[flag]; exists {
			return fmt.Errorf("%w: '%s'", ErrFlagAlreadyExists, flag)
		}
	}
	if argument.Short != "" {
		if existing, exists := p.lookup[argument.Short]; exists {
			return fmt.Errorf("%w: '-%s' on flag '%s' is already used by '%s'", ErrShortFlagConflict, argument.Short, key, existing)
		}
		p.lookup[argument.Short] = key
	}
	if flag != "" {
		p.longNames[flag] = key
	}

	p.acceptedFlags.Set(key, &FlagInfo{
		Argument: argument,
		Long:     flag,
	})

	return nil
}

// BindFlagToParser is a helper function to allow passing generics to the Parser.BindFlag method
func BindFlagToParser[T Bindable](p *Parser, data *T, flag string, argument *Argument) error {
	if p == nil {
		return ErrBindNilPointer
	}
	if data == nil {
		return ErrBindNilPointer
	}

	return p.BindFlag(data, flag, argument)
}

// BindFlag is used to bind a *pointer* to a string, integer or bool variable with a Flag which is set when
// Parse is invoked. Default values are applied to the variable at bind time and at the start of each Parse;
// flags without a default are reset to the zero value instead.
// Counter flags bind to integers and receive the occurrence count.
// An error is returned if data cannot be bound - for compile-time safety use BindFlagToParser instead
func (p *Parser) BindFlag(bindPtr any, flag string, argument *Argument) error {
	if bindPtr == nil || (reflect.ValueOf(bindPtr).Kind() == reflect.Ptr && reflect.ValueOf(bindPtr).IsNil()) {
		return ErrBindNilPointer
	}
	if argument == nil {
		return fmt.Errorf("argument for flag '%s' is nil", flag)
	}
	argument.ensureInit()
	if ok, err := util.CanConvert(bindPtr, argument.TypeOf); !ok {
		return fmt.Errorf("flag '%s': %w", flag, err)
	}

	if err := p.AddFlag(flag, argument); err != nil {
		return err
	}

	key := flag
	if key == "" {
		key = argument.Short
	}
	p.bind[key] = bindPtr

	return p.applyBoundDefault(key, argument)
}

// GetArgument returns the Argument declared for flag (long name, short name or positional name)
func (p *Parser) GetArgument(flag string) (*Argument, error) {
	_, info, found := p.resolve(flag)
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrFlagNotFound, flag)
	}

	return info.Argument, nil
}

// GetShortFlag maps a long flag to its short form
func (p *Parser) GetShortFlag(flag string) (string, error) {
	argument, err := p.GetArgument(flag)
	if err != nil {
		return "", err
	}
	if argument.Short == "" {
		return "", fmt.Errorf("flag '%s' has no short form", flag)
	}

	return argument.Short, nil
}

// GetErrors returns a list of the errors encountered during Parse
func (p *Parser) GetErrors() []error {
	return p.errors
}

// GetErrorCount is greater than zero when errors were encountered during Parse.
func (p *Parser) GetErrorCount() int {
	return len(p.errors)
}

// PrintErrors writes each error of the last Parse to the configured stderr
func (p *Parser) PrintErrors() {
	for _, err := range p.errors {
		_, _ = fmt.Fprintf(p.stderr, "error: %s\n", err)
	}
}

// GetCompletionData describes the declared flags and positional arguments for completion script generation
func (p *Parser) GetCompletionData() completion.CompletionData {
	data := completion.CompletionData{
		Flags:       make([]completion.FlagPair, 0, p.acceptedFlags.Len()),
		Positionals: make([]completion.PositionalArg, 0, len(p.positionals)),
		FlagValues:  make(map[string][]completion.CompletionValue),
	}

	p.eachFlag(func(key string, info *FlagInfo) {
		if info.Argument.isPositional() {
			return
		}
		addFlagToCompletionData(&data, info)
	})

	for _, key := range p.positionals {
		info, _ := p.flagInfo(key)
		data.Positionals = append(data.Positionals, completion.PositionalArg{
			Name:        p.displayName(key, info),
			Description: info.Argument.Description,
			Type:        completionType(info.Argument),
			Required:    info.Argument.Required,
		})
	}

	return data
}

// GenerateCompletion renders the completion script of this Parser for shell
func (p *Parser) GenerateCompletion(shell completion.Shell) string {
	return shell.Generator().Generate(p.ProgramName(), p.GetCompletionData())
}

// PrintUsage pretty prints accepted Flags and positional arguments to io.Writer. Descriptions are wrapped
// to the terminal width when writer is a terminal.
func (p *Parser) PrintUsage(writer io.Writer) {
	NewRenderer(p).Render(writer, util.TerminalWidth(writer, p.terminal))
}

// Usage calls PrintUsage with the configured stdout
func (p *Parser) Usage() {
	p.PrintUsage(p.stdout)
}
