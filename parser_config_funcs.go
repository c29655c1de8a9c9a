package heifopt

import (
	"io"

	"github.com/napalu/heifopt/util"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	 parser, err := NewParserWith(
//			WithProgramName("heif-enc"),
//			WithFlag("quality",
//				NewArg(
//					WithShortFlag("q"),
//					WithType(types.Single),
//					WithRange(0, 100),
//					WithDescription("set output quality (0-100) for lossy compression"))),
//			WithFlag("verbose",
//				NewArg(
//					WithShortFlag("v"),
//					WithType(types.Counter))),
//			WithFlag("input",
//				NewArg(
//					WithPosition(0),
//					WithType(types.File),
//					WithValueName("INPUT_FILE"),
//					SetRequired(true))))
func NewParserWith(configs ...ConfigureCmdLineFunc) (*Parser, error) {
	cmdLine := NewParser()

	var err error
	for _, config := range configs {
		config(cmdLine, &err)
		if err != nil {
			return nil, err
		}
	}

	return cmdLine, err
}

// WithFlag is a wrapper for AddFlag which is used to define a flag.
// A flag represents a command line option as a "long" and optional "short" form
// which is prefixed by '--' and '-' respectively.
func WithFlag(flag string, argument *Argument) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		*err = cmdLine.AddFlag(flag, argument)
	}
}

// WithBindFlag is a wrapper to BindFlag which is used to bind a pointer to a variable with a flag.
// The following variable types are supported:
//   - *string
//   - *int, *int8, *int16, *int32, *int64
//   - *uint, *uint8, *uint16, *uint32, *uint64
//   - *bool
func WithBindFlag[T Bindable](flag string, bindVar *T, argument *Argument) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		*err = BindFlagToParser(cmdLine, bindVar, flag, argument)
	}
}

// WithProgramName sets the name used in usage output and as the completion target
func WithProgramName(name string) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		cmdLine.programName = name
	}
}

// WithProgramDescription sets the one-line program description printed by PrintUsage
func WithProgramDescription(description string) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		cmdLine.description = description
	}
}

// WithStdout sets the writer used by Usage
func WithStdout(w io.Writer) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		cmdLine.stdout = w
	}
}

// WithStderr sets the writer used by PrintErrors
func WithStderr(w io.Writer) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		cmdLine.stderr = w
	}
}

// WithTerminal replaces the terminal used to detect the help output width
func WithTerminal(t util.Terminal) ConfigureCmdLineFunc {
	return func(cmdLine *Parser, err *error) {
		cmdLine.terminal = t
	}
}
