package heifopt

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/heifopt/types"
	"github.com/napalu/heifopt/util"
)

const (
	continuationIndent = "      "
	minWrapWidth       = 40
)

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// FlagName returns `--long or -s`, `--long` or `-s` depending on which forms the flag has
func (r *DefaultRenderer) FlagName(info *FlagInfo) string {
	switch {
	case info.Long != "" && info.Argument.Short != "":
		return "--" + info.Long + " or -" + info.Argument.Short
	case info.Long != "":
		return "--" + info.Long
	default:
		return "-" + info.Argument.Short
	}
}

// FlagUsage generates a usage string for a given command-line argument.
// The usage string includes the flag name, short name (if available), value placeholder, description,
// default value (if any), a deprecation marker and whether the flag is required or optional.
func (r *DefaultRenderer) FlagUsage(info *FlagInfo) string {
	f := info.Argument
	usage := r.FlagName(info)
	if placeholder := f.placeholder(); placeholder != "" {
		usage += " " + placeholder
	}
	if f.TypeOf == types.Counter {
		usage += " (repeatable)"
	}

	if f.Description != "" {
		usage += " \"" + f.Description + "\""
	}
	if f.DefaultValue != "" {
		usage += fmt.Sprintf(" (defaults to: %s)", f.DefaultValue)
	}
	if f.Deprecated {
		usage += " (deprecated)"
	}

	return usage + " " + f.required()
}

// PositionalUsage generates a usage string for a positional argument
func (r *DefaultRenderer) PositionalUsage(key string, info *FlagInfo) string {
	usage := r.parser.displayName(key, info)
	if info.Argument.Description != "" {
		usage += " \"" + info.Argument.Description + "\""
	}

	return usage + " " + info.Argument.required()
}

// Synopsis returns the first usage line, e.g. `usage: heif-enc [options] INPUT_FILE`
func (r *DefaultRenderer) Synopsis() string {
	var b strings.Builder
	b.WriteString("usage: " + r.parser.ProgramName())
	if r.parser.acceptedFlags.Len() > len(r.parser.positionals) {
		b.WriteString(" [options]")
	}
	for _, key := range r.parser.positionals {
		info, _ := r.parser.flagInfo(key)
		name := r.parser.displayName(key, info)
		if info.Argument.Required {
			b.WriteString(" " + name)
		} else {
			b.WriteString(" [" + name + "]")
		}
	}

	return b.String()
}

// Render writes the complete help text. Lines are wrapped at width when width is positive.
func (r *DefaultRenderer) Render(w io.Writer, width int) {
	if width > 0 {
		width = util.Max(width, minWrapWidth)
	}

	_, _ = fmt.Fprintln(w, r.Synopsis())
	if r.parser.description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", r.parser.description)
	}

	if len(r.parser.positionals) > 0 {
		_, _ = fmt.Fprint(w, "\nArguments:\n\n")
		for _, key := range r.parser.positionals {
			info, _ := r.parser.flagInfo(key)
			writeWrapped(w, r.PositionalUsage(key, info), width)
		}
	}

	_, _ = fmt.Fprint(w, "\nFlags:\n\n")
	r.parser.eachFlag(func(key string, info *FlagInfo) {
		if info.Argument.isPositional() {
			return
		}
		writeWrapped(w, r.FlagUsage(info), width)
	})
}

func writeWrapped(w io.Writer, line string, width int) {
	if width <= 0 {
		_, _ = fmt.Fprintf(w, " %s\n", line)
		return
	}

	for i, l := range util.Wrap(line, width-len(continuationIndent)) {
		if i == 0 {
			_, _ = fmt.Fprintf(w, " %s\n", l)
		} else {
			_, _ = fmt.Fprintf(w, "%s%s\n", continuationIndent, l)
		}
	}
}
