package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	// compinit autoloads the file as _<program>, so the function carries the same name
	script.WriteString(fmt.Sprintf(`#compdef %[1]s

_%[1]s() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -s -S \
`, programName))

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf("        %s \\\n", zshFlagSpec(flag, data.FlagValues[flag.Key()])))
	}

	for i, pos := range data.Positionals {
		optional := ""
		if !pos.Required {
			optional = ":"
		}
		script.WriteString(fmt.Sprintf("        '%d:%s%s:%s' \\\n", i+1, optional, escapeZsh(pos.Name), zshAction(pos.Type, nil)))
	}

	script.WriteString(fmt.Sprintf(`        && return 0
}

if [ "$funcstack[1]" = "_%[1]s" ]; then
    _%[1]s "$@"
else
    compdef _%[1]s %[1]s
fi
`, programName))

	return script.String()
}

// zshFlagSpec renders one _arguments spec, e.g. '(-q --quality)'{-q+,--quality=}'[desc]:QUALITY:(0 1)'
func zshFlagSpec(flag FlagPair, values []CompletionValue) string {
	names := flag.Names()
	desc := "[" + escapeZshExplanation(flag.Description) + "]"

	var suffix string
	if flag.Type.TakesValue() {
		valueName := flag.ValueName
		if valueName == "" {
			valueName = strings.ToUpper(flag.Key())
		}
		suffix = ":" + escapeZsh(valueName) + ":" + zshAction(flag.Type, values)
	}

	forms := make([]string, len(names))
	for i, n := range names {
		switch {
		case !flag.Type.TakesValue():
			forms[i] = n
		case strings.HasPrefix(n, "--"):
			forms[i] = n + "="
		default:
			forms[i] = n + "+"
		}
	}

	exclusion := "(" + strings.Join(names, " ") + ")"
	if flag.Type == FlagTypeCounter {
		exclusion = "*"
	}

	if len(forms) == 1 {
		return fmt.Sprintf("'%s%s%s%s'", exclusion, forms[0], desc, suffix)
	}

	return fmt.Sprintf("'%s'{%s}'%s%s'", exclusion, strings.Join(forms, ","), desc, suffix)
}

func zshAction(t FlagType, values []CompletionValue) string {
	if len(values) > 0 {
		patterns := make([]string, len(values))
		for i, v := range values {
			patterns[i] = escapeZsh(v.Pattern)
		}
		return "(" + strings.Join(patterns, " ") + ")"
	}

	switch t {
	case FlagTypeFile, FlagTypePath:
		return "_files"
	case FlagTypeDir:
		return "_files -/"
	}

	return " "
}
