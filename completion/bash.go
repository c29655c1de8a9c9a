package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := funcName(programName)

	script.WriteString(fmt.Sprintf(`# bash completion for %[1]s

_%[2]s() {
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Handle flag values
    case "${prev}" in
`, programName, fn))

	for _, flag := range data.Flags {
		if !flag.Type.TakesValue() {
			continue
		}
		script.WriteString(fmt.Sprintf("        %s)\n", strings.Join(flag.Names(), "|")))
		if values, ok := data.FlagValues[flag.Key()]; ok {
			words := make([]string, len(values))
			for i, v := range values {
				words[i] = escapeBash(v.Pattern)
			}
			script.WriteString(fmt.Sprintf("            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(words, " ")))
		} else if action := bashAction(flag.Type); action != "" {
			script.WriteString(fmt.Sprintf("            COMPREPLY=( $(%s -- \"${cur}\") )\n", action))
		}
		script.WriteString("            return 0\n            ;;\n")
	}

	script.WriteString(`    esac

    # If we're completing a flag
    if [[ "${cur}" == -* ]]; then
        local flags="`)

	names := make([]string, 0, len(data.Flags)*2)
	for _, flag := range data.Flags {
		names = append(names, flag.Names()...)
	}
	script.WriteString(strings.Join(names, " "))

	script.WriteString(`"
        COMPREPLY=( $(compgen -W "${flags}" -- "${cur}") )
        return 0
    fi
`)

	if len(data.Positionals) > 0 {
		if action := bashAction(data.Positionals[0].Type); action != "" {
			script.WriteString(fmt.Sprintf(`
    COMPREPLY=( $(%s -- "${cur}") )
`, action))
		}
	}

	script.WriteString(fmt.Sprintf(`    return 0
}

complete -o filenames -F _%[2]s %[1]s
`, programName, fn))

	return script.String()
}

func bashAction(t FlagType) string {
	switch t {
	case FlagTypeFile, FlagTypePath:
		return "compgen -f"
	case FlagTypeDir:
		return "compgen -d"
	}

	return ""
}
