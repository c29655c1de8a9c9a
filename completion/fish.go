package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf("# fish completion for %s\n", programName))

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		if flag.Short != "" {
			cmd = fmt.Sprintf("%s -s %s", cmd, flag.Short)
		}
		if flag.Long != "" {
			cmd = fmt.Sprintf("%s -l %s", cmd, flag.Long)
		}

		values, hasValues := data.FlagValues[flag.Key()]
		switch {
		case hasValues:
			patterns := make([]string, len(values))
			for i, v := range values {
				patterns[i] = v.Pattern
			}
			cmd = fmt.Sprintf("%s -x -a '%s'", cmd, escapeFish(strings.Join(patterns, " ")))
		case flag.Type == FlagTypeDir:
			cmd = fmt.Sprintf("%s -x -a '(__fish_complete_directories)'", cmd)
		case flag.Type == FlagTypeFile, flag.Type == FlagTypePath:
			cmd = fmt.Sprintf("%s -r -F", cmd)
		case flag.Type.TakesValue():
			cmd = fmt.Sprintf("%s -x", cmd)
		}

		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(flag.Description))
		script.WriteString(cmd + "\n")
	}

	// positional arguments complete files unless none of them is path-valued
	pathPositional := false
	for _, pos := range data.Positionals {
		if pos.Type == FlagTypeFile || pos.Type == FlagTypePath || pos.Type == FlagTypeDir {
			pathPositional = true
		}
	}
	if !pathPositional {
		script.WriteString(fmt.Sprintf("complete -c %s -f\n", programName))
	}

	return script.String()
}
