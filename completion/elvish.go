package completion

import (
	"fmt"
	"strings"
)

type ElvishGenerator struct{}

func (g *ElvishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`use builtin;
use str;

set edit:completion:arg-completer[%s] = {|@words|
    fn cand {|text desc|
        edit:complex-candidate $text &display=$text' '$desc
    }
    var cur = $words[-1]
    var prev = ''
    if (> (count $words) 2) {
        set prev = $words[-2]
    }
`, escapeElvish(programName)))

	type branch struct {
		cond string
		body []string
	}
	var branches []branch

	for _, flag := range data.Flags {
		if !flag.Type.TakesValue() {
			continue
		}
		conds := make([]string, 0, 2)
		for _, n := range flag.Names() {
			conds = append(conds, fmt.Sprintf("(eq $prev '%s')", n))
		}
		cond := conds[0]
		if len(conds) > 1 {
			cond = "(or " + strings.Join(conds, " ") + ")"
		}

		var body []string
		if values, ok := data.FlagValues[flag.Key()]; ok {
			for _, v := range values {
				body = append(body, fmt.Sprintf("cand '%s' '%s'", escapeElvish(v.Pattern), escapeElvish(v.Description)))
			}
		} else if flag.Type == FlagTypeFile || flag.Type == FlagTypePath || flag.Type == FlagTypeDir {
			body = append(body, "edit:complete-filename $cur")
		} else {
			body = append(body, "builtin:nop")
		}
		branches = append(branches, branch{cond: cond, body: body})
	}

	flagBody := make([]string, 0, len(data.Flags)*2)
	for _, flag := range data.Flags {
		desc := escapeElvish(flag.Description)
		for _, n := range flag.Names() {
			flagBody = append(flagBody, fmt.Sprintf("cand '%s' '%s'", n, desc))
		}
	}
	branches = append(branches, branch{cond: "(str:has-prefix $cur '-')", body: flagBody})

	for i, b := range branches {
		if i == 0 {
			script.WriteString(fmt.Sprintf("    if %s {\n", b.cond))
		} else {
			script.WriteString(fmt.Sprintf(" elif %s {\n", b.cond))
		}
		for _, line := range b.body {
			script.WriteString("        " + line + "\n")
		}
		script.WriteString("    }")
	}

	if len(data.Positionals) > 0 && data.Positionals[0].Type != FlagTypeSingle {
		script.WriteString(` else {
        edit:complete-filename $cur
    }`)
	}
	script.WriteString("\n}\n")

	return script.String()
}
