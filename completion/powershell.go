package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`using namespace System.Management.Automation
using namespace System.Management.Automation.Language

Register-ArgumentCompleter -Native -CommandName '%[1]s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $prev = ''
    if ($wordToComplete -eq '') {
        if ($elements.Count -gt 0) { $prev = $elements[-1] }
    } elseif ($elements.Count -gt 1) {
        $prev = $elements[-2]
    }

    # Handle flag values
    switch ($prev) {`, escapePowerShell(programName)))

	for _, flag := range data.Flags {
		if !flag.Type.TakesValue() {
			continue
		}
		labels := make([]string, 0, 2)
		for _, n := range flag.Names() {
			labels = append(labels, "'"+n+"'")
		}
		script.WriteString(fmt.Sprintf(`
        { $_ -in %s } {`, strings.Join(labels, ", ")))
		if values, ok := data.FlagValues[flag.Key()]; ok {
			script.WriteString(`
            @(`)
			for _, v := range values {
				text := escapePowerShell(v.Pattern)
				tooltip := text
				if v.Description != "" {
					tooltip = escapePowerShell(v.Description)
				}
				script.WriteString(fmt.Sprintf(`
                [CompletionResult]::new('%s', '%s', [CompletionResultType]::ParameterValue, '%s')`, text, text, tooltip))
			}
			script.WriteString(`
            ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }`)
		} else if flag.Type == FlagTypeFile || flag.Type == FlagTypeDir || flag.Type == FlagTypePath {
			script.WriteString(`
            Get-ChildItem -Path "$wordToComplete*"`)
			if flag.Type == FlagTypeDir {
				script.WriteString(` -Directory`)
			}
			script.WriteString(` -ErrorAction SilentlyContinue | ForEach-Object {
                [CompletionResult]::new($_.FullName, $_.Name, [CompletionResultType]::ProviderItem, $_.FullName)
            }`)
		}
		script.WriteString(`
            return
        }`)
	}

	script.WriteString(`
    }

    # Handle flags
    if ($wordToComplete.StartsWith('-')) {
        @(`)

	for _, flag := range data.Flags {
		desc := escapePowerShell(flag.Description)
		if desc == "" {
			desc = flag.Key()
		}
		for _, n := range flag.Names() {
			script.WriteString(fmt.Sprintf(`
            [CompletionResult]::new('%s', '%s', [CompletionResultType]::ParameterName, '%s')`,
				n, strings.TrimLeft(n, "-"), desc))
		}
	}

	script.WriteString(`
        ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
        return
    }
`)

	if len(data.Positionals) > 0 && data.Positionals[0].Type != FlagTypeSingle {
		script.WriteString(`
    Get-ChildItem -Path "$wordToComplete*" -ErrorAction SilentlyContinue | ForEach-Object {
        [CompletionResult]::new($_.FullName, $_.Name, [CompletionResultType]::ProviderItem, $_.FullName)
    }
`)
	}

	script.WriteString("}\n")

	return script.String()
}
