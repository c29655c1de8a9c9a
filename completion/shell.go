package completion

import (
	"fmt"
	"strings"
)

// Shell is one of the supported completion targets
type Shell int

const (
	Bash Shell = iota
	Elvish
	Fish
	PowerShell
	Zsh
)

var shells = []Shell{Bash, Elvish, Fish, PowerShell, Zsh}

// Shells returns every supported shell in enumeration order
func Shells() []Shell {
	return append([]Shell(nil), shells...)
}

// ParseShell maps a shell name to its Shell
func ParseShell(name string) (Shell, error) {
	for _, s := range shells {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unsupported shell '%s'", name)
}

// String returns the shell name used for output directories
func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Elvish:
		return "elvish"
	case Fish:
		return "fish"
	case PowerShell:
		return "powershell"
	case Zsh:
		return "zsh"
	default:
		return fmt.Sprintf("shell(%d)", int(s))
	}
}

// FileConventions describes how completion files for s are named
func (s Shell) FileConventions() CompletionFileInfo {
	switch s {
	case Bash:
		return CompletionFileInfo{
			Extension: ".bash",
			Comment:   "Bash completion files are the command name with a .bash extension",
		}
	case Elvish:
		return CompletionFileInfo{
			Extension: ".elv",
			Comment:   "Elvish modules end in .elv",
		}
	case Fish:
		return CompletionFileInfo{
			Extension: ".fish",
			Comment:   "Fish completion files must end in .fish",
		}
	case PowerShell:
		return CompletionFileInfo{
			Prefix:    "_",
			Extension: ".ps1",
			Comment:   "PowerShell completion scripts are _<command>.ps1",
		}
	case Zsh:
		return CompletionFileInfo{
			Prefix:  "_",
			Comment: "Zsh completion files should start with _ (e.g., _git)",
		}
	default:
		return CompletionFileInfo{}
	}
}

// FileName returns the conventional completion file name of programName for s
func (s Shell) FileName(programName string) string {
	conventions := s.FileConventions()
	return conventions.Prefix + programName + conventions.Extension
}

// Generator returns the script generator for s
func (s Shell) Generator() Generator {
	switch s {
	case Elvish:
		return &ElvishGenerator{}
	case Fish:
		return &FishGenerator{}
	case PowerShell:
		return &PowerShellGenerator{}
	case Zsh:
		return &ZshGenerator{}
	default:
		return &BashGenerator{}
	}
}

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the generator for the named shell, defaulting to bash
func GetGenerator(shell string) Generator {
	s, err := ParseShell(shell)
	if err != nil {
		return &BashGenerator{}
	}

	return s.Generator()
}
