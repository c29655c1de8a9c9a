package completion

// FlagType tells generators which kind of value, if any, a flag expects
type FlagType int

const (
	FlagTypeSingle     FlagType = iota // free-form value
	FlagTypeStandalone                 // no value
	FlagTypeCounter                    // no value, may be repeated
	FlagTypeFile                       // path to a file
	FlagTypeDir                        // path to a directory
	FlagTypePath                       // any path
)

// TakesValue is false for Standalone and Counter flags
func (t FlagType) TakesValue() bool {
	return t != FlagTypeStandalone && t != FlagTypeCounter
}

// FlagPair describes one flag by its short and long forms
type FlagPair struct {
	Short       string
	Long        string
	Description string
	Type        FlagType
	ValueName   string
	Deprecated  bool
}

// Key identifies the flag in CompletionData.FlagValues: the long name, or the short name when there is none
func (f FlagPair) Key() string {
	if f.Long != "" {
		return f.Long
	}

	return f.Short
}

// Names returns the dash-prefixed forms of the flag, short first
func (f FlagPair) Names() []string {
	names := make([]string, 0, 2)
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}

	return names
}

// PositionalArg describes a positional argument
type PositionalArg struct {
	Name        string
	Description string
	Type        FlagType
	Required    bool
}

// CompletionValue is used to store the flag values for a given flag
type CompletionValue struct {
	Pattern     string // The literal value offered
	Description string // Human-readable description
}

// CompletionData is used to store the completion data of one command. Flags and Positionals keep
// declaration order so generated scripts are stable across runs.
type CompletionData struct {
	Flags       []FlagPair
	Positionals []PositionalArg
	FlagValues  map[string][]CompletionValue
}

// CompletionFileInfo holds shell-specific naming conventions
type CompletionFileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}
