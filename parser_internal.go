package heifopt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/napalu/heifopt/completion"
	"github.com/napalu/heifopt/parse"
	"github.com/napalu/heifopt/types"
	"github.com/napalu/heifopt/util"
)

// ranges spanning at most this many integers are offered as completion values
const maxEnumeratedRange = 32

func (p *Parser) reset() {
	p.options = map[string]string{}
	p.counts = map[string]int{}
	p.positionalArgs = []PositionalArgument{}
	p.errors = []error{}
	p.shortCircuit = false

	for key := range p.bind {
		info, _ := p.flagInfo(key)
		if err := p.applyBoundDefault(key, info.Argument); err != nil {
			p.addError(err)
		}
	}
}

func (p *Parser) applyBoundDefault(key string, argument *Argument) error {
	switch {
	case argument.DefaultValue != "":
		return p.setBoundVariable(argument.DefaultValue, key)
	case argument.TypeOf == types.Counter:
		return p.setBoundVariable("0", key)
	case argument.TypeOf == types.Standalone:
		return p.setBoundVariable("false", key)
	}

	if data, found := p.bind[key]; found {
		return util.Zero(data)
	}

	return nil
}

func (p *Parser) addPositional(flag string, argument *Argument) error {
	if flag == "" {
		return ErrEmptyFlag
	}
	if _, exists := p.acceptedFlags.Get(flag); exists {
		return fmt.Errorf("%w: '%s'", ErrFlagAlreadyExists, flag)
	}
	for _, key := range p.positionals {
		info, _ := p.flagInfo(key)
		if *info.Argument.Position == *argument.Position {
			return fmt.Errorf("%w: %d is used by '%s'", ErrPositionConflict, *argument.Position, key)
		}
	}

	p.acceptedFlags.Set(flag, &FlagInfo{Argument: argument})
	p.positionals = append(p.positionals, flag)
	sort.SliceStable(p.positionals, func(i, j int) bool {
		a, _ := p.flagInfo(p.positionals[i])
		b, _ := p.flagInfo(p.positionals[j])
		return *a.Argument.Position < *b.Argument.Position
	})

	return nil
}

func (p *Parser) parseLongFlag(state parse.State, body string) {
	name, value, hasValue := strings.Cut(body, "=")
	key, found := p.longNames[name]
	if !found {
		p.addError(&ParseError{Flag: "--" + name, Err: ErrUnknownFlag})
		return
	}

	info, _ := p.flagInfo(key)
	p.processFlag(state, key, info, value, hasValue)
}

// parseShortFlags handles `-q 80`, `-q80`, `-q=80` and clusters such as `-vvL`. The first flag of a
// cluster is processed and the remainder is queued as a new argument.
func (p *Parser) parseShortFlags(state parse.State, body string) {
	r, size := utf8.DecodeRuneInString(body)
	short := string(r)
	key, found := p.lookup[short]
	if !found {
		p.addError(&ParseError{Flag: "-" + short, Err: ErrUnknownFlag})
		return
	}

	info, _ := p.flagInfo(key)
	rest := body[size:]
	switch {
	case rest == "":
		p.processFlag(state, key, info, "", false)
	case strings.HasPrefix(rest, "="):
		p.processFlag(state, key, info, rest[1:], true)
	case info.Argument.TypeOf.TakesValue():
		p.processFlag(state, key, info, rest, true)
	default:
		p.processFlag(state, key, info, "", false)
		if strings.HasPrefix(rest, "-") {
			p.addError(&ParseError{Flag: "--", Err: ErrUnknownFlag})
			return
		}
		state.PushFront("-" + rest)
	}
}

func (p *Parser) processFlag(state parse.State, key string, info *FlagInfo, inline string, hasInline bool) {
	argument := info.Argument
	name := p.displayName(key, info)
	if argument.ShortCircuit {
		p.shortCircuit = true
	}

	if argument.TypeOf == types.Counter {
		if hasInline {
			p.addError(&ParseError{Flag: name, Value: inline, Err: ErrUnexpectedValue})
			return
		}
		p.counts[key]++
		p.registerFlagValue(key, name, strconv.Itoa(p.counts[key]))
		return
	}

	if _, seen := p.options[key]; seen {
		p.addError(&ParseError{Flag: name, Err: ErrDuplicateFlag})
		return
	}

	if argument.TypeOf == types.Standalone {
		value := "true"
		if hasInline {
			if _, err := strconv.ParseBool(inline); err != nil {
				p.addError(&ParseError{Flag: name, Value: inline, Err: ErrInvalidBoolean})
				return
			}
			value = inline
		}
		p.registerFlagValue(key, name, value)
		return
	}

	value := inline
	if !hasInline {
		next, ok := state.Peek()
		if !ok || isFlag(next) {
			p.addError(&ParseError{Flag: name, Err: ErrFlagExpectsValue})
			return
		}
		value, _ = state.Skip()
	}

	if err := checkValue(name, value, argument); err != nil {
		p.addError(err)
		return
	}
	p.registerFlagValue(key, name, value)
}

func checkValue(name, value string, argument *Argument) error {
	if argument.Range == nil {
		return nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return &ParseError{Flag: name, Value: value, Range: argument.Range, Err: ErrInvalidInteger}
	}
	if !argument.Range.Contains(i) {
		return &ParseError{Flag: name, Value: value, Range: argument.Range, Err: ErrOutOfRange}
	}

	return nil
}

func (p *Parser) registerFlagValue(key, name, value string) {
	p.options[key] = value
	if err := p.setBoundVariable(value, key); err != nil {
		p.addError(fmt.Errorf("could not process input argument '%s': %w", name, err))
	}
}

func (p *Parser) setPositionalArguments() {
	for i := range p.positionalArgs {
		pa := &p.positionalArgs[i]
		if i >= len(p.positionals) {
			p.addError(&ParseError{Flag: pa.Value, Err: ErrUnexpectedArgument})
			continue
		}

		key := p.positionals[i]
		info, _ := p.flagInfo(key)
		pa.Argument = info.Argument
		if err := checkValue(p.displayName(key, info), pa.Value, info.Argument); err != nil {
			p.addError(err)
			continue
		}
		p.registerFlagValue(key, p.displayName(key, info), pa.Value)
	}
}

func (p *Parser) validateRequired() {
	if p.shortCircuit {
		return
	}

	p.eachFlag(func(key string, info *FlagInfo) {
		if !info.Argument.Required {
			return
		}
		if _, ok := p.options[key]; ok {
			return
		}
		if info.Argument.isPositional() {
			p.addError(&ParseError{Flag: p.displayName(key, info), Err: ErrRequiredPositional})
		} else {
			p.addError(&ParseError{Flag: p.displayName(key, info), Err: ErrRequiredFlag})
		}
	})
}

func (p *Parser) setBoundVariable(value string, key string) error {
	data, found := p.bind[key]
	if !found {
		return nil
	}

	info, _ := p.flagInfo(key)
	if value == "" {
		value = info.Argument.DefaultValue
	}

	return util.ConvertString(value, data, p.displayName(key, info))
}

// resolve finds a flag by long name, short name or key
func (p *Parser) resolve(flag string) (string, *FlagInfo, bool) {
	flag = strings.TrimLeft(flag, "-")
	key, found := p.longNames[flag]
	if !found {
		key, found = p.lookup[flag]
	}
	if !found {
		key = flag
	}

	info, found := p.flagInfo(key)
	return key, info, found
}

func (p *Parser) flagInfo(key string) (*FlagInfo, bool) {
	v, found := p.acceptedFlags.Get(key)
	if !found {
		return nil, false
	}

	return v.(*FlagInfo), true
}

func (p *Parser) eachFlag(fn func(key string, info *FlagInfo)) {
	for pair := p.acceptedFlags.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key.(string), pair.Value.(*FlagInfo))
	}
}

// displayName is the name used in errors and help: the long name, the short name for short-only flags
// and the value name for positional arguments.
func (p *Parser) displayName(key string, info *FlagInfo) string {
	if info.Argument.isPositional() {
		if info.Argument.ValueName != "" {
			return info.Argument.ValueName
		}
		return strings.ToUpper(key)
	}
	if info.Long != "" {
		return info.Long
	}

	return info.Argument.Short
}

func (p *Parser) addError(err error) {
	p.errors = append(p.errors, err)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

func isLongFlag(arg string) bool {
	return len(arg) > 2 && strings.HasPrefix(arg, "--")
}

func completionType(argument *Argument) completion.FlagType {
	switch argument.TypeOf {
	case types.Standalone:
		return completion.FlagTypeStandalone
	case types.Counter:
		return completion.FlagTypeCounter
	}

	switch argument.Hint {
	case types.HintDirPath:
		return completion.FlagTypeDir
	case types.HintFilePath:
		return completion.FlagTypeFile
	case types.HintAnyPath:
		return completion.FlagTypePath
	}
	if argument.TypeOf == types.File {
		return completion.FlagTypeFile
	}

	return completion.FlagTypeSingle
}

func addFlagToCompletionData(data *completion.CompletionData, info *FlagInfo) {
	argument := info.Argument
	pair := completion.FlagPair{
		Short:       argument.Short,
		Long:        info.Long,
		Description: argument.Description,
		Type:        completionType(argument),
		ValueName:   argument.ValueName,
		Deprecated:  argument.Deprecated,
	}
	data.Flags = append(data.Flags, pair)

	if r := argument.Range; r != nil && r.Span() <= maxEnumeratedRange {
		span := r.Span()
		values := make([]completion.CompletionValue, 0, span)
		for i := uint64(0); i < span; i++ {
			v := r.Min + int64(i)
			values = append(values, completion.CompletionValue{Pattern: strconv.FormatInt(v, 10)})
		}
		data.FlagValues[pair.Key()] = values
	}
}
