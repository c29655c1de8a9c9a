package heifopt

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/napalu/heifopt/completion"
	"github.com/napalu/heifopt/parse"
	"github.com/napalu/heifopt/types"
	"github.com/stretchr/testify/assert"
)

func FuzzParseFlags(f *testing.F) {
	// Seed corpus with edge cases
	f.Add("-q2こんにちは")
	f.Add("--quality")       // missing value
	f.Add("-vvLq80 in.png")  // cluster ending in a value flag
	f.Add("-- -q")           // terminator
	f.Add("   -q 5   x   ")  // leading/trailing spaces
	f.Add("-漢=こんにちは こんにち") // unicode short flag
	f.Add("0")
	f.Add("-")
	f.Add("-q \\'-v\\'")
	f.Add("-q -v 000000")
	f.Add("--quality=-123")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil || len(args) == 0 {
			return
		}

		var quality uint8
		var verbose int
		p := NewParser()
		_ = BindFlagToParser(p, &quality, "quality", NewArg(WithShortFlag("q"), WithRange(0, 100)))
		_ = BindFlagToParser(p, &verbose, "verbose", NewArg(WithShortFlag("v"), WithType(types.Counter)))
		_ = p.AddFlag("lossless", NewArg(WithShortFlag("L"), WithType(types.Standalone)))
		_ = p.AddFlag("", NewArg(WithShortFlag("漢")))
		_ = p.AddFlag("input", NewArg(WithPosition(0)))

		ok := p.Parse(args)

		// Invariant 1: a successful parse never leaves a ranged value outside its range
		if ok {
			assert.LessOrEqual(t, quality, uint8(100))
			assert.Equal(t, verbose, p.GetCount("verbose"))
		} else {
			assert.NotZero(t, p.GetErrorCount())
		}

		// Invariant 2: help text remains valid
		b := bytes.NewBuffer(nil)
		p.PrintUsage(b)
		assert.NotContains(t, b.String(), "%!")
	})
}

func FuzzPositionalArgs(f *testing.F) {
	f.Add("a.txt", "b.pdf")
	f.Add("--", "-invalid")
	f.Add("漢字.txt", "--utf8=✓")

	f.Fuzz(func(t *testing.T, arg1, arg2 string) {
		p := NewParser()
		_ = p.AddFlag("file1", NewArg(WithType(types.File), WithPosition(0)))
		_ = p.AddFlag("file2", NewArg(WithType(types.File), WithPosition(1)))

		args := []string{arg1, arg2}
		flagLike := strings.HasPrefix(arg1, "-") || strings.HasPrefix(arg2, "-")
		if p.Parse(args) && !flagLike {
			f1, _ := p.Get("file1")
			f2, _ := p.Get("file2")
			assert.Equal(t, arg1, f1)
			assert.Equal(t, arg2, f2)
		}
	})
}

func FuzzHelpText(f *testing.F) {
	f.Add("flag", "desc!@#$%^&*()")
	f.Add("漢字", "説明")

	f.Fuzz(func(t *testing.T, flag, desc string) {
		p := NewParser()
		_ = p.AddFlag(flag, NewArg(WithDescription(desc)))

		b := bytes.Buffer{}
		p.PrintUsage(&b)
		help := b.String()

		assert.False(t, strings.Contains(help, "%!"),
			"Help text contains formatting errors")
		if utf8.ValidString(flag) && utf8.ValidString(desc) {
			assert.True(t, utf8.ValidString(help),
				"Help text contains invalid UTF-8")
		}

		for _, shell := range completion.Shells() {
			assert.NotPanics(t, func() { p.GenerateCompletion(shell) })
		}
	})
}
