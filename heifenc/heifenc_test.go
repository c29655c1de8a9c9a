package heifenc

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/napalu/heifopt"
	"github.com/napalu/heifopt/completion"
	"github.com/napalu/heifopt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	args, err := Parse([]string{"in.png"})
	require.NoError(t, err)

	assert.Equal(t, "in.png", args.Input)
	assert.Equal(t, uint8(50), args.Quality)
	assert.Equal(t, uint8(10), args.BitDepth)
	assert.Equal(t, "6", args.MatrixCoefficients)
	assert.Equal(t, "1", args.FullRangeFlag)
	assert.Equal(t, 0, args.Verbose)
	assert.False(t, args.Lossless)
	assert.Empty(t, args.Output)
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    uint8
		wantErr error
	}{
		{"lower bound", []string{"-q", "0", "in.png"}, 0, nil},
		{"upper bound", []string{"--quality", "100", "in.png"}, 100, nil},
		{"long with equals", []string{"--quality=80", "in.png"}, 80, nil},
		{"short attached", []string{"-q80", "in.png"}, 80, nil},
		{"short with equals", []string{"-q=75", "in.png"}, 75, nil},
		{"just above range", []string{"-q", "101", "in.png"}, 0, heifopt.ErrOutOfRange},
		{"above range", []string{"-q", "150", "in.png"}, 0, heifopt.ErrOutOfRange},
		{"negative", []string{"--quality=-1", "in.png"}, 0, heifopt.ErrOutOfRange},
		{"not a number", []string{"-q", "high", "in.png"}, 0, heifopt.ErrInvalidInteger},
		{"missing value", []string{"in.png", "-q"}, 0, heifopt.ErrFlagExpectsValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := Parse(tt.argv)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, args.Quality)
		})
	}
}

func TestParseOutOfRangeMessage(t *testing.T) {
	_, err := Parse([]string{"-q", "150", "in.png"})
	require.Error(t, err)

	var parseErr *heifopt.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "quality", parseErr.Flag)
	assert.Equal(t, "150", parseErr.Value)
	assert.Equal(t, &types.Range{Min: 0, Max: 100}, parseErr.Range)
	assert.Contains(t, err.Error(), "150")
	assert.Contains(t, err.Error(), "quality")
	assert.Contains(t, err.Error(), "[0, 100]")
}

func TestParseBitDepth(t *testing.T) {
	for _, depth := range []int{0, 8, 10, 12, 16} {
		t.Run(fmt.Sprint(depth), func(t *testing.T) {
			args, err := Parse([]string{"-b", fmt.Sprint(depth), "in.png"})
			require.NoError(t, err)
			assert.Equal(t, uint8(depth), args.BitDepth)
		})
	}

	tests := []struct {
		name    string
		argv    []string
		wantErr error
	}{
		{"just above range", []string{"--bit_depth", "17", "in.png"}, heifopt.ErrOutOfRange},
		{"just below range short", []string{"-b=-1", "in.png"}, heifopt.ErrOutOfRange},
		{"just below range long", []string{"--bit_depth=-1", "in.png"}, heifopt.ErrOutOfRange},
		{"negative as separate word", []string{"-b", "-1", "in.png"}, heifopt.ErrFlagExpectsValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.argv)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == heifopt.ErrOutOfRange {
				assert.Contains(t, err.Error(), "[0, 16]")
			}
		})
	}
}

func TestParseMissingInput(t *testing.T) {
	_, err := Parse([]string{"-q", "80"})
	require.Error(t, err)
	assert.ErrorIs(t, err, heifopt.ErrRequiredPositional)
	assert.Contains(t, err.Error(), "INPUT_FILE")
}

func TestParseHelpSkipsRequired(t *testing.T) {
	for _, argv := range [][]string{{"--help"}, {"-h"}} {
		args, err := Parse(argv)
		require.NoError(t, err)
		assert.True(t, args.Help)
		assert.Empty(t, args.Input)
	}
}

func TestParseFlags(t *testing.T) {
	args, err := Parse([]string{
		"-vv", "-Lt", "--no-alpha", "--no-thumb-alpha", "-P", "-A",
		"-p", "speed=4", "-e", "x265", "--plugin-directory", "/opt/plugins",
		"--matrix_coefficients", "1", "--colour_primaries", "9", "--transfer_characteristic", "16",
		"--full_range_flag", "0", "--enable-two-colr-boxes", "--premultiplied-alpha", "yes",
		"--enable-metadata-compression", "--benchmark", "--list-encoders",
		"-o", "out.heic", "in.png",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, args.Verbose)
	assert.True(t, args.Lossless)
	assert.True(t, args.Thumb)
	assert.True(t, args.NoAlpha)
	assert.True(t, args.NoThumbAlpha)
	assert.True(t, args.Params)
	assert.True(t, args.Avif)
	assert.Equal(t, "speed=4", args.EncoderParam)
	assert.Equal(t, "x265", args.Encoder)
	assert.Equal(t, "/opt/plugins", args.PluginDirectory)
	assert.Equal(t, "1", args.MatrixCoefficients)
	assert.Equal(t, "9", args.ColourPrimaries)
	assert.Equal(t, "16", args.TransferCharacteristic)
	assert.Equal(t, "0", args.FullRangeFlag)
	assert.True(t, args.EnableTwoColrBoxes)
	assert.Equal(t, "yes", args.PremultipliedAlpha)
	assert.True(t, args.EnableMetadataCompression)
	assert.True(t, args.Benchmark)
	assert.True(t, args.ListEncoders)
	assert.Equal(t, "out.heic", args.Output)
	assert.Equal(t, "in.png", args.Input)
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		argv []string
		want int
	}{
		{[]string{"in.png"}, 0},
		{[]string{"-v", "in.png"}, 1},
		{[]string{"-vv", "in.png"}, 2},
		{[]string{"-v", "--verbose", "-vv", "in.png"}, 4},
	}

	for _, tt := range tests {
		args, err := Parse(tt.argv)
		require.NoError(t, err)
		assert.Equal(t, tt.want, args.Verbose, "%v", tt.argv)
	}
}

func TestParseDeprecatedAccepted(t *testing.T) {
	args, err := Parse([]string{"-E", "in.png"})
	require.NoError(t, err)
	assert.True(t, args.EvenSize)

	args, err = Parse([]string{"--even-size", "in.png"})
	require.NoError(t, err)
	assert.True(t, args.EvenSize)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr error
	}{
		{"unknown long", []string{"--fast", "in.png"}, heifopt.ErrUnknownFlag},
		{"unknown short", []string{"-z", "in.png"}, heifopt.ErrUnknownFlag},
		{"duplicate", []string{"-q", "1", "-q", "2", "in.png"}, heifopt.ErrDuplicateFlag},
		{"surplus positional", []string{"a.png", "b.png"}, heifopt.ErrUnexpectedArgument},
		{"no long form for p", []string{"--p", "x", "in.png"}, heifopt.ErrUnknownFlag},
		{"positional is not a flag", []string{"--input", "in.png"}, heifopt.ErrUnknownFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.argv)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParsePathsVerbatim(t *testing.T) {
	args, err := Parse([]string{"-o", "does/not/exist.heic", "--", "-weird-name.png"})
	require.NoError(t, err)
	assert.Equal(t, "does/not/exist.heic", args.Output)
	assert.Equal(t, "-weird-name.png", args.Input)
}

func TestCommand(t *testing.T) {
	cmd := Command()
	assert.Equal(t, Name, cmd.ProgramName())

	var _ completion.Descriptor = cmd

	data := cmd.GetCompletionData()
	require.Len(t, data.Flags, 24)
	require.Len(t, data.Positionals, 1)

	first := data.Flags[0]
	assert.Equal(t, completion.FlagPair{Short: "h", Long: "help", Description: "show help", Type: completion.FlagTypeStandalone}, first)

	var p, pluginDir, output, evenSize completion.FlagPair
	for _, f := range data.Flags {
		switch f.Key() {
		case "p":
			p = f
		case "plugin-directory":
			pluginDir = f
		case "output":
			output = f
		case "even-size":
			evenSize = f
		}
	}
	assert.Empty(t, p.Long)
	assert.Equal(t, completion.FlagTypeDir, pluginDir.Type)
	assert.Equal(t, completion.FlagTypeFile, output.Type)
	assert.True(t, evenSize.Deprecated)

	assert.Equal(t, completion.PositionalArg{
		Name:        "INPUT_FILE",
		Description: "What file do you want to process?",
		Type:        completion.FlagTypeFile,
		Required:    true,
	}, data.Positionals[0])

	assert.Len(t, data.FlagValues["bit_depth"], 17)
	assert.NotContains(t, data.FlagValues, "quality")

	// each call is an independent, identical descriptor
	assert.Equal(t, data, Command().GetCompletionData())
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Command().PrintUsage(&buf)
	out := buf.String()

	assert.Contains(t, out, "usage: heif-enc [options] INPUT_FILE\n")
	assert.Contains(t, out, "--quality or -q <0-100> \"set output quality (0-100) for lossy compression\" (defaults to: 50) (optional)")
	assert.Contains(t, out, "--verbose or -v (repeatable)")
	assert.Contains(t, out, "-p <NAME=VALUE> \"set encoder parameter (NAME=VALUE)\" (optional)")
	assert.Contains(t, out, "--plugin-directory <DIR>")
	assert.Contains(t, out, "--even-size or -E \"crop images to even width and height")
	assert.Contains(t, out, "(deprecated) (optional)")
	assert.Contains(t, out, "INPUT_FILE \"What file do you want to process?\" (required)")
}
