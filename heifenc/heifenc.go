// Package heifenc declares the command-line interface of the heif-enc image encoder.
package heifenc

import (
	"fmt"

	"github.com/napalu/heifopt"
	"github.com/napalu/heifopt/types"
)

// Name is the program name of the encoder
const Name = "heif-enc"

// Args holds the parsed heif-enc command line
type Args struct {
	Help                      bool
	Quality                   uint8
	Lossless                  bool
	Thumb                     bool
	NoAlpha                   bool
	NoThumbAlpha              bool
	Verbose                   int
	Params                    bool
	BitDepth                  uint8
	EncoderParam              string
	Avif                      bool
	ListEncoders              bool
	Encoder                   string
	PluginDirectory           string
	EvenSize                  bool
	MatrixCoefficients        string
	ColourPrimaries           string
	TransferCharacteristic    string
	FullRangeFlag             string
	EnableTwoColrBoxes        bool
	PremultipliedAlpha        string
	EnableMetadataCompression bool
	Benchmark                 bool
	Output                    string
	Input                     string
}

// NewParser declares every heif-enc option and binds it to a field of args
func NewParser(args *Args) (*heifopt.Parser, error) {
	return heifopt.NewParserWith(
		heifopt.WithProgramName(Name),
		heifopt.WithBindFlag("help", &args.Help,
			heifopt.NewArg(
				heifopt.WithShortFlag("h"),
				heifopt.WithType(types.Standalone),
				heifopt.SetShortCircuit(true),
				heifopt.WithDescription("show help"))),
		heifopt.WithBindFlag("quality", &args.Quality,
			heifopt.NewArg(
				heifopt.WithShortFlag("q"),
				heifopt.WithRange(0, 100),
				heifopt.WithDefaultValue("50"),
				heifopt.WithDescription("set output quality (0-100) for lossy compression"))),
		heifopt.WithBindFlag("lossless", &args.Lossless,
			heifopt.NewArg(
				heifopt.WithShortFlag("L"),
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("generate lossless output (-q has no effect)"))),
		heifopt.WithBindFlag("thumb", &args.Thumb,
			heifopt.NewArg(
				heifopt.WithShortFlag("t"),
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("generate thumbnail with maximum size (default: off)"))),
		heifopt.WithBindFlag("no-alpha", &args.NoAlpha,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("do not save alpha channel"))),
		heifopt.WithBindFlag("no-thumb-alpha", &args.NoThumbAlpha,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("do not save alpha channel in thumbnail image"))),
		heifopt.WithBindFlag("verbose", &args.Verbose,
			heifopt.NewArg(
				heifopt.WithShortFlag("v"),
				heifopt.WithType(types.Counter),
				heifopt.WithDescription("enable logging output (more -v will increase logging level)"))),
		heifopt.WithBindFlag("params", &args.Params,
			heifopt.NewArg(
				heifopt.WithShortFlag("P"),
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("show all encoder parameters"))),
		heifopt.WithBindFlag("bit_depth", &args.BitDepth,
			heifopt.NewArg(
				heifopt.WithShortFlag("b"),
				heifopt.WithRange(0, 16),
				heifopt.WithDefaultValue("10"),
				heifopt.WithDescription("bit-depth of generated HEIF/AVIF file"))),
		heifopt.WithBindFlag("", &args.EncoderParam,
			heifopt.NewArg(
				heifopt.WithShortFlag("p"),
				heifopt.WithValueName("NAME=VALUE"),
				heifopt.WithDescription("set encoder parameter (NAME=VALUE)"))),
		heifopt.WithBindFlag("avif", &args.Avif,
			heifopt.NewArg(
				heifopt.WithShortFlag("A"),
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("encode as AVIF"))),
		heifopt.WithBindFlag("list-encoders", &args.ListEncoders,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("list all available encoders for the selected output format"))),
		heifopt.WithBindFlag("encoder", &args.Encoder,
			heifopt.NewArg(
				heifopt.WithShortFlag("e"),
				heifopt.WithValueName("ID"),
				heifopt.WithDescription("select encoder to use (the IDs can be listed with --list-encoders)"))),
		heifopt.WithBindFlag("plugin-directory", &args.PluginDirectory,
			heifopt.NewArg(
				heifopt.WithType(types.File),
				heifopt.WithValueHint(types.HintDirPath),
				heifopt.WithValueName("DIR"),
				heifopt.WithDescription("load all codec plugins in the directory"))),
		heifopt.WithBindFlag("even-size", &args.EvenSize,
			heifopt.NewArg(
				heifopt.WithShortFlag("E"),
				heifopt.WithType(types.Standalone),
				heifopt.SetDeprecated(true),
				heifopt.WithDescription("crop images to even width and height (odd sizes are not decoded correctly by some software)"))),
		heifopt.WithBindFlag("matrix_coefficients", &args.MatrixCoefficients,
			heifopt.NewArg(
				heifopt.WithDefaultValue("6"),
				heifopt.WithDescription("nclx profile: color conversion matrix coefficients (see h.273)"))),
		heifopt.WithBindFlag("colour_primaries", &args.ColourPrimaries,
			heifopt.NewArg(
				heifopt.WithDescription("nclx profile: color primaries (see h.273)"))),
		heifopt.WithBindFlag("transfer_characteristic", &args.TransferCharacteristic,
			heifopt.NewArg(
				heifopt.WithDescription("nclx profile: transfer characteristics (see h.273)"))),
		heifopt.WithBindFlag("full_range_flag", &args.FullRangeFlag,
			heifopt.NewArg(
				heifopt.WithDefaultValue("1"),
				heifopt.WithDescription("nclx profile: full range flag"))),
		heifopt.WithBindFlag("enable-two-colr-boxes", &args.EnableTwoColrBoxes,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("will write both an ICC and an nclx color profile if both are present"))),
		heifopt.WithBindFlag("premultiplied-alpha", &args.PremultipliedAlpha,
			heifopt.NewArg(
				heifopt.WithDescription("input image has premultiplied alpha"))),
		heifopt.WithBindFlag("enable-metadata-compression", &args.EnableMetadataCompression,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("enable XMP metadata compression (experimental)"))),
		heifopt.WithBindFlag("benchmark", &args.Benchmark,
			heifopt.NewArg(
				heifopt.WithType(types.Standalone),
				heifopt.WithDescription("measure encoding time, PSNR, and output file size"))),
		heifopt.WithBindFlag("output", &args.Output,
			heifopt.NewArg(
				heifopt.WithShortFlag("o"),
				heifopt.WithType(types.File),
				heifopt.WithValueHint(types.HintFilePath),
				heifopt.WithValueName("FILE"),
				heifopt.WithDescription("output filename (optional)"))),
		heifopt.WithBindFlag("input", &args.Input,
			heifopt.NewArg(
				heifopt.WithPosition(0),
				heifopt.WithType(types.File),
				heifopt.WithValueHint(types.HintFilePath),
				heifopt.WithValueName("INPUT_FILE"),
				heifopt.SetRequired(true),
				heifopt.WithDescription("What file do you want to process?"))),
	)
}

// Command returns a new heif-enc descriptor. It panics if the declaration is invalid, which can only
// happen through a programming error in NewParser.
func Command() *heifopt.Parser {
	p, err := NewParser(&Args{})
	if err != nil {
		panic(fmt.Sprintf("invalid %s declaration: %v", Name, err))
	}

	return p
}

// Parse parses argv (without the program name). The first parse error is returned; it is a
// *heifopt.ParseError for values which do not satisfy the declaration.
func Parse(argv []string) (*Args, error) {
	args := &Args{}
	p, err := NewParser(args)
	if err != nil {
		return nil, err
	}
	if !p.Parse(argv) {
		return args, p.GetErrors()[0]
	}

	return args, nil
}
