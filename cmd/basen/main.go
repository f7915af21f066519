// Command basen encodes files or stdin into base-N symbol sequences and
// decodes them back.
//
// Examples:
//
//	echo -n 'Hello, World!' | basen encode
//	basen encode --alphabet base62 --compress zstd payload.bin
//	basen decode --alphabet base62 --compress zstd encoded.txt
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"

	"github.com/arloliu/basen"
	"github.com/arloliu/basen/alphabet"
	"github.com/arloliu/basen/format"
)

var (
	alphabetFlag = cli.StringFlag{
		Name:  "alphabet, a",
		Usage: fmt.Sprintf("alphabet to use (%s)", strings.Join(alphabet.Names(), ", ")),
		Value: "base69",
	}
	compressFlag = cli.StringFlag{
		Name:  "compress, c",
		Usage: "payload compression (none, zstd, s2, lz4)",
		Value: "none",
	}
	outFlag = cli.StringFlag{
		Name:  "out, o",
		Usage: "write output to `FILE` instead of stdout",
	}
	statsFlag = cli.BoolFlag{
		Name:  "stats",
		Usage: "print compression stats to stderr",
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "basen"
	app.Usage = "encode and decode binary data as base-N symbol sequences"
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "encode a file (or stdin) into a symbol sequence",
			ArgsUsage: "[file]",
			Flags:     []cli.Flag{alphabetFlag, compressFlag, outFlag, statsFlag},
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Usage:     "decode a symbol sequence file (or stdin) back into bytes",
			ArgsUsage: "[file]",
			Flags:     []cli.Flag{alphabetFlag, compressFlag, outFlag},
			Action:    decodeAction,
		},
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCodec builds a codec from the shared --alphabet and --compress flags.
func newCodec(ctx *cli.Context) (*basen.Codec, error) {
	alpha, err := alphabet.Lookup(ctx.String("alphabet"))
	if err != nil {
		return nil, err
	}

	compression, err := format.ParseCompression(ctx.String("compress"))
	if err != nil {
		return nil, err
	}

	return basen.New(alpha, basen.WithCompression(compression))
}

func readInput(ctx *cli.Context) ([]byte, error) {
	if name := ctx.Args().First(); name != "" {
		return os.ReadFile(name)
	}

	return io.ReadAll(os.Stdin)
}

func writeOutput(ctx *cli.Context, data []byte) error {
	if name := ctx.String("out"); name != "" {
		return os.WriteFile(name, data, 0o644)
	}

	_, err := os.Stdout.Write(data)

	return err
}

func encodeAction(ctx *cli.Context) error {
	codec, err := newCodec(ctx)
	if err != nil {
		return err
	}

	data, err := readInput(ctx)
	if err != nil {
		return err
	}

	text, stats, err := codec.EncodeStats(data)
	if err != nil {
		return err
	}

	if ctx.Bool("stats") {
		fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes (%.1f%% saved), %d symbols\n",
			stats.Algorithm, stats.OriginalSize, stats.CompressedSize,
			stats.SpaceSavings(), len([]rune(text)))
	}

	return writeOutput(ctx, []byte(text+"\n"))
}

func decodeAction(ctx *cli.Context) error {
	codec, err := newCodec(ctx)
	if err != nil {
		return err
	}

	text, err := readInput(ctx)
	if err != nil {
		return err
	}

	// Tolerate the trailing newline emitted by encode and by text editors.
	data, err := codec.Decode(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}

	return writeOutput(ctx, data)
}
