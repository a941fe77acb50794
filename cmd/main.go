package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dargueta/huffpack"
	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/fileops"
	"github.com/dargueta/huffpack/report"
	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:   "huffpack",
		Usage:  "Compress and decompress files using static Huffman coding",
		Writer: os.Stdout,
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Aliases:   []string{"c"},
				Usage:     "Compress a file",
				Action:    compressFile,
				ArgsUsage: "INPUT_FILE OUTPUT_FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "verify",
						Usage: "decompress the result and compare it to the input",
					},
				},
			},
			{
				Name:      "decompress",
				Aliases:   []string{"d"},
				Usage:     "Decompress a file",
				Action:    decompressFile,
				ArgsUsage: "INPUT_FILE OUTPUT_FILE",
			},
			{
				Name:      "frequencies",
				Aliases:   []string{"f"},
				Usage:     "Print the number of times each byte value occurs in a file",
				Action:    printFrequencies,
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: string(report.FormatList),
						Usage: "output format, `list` or `csv`",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "include byte values that don't occur (CSV only)",
					},
				},
			},
		},
	}
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Printf("fatal error: %s", err.Error())
		os.Exit(int(errors.ExitCode(err)))
	}
}

func getPaths(context *cli.Context, count int) ([]string, error) {
	if context.NArg() != count {
		msg := fmt.Sprintf(
			"%s needs %d argument(s), got %d", context.Command.Name, count, context.NArg())
		return nil, errors.ErrInvalidArgument.WithMessage(msg)
	}
	return context.Args().Slice(), nil
}

func compressFile(context *cli.Context) error {
	paths, err := getPaths(context, 2)
	if err != nil {
		return err
	}

	size, err := huffpack.CompressFile(paths[0], paths[1])
	if err != nil {
		return err
	}
	log.Printf("compressed %s to %d bytes", paths[0], size)

	if !context.Bool("verify") {
		return nil
	}

	original, err := fileops.ReadWholeFile(paths[0])
	if err != nil {
		return err
	}
	artifact, err := fileops.ReadWholeFile(paths[1])
	if err != nil {
		return err
	}

	digest, err := huffpack.Verify(original, artifact)
	if err != nil {
		return err
	}
	log.Printf("verified %s: xxhash64 %016x", paths[1], digest)
	return nil
}

func decompressFile(context *cli.Context) error {
	paths, err := getPaths(context, 2)
	if err != nil {
		return err
	}

	size, err := huffpack.DecompressFile(paths[0], paths[1])
	if err != nil {
		return err
	}
	log.Printf("decompressed %s to %d bytes", paths[0], size)
	return nil
}

func printFrequencies(context *cli.Context) error {
	paths, err := getPaths(context, 1)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(context.String("format"))
	if err != nil {
		return err
	}

	data, err := fileops.ReadWholeFile(paths[0])
	if err != nil {
		return err
	}

	table := compression.CountFrequencies(data)
	return report.Write(context.App.Writer, &table, format, context.Bool("all"))
}
