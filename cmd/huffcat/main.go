package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/fileops"
	"github.com/dargueta/huffpack/utilities/compression"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(
			os.Stderr,
			"Decompress a Huffman-coded file to standard output.\nUsage: %s input-file\n",
			os.Args[0])
		os.Exit(int(errors.ExitUsageError))
	}

	sourceFilePath := os.Args[1]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(int(errors.ExitCode(fileops.TranslateError(errSrc))))
	}
	defer sourceFile.Close()

	output := bufio.NewWriter(os.Stdout)
	_, err := compression.Decompress(sourceFile, output)
	if err == nil {
		err = output.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(int(errors.ExitCode(err)))
	}
}
