package huffpack

import (
	"fmt"

	"github.com/dargueta/huffpack/fileops"
)

// CompressFile compresses the file at inputPath and writes the artifact to a
// new file at outputPath. It refuses to overwrite an existing file.
//
// The returned int64 gives the size of the artifact. If an error occurred, the
// value is undefined and should not be used.
func CompressFile(inputPath, outputPath string) (int64, error) {
	data, err := fileops.ReadWholeFile(inputPath)
	if err != nil {
		return 0, err
	}

	compressor := NewCompressor()
	err = compressor.Compress(data)
	if err != nil {
		return 0, fmt.Errorf("failed to compress %q: %w", inputPath, err)
	}

	artifact, err := compressor.Bytes()
	if err != nil {
		return 0, err
	}
	return int64(len(artifact)), fileops.WriteWholeFile(outputPath, artifact)
}

// DecompressFile decompresses the artifact at inputPath and writes the original
// data to a new file at outputPath. It refuses to overwrite an existing file.
//
// The returned int64 gives the decompressed size. If an error occurred, the
// value is undefined and should not be used.
func DecompressFile(inputPath, outputPath string) (int64, error) {
	artifact, err := fileops.ReadWholeFile(inputPath)
	if err != nil {
		return 0, err
	}

	decompressor := NewDecompressor()
	err = decompressor.Decompress(artifact)
	if err != nil {
		return 0, fmt.Errorf("failed to decompress %q: %w", inputPath, err)
	}

	data, err := decompressor.Bytes()
	if err != nil {
		return 0, err
	}
	return int64(len(data)), fileops.WriteWholeFile(outputPath, data)
}
