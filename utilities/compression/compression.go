package compression

import (
	"fmt"
	"io"
)

// Encode Huffman-codes data. It returns the header describing the code and the
// packed payload. Concatenating the encoded header with the payload gives the
// complete compressed artifact.
func Encode(data []byte) (Header, []byte, error) {
	header := Header{Frequencies: CountFrequencies(data)}

	codes, err := DeriveCodeTable(BuildTree(&header.Frequencies))
	if err != nil {
		return header, nil, err
	}

	payload, lastByteBits := PackBits(data, &codes)
	header.LastByteBits = lastByteBits
	return header, payload, nil
}

// Decode is the inverse of [Encode].
func Decode(header *Header, payload []byte) ([]byte, error) {
	return UnpackBits(payload, &header.Frequencies, header.LastByteBits)
}

// CompressBytes compresses data and returns the complete artifact, header
// included.
func CompressBytes(data []byte) ([]byte, error) {
	header, payload, err := Encode(data)
	if err != nil {
		return nil, err
	}

	return JoinArtifact(&header, payload), nil
}

// JoinArtifact serializes the header and returns it followed by the payload.
func JoinArtifact(header *Header, payload []byte) []byte {
	encodedHeader := EncodeHeader(header)
	artifact := make([]byte, 0, len(encodedHeader)+len(payload))
	artifact = append(artifact, encodedHeader...)
	return append(artifact, payload...)
}

// DecompressBytes takes an artifact created by [CompressBytes] and returns the
// original data.
func DecompressBytes(artifact []byte) ([]byte, error) {
	header, payload, err := DecodeHeader(artifact)
	if err != nil {
		return nil, err
	}
	return Decode(&header, payload)
}

// Compress reads the entire input, compresses it, and writes the artifact to
// the output.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func Compress(input io.Reader, output io.Writer) (int64, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	artifact, err := CompressBytes(data)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(artifact)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}

// Decompress reads an entire artifact from the input and writes the original
// data to the output.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size). If an error occurred, the value is undefined and should
// not be used.
func Decompress(input io.Reader, output io.Writer) (int64, error) {
	artifact, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	data, err := DecompressBytes(artifact)
	if err != nil {
		return 0, err
	}

	// Some writers, like fixed-size buffers, reject even an empty write once
	// they're full.
	if len(data) == 0 {
		return 0, nil
	}

	n, err := output.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}
