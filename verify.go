package huffpack

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dargueta/huffpack/errors"
)

// Verify decompresses an artifact and checks that it reproduces original. It
// returns the xxHash64 digest of the decompressed data.
//
// A corrupt artifact gives an error wrapping [errors.ErrCorruptInput]. An
// artifact that decodes cleanly to the wrong data gives [errors.ErrInternal],
// since the encoder must never produce one.
func Verify(original, artifact []byte) (uint64, error) {
	decompressor := NewDecompressor()
	err := decompressor.Decompress(artifact)
	if err != nil {
		return 0, err
	}

	roundTripped, err := decompressor.Bytes()
	if err != nil {
		return 0, err
	}

	expected := xxhash.Sum64(original)
	actual := xxhash.Sum64(roundTripped)
	if len(original) != len(roundTripped) || expected != actual {
		msg := fmt.Sprintf(
			"round trip mismatch: expected %d bytes with digest %016x, got %d bytes with digest %016x",
			len(original),
			expected,
			len(roundTripped),
			actual,
		)
		return actual, errors.ErrInternal.WithMessage(msg)
	}
	return actual, nil
}
