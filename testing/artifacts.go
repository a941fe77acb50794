package testing

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadArtifact takes a compressed artifact and returns a stream to access the
// uncompressed data.
//
//   - Writes to the stream do not affect `artifact`.
//   - The stream's size is fixed to `expectedSize`. Attempting to write past the
//     end of this buffer will trigger an error.
func LoadArtifact(t *testing.T, artifact []byte, expectedSize uint) io.ReadWriteSeeker {
	require.GreaterOrEqual(
		t,
		len(artifact),
		compression.HeaderSize(0),
		"artifact is too short to hold a header",
	)

	data, err := compression.DecompressBytes(artifact)
	require.NoError(t, err)

	require.Equal(t, expectedSize, uint(len(data)), "uncompressed data is wrong size")
	return bytesextra.NewReadWriteSeeker(data)
}

// RandomBytes returns `size` bytes of uniformly distributed random data. The
// same seed always gives the same bytes.
func RandomBytes(size int, seed int64) []byte {
	data := make([]byte, size)
	rand.New(rand.NewSource(seed)).Read(data)
	return data
}

// SkewedBytes returns `size` bytes drawn from a small alphabet with very uneven
// frequencies, which is the kind of data Huffman coding does well on.
func SkewedBytes(size int, seed int64) []byte {
	alphabet := []byte("eeeeeeeeeeeetttttttaaaaooinnsshr \n")
	rng := rand.New(rand.NewSource(seed))

	data := make([]byte, size)
	for i := range data {
		data[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return data
}

// WriteTempFile writes data to a file in a temporary directory that's removed
// when the test finishes, and returns the file's path.
func WriteTempFile(t *testing.T, name string, data []byte) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, data, 0o644)
	require.NoError(t, err, "failed to create temporary file")
	return path
}
