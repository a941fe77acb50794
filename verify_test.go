package huffpack_test

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/dargueta/huffpack"
	"github.com/dargueta/huffpack/errors"
	dt "github.com/dargueta/huffpack/testing"
	"github.com/dargueta/huffpack/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	original := dt.SkewedBytes(5000, 50)
	artifact, err := compression.CompressBytes(original)
	require.NoError(t, err)

	digest, err := huffpack.Verify(original, artifact)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(original), digest)
}

func TestVerify__Mismatch(t *testing.T) {
	artifact, err := compression.CompressBytes([]byte("AACD"))
	require.NoError(t, err)

	_, err = huffpack.Verify([]byte("AADC"), artifact)
	assert.ErrorIs(t, err, errors.ErrInternal)
}

func TestVerify__Corrupt(t *testing.T) {
	_, err := huffpack.Verify([]byte("AACD"), []byte{0, 0, 0})
	assert.ErrorIs(t, err, errors.ErrCorruptInput)
}
