package fileops_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/huffpack/errors"
	"github.com/dargueta/huffpack/fileops"
	dt "github.com/dargueta/huffpack/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWholeFile(t *testing.T) {
	data := dt.RandomBytes(3000, 20)
	path := dt.WriteTempFile(t, "input.bin", data)

	contents, err := fileops.ReadWholeFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, contents)
}

func TestReadWholeFile__NotFound(t *testing.T) {
	_, err := fileops.ReadWholeFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	assert.ErrorAs(t, err, &pathErr, "original *fs.PathError should be reachable")
}

func TestWriteWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.bin")
	data := []byte("some output")

	err := fileops.WriteWholeFile(path, data)
	require.NoError(t, err)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, contents)
}

func TestWriteWholeFile__Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, fileops.WriteWholeFile(path, []byte{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.EqualValues(t, 0, info.Size())
}

func TestWriteWholeFile__RefusesToOverwrite(t *testing.T) {
	original := []byte("do not touch")
	path := dt.WriteTempFile(t, "existing.bin", original)

	err := fileops.WriteWholeFile(path, []byte("clobbered"))
	assert.ErrorIs(t, err, errors.ErrExists)
	assert.ErrorIs(t, err, fs.ErrExist)

	contents, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, contents, "existing file was modified")
}

func TestWriteWholeFile__MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.bin")
	err := fileops.WriteWholeFile(path, []byte{1})
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
