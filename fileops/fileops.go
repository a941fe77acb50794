// Package fileops reads and writes entire files at once. Errors are translated
// into the sentinels from [errors] while keeping the original *fs.PathError
// reachable with errors.As.
package fileops

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/dargueta/huffpack/errors"
	"github.com/hashicorp/go-multierror"
)

// ReadWholeFile returns the entire contents of the file at `path`.
func ReadWholeFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, TranslateError(err)
	}
	return data, nil
}

// WriteWholeFile creates a new file at `path` and writes data to it. It never
// overwrites an existing file; if something already exists at `path` the
// returned error wraps [errors.ErrExists].
//
// If writing fails after the file was created, the partially written file is
// removed.
func WriteWholeFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return TranslateError(err)
	}

	_, writeErr := file.Write(data)
	result := multierror.Append(writeErr, file.Close())
	if result.ErrorOrNil() == nil {
		return nil
	}

	result = multierror.Append(result, os.Remove(path))
	result.ErrorFormat = joinErrors
	return errors.ErrIOFailed.Wrap(result)
}

// TranslateError wraps an error from the os package in the matching sentinel.
func TranslateError(err error) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.ErrNotFound.Wrap(err)
	case stderrors.Is(err, fs.ErrExist):
		return errors.ErrExists.Wrap(err)
	case stderrors.Is(err, fs.ErrPermission):
		return errors.ErrPermissionDenied.Wrap(err)
	}
	return errors.ErrIOFailed.Wrap(err)
}

func joinErrors(errs []error) string {
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return strings.Join(messages, "; ")
}
