package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// HuffError is an error with a customizable message. Errors derived from one of
// the sentinels below with [HuffError.WithMessage] or [HuffError.Wrap] still
// match that sentinel with errors.Is.
type HuffError interface {
	error
	WithMessage(message string) HuffError
	Wrap(err error) HuffError
}

type baseHuffError string

const rootError = baseHuffError("")

// ErrCorruptInput means an artifact's header or payload can't be decoded.
var ErrCorruptInput = rootError.WithMessage("Corrupt input")

// ErrExists means the output file already exists. Output files are never
// overwritten.
var ErrExists = rootError.WithMessage("File exists")

// ErrInternal is an invariant violation inside huffpack itself, not a problem
// with the input.
var ErrInternal = rootError.WithMessage("Internal error")

// ErrIOFailed covers I/O failures that don't have a more specific sentinel.
var ErrIOFailed = rootError.WithMessage("Input/output error")

// ErrInvalidArgument is bad usage, such as a wrong number of command-line
// arguments or an unknown report format.
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")

// ErrNotFound means an input file doesn't exist.
var ErrNotFound = rootError.WithMessage("No such file or directory")

// ErrPermissionDenied means a file couldn't be opened or created for lack of
// permissions.
var ErrPermissionDenied = rootError.WithMessage("Permission denied")

// ErrWrongPhase is returned by a Compressor or Decompressor method called
// before or after the phase it's valid in.
var ErrWrongPhase = rootError.WithMessage("Operation not valid in current state")

func (e baseHuffError) Error() string {
	return string(e)
}

func (e baseHuffError) WithMessage(message string) HuffError {
	return customHuffError{
		message:       message,
		originalError: e,
	}
}

func (e baseHuffError) Wrap(err error) HuffError {
	return customHuffError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customHuffError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customHuffError) Error() string {
	return e.message
}

func (e customHuffError) WithMessage(message string) HuffError {
	return customHuffError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

// Wrap returns a new error whose message is this error's message followed by
// err's. Both this error and err are reachable through errors.Is and errors.As.
func (e customHuffError) Wrap(err error) HuffError {
	return customHuffError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customHuffError) Unwrap() error {
	return e.originalError
}
