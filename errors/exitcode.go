package errors

import (
	stderrors "errors"
)

// ExitStatus is a process exit code derived from an error's class.
type ExitStatus int

const (
	ExitOK ExitStatus = iota
	ExitFailure
	ExitIOError
	ExitCorruptInput
	ExitUsageError
	ExitInternalError
)

// ExitCode maps an error returned by this module to the status the command
// line tools exit with. Errors that don't derive from any sentinel in this
// package give [ExitFailure].
func ExitCode(err error) ExitStatus {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, ErrCorruptInput):
		return ExitCorruptInput
	case stderrors.Is(err, ErrExists),
		stderrors.Is(err, ErrNotFound),
		stderrors.Is(err, ErrPermissionDenied),
		stderrors.Is(err, ErrIOFailed):
		return ExitIOError
	case stderrors.Is(err, ErrInvalidArgument):
		return ExitUsageError
	case stderrors.Is(err, ErrInternal), stderrors.Is(err, ErrWrongPhase):
		return ExitInternalError
	}
	return ExitFailure
}
