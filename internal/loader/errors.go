package loader

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrFileNotFound     = errors.New("data file not found")
	ErrPermissionDenied = errors.New("permission denied reading data file")
	ErrInvalidFormat    = errors.New("invalid JSON in data file")
	ErrReadFailed       = errors.New("cannot read data file")
)

// Error describes why a data file could not be loaded.
type Error struct {
	Kind  error
	Path  string
	Cause error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Kind, ErrInvalidFormat) && e.Cause != nil:
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Cause)
	case errors.Is(e.Kind, ErrReadFailed) && e.Cause != nil:
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newError(kind error, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Cause: cause}
}
