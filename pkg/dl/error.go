package dl

import (
	"errors"
)

var (
	// ErrLibraryNotFound wraps the platform loader's reason for not opening
	// a library: missing file, wrong architecture or a failing initializer.
	ErrLibraryNotFound = NewError("shared library cannot be loaded")
	// ErrSymbolNotFound is reported by Lookup and Bind for a name the
	// library does not export.
	ErrSymbolNotFound = NewError("symbol not found")
	// ErrSignature means a func type cannot be bound at all, either because
	// it is not a func pointer or because purego cannot marshal its
	// arguments on this platform.
	ErrSignature = NewError("unsupported function signature")
	// ErrUnsupported is returned on platforms without a dynamic loader.
	ErrUnsupported = NewError("dynamic loading is not supported on this platform")
	// ErrClosed is returned by lookups on a closed library.
	ErrClosed = NewError("library is closed")
)

// loaderError marks errors originating in this package so callers can tell
// loader failures from driver failures with IsError.
type loaderError struct {
	msg string
}

// NewError returns a loader error that IsError recognises.
func NewError(msg string) error {
	return &loaderError{msg: msg}
}

func (e *loaderError) Error() string {
	return e.msg
}

// IsError reports whether err, or any error it wraps, came from the loader.
func IsError(err error) bool {
	var target *loaderError
	return errors.As(err, &target)
}
