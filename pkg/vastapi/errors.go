package vastapi

import (
	"errors"
	"fmt"
)

var (
	errNilTable    = errors.New("vastapi: nil table reference")
	errNotLoaded   = errors.New("vastapi: memory helpers are not loaded")
	errInvalidSize = errors.New("vastapi: invalid allocation size")

	// ErrDriverAlloc is returned by Memory.Alloc when vastapi_malloc_memory
	// hands back nil. Table construction itself has no allocation error.
	ErrDriverAlloc = errors.New("vastapi: driver allocation failed")
)

// LoadError reports a failed table construction. Symbol is empty when the
// library itself could not be opened.
type LoadError struct {
	Library string
	Symbol  string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("vastapi: cannot load %s: %v", e.Library, e.Err)
	}
	return fmt.Sprintf("vastapi: cannot load %s from %s: %v", e.Symbol, e.Library, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ResultCode maps a load result to the driver loader's integer convention:
// 0 on success, -1 on failure.
func ResultCode(err error) int {
	if err == nil {
		return 0
	}
	return -1
}
