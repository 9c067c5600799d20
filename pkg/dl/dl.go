// Package dl opens native shared libraries and binds their exported functions
// to Go func values. Loading goes through purego on unix and through
// golang.org/x/sys/windows on Windows, so no cgo toolchain is required.
//
// Opening a library runs its static initializers. That happens inside the
// platform loader and cannot be suppressed.
package dl

import (
	"fmt"
	"reflect"
	"sync"
)

// Library is an opened shared object.
type Library interface {
	// Name is the name the library was opened with.
	Name() string
	// Lookup returns the address of an exported symbol. A missing symbol is
	// reported as ErrSymbolNotFound.
	Lookup(name string) (uintptr, error)
	// Bind resolves name and stores a callable for it in fptr, which must be a
	// pointer to a func variable. The func type is trusted to match the native
	// signature; a mismatch cannot be detected and is undefined behaviour.
	Bind(name string, fptr any) error
	// Close releases the library. Funcs bound from it must not be called
	// afterwards. Closing twice is a no-op.
	Close() error
}

// Opener opens libraries by name.
type Opener interface {
	Open(name string) (Library, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(name string) (Library, error)

func (f OpenerFunc) Open(name string) (Library, error) {
	return f(name)
}

// DefaultOpener uses the platform loader.
var DefaultOpener Opener = OpenerFunc(Open)

type library struct {
	name string

	mu     sync.Mutex
	handle uintptr
	closed bool
}

// Open loads name from the default library search path with lazy binding.
// Every call yields an independent Library, even for the same name.
func Open(name string) (Library, error) {
	handle, err := openHandle(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, name, err)
	}
	return &library{name: name, handle: handle}, nil
}

func (l *library) Name() string {
	return l.name
}

func (l *library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, ErrClosed
	}

	addr, err := symbolAddr(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s in %s: %v", ErrSymbolNotFound, name, l.name, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s in %s", ErrSymbolNotFound, name, l.name)
	}
	return addr, nil
}

func (l *library) Bind(name string, fptr any) error {
	if err := checkFuncPtr(fptr); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	addr, err := l.Lookup(name)
	if err != nil {
		return err
	}
	if err := registerFunc(fptr, addr); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RegisterFunc stores a callable for the function at addr in fptr. It is
// Bind for an address obtained earlier from Lookup, with the same trust in
// the func type.
func RegisterFunc(fptr any, addr uintptr) error {
	if err := checkFuncPtr(fptr); err != nil {
		return err
	}
	if addr == 0 {
		return fmt.Errorf("%w: nil function address", ErrSymbolNotFound)
	}
	return registerFunc(fptr, addr)
}

func (l *library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return closeHandle(l.handle)
}

func checkFuncPtr(fptr any) error {
	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("%w: want pointer to func, got %T", ErrSignature, fptr)
	}
	return nil
}
