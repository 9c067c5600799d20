// Package dltest provides an in-memory dl.Opener for exercising function
// table construction without a native driver.
package dltest

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/vastai/go-vastapi/pkg/dl"
)

// Opener hands out independent mock libraries exporting Exports.
type Opener struct {
	// Exports maps symbol names to Go implementations. A nil implementation
	// is replaced by a stub returning zero values.
	Exports map[string]any
	// Err, when set, makes Open fail.
	Err error
	// CloseErr is returned by Close of every library opened afterwards.
	CloseErr error

	mu        sync.Mutex
	libraries []*Library
}

// Export builds an export map with stub implementations for names.
func Export(names ...string) map[string]any {
	m := make(map[string]any, len(names))
	for _, n := range names {
		m[n] = nil
	}
	return m
}

// Without returns a copy of exports lacking the given names.
func Without(exports map[string]any, names ...string) map[string]any {
	m := make(map[string]any, len(exports))
	for k, v := range exports {
		m[k] = v
	}
	for _, n := range names {
		delete(m, n)
	}
	return m
}

func (o *Opener) Open(name string) (dl.Library, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.Err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dl.ErrLibraryNotFound, name, o.Err)
	}

	l := &Library{
		name:     name,
		exports:  o.Exports,
		closeErr: o.CloseErr,
		id:       len(o.libraries),
	}
	o.libraries = append(o.libraries, l)
	return l, nil
}

// Libraries returns every library opened so far, oldest first.
func (o *Opener) Libraries() []*Library {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Library(nil), o.libraries...)
}

// Library is a mock shared object.
type Library struct {
	name     string
	exports  map[string]any
	closeErr error
	id       int

	mu      sync.Mutex
	lookups []string
	closes  int
}

func (l *Library) Name() string {
	return l.name
}

func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lookup(name)
}

func (l *Library) lookup(name string) (uintptr, error) {
	l.lookups = append(l.lookups, name)
	if l.closes > 0 {
		return 0, dl.ErrClosed
	}
	if _, ok := l.exports[name]; !ok {
		return 0, fmt.Errorf("%w: %s in %s", dl.ErrSymbolNotFound, name, l.name)
	}
	// Distinct non-zero fake address per library and lookup.
	return uintptr(0x10000*(l.id+1) + 8*len(l.lookups)), nil
}

func (l *Library) Bind(name string, fptr any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Func {
		return fmt.Errorf("%s: %w: want pointer to func, got %T", name, dl.ErrSignature, fptr)
	}
	if _, err := l.lookup(name); err != nil {
		return err
	}

	slot := v.Elem()
	impl := l.exports[name]
	if impl == nil {
		slot.Set(reflect.MakeFunc(slot.Type(), func(args []reflect.Value) []reflect.Value {
			out := make([]reflect.Value, slot.Type().NumOut())
			for i := range out {
				out[i] = reflect.Zero(slot.Type().Out(i))
			}
			return out
		}))
		return nil
	}

	iv := reflect.ValueOf(impl)
	if iv.Type() != slot.Type() {
		return fmt.Errorf("%s: %w: have %s, want %s", name, dl.ErrSignature, iv.Type(), slot.Type())
	}
	slot.Set(iv)
	return nil
}

func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closes++
	return l.closeErr
}

// Lookups returns the symbol names probed, in order.
func (l *Library) Lookups() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lookups...)
}

// Closes reports how many times Close was called.
func (l *Library) Closes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closes
}
