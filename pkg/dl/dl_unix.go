//go:build darwin || linux

package dl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func openHandle(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY)
}

func symbolAddr(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeHandle(handle uintptr) error {
	return purego.Dlclose(handle)
}

func registerFunc(fptr any, addr uintptr) (err error) {
	// purego panics on func types it cannot marshal.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSignature, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
