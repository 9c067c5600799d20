//go:build !darwin && !linux && !windows

package dl

func openHandle(name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func symbolAddr(handle uintptr, name string) (uintptr, error) {
	return 0, ErrUnsupported
}

func closeHandle(handle uintptr) error {
	return nil
}

func registerFunc(fptr any, addr uintptr) error {
	return ErrUnsupported
}
