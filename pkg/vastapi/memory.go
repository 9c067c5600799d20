package vastapi

import (
	"math"
	"sync"
	"unsafe"
)

const (
	symbolGetMemory  = "vastapi_malloc_memory"
	symbolFreeMemory = "vastapi_free_memory"
)

// Memory holds the driver's allocation helpers. Both table variants embed it.
type Memory struct {
	GetMemory  func(length int32) unsafe.Pointer
	FreeMemory func(ptr unsafe.Pointer)
}

// Alloc allocates n bytes with the driver allocator. The memory is not
// managed by the Go runtime; release it with Buffer.Free.
func (m *Memory) Alloc(n int) (*Buffer, error) {
	if m.GetMemory == nil || m.FreeMemory == nil {
		return nil, errNotLoaded
	}
	if n <= 0 || n > math.MaxInt32 {
		return nil, errInvalidSize
	}

	ptr := m.GetMemory(int32(n))
	if ptr == nil {
		return nil, ErrDriverAlloc
	}
	return &Buffer{
		ptr:  ptr,
		data: unsafe.Slice((*byte)(ptr), n),
		free: m.FreeMemory,
	}, nil
}

// Buffer is driver-allocated memory.
type Buffer struct {
	mu   sync.Mutex
	ptr  unsafe.Pointer
	data []byte
	free func(unsafe.Pointer)
}

// Bytes views the buffer. The slice is invalid after Free.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Pointer returns the address to hand back to the driver, or nil after Free.
func (b *Buffer) Pointer() unsafe.Pointer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ptr
}

// Free returns the memory to the driver. Calling it again does nothing.
func (b *Buffer) Free() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ptr == nil {
		return
	}
	b.free(b.ptr)
	b.ptr = nil
	b.data = nil
}
