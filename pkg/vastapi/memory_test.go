package vastapi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastai/go-vastapi/internal/dltest"
)

type fakeAllocator struct {
	blocks map[unsafe.Pointer][]byte
	freed  int
}

func (a *fakeAllocator) get(length int32) unsafe.Pointer {
	b := make([]byte, length)
	p := unsafe.Pointer(&b[0])
	a.blocks[p] = b
	return p
}

func (a *fakeAllocator) free(ptr unsafe.Pointer) {
	delete(a.blocks, ptr)
	a.freed++
}

func TestMemoryAlloc(t *testing.T) {
	a := &fakeAllocator{blocks: make(map[unsafe.Pointer][]byte)}
	exports := noDevExports()
	exports[symbolGetMemory] = a.get
	exports[symbolFreeMemory] = a.free
	o := &dltest.Opener{Exports: exports}

	var f *NoDevFunctions
	require.NoError(t, mockParams(o).LoadNoDevFunctions(&f))
	defer FreeNoDevFunctions(&f)

	buf, err := f.Alloc(16)
	require.NoError(t, err)
	require.Len(t, buf.Bytes(), 16)
	copy(buf.Bytes(), "vastai")
	assert.Equal(t, []byte("vastai"), a.blocks[buf.Pointer()][:6])

	buf.Free()
	buf.Free()
	assert.Equal(t, 1, a.freed)
	assert.Nil(t, buf.Bytes())
	assert.Nil(t, buf.Pointer())
}

func TestMemoryAllocErrors(t *testing.T) {
	var m Memory
	_, err := m.Alloc(8)
	assert.ErrorIs(t, err, errNotLoaded)

	m.GetMemory = func(length int32) unsafe.Pointer { return nil }
	m.FreeMemory = func(ptr unsafe.Pointer) {}

	_, err = m.Alloc(0)
	assert.ErrorIs(t, err, errInvalidSize)
	_, err = m.Alloc(-1)
	assert.ErrorIs(t, err, errInvalidSize)

	_, err = m.Alloc(8)
	assert.ErrorIs(t, err, ErrDriverAlloc)
}
