package dl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsError(t *testing.T) {
	for _, err := range []error{ErrLibraryNotFound, ErrSymbolNotFound, ErrSignature, ErrUnsupported, ErrClosed} {
		assert.True(t, IsError(err), err.Error())
	}
	assert.False(t, IsError(errors.New("other")))
	assert.False(t, IsError(nil))
}

func TestOpenMissingLibrary(t *testing.T) {
	lib, err := Open("libvastapi-does-not-exist.so.42")
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "libvastapi-does-not-exist.so.42")
}

func TestOpenerFunc(t *testing.T) {
	var opened []string
	o := OpenerFunc(func(name string) (Library, error) {
		opened = append(opened, name)
		return nil, ErrUnsupported
	})

	_, err := o.Open("a")
	assert.ErrorIs(t, err, ErrUnsupported)
	_, _ = o.Open("b")
	assert.Equal(t, []string{"a", "b"}, opened)
}

func TestCheckFuncPtr(t *testing.T) {
	var fn func() int32
	var notFunc int

	assert.NoError(t, checkFuncPtr(&fn))
	assert.ErrorIs(t, checkFuncPtr(fn), ErrSignature)
	assert.ErrorIs(t, checkFuncPtr(&notFunc), ErrSignature)
	assert.ErrorIs(t, checkFuncPtr(nil), ErrSignature)
	assert.ErrorIs(t, checkFuncPtr((*func())(nil)), ErrSignature)
}

func TestClosedLibrary(t *testing.T) {
	l := &library{name: "closed.so", closed: true}

	_, err := l.Lookup("anything")
	assert.ErrorIs(t, err, ErrClosed)

	var fn func()
	assert.ErrorIs(t, l.Bind("anything", &fn), ErrClosed)
	assert.NoError(t, l.Close())
}

func TestRegisterFuncRejects(t *testing.T) {
	var fn func() int32
	assert.ErrorIs(t, RegisterFunc(&fn, 0), ErrSymbolNotFound)
	assert.ErrorIs(t, RegisterFunc(fn, 0x1000), ErrSignature)
	assert.Nil(t, fn)
}
