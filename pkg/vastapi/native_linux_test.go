//go:build linux

package vastapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastai/go-vastapi/pkg/dl"
)

const libc = "libc.so.6"

// aliasLibrary resolves every name to one real export, so the table funcs go
// through purego exactly as they would against the driver.
type aliasLibrary struct {
	dl.Library
	target string
}

func (l *aliasLibrary) Lookup(string) (uintptr, error) {
	return l.Library.Lookup(l.target)
}

func (l *aliasLibrary) Bind(_ string, fptr any) error {
	return l.Library.Bind(l.target, fptr)
}

func libcParams(t *testing.T) *Params {
	t.Helper()
	lib, err := dl.Open(libc)
	if err != nil {
		t.Skipf("%s unavailable: %v", libc, err)
	}
	require.NoError(t, lib.Close())

	return &Params{
		LibraryName: libc,
		Opener: dl.OpenerFunc(func(name string) (dl.Library, error) {
			lib, err := dl.Open(name)
			if err != nil {
				return nil, err
			}
			return &aliasLibrary{Library: lib, target: "abs"}, nil
		}),
	}
}

func TestLoadFunctionsNative(t *testing.T) {
	p := libcParams(t)

	var f *Functions
	require.NoError(t, p.LoadFunctions(&f))
	defer FreeFunctions(&f)

	assert.Equal(t, StatePopulated, f.State())
	assert.Equal(t, libc, f.LibraryName())
	assert.NotZero(t, f.DecGetFormat)
	assert.Equal(t, PixFmt(7), f.HWPixFmtFromFourcc(7))

	if _, err := f.DecGetFormatFunc(); err != nil {
		assert.ErrorIs(t, err, dl.ErrSignature)
	}
}

func TestLoadNoDevFunctionsNative(t *testing.T) {
	p := libcParams(t)

	var f *NoDevFunctions
	require.NoError(t, p.LoadNoDevFunctions(&f))
	assert.Equal(t, StatePopulated, f.State())

	FreeNoDevFunctions(&f)
	assert.Nil(t, f)
}
