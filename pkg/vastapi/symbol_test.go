package vastapi

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isUnbound(slot any) bool {
	if addr, ok := slot.(*uintptr); ok {
		return *addr == 0
	}
	return reflect.ValueOf(slot).Elem().IsNil()
}

func TestSymbolNames(t *testing.T) {
	device := SymbolNames(VariantDevice)
	require.Len(t, device, 69)
	assert.Equal(t, "allow_optimize_delay", device[0])
	assert.Equal(t, "vastapi_free_memory", device[len(device)-1])
	assert.Equal(t, device, SymbolNames(VariantDevice))

	seen := make(map[string]bool)
	for _, n := range device {
		assert.Falsef(t, seen[n], "duplicate symbol %s", n)
		seen[n] = true
	}

	assert.Equal(t, []string{
		"vastapi_preset_loadbalance",
		"vastFilterParamParse",
		"vastapi_malloc_memory",
		"vastapi_free_memory",
	}, SymbolNames(VariantNoDevice))

	assert.Empty(t, SymbolNames(Variant(7)))
}

func TestSymbolsAreRequired(t *testing.T) {
	for _, v := range []Variant{VariantDevice, VariantNoDevice} {
		for _, s := range v.Symbols() {
			assert.Falsef(t, s.Optional, "%s %s", v, s.Name)
			kind := reflect.ValueOf(s.slot).Elem().Kind()
			assert.Truef(t, kind == reflect.Func || kind == reflect.Uintptr, "%s slot is %s", s.Name, kind)
		}
	}
}

func TestParseVariant(t *testing.T) {
	cases := map[string]Variant{
		"":          VariantDevice,
		"device":    VariantDevice,
		"nodev":     VariantNoDevice,
		"no-device": VariantNoDevice,
		"NODEV":     VariantNoDevice,
	}
	for in, want := range cases {
		got, err := ParseVariant(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseVariant("gpu")
	assert.Error(t, err)

	assert.Equal(t, "device", VariantDevice.String())
	assert.Equal(t, "nodev", VariantNoDevice.String())
	assert.Equal(t, "Variant(9)", Variant(9).String())
}

func TestAddressSlot(t *testing.T) {
	var f Functions
	var addrSlots []string
	for _, s := range f.symbols() {
		if _, ok := s.slot.(*uintptr); ok {
			addrSlots = append(addrSlots, s.Name)
		}
	}
	assert.Equal(t, []string{"vastapi_dec_get_format"}, addrSlots)
}
