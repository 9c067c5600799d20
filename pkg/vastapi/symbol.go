package vastapi

import (
	"fmt"
	"strings"

	"github.com/vastai/go-vastapi/pkg/dl"
)

// Symbol is one entry point of a function table.
type Symbol struct {
	// Name is the exported symbol in the driver library.
	Name string
	// Optional entries may be missing; their func stays nil.
	Optional bool

	// slot is a *func bound through dl.Library.Bind, or a *uintptr that
	// only receives the resolved address.
	slot any
}

func (s Symbol) bind(lib dl.Library) error {
	addr, ok := s.slot.(*uintptr)
	if !ok {
		return lib.Bind(s.Name, s.slot)
	}
	a, err := lib.Lookup(s.Name)
	if err != nil {
		return err
	}
	*addr = a
	return nil
}

func required(name string, slot any) Symbol {
	return Symbol{Name: name, slot: slot}
}

func optional(name string, slot any) Symbol {
	return Symbol{Name: name, Optional: true, slot: slot}
}

// Variant selects one of the two function tables.
type Variant int

const (
	// VariantDevice is the device-bound Functions table.
	VariantDevice Variant = iota
	// VariantNoDevice is the device-independent NoDevFunctions table.
	VariantNoDevice
)

func (v Variant) String() string {
	switch v {
	case VariantDevice:
		return "device"
	case VariantNoDevice:
		return "nodev"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts "device" and "nodev".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "device", "dev":
		return VariantDevice, nil
	case "nodev", "no-device", "nodevice":
		return VariantNoDevice, nil
	default:
		return 0, fmt.Errorf("vastapi: unknown table variant %q", s)
	}
}

// Symbols returns the entries of v in resolution order.
func (v Variant) Symbols() []Symbol {
	switch v {
	case VariantDevice:
		return new(Functions).symbols()
	case VariantNoDevice:
		return new(NoDevFunctions).symbols()
	default:
		return nil
	}
}

// SymbolNames returns the exported names probed for v, in resolution order.
// The list is fixed at compile time.
func SymbolNames(v Variant) []string {
	symbols := v.Symbols()
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.Name
	}
	return names
}
