package vastapi

import "unsafe"

// NoDevFunctions is the device-independent driver table: preset load
// balancing and filter parameter parsing.
type NoDevFunctions struct {
	handle
	Memory

	PresetLoadBalance func(preset string) int32
	FilterParamParse  func(filterParams unsafe.Pointer, key, value string) Status
}

func (f *NoDevFunctions) symbols() []Symbol {
	return []Symbol{
		required("vastapi_preset_loadbalance", &f.PresetLoadBalance),
		required("vastFilterParamParse", &f.FilterParamParse),

		required(symbolGetMemory, &f.GetMemory),
		required(symbolFreeMemory, &f.FreeMemory),
	}
}
