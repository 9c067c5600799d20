package vastapi

import "fmt"

// Status is the return code of the generic driver calls.
type Status int32

const (
	StatusSuccess                Status = 0x00
	StatusOperationFailed        Status = 0x01
	StatusAllocationFailed       Status = 0x02
	StatusInvalidDisplay         Status = 0x03
	StatusInvalidConfig          Status = 0x04
	StatusInvalidContext         Status = 0x05
	StatusInvalidSurface         Status = 0x06
	StatusInvalidBuffer          Status = 0x07
	StatusInvalidImage           Status = 0x08
	StatusInvalidSubpicture      Status = 0x09
	StatusAttrNotSupported       Status = 0x0a
	StatusMaxNumExceeded         Status = 0x0b
	StatusUnsupportedProfile     Status = 0x0c
	StatusUnsupportedEntrypoint  Status = 0x0d
	StatusUnsupportedRTFormat    Status = 0x0e
	StatusUnsupportedBufferType  Status = 0x0f
	StatusSurfaceBusy            Status = 0x10
	StatusFlagNotSupported       Status = 0x11
	StatusInvalidParameter       Status = 0x12
	StatusResolutionNotSupported Status = 0x13
	StatusUnimplemented          Status = 0x14
	StatusSurfaceInDisplaying    Status = 0x15
	StatusInvalidImageFormat     Status = 0x16
	StatusDecodingError          Status = 0x17
	StatusEncodingError          Status = 0x18
	StatusProcessingError        Status = 0x19
	StatusUnsupportedFilter      Status = 0x20
	StatusInvalidFilterChain     Status = 0x21
	StatusHWBusy                 Status = 0x22
	StatusUnsupportedMemoryType  Status = 0x24
	StatusInstanceMismatch       Status = 0x25
	StatusUnknown                Status = -1
)

// StatusInvalidValue shares its code with StatusProcessingError in the driver
// headers.
const StatusInvalidValue = StatusProcessingError

// Err returns nil for StatusSuccess and s otherwise.
func (s Status) Err() error {
	if s == StatusSuccess {
		return nil
	}
	return s
}

func (s Status) Error() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusOperationFailed:
		return "operation failed"
	case StatusAllocationFailed:
		return "resource allocation failed"
	case StatusInvalidDisplay:
		return "invalid display"
	case StatusInvalidConfig:
		return "invalid config"
	case StatusInvalidContext:
		return "invalid context"
	case StatusInvalidSurface:
		return "invalid surface"
	case StatusInvalidBuffer:
		return "invalid buffer"
	case StatusInvalidImage:
		return "invalid image"
	case StatusInvalidSubpicture:
		return "invalid subpicture"
	case StatusAttrNotSupported:
		return "attribute not supported"
	case StatusMaxNumExceeded:
		return "list argument exceeds maximum number"
	case StatusUnsupportedProfile:
		return "the requested profile is not supported"
	case StatusUnsupportedEntrypoint:
		return "the requested entrypoint is not supported"
	case StatusUnsupportedRTFormat:
		return "the requested RT format is not supported"
	case StatusUnsupportedBufferType:
		return "the requested buffer type is not supported"
	case StatusSurfaceBusy:
		return "surface is in use"
	case StatusFlagNotSupported:
		return "flag not supported"
	case StatusInvalidParameter:
		return "invalid parameter"
	case StatusResolutionNotSupported:
		return "resolution not supported"
	case StatusUnimplemented:
		return "the requested function is not implemented"
	case StatusSurfaceInDisplaying:
		return "surface is in displaying"
	case StatusInvalidImageFormat:
		return "invalid image format"
	case StatusDecodingError:
		return "internal decoding error"
	case StatusEncodingError:
		return "internal encoding error"
	case StatusProcessingError:
		return "internal processing error"
	case StatusUnsupportedFilter:
		return "unsupported filter"
	case StatusInvalidFilterChain:
		return "invalid filter chain"
	case StatusHWBusy:
		return "hardware busy"
	case StatusUnsupportedMemoryType:
		return "unsupported memory type"
	case StatusInstanceMismatch:
		return "instance mismatch"
	case StatusUnknown:
		return "unknown libvast error"
	default:
		return fmt.Sprintf("unknown libvast error (%#x)", int32(s))
	}
}
