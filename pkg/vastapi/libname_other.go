//go:build !windows

package vastapi

// LibraryName is the driver library resolved through the system search path.
const LibraryName = "vastai_drv_video.so"
