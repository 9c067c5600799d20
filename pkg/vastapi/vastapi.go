// Package vastapi binds the Vastai video acceleration driver into Go.
//
// The driver is a closed shared library. LoadFunctions opens it and resolves
// the device-bound entry points (encoder, decoder, filter, hardware context,
// generic surface and buffer calls) into a Functions table. LoadNoDevFunctions
// does the same for the handful of calls that need no device. A table is
// either fully populated or not returned at all.
//
// The funcs in a table call straight into native code. Their Go types are
// trusted to match the driver's C prototypes; nothing verifies that at run
// time. Calls through a table after it was freed are undefined behaviour, and
// the package provides no reference counting to prevent it: a table must not
// be freed while other goroutines may still call through it.
package vastapi

import (
	"github.com/vastai/go-vastapi/internal/logging"
)

var logger = logging.NewLogger("vastapi")
