package vastapi

import (
	"sync"

	"github.com/pion/logging"

	"github.com/vastai/go-vastapi/pkg/dl"
)

// handle owns the driver library behind a table. It is embedded in both
// table variants so they share one release path.
type handle struct {
	mu    sync.Mutex
	lib   dl.Library
	id    string
	state LoadState
	log   logging.LeveledLogger
}

func (h *handle) base() *handle {
	return h
}

// ID identifies this table instance. Two tables loaded from the same library
// have different IDs and independent library handles.
func (h *handle) ID() string {
	return h.id
}

// LibraryName returns the name the backing library was opened with.
func (h *handle) LibraryName() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.lib == nil {
		return ""
	}
	return h.lib.Name()
}

// State reports the construction state.
func (h *handle) State() LoadState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Close unloads the backing library. Funcs of the table must not be called
// afterwards, including by calls already in flight on other goroutines.
// Closing twice is a no-op.
func (h *handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.release()
}

func (h *handle) release() error {
	if h.state == StateFreed {
		return nil
	}

	var closeErr error
	err := h.state.Update(StateFreed, func() error {
		if h.lib != nil {
			closeErr = h.lib.Close()
		}
		return nil
	})
	if err != nil {
		h.logger().Warnf("table %s: %v", h.id, err)
	}
	if closeErr != nil {
		h.logger().Warnf("table %s: closing %s: %v", h.id, h.lib.Name(), closeErr)
	}
	return closeErr
}

// fail marks construction as aborted and releases whatever was acquired.
func (h *handle) fail() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.state.Update(StateFailed, nil); err != nil {
		h.logger().Warnf("table %s: %v", h.id, err)
	}
	_ = h.release()
}

func (h *handle) logger() logging.LeveledLogger {
	if h.log == nil {
		return logger
	}
	return h.log
}
