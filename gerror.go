//go:build darwin || linux

package gst

import "sync"

// GError owns a GLib error object handed out by the framework, e.g. by a
// failed ParseLaunch. It implements the error interface. The message and
// code are copied out at construction, so Error stays valid after Free.
type GError struct {
	mu      sync.Mutex
	handle  uintptr
	message string
	code    int32
}

func newGError(handle uintptr) *GError {
	e := &GError{handle: handle}
	if handle != 0 {
		e.message = gerrorMessage(handle)
		e.code = gerrorCode(handle)
	}
	return e
}

// Valid reports whether the wrapper still owns a native error object.
func (e *GError) Valid() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handle != 0
}

// Native returns the raw handle for passing into framework calls.
// Ownership stays with the wrapper.
func (e *GError) Native() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handle
}

// Message returns the framework's human-readable error text.
func (e *GError) Message() string {
	return e.message
}

// Code returns the framework's numeric error code.
func (e *GError) Code() int32 {
	return e.code
}

// Error implements the error interface.
func (e *GError) Error() string {
	if e.message == "" {
		return "unknown error"
	}
	return e.message
}

// Detach transfers ownership of the native object to the caller and
// leaves the wrapper invalid. The caller becomes responsible for the
// release.
func (e *GError) Detach() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	handle := e.handle
	e.handle = 0
	return handle
}

// Free releases the native error object. Freeing an already-released
// error is a no-op.
func (e *GError) Free() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handle != 0 {
		gerrorFree(e.handle)
		e.handle = 0
	}
}
