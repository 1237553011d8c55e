//go:build darwin || linux

package gst

import (
	"errors"
	"fmt"
	"sync"
)

// Message owns a single message popped from a bus. Inspect it and Unref
// it promptly; the payload belongs to the framework.
type Message struct {
	mu     sync.Mutex
	handle uintptr
}

// Valid reports whether the wrapper still owns a native message.
func (m *Message) Valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != 0
}

// Native returns the raw handle for passing into framework calls.
// Ownership stays with the wrapper.
func (m *Message) Native() uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle
}

// Type returns the message's type tag.
func (m *Message) Type() MessageType {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == 0 {
		return MessageUnknown
	}
	return MessageType(gstMessageTypeOf(m.handle))
}

// Source returns the name of the element that posted the message, or ""
// when the source is gone.
func (m *Message) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == 0 {
		return ""
	}
	return gstMessageSourceName(m.handle)
}

// ParseError extracts the human-readable error text and the optional
// debug string from an error message. The framework-owned substructures
// are released after their text is copied out.
//
// A message that does not actually encode an error, even if tagged as
// one, yields an error rather than a fabricated message.
func (m *Message) ParseError() (errMsg, debugInfo string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == 0 {
		return "", "", errors.New("message released")
	}
	if t := MessageType(gstMessageTypeOf(m.handle)); t != MessageError {
		return "", "", fmt.Errorf("message type %s does not carry an error", t)
	}

	gerr, debug := gstMessageParseError(m.handle)
	if gerr == 0 {
		return "", "", errors.New("no error found in message")
	}
	errMsg = gerrorMessage(gerr)
	gerrorFree(gerr)
	return errMsg, debug, nil
}

// Detach transfers ownership of the native message to the caller and
// leaves the wrapper invalid.
func (m *Message) Detach() uintptr {
	m.mu.Lock()
	defer m.mu.Unlock()
	handle := m.handle
	m.handle = 0
	return handle
}

// Unref releases the native message. Releasing an already-released
// message is a no-op.
func (m *Message) Unref() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != 0 {
		gstMessageUnref(m.handle)
		m.handle = 0
	}
}
