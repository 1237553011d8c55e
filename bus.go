//go:build darwin || linux

package gst

import (
	"errors"
	"sync"
)

// ErrNoMessage is returned by Bus.TimedPopFiltered when the wait ends
// without a matching message (timeout elapsed or bus flushing).
var ErrNoMessage = errors.New("no message received from bus")

// Bus owns the message bus derived from a pipeline. It stays meaningful
// only for the lifetime of that pipeline.
type Bus struct {
	mu     sync.Mutex
	handle uintptr
}

// Valid reports whether the wrapper still owns a native bus.
func (b *Bus) Valid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle != 0
}

// Native returns the raw handle for passing into framework calls.
// Ownership stays with the wrapper.
func (b *Bus) Native() uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle
}

// TimedPopFiltered blocks the calling goroutine until a message matching
// the type mask is posted, or the timeout elapses. ClockTimeNone waits
// forever; a zero timeout polls without blocking. On success the caller
// owns the returned message and must Unref it; otherwise ErrNoMessage.
//
// There is no cancellation: the wait ends only through a delivered
// message or the timeout.
func (b *Bus) TimedPopFiltered(timeout ClockTime, types MessageType) (*Message, error) {
	// Snapshot the handle so a blocking forever-wait does not pin the lock.
	b.mu.Lock()
	handle := b.handle
	b.mu.Unlock()

	if handle == 0 {
		return nil, errors.New("bus released")
	}

	msg := gstBusTimedPopFiltered(handle, uint64(timeout), uint32(types))
	if msg == 0 {
		return nil, ErrNoMessage
	}
	return &Message{handle: msg}, nil
}

// Detach transfers ownership of the native bus to the caller and leaves
// the wrapper invalid.
func (b *Bus) Detach() uintptr {
	b.mu.Lock()
	defer b.mu.Unlock()
	handle := b.handle
	b.handle = 0
	return handle
}

// Close releases the native bus. Closing an already-released bus is a
// no-op.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handle != 0 {
		gstObjectUnref(b.handle)
		b.handle = 0
	}
	return nil
}
