//go:build darwin || linux

package gst

import (
	"errors"
	"fmt"
	"sync"
)

// Pipeline owns a GStreamer element graph built from a textual pipeline
// description. It has exactly one owner; pass it by pointer and release
// it with Close, or hand the raw handle off with Detach.
type Pipeline struct {
	mu     sync.Mutex
	handle uintptr
}

// ParseLaunch builds a pipeline from a description in GStreamer's
// gst-launch grammar, e.g. "playbin uri=https://...". The grammar is
// opaque to this package; parser failures (malformed description,
// missing plugin) are surfaced verbatim as a *GError.
func ParseLaunch(description string) (*Pipeline, error) {
	if description == "" {
		return nil, errors.New("empty pipeline description")
	}
	if err := Init(); err != nil {
		return nil, err
	}

	elem, gerr := gstParseLaunch(description)
	if gerr != 0 {
		// The parser can hand back a partial element alongside an error.
		if elem != 0 {
			gstObjectUnref(elem)
		}
		return nil, newGError(gerr)
	}
	if elem == 0 {
		return nil, errors.New("parse_launch returned no element")
	}
	return &Pipeline{handle: elem}, nil
}

// Valid reports whether the wrapper still owns a native element.
func (p *Pipeline) Valid() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle != 0
}

// Native returns the raw handle for passing into framework calls.
// Ownership stays with the wrapper.
func (p *Pipeline) Native() uintptr {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle
}

// SetState requests a transition to the given state. Only
// StateChangeFailure maps to an error; StateChangeAsync means the
// transition completes in the background.
func (p *Pipeline) SetState(state State) (StateChangeReturn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return StateChangeFailure, errors.New("pipeline released")
	}

	ret := StateChangeReturn(gstElementSetState(p.handle, int32(state)))
	if ret == StateChangeFailure {
		return ret, fmt.Errorf("unable to set the pipeline to the %s state", state)
	}
	return ret, nil
}

// Bus returns the message bus of the pipeline as a new owned handle.
func (p *Pipeline) Bus() (*Bus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle == 0 {
		return nil, errors.New("pipeline released")
	}

	bus := gstElementGetBus(p.handle)
	if bus == 0 {
		return nil, errors.New("unable to get the bus from the pipeline")
	}
	return &Bus{handle: bus}, nil
}

// Detach transfers ownership of the native element to the caller and
// leaves the wrapper invalid.
func (p *Pipeline) Detach() uintptr {
	p.mu.Lock()
	defer p.mu.Unlock()
	handle := p.handle
	p.handle = 0
	return handle
}

// Close releases the native element. Closing an already-released
// pipeline is a no-op.
func (p *Pipeline) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.handle != 0 {
		gstObjectUnref(p.handle)
		p.handle = 0
	}
	return nil
}
