//go:build darwin || linux

package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Handle-lifetime contracts that hold without the native library: a
// released wrapper is invalid, releasing a zero handle never reaches a
// native call, and Detach moves ownership out exactly once.

func TestPipelineZeroHandleRelease(t *testing.T) {
	p := &Pipeline{}

	assert.False(t, p.Valid())
	assert.Equal(t, uintptr(0), p.Native())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	ret, err := p.SetState(StatePlaying)
	assert.Equal(t, StateChangeFailure, ret)
	assert.Error(t, err)

	_, err = p.Bus()
	assert.Error(t, err)
}

func TestPipelineDetach(t *testing.T) {
	raw := uintptr(0xbeef)
	p := &Pipeline{handle: raw}

	require.True(t, p.Valid())
	assert.Equal(t, raw, p.Detach())
	assert.False(t, p.Valid())
	assert.Equal(t, uintptr(0), p.Detach())

	// Close after detach must not touch the moved-out handle.
	require.NoError(t, p.Close())
}

func TestBusZeroHandleRelease(t *testing.T) {
	b := &Bus{}

	assert.False(t, b.Valid())
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, err := b.TimedPopFiltered(0, MessageError|MessageEOS)
	assert.Error(t, err)
}

func TestBusDetach(t *testing.T) {
	raw := uintptr(0xcafe)
	b := &Bus{handle: raw}

	assert.Equal(t, raw, b.Detach())
	assert.False(t, b.Valid())
	require.NoError(t, b.Close())
}

func TestMessageZeroHandleRelease(t *testing.T) {
	m := &Message{}

	assert.False(t, m.Valid())
	m.Unref()
	m.Unref()

	assert.Equal(t, MessageUnknown, m.Type())
	assert.Equal(t, "", m.Source())

	_, _, err := m.ParseError()
	assert.Error(t, err)
}

func TestMessageDetach(t *testing.T) {
	raw := uintptr(0xf00d)
	m := &Message{handle: raw}

	assert.Equal(t, raw, m.Detach())
	assert.False(t, m.Valid())
	m.Unref()
}

func TestGErrorZeroHandleRelease(t *testing.T) {
	e := newGError(0)

	assert.False(t, e.Valid())
	e.Free()
	e.Free()

	assert.Equal(t, "", e.Message())
	assert.Equal(t, int32(0), e.Code())
	assert.Equal(t, "unknown error", e.Error())
}

func TestGErrorDetach(t *testing.T) {
	e := &GError{handle: uintptr(0xd00f), message: "boom", code: 3}

	assert.Equal(t, uintptr(0xd00f), e.Detach())
	assert.False(t, e.Valid())
	e.Free()

	// Cached text survives the move.
	assert.Equal(t, "boom", e.Error())
	assert.Equal(t, int32(3), e.Code())
}

func TestParseLaunchEmptyDescription(t *testing.T) {
	_, err := ParseLaunch("")
	assert.Error(t, err)
}
