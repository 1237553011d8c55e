// Package gst wraps the GStreamer multimedia framework in ownership-safe
// Go handles, covering the small surface a playback application needs:
// parse-launch pipeline construction, element state changes, and the
// message bus.
//
// Key pieces include:
//   - Pipeline, Bus, Message, and GError handle types with idempotent
//     release and explicit ownership transfer
//   - ParseLaunch for building a pipeline from a textual description
//   - Bus.TimedPopFiltered for blocking on error/end-of-stream messages
//   - Player, a ready-made build/play/wait/tear-down driver
//
// # Architecture
//
//	ParseLaunch -> Pipeline.SetState(StatePlaying) -> Bus.TimedPopFiltered
//	            -> Message dispatch (Error | EOS) -> Pipeline.SetState(StateNull)
//
// All pipeline state management, buffering, clocking, and format
// negotiation happen inside GStreamer; this package only manages handle
// lifetimes and surfaces the framework's diagnostics verbatim.
//
// # Native Libraries
//
// By default the package uses purego (CGO_ENABLED=0) and loads
// libgstreamer-1.0 dynamically at runtime. Set GST_LIB_PATH to the
// directory containing the library when it is not in a standard location.
// With CGO enabled it links against GStreamer through pkg-config instead,
// for lower call overhead.
//
// Call Init once before any other function; IsAvailable reports whether
// the native library could be loaded without committing to it.
package gst
