//go:build (darwin || linux) && !cgo

// GStreamer bindings via purego.
//
// This implementation loads libgstreamer-1.0 (and libglib-2.0 for GLib
// memory management) dynamically at runtime, so the package builds with
// CGO_ENABLED=0.

package gst

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	gstOnce    sync.Once
	gstHandle  uintptr
	glibHandle uintptr
	gstInitErr error
)

// libgstreamer-1.0 function pointers
var (
	gstInitFn            func(argc, argv uintptr)
	gstParseLaunchFn     func(description string, gerr unsafe.Pointer) uintptr
	gstElementSetStateFn func(element uintptr, state int32) int32
	gstElementGetBusFn   func(element uintptr) uintptr
	gstBusTimedPopFn     func(bus uintptr, timeout uint64, types uint32) uintptr
	gstMessageParseErrFn func(message uintptr, gerr, debug unsafe.Pointer)
	gstObjectUnrefFn     func(object uintptr)
	gstObjectGetNameFn   func(object uintptr) uintptr
	gstMiniObjectUnrefFn func(object uintptr)
	gstVersionStringFn   func() uintptr
	gstElementFactoryFn  func(name string) uintptr
)

// libglib-2.0 function pointers
var (
	gErrorFreeFn func(gerr uintptr)
	gFreeFn      func(mem uintptr)
)

// Layout mirrors of the stable GStreamer 1.x ABI on 64-bit platforms.
// Only the fields the bindings read are named; the rest is padding.
type gMiniObject struct {
	gtype     uintptr
	refcount  int32
	lockstate int32
	flags     uint32
	_         uint32
	copyFn    uintptr
	disposeFn uintptr
	freeFn    uintptr
	privUint  uint32
	_         uint32
	privPtr   uintptr
}

type gstMessageLayout struct {
	miniObject gMiniObject
	mtype      uint32
	_          uint32
	timestamp  uint64
	src        uintptr
	seqnum     uint32
}

type gErrorLayout struct {
	domain  uint32
	code    int32
	message uintptr
}

// loadGst loads libgstreamer-1.0 and libglib-2.0.
func loadGst() error {
	gstOnce.Do(func() {
		gstInitErr = loadGstLibs()
	})
	return gstInitErr
}

func loadGstLibs() error {
	handle, err := dlopenFirst(gstLibPaths())
	if err != nil {
		return fmt.Errorf("failed to load libgstreamer-1.0: %w", err)
	}
	gstHandle = handle

	handle, err = dlopenFirst(glibLibPaths())
	if err != nil {
		return fmt.Errorf("failed to load libglib-2.0: %w", err)
	}
	glibHandle = handle

	loadGstSymbols()
	return nil
}

func dlopenFirst(paths []string) (uintptr, error) {
	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return handle, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return 0, lastErr
	}
	return 0, errors.New("library not found in any standard location")
}

func gstLibPaths() []string {
	names := []string{"libgstreamer-1.0.so.0", "libgstreamer-1.0.so"}
	if runtime.GOOS == "darwin" {
		names = []string{"libgstreamer-1.0.0.dylib", "libgstreamer-1.0.dylib"}
	}
	return expandLibPaths(names)
}

func glibLibPaths() []string {
	names := []string{"libglib-2.0.so.0", "libglib-2.0.so"}
	if runtime.GOOS == "darwin" {
		names = []string{"libglib-2.0.0.dylib", "libglib-2.0.dylib"}
	}
	return expandLibPaths(names)
}

func expandLibPaths(names []string) []string {
	var paths []string

	// Environment variable override
	if envPath := os.Getenv("GST_LIB_PATH"); envPath != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(envPath, name))
		}
	}

	// Plain names first: let the system loader search its default paths
	paths = append(paths, names...)

	var dirs []string
	switch runtime.GOOS {
	case "darwin":
		dirs = []string{
			"/opt/homebrew/lib",
			"/usr/local/lib",
			"/Library/Frameworks/GStreamer.framework/Versions/1.0/lib",
		}
	case "linux":
		dirs = []string{
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/lib64",
			"/usr/lib",
			"/usr/local/lib",
		}
	}
	for _, dir := range dirs {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	return paths
}

func loadGstSymbols() {
	purego.RegisterLibFunc(&gstInitFn, gstHandle, "gst_init")
	purego.RegisterLibFunc(&gstParseLaunchFn, gstHandle, "gst_parse_launch")
	purego.RegisterLibFunc(&gstElementSetStateFn, gstHandle, "gst_element_set_state")
	purego.RegisterLibFunc(&gstElementGetBusFn, gstHandle, "gst_element_get_bus")
	purego.RegisterLibFunc(&gstBusTimedPopFn, gstHandle, "gst_bus_timed_pop_filtered")
	purego.RegisterLibFunc(&gstMessageParseErrFn, gstHandle, "gst_message_parse_error")
	purego.RegisterLibFunc(&gstObjectUnrefFn, gstHandle, "gst_object_unref")
	purego.RegisterLibFunc(&gstObjectGetNameFn, gstHandle, "gst_object_get_name")
	// gst_message_unref is a static inline over gst_mini_object_unref
	purego.RegisterLibFunc(&gstMiniObjectUnrefFn, gstHandle, "gst_mini_object_unref")
	purego.RegisterLibFunc(&gstVersionStringFn, gstHandle, "gst_version_string")
	purego.RegisterLibFunc(&gstElementFactoryFn, gstHandle, "gst_element_factory_find")

	purego.RegisterLibFunc(&gErrorFreeFn, glibHandle, "g_error_free")
	purego.RegisterLibFunc(&gFreeFn, glibHandle, "g_free")
}

// goStringFromPtr copies a NUL-terminated C string into a Go string.
func goStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	var length int
	for *(*byte)(unsafe.Pointer(uintptr(p) + uintptr(length))) != 0 {
		length++
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), length))
}

// takeString copies a transfer-full C string and releases the original.
func takeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := goStringFromPtr(ptr)
	gFreeFn(ptr)
	return s
}

func gstInitNative() {
	gstInitFn(0, 0)
}

func gstParseLaunch(description string) (elem, gerr uintptr) {
	elem = gstParseLaunchFn(description, unsafe.Pointer(&gerr))
	return elem, gerr
}

func gstElementSetState(elem uintptr, state int32) int32 {
	return gstElementSetStateFn(elem, state)
}

func gstElementGetBus(elem uintptr) uintptr {
	return gstElementGetBusFn(elem)
}

func gstBusTimedPopFiltered(bus uintptr, timeout uint64, types uint32) uintptr {
	return gstBusTimedPopFn(bus, timeout, types)
}

func gstMessageTypeOf(msg uintptr) uint32 {
	return (*gstMessageLayout)(unsafe.Pointer(msg)).mtype
}

func gstMessageSourceName(msg uintptr) string {
	src := (*gstMessageLayout)(unsafe.Pointer(msg)).src
	if src == 0 {
		return ""
	}
	return takeString(gstObjectGetNameFn(src))
}

func gstMessageParseError(msg uintptr) (gerr uintptr, debug string) {
	var debugPtr uintptr
	gstMessageParseErrFn(msg, unsafe.Pointer(&gerr), unsafe.Pointer(&debugPtr))
	return gerr, takeString(debugPtr)
}

func gstObjectUnref(obj uintptr) {
	gstObjectUnrefFn(obj)
}

func gstMessageUnref(msg uintptr) {
	gstMiniObjectUnrefFn(msg)
}

func gerrorMessage(gerr uintptr) string {
	return goStringFromPtr((*gErrorLayout)(unsafe.Pointer(gerr)).message)
}

func gerrorCode(gerr uintptr) int32 {
	return (*gErrorLayout)(unsafe.Pointer(gerr)).code
}

func gerrorFree(gerr uintptr) {
	gErrorFreeFn(gerr)
}

func gstVersionString() string {
	return takeString(gstVersionStringFn())
}

func gstElementFactoryFind(name string) bool {
	factory := gstElementFactoryFn(name)
	if factory == 0 {
		return false
	}
	gstObjectUnrefFn(factory)
	return true
}
