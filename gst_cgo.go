//go:build (darwin || linux) && cgo

// GStreamer bindings via CGO.
//
// This implementation links directly against GStreamer through pkg-config,
// providing lower call overhead than the purego variant.

package gst

/*
#cgo pkg-config: gstreamer-1.0

#include <gst/gst.h>
#include <stdlib.h>

static guint32 message_type(GstMessage *msg) { return GST_MESSAGE_TYPE(msg); }
static GstObject *message_src(GstMessage *msg) { return GST_MESSAGE_SRC(msg); }
static void message_unref(GstMessage *msg) { gst_message_unref(msg); }
*/
import "C"

import "unsafe"

// loadGst is a no-op with CGO; the library is linked at compile time.
func loadGst() error {
	return nil
}

func gstInitNative() {
	C.gst_init(nil, nil)
}

func gstParseLaunch(description string) (elem, gerr uintptr) {
	cdesc := C.CString(description)
	defer C.free(unsafe.Pointer(cdesc))

	var cerr *C.GError
	celem := C.gst_parse_launch(cdesc, &cerr)
	return uintptr(unsafe.Pointer(celem)), uintptr(unsafe.Pointer(cerr))
}

func gstElementSetState(elem uintptr, state int32) int32 {
	return int32(C.gst_element_set_state((*C.GstElement)(unsafe.Pointer(elem)), C.GstState(state)))
}

func gstElementGetBus(elem uintptr) uintptr {
	return uintptr(unsafe.Pointer(C.gst_element_get_bus((*C.GstElement)(unsafe.Pointer(elem)))))
}

func gstBusTimedPopFiltered(bus uintptr, timeout uint64, types uint32) uintptr {
	msg := C.gst_bus_timed_pop_filtered(
		(*C.GstBus)(unsafe.Pointer(bus)),
		C.GstClockTime(timeout),
		C.GstMessageType(types),
	)
	return uintptr(unsafe.Pointer(msg))
}

func gstMessageTypeOf(msg uintptr) uint32 {
	return uint32(C.message_type((*C.GstMessage)(unsafe.Pointer(msg))))
}

func gstMessageSourceName(msg uintptr) string {
	src := C.message_src((*C.GstMessage)(unsafe.Pointer(msg)))
	if src == nil {
		return ""
	}
	cname := C.gst_object_get_name(src)
	if cname == nil {
		return ""
	}
	name := C.GoString((*C.char)(cname))
	C.g_free(C.gpointer(cname))
	return name
}

func gstMessageParseError(msg uintptr) (gerr uintptr, debug string) {
	var cerr *C.GError
	var cdebug *C.gchar
	C.gst_message_parse_error((*C.GstMessage)(unsafe.Pointer(msg)), &cerr, &cdebug)
	if cdebug != nil {
		debug = C.GoString((*C.char)(cdebug))
		C.g_free(C.gpointer(cdebug))
	}
	return uintptr(unsafe.Pointer(cerr)), debug
}

func gstObjectUnref(obj uintptr) {
	C.gst_object_unref(C.gpointer(unsafe.Pointer(obj)))
}

func gstMessageUnref(msg uintptr) {
	C.message_unref((*C.GstMessage)(unsafe.Pointer(msg)))
}

func gerrorMessage(gerr uintptr) string {
	cerr := (*C.GError)(unsafe.Pointer(gerr))
	if cerr.message == nil {
		return ""
	}
	return C.GoString((*C.char)(cerr.message))
}

func gerrorCode(gerr uintptr) int32 {
	return int32((*C.GError)(unsafe.Pointer(gerr)).code)
}

func gerrorFree(gerr uintptr) {
	C.g_error_free((*C.GError)(unsafe.Pointer(gerr)))
}

func gstVersionString() string {
	cver := C.gst_version_string()
	if cver == nil {
		return ""
	}
	ver := C.GoString((*C.char)(cver))
	C.g_free(C.gpointer(cver))
	return ver
}

func gstElementFactoryFind(name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	factory := C.gst_element_factory_find(cname)
	if factory == nil {
		return false
	}
	C.gst_object_unref(C.gpointer(unsafe.Pointer(factory)))
	return true
}
