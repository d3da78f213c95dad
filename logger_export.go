// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// logger_export.go — cgo entry points called by the native shim logger.
// These live apart from the binding files because a file containing
// //export directives may not define anything in its cgo preamble.

package gorocks

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// gorocksLoggerLogv is the boundary call the shim makes for every message at
// or above its threshold. h is the cgo.Handle minted by Options.SetLogger;
// msg points at the shim's stack buffer and n is the formatted length. The
// shim guarantees the pointer/length pair is valid for the duration of the
// call; it is not re-validated here.
//
//export gorocksLoggerLogv
func gorocksLoggerLogv(h C.uintptr_t, level C.int, msg *C.char, n C.int) {
	w := cgo.Handle(h).Value().(*loggerWrapper)
	b := unsafe.Slice((*byte)(unsafe.Pointer(msg)), int(n))
	w.dispatch(int32(level), b)
}

// gorocksLoggerDrop is the boundary call the shim makes when a message's
// formatted form does not fit its fixed buffer and the whole line is
// dropped. The drop stays invisible to the engine; this only feeds the
// metrics recorder.
//
//export gorocksLoggerDrop
func gorocksLoggerDrop(h C.uintptr_t) {
	w := cgo.Handle(h).Value().(*loggerWrapper)
	w.metrics.RecordDrop("overflow")
}

// gorocksLoggerRelease reclaims the wrapper behind h. The shim's destructor
// calls it exactly once; the native object ceases to exist before the handle
// is released, so no dispatch can race with or follow the release. Not
// idempotent — a second call with the same handle is a bug on the native
// side.
//
//export gorocksLoggerRelease
func gorocksLoggerRelease(h C.uintptr_t) {
	cgo.Handle(h).Delete()
}
