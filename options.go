// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// options.go — Options, WriteOptions and ReadOptions wrappers over the
// engine's C handles, including the logger registration point.

package gorocks

// #include <stdlib.h>
// #include "rocksdb/c.h"
// #include "logger_shim.h"
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/AndrewDonelson/gorocks/internal/metrics"
)

// ────────────────────────────────────────────────────────────────────────────
// Options
// ────────────────────────────────────────────────────────────────────────────

// Options configures how a database is opened. Wraps the engine's own
// option set; zero or more databases may be opened from one Options value,
// and Close only releases this wrapper's share of the underlying state.
type Options struct {
	c       *C.rocksdb_options_t
	metrics metrics.Recorder
}

// NewOptions creates an Options with the engine's defaults.
func NewOptions() *Options {
	return &Options{
		c:       C.rocksdb_options_create(),
		metrics: metrics.Noop{},
	}
}

// SetMetrics installs a metrics recorder used by databases opened from these
// options and by any logger registered afterwards. Call before SetLogger and
// OpenDB; a nil recorder resets to the discarding default.
func (o *Options) SetMetrics(r metrics.Recorder) {
	if r == nil {
		r = metrics.Noop{}
	}
	o.metrics = r
}

// SetCreateIfMissing controls whether OpenDB creates the database when the
// path does not exist.
func (o *Options) SetCreateIfMissing(v bool) {
	C.rocksdb_options_set_create_if_missing(o.c, boolToUchar(v))
}

// SetErrorIfExists makes OpenDB fail when the database already exists.
func (o *Options) SetErrorIfExists(v bool) {
	C.rocksdb_options_set_error_if_exists(o.c, boolToUchar(v))
}

// SetParanoidChecks enables aggressive corruption checking in the engine.
func (o *Options) SetParanoidChecks(v bool) {
	C.rocksdb_options_set_paranoid_checks(o.c, boolToUchar(v))
}

// IncreaseParallelism sizes the engine's background thread pools for the
// given total thread count.
func (o *Options) IncreaseParallelism(total int) {
	C.rocksdb_options_increase_parallelism(o.c, C.int(total))
}

// SetMaxLogFileSize caps the size of a single engine log file in bytes.
func (o *Options) SetMaxLogFileSize(n uint64) {
	C.rocksdb_options_set_max_log_file_size(o.c, C.size_t(n))
}

// SetLogger registers l as the engine's info log, receiving every message at
// or above min. The logger is boxed once and ownership of the box transfers
// to the native side as an opaque handle; the native logger object is the
// sole owner and releases the box exactly once when it is itself destroyed
// (when the options and every database opened from them are closed). At most
// one logger is active per Options; registering again replaces — and
// releases — the previous one.
//
// l is called from the engine's internal worker threads; see the Logger
// contract for the obligations that implies.
func (o *Options) SetLogger(min Level, l Logger) {
	w := &loggerWrapper{logger: l, metrics: o.metrics}
	h := cgo.NewHandle(w)
	C.gorocks_options_set_info_log(o.c, C.int(min), C.uintptr_t(h))
}

// Log emits msg through the registered logger at the given level, using the
// engine's own formatting and threshold path. Messages below the registered
// minimum are filtered natively, and messages whose formatted form exceeds
// the engine-side buffer are dropped, exactly as for the engine's own
// output. No-op when no logger is registered.
func (o *Options) Log(level Level, msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.gorocks_options_log(o.c, C.int(level), cmsg)
}

// Close releases the options wrapper. Databases already opened from it are
// unaffected. The Options must not be used afterwards.
func (o *Options) Close() {
	if o.c != nil {
		C.rocksdb_options_destroy(o.c)
		o.c = nil
	}
}

// ────────────────────────────────────────────────────────────────────────────
// WriteOptions / ReadOptions
// ────────────────────────────────────────────────────────────────────────────

// WriteOptions configures individual write operations.
type WriteOptions struct {
	c *C.rocksdb_writeoptions_t
}

// NewWriteOptions creates a WriteOptions with engine defaults.
func NewWriteOptions() *WriteOptions {
	return &WriteOptions{c: C.rocksdb_writeoptions_create()}
}

// SetSync forces an fsync before a write is acknowledged.
func (wo *WriteOptions) SetSync(v bool) {
	C.rocksdb_writeoptions_set_sync(wo.c, boolToUchar(v))
}

// Close releases the write options.
func (wo *WriteOptions) Close() {
	if wo.c != nil {
		C.rocksdb_writeoptions_destroy(wo.c)
		wo.c = nil
	}
}

// ReadOptions configures individual read operations.
type ReadOptions struct {
	c *C.rocksdb_readoptions_t
}

// NewReadOptions creates a ReadOptions with engine defaults.
func NewReadOptions() *ReadOptions {
	return &ReadOptions{c: C.rocksdb_readoptions_create()}
}

// SetVerifyChecksums enables checksum verification on reads.
func (ro *ReadOptions) SetVerifyChecksums(v bool) {
	C.rocksdb_readoptions_set_verify_checksums(ro.c, boolToUchar(v))
}

// Close releases the read options.
func (ro *ReadOptions) Close() {
	if ro.c != nil {
		C.rocksdb_readoptions_destroy(ro.c)
		ro.c = nil
	}
}

func boolToUchar(v bool) C.uchar {
	if v {
		return 1
	}
	return 0
}
