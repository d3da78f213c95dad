// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// gorocks.go — DB handle and the narrow open/put/get/delete/destroy surface
// over the engine's C API.

// Package gorocks embeds the RocksDB storage engine behind a small cgo
// binding whose focus is the logger bridge: engine log events, emitted from
// native worker threads, are delivered to an application-supplied Go Logger
// registered through Options.SetLogger. The database surface itself is
// deliberately narrow.
package gorocks

/*
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lrocksdb -lstdc++ -lm
#include <stdlib.h>
#include "rocksdb/c.h"
*/
import "C"

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/AndrewDonelson/gorocks/internal/metrics"
)

// DB is an open database instance. Safe for concurrent use; Close must not
// race with in-flight operations.
type DB struct {
	c       *C.rocksdb_t
	name    string
	metrics metrics.Recorder
	closed  atomic.Bool
}

// OpenDB opens the database at path using opts.
func OpenDB(opts *Options, path string) (*DB, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	db := C.rocksdb_open(opts.c, cpath, &cerr)
	if err := cError("open", cerr); err != nil {
		return nil, err
	}
	return &DB{c: db, name: path, metrics: opts.metrics}, nil
}

// DestroyDB deletes the database at path, including every file it owns. The
// database must not be open.
func DestroyDB(opts *Options, path string) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var cerr *C.char
	C.rocksdb_destroy_db(opts.c, cpath, &cerr)
	return cError("destroy", cerr)
}

// Name returns the path the database was opened with.
func (db *DB) Name() string { return db.name }

// Put stores value under key. A nil wo uses default write options.
func (db *DB) Put(wo *WriteOptions, key, value []byte) error {
	if db.closed.Load() {
		return ErrDBClosed
	}
	if wo == nil {
		wo = defaultWriteOptions()
	}
	start := time.Now()

	var cerr *C.char
	C.rocksdb_put(db.c, wo.c,
		byteToChar(key), C.size_t(len(key)),
		byteToChar(value), C.size_t(len(value)), &cerr)
	if err := cError("put", cerr); err != nil {
		db.metrics.RecordError("put")
		return err
	}
	db.metrics.RecordLatency("put", time.Since(start))
	return nil
}

// Get returns a copy of the value stored under key, or ErrNotFound. A nil
// ro uses default read options.
func (db *DB) Get(ro *ReadOptions, key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, ErrDBClosed
	}
	if ro == nil {
		ro = defaultReadOptions()
	}
	start := time.Now()

	var cerr *C.char
	var vlen C.size_t
	cval := C.rocksdb_get(db.c, ro.c,
		byteToChar(key), C.size_t(len(key)), &vlen, &cerr)
	if err := cError("get", cerr); err != nil {
		db.metrics.RecordError("get")
		return nil, err
	}
	// A not-found read is still a completed read; count it like any other.
	db.metrics.RecordLatency("get", time.Since(start))
	if cval == nil {
		return nil, ErrNotFound
	}
	defer C.rocksdb_free(unsafe.Pointer(cval))

	return C.GoBytes(unsafe.Pointer(cval), C.int(vlen)), nil
}

// Delete removes key. Deleting a missing key is not an error. A nil wo uses
// default write options.
func (db *DB) Delete(wo *WriteOptions, key []byte) error {
	if db.closed.Load() {
		return ErrDBClosed
	}
	if wo == nil {
		wo = defaultWriteOptions()
	}
	start := time.Now()

	var cerr *C.char
	C.rocksdb_delete(db.c, wo.c, byteToChar(key), C.size_t(len(key)), &cerr)
	if err := cError("delete", cerr); err != nil {
		db.metrics.RecordError("delete")
		return err
	}
	db.metrics.RecordLatency("delete", time.Since(start))
	return nil
}

// Close shuts the database down. Releasing the DB drops its share of the
// options state, so a logger registered on the opening Options is destroyed
// — and its Go box released — once the Options wrapper is closed as well.
func (db *DB) Close() {
	if db.closed.CompareAndSwap(false, true) {
		C.rocksdb_close(db.c)
		db.c = nil
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Helpers
// ────────────────────────────────────────────────────────────────────────────

var (
	defaultWO     *WriteOptions
	defaultWOOnce sync.Once
	defaultRO     *ReadOptions
	defaultROOnce sync.Once
)

func defaultWriteOptions() *WriteOptions {
	defaultWOOnce.Do(func() { defaultWO = NewWriteOptions() })
	return defaultWO
}

func defaultReadOptions() *ReadOptions {
	defaultROOnce.Do(func() { defaultRO = NewReadOptions() })
	return defaultRO
}

// byteToChar returns a C pointer to the first byte of b, or nil for an empty
// slice.
func byteToChar(b []byte) *C.char {
	if len(b) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}

// cError converts an errptr produced by the C API into a Go error, freeing
// the C string. A nil errptr yields nil.
func cError(op string, cerr *C.char) error {
	if cerr == nil {
		return nil
	}
	defer C.rocksdb_free(unsafe.Pointer(cerr))
	return fmt.Errorf("gorocks: %s: %s", op, C.GoString(cerr))
}
