// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// logger.go — Logger capability contract, level domain, and the wrapper that
// receives log callbacks from the native engine; the cgo entry points live in
// logger_export.go and the C++ shim in logger_shim.cc.

package gorocks

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/AndrewDonelson/gorocks/internal/clock"
	"github.com/AndrewDonelson/gorocks/internal/metrics"
)

// ────────────────────────────────────────────────────────────────────────────
// Level
// ────────────────────────────────────────────────────────────────────────────

// Level is the severity domain shared with the native engine. The numeric
// values match RocksDB's InfoLogLevel enum bit-for-bit; they cross the cgo
// boundary unencoded and must never be renumbered.
type Level int32

const (
	LevelDebug Level = iota // 0
	LevelInfo               // 1
	LevelWarn               // 2
	LevelError              // 3
	// LevelFatal is accepted as a threshold but collapses to LevelError when
	// a message is dispatched; the engine draws no distinction a Go logger
	// could act on.
	LevelFatal // 4
	// LevelHeader is not a severity. It marks header lines the engine writes
	// at the top of each log file and selects the LogHeader dispatch path.
	LevelHeader // 5
)

// String returns the level's log-style name, e.g. "INFO".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelHeader:
		return "HEADER"
	default:
		return "UNKNOWN"
	}
}

// mapLevel converts a raw level code received from the engine into the Go
// domain. The mapping is total: ERROR and FATAL collapse to LevelError, and
// anything outside the native enum defaults to LevelDebug rather than
// failing — a log callback is never the right place to report a bad enum.
func mapLevel(code int32) Level {
	switch code {
	case 0:
		return LevelDebug
	case 1:
		return LevelInfo
	case 2:
		return LevelWarn
	case 3, 4:
		return LevelError
	default:
		return LevelDebug
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Capability contract
// ────────────────────────────────────────────────────────────────────────────

// Logger receives log messages emitted by the native engine's internal
// threads. LogString is the only required method; implementations wanting
// raw bytes or header lines additionally satisfy BytesLogger or
// HeaderLogger.
//
// Implementations are called directly from engine worker threads, many of
// them concurrently, with no external synchronization. They must be safe for
// concurrent use, must not block for any length of time, and must never
// panic: a panic would otherwise unwind into native frames, which is
// undefined behaviour. Any mutable state (an output buffer, a collected
// slice) needs the implementation's own mutex or lock-free discipline.
type Logger interface {
	// LogString logs a leveled message. msg is valid UTF-8; invalid byte
	// sequences from the engine have already been replaced.
	LogString(level Level, msg string)
}

// BytesLogger is an optional upgrade for implementations that want the raw
// message bytes before UTF-8 recovery. The slice is only valid for the
// duration of the call and must not be retained.
type BytesLogger interface {
	Logger
	Log(level Level, msg []byte)
}

// HeaderLogger is an optional upgrade for implementations that distinguish
// the header lines the engine writes at the top of each log file. Without
// it, headers are delivered through the ordinary path at LevelInfo; the
// header text is opaque, so most implementations have no use for the
// distinction. The slice must not be retained.
type HeaderLogger interface {
	Logger
	LogHeader(msg []byte)
}

// logBytes delivers msg through the BytesLogger upgrade when present, else
// recovers UTF-8 lossily and falls back to the required LogString method.
func logBytes(l Logger, level Level, msg []byte) {
	if bl, ok := l.(BytesLogger); ok {
		bl.Log(level, msg)
		return
	}
	l.LogString(level, lossyString(msg))
}

// lossyString converts engine message bytes to a string, substituting
// U+FFFD for any invalid UTF-8 sequence. The engine gives no encoding
// guarantee (user keys can end up in log lines verbatim) and a log path
// must never fail on bad input.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// ────────────────────────────────────────────────────────────────────────────
// Wrapper
// ────────────────────────────────────────────────────────────────────────────

// loggerWrapper owns the application-supplied Logger behind a single
// interface value. Options.SetLogger boxes one wrapper per registration and
// hands its cgo.Handle to the native shim; the shim's destructor is the only
// thing that ever releases it. After that point no further dispatch can
// occur because the native object making the calls no longer exists.
type loggerWrapper struct {
	logger  Logger
	metrics metrics.Recorder
}

// dispatch is the managed side of the boundary call. code is the raw native
// level, msg a borrowed view over the shim's stack buffer — valid only for
// the duration of the call. Must stay cheap: no locking, no I/O, nothing
// allocated beyond the unavoidable string decode.
func (w *loggerWrapper) dispatch(code int32, msg []byte) {
	// A panicking application logger violates its contract, but letting the
	// panic unwind through the cgo frame would abort the process. Swallow it
	// and count it; logging is best-effort.
	defer func() {
		if r := recover(); r != nil {
			w.metrics.RecordError("log_dispatch")
		}
	}()

	if code == int32(LevelHeader) {
		w.metrics.RecordDispatch(int(LevelHeader))
		if hl, ok := w.logger.(HeaderLogger); ok {
			hl.LogHeader(msg)
			return
		}
		logBytes(w.logger, LevelInfo, msg)
		return
	}

	level := mapLevel(code)
	w.metrics.RecordDispatch(int(level))
	logBytes(w.logger, level, msg)
}

// ────────────────────────────────────────────────────────────────────────────
// Built-in implementations
// ────────────────────────────────────────────────────────────────────────────

type noopLogger struct{}

func (noopLogger) LogString(_ Level, _ string) {}

// NoopLogger returns a Logger that discards everything.
func NoopLogger() Logger { return noopLogger{} }

// WriterLogger is a basic Logger writing timestamped lines to an io.Writer.
// A mutex serializes writes, since io.Writer carries no concurrency
// guarantee of its own. For structured output use one of the adapter
// subpackages (zerolog, zap, slog) instead.
type WriterLogger struct {
	mu    sync.Mutex
	w     io.Writer
	clock clock.Clock
}

// NewWriterLogger returns a WriterLogger emitting to w. If c is nil the
// system clock is used.
func NewWriterLogger(w io.Writer, c clock.Clock) *WriterLogger {
	if c == nil {
		c = clock.Real{}
	}
	return &WriterLogger{w: w, clock: c}
}

// LogString writes one line in the form "2026/02/28 17:50:00 [INFO] msg".
func (l *WriterLogger) LogString(level Level, msg string) {
	ts := l.clock.Now().Format("2006/01/02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s [%s] %s\n", ts, level, msg)
}
