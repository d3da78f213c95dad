// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// adapter.go — zerolog-backed implementation of the gorocks Logger
// capability contract.

// Package zerolog routes the engine's log stream to rs/zerolog.
package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/AndrewDonelson/gorocks"
)

// Adapter implements gorocks.Logger (and gorocks.HeaderLogger) on top of a
// zerolog.Logger. zerolog.Logger values are safe for concurrent use, which
// satisfies the contract for engine worker threads; keeping the sink
// non-blocking (e.g. no synchronous network writer) is the caller's
// responsibility.
type Adapter struct {
	l zerolog.Logger
}

// New creates an adapter emitting through l.
func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l}
}

// LogString emits one leveled engine message.
func (a *Adapter) LogString(level gorocks.Level, msg string) {
	zlvl := mapLevel(level)
	// Drop early when the backend filters the level; avoids the Event
	// allocation on a path that runs inside engine threads.
	if zlvl < a.l.GetLevel() {
		return
	}
	a.l.WithLevel(zlvl).Msg(msg)
}

// LogHeader emits an engine log-file header line at info level, marked so it
// can be told apart from ordinary messages.
func (a *Adapter) LogHeader(msg []byte) {
	a.l.Info().Bool("header", true).Msg(string(msg))
}

// mapLevel converts the engine level domain to zerolog's. Fatal collapses to
// error before it ever reaches here; the default branch covers LevelHeader
// arriving through the generic path.
func mapLevel(l gorocks.Level) zerolog.Level {
	switch l {
	case gorocks.LevelDebug:
		return zerolog.DebugLevel
	case gorocks.LevelInfo:
		return zerolog.InfoLevel
	case gorocks.LevelWarn:
		return zerolog.WarnLevel
	case gorocks.LevelError, gorocks.LevelFatal:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
