// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// adapter.go — zap-backed implementation of the gorocks Logger capability
// contract.

// Package zap routes the engine's log stream to go.uber.org/zap.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AndrewDonelson/gorocks"
)

// Adapter implements gorocks.Logger (and gorocks.HeaderLogger) on top of a
// *zap.Logger. zap.Logger is safe for concurrent use; keeping the sink
// non-blocking is the caller's responsibility.
type Adapter struct {
	l *zap.Logger
}

// New creates an adapter emitting through l. A nil l discards everything.
func New(l *zap.Logger) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Adapter{l: l}
}

// LogString emits one leveled engine message. Check avoids any work when the
// backend filters the level.
func (a *Adapter) LogString(level gorocks.Level, msg string) {
	if ce := a.l.Check(mapLevel(level), msg); ce != nil {
		ce.Write()
	}
}

// LogHeader emits an engine log-file header line at info level, marked so it
// can be told apart from ordinary messages.
func (a *Adapter) LogHeader(msg []byte) {
	if ce := a.l.Check(zapcore.InfoLevel, string(msg)); ce != nil {
		ce.Write(zap.Bool("header", true))
	}
}

// mapLevel converts the engine level domain to zap's. Fatal maps to error —
// zap's own fatal would exit the process, which a log callback must never
// do.
func mapLevel(l gorocks.Level) zapcore.Level {
	switch l {
	case gorocks.LevelDebug:
		return zapcore.DebugLevel
	case gorocks.LevelInfo:
		return zapcore.InfoLevel
	case gorocks.LevelWarn:
		return zapcore.WarnLevel
	case gorocks.LevelError, gorocks.LevelFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
