// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// adapter.go — log/slog-backed implementation of the gorocks Logger
// capability contract.

// Package slogadapter routes the engine's log stream to the standard
// library's log/slog.
package slogadapter

import (
	"context"
	"log/slog"

	"github.com/AndrewDonelson/gorocks"
)

// Adapter implements gorocks.Logger (and gorocks.HeaderLogger) on top of a
// *slog.Logger.
type Adapter struct {
	l *slog.Logger
}

// New creates an adapter emitting through l. A nil l uses slog.Default().
func New(l *slog.Logger) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	return &Adapter{l: l}
}

// LogString emits one leveled engine message.
func (a *Adapter) LogString(level gorocks.Level, msg string) {
	a.l.LogAttrs(context.Background(), mapLevel(level), msg)
}

// LogHeader emits an engine log-file header line at info level, marked so it
// can be told apart from ordinary messages.
func (a *Adapter) LogHeader(msg []byte) {
	a.l.LogAttrs(context.Background(), slog.LevelInfo, string(msg), slog.Bool("header", true))
}

// mapLevel converts the engine level domain to slog's numeric levels.
func mapLevel(l gorocks.Level) slog.Level {
	switch l {
	case gorocks.LevelDebug:
		return slog.LevelDebug
	case gorocks.LevelInfo:
		return slog.LevelInfo
	case gorocks.LevelWarn:
		return slog.LevelWarn
	case gorocks.LevelError, gorocks.LevelFatal:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
