// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public gorocks API,
// covering database lifecycle, key lookup, and the typed store layer.

package gorocks

import "errors"

// Database errors
var (
	ErrDBClosed = errors.New("gorocks: database is closed")
	ErrNotFound = errors.New("gorocks: key not found")
)

// Store errors
var (
	ErrEncodeFailed = errors.New("gorocks: failed to encode value for storage")
	ErrDecodeFailed = errors.New("gorocks: failed to decode stored value")
)

// Config errors
var (
	ErrInvalidConfig = errors.New("gorocks: invalid configuration")
)
