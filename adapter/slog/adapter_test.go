package slogadapter

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrewDonelson/gorocks"
)

// recordHandler captures slog records for assertions.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
	min     slog.Level
}

func (h *recordHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.min }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *recordHandler) all() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]slog.Record(nil), h.records...)
}

func newRecorded(min slog.Level) (*Adapter, *recordHandler) {
	h := &recordHandler{min: min}
	return New(slog.New(h)), h
}

func TestAdapter_LogString(t *testing.T) {
	a, h := newRecorded(slog.LevelDebug)

	a.LogString(gorocks.LevelWarn, "write stall")

	records := h.all()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelWarn, records[0].Level)
	assert.Equal(t, "write stall", records[0].Message)
}

func TestAdapter_LevelMapping(t *testing.T) {
	cases := []struct {
		in   gorocks.Level
		want slog.Level
	}{
		{gorocks.LevelDebug, slog.LevelDebug},
		{gorocks.LevelInfo, slog.LevelInfo},
		{gorocks.LevelWarn, slog.LevelWarn},
		{gorocks.LevelError, slog.LevelError},
		{gorocks.LevelFatal, slog.LevelError},
	}
	for _, tc := range cases {
		a, h := newRecorded(slog.LevelDebug)
		a.LogString(tc.in, "m")
		records := h.all()
		require.Len(t, records, 1, "level %v", tc.in)
		assert.Equal(t, tc.want, records[0].Level, "level %v", tc.in)
	}
}

func TestAdapter_BackendFilterDropsEarly(t *testing.T) {
	a, h := newRecorded(slog.LevelError)

	a.LogString(gorocks.LevelInfo, "filtered")

	assert.Empty(t, h.all())
}

func TestAdapter_LogHeader(t *testing.T) {
	a, h := newRecorded(slog.LevelDebug)

	a.LogHeader([]byte("RocksDB version: 9.7.4"))

	records := h.all()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, "RocksDB version: 9.7.4", records[0].Message)

	var sawHeaderAttr bool
	records[0].Attrs(func(attr slog.Attr) bool {
		if attr.Key == "header" && attr.Value.Bool() {
			sawHeaderAttr = true
			return false
		}
		return true
	})
	assert.True(t, sawHeaderAttr)
}

func TestAdapter_SatisfiesContract(t *testing.T) {
	var a any = New(nil)
	_, ok := a.(gorocks.Logger)
	assert.True(t, ok)
	_, ok = a.(gorocks.HeaderLogger)
	assert.True(t, ok)
}
