package gorocks_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AndrewDonelson/gorocks"
	"github.com/AndrewDonelson/gorocks/internal/clock"
	"github.com/AndrewDonelson/gorocks/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger collects everything the engine dispatches, guarded by a mutex
// as the Logger contract requires.
type testLogger struct {
	mu      sync.Mutex
	levels  []gorocks.Level
	msgs    []string
	headers []string
}

func (c *testLogger) LogString(level gorocks.Level, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels = append(c.levels, level)
	c.msgs = append(c.msgs, msg)
}

func (c *testLogger) LogHeader(msg []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers = append(c.headers, string(msg))
}

func (c *testLogger) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

func (c *testLogger) countBelow(level gorocks.Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.levels {
		if l < level {
			n++
		}
	}
	return n
}

func (c *testLogger) headerLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.headers...)
}

// ── Options.Log through the native shim ──────────────────────────────────────

func TestOptionsLog_DeliversThroughShim(t *testing.T) {
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetLogger(gorocks.LevelDebug, c)

	opts.Log(gorocks.LevelInfo, "hello from go")

	msgs := c.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello from go", msgs[0])
	assert.Equal(t, gorocks.LevelInfo, c.levels[0])
}

func TestOptionsLog_ThresholdFiltersBeforeDispatch(t *testing.T) {
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetLogger(gorocks.LevelWarn, c)

	opts.Log(gorocks.LevelDebug, "filtered")
	opts.Log(gorocks.LevelInfo, "filtered")
	opts.Log(gorocks.LevelWarn, "kept")
	opts.Log(gorocks.LevelError, "kept too")

	msgs := c.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, []string{"kept", "kept too"}, msgs)
}

func TestOptionsLog_OversizedMessageDropped(t *testing.T) {
	var counters metrics.Counters
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetMetrics(&counters)
	opts.SetLogger(gorocks.LevelDebug, c)

	// The shim formats into a fixed 1024-byte buffer. 1023 characters is the
	// largest message that fits; one more and the whole line is dropped, not
	// truncated.
	fits := strings.Repeat("a", 1023)
	tooBig := strings.Repeat("b", 1024)

	opts.Log(gorocks.LevelInfo, tooBig)
	opts.Log(gorocks.LevelInfo, fits)

	msgs := c.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, fits, msgs[0])

	// The drop never reaches the logger or the engine, but it is counted.
	assert.Equal(t, int64(1), counters.Drops())
	assert.Equal(t, int64(1), counters.TotalDispatches())
}

func TestOptionsLog_HeaderLine(t *testing.T) {
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetLogger(gorocks.LevelInfo, c)

	opts.Log(gorocks.LevelHeader, "** DB SUMMARY **")

	headers := c.headerLines()
	require.Len(t, headers, 1)
	assert.Equal(t, "** DB SUMMARY **", headers[0])
	assert.Empty(t, c.messages())
}

func TestOptionsLog_NoLoggerRegistered(t *testing.T) {
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)

	// No-op, must not crash.
	opts.Log(gorocks.LevelInfo, "into the void")
}

func TestOptionsLog_ReplaceReleasesPrevious(t *testing.T) {
	first := &testLogger{}
	second := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)

	opts.SetLogger(gorocks.LevelDebug, first)
	opts.SetLogger(gorocks.LevelDebug, second)

	opts.Log(gorocks.LevelInfo, "after replace")

	assert.Empty(t, first.messages())
	assert.Equal(t, []string{"after replace"}, second.messages())
}

// ── End-to-end with a real database ──────────────────────────────────────────

func TestLogger_EndToEnd(t *testing.T) {
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetCreateIfMissing(true)
	opts.SetLogger(gorocks.LevelDebug, c)

	path := t.TempDir() + "/db"
	db, err := gorocks.OpenDB(opts, path)
	require.NoError(t, err)

	require.NoError(t, db.Put(nil, []byte("k1"), []byte("v1111")))
	require.NoError(t, db.Put(nil, []byte("k2"), []byte("v1111")))
	require.NoError(t, db.Put(nil, []byte("k3"), []byte("v1111")))
	db.Close()

	require.NoError(t, gorocks.DestroyDB(opts, path))

	// Opening and closing a database at debug threshold produces engine log
	// traffic; the exact lines are the engine's business.
	assert.NotEmpty(t, c.messages())
}

func TestLogger_ErrorThresholdSilencesRoutineTraffic(t *testing.T) {
	c := &testLogger{}
	opts := gorocks.NewOptions()
	t.Cleanup(opts.Close)
	opts.SetCreateIfMissing(true)
	opts.SetLogger(gorocks.LevelError, c)

	path := t.TempDir() + "/db"
	db, err := gorocks.OpenDB(opts, path)
	require.NoError(t, err)
	require.NoError(t, db.Put(nil, []byte("k"), []byte("v")))
	db.Close()

	assert.Zero(t, c.countBelow(gorocks.LevelError))
}

// ── Built-in loggers ─────────────────────────────────────────────────────────

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	clk := clock.NewMock(time.Date(2026, 2, 28, 17, 50, 0, 0, time.UTC))
	l := gorocks.NewWriterLogger(&buf, clk)

	l.LogString(gorocks.LevelWarn, "write stall")

	assert.Equal(t, "2026/02/28 17:50:00 [WARN] write stall\n", buf.String())
}

func TestWriterLogger_RealClockDefault(t *testing.T) {
	var buf bytes.Buffer
	l := gorocks.NewWriterLogger(&buf, nil)
	l.LogString(gorocks.LevelInfo, "x")
	assert.Contains(t, buf.String(), "[INFO] x\n")
}

func TestNoopLogger(t *testing.T) {
	gorocks.NoopLogger().LogString(gorocks.LevelError, "discarded")
}
