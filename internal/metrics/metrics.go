// Package metrics provides the Recorder interface and implementations for
// operational counters: log dispatches by level and engine operation
// latency/errors.
package metrics

import (
	"sync/atomic"
	"time"
)

// Recorder is the interface for recording operational metrics.
// RecordDispatch and RecordDrop are called on the log callback hot path and
// implementations must keep them allocation-free and lock-free.
type Recorder interface {
	RecordDispatch(level int)
	RecordDrop(reason string)
	RecordLatency(op string, d time.Duration)
	RecordError(op string)
}

// Noop is a Recorder that discards all data.
type Noop struct{}

func (Noop) RecordDispatch(level int)                 {}
func (Noop) RecordDrop(reason string)                 {}
func (Noop) RecordLatency(op string, d time.Duration) {}
func (Noop) RecordError(op string)                    {}

// levelSlots covers the native level codes 0..5; anything outside lands in
// the overflow slot.
const levelSlots = 6

// Counters is an atomic Recorder suitable for the log callback hot path.
type Counters struct {
	dispatches [levelSlots + 1]atomic.Int64
	drops      atomic.Int64
	ops        atomic.Int64
	latencyNS  atomic.Int64
	errors     atomic.Int64
}

// RecordDispatch counts one log dispatch at the given native level code.
func (c *Counters) RecordDispatch(level int) {
	if level < 0 || level >= levelSlots {
		level = levelSlots
	}
	c.dispatches[level].Add(1)
}

// RecordDrop counts one message dropped before dispatch.
func (c *Counters) RecordDrop(reason string) {
	c.drops.Add(1)
}

// RecordLatency counts one completed operation and accumulates its duration.
func (c *Counters) RecordLatency(op string, d time.Duration) {
	c.ops.Add(1)
	c.latencyNS.Add(int64(d))
}

// RecordError counts one failed operation.
func (c *Counters) RecordError(op string) {
	c.errors.Add(1)
}

// Dispatches returns the dispatch count for the given native level code.
func (c *Counters) Dispatches(level int) int64 {
	if level < 0 || level >= levelSlots {
		level = levelSlots
	}
	return c.dispatches[level].Load()
}

// TotalDispatches returns the dispatch count across all levels.
func (c *Counters) TotalDispatches() int64 {
	var total int64
	for i := range c.dispatches {
		total += c.dispatches[i].Load()
	}
	return total
}

// Drops returns the dropped message count.
func (c *Counters) Drops() int64 { return c.drops.Load() }

// Ops returns the completed operation count.
func (c *Counters) Ops() int64 { return c.ops.Load() }

// Latency returns the cumulative operation latency.
func (c *Counters) Latency() time.Duration { return time.Duration(c.latencyNS.Load()) }

// Errors returns the failed operation count.
func (c *Counters) Errors() int64 { return c.errors.Load() }
