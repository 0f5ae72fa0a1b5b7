package fuzzgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after candidates are inserted; count is the
	// number of values in the call.
	RecordAdd(count int)

	// RecordRemove is called after each removal attempt; found reports
	// whether the value was present.
	RecordRemove(found bool)

	// RecordFind is called after each find operation with the total time
	// taken and the number of results returned.
	RecordFind(duration time.Duration, results int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int)                 {}
func (NoopMetricsCollector) RecordRemove(bool)             {}
func (NoopMetricsCollector) RecordFind(time.Duration, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount       atomic.Int64
	AddItems       atomic.Int64
	RemoveCount    atomic.Int64
	RemoveMisses   atomic.Int64
	FindCount      atomic.Int64
	FindResults    atomic.Int64
	FindTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int) {
	b.AddCount.Add(1)
	b.AddItems.Add(int64(count))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(found bool) {
	b.RemoveCount.Add(1)
	if !found {
		b.RemoveMisses.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(duration time.Duration, results int) {
	b.FindCount.Add(1)
	b.FindResults.Add(int64(results))
	b.FindTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		AddItems:     b.AddItems.Load(),
		RemoveCount:  b.RemoveCount.Load(),
		RemoveMisses: b.RemoveMisses.Load(),
		FindCount:    b.FindCount.Load(),
		FindResults:  b.FindResults.Load(),
		FindAvgNanos: b.getAvgFindNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgFindNanos() int64 {
	count := b.FindCount.Load()
	if count == 0 {
		return 0
	}
	return b.FindTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	AddItems     int64
	RemoveCount  int64
	RemoveMisses int64
	FindCount    int64
	FindResults  int64
	FindAvgNanos int64
}
