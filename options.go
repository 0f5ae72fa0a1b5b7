package fuzzgo

import "log/slog"

// defaultParallelThreshold is the corpus size below which Find stays
// single-threaded even when NumThreads is set. Spawning workers over a small
// corpus costs more than the scan itself.
const defaultParallelThreshold = 10000

type options struct {
	capacity          int
	parallelThreshold int
	metricsCollector  MetricsCollector
	logger            *Logger
}

// Option configures Matcher construction.
type Option func(*options)

// WithCapacity pre-sizes the corpus for n candidates, like calling Reserve
// immediately after New.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithParallelThreshold overrides the corpus size at which Find starts
// honoring NumThreads. The default is 10000.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.parallelThreshold = n
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fuzzgo.BasicMetricsCollector{}
//	m := fuzzgo.New(fuzzgo.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		parallelThreshold: defaultParallelThreshold,
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
