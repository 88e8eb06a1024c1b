package daxpybench

import (
	"runtime"

	"github.com/hupe1980/daxpybench/util"
)

// InitMode selects how the vectors are filled at construction time.
type InitMode int

const (
	// InitLinear fills x[i] = i+1 and y[i] = N-i. Deterministic, no RNG.
	InitLinear InitMode = iota
	// InitRandom fills x and y uniformly from [1, 10) using the injected RNG.
	InitRandom
)

type options struct {
	logger     *Logger
	metrics    MetricsCollector
	hooks      MeasurementHooks
	rng        *util.RNG
	init       InitMode
	snapshot   bool
	maxThreads int
}

// Option configures Benchmark construction.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:     NoopLogger(),
		metrics:    NoopMetricsCollector{},
		hooks:      NoopMeasurementHooks{},
		rng:        util.NewRNG(1),
		init:       InitLinear,
		maxThreads: runtime.NumCPU(),
	}
}

// WithLogger configures the logger used by the benchmark.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures the metrics collector notified after each
// phase and verification pass.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithHooks configures the measurement window hooks invoked by the
// partition-0 worker during RunBarrier.
func WithHooks(hooks MeasurementHooks) Option {
	return func(o *options) {
		if hooks != nil {
			o.hooks = hooks
		}
	}
}

// WithRNG configures the random number generator used by InitRandom.
//
// The seed is injected here rather than sourced inside the core, so random
// runs are reproducible.
func WithRNG(rng *util.RNG) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithInit configures the vector initialization mode.
func WithInit(mode InitMode) Option {
	return func(o *options) {
		o.init = mode
	}
}

// WithSnapshot preserves an immutable copy of y at initialization time.
// Required for Verify.
func WithSnapshot() Option {
	return func(o *options) {
		o.snapshot = true
	}
}

// WithMaxThreads configures the upper bound for the thread count check.
//
// Defaults to runtime.NumCPU(). The hardware concurrency is an explicit
// parameter so thread-count validation is a pure function of its inputs;
// tests inject a fixed bound instead of depending on the host.
func WithMaxThreads(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxThreads = n
		}
	}
}
