package daxpybench

import (
	"math"
	"sync/atomic"
	"time"
)

// Phase identifies one timed unit of benchmark work.
type Phase string

const (
	// PhaseSequential is a single-threaded pass over the full vector.
	PhaseSequential Phase = "sequential"
	// PhaseParallel is an unsynchronized multi-threaded pass, timed from
	// launch to join.
	PhaseParallel Phase = "parallel"
	// PhaseBarrier is a barrier-gated multi-threaded pass.
	PhaseBarrier Phase = "barrier"
	// PhaseVerify is the sequential recomputation and comparison pass.
	PhaseVerify Phase = "verify"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    phaseHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordPhase(phase daxpybench.Phase, d time.Duration) {
//	    p.phaseHistogram.WithLabelValues(string(phase)).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordPhase is called after each completed phase.
	// duration is the measured wall time of the phase.
	RecordPhase(phase Phase, duration time.Duration)

	// RecordVerification is called after each verification pass.
	// passed is the verdict, maxError the largest absolute per-element
	// difference observed.
	RecordVerification(passed bool, maxError float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPhase(Phase, time.Duration) {}
func (NoopMetricsCollector) RecordVerification(bool, float64) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SequentialRuns  atomic.Int64
	SequentialNanos atomic.Int64
	ParallelRuns    atomic.Int64
	ParallelNanos   atomic.Int64
	BarrierRuns     atomic.Int64
	BarrierNanos    atomic.Int64
	VerifyRuns      atomic.Int64
	VerifyNanos     atomic.Int64

	VerificationsPassed atomic.Int64
	VerificationsFailed atomic.Int64
	lastMaxErrorBits    atomic.Uint64
}

// RecordPhase implements MetricsCollector.
func (c *BasicMetricsCollector) RecordPhase(phase Phase, duration time.Duration) {
	switch phase {
	case PhaseSequential:
		c.SequentialRuns.Add(1)
		c.SequentialNanos.Add(int64(duration))
	case PhaseParallel:
		c.ParallelRuns.Add(1)
		c.ParallelNanos.Add(int64(duration))
	case PhaseBarrier:
		c.BarrierRuns.Add(1)
		c.BarrierNanos.Add(int64(duration))
	case PhaseVerify:
		c.VerifyRuns.Add(1)
		c.VerifyNanos.Add(int64(duration))
	}
}

// RecordVerification implements MetricsCollector.
func (c *BasicMetricsCollector) RecordVerification(passed bool, maxError float64) {
	if passed {
		c.VerificationsPassed.Add(1)
	} else {
		c.VerificationsFailed.Add(1)
	}
	c.lastMaxErrorBits.Store(math.Float64bits(maxError))
}

// LastMaxError returns the maximum error reported by the most recent
// verification pass, or 0 if none has run.
func (c *BasicMetricsCollector) LastMaxError() float64 {
	return math.Float64frombits(c.lastMaxErrorBits.Load())
}
