package daxpybench

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/daxpybench/internal/barrier"
	"github.com/hupe1980/daxpybench/internal/kernel"
	"github.com/hupe1980/daxpybench/internal/partition"
)

// Benchmark owns the vectors and configuration for one DAXPY run.
//
// x is read-only during the compute phase; y is the accumulator, partitioned
// so that each index is written by exactly one worker. A Benchmark is created
// fresh per run and its workers never outlive a phase.
type Benchmark struct {
	size    int
	threads int
	alpha   float64

	x []float64
	y []float64
	// yOriginal is the immutable pre-operation copy of y; nil unless the
	// benchmark was built with WithSnapshot.
	yOriginal []float64

	ranges []partition.Range

	logger  *Logger
	metrics MetricsCollector
	hooks   MeasurementHooks
}

// New creates a Benchmark for the given vector size, thread count and alpha
// coefficient.
//
// size must be at least 1 and threads must lie in [1, max], where max
// defaults to runtime.NumCPU() and can be overridden with WithMaxThreads.
func New(size, threads int, alpha float64, optFns ...Option) (*Benchmark, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(o)
	}

	if size == 0 {
		return nil, ErrEmptyVector
	}

	if threads < 1 || threads > o.maxThreads {
		return nil, &ErrInvalidThreadCount{Threads: threads, Max: o.maxThreads}
	}

	ranges, err := partition.Split(size, threads)
	if err != nil {
		return nil, err
	}

	b := &Benchmark{
		size:    size,
		threads: threads,
		alpha:   alpha,
		ranges:  ranges,
		logger:  o.logger.WithSize(size).WithThreads(threads).WithAlpha(alpha),
		metrics: o.metrics,
		hooks:   o.hooks,
	}

	b.initialize(o)

	b.logger.Debug("benchmark ready",
		"partitions", len(ranges),
		"snapshot", b.yOriginal != nil,
	)

	return b, nil
}

// Size returns the vector length.
func (b *Benchmark) Size() int {
	return b.size
}

// Threads returns the configured worker count.
func (b *Benchmark) Threads() int {
	return b.threads
}

// Alpha returns the scalar coefficient.
func (b *Benchmark) Alpha() float64 {
	return b.alpha
}

// Partitions returns a copy of the per-worker index ranges.
func (b *Benchmark) Partitions() []partition.Range {
	ranges := make([]partition.Range, len(b.ranges))
	copy(ranges, b.ranges)

	return ranges
}

// RunSequential applies the DAXPY update in a single pass over the full
// vector and returns the elapsed time.
func (b *Benchmark) RunSequential() (time.Duration, error) {
	sw := StartStopwatch()

	kernel.Axpy(b.alpha, b.x, b.y)

	elapsed := sw.Elapsed()

	b.metrics.RecordPhase(PhaseSequential, elapsed)
	b.logger.LogPhase(PhaseSequential, elapsed)

	return elapsed, nil
}

// RunParallel launches one worker per partition and returns the elapsed time
// measured from before launch to after every worker has rejoined.
//
// Workers start as soon as they are launched; no synchronization happens
// between them because the partitions are disjoint.
func (b *Benchmark) RunParallel() (time.Duration, error) {
	sw := StartStopwatch()

	var g errgroup.Group
	for _, r := range b.ranges {
		r := r
		g.Go(func() error {
			kernel.Axpy(b.alpha, b.x[r.Start:r.End], b.y[r.Start:r.End])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	elapsed := sw.Elapsed()

	b.metrics.RecordPhase(PhaseParallel, elapsed)
	b.logger.LogPhase(PhaseParallel, elapsed)

	return elapsed, nil
}

// RunBarrier launches one worker per partition with barrier-gated execution:
// all workers rendezvous once after launch, apply their partition's update,
// then rendezvous again before finishing, so the window between the two
// barriers excludes launch-time skew.
//
// The partition-0 worker is the instrumentation leader: it calls
// MeasurementHooks.WindowOpen after the first crossing and WindowClose after
// the second, each exactly once per run.
func (b *Benchmark) RunBarrier() (time.Duration, error) {
	bar, err := barrier.New(b.threads)
	if err != nil {
		return 0, err
	}

	sw := StartStopwatch()

	var g errgroup.Group
	for id, r := range b.ranges {
		id, r := id, r
		g.Go(func() error {
			bar.Await()

			if id == 0 {
				b.hooks.WindowOpen()
			}

			kernel.Axpy(b.alpha, b.x[r.Start:r.End], b.y[r.Start:r.End])

			bar.Await()

			if id == 0 {
				b.hooks.WindowClose()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	elapsed := sw.Elapsed()

	b.metrics.RecordPhase(PhaseBarrier, elapsed)
	b.logger.LogPhase(PhaseBarrier, elapsed)

	return elapsed, nil
}
