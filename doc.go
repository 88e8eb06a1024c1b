// Package daxpybench measures the throughput of the DAXPY vector operation
// (y = alpha*x + y) under single-threaded and statically partitioned
// multi-threaded execution, and verifies that the parallel result is
// numerically equivalent to the sequential one.
//
// # Quick Start
//
//	b, _ := daxpybench.New(1_000_000, 4, 2.5,
//	    daxpybench.WithInit(daxpybench.InitRandom),
//	    daxpybench.WithRNG(util.NewRNG(42)),
//	    daxpybench.WithSnapshot(),
//	)
//	elapsed, _ := b.RunBarrier()
//	v, _ := b.Verify()
//	fmt.Println(elapsed.Microseconds(), v.Passed, v.MaxError)
//
// # Execution Modes
//
//	// 1. SEQUENTIAL — one pass over the full vector, no goroutines.
//	elapsed, _ := b.RunSequential()
//
//	// 2. PARALLEL — one worker per partition, launch-to-join timing.
//	elapsed, _ := b.RunParallel()
//
//	// 3. BARRIER — workers rendezvous before and after the compute window,
//	//    so the measured region excludes launch skew. The partition-0 worker
//	//    opens and closes the MeasurementHooks window exactly once.
//	elapsed, _ := b.RunBarrier()
//
// Work is split statically: chunk = N/T, worker t owns [t*chunk, (t+1)*chunk),
// and the last partition absorbs the remainder. The last worker may therefore
// carry up to T-1 extra elements when N is not divisible by T; this skew is
// deliberate and load balancing is out of scope.
//
// # Verification
//
// A Benchmark built with WithSnapshot keeps an immutable copy of y taken at
// initialization. Verify recomputes the sequential result from that copy,
// compares it element-wise against the parallel result within a tolerance of
// 1e-10, and restores the parallel result before returning, so reporting
// always reflects the measured run.
//
// # Key Features
//
//   - Static partitioning with documented remainder skew
//   - Barrier-gated measurement windows (cyclic N-party barrier)
//   - Pluggable MeasurementHooks for simulator statistics (see package gem5)
//   - Structured logging (slog) and pluggable metrics collection
//   - Deterministic runs via injected RNG seeds
package daxpybench
