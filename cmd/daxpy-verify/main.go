// Command daxpy-verify runs the barrier-gated DAXPY benchmark and verifies
// that the parallel result matches a sequential recomputation.
//
// Usage:
//
//	daxpy-verify <vector_size> <num_threads> <alpha>
//
// Vectors are filled with random values from [1, 10). Set DAXPY_SEED to a
// fixed integer for reproducible runs. Workers rendezvous at a barrier before
// and after the compute window, and the partition-0 worker brackets the
// window with the measurement hooks (gem5 m5ops when built with -tags gem5,
// no-ops otherwise).
//
// A failed verification is reported as a verdict and still exits 0; only
// configuration and launch errors exit 1.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/hupe1980/daxpybench"
	"github.com/hupe1980/daxpybench/gem5"
	"github.com/hupe1980/daxpybench/internal/kernel"
	"github.com/hupe1980/daxpybench/util"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <vector_size> <num_threads> <alpha>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Example: %s 1000 4 2.5\n", os.Args[0])
		os.Exit(1)
	}

	size, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fatalf("invalid vector size %q: %v", os.Args[1], err)
	}
	threads, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fatalf("invalid thread count %q: %v", os.Args[2], err)
	}
	alpha, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		fatalf("invalid alpha %q: %v", os.Args[3], err)
	}

	maxThreads := runtime.NumCPU()
	if threads < 1 || threads > maxThreads {
		fatalf("invalid number of threads: must be between 1 and %d", maxThreads)
	}
	if size <= 0 {
		fatalf("vector size must be greater than 0")
	}

	seed := time.Now().UnixNano()
	if s := os.Getenv("DAXPY_SEED"); s != "" {
		if seed, err = strconv.ParseInt(s, 10, 64); err != nil {
			fatalf("invalid DAXPY_SEED %q: %v", s, err)
		}
	}

	fmt.Println("DAXPY Multi-threaded Benchmark")
	fmt.Printf("Go %s on %s/%s, %d CPUs, %s kernel\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, maxThreads, kernel.Implementation())
	fmt.Printf("Vector size: %d\n", size)
	fmt.Printf("Threads: %d\n", threads)
	fmt.Printf("Alpha: %g\n", alpha)

	opts := []daxpybench.Option{
		daxpybench.WithInit(daxpybench.InitRandom),
		daxpybench.WithRNG(util.NewRNG(seed)),
		daxpybench.WithSnapshot(),
		daxpybench.WithMaxThreads(maxThreads),
		daxpybench.WithHooks(gem5.Hooks()),
	}
	if os.Getenv("DAXPY_DEBUG") != "" {
		opts = append(opts, daxpybench.WithLogger(daxpybench.NewTextLogger(slog.LevelDebug)))
	}

	b, err := daxpybench.New(size, threads, alpha, opts...)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Println("Starting parallel computation...")

	elapsed, err := b.RunBarrier()
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Parallel execution time: %d microseconds\n", elapsed.Microseconds())

	v, err := b.Verify()
	if err != nil {
		fatalf("%v", err)
	}

	verdict := "PASSED"
	if !v.Passed {
		verdict = "FAILED"
	}

	fmt.Printf("Results verification: %s\n", verdict)
	fmt.Printf("Maximum error: %g\n", v.MaxError)

	fmt.Print("First 10 results: ")
	for _, val := range b.Results(10) {
		fmt.Printf("%g ", val)
	}
	fmt.Println()

	fmt.Println("Benchmark completed successfully!")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
