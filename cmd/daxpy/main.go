// Command daxpy runs the unsynchronized DAXPY benchmark.
//
// Usage:
//
//	daxpy [vector_size=1000] [num_threads=1] [alpha=2.5]
//
// Arguments are positional and optional, parsed left to right. With one
// thread the computation runs single-threaded; otherwise one worker per
// partition is launched and the elapsed time covers launch to join.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/hupe1980/daxpybench"
	"github.com/hupe1980/daxpybench/internal/kernel"
)

func main() {
	size := 1000
	threads := 1
	alpha := 2.5

	args := os.Args[1:]

	var err error
	if len(args) >= 1 {
		if size, err = strconv.Atoi(args[0]); err != nil {
			fatalf("invalid vector size %q: %v", args[0], err)
		}
	}
	if len(args) >= 2 {
		if threads, err = strconv.Atoi(args[1]); err != nil {
			fatalf("invalid thread count %q: %v", args[1], err)
		}
	}
	if len(args) >= 3 {
		if alpha, err = strconv.ParseFloat(args[2], 64); err != nil {
			fatalf("invalid alpha %q: %v", args[2], err)
		}
	}

	fmt.Println("DAXPY Benchmark")
	fmt.Printf("Go %s on %s/%s, %d CPUs, %s kernel\n",
		runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), kernel.Implementation())
	fmt.Printf("Vector size: %d\n", size)
	fmt.Printf("Threads: %d\n", threads)
	fmt.Printf("Alpha: %g\n", alpha)
	fmt.Println("Starting computation...")

	opts := []daxpybench.Option{
		// No upper bound on threads here: oversubscription is allowed and
		// simply measured.
		daxpybench.WithMaxThreads(threads),
	}
	if os.Getenv("DAXPY_DEBUG") != "" {
		opts = append(opts, daxpybench.WithLogger(daxpybench.NewTextLogger(slog.LevelDebug)))
	}

	b, err := daxpybench.New(size, threads, alpha, opts...)
	if err != nil {
		fatalf("%v", err)
	}

	var (
		label   string
		elapsed time.Duration
	)
	if threads > 1 {
		label = "Multi-threaded"
		elapsed, err = b.RunParallel()
	} else {
		label = "Single-threaded"
		elapsed, err = b.RunSequential()
	}
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("%s execution time: %d microseconds\n", label, elapsed.Microseconds())

	printResults(b)
	fmt.Println("Benchmark completed!")
}

func printResults(b *daxpybench.Benchmark) {
	fmt.Print("First 10 results: ")
	for _, v := range b.Results(10) {
		fmt.Printf("%g ", v)
	}
	fmt.Println()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
