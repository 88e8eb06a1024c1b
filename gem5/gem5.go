// Package gem5 bridges the benchmark's measurement window to the gem5
// simulator's statistics API.
//
// Build with -tags gem5 inside a gem5 environment to activate the m5ops
// calls; without the tag the hooks are no-ops and the benchmark runs
// unchanged on real hardware. The core never imports this package — drivers
// inject the hooks:
//
//	b, _ := daxpybench.New(size, threads, alpha,
//	    daxpybench.WithHooks(gem5.Hooks()),
//	)
package gem5

import "github.com/hupe1980/daxpybench"

// Hooks returns the measurement hooks for the current build.
func Hooks() daxpybench.MeasurementHooks {
	return hooks{}
}
