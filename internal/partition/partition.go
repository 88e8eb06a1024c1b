// Package partition computes the static work distribution for a benchmark
// run: given a vector length and a worker count, it produces one contiguous
// half-open index range per worker covering [0, n) exactly once.
package partition

import "fmt"

// Range is a half-open index interval [Start, End) owned by exactly one
// worker for the duration of the compute phase.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [0, n) into exactly workers contiguous ranges.
//
// chunk = n/workers; range t is [t*chunk, (t+1)*chunk) for all t before the
// last, and the last range ends at n. The last worker therefore absorbs the
// remainder and may hold up to workers-1 extra elements when n is not
// divisible by workers. The skew is intentional and kept from the measured
// behavior; load balancing is out of scope.
//
// When workers > n the leading ranges are empty and the last takes all of
// [0, n); coverage still holds because empty ranges do no work.
func Split(n, workers int) ([]Range, error) {
	if workers < 1 {
		return nil, fmt.Errorf("partition: workers must be >= 1, got %d", workers)
	}
	if n < 0 {
		return nil, fmt.Errorf("partition: negative length %d", n)
	}

	chunk := n / workers

	ranges := make([]Range, workers)
	for t := range ranges {
		ranges[t] = Range{Start: t * chunk, End: (t + 1) * chunk}
	}
	ranges[workers-1].End = n

	return ranges, nil
}
