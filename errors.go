package daxpybench

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVector is returned when the configured vector size is zero.
	ErrEmptyVector = errors.New("vector size must be greater than 0")

	// ErrMissingSnapshot is returned by Verify when the benchmark was built
	// without WithSnapshot and no original copy of y exists.
	ErrMissingSnapshot = errors.New("verification requires a snapshot of y")
)

// ErrInvalidThreadCount indicates a thread count outside [1, Max].
type ErrInvalidThreadCount struct {
	Threads int
	Max     int
}

func (e *ErrInvalidThreadCount) Error() string {
	return fmt.Sprintf("invalid number of threads: %d (must be between 1 and %d)", e.Threads, e.Max)
}
