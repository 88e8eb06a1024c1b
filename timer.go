package daxpybench

import "time"

// Stopwatch measures elapsed wall time around a unit of work.
//
// time.Now carries a monotonic clock reading, so the measurement is immune
// to wall-clock adjustments and resolves well below a microsecond.
type Stopwatch struct {
	start time.Time
}

// StartStopwatch starts a new measurement.
func StartStopwatch() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was started.
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// ElapsedMicros returns the elapsed time in microseconds.
func (s *Stopwatch) ElapsedMicros() int64 {
	return s.Elapsed().Microseconds()
}
