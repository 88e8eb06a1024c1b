package daxpybench

// MeasurementHooks brackets the barrier-gated measurement window.
//
// During RunBarrier the partition-0 worker calls WindowOpen exactly once
// after the first rendezvous and WindowClose exactly once after the second.
// This is the injection point for external statistics collectors such as the
// gem5 simulator (see package gem5); the core never depends on their
// implementation.
//
// Both calls happen on a worker goroutine, inside the measured region.
// Implementations should be cheap and must not block on other workers.
type MeasurementHooks interface {
	// WindowOpen marks the start of the measurement window.
	WindowOpen()

	// WindowClose marks the end of the measurement window.
	WindowClose()
}

// NoopMeasurementHooks is a no-op implementation of MeasurementHooks.
type NoopMeasurementHooks struct{}

func (NoopMeasurementHooks) WindowOpen()  {}
func (NoopMeasurementHooks) WindowClose() {}
