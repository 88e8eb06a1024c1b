package daxpybench

// initialize allocates and fills the vectors according to the configured
// init mode, and takes the snapshot of y if one was requested.
func (b *Benchmark) initialize(o *options) {
	switch o.init {
	case InitRandom:
		b.x = o.rng.UniformVector(b.size, 1.0, 10.0)
		b.y = o.rng.UniformVector(b.size, 1.0, 10.0)
	default:
		b.x = make([]float64, b.size)
		b.y = make([]float64, b.size)
		for i := range b.x {
			b.x[i] = float64(i + 1)
			b.y[i] = float64(b.size - i)
		}
	}

	if o.snapshot {
		b.yOriginal = make([]float64, b.size)
		copy(b.yOriginal, b.y)
	}
}

// Results returns a copy of the first k values of y, or fewer if the vector
// is shorter. After a verification pass the values reflect the parallel run,
// never the sequential recomputation used internally.
func (b *Benchmark) Results(k int) []float64 {
	if k < 0 {
		k = 0
	}
	if k > len(b.y) {
		k = len(b.y)
	}

	out := make([]float64, k)
	copy(out, b.y[:k])

	return out
}
