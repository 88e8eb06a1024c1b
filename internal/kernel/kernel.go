// Package kernel implements the float64 DAXPY inner loop.
package kernel

var axpyImpl = axpyGeneric

// Axpy computes y[i] = alpha*x[i] + y[i] for all i.
//
// Panics if the slice lengths differ: index ownership is the caller's
// contract and a silent truncation would corrupt the measurement.
func Axpy(alpha float64, x, y []float64) {
	if len(x) != len(y) {
		panic("kernel: slice length mismatch")
	}
	if len(y) == 0 || alpha == 0 {
		return
	}

	axpyImpl(alpha, x, y)
}

func axpyGeneric(alpha float64, x, y []float64) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

func axpyUnrolled4(alpha float64, x, y []float64) {
	n := len(y)

	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += alpha * x[i]
		y[i+1] += alpha * x[i+1]
		y[i+2] += alpha * x[i+2]
		y[i+3] += alpha * x[i+3]
	}
	for ; i < n; i++ {
		y[i] += alpha * x[i]
	}
}
