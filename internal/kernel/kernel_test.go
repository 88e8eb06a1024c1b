package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxpy(t *testing.T) {
	t.Run("KnownValues", func(t *testing.T) {
		x := []float64{1, 2, 3, 4}
		y := []float64{10, 20, 30, 40}

		Axpy(2, x, y)

		assert.Equal(t, []float64{12, 24, 36, 44}, y)
		assert.Equal(t, []float64{1, 2, 3, 4}, x)
	})

	t.Run("ZeroAlpha", func(t *testing.T) {
		x := []float64{1, 2, 3}
		y := []float64{4, 5, 6}

		Axpy(0, x, y)

		assert.Equal(t, []float64{4, 5, 6}, y)
	})

	t.Run("NegativeAlpha", func(t *testing.T) {
		x := []float64{1, 2}
		y := []float64{3, 4}

		Axpy(-1, x, y)

		assert.Equal(t, []float64{2, 2}, y)
	})

	t.Run("Empty", func(t *testing.T) {
		Axpy(2.5, nil, nil)
	})

	t.Run("LengthMismatchPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			Axpy(1, []float64{1, 2}, []float64{1})
		})
	})
}

// TestAxpyVariantsAgree pins the unrolled loop against the generic one,
// including tail lengths that do not divide by the unroll factor.
func TestAxpyVariantsAgree(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 100} {
		x := make([]float64, n)
		want := make([]float64, n)
		got := make([]float64, n)
		for i := range x {
			x[i] = float64(i) * 0.5
			want[i] = float64(n - i)
			got[i] = want[i]
		}

		axpyGeneric(2.5, x, want)
		axpyUnrolled4(2.5, x, got)

		require.Equal(t, want, got, "n=%d", n)
	}
}

func TestImplementation(t *testing.T) {
	assert.NotEmpty(t, Implementation())
}

func BenchmarkAxpy(b *testing.B) {
	const n = 4096

	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Axpy(2.5, x, y)
	}
}
