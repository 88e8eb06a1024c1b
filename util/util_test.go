package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	t.Run("Seed", func(t *testing.T) {
		rng := NewRNG(42)
		assert.Equal(t, int64(42), rng.Seed())
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := NewRNG(7).UniformVector(32, 1.0, 10.0)
		b := NewRNG(7).UniformVector(32, 1.0, 10.0)

		assert.Equal(t, a, b)
	})

	t.Run("SeedsDiffer", func(t *testing.T) {
		a := NewRNG(1).UniformVector(32, 1.0, 10.0)
		b := NewRNG(2).UniformVector(32, 1.0, 10.0)

		assert.NotEqual(t, a, b)
	})

	t.Run("UniformBounds", func(t *testing.T) {
		rng := NewRNG(99)

		vec := rng.UniformVector(1000, 1.0, 10.0)
		require.Len(t, vec, 1000)

		for _, v := range vec {
			assert.GreaterOrEqual(t, v, 1.0)
			assert.Less(t, v, 10.0)
		}
	})

	t.Run("Float64Range", func(t *testing.T) {
		rng := NewRNG(5)

		for i := 0; i < 100; i++ {
			v := rng.Float64()
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	})
}
