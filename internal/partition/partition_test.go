package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("RemainderGoesToLastRange", func(t *testing.T) {
		ranges, err := Split(10, 3)
		require.NoError(t, err)

		assert.Equal(t, []Range{
			{Start: 0, End: 3},
			{Start: 3, End: 6},
			{Start: 6, End: 10},
		}, ranges)
	})

	t.Run("SingleWorkerIdentity", func(t *testing.T) {
		ranges, err := Split(1000, 1)
		require.NoError(t, err)

		require.Len(t, ranges, 1)
		assert.Equal(t, Range{Start: 0, End: 1000}, ranges[0])
	})

	t.Run("EvenSplit", func(t *testing.T) {
		ranges, err := Split(12, 4)
		require.NoError(t, err)

		require.Len(t, ranges, 4)
		for i, r := range ranges {
			assert.Equal(t, 3, r.Len(), "range %d", i)
		}
	})

	t.Run("MoreWorkersThanElements", func(t *testing.T) {
		ranges, err := Split(2, 4)
		require.NoError(t, err)

		require.Len(t, ranges, 4)
		assert.Equal(t, Range{Start: 0, End: 0}, ranges[0])
		assert.Equal(t, Range{Start: 0, End: 2}, ranges[3])
	})

	t.Run("ZeroWorkers", func(t *testing.T) {
		_, err := Split(10, 0)
		require.Error(t, err)
	})

	t.Run("NegativeLength", func(t *testing.T) {
		_, err := Split(-1, 2)
		require.Error(t, err)
	})
}

// TestSplitCoverage checks the core invariant: the ranges are contiguous and
// cover [0, n) exactly once, for every n and worker count up to n.
func TestSplitCoverage(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for workers := 1; workers <= n; workers++ {
			ranges, err := Split(n, workers)
			require.NoError(t, err)
			require.Len(t, ranges, workers)

			assert.Equal(t, 0, ranges[0].Start, "n=%d workers=%d", n, workers)
			assert.Equal(t, n, ranges[workers-1].End, "n=%d workers=%d", n, workers)

			total := 0
			for i, r := range ranges {
				assert.LessOrEqual(t, r.Start, r.End, "n=%d workers=%d range=%d", n, workers, i)
				if i > 0 {
					assert.Equal(t, ranges[i-1].End, r.Start, "n=%d workers=%d range=%d", n, workers, i)
				}
				total += r.Len()
			}
			assert.Equal(t, n, total, "n=%d workers=%d", n, workers)
		}
	}
}

func TestSplitSkewBound(t *testing.T) {
	// The last worker absorbs the remainder: chunk + (n mod workers) elements,
	// at most workers-1 more than the others.
	ranges, err := Split(101, 4)
	require.NoError(t, err)

	assert.Equal(t, 25, ranges[0].Len())
	assert.Equal(t, 26, ranges[3].Len())
}
