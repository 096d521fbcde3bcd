package tabu_test

import (
	"testing"

	cvi "github.com/gagolews/optim-cvi"
	"github.com/gagolews/optim-cvi/tabu"
	"github.com/stretchr/testify/require"
)

// Same seed, same start, same index construction must reproduce an
// identical search trajectory.
func TestSearchSeedDeterminism(t *testing.T) {
	x := tenPointScenario(t)
	y0 := []uint8{1, 0, 0, 1, 0, 1, 1, 0, 0, 1}

	run := func() tabu.Result {
		idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
		require.NoError(t, err)
		opts := tabu.DefaultOptions()
		opts.MaxSamples = 5
		opts.Seed = 123
		result, err := tabu.Search(idx, y0, opts)
		require.NoError(t, err)
		return result
	}

	r1 := run()
	r2 := run()
	require.Equal(t, r1.Par, r2.Par)
	require.Equal(t, r1.Value, r2.Value)
	require.Equal(t, r1.Iterations, r2.Iterations)
}
