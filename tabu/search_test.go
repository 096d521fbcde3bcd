// Package tabu_test exercises Search and TurboSearch against the cvi
// package's public Index contract.
package tabu_test

import (
	"testing"

	cvi "github.com/gagolews/optim-cvi"
	"github.com/gagolews/optim-cvi/matrix"
	"github.com/gagolews/optim-cvi/tabu"
	"github.com/stretchr/testify/require"
)

func tenPointScenario(t *testing.T) matrix.Matrix {
	t.Helper()
	vals := []float64{0, 1, 2, 3, 4, 100, 101, 102, 103, 104}
	m, err := matrix.NewDense(10, 1)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, m.Set(i, 0, v))
	}
	return m
}

// isTargetPartition reports whether par splits {0..4} and {5..9} into the
// two clusters, in either label orientation.
func isTargetPartition(par []uint8) bool {
	if len(par) != 10 {
		return false
	}
	first := par[0]
	for i := 0; i < 5; i++ {
		if par[i] != first {
			return false
		}
	}
	second := par[5]
	if second == first {
		return false
	}
	for i := 5; i < 10; i++ {
		if par[i] != second {
			return false
		}
	}
	return true
}

// Scenario 5: single-start hill climb recovers the ground-truth partition
// from a scrambled initial labelling within 30 outer iterations.
func TestSearchRecoversPartition(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
	require.NoError(t, err)

	y0 := []uint8{1, 0, 1, 0, 1, 0, 1, 0, 1, 0} // adversarial scrambled start

	opts := tabu.DefaultOptions()
	opts.MaxIter = 30
	opts.MaxIterNoImprovement = 30
	opts.Seed = 42

	result, err := tabu.Search(idx, y0, opts)
	require.NoError(t, err)
	require.LessOrEqual(t, result.Iterations, 30)
	require.True(t, isTargetPartition(result.Par), "expected recovered partition, got %v", result.Par)
}

// Scenario 6: turbo multi-start recovers the ground-truth partition under
// Dunn's index, with best_f matching the hand-verified optimum of 24.
func TestTurboSearchRecoversPartitionWithDunn(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewDunn(x, 2, true)
	require.NoError(t, err)

	starts := [][]uint8{
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
		{0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		{0, 0, 1, 1, 0, 1, 0, 1, 1, 0},
		{1, 1, 1, 0, 0, 0, 1, 1, 0, 0},
		{0, 1, 1, 0, 1, 0, 1, 0, 0, 1},
	}

	opts := tabu.DefaultOptions()
	opts.Seed = 7

	result, err := tabu.TurboSearch(idx, starts, opts)
	require.NoError(t, err)
	require.InDelta(t, 24.0, result.Value, 1e-9)
	require.True(t, isTargetPartition(result.Par), "expected recovered partition, got %v", result.Par)
}

func TestSearchRejectsMalformedStart(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
	require.NoError(t, err)

	_, err = tabu.Search(idx, make([]uint8, 3), tabu.DefaultOptions())
	require.ErrorIs(t, err, cvi.ErrLabelLength)
}

func TestTurboSearchNoFeasibleStart(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
	require.NoError(t, err)

	// every candidate start is malformed (wrong length), so SetLabels fails
	// for all of them and no column is ever tried.
	starts := [][]uint8{make([]uint8, 3), make([]uint8, 4)}
	_, err = tabu.TurboSearch(idx, starts, tabu.DefaultOptions())
	require.ErrorIs(t, err, tabu.ErrNoFeasibleStart)
}
