package cvi_test

import (
	"math"
	"testing"

	cvi "github.com/gagolews/optim-cvi"
	"github.com/gagolews/optim-cvi/matrix"
	"github.com/stretchr/testify/require"
)

func sumCounts(idx cvi.Index) int {
	total := 0
	for j := 0; j < idx.K(); j++ {
		total += idx.Count(j)
	}
	return total
}

func allVariantBuilders(x matrix.Matrix, k int, allowUndo bool) map[string]func() (cvi.Index, error) {
	return map[string]func() (cvi.Index, error){
		"CalinskiHarabasz": func() (cvi.Index, error) { return cvi.NewCalinskiHarabasz(x, k, allowUndo) },
		"DaviesBouldin":    func() (cvi.Index, error) { return cvi.NewDaviesBouldin(x, k, allowUndo) },
		"Silhouette":       func() (cvi.Index, error) { return cvi.NewSilhouette(x, k, allowUndo) },
		"SilhouetteW":      func() (cvi.Index, error) { return cvi.NewSilhouetteWeighted(x, k, allowUndo) },
		"Dunn":             func() (cvi.Index, error) { return cvi.NewDunn(x, k, allowUndo) },
		"WCSS":             func() (cvi.Index, error) { return cvi.NewWCSS(x, k, allowUndo) },
		"BallHall":         func() (cvi.Index, error) { return cvi.NewBallHall(x, k, allowUndo) },
		"Gamma":            func() (cvi.Index, error) { return cvi.NewGamma(x, k, allowUndo) },
		"WCNN_2":           func() (cvi.Index, error) { return cvi.NewWCNN(x, k, 2, allowUndo) },
		"DuNN_2":           func() (cvi.Index, error) { return cvi.NewDuNNOWA(x, k, 2, "Mean", "Min", allowUndo) },
		"GDunn_d1_D1":      func() (cvi.Index, error) { return cvi.NewGeneralizedDunn(x, k, 1, 1, allowUndo) },
		"GDunn_d5_D3":      func() (cvi.Index, error) { return cvi.NewGeneralizedDunn(x, k, 5, 3, allowUndo) },
	}
}

// Σ count[j] == n must hold for every variant after set_labels.
func TestCountsSumToN(t *testing.T) {
	x := tenPointScenario(t)
	for name, build := range allVariantBuilders(x, 2, false) {
		idx, err := build()
		require.NoError(t, err, name)
		require.NoError(t, idx.SetLabels(scenario3Labels()), name)
		require.Equal(t, idx.N(), sumCounts(idx), name)
	}
}

// modify -> undo must restore labels, counts, and compute() exactly.
func TestModifyUndoRoundTrip(t *testing.T) {
	x := tenPointScenario(t)
	for name, build := range allVariantBuilders(x, 2, true) {
		idx, err := build()
		require.NoError(t, err, name)
		require.NoError(t, idx.SetLabels(scenario3Labels()), name)

		before := idx.Labels()
		beforeScore := idx.Compute()

		require.NoError(t, idx.Modify(4, 1), name)
		require.NoError(t, idx.Undo(), name)

		require.Equal(t, before, idx.Labels(), name)
		require.InDelta(t, beforeScore, idx.Compute(), 1e-9, name)
		require.Equal(t, idx.N(), sumCounts(idx), name)
	}
}

// Undo with no pending modify, or on an index built with allow_undo=false,
// must fail rather than silently no-op.
func TestUndoWithoutModifyFails(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
	require.NoError(t, err)
	require.NoError(t, idx.SetLabels(scenario3Labels()))
	require.Error(t, idx.Undo())
}

func TestUndoDisallowedFails(t *testing.T) {
	x := tenPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, idx.SetLabels(scenario3Labels()))
	require.NoError(t, idx.Modify(4, 1))
	require.ErrorIs(t, idx.Undo(), cvi.ErrUndoNotAllowed)
}

// Relabelling by a permutation of cluster ids must not change these
// permutation-symmetric indices' scores.
func TestPermutationSymmetry(t *testing.T) {
	x := fourPointScenario(t)
	labels := []uint8{0, 0, 1, 1}
	swapped := []uint8{1, 1, 0, 0}

	ch1, _ := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, ch1.SetLabels(labels))
	ch2, _ := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, ch2.SetLabels(swapped))
	require.InDelta(t, ch1.Compute(), ch2.Compute(), 1e-9)

	g1, _ := cvi.NewGamma(x, 2, false)
	require.NoError(t, g1.SetLabels(labels))
	g2, _ := cvi.NewGamma(x, 2, false)
	require.NoError(t, g2.SetLabels(swapped))
	require.InDelta(t, g1.Compute(), g2.Compute(), 1e-9)

	d1, _ := cvi.NewDunn(x, 2, false)
	require.NoError(t, d1.SetLabels(labels))
	d2, _ := cvi.NewDunn(x, 2, false)
	require.NoError(t, d2.SetLabels(swapped))
	require.InDelta(t, d1.Compute(), d2.Compute(), 1e-9)
}

// Gamma must always land in [-1, 1].
func TestGammaRange(t *testing.T) {
	x := fourPointScenario(t)
	for _, labels := range [][]uint8{{0, 0, 1, 1}, {0, 1, 0, 1}, {0, 1, 1, 0}} {
		g, err := cvi.NewGamma(x, 2, false)
		require.NoError(t, err)
		require.NoError(t, g.SetLabels(labels))
		v := g.Compute()
		require.GreaterOrEqual(t, v, -1.0-1e-9)
		require.LessOrEqual(t, v, 1.0+1e-9)
	}
}

// WCNN and DuNN-OWA must return -Inf whenever any cluster's count falls to
// or below M.
func TestWCNNAndDuNNOWABoundarySentinel(t *testing.T) {
	x := tenPointScenario(t)

	w, err := cvi.NewWCNN(x, 2, 5, true) // M == cluster size
	require.NoError(t, err)
	require.NoError(t, w.SetLabels(scenario3Labels()))
	require.True(t, math.IsInf(w.Compute(), -1))

	d, err := cvi.NewDuNNOWA(x, 2, 5, "Mean", "Min", true)
	require.NoError(t, err)
	require.NoError(t, d.SetLabels(scenario3Labels()))
	require.True(t, math.IsInf(d.Compute(), -1))
}

// set_labels rejects malformed labellings: wrong length, out-of-range id,
// or an empty cluster.
func TestSetLabelsValidation(t *testing.T) {
	x := tenPointScenario(t)

	idx, err := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, err)

	require.ErrorIs(t, idx.SetLabels(make([]uint8, 9)), cvi.ErrLabelLength)
	bad := scenario3Labels()
	bad[0] = 5
	require.ErrorIs(t, idx.SetLabels(bad), cvi.ErrLabelRange)

	allSame := make([]uint8, 10)
	require.ErrorIs(t, idx.SetLabels(allSame), cvi.ErrEmptyCluster)
}

// modify() must reject moves that would empty a cluster, and no-op moves.
func TestModifyValidation(t *testing.T) {
	x := fourPointScenario(t)
	idx, err := cvi.NewCalinskiHarabasz(x, 2, true)
	require.NoError(t, err)
	require.NoError(t, idx.SetLabels([]uint8{0, 0, 1, 1}))

	require.ErrorIs(t, idx.Modify(0, 0), cvi.ErrNoOpModify)
	require.NoError(t, idx.Modify(0, 1)) // cluster 0 still has point 1
	require.ErrorIs(t, idx.Modify(1, 1), cvi.ErrEmptyCluster)
}
