// Package cvi_test exercises the index variants via the public Index
// contract, using the worked scenarios as fixtures.
package cvi_test

import (
	"testing"

	cvi "github.com/gagolews/optim-cvi"
	"github.com/gagolews/optim-cvi/matrix"
	"github.com/stretchr/testify/require"
)

func fourPointScenario(t *testing.T) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDense(4, 2)
	require.NoError(t, err)
	pts := [][2]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}}
	for i, p := range pts {
		require.NoError(t, m.Set(i, 0, p[0]))
		require.NoError(t, m.Set(i, 1, p[1]))
	}
	return m
}

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

// Scenario 1: well-separated clusters, correct labelling.
func TestScenario1CalinskiHarabaszAndWCSS(t *testing.T) {
	x := fourPointScenario(t)

	ch, err := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, ch.SetLabels([]uint8{0, 0, 1, 1}))
	require.InDelta(t, 400.0, ch.Compute(), 1e-9)

	w, err := cvi.NewWCSS(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, w.SetLabels([]uint8{0, 0, 1, 1}))
	require.InDelta(t, -1.0, w.Compute(), 1e-9)
}

func TestScenario1Dunn(t *testing.T) {
	x := fourPointScenario(t)
	d, err := cvi.NewDunn(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, d.SetLabels([]uint8{0, 0, 1, 1}))
	// true single-linkage nearest inter-cluster pair is (0,1)-(10,10),
	// squared distance 181, not the centroid-to-centroid distance (200).
	require.InDelta(t, 13.4536240470737, d.Compute(), 1e-9)
}

// Scenario 2: a worse, interleaved labelling on the same points.
func TestScenario2WorseThanScenario1(t *testing.T) {
	x := fourPointScenario(t)

	ch1, err := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, ch1.SetLabels([]uint8{0, 0, 1, 1}))

	ch2, err := cvi.NewCalinskiHarabasz(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, ch2.SetLabels([]uint8{0, 1, 0, 1}))

	require.Less(t, ch2.Compute(), ch1.Compute())

	sil, err := cvi.NewSilhouette(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, sil.SetLabels([]uint8{0, 1, 0, 1}))
	require.Less(t, sil.Compute(), 0.0)
}

func TestScenario2Gamma(t *testing.T) {
	x := fourPointScenario(t)
	g, err := cvi.NewGamma(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, g.SetLabels([]uint8{0, 1, 0, 1}))
	// 2 concordant / 6 discordant comparisons out of all 2x4=8 same/
	// different cluster-pair comparisons.
	require.InDelta(t, -0.5, g.Compute(), 1e-9)
}

func scenario3Labels() []uint8 {
	return []uint8{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}
}

// Scenario 3/6: Dunn's index on the two well-separated five-point blocks.
func TestScenario3DunnValue(t *testing.T) {
	x := tenPointScenario(t)
	d, err := cvi.NewDunn(x, 2, false)
	require.NoError(t, err)
	require.NoError(t, d.SetLabels(scenario3Labels()))
	require.InDelta(t, 24.0, d.Compute(), 1e-9)
}

// Scenario 3: swapping a boundary point worsens Ball-Hall.
func TestScenario3BoundarySwapWorsensBallHall(t *testing.T) {
	x := tenPointScenario(t)
	bh, err := cvi.NewBallHall(x, 2, true)
	require.NoError(t, err)
	require.NoError(t, bh.SetLabels(scenario3Labels()))
	base := bh.Compute()

	require.NoError(t, bh.Modify(4, 1)) // move point 4 (boundary of cluster 0) into cluster 1
	moved := bh.Compute()
	require.NoError(t, bh.Undo())
	reverted := bh.Compute()

	require.Less(t, moved, base, "moving a boundary point should worsen Ball-Hall")
	require.InDelta(t, base, reverted, 1e-9, "undo must restore the original score")
}

// Scenario 4: WCNN is perfect when every point's M nearest neighbours share
// its label, and drops once a single label is swapped.
func TestScenario4WCNN(t *testing.T) {
	x := tenPointScenario(t)
	w, err := cvi.NewWCNN(x, 2, 2, true)
	require.NoError(t, err)
	require.NoError(t, w.SetLabels(scenario3Labels()))
	require.InDelta(t, 1.0, w.Compute(), 1e-9)

	require.NoError(t, w.Modify(4, 1))
	require.Less(t, w.Compute(), 1.0)
}
