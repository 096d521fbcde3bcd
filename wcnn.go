package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// WCNN is the weighted-consistent-nearest-neighbours index: the fraction of
// (point, nearest-neighbour) pairs that share a cluster label. If any
// cluster's cardinality is at most M, the labelling is considered ill-
// defined for this index and Compute returns negative infinity — a
// deliberate sentinel value, not an error.
type WCNN struct {
	*base
	nn *nnTable
	m  int
}

// NewWCNN constructs a WCNN index over x with k clusters and neighbourhood
// size m (clamped to min(n-1, m) by the underlying nearest-neighbour table).
func NewWCNN(x matrix.Matrix, k, m int, allowUndo bool) (*WCNN, error) {
	if m <= 0 {
		return nil, ErrInvalidM
	}
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	dc, err := matrix.NewEuclideanDistance(x, true)
	if err != nil {
		return nil, err
	}

	nn := newNNTable(dc, b.n, m)
	return &WCNN{base: b, nn: nn, m: nn.M()}, nil
}

func (w *WCNN) SetLabels(labels []uint8) error {
	_, err := w.setLabels(labels)
	return err
}

func (w *WCNN) Modify(i, j int) error {
	_, err := w.modify(i, j)
	return err
}

func (w *WCNN) Undo() error {
	return w.base.undo()
}

// Compute returns the fraction of the n*M (point, k-th-neighbour) pairs
// sharing a label, or -Inf if any cluster has cardinality <= M.
// Complexity: O(n·M).
func (w *WCNN) Compute() float64 {
	var j int
	for j = 0; j < w.k; j++ {
		if w.counts[j] <= w.m {
			return math.Inf(-1)
		}
	}

	var matches int
	var i, kk int
	for i = 0; i < w.n; i++ {
		li := w.labels[i]
		for kk = 0; kk < w.m; kk++ {
			nbr := w.nn.At(i, kk)
			if w.labels[nbr] == li {
				matches++
			}
		}
	}

	return float64(matches) / float64(w.n*w.m)
}

var _ Index = (*WCNN)(nil)
