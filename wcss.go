package cvi

import "github.com/gagolews/optim-cvi/matrix"

// WCSS is the negated within-cluster sum of squares. Ball-Hall additionally
// weights each point's contribution by 1/count[L[i]], favouring balanced
// cluster sizes. Both require centroids; the weighted flag selects between
// them so the two share one incremental implementation.
type WCSS struct {
	*base
	centroid *centroidState
	weighted bool
}

func newWCSS(x matrix.Matrix, k int, allowUndo, weighted bool) (*WCSS, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	return &WCSS{base: b, centroid: newCentroidState(x, k), weighted: weighted}, nil
}

// NewWCSS constructs the unweighted within-cluster sum of squares index.
func NewWCSS(x matrix.Matrix, k int, allowUndo bool) (*WCSS, error) {
	return newWCSS(x, k, allowUndo, false)
}

// NewBallHall constructs the cluster-size-weighted Ball-Hall index.
func NewBallHall(x matrix.Matrix, k int, allowUndo bool) (*WCSS, error) {
	return newWCSS(x, k, allowUndo, true)
}

func (w *WCSS) SetLabels(labels []uint8) error {
	own, err := w.setLabels(labels)
	if err != nil {
		return err
	}
	w.centroid.rebuild(own, w.counts)
	return nil
}

func (w *WCSS) Modify(i, j int) error {
	old, err := w.modify(i, j)
	if err != nil {
		return err
	}
	w.centroid.update(i, int(old), j, w.counts[old], w.counts[j])
	return nil
}

func (w *WCSS) Undo() error {
	if err := w.base.undo(); err != nil {
		return err
	}
	w.centroid.undo()
	return nil
}

// Compute recomputes the (optionally weighted) sum of squared point-to-
// centroid distances. Complexity: O(n·d).
func (w *WCSS) Compute() float64 {
	d := w.centroid.d
	var total float64
	var i, u int
	for i = 0; i < w.n; i++ {
		lbl := int(w.labels[i])
		var ss float64
		for u = 0; u < d; u++ {
			xv, _ := w.x.At(i, u)
			diff := xv - w.centroid.at(lbl, u)
			ss += diff * diff
		}
		if w.weighted {
			ss /= float64(w.counts[lbl])
		}
		total += ss
	}
	return -total
}

var _ Index = (*WCSS)(nil)
