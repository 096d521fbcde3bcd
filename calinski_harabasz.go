package cvi

import "github.com/gagolews/optim-cvi/matrix"

// CalinskiHarabasz is the variance-ratio criterion: between-cluster
// dispersion over within-cluster dispersion, scaled by degrees of freedom.
// Higher is better. Requires centroids; the overall mean is label-
// independent and is computed once at construction.
type CalinskiHarabasz struct {
	*base
	centroid *centroidState
	mean     []float64
}

// NewCalinskiHarabasz constructs a Calinski-Harabasz index over x with k
// clusters.
func NewCalinskiHarabasz(x matrix.Matrix, k int, allowUndo bool) (*CalinskiHarabasz, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}

	d := x.Cols()
	mean := make([]float64, d)
	var i, u int
	for i = 0; i < b.n; i++ {
		for u = 0; u < d; u++ {
			v, _ := x.At(i, u)
			mean[u] += v
		}
	}
	for u = 0; u < d; u++ {
		mean[u] /= float64(b.n)
	}

	return &CalinskiHarabasz{base: b, centroid: newCentroidState(x, k), mean: mean}, nil
}

func (c *CalinskiHarabasz) SetLabels(labels []uint8) error {
	own, err := c.setLabels(labels)
	if err != nil {
		return err
	}
	c.centroid.rebuild(own, c.counts)
	return nil
}

func (c *CalinskiHarabasz) Modify(i, j int) error {
	old, err := c.modify(i, j)
	if err != nil {
		return err
	}
	c.centroid.update(i, int(old), j, c.counts[old], c.counts[j])
	return nil
}

func (c *CalinskiHarabasz) Undo() error {
	if err := c.base.undo(); err != nil {
		return err
	}
	c.centroid.undo()
	return nil
}

// Compute recomputes B and W from the current centroids and labelling.
// Complexity: O(n·d + K·d).
func (c *CalinskiHarabasz) Compute() float64 {
	d := c.centroid.d
	k := c.k
	n := c.n

	var between float64
	var j, u int
	for j = 0; j < k; j++ {
		var ss float64
		for u = 0; u < d; u++ {
			diff := c.centroid.at(j, u) - c.mean[u]
			ss += diff * diff
		}
		between += float64(c.counts[j]) * ss
	}

	var within float64
	var i int
	for i = 0; i < n; i++ {
		lbl := int(c.labels[i])
		var ss float64
		for u = 0; u < d; u++ {
			xv, _ := c.x.At(i, u)
			diff := xv - c.centroid.at(lbl, u)
			ss += diff * diff
		}
		within += ss
	}

	return (between * float64(n-k)) / (within * float64(k-1))
}

var _ Index = (*CalinskiHarabasz)(nil)
