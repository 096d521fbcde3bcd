package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// DaviesBouldin is the negated Davies-Bouldin index: the average, over
// clusters, of the worst-case ratio of combined within-cluster scatter to
// between-centroid separation. Negated so that, like every other variant,
// higher is better. Requires centroids.
type DaviesBouldin struct {
	*base
	centroid *centroidState
}

// NewDaviesBouldin constructs a Davies-Bouldin index over x with k clusters.
func NewDaviesBouldin(x matrix.Matrix, k int, allowUndo bool) (*DaviesBouldin, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	return &DaviesBouldin{base: b, centroid: newCentroidState(x, k)}, nil
}

func (c *DaviesBouldin) SetLabels(labels []uint8) error {
	own, err := c.setLabels(labels)
	if err != nil {
		return err
	}
	c.centroid.rebuild(own, c.counts)
	return nil
}

func (c *DaviesBouldin) Modify(i, j int) error {
	old, err := c.modify(i, j)
	if err != nil {
		return err
	}
	c.centroid.update(i, int(old), j, c.counts[old], c.counts[j])
	return nil
}

func (c *DaviesBouldin) Undo() error {
	if err := c.base.undo(); err != nil {
		return err
	}
	c.centroid.undo()
	return nil
}

// centroidDist returns the true (non-squared) Euclidean distance between
// the centroids of clusters k and l.
func (c *DaviesBouldin) centroidDist(k, l int) float64 {
	d := c.centroid.d
	var ss float64
	var u int
	for u = 0; u < d; u++ {
		diff := c.centroid.at(k, u) - c.centroid.at(l, u)
		ss += diff * diff
	}
	return math.Sqrt(ss)
}

// Compute recomputes per-cluster scatter and centroid separation from
// scratch. Complexity: O(n·d + K²·d).
func (c *DaviesBouldin) Compute() float64 {
	k := c.k
	d := c.centroid.d

	s := make([]float64, k)
	var i, u int
	for i = 0; i < c.n; i++ {
		lbl := int(c.labels[i])
		var ss float64
		for u = 0; u < d; u++ {
			xv, _ := c.x.At(i, u)
			diff := xv - c.centroid.at(lbl, u)
			ss += diff * diff
		}
		s[lbl] += math.Sqrt(ss)
	}
	var j int
	for j = 0; j < k; j++ {
		s[j] /= float64(c.counts[j])
	}

	var total float64
	var kk, ll int
	for kk = 0; kk < k; kk++ {
		worst := math.Inf(-1)
		for ll = 0; ll < k; ll++ {
			if ll == kk {
				continue
			}
			ratio := (s[kk] + s[ll]) / c.centroidDist(kk, ll)
			if ratio > worst {
				worst = ratio
			}
		}
		total += worst
	}

	return -total / float64(k)
}

var _ Index = (*DaviesBouldin)(nil)
