package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// Silhouette scores each point by how much closer it sits to its own
// cluster than to the nearest other cluster. Plain returns the mean score
// over points; SilhouetteW (weighted=true) returns the mean, over clusters,
// of each cluster's mean score — so small clusters count as much as large
// ones. Needs no centroids, only the cached pairwise distance matrix.
type Silhouette struct {
	*base
	dist     *matrix.EuclideanDistance
	weighted bool
}

func newSilhouette(x matrix.Matrix, k int, allowUndo, weighted bool) (*Silhouette, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	dist, err := matrix.NewEuclideanDistance(x, true)
	if err != nil {
		return nil, err
	}
	return &Silhouette{base: b, dist: dist, weighted: weighted}, nil
}

// NewSilhouette constructs the plain (point-averaged) Silhouette index.
func NewSilhouette(x matrix.Matrix, k int, allowUndo bool) (*Silhouette, error) {
	return newSilhouette(x, k, allowUndo, false)
}

// NewSilhouetteWeighted constructs the cluster-weighted Silhouette index.
func NewSilhouetteWeighted(x matrix.Matrix, k int, allowUndo bool) (*Silhouette, error) {
	return newSilhouette(x, k, allowUndo, true)
}

func (s *Silhouette) SetLabels(labels []uint8) error {
	_, err := s.setLabels(labels)
	return err
}

func (s *Silhouette) Modify(i, j int) error {
	_, err := s.modify(i, j)
	return err
}

func (s *Silhouette) Undo() error {
	return s.base.undo()
}

// Compute recomputes every point's score from the cached distance matrix.
// Complexity: O(n²·K).
func (s *Silhouette) Compute() float64 {
	n, k := s.n, s.k
	clusterSum := make([]float64, k)
	var overall float64

	var i int
	for i = 0; i < n; i++ {
		li := int(s.labels[i])
		if s.counts[li] == 1 {
			continue // s_i == 0, contributes nothing to either sum
		}

		var aSum float64
		var j int
		for j = 0; j < n; j++ {
			if j == i || int(s.labels[j]) != li {
				continue
			}
			aSum += math.Sqrt(s.dist.D(i, j))
		}
		ai := aSum / float64(s.counts[li]-1)

		bi := math.Inf(1)
		var c int
		for c = 0; c < k; c++ {
			if c == li {
				continue
			}
			var sum float64
			for j = 0; j < n; j++ {
				if int(s.labels[j]) != c {
					continue
				}
				sum += math.Sqrt(s.dist.D(i, j))
			}
			mean := sum / float64(s.counts[c])
			if mean < bi {
				bi = mean
			}
		}

		si := (bi - ai) / math.Max(ai, bi)
		clusterSum[li] += si
		overall += si
	}

	if s.weighted {
		var sum float64
		var j int
		for j = 0; j < k; j++ {
			sum += clusterSum[j] / float64(s.counts[j])
		}
		return sum / float64(k)
	}

	return overall / float64(n)
}

var _ Index = (*Silhouette)(nil)
