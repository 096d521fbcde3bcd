package matrix

import (
	"errors"
	"math"
)

// MaxNPrecomputeDistance is the point-count threshold below which
// EuclideanDistance eagerly fills the full n×n squared-distance matrix.
// Above it, distances are computed on demand from X.
const MaxNPrecomputeDistance = 10000

// ErrPointsNil indicates a nil Matrix was supplied to NewEuclideanDistance.
var ErrPointsNil = errors.New("matrix: points matrix is nil")

// EuclideanDistance exposes squared L2 distance between rows of an n×d
// point matrix. When n <= MaxNPrecomputeDistance the full symmetric n×n
// matrix is computed once at construction; otherwise each D(i, j) call
// recomputes the distance directly from the backing points.
//
// Complexity:
//
//	NewEuclideanDistance: O(n²·d) when precomputed, O(1) otherwise.
//	D: O(1) when precomputed, O(d) otherwise.
type EuclideanDistance struct {
	x         Matrix
	n, d      int
	precomp   bool
	sq        []float64 // flat n*n row-major cache, valid only if precomp
}

// NewEuclideanDistance builds a distance accessor over the rows of x.
// Precomputation of the full n×n squared-distance matrix is requested via
// precompute and only honored when n <= MaxNPrecomputeDistance.
// Stage 1 (Validate): reject a nil matrix.
// Stage 2 (Prepare): record dimensions.
// Stage 3 (Finalize): optionally precompute the full cache.
func NewEuclideanDistance(x Matrix, precompute bool) (*EuclideanDistance, error) {
	if x == nil {
		return nil, ErrPointsNil
	}

	n, d := x.Rows(), x.Cols()
	ed := &EuclideanDistance{x: x, n: n, d: d}

	if precompute && n <= MaxNPrecomputeDistance {
		ed.precomp = true
		ed.sq = make([]float64, n*n)
		var i, j, u int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				var acc float64
				for u = 0; u < d; u++ {
					xi, _ := x.At(i, u)
					xj, _ := x.At(j, u)
					diff := xi - xj
					acc += diff * diff
				}
				ed.sq[i*n+j] = acc
				ed.sq[j*n+i] = acc
			}
		}
	}

	return ed, nil
}

// N returns the number of points covered by this distance accessor.
func (ed *EuclideanDistance) N() int {
	return ed.n
}

// Precomputed reports whether the full n×n cache was built.
func (ed *EuclideanDistance) Precomputed() bool {
	return ed.precomp
}

// D returns the squared Euclidean distance between rows i and j.
// Diagonal entries are always zero; the result is symmetric in i, j.
// Complexity: O(1) if precomputed, O(d) otherwise.
func (ed *EuclideanDistance) D(i, j int) float64 {
	if i == j {
		return 0
	}
	if ed.precomp {
		return ed.sq[i*ed.n+j]
	}

	var acc float64
	var u int
	for u = 0; u < ed.d; u++ {
		xi, _ := ed.x.At(i, u)
		xj, _ := ed.x.At(j, u)
		diff := xi - xj
		acc += diff * diff
	}

	return acc
}

// Dist returns the true (non-squared) Euclidean distance between rows i, j.
// Complexity: same as D plus one sqrt.
func (ed *EuclideanDistance) Dist(i, j int) float64 {
	return math.Sqrt(ed.D(i, j))
}
