package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// DuNNOWA generalises WCNN: within-cluster near-neighbour distances feed a
// numerator OWA aggregator, between-cluster near-neighbour distances feed a
// denominator OWA aggregator, and the index is their ratio. Like WCNN, a
// cluster with cardinality at most M makes the labelling ill-defined and
// Compute returns -Inf.
type DuNNOWA struct {
	*base
	dc       *matrix.EuclideanDistance
	nn       *nnTable
	m        int
	num, den OWA
}

// NewDuNNOWA constructs a DuNN-OWA index over x with k clusters,
// neighbourhood size m, and numerator/denominator OWA operators named per
// the catalogue ResolveOWA accepts.
func NewDuNNOWA(x matrix.Matrix, k, m int, numerator, denominator string, allowUndo bool) (*DuNNOWA, error) {
	if m <= 0 {
		return nil, ErrInvalidM
	}
	num, err := ResolveOWA(numerator)
	if err != nil {
		return nil, err
	}
	den, err := ResolveOWA(denominator)
	if err != nil {
		return nil, err
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
	return &DuNNOWA{base: b, dc: dc, nn: nn, m: nn.M(), num: num, den: den}, nil
}

func (d *DuNNOWA) SetLabels(labels []uint8) error {
	_, err := d.setLabels(labels)
	return err
}

func (d *DuNNOWA) Modify(i, j int) error {
	_, err := d.modify(i, j)
	return err
}

func (d *DuNNOWA) Undo() error {
	return d.base.undo()
}

// Compute partitions every (point, k-th-neighbour) distance into within- and
// between-cluster buckets and returns num(within) / den(between).
// Complexity: O(n·M) plus the cost of the two OWA aggregations.
func (d *DuNNOWA) Compute() float64 {
	var j int
	for j = 0; j < d.k; j++ {
		if d.counts[j] <= d.m {
			return math.Inf(-1)
		}
	}

	within := make([]float64, 0, d.n*d.m)
	between := make([]float64, 0, d.n*d.m)

	var i, kk int
	for i = 0; i < d.n; i++ {
		li := d.labels[i]
		for kk = 0; kk < d.m; kk++ {
			nbr := d.nn.At(i, kk)
			dist := d.dc.Dist(i, nbr)
			if d.labels[nbr] == li {
				within = append(within, dist)
			} else {
				between = append(between, dist)
			}
		}
	}

	return d.num(within) / d.den(between)
}

var _ Index = (*DuNNOWA)(nil)
