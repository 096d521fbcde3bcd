package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// Dunn is the ratio of the smallest inter-cluster distance to the largest
// cluster diameter. Maintains, per cluster pair, the witness pair realising
// the current minimum inter-cluster distance, and per cluster, the witness
// pair realising the current diameter. On modify, if the moved point was
// not itself a witness of any tracked extremum, a localized O(n) scan
// suffices; otherwise every witness must be recomputed from scratch, since
// removing a witness point invalidates the record that depended on it.
type Dunn struct {
	*base
	dc   *matrix.EuclideanDistance
	diam []DistTriple // size K
	dist []DistTriple // flat K*K, upper triangle (a < b) populated

	lastDiam    []DistTriple
	lastDist    []DistTriple
	lastChanged bool
}

// NewDunn constructs a Dunn index over x with k clusters.
func NewDunn(x matrix.Matrix, k int, allowUndo bool) (*Dunn, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	dc, err := matrix.NewEuclideanDistance(x, true)
	if err != nil {
		return nil, err
	}

	return &Dunn{
		base:     b,
		dc:       dc,
		diam:     make([]DistTriple, k),
		dist:     make([]DistTriple, k*k),
		lastDiam: make([]DistTriple, k),
		lastDist: make([]DistTriple, k*k),
	}, nil
}

func (d *Dunn) distAt(a, b int) DistTriple {
	if a > b {
		a, b = b, a
	}
	return d.dist[a*d.k+b]
}

func (d *Dunn) setDist(a, b int, t DistTriple) {
	if a > b {
		a, b = b, a
	}
	d.dist[a*d.k+b] = t
}

// isWitness reports whether point i currently realises the diameter of its
// cluster, or the minimum inter-cluster distance of any cluster pair.
func (d *Dunn) isWitness(i int) bool {
	var c int
	for c = 0; c < d.k; c++ {
		if d.diam[c].I == i || d.diam[c].J == i {
			return true
		}
	}
	var a, b int
	for a = 0; a < d.k; a++ {
		for b = a + 1; b < d.k; b++ {
			t := d.dist[a*d.k+b]
			if t.I == i || t.J == i {
				return true
			}
		}
	}
	return false
}

// recomputeDistDiam rebuilds every diam and dist witness from scratch.
// Complexity: O(n²).
func (d *Dunn) recomputeDistDiam() {
	var c int
	for c = 0; c < d.k; c++ {
		d.diam[c] = DistTriple{I: -1, J: -1, D: 0}
	}
	var a, b int
	for a = 0; a < d.k; a++ {
		for b = a + 1; b < d.k; b++ {
			d.dist[a*d.k+b] = DistTriple{I: -1, J: -1, D: math.Inf(1)}
		}
	}

	var i, j int
	for i = 0; i < d.n; i++ {
		li := int(d.labels[i])
		for j = i + 1; j < d.n; j++ {
			lj := int(d.labels[j])
			dd := d.dc.D(i, j)
			if li == lj {
				if dd > d.diam[li].D {
					d.diam[li] = DistTriple{I: i, J: j, D: dd}
				}
			} else {
				a2, b2 := li, lj
				if a2 > b2 {
					a2, b2 = b2, a2
				}
				if dd < d.dist[a2*d.k+b2].D {
					d.dist[a2*d.k+b2] = DistTriple{I: i, J: j, D: dd}
				}
			}
		}
	}
}

func (d *Dunn) SetLabels(labels []uint8) error {
	_, err := d.setLabels(labels)
	if err != nil {
		return err
	}
	d.recomputeDistDiam()
	d.lastChanged = false
	return nil
}

func (d *Dunn) Modify(i, j int) error {
	copy(d.lastDiam, d.diam)
	copy(d.lastDist, d.dist)

	needsRecompute := d.isWitness(i)

	_, err := d.modify(i, j)
	if err != nil {
		return err
	}

	if needsRecompute {
		d.recomputeDistDiam()
		d.lastChanged = true
		return nil
	}

	d.lastChanged = false
	var jj int
	for jj = 0; jj < d.n; jj++ {
		if jj == i {
			continue
		}
		lj := int(d.labels[jj])
		dd := d.dc.D(i, jj)
		if lj == j {
			if dd > d.diam[j].D {
				d.diam[j] = DistTriple{I: i, J: jj, D: dd}
				d.lastChanged = true
			}
		} else {
			cur := d.distAt(j, lj)
			if dd < cur.D {
				d.setDist(j, lj, DistTriple{I: i, J: jj, D: dd})
				d.lastChanged = true
			}
		}
	}

	return nil
}

// Undo reverts the label/count change unconditionally, then restores the
// diam/dist witnesses only if the preceding Modify actually changed them —
// preserving the asymmetry that makes undo a genuine no-op on dist/diam
// when nothing tightened.
func (d *Dunn) Undo() error {
	if err := d.base.undo(); err != nil {
		return err
	}
	if d.lastChanged {
		copy(d.diam, d.lastDiam)
		copy(d.dist, d.lastDist)
	}
	return nil
}

// Compute returns sqrt(min inter-cluster distance² / max diameter²).
func (d *Dunn) Compute() float64 {
	minDist := math.Inf(1)
	var a, b int
	for a = 0; a < d.k; a++ {
		for b = a + 1; b < d.k; b++ {
			v := d.dist[a*d.k+b].D
			if v < minDist {
				minDist = v
			}
		}
	}

	maxDiam := 0.0
	var c int
	for c = 0; c < d.k; c++ {
		if d.diam[c].D > maxDiam {
			maxDiam = d.diam[c].D
		}
	}

	return math.Sqrt(minDist / maxDiam)
}

var _ Index = (*Dunn)(nil)
