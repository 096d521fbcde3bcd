package cvi

import (
	"sort"

	"github.com/gagolews/optim-cvi/matrix"
)

// Gamma is the Baker-Hubert concordance index. All n(n-1)/2 sample pairs
// are sorted once by distance at construction (sort order is label-
// independent, a pure function of X); compute() sweeps the fixed order
// each time, classifying pairs as same- or different-cluster under the
// current labelling and tallying concordant/discordant comparisons.
// No incremental update is possible across modify/undo: compute() is
// always an O(n²) sweep.
type Gamma struct {
	*base
	pairI, pairJ []int // ascending-distance order, fixed for the index's lifetime
}

// NewGamma constructs a Gamma index over x with k clusters.
func NewGamma(x matrix.Matrix, k int, allowUndo bool) (*Gamma, error) {
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	dc, err := matrix.NewEuclideanDistance(x, true)
	if err != nil {
		return nil, err
	}

	n := b.n
	pairI := make([]int, 0, n*(n-1)/2)
	pairJ := make([]int, 0, n*(n-1)/2)
	dist := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			pairI = append(pairI, i)
			pairJ = append(pairJ, j)
			dist = append(dist, dc.D(i, j))
		}
	}

	order := make([]int, len(dist))
	for i = range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return dist[order[a]] < dist[order[b]] })

	sortedI := make([]int, len(order))
	sortedJ := make([]int, len(order))
	for idx, o := range order {
		sortedI[idx] = pairI[o]
		sortedJ[idx] = pairJ[o]
	}

	return &Gamma{base: b, pairI: sortedI, pairJ: sortedJ}, nil
}

func (g *Gamma) SetLabels(labels []uint8) error {
	_, err := g.setLabels(labels)
	return err
}

func (g *Gamma) Modify(i, j int) error {
	_, err := g.modify(i, j)
	return err
}

func (g *Gamma) Undo() error {
	return g.base.undo()
}

// Compute sweeps the fixed ascending-distance pair order, classifying each
// pair as same-cluster ("0") or different-cluster ("1") under the current
// labelling. A same-cluster pair at this point in the sweep is discordant
// with every different-cluster pair already seen (smaller distance, but
// between clusters); a different-cluster pair is concordant with every
// same-cluster pair already seen. Complexity: O(n²).
func (g *Gamma) Compute() float64 {
	var nc, nd float64
	var zerosSeen, onesSeen float64

	var idx int
	for idx = 0; idx < len(g.pairI); idx++ {
		i, j := g.pairI[idx], g.pairJ[idx]
		if g.labels[i] == g.labels[j] {
			nd += onesSeen
			zerosSeen++
		} else {
			nc += zerosSeen
			onesSeen++
		}
	}

	r := (nc - nd) / (nc + nd)
	if r > 1+1e-9 || r < -1-1e-9 {
		panic("cvi: Gamma result outside [-1, 1]")
	}
	return r
}

var _ Index = (*Gamma)(nil)
