package cvi

import (
	"math"

	"github.com/gagolews/optim-cvi/matrix"
)

// GeneralizedDunn is the Dunn family parameterised by a lowercase
// inter-cluster dissimilarity delta (1..6) and an uppercase intra-cluster
// dispersion Delta (1..3): min_{k<l} delta(k,l) / max_k Delta(k). Only
// delta5 (mean point-to-centroid distance) maintains incremental state
// across modify/undo, following the original source precisely; every other
// delta/Delta choice is cheap enough to recompute in full on each Compute.
type GeneralizedDunn struct {
	*base
	dc        *matrix.EuclideanDistance
	centroid  *centroidState // nil when neither delta nor Delta needs it
	lowercase int            // 1..6
	uppercase int            // 1..3

	distSums     []float64 // delta5 only: per-cluster sum of point-to-centroid distances
	lastDistSums []float64
	d5Pending    bool
}

func areCentroidsNeeded(lowercase, uppercase int) bool {
	return lowercase == 4 || lowercase == 5 || lowercase == 6 || uppercase == 3
}

// NewGeneralizedDunn constructs a Generalized Dunn index over x with k
// clusters, selecting lowercase delta in [1,6] and uppercase Delta in [1,3].
func NewGeneralizedDunn(x matrix.Matrix, k, lowercase, uppercase int, allowUndo bool) (*GeneralizedDunn, error) {
	if lowercase < 1 || lowercase > 6 || uppercase < 1 || uppercase > 3 {
		return nil, ErrInvalidDeltaIndex
	}
	b, err := newBase(x, k, allowUndo)
	if err != nil {
		return nil, err
	}
	dc, err := matrix.NewEuclideanDistance(x, true)
	if err != nil {
		return nil, err
	}

	g := &GeneralizedDunn{base: b, dc: dc, lowercase: lowercase, uppercase: uppercase}
	if areCentroidsNeeded(lowercase, uppercase) {
		g.centroid = newCentroidState(x, k)
	}
	if lowercase == 5 {
		g.distSums = make([]float64, k)
		g.lastDistSums = make([]float64, k)
	}

	return g, nil
}

func (g *GeneralizedDunn) SetLabels(labels []uint8) error {
	own, err := g.setLabels(labels)
	if err != nil {
		return err
	}
	if g.centroid != nil {
		g.centroid.rebuild(own, g.counts)
	}
	if g.lowercase == 5 {
		g.rebuildDistSums()
	}
	return nil
}

func (g *GeneralizedDunn) rebuildDistSums() {
	var c int
	for c = 0; c < g.k; c++ {
		g.distSums[c] = 0
	}
	var i, u int
	for i = 0; i < g.n; i++ {
		lbl := int(g.labels[i])
		var ss float64
		for u = 0; u < g.centroid.d; u++ {
			xv, _ := g.x.At(i, u)
			diff := xv - g.centroid.at(lbl, u)
			ss += diff * diff
		}
		g.distSums[lbl] += math.Sqrt(ss)
	}
	g.d5Pending = false
}

// updateDistSums recomputes distSums[oldC] and distSums[newC] from scratch
// by scanning every point once (O(n)), restricted to the two touched
// cluster identities rather than O(n·K). Must run after the centroid has
// already been shifted to its post-modify position.
func (g *GeneralizedDunn) updateDistSums(oldC, newC int) {
	copy(g.lastDistSums, g.distSums)
	g.distSums[oldC] = 0
	g.distSums[newC] = 0

	var i, u int
	for i = 0; i < g.n; i++ {
		lbl := int(g.labels[i])
		if lbl != oldC && lbl != newC {
			continue
		}
		var ss float64
		for u = 0; u < g.centroid.d; u++ {
			xv, _ := g.x.At(i, u)
			diff := xv - g.centroid.at(lbl, u)
			ss += diff * diff
		}
		g.distSums[lbl] += math.Sqrt(ss)
	}
	g.d5Pending = true
}

func (g *GeneralizedDunn) Modify(i, j int) error {
	old, err := g.modify(i, j)
	if err != nil {
		return err
	}

	if g.centroid != nil {
		g.centroid.update(i, int(old), j, g.counts[old], g.counts[j])
	}
	if g.lowercase == 5 {
		g.updateDistSums(int(old), j)
	}

	return nil
}

func (g *GeneralizedDunn) Undo() error {
	if err := g.base.undo(); err != nil {
		return err
	}
	if g.centroid != nil {
		g.centroid.undo()
	}
	if g.lowercase == 5 && g.d5Pending {
		copy(g.distSums, g.lastDistSums)
		g.d5Pending = false
	}
	return nil
}

func (g *GeneralizedDunn) delta(k, l int) float64 {
	switch g.lowercase {
	case 1:
		return g.deltaExtreme(k, l, true)
	case 2:
		return g.deltaExtreme(k, l, false)
	case 3:
		return g.deltaMean(k, l)
	case 4:
		return g.deltaCentroidDist(k, l)
	case 5:
		return (g.distSums[k] + g.distSums[l]) / float64(g.counts[k]+g.counts[l])
	case 6:
		return g.deltaMaxToOtherCentroid(k, l)
	}
	return math.NaN()
}

func (g *GeneralizedDunn) deltaExtreme(k, l int, wantMin bool) float64 {
	var best float64
	if wantMin {
		best = math.Inf(1)
	} else {
		best = math.Inf(-1)
	}
	var i, j int
	for i = 0; i < g.n; i++ {
		if int(g.labels[i]) != k {
			continue
		}
		for j = 0; j < g.n; j++ {
			if int(g.labels[j]) != l {
				continue
			}
			d := g.dc.Dist(i, j)
			if wantMin && d < best {
				best = d
			} else if !wantMin && d > best {
				best = d
			}
		}
	}
	return best
}

func (g *GeneralizedDunn) deltaMean(k, l int) float64 {
	var sum float64
	var cnt int
	var i, j int
	for i = 0; i < g.n; i++ {
		if int(g.labels[i]) != k {
			continue
		}
		for j = 0; j < g.n; j++ {
			if int(g.labels[j]) != l {
				continue
			}
			sum += g.dc.Dist(i, j)
			cnt++
		}
	}
	return sum / float64(cnt)
}

func (g *GeneralizedDunn) deltaCentroidDist(k, l int) float64 {
	var ss float64
	var u int
	for u = 0; u < g.centroid.d; u++ {
		diff := g.centroid.at(k, u) - g.centroid.at(l, u)
		ss += diff * diff
	}
	return math.Sqrt(ss)
}

func (g *GeneralizedDunn) deltaMaxToOtherCentroid(k, l int) float64 {
	best := math.Inf(-1)
	var i, u int
	for i = 0; i < g.n; i++ {
		lbl := int(g.labels[i])
		var target int
		switch lbl {
		case k:
			target = l
		case l:
			target = k
		default:
			continue
		}
		var ss float64
		for u = 0; u < g.centroid.d; u++ {
			xv, _ := g.x.At(i, u)
			diff := xv - g.centroid.at(target, u)
			ss += diff * diff
		}
		d := math.Sqrt(ss)
		if d > best {
			best = d
		}
	}
	return best
}

func (g *GeneralizedDunn) bigDelta(k int) float64 {
	switch g.uppercase {
	case 1:
		return g.diam(k)
	case 2:
		return g.meanIntra(k)
	case 3:
		return 2 * g.meanToCentroid(k)
	}
	return math.NaN()
}

func (g *GeneralizedDunn) diam(k int) float64 {
	var best float64
	var i, j int
	for i = 0; i < g.n; i++ {
		if int(g.labels[i]) != k {
			continue
		}
		for j = i + 1; j < g.n; j++ {
			if int(g.labels[j]) != k {
				continue
			}
			d := g.dc.Dist(i, j)
			if d > best {
				best = d
			}
		}
	}
	return best
}

func (g *GeneralizedDunn) meanIntra(k int) float64 {
	var sum float64
	var cnt int
	var i, j int
	for i = 0; i < g.n; i++ {
		if int(g.labels[i]) != k {
			continue
		}
		for j = i + 1; j < g.n; j++ {
			if int(g.labels[j]) != k {
				continue
			}
			sum += g.dc.Dist(i, j)
			cnt++
		}
	}
	if cnt == 0 {
		return 0
	}
	return sum / float64(cnt)
}

func (g *GeneralizedDunn) meanToCentroid(k int) float64 {
	var sum float64
	var i, u int
	for i = 0; i < g.n; i++ {
		if int(g.labels[i]) != k {
			continue
		}
		var ss float64
		for u = 0; u < g.centroid.d; u++ {
			xv, _ := g.x.At(i, u)
			diff := xv - g.centroid.at(k, u)
			ss += diff * diff
		}
		sum += math.Sqrt(ss)
	}
	return sum / float64(g.counts[k])
}

// Compute returns min_{k<l} delta(k,l) / max_k Delta(k).
// Complexity: O(K²·n²) in the worst case (delta1-3), O(K²·d) for delta4,
// O(1) for delta5 given its incrementally maintained sums.
func (g *GeneralizedDunn) Compute() float64 {
	minDelta := math.Inf(1)
	var k, l int
	for k = 0; k < g.k; k++ {
		for l = k + 1; l < g.k; l++ {
			d := g.delta(k, l)
			if d < minDelta {
				minDelta = d
			}
		}
	}

	maxBigDelta := math.Inf(-1)
	for k = 0; k < g.k; k++ {
		d := g.bigDelta(k)
		if d > maxBigDelta {
			maxBigDelta = d
		}
	}

	return minDelta / maxBigDelta
}

var _ Index = (*GeneralizedDunn)(nil)
