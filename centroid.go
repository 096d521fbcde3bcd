package cvi

import "github.com/gagolews/optim-cvi/matrix"

// centroidState incrementally maintains the K×D matrix of per-cluster means
// required by the centroid-based variants (Calinski-Harabasz,
// Davies-Bouldin, WCSS, Ball-Hall) and by the centroid-needing Generalized
// Dunn delta/Delta choices. Invariant: centroids[j,·] equals the mean of
// X[i,·] over points currently labelled j.
type centroidState struct {
	x         matrix.Matrix
	d, k      int
	centroids []float64 // flat k*d row-major

	pending    bool
	oldCluster int
	newCluster int
	oldRow     []float64
	newRow     []float64
}

func newCentroidState(x matrix.Matrix, k int) *centroidState {
	d := x.Cols()
	return &centroidState{
		x:         x,
		d:         d,
		k:         k,
		centroids: make([]float64, k*d),
		oldRow:    make([]float64, d),
		newRow:    make([]float64, d),
	}
}

// rebuild recomputes every centroid from scratch given the current
// labelling and cluster counts. Called by set_labels.
func (c *centroidState) rebuild(labels []uint8, counts []int) {
	var idx int
	for idx = 0; idx < len(c.centroids); idx++ {
		c.centroids[idx] = 0
	}

	var i, u int
	for i = 0; i < len(labels); i++ {
		off := int(labels[i]) * c.d
		for u = 0; u < c.d; u++ {
			v, _ := c.x.At(i, u)
			c.centroids[off+u] += v
		}
	}

	var j int
	for j = 0; j < c.k; j++ {
		cnt := counts[j]
		if cnt == 0 {
			continue
		}
		off := j * c.d
		inv := 1.0 / float64(cnt)
		for u = 0; u < c.d; u++ {
			c.centroids[off+u] *= inv
		}
	}

	c.pending = false
}

// update applies the incremental centroid shift for point i moving from
// oldCluster to newCluster. countAfterOld and countAfterNew are the
// cluster cardinalities after base.modify has already applied the count
// change (so countAfterOld == old cardinality - 1, countAfterNew == new
// cardinality + 1). The prior two rows are snapshotted for undo.
func (c *centroidState) update(i, oldCluster, newCluster, countAfterOld, countAfterNew int) {
	c.pending = true
	c.oldCluster = oldCluster
	c.newCluster = newCluster

	offOld := oldCluster * c.d
	offNew := newCluster * c.d
	copy(c.oldRow, c.centroids[offOld:offOld+c.d])
	copy(c.newRow, c.centroids[offNew:offNew+c.d])

	countBeforeOld := countAfterOld + 1
	countBeforeNew := countAfterNew - 1

	var u int
	for u = 0; u < c.d; u++ {
		xi, _ := c.x.At(i, u)

		sumOld := c.centroids[offOld+u]*float64(countBeforeOld) - xi
		if countAfterOld > 0 {
			c.centroids[offOld+u] = sumOld / float64(countAfterOld)
		} else {
			c.centroids[offOld+u] = 0
		}

		sumNew := c.centroids[offNew+u]*float64(countBeforeNew) + xi
		c.centroids[offNew+u] = sumNew / float64(countAfterNew)
	}
}

// undo restores the two centroid rows touched by the most recent update.
func (c *centroidState) undo() {
	if !c.pending {
		return
	}
	offOld := c.oldCluster * c.d
	offNew := c.newCluster * c.d
	copy(c.centroids[offOld:offOld+c.d], c.oldRow)
	copy(c.centroids[offNew:offNew+c.d], c.newRow)
	c.pending = false
}

// at returns the u-th coordinate of cluster j's centroid.
func (c *centroidState) at(j, u int) float64 {
	return c.centroids[j*c.d+u]
}
