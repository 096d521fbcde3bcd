package cvi

import "github.com/gagolews/optim-cvi/matrix"

// nnTable holds each point's M nearest neighbours, computed exactly once at
// construction and never touched by modify/undo: neighbour identity depends
// only on X, never on the labelling.
type nnTable struct {
	n, m int
	ind  []int // flat n*m row-major, ind[i*m+k] is the k-th neighbour of i
}

// newNNTable computes the exact M-nearest-neighbour table over d. M is
// clamped to min(n-1, requestedM). Complexity: O(n²·M) selection over the
// O(n) candidate distances from each point.
func newNNTable(d *matrix.EuclideanDistance, n, requestedM int) *nnTable {
	m := requestedM
	if m > n-1 {
		m = n - 1
	}
	if m < 0 {
		m = 0
	}

	t := &nnTable{n: n, m: m, ind: make([]int, n*m)}
	if m == 0 {
		return t
	}

	cand := make([]int, n-1)
	dist := make([]float64, n-1)

	var i, k int
	for i = 0; i < n; i++ {
		c := 0
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			cand[c] = k
			dist[c] = d.D(i, k)
			c++
		}

		sel := 0
		for sel < m {
			best := sel
			var s int
			for s = sel + 1; s < len(cand); s++ {
				if dist[s] < dist[best] {
					best = s
				}
			}
			cand[sel], cand[best] = cand[best], cand[sel]
			dist[sel], dist[best] = dist[best], dist[sel]
			t.ind[i*m+sel] = cand[sel]
			sel++
		}
	}

	return t
}

// At returns the k-th nearest neighbour of point i (0 <= k < M()).
func (t *nnTable) At(i, k int) int {
	return t.ind[i*t.m+k]
}

// M returns the clamped neighbourhood size actually in use.
func (t *nnTable) M() int {
	return t.m
}
