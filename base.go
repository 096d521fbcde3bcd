package cvi

import "github.com/gagolews/optim-cvi/matrix"

// maxK is the hard ceiling on cluster count: one byte per label (spec's
// bounded-K design note), also a correctness precondition enforced at
// construction.
const maxK = 256

// pendingModify snapshots the single most recent label/count change so
// base.undo can revert it. active is false once no modify is outstanding
// (after set_labels or after a prior undo).
type pendingModify struct {
	active   bool
	i        int
	oldLabel uint8
	newLabel uint8
}

// base owns the state common to every concrete index variant: the point
// matrix, current labelling, cluster counts, and the allow_undo scaffolding
// for the single outstanding modify. Concrete variants embed base and layer
// their own derived statistics (centroids, NN tables, distance caches) on
// top, snapshotting and restoring them alongside base's own undo.
//
// Stage 1 (Validate): construction rejects a nil matrix or K outside
// [2, 256].
// Stage 2 (Execute): set_labels/modify/undo mutate labels and counts.
// Stage 3 (Finalize): accessors expose read-only views of the current state.
type base struct {
	x         matrix.Matrix
	n, k      int
	allowUndo bool
	labels    []uint8
	counts    []int
	pending   pendingModify
}

// newBase validates construction parameters and allocates the base state
// shared by every concrete variant.
func newBase(x matrix.Matrix, k int, allowUndo bool) (*base, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}
	if k < 2 || k > maxK {
		return nil, ErrInvalidK
	}

	return &base{
		x:         x,
		n:         x.Rows(),
		k:         k,
		allowUndo: allowUndo,
		counts:    make([]int, k),
	}, nil
}

// setLabels validates and installs a fresh labelling, recomputing cluster
// counts from scratch and clearing any pending modify. Returns the
// validated label slice (a private copy) so callers can rebuild their own
// derived state from it.
func (b *base) setLabels(labels []uint8) ([]uint8, error) {
	if len(labels) != b.n {
		return nil, ErrLabelLength
	}

	counts := make([]int, b.k)
	var i int
	for i = 0; i < len(labels); i++ {
		if int(labels[i]) >= b.k {
			return nil, ErrLabelRange
		}
		counts[labels[i]]++
	}
	var j int
	for j = 0; j < b.k; j++ {
		if counts[j] == 0 {
			return nil, ErrEmptyCluster
		}
	}

	own := make([]uint8, len(labels))
	copy(own, labels)
	b.labels = own
	b.counts = counts
	b.pending = pendingModify{}

	return own, nil
}

// modify applies the label/count bookkeeping shared by every variant and
// returns the point's prior label so the caller can update its own derived
// statistics before or after this call as its update rule requires.
func (b *base) modify(i, j int) (old uint8, err error) {
	if b.labels == nil {
		return 0, ErrNotInitialized
	}
	if i < 0 || i >= b.n {
		return 0, ErrIndexRange
	}
	if j < 0 || j >= b.k {
		return 0, ErrIndexRange
	}

	old = b.labels[i]
	if int(old) == j {
		return 0, ErrNoOpModify
	}
	if b.counts[old] < 2 {
		return 0, ErrEmptyCluster
	}

	b.pending = pendingModify{active: true, i: i, oldLabel: old, newLabel: uint8(j)}
	b.labels[i] = uint8(j)
	b.counts[old]--
	b.counts[j]++

	return old, nil
}

// undo reverts the label/count change made by the most recent modify.
// Concrete variants call this after (or before, per their own ordering
// needs) restoring their own derived-state snapshot.
func (b *base) undo() error {
	if !b.allowUndo {
		return ErrUndoNotAllowed
	}
	if !b.pending.active {
		return ErrNoPendingModify
	}

	p := b.pending
	b.labels[p.i] = p.oldLabel
	b.counts[p.newLabel]--
	b.counts[p.oldLabel]++
	b.pending = pendingModify{}

	return nil
}

func (b *base) Label(i int) uint8 {
	return b.labels[i]
}

func (b *base) Labels() []uint8 {
	out := make([]uint8, len(b.labels))
	copy(out, b.labels)
	return out
}

func (b *base) Count(j int) int {
	return b.counts[j]
}

func (b *base) K() int {
	return b.k
}

func (b *base) N() int {
	return b.n
}
