// Package cvi computes internal cluster validity indices over labelled
// Euclidean point sets and drives a tabu-like hill-climbing search over
// labellings via the sibling tabu package.
//
// An Index is constructed once from a fixed point matrix and cluster count,
// then driven through set_labels → (modify → compute → undo)* → compute by
// the caller or by tabu.Search/tabu.TurboSearch. Every concrete variant
// (Calinski-Harabasz, Davies-Bouldin, Silhouette, Dunn, WCSS, Ball-Hall,
// Gamma, WCNN, DuNN-OWA, Generalized Dunn) implements Index and maintains
// its own incremental sufficient statistics so that modify/undo run in O(1)
// or O(n) rather than recomputing compute() from scratch.
package cvi

// DistTriple remembers a witness pair (I, J) and the distance D realising
// an extremal (min or max) value tracked by an index, e.g. Dunn's per
// cluster-pair minimum inter-cluster distance or per-cluster diameter.
type DistTriple struct {
	I, J int
	D    float64
}

// Index is the contract shared by every concrete cluster validity index.
// K, N, Label, Labels and Count are read-only accessors; SetLabels,
// Modify, Undo and Compute form the mutation lifecycle described in the
// package doc comment.
type Index interface {
	// SetLabels installs a fresh labelling and rebuilds all derived state.
	// len(labels) must equal N(); every entry must lie in [0, K()); every
	// cluster must end up with at least one member.
	SetLabels(labels []uint8) error

	// Modify reassigns point i to cluster j, updating labels, counts and
	// every index-specific derived statistic. Fails if i or j is out of
	// range, if labels[i] already equals j, or if the source cluster would
	// become empty.
	Modify(i, j int) error

	// Undo reverts the single most recent Modify. Fails if the index was
	// constructed with allow_undo == false, or no Modify is pending.
	Undo() error

	// Compute returns the current scalar score. Higher is better.
	Compute() float64

	// Label returns the current cluster assignment of point i.
	Label(i int) uint8

	// Labels returns a copy of the current labelling.
	Labels() []uint8

	// Count returns the current cardinality of cluster j.
	Count(j int) int

	// K returns the number of clusters.
	K() int

	// N returns the number of points.
	N() int
}
