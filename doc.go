// Package cvi computes internal cluster validity indices over labelled
// Euclidean point sets and exposes the incremental modify/undo contract
// the sibling tabu package drives during local search.
//
// # Overview
//
// X (an n×d matrix.Dense, immutable for the life of an index) and a
// labelling L (one byte per point, values in [0, K)) together determine a
// scalar quality score via Compute. Each concrete variant — Calinski-
// Harabasz, Davies-Bouldin, Silhouette/SilhouetteW, Dunn, WCSS/BallHall,
// Gamma, WCNN, DuNNOWA, GeneralizedDunn — maintains its own sufficient
// statistics (centroids, nearest-neighbour tables, pairwise-distance
// orderings, diameters) so that Modify/Undo run in O(1) or O(n) rather than
// recomputing Compute from scratch.
//
// New selects a variant by string tag; every variant can also be
// constructed directly (NewCalinskiHarabasz, NewDunn, ...) when its
// specific parameters (M, OWA operator names, delta/Delta selectors) are
// known at compile time.
//
// # Lifecycle
//
// An index is bound to one X and one K for its lifetime:
//
//	idx, _ := cvi.New("CalinskiHarabasz", x, k, true)
//	_ = idx.SetLabels(labels)
//	score := idx.Compute()
//	_ = idx.Modify(i, j)
//	probed := idx.Compute()
//	_ = idx.Undo() // score == idx.Compute() again, up to floating-point tolerance
//
// Two consecutive Undo calls without an intervening Modify are not
// supported. The adapter.go types (InternalAdapter, ExternalAdapter) let an
// externally supplied Index be judged against a differently indexed sample
// space without changing this contract.
package cvi
