// Package matrix provides the row-major Matrix view and the Euclidean
// distance cache that the cvi and tabu packages build on.
//
// Dense is a flat-buffer implementation of Matrix, the same storage layout
// used throughout this module for point sets, centroids, and distance
// caches. EuclideanDistance wraps a Matrix and answers squared pairwise
// distance queries, optionally precomputing the full n×n matrix when the
// point count is small enough to make that worthwhile.
package matrix
