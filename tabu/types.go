// Package tabu implements the single-swap tabu-like hill-climbing search
// that drives a cvi.Index's modify/compute/undo contract toward a locally
// better labelling.
package tabu

import "errors"

// ErrNoFeasibleStart is returned by TurboSearch when every candidate start
// column is either already tabu or produces a non-finite score, so no
// feasible best labelling exists. The original source treats this as an
// unrecoverable assertion failure; here it is a caller-triggerable
// condition (a bad Y0) and so is a returned error, not a panic.
var ErrNoFeasibleStart = errors.New("tabu: no candidate start yields a finite score")

// Options configures both Search and TurboSearch.
type Options struct {
	// AllowRevisit disables the tabu set entirely when true: the search
	// may revisit any previously seen labelling.
	AllowRevisit bool

	// MaxIterNoImprovement stops the search after this many outer
	// iterations (in total, not necessarily consecutive) with no
	// improvement over the best score found so far; an improving
	// iteration does not reset the count.
	MaxIterNoImprovement int

	// MaxIter is a hard cap on the number of outer iterations.
	MaxIter int

	// MaxSamples, for Search, selects exhaustive neighbourhood
	// enumeration when <= 0, or random sampling of exactly MaxSamples
	// (i, j) pairs per outer iteration otherwise. TurboSearch always
	// enumerates exhaustively regardless of this field.
	MaxSamples int

	// Seed deterministically seeds the random sampler used by Search's
	// stochastic mode.
	Seed uint64

	// Verbose, if a caller wants one, can gate their own progress
	// reporting; the search itself performs no logging.
	Verbose bool
}

// DefaultOptions returns the spec's default tuning: exhaustive search,
// 250 non-improving outer iterations before giving up, a hard ceiling of
// 10000 outer iterations, and a fixed seed for reproducibility.
func DefaultOptions() Options {
	return Options{
		AllowRevisit:         false,
		MaxIterNoImprovement: 250,
		MaxIter:              10000,
		MaxSamples:           0,
		Seed:                 1,
		Verbose:              false,
	}
}

// Result reports the outcome of a Search or TurboSearch run.
type Result struct {
	Par         []uint8
	Value       float64
	Iterations  int
	Convergence int
	Message     string
}
