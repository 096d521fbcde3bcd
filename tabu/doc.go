// Package tabu implements a single-swap tabu-like local search over
// cluster labellings, built entirely on a cvi.Index's set_labels/modify/
// compute/undo contract. It never inspects an index's internal state: it
// proposes (i, j) reassignments, probes each with Modify/Compute/Undo, and
// commits the best legal, non-tabu candidate per outer iteration.
//
// Search is the single-start entry point (exhaustive or randomly sampled
// neighbourhood, optional tabu set). TurboSearch is the multi-start
// variant: it tries each column of a candidate-start matrix in turn,
// always exhaustive and always tabu-enforced, sharing one tabu set across
// every start so the same labelling is never explored twice.
package tabu
