package tabu

import (
	"math"

	cvi "github.com/gagolews/optim-cvi"
)

// TurboSearch runs the multi-start variant: for each candidate starting
// labelling in y0 (in order), it skips columns already present in a tabu
// set shared across every start, then runs an always-exhaustive,
// always-tabu-enforced hill climb from that start. The best labelling
// found across every start is returned. idx must have been constructed
// with allow_undo enabled.
//
// Returns ErrNoFeasibleStart if every column is either already tabu or
// never yields a finite score — the Go equivalent of the original source's
// terminal assertion that best_f is never -Inf, since here a bad Y0 is a
// caller error rather than an internal invariant violation.
func TurboSearch(idx cvi.Index, y0 [][]uint8, opts Options) (Result, error) {
	n, k := idx.N(), idx.K()

	tabuSet := make(map[uint64]struct{})
	var tabuHits int

	globalBestF := math.Inf(-1)
	var globalBestY []uint8
	totalIterations := 0

	var col []uint8
	for _, col = range y0 {
		h := HashLabels(col)
		if _, seen := tabuSet[h]; seen {
			tabuHits++
			continue
		}

		if err := idx.SetLabels(col); err != nil {
			continue // not a legal labelling for this index; skip the column
		}
		tabuSet[h] = struct{}{}

		y := append([]uint8(nil), col...)
		bestY := append([]uint8(nil), col...)
		bestF := idx.Compute()

		noImprovement := opts.MaxIterNoImprovement
		iterations := 0

		for noImprovement > 0 && iterations < opts.MaxIter {
			iterations++

			curBestF := math.Inf(-1)
			curBestI, curBestJ := -1, -1

			var s int
			for s = 0; s < n*k; s++ {
				i, j := s/k, s%k
				r, ok, err := probeMove(idx, y, tabuSet, false, i, j, &tabuHits)
				if err != nil {
					return Result{}, err
				}
				if ok && r > curBestF {
					curBestF, curBestI, curBestJ = r, i, j
				}
			}

			if curBestI < 0 || math.IsInf(curBestF, -1) {
				break
			}

			if err := idx.Modify(curBestI, curBestJ); err != nil {
				return Result{}, err
			}
			y[curBestI] = uint8(curBestJ)
			tabuSet[HashLabels(y)] = struct{}{}

			if curBestF > bestF {
				bestF = curBestF
				copy(bestY, y)
			} else {
				noImprovement--
			}

			if math.IsInf(bestF, 1) {
				break
			}
		}

		totalIterations += iterations

		if bestF > globalBestF {
			globalBestF = bestF
			globalBestY = bestY
		}

		if math.IsInf(globalBestF, 1) {
			break
		}
	}

	if globalBestY == nil || math.IsInf(globalBestF, -1) {
		return Result{}, ErrNoFeasibleStart
	}

	return Result{
		Par:         globalBestY,
		Value:       globalBestF,
		Iterations:  totalIterations,
		Convergence: 0,
		Message:     "turbo search completed",
	}, nil
}
