package tabu

import (
	"math"

	cvi "github.com/gagolews/optim-cvi"
)

// Search runs the single-start hill climb described by the package doc:
// each outer iteration enumerates the neighbourhood (exhaustively, or by
// sampling opts.MaxSamples random (i, j) pairs), probes every candidate
// with idx's modify/compute/undo contract, and commits the best legal,
// non-tabu move found — even if it does not improve on the best score
// seen so far. idx must have been constructed with allow_undo enabled.
func Search(idx cvi.Index, y0 []uint8, opts Options) (Result, error) {
	if err := idx.SetLabels(y0); err != nil {
		return Result{}, err
	}

	n, k := idx.N(), idx.K()
	rng := deriveRNG(opts.Seed, 0)

	y := append([]uint8(nil), y0...)
	bestY := append([]uint8(nil), y0...)
	bestF := idx.Compute()

	tabuSet := make(map[uint64]struct{})
	if !opts.AllowRevisit {
		tabuSet[HashLabels(y0)] = struct{}{}
	}

	exhaustive := opts.MaxSamples <= 0
	noImprovement := opts.MaxIterNoImprovement
	iterations := 0
	var tabuHits int

	for noImprovement > 0 && iterations < opts.MaxIter {
		iterations++

		curBestF := math.Inf(-1)
		curBestI, curBestJ := -1, -1

		if exhaustive {
			var s int
			for s = 0; s < n*k; s++ {
				i, j := s/k, s%k
				r, ok, err := probeMove(idx, y, tabuSet, opts.AllowRevisit, i, j, &tabuHits)
				if err != nil {
					return Result{}, err
				}
				if ok && r > curBestF {
					curBestF, curBestI, curBestJ = r, i, j
				}
			}
		} else {
			var s int
			for s = 0; s < opts.MaxSamples; s++ {
				i := rng.Intn(n)
				j := rng.Intn(k)
				r, ok, err := probeMove(idx, y, tabuSet, opts.AllowRevisit, i, j, &tabuHits)
				if err != nil {
					return Result{}, err
				}
				if ok && r > curBestF {
					curBestF, curBestI, curBestJ = r, i, j
				}
			}
		}

		if curBestI < 0 {
			break // no legal, non-tabu neighbour this round
		}

		if err := idx.Modify(curBestI, curBestJ); err != nil {
			return Result{}, err
		}
		y[curBestI] = uint8(curBestJ)
		if !opts.AllowRevisit {
			tabuSet[HashLabels(y)] = struct{}{}
		}

		if curBestF > bestF {
			bestF = curBestF
			copy(bestY, y)
		} else {
			noImprovement--
		}
	}

	message := "stopped: no legal, non-tabu neighbour found"
	if iterations >= opts.MaxIter {
		message = "stopped: max_iter reached"
	} else if noImprovement <= 0 {
		message = "stopped: max_iter_with_no_improvement reached"
	}

	return Result{
		Par:         bestY,
		Value:       bestF,
		Iterations:  iterations,
		Convergence: 0,
		Message:     message,
	}, nil
}
