package tabu

import cvi "github.com/gagolews/optim-cvi"

// probeMove tries reassigning y[i] to j via idx's modify/compute/undo
// contract without committing the change. It returns ok=false (and no
// error) for any move the neighbourhood definition itself excludes: a
// no-op, a move that would empty a cluster, or one landing on a tabu
// labelling. A non-nil error means Undo itself failed, which is fatal:
// the index's state can no longer be trusted to reflect y.
func probeMove(idx cvi.Index, y []uint8, tabuSet map[uint64]struct{}, allowRevisit bool, i, j int, tabuHits *int) (score float64, ok bool, err error) {
	if int(y[i]) == j || idx.Count(int(y[i])) <= 1 {
		return 0, false, nil
	}

	if !allowRevisit {
		candidate := make([]uint8, len(y))
		copy(candidate, y)
		candidate[i] = uint8(j)
		if _, seen := tabuSet[HashLabels(candidate)]; seen {
			*tabuHits++
			return 0, false, nil
		}
	}

	if err := idx.Modify(i, j); err != nil {
		return 0, false, nil
	}
	r := idx.Compute()
	if err := idx.Undo(); err != nil {
		return 0, false, err
	}

	return r, true, nil
}
