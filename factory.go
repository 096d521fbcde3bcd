package cvi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gagolews/optim-cvi/matrix"
)

// New selects and constructs a concrete Index from a variant tag:
//
//	CalinskiHarabasz, DaviesBouldin, Silhouette, SilhouetteW, Dunn, WCSS,
//	BallHall, Gamma                    — no further parameters
//	WCNN_M                             — M integer > 0, e.g. "WCNN_5"
//	DuNN_M_NUM_DEN                     — M integer > 0 and two OWA names
//	                                      drawn from the ResolveOWA catalogue,
//	                                      e.g. "DuNN_5_Mean_Min"
//	GDunn_dX_DY                        — X in [1,6], Y in [1,3],
//	                                      e.g. "GDunn_d4_D1"
//
// An unrecognised tag, or a recognised tag with malformed parameters,
// returns ErrInvalidVariant. A well-formed GDunn tag whose selectors are
// out of range returns ErrInvalidDeltaIndex, and a DuNN tag naming an
// unknown OWA operator returns ErrInvalidOWA.
func New(variant string, x matrix.Matrix, k int, allowUndo bool) (Index, error) {
	switch variant {
	case "CalinskiHarabasz":
		return NewCalinskiHarabasz(x, k, allowUndo)
	case "DaviesBouldin":
		return NewDaviesBouldin(x, k, allowUndo)
	case "Silhouette":
		return NewSilhouette(x, k, allowUndo)
	case "SilhouetteW":
		return NewSilhouetteWeighted(x, k, allowUndo)
	case "Dunn":
		return NewDunn(x, k, allowUndo)
	case "WCSS":
		return NewWCSS(x, k, allowUndo)
	case "BallHall":
		return NewBallHall(x, k, allowUndo)
	case "Gamma":
		return NewGamma(x, k, allowUndo)
	}

	switch {
	case strings.HasPrefix(variant, "WCNN_"):
		m, err := strconv.Atoi(strings.TrimPrefix(variant, "WCNN_"))
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
		}
		return NewWCNN(x, k, m, allowUndo)

	case strings.HasPrefix(variant, "DuNN_"):
		parts := strings.SplitN(strings.TrimPrefix(variant, "DuNN_"), "_", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
		}
		m, err := strconv.Atoi(parts[0])
		if err != nil || m <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
		}
		return NewDuNNOWA(x, k, m, parts[1], parts[2], allowUndo)

	case strings.HasPrefix(variant, "GDunn_"):
		parts := strings.SplitN(strings.TrimPrefix(variant, "GDunn_"), "_", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
		}
		lower, ok1 := parseDeltaSelector(parts[0], 'd')
		upper, ok2 := parseDeltaSelector(parts[1], 'D')
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
		}
		return NewGeneralizedDunn(x, k, lower, upper, allowUndo)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, variant)
}

// parseDeltaSelector parses a token like "d4" or "D1" into its numeric
// selector, requiring the given case-sensitive prefix letter.
func parseDeltaSelector(tok string, prefix byte) (int, bool) {
	if len(tok) < 2 || tok[0] != prefix {
		return 0, false
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
