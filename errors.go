package cvi

import "errors"

// Sentinel errors surfaced at construction and during the set_labels/modify/
// undo/compute lifecycle. Per the package's error-handling design, invalid
// caller input (bad K, out-of-range labels, unknown variant tags, calling
// modify before set_labels or undo without a preceding modify) is reported
// through these rather than a panic: a library must not abort the caller's
// process on bad input it can reject cleanly.
var (
	// ErrNilMatrix is returned when a nil point matrix is supplied.
	ErrNilMatrix = errors.New("cvi: point matrix is nil")

	// ErrInvalidK is returned when K is outside [2, 256].
	ErrInvalidK = errors.New("cvi: K must be in [2, 256]")

	// ErrLabelLength is returned when a labelling's length does not equal n.
	ErrLabelLength = errors.New("cvi: labelling length does not match n")

	// ErrLabelRange is returned when a label value falls outside [0, K).
	ErrLabelRange = errors.New("cvi: label out of range [0, K)")

	// ErrEmptyCluster is returned when set_labels would leave a cluster
	// with zero members, or modify would empty the source cluster.
	ErrEmptyCluster = errors.New("cvi: operation would leave a cluster empty")

	// ErrNotInitialized is returned when modify is called before
	// set_labels has ever succeeded.
	ErrNotInitialized = errors.New("cvi: set_labels has not been called")

	// ErrIndexRange is returned when a point or cluster index passed to
	// modify is out of bounds.
	ErrIndexRange = errors.New("cvi: index out of range")

	// ErrNoOpModify is returned when modify(i, j) is called with L[i] == j.
	ErrNoOpModify = errors.New("cvi: modify target equals current label")

	// ErrUndoNotAllowed is returned when undo is called on an index
	// constructed with allow_undo == false.
	ErrUndoNotAllowed = errors.New("cvi: index was constructed without undo support")

	// ErrNoPendingModify is returned when undo is called without an
	// intervening modify since the last set_labels or undo.
	ErrNoPendingModify = errors.New("cvi: no pending modify to undo")

	// ErrInvalidVariant is returned by the factory for an unrecognised
	// variant tag.
	ErrInvalidVariant = errors.New("cvi: unrecognised variant tag")

	// ErrInvalidM is returned when a neighbourhood size M is <= 0.
	ErrInvalidM = errors.New("cvi: M must be > 0")

	// ErrInvalidDeltaIndex is returned when a Generalized Dunn lowercase
	// or uppercase delta selector is out of its valid range.
	ErrInvalidDeltaIndex = errors.New("cvi: delta selector out of range")

	// ErrInvalidOWA is returned when an OWA operator name is not found in
	// the catalogue.
	ErrInvalidOWA = errors.New("cvi: unrecognised OWA operator")

	// ErrMappingMissing is returned by the external adapter when a
	// new-index key has no corresponding old index in its mapping.
	ErrMappingMissing = errors.New("cvi: external index mapping missing entry")
)
