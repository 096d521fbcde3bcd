package cvi

// Adapter presents an externally supplied CVI under the same Index
// contract while optionally translating sample indices through a new→old
// mapping and carrying integer sample weights. An *external* CVI judges a
// labelling against a reference that was built over a different, often
// smaller, sample space than the caller's.
type Adapter interface {
	Index
	SetLabelsWithWeights(labels []uint8, weights []int, mapping map[int]int) error
	ModifyWithWeight(i, j, weight int, mapping map[int]int) error
	LabelTranslated(i int, mapping map[int]int) (uint8, error)
}

// InternalAdapter wraps an Index that already shares the caller's sample
// space. It ignores weights and the mapping entirely and delegates every
// call straight through, matching the original source's internal decorator.
type InternalAdapter struct {
	Index
}

// NewInternalAdapter wraps idx as a pass-through Adapter.
func NewInternalAdapter(idx Index) *InternalAdapter {
	return &InternalAdapter{Index: idx}
}

func (a *InternalAdapter) SetLabelsWithWeights(labels []uint8, weights []int, mapping map[int]int) error {
	return a.Index.SetLabels(labels)
}

func (a *InternalAdapter) ModifyWithWeight(i, j, weight int, mapping map[int]int) error {
	return a.Index.Modify(i, j)
}

func (a *InternalAdapter) LabelTranslated(i int, mapping map[int]int) (uint8, error) {
	return a.Index.Label(i), nil
}

var _ Adapter = (*InternalAdapter)(nil)

// ExternalAdapter wraps an externally supplied Index whose sample space is
// indexed differently from the caller's: every sample index the caller
// supplies is a "new" index translated through mapping into the wrapped
// index's "old" index space before use. Weights are recorded but are the
// caller's concern to interpret; the wrapped Index's own contract does not
// consume them.
type ExternalAdapter struct {
	Index
	weights []int
}

// NewExternalAdapter wraps idx as an index-translating Adapter.
func NewExternalAdapter(idx Index) *ExternalAdapter {
	return &ExternalAdapter{Index: idx}
}

func (a *ExternalAdapter) SetLabelsWithWeights(labels []uint8, weights []int, mapping map[int]int) error {
	translated := make([]uint8, a.Index.N())
	var i int
	for i = 0; i < len(labels); i++ {
		old, ok := mapping[i]
		if !ok {
			return ErrMappingMissing
		}
		translated[old] = labels[i]
	}
	a.weights = append([]int(nil), weights...)
	return a.Index.SetLabels(translated)
}

func (a *ExternalAdapter) ModifyWithWeight(i, j, weight int, mapping map[int]int) error {
	old, ok := mapping[i]
	if !ok {
		return ErrMappingMissing
	}
	return a.Index.Modify(old, j)
}

func (a *ExternalAdapter) LabelTranslated(i int, mapping map[int]int) (uint8, error) {
	old, ok := mapping[i]
	if !ok {
		return 0, ErrMappingMissing
	}
	return a.Index.Label(old), nil
}

var _ Adapter = (*ExternalAdapter)(nil)
