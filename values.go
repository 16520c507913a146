package wheel

import "slices"

// ValueList is the ordered, immutable set of labels shown by a picker. It is
// replaced wholesale, never edited in place.
type ValueList struct {
	labels []string
}

// NewValueList copies labels into a ValueList. It fails with ErrNoValues when
// labels is empty, since every index computation is modulo the length.
func NewValueList(labels []string) (ValueList, error) {
	if len(labels) == 0 {
		return ValueList{}, ErrNoValues
	}
	return ValueList{labels: slices.Clone(labels)}, nil
}

// Len returns the number of labels.
func (v ValueList) Len() int {
	return len(v.labels)
}

// At returns the label at index, or "" when index is out of range.
func (v ValueList) At(index int) string {
	if index < 0 || index >= len(v.labels) {
		return ""
	}
	return v.labels[index]
}

// Labels returns a copy of the labels.
func (v ValueList) Labels() []string {
	return slices.Clone(v.labels)
}

// Equal reports whether both lists hold the same labels in the same order.
func (v ValueList) Equal(other ValueList) bool {
	return slices.Equal(v.labels, other.labels)
}
