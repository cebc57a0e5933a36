package iterator

// Iterator walks a slice once. If Next() returns true, the element under the
// iterator can be read with Value().
//
// StartIndex() is the index of the first element returned and EndIndex() the
// index of the last one.
type Iterator[T any] interface {
	Next() bool
	Value() T
	StartIndex() int
	EndIndex() int
}

// NewIterator creates an iterator over data. By default the iterator starts
// at the end of the slice so that the newest history entries come first.
// When reverse is true, the slice is walked from index 0 upwards.
func NewIterator[T any](data []T, reverse bool) Iterator[T] {
	if reverse {
		return &forward[T]{data: data, index: -1}
	}
	return &backward[T]{data: data, index: len(data)}
}
