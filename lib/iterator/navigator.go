package iterator

// Navigator is a stateful cursor over a sequence. Every method returns the
// element under the cursor once it has moved, and false when there is no
// such element.
type Navigator[T any] interface {
	Current() (T, bool)
	First() (T, bool)
	Last() (T, bool)
	Next() (T, bool)
	Previous() (T, bool)
	// Parent is meant for hierarchical cursors. Linear ones always return
	// false.
	Parent() (T, bool)
}

// ArrayNavigator is a Navigator over a fixed slice. The slice is copied on
// creation and never modified afterwards.
//
// ArrayNavigator is not safe for concurrent use.
type ArrayNavigator[T any] struct {
	elements []T
	index    int
}

var _ Navigator[int] = (*ArrayNavigator[int])(nil)

func NewArrayNavigator[T any](elements []T) *ArrayNavigator[T] {
	data := make([]T, len(elements))
	copy(data, elements)
	return &ArrayNavigator[T]{elements: data}
}

func (nav *ArrayNavigator[T]) Len() int {
	return len(nav.elements)
}

func (nav *ArrayNavigator[T]) StartIndex() int {
	return 0
}

func (nav *ArrayNavigator[T]) EndIndex() int {
	return len(nav.elements) - 1
}

func (nav *ArrayNavigator[T]) Current() (T, bool) {
	if len(nav.elements) == 0 {
		var zero T
		return zero, false
	}
	return nav.elements[nav.index], true
}

func (nav *ArrayNavigator[T]) First() (T, bool) {
	nav.index = 0
	return nav.Current()
}

func (nav *ArrayNavigator[T]) Last() (T, bool) {
	if len(nav.elements) > 0 {
		nav.index = len(nav.elements) - 1
	}
	return nav.Current()
}

// Next moves the cursor one step towards the end. At the last element the
// cursor stays where it is and false is returned.
func (nav *ArrayNavigator[T]) Next() (T, bool) {
	return nav.move(1)
}

// Previous moves the cursor one step towards the start. At the first element
// the cursor stays where it is and false is returned.
func (nav *ArrayNavigator[T]) Previous() (T, bool) {
	return nav.move(-1)
}

func (nav *ArrayNavigator[T]) Parent() (T, bool) {
	var zero T
	return zero, false
}

func (nav *ArrayNavigator[T]) move(delta int) (T, bool) {
	var zero T
	if len(nav.elements) == 0 {
		return zero, false
	}
	idx := MoveIndex(nav.index, delta, nav, FixBounds)
	if idx == nav.index {
		return zero, false
	}
	nav.index = idx
	return nav.elements[idx], true
}
