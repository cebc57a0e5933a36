package iterator

type backward[T any] struct {
	data  []T
	index int
}

func (it *backward[T]) Next() bool {
	it.index--
	return it.index >= 0
}

func (it *backward[T]) Value() T {
	return it.data[it.index]
}

func (it *backward[T]) StartIndex() int {
	return len(it.data) - 1
}

func (it *backward[T]) EndIndex() int {
	return 0
}

type forward[T any] struct {
	data  []T
	index int
}

func (it *forward[T]) Next() bool {
	it.index++
	return it.index < len(it.data)
}

func (it *forward[T]) Value() T {
	return it.data[it.index]
}

func (it *forward[T]) StartIndex() int {
	return 0
}

func (it *forward[T]) EndIndex() int {
	return len(it.data) - 1
}
