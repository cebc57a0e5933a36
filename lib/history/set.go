package history

import "container/list"

// Set holds unique values ordered by recency, oldest first. Touching a value
// moves it to the newest position.
//
// Values are compared with ==. Interface type arguments must hold comparable
// dynamic values or Touch panics, as with any map key.
type Set[T comparable] struct {
	order *list.List
	index map[T]*list.Element
}

// NewSet returns a set built by touching each entry in order: the position
// of a value is that of its last occurrence.
func NewSet[T comparable](entries ...T) *Set[T] {
	s := &Set[T]{}
	s.Reset(entries)
	return s
}

// Reset replaces the contents of the set with entries, with the same
// semantics as NewSet.
func (s *Set[T]) Reset(entries []T) {
	s.order = list.New()
	s.index = make(map[T]*list.Element, len(entries))
	for _, e := range entries {
		s.Touch(e)
	}
}

// Touch inserts t as the newest value, moving it there if already present.
func (s *Set[T]) Touch(t T) {
	if e, ok := s.index[t]; ok {
		s.order.MoveToBack(e)
		return
	}
	s.index[t] = s.order.PushBack(t)
}

func (s *Set[T]) Contains(t T) bool {
	_, ok := s.index[t]
	return ok
}

func (s *Set[T]) Len() int {
	return s.order.Len()
}

// Items returns a copy of the values, oldest first.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, s.order.Len())
	for e := s.order.Front(); e != nil; e = e.Next() {
		items = append(items, e.Value.(T))
	}
	return items
}

// Trim drops the oldest values until at most limit remain and returns how
// many were dropped. A limit below 1 empties the set.
func (s *Set[T]) Trim(limit int) int {
	if limit < 0 {
		limit = 0
	}
	dropped := 0
	for s.order.Len() > limit {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.index, oldest.Value.(T))
		dropped++
	}
	return dropped
}
