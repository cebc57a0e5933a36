package history

import (
	"git.sr.ht/~rjarry/histnav/lib/iterator"
	"git.sr.ht/~rjarry/histnav/lib/log"
)

// DefaultLimit is the number of entries kept by NewDefault.
const DefaultLimit = 10

var logger = log.NewLogger("history", 2)

// Navigator is a bounded history of unique values with a browsing cursor.
//
// Adding a value moves it to the newest position, drops the oldest entries
// beyond the limit and puts the cursor back on the newest entry. Moving the
// cursor never changes the history.
//
// Navigator is not safe for concurrent use.
type Navigator[T comparable] struct {
	history *Set[T]
	limit   int
	nav     *iterator.ArrayNavigator[T]
}

var _ iterator.Navigator[string] = (*Navigator[string])(nil)

// New creates a navigator over initial, oldest first. Duplicates in initial
// keep the position of their last occurrence. At most limit entries are kept.
func New[T comparable](initial []T, limit int) *Navigator[T] {
	h := &Navigator[T]{
		history: NewSet(initial...),
		limit:   limit,
	}
	h.onChange()
	return h
}

// NewDefault is New with DefaultLimit.
func NewDefault[T comparable](initial ...T) *Navigator[T] {
	return New(initial, DefaultLimit)
}

// History returns a copy of the entries, oldest first.
func (h *Navigator[T]) History() []T {
	return h.history.Items()
}

func (h *Navigator[T]) Len() int {
	return h.history.Len()
}

func (h *Navigator[T]) Limit() int {
	return h.limit
}

func (h *Navigator[T]) Contains(t T) bool {
	return h.history.Contains(t)
}

// Add makes t the newest entry and the current one.
func (h *Navigator[T]) Add(t T) {
	h.history.Touch(t)
	h.onChange()
}

// AddIfNotPresent adds t unless it is already in the history. An existing
// entry keeps its position and the cursor does not move.
func (h *Navigator[T]) AddIfNotPresent(t T) {
	if !h.history.Contains(t) {
		h.Add(t)
	}
}

// Next moves towards the newest entry. Past the end, the cursor is left on
// the newest entry and false is returned.
func (h *Navigator[T]) Next() (T, bool) {
	if v, ok := h.nav.Next(); ok {
		return v, true
	}
	h.nav.Last()
	var zero T
	return zero, false
}

// Previous moves towards the oldest entry. Past the start, the cursor is
// left on the oldest entry and false is returned.
func (h *Navigator[T]) Previous() (T, bool) {
	if v, ok := h.nav.Previous(); ok {
		return v, true
	}
	h.nav.First()
	var zero T
	return zero, false
}

func (h *Navigator[T]) Current() (T, bool) {
	return h.nav.Current()
}

func (h *Navigator[T]) First() (T, bool) {
	return h.nav.First()
}

func (h *Navigator[T]) Last() (T, bool) {
	return h.nav.Last()
}

// Parent always returns false, history is flat.
func (h *Navigator[T]) Parent() (T, bool) {
	var zero T
	return zero, false
}

func (h *Navigator[T]) onChange() {
	if n := h.history.Trim(h.limit); n > 0 {
		logger.Tracef("dropped %d oldest entries (limit %d)", n, h.limit)
	}
	h.nav = iterator.NewArrayNavigator(h.history.Items())
	h.nav.Last()
}
