package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func current[T comparable](t *testing.T, h *Navigator[T]) T {
	t.Helper()
	v, ok := h.Current()
	assert.True(t, ok, "no current entry")
	return v
}

func TestNavigatorEviction(t *testing.T) {
	h := New[string](nil, 3)
	h.Add("a")
	h.Add("b")
	h.Add("c")
	h.Add("d")

	assert.Equal(t, []string{"b", "c", "d"}, h.History())
	assert.Equal(t, "d", current(t, h))

	h.Add("b")
	assert.Equal(t, []string{"c", "d", "b"}, h.History())
	assert.Equal(t, "b", current(t, h))
}

func TestNavigatorNeverExceedsLimit(t *testing.T) {
	for _, limit := range []int{1, 2, 5, 10} {
		h := New[int](nil, limit)
		for i := 0; i < 50; i++ {
			h.Add(i % 7)
			assert.LessOrEqual(t, len(h.History()), limit)
			assert.Equal(t, i%7, current(t, h))
		}
	}
}

func TestNavigatorInitial(t *testing.T) {
	h := New([]string{"a", "b", "a", "c", "d"}, 3)
	assert.Equal(t, []string{"a", "c", "d"}, h.History())
	assert.Equal(t, "d", current(t, h))
	assert.Equal(t, 3, h.Limit())
	assert.Equal(t, 3, h.Len())
}

func TestNavigatorDefault(t *testing.T) {
	h := NewDefault[int]()
	for i := 0; i < 15; i++ {
		h.Add(i)
	}
	assert.Equal(t, DefaultLimit, h.Limit())
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, h.History())
}

func TestNavigatorZeroLimit(t *testing.T) {
	h := New([]string{"a", "b"}, 0)
	assert.Empty(t, h.History())

	h.Add("c")
	assert.Empty(t, h.History())
	_, ok := h.Current()
	assert.False(t, ok)
}

func TestNavigatorReAddKeepsLength(t *testing.T) {
	h := New([]string{"x", "y", "z"}, 5)
	h.Add("x")
	assert.Equal(t, []string{"y", "z", "x"}, h.History())
}

func TestNavigatorAddIfNotPresent(t *testing.T) {
	h := New([]string{"x", "y", "z"}, 5)
	h.First()

	assert.True(t, h.Contains("y"))
	assert.False(t, h.Contains("w"))

	h.AddIfNotPresent("y")
	assert.Equal(t, []string{"x", "y", "z"}, h.History())
	assert.Equal(t, "x", current(t, h))

	h.AddIfNotPresent("w")
	assert.Equal(t, []string{"x", "y", "z", "w"}, h.History())
	assert.Equal(t, "w", current(t, h))
}

func TestNavigatorPrevious(t *testing.T) {
	h := New([]string{"x", "y", "z"}, 3)

	v, ok := h.Last()
	assert.True(t, ok)
	assert.Equal(t, "z", v)

	v, ok = h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	v, ok = h.Previous()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = h.Previous()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "x", current(t, h))
}

func TestNavigatorNext(t *testing.T) {
	h := New([]string{"x", "y", "z"}, 3)

	v, ok := h.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "z", current(t, h))

	h.First()
	v, ok = h.Next()
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestNavigatorAddResetsCursor(t *testing.T) {
	h := New([]string{"x", "y", "z"}, 10)
	h.First()
	h.Next()

	h.Add("y")
	assert.Equal(t, "y", current(t, h))
	_, ok := h.Next()
	assert.False(t, ok)
}

func TestNavigatorEmpty(t *testing.T) {
	h := NewDefault[string]()

	for name, move := range map[string]func() (string, bool){
		"current":  h.Current,
		"first":    h.First,
		"last":     h.Last,
		"next":     h.Next,
		"previous": h.Previous,
		"parent":   h.Parent,
	} {
		_, ok := move()
		assert.False(t, ok, name)
	}
	assert.Empty(t, h.History())
}

func TestNavigatorParent(t *testing.T) {
	h := New([]int{1, 2, 3}, 3)
	_, ok := h.Parent()
	assert.False(t, ok)
	h.Previous()
	_, ok = h.Parent()
	assert.False(t, ok)
}

func TestNavigatorHistoryIsASnapshot(t *testing.T) {
	h := New([]string{"a", "b"}, 3)
	snap := h.History()
	h.Add("c")
	assert.Equal(t, []string{"a", "b"}, snap)
}

func TestNavigatorInitialDuplicatesKeepLastPosition(t *testing.T) {
	h := New([]string{"a", "b", "a", "c"}, 10)
	assert.Equal(t, []string{"b", "a", "c"}, h.History())
	assert.Equal(t, "c", current(t, h))
}
