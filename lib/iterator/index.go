package iterator

// IndexProvider reports the index bounds of an ordered sequence. StartIndex
// may be greater than EndIndex for sequences walked backwards.
type IndexProvider interface {
	StartIndex() int
	EndIndex() int
}

// FixBounds clamps i to [lower, upper].
func FixBounds(i, lower, upper int) int {
	switch {
	case i > upper:
		i = upper
	case i < lower:
		i = lower
	}
	return i
}

type BoundsCheckFunc func(int, int, int) int

// MoveIndex moves idx by delta steps in the direction of the indexer and
// applies the boundary policy cb to the result.
//
// If cb is nil, FixBounds is used.
func MoveIndex(idx, delta int, indexer IndexProvider, cb BoundsCheckFunc) int {
	lower, upper := indexer.StartIndex(), indexer.EndIndex()
	sign := 1
	if upper < lower {
		lower, upper = upper, lower
		sign = -1
	}
	result := idx + sign*delta
	if cb == nil {
		return FixBounds(result, lower, upper)
	}
	return cb(result, lower, upper)
}
