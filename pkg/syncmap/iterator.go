package syncmap

type Iterator[T1 any] struct {
	current   int
	fragments []Fragment[T1]
}

func (r *Iterator[T1]) Value() Fragment[T1] {
	return r.fragments[r.current]
}

func (r *Iterator[T1]) Index() int {
	return r.current
}

func (r *Iterator[T1]) Next() bool {
	r.current++
	return r.current < len(r.fragments)
}

// IsAdjacent reports whether the previous fragment ends exactly where the
// current one begins.
func (r *Iterator[T1]) IsAdjacent() bool {
	if r.current < 1 {
		return false
	}
	return r.fragments[r.current-1].Interval.IsAdjacentBefore(r.fragments[r.current].Interval)
}
