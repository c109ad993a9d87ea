package syncmap

import (
	"github.com/akki2825/aeneas/pkg/timing"
)

// Fragment pairs one time interval with an opaque payload, typically a
// single aligned unit of a transcript. Fragments are values; a list owns
// its fragments exclusively and never shares them with another list.
type Fragment[T1 any] struct {
	Interval timing.TimeInterval
	Payload  T1
}

func NewFragment[T1 any](interval timing.TimeInterval, payload T1) Fragment[T1] {
	return Fragment[T1]{
		Interval: interval,
		Payload:  payload,
	}
}

// Less orders fragments by interval begin, then by end.
func (r Fragment[T1]) Less(other Fragment[T1]) bool {
	return r.Interval.Less(other.Interval)
}

type Fragments[T1 any] []Fragment[T1]
