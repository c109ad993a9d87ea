package syncmap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akki2825/aeneas/pkg/timing"
)

var (
	ErrInvalidBounds   = errors.New("invalid list bounds")
	ErrOutOfBounds     = errors.New("interval outside list bounds")
	ErrOverlap         = errors.New("interval overlaps another already present interval")
	ErrNotSorted       = errors.New("list is not guaranteed sorted")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// FragmentList is an ordered sequence of fragments partitioning a span of
// the timeline, with some constraints:
//
//   - the begin and end time of each fragment stay within the list begin
//     and end times;
//   - two fragments may only touch at a single boundary point;
//   - the list is kept sorted.
//
// All validation happens before any mutation, so a failed call leaves the
// list untouched. MoveEnd and FixZeroLengthIntervals are best-effort and
// report their outcome instead of returning an error.
//
// A FragmentList is a plain mutable structure with no internal locking;
// callers sharing one across goroutines must serialize access.
type FragmentList[T1 any] struct {
	begin     *timing.TimeValue
	end       *timing.TimeValue
	fragments []Fragment[T1]
	sorted    bool
}

// New creates an empty, sorted list. A nil begin or end leaves that side
// unbounded.
func New[T1 any](begin, end *timing.TimeValue) (*FragmentList[T1], error) {
	r := &FragmentList[T1]{sorted: true}
	if begin != nil {
		if begin.IsNegative() {
			return nil, fmt.Errorf("%w: begin %s is negative", ErrInvalidBounds, begin)
		}
		b := *begin
		r.begin = &b
	}
	if begin != nil && end != nil {
		if end.Less(*begin) {
			return nil, fmt.Errorf("%w: begin %s is bigger than end %s", ErrInvalidBounds, begin, end)
		}
	}
	if end != nil {
		e := *end
		r.end = &e
	}
	return r, nil
}

func (r *FragmentList[T1]) Len() int {
	return len(r.fragments)
}

// Begin returns the lower bound of the list, if set.
func (r *FragmentList[T1]) Begin() (timing.TimeValue, bool) {
	if r.begin == nil {
		return timing.TimeValue{}, false
	}
	return *r.begin, true
}

// End returns the upper bound of the list, if set.
func (r *FragmentList[T1]) End() (timing.TimeValue, bool) {
	if r.end == nil {
		return timing.TimeValue{}, false
	}
	return *r.end, true
}

func (r *FragmentList[T1]) Get(index int) (Fragment[T1], error) {
	if index < 0 || index >= len(r.fragments) {
		return Fragment[T1]{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return r.fragments[index], nil
}

func (r *FragmentList[T1]) Set(index int, f Fragment[T1]) error {
	if index < 0 || index >= len(r.fragments) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	r.fragments[index] = f
	return nil
}

// checkBoundaries verifies that the interval of the given fragment lies
// within the bounds of the list.
func (r *FragmentList[T1]) checkBoundaries(f Fragment[T1]) error {
	if r.begin != nil && f.Interval.Begin().Less(*r.begin) {
		return fmt.Errorf("%w: interval %s begins before list begin %s", ErrOutOfBounds, f.Interval, r.begin)
	}
	if r.end != nil && r.end.Less(f.Interval.End()) {
		return fmt.Errorf("%w: interval %s ends after list end %s", ErrOutOfBounds, f.Interval, r.end)
	}
	return nil
}

// checkOverlap verifies that the interval of the given fragment does not
// overlap any existing interval except at a boundary point.
//
// This scans every stored fragment: the non-overlap test is not monotonic
// in the endpoints, so a bisection over begins alone could miss a
// covering interval. Callers inserting n fragments pay O(n^2) in total.
func (r *FragmentList[T1]) checkOverlap(f Fragment[T1]) error {
	for i := range r.fragments {
		if !r.fragments[i].Interval.RelativePositionOf(f.Interval).IsNonOverlapping() {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, f.Interval, r.fragments[i].Interval)
		}
	}
	return nil
}

// Add inserts the given fragment. With sortList true the list must
// currently be guaranteed sorted; the fragment is checked for overlap
// against every existing fragment and inserted at its ordered position,
// to the right of any equal-ordered fragment. With sortList false the
// fragment is appended unchecked and the sorted guarantee is dropped
// until Sort is called.
func (r *FragmentList[T1]) Add(f Fragment[T1], sortList bool) error {
	if err := r.checkBoundaries(f); err != nil {
		return err
	}
	if !sortList {
		r.fragments = append(r.fragments, f)
		r.sorted = false
		return nil
	}
	if !r.sorted {
		return fmt.Errorf("%w: unable to add with sort", ErrNotSorted)
	}
	if err := r.checkOverlap(f); err != nil {
		return err
	}
	pos := sort.Search(len(r.fragments), func(i int) bool {
		return f.Less(r.fragments[i])
	})
	r.fragments = append(r.fragments, Fragment[T1]{})
	copy(r.fragments[pos+1:], r.fragments[pos:])
	r.fragments[pos] = f
	return nil
}

// Sort sorts the fragments if they are not guaranteed sorted already,
// then validates that no adjacent pair overlaps. On an overlap the data
// stays sorted but the guarantee flag stays false, signalling that a
// prior unchecked append corrupted the list.
func (r *FragmentList[T1]) Sort() error {
	if r.sorted {
		return nil
	}
	sort.SliceStable(r.fragments, func(i, j int) bool {
		return r.fragments[i].Less(r.fragments[j])
	})
	for i := 0; i+1 < len(r.fragments); i++ {
		if !r.fragments[i].Interval.RelativePositionOf(r.fragments[i+1].Interval).IsNonOverlapping() {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, r.fragments[i].Interval, r.fragments[i+1].Interval)
		}
	}
	r.sorted = true
	return nil
}

// IsGuaranteedSorted reports whether the list is known to be sorted. It
// returns false after an Add with sortList false until a successful Sort.
func (r *FragmentList[T1]) IsGuaranteedSorted() bool {
	return r.sorted
}

// MoveEnd relocates the boundary shared by fragments index and index+1 to
// value, writing both the end of the left fragment and the begin of the
// right one. It reports whether the boundary moved: when value is outside
// the list bounds, either index is invalid, value is past the end of the
// right fragment, value is before the begin of the left fragment, or the
// two fragments are not boundary-adjacent, nothing is mutated and MoveEnd
// returns false.
func (r *FragmentList[T1]) MoveEnd(index int, value timing.TimeValue) bool {
	if value.IsNegative() {
		return false
	}
	if r.begin != nil && value.Less(*r.begin) {
		return false
	}
	if r.end != nil && r.end.Less(value) {
		return false
	}
	if index < 0 || index+1 >= len(r.fragments) {
		return false
	}
	current := &r.fragments[index].Interval
	next := &r.fragments[index+1].Interval
	if next.End().Less(value) || value.Less(current.Begin()) {
		return false
	}
	if !current.IsAdjacentBefore(*next) {
		return false
	}
	// both writes validated above, neither can fail
	_ = current.SetEnd(value)
	_ = next.SetBegin(value)
	return true
}

// Fragments iterates through the fragments in their current stored order.
// The iterator works on a snapshot and is unaffected by later mutations.
func (r *FragmentList[T1]) Fragments() *Iterator[T1] {
	fragments := make([]Fragment[T1], len(r.fragments))
	copy(fragments, r.fragments)
	return &Iterator[T1]{current: -1, fragments: fragments}
}

// All returns a copy of the fragments in their current stored order.
func (r *FragmentList[T1]) All() Fragments[T1] {
	fragments := make(Fragments[T1], len(r.fragments))
	copy(fragments, r.fragments)
	return fragments
}

// Offset moves every interval in the list by delta. Each interval is
// clamped into the list bounds independently and kept non-negative, so a
// shift towards a bound may collapse the fragments nearest to it.
func (r *FragmentList[T1]) Offset(delta timing.TimeValue) {
	for i := range r.fragments {
		r.fragments[i].Interval.Offset(delta, false, r.begin, r.end)
	}
}

// Clone returns a deep copy of the list.
// - Note: the payloads are not deep copied
func (r *FragmentList[T1]) Clone() *FragmentList[T1] {
	out := &FragmentList[T1]{sorted: r.sorted}
	if r.begin != nil {
		b := *r.begin
		out.begin = &b
	}
	if r.end != nil {
		e := *r.end
		out.end = &e
	}
	out.fragments = make([]Fragment[T1], len(r.fragments))
	copy(out.fragments, r.fragments)
	return out
}
