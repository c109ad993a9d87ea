package syncmap

import (
	"github.com/akki2825/aeneas/pkg/timing"
)

type moveKind uint8

const (
	// moveShift translates a fragment without changing its length
	moveShift moveKind = iota
	// moveEnlarge additionally grows the fragment on the left
	moveEnlarge
)

type pendingMove struct {
	index  int
	kind   moveKind
	amount timing.TimeValue
}

// FixZeroLengthIntervals manufactures a length of offset for every
// zero-length fragment in the half-open index range [minIndex, maxIndex),
// borrowing the time from the fragments immediately following it. A
// non-positive maxIndex selects the whole list.
//
// The repair for one degenerate fragment runs in two passes. The forward
// pass walks right accumulating the slack still owed and a list of
// pending moves: every zero-length fragment on the way needs its own
// offset of manufactured length, every short positive fragment is merely
// shifted. The walk stops at the first fragment long enough to donate the
// whole slack, or at maxIndex, where the slack is taken by extending the
// chain towards the list end instead. The backward pass then replays the
// moves from the donor towards the degenerate fragment, rewriting each
// boundary so the chain stays contiguous.
//
// Note: this assumes the fragments in the range are consecutive.
//
// Positions with no feasible donor chain are skipped without mutation.
// The returned count is the number of zero-length fragments repaired.
func (r *FragmentList[T1]) FixZeroLengthIntervals(offset timing.TimeValue, minIndex, maxIndex int) int {
	if minIndex < 0 {
		minIndex = 0
	}
	if maxIndex <= 0 || maxIndex > len(r.fragments) {
		maxIndex = len(r.fragments)
	}
	fixed := 0
	for i := minIndex; i < maxIndex; i++ {
		if !r.fragments[i].Interval.HasZeroLength() {
			continue
		}
		moves := []pendingMove{{index: i, kind: moveEnlarge, amount: offset}}
		slack := offset
		j := i + 1
		for j < maxIndex && r.fragments[j].Interval.Length().Less(slack) {
			if r.fragments[j].Interval.HasZeroLength() {
				moves = append(moves, pendingMove{index: j, kind: moveEnlarge, amount: offset})
				slack = slack.Add(offset)
			} else {
				moves = append(moves, pendingMove{index: j, kind: moveShift})
			}
			j++
		}
		var currentTime timing.TimeValue
		feasible := false
		if j == maxIndex {
			edge := r.fragments[j-1].Interval.End().Add(slack)
			if r.end == nil || !r.end.Less(edge) {
				currentTime = edge
				feasible = true
			}
		} else if err := r.fragments[j].Interval.Shrink(slack); err == nil {
			currentTime = r.fragments[j].Interval.Begin()
			feasible = true
		}
		if feasible {
			for k := len(moves) - 1; k >= 0; k-- {
				m := moves[k]
				interval := &r.fragments[m.index].Interval
				_ = interval.MoveEndAt(currentTime)
				if m.kind == moveEnlarge {
					_ = interval.Enlarge(m.amount)
					fixed++
				}
				currentTime = interval.Begin()
			}
		}
		// the walked chain has been settled either way
		i = j - 1
	}
	return fixed
}
