package timing

// RelativePosition is the qualitative configuration of an ordered pair of
// intervals, cross-classified by the shape of each operand (point or
// proper interval) and by how their endpoints compare.
type RelativePosition uint8

const (
	// point vs point
	PointPointBefore RelativePosition = iota
	PointPointCoincide
	PointPointAfter
	// point vs interval
	PointIntervalBefore
	PointIntervalAtBegin
	PointIntervalInside
	PointIntervalAtEnd
	PointIntervalAfter
	// interval vs point
	IntervalPointBefore
	IntervalPointAtEnd
	IntervalPointInside
	IntervalPointAtBegin
	IntervalPointAfter
	// interval vs interval
	IntervalsBefore
	IntervalsTouchBefore
	IntervalsOverlapBegin
	IntervalsCoverSameEnd
	IntervalsCover
	IntervalsSameBeginInside
	IntervalsCoincide
	IntervalsSameBeginCover
	IntervalsInside
	IntervalsInsideSameEnd
	IntervalsOverlapEnd
	IntervalsTouchAfter
	IntervalsAfter
)

// RelativePositionOf classifies where other sits relative to i, decided
// purely by endpoint comparisons.
func (i TimeInterval) RelativePositionOf(other TimeInterval) RelativePosition {
	switch {
	case i.HasZeroLength() && other.HasZeroLength():
		switch i.begin.Compare(other.begin) {
		case -1:
			return PointPointBefore
		case 0:
			return PointPointCoincide
		default:
			return PointPointAfter
		}
	case i.HasZeroLength():
		p := i.begin
		switch {
		case p.Less(other.begin):
			return PointIntervalBefore
		case p.Equal(other.begin):
			return PointIntervalAtBegin
		case p.Less(other.end):
			return PointIntervalInside
		case p.Equal(other.end):
			return PointIntervalAtEnd
		default:
			return PointIntervalAfter
		}
	case other.HasZeroLength():
		p := other.begin
		switch {
		case i.end.Less(p):
			return IntervalPointBefore
		case i.end.Equal(p):
			return IntervalPointAtEnd
		case p.Equal(i.begin):
			return IntervalPointAtBegin
		case i.begin.Less(p):
			return IntervalPointInside
		default:
			return IntervalPointAfter
		}
	}
	// both are proper intervals
	switch {
	case i.end.Less(other.begin):
		return IntervalsBefore
	case i.end.Equal(other.begin):
		return IntervalsTouchBefore
	case i.begin.Equal(other.end):
		return IntervalsTouchAfter
	case other.end.Less(i.begin):
		return IntervalsAfter
	}
	// positive-length intersection from here on
	switch cmp := i.begin.Compare(other.begin); {
	case cmp < 0:
		switch i.end.Compare(other.end) {
		case -1:
			return IntervalsOverlapBegin
		case 0:
			return IntervalsCoverSameEnd
		default:
			return IntervalsCover
		}
	case cmp == 0:
		switch i.end.Compare(other.end) {
		case -1:
			return IntervalsSameBeginInside
		case 0:
			return IntervalsCoincide
		default:
			return IntervalsSameBeginCover
		}
	default:
		switch i.end.Compare(other.end) {
		case -1:
			return IntervalsInside
		case 0:
			return IntervalsInsideSameEnd
		default:
			return IntervalsOverlapEnd
		}
	}
}

// IsNonOverlapping reports whether the two intervals are disjoint except
// for at most one shared boundary point. These are the 15 configurations
// a partition of the timeline may contain; every other configuration has
// a positive-length shared region or a point inside an interior.
func (p RelativePosition) IsNonOverlapping() bool {
	switch p {
	case PointPointBefore, PointPointCoincide, PointPointAfter,
		PointIntervalBefore, PointIntervalAtBegin, PointIntervalAtEnd, PointIntervalAfter,
		IntervalPointBefore, IntervalPointAtEnd, IntervalPointAtBegin, IntervalPointAfter,
		IntervalsBefore, IntervalsTouchBefore, IntervalsTouchAfter, IntervalsAfter:
		return true
	}
	return false
}

func (p RelativePosition) String() string {
	switch p {
	case PointPointBefore:
		return "pp-before"
	case PointPointCoincide:
		return "pp-coincide"
	case PointPointAfter:
		return "pp-after"
	case PointIntervalBefore:
		return "pi-before"
	case PointIntervalAtBegin:
		return "pi-at-begin"
	case PointIntervalInside:
		return "pi-inside"
	case PointIntervalAtEnd:
		return "pi-at-end"
	case PointIntervalAfter:
		return "pi-after"
	case IntervalPointBefore:
		return "ip-before"
	case IntervalPointAtEnd:
		return "ip-at-end"
	case IntervalPointInside:
		return "ip-inside"
	case IntervalPointAtBegin:
		return "ip-at-begin"
	case IntervalPointAfter:
		return "ip-after"
	case IntervalsBefore:
		return "ii-before"
	case IntervalsTouchBefore:
		return "ii-touch-before"
	case IntervalsOverlapBegin:
		return "ii-overlap-begin"
	case IntervalsCoverSameEnd:
		return "ii-cover-same-end"
	case IntervalsCover:
		return "ii-cover"
	case IntervalsSameBeginInside:
		return "ii-same-begin-inside"
	case IntervalsCoincide:
		return "ii-coincide"
	case IntervalsSameBeginCover:
		return "ii-same-begin-cover"
	case IntervalsInside:
		return "ii-inside"
	case IntervalsInsideSameEnd:
		return "ii-inside-same-end"
	case IntervalsOverlapEnd:
		return "ii-overlap-end"
	case IntervalsTouchAfter:
		return "ii-touch-after"
	case IntervalsAfter:
		return "ii-after"
	}
	return "unknown"
}
