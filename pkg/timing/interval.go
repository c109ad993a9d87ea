package timing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInterval = errors.New("invalid interval")

// TimeInterval is the span [begin, end] with begin <= end and both bounds
// non-negative. An interval with begin == end is a point.
type TimeInterval struct {
	begin TimeValue
	end   TimeValue
}

func NewInterval(begin, end TimeValue) (TimeInterval, error) {
	if begin.IsNegative() {
		return TimeInterval{}, fmt.Errorf("%w: begin %s is negative", ErrInvalidInterval, begin)
	}
	if end.Less(begin) {
		return TimeInterval{}, fmt.Errorf("%w: end %s is before begin %s", ErrInvalidInterval, end, begin)
	}
	return TimeInterval{begin: begin, end: end}, nil
}

// ParseInterval parses a "begin-end" pair, e.g. "1.480-2.720".
func ParseInterval(s string) (TimeInterval, error) {
	h := strings.IndexByte(s, '-')
	if h == -1 {
		return TimeInterval{}, fmt.Errorf("%w: no hyphen in %q", ErrInvalidInterval, s)
	}
	begin, err := FromString(s[:h])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	end, err := FromString(s[h+1:])
	if err != nil {
		return TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	return NewInterval(begin, end)
}

// MustParseInterval is ParseInterval for literals; it panics on error.
func MustParseInterval(s string) TimeInterval {
	i, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return i
}

func (i TimeInterval) Begin() TimeValue { return i.begin }

func (i TimeInterval) End() TimeValue { return i.end }

func (i TimeInterval) Length() TimeValue { return i.end.Sub(i.begin) }

func (i TimeInterval) HasZeroLength() bool { return i.begin.Equal(i.end) }

// IsAdjacentBefore reports whether i ends exactly where other begins.
func (i TimeInterval) IsAdjacentBefore(other TimeInterval) bool {
	return i.end.Equal(other.begin)
}

// Less orders intervals by begin, then by end.
func (i TimeInterval) Less(other TimeInterval) bool {
	if cmp := i.begin.Compare(other.begin); cmp != 0 {
		return cmp < 0
	}
	return i.end.Less(other.end)
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", i.begin, i.end)
}

func (i *TimeInterval) SetBegin(value TimeValue) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: begin %s is negative", ErrInvalidInterval, value)
	}
	if i.end.Less(value) {
		return fmt.Errorf("%w: begin %s is after end %s", ErrInvalidInterval, value, i.end)
	}
	i.begin = value
	return nil
}

func (i *TimeInterval) SetEnd(value TimeValue) error {
	if value.Less(i.begin) {
		return fmt.Errorf("%w: end %s is before begin %s", ErrInvalidInterval, value, i.begin)
	}
	i.end = value
	return nil
}

// Offset shifts both endpoints by delta. Unless allowNegative is set the
// endpoints are clamped at zero; they are further clamped into
// [minBegin, maxEnd] for whichever of the two bounds is non-nil. The
// clamps keep begin <= end, so a shift past a bound collapses the
// interval to a point at that bound.
func (i *TimeInterval) Offset(delta TimeValue, allowNegative bool, minBegin, maxEnd *TimeValue) {
	begin := i.begin.Add(delta)
	end := i.end.Add(delta)
	if minBegin != nil {
		if begin.Less(*minBegin) {
			begin = *minBegin
		}
		if end.Less(*minBegin) {
			end = *minBegin
		}
	}
	if maxEnd != nil {
		if maxEnd.Less(begin) {
			begin = *maxEnd
		}
		if maxEnd.Less(end) {
			end = *maxEnd
		}
	}
	if !allowNegative {
		var zero TimeValue
		if begin.IsNegative() {
			begin = zero
		}
		if end.IsNegative() {
			end = zero
		}
	}
	i.begin = begin
	i.end = end
}

// Shrink moves begin forward by amount, giving that much length away.
func (i *TimeInterval) Shrink(amount TimeValue) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: shrink amount %s is negative", ErrInvalidInterval, amount)
	}
	if i.Length().Less(amount) {
		return fmt.Errorf("%w: shrink amount %s exceeds length %s", ErrInvalidInterval, amount, i.Length())
	}
	i.begin = i.begin.Add(amount)
	return nil
}

// Enlarge moves begin backward by amount, growing the interval on the
// left.
func (i *TimeInterval) Enlarge(amount TimeValue) error {
	begin := i.begin.Sub(amount)
	if begin.IsNegative() {
		return fmt.Errorf("%w: enlarging by %s pushes begin below zero", ErrInvalidInterval, amount)
	}
	i.begin = begin
	return nil
}

// MoveEndAt translates the interval so that end lands on value; the
// length is preserved.
func (i *TimeInterval) MoveEndAt(value TimeValue) error {
	begin := value.Sub(i.Length())
	if begin.IsNegative() {
		return fmt.Errorf("%w: moving end to %s pushes begin below zero", ErrInvalidInterval, value)
	}
	i.begin = begin
	i.end = value
	return nil
}
