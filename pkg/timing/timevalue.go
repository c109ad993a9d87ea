package timing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TimeValue is an exact point or duration on the timeline, expressed in
// seconds. It wraps a decimal so that repeated additions and offsets do
// not accumulate floating point drift. The zero value is 0 seconds.
//
// Negative values are representable (an offset delta may shift left) but
// are rejected wherever they appear as interval bounds.
type TimeValue struct {
	d decimal.Decimal
}

func FromString(s string) (TimeValue, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return TimeValue{}, fmt.Errorf("invalid time value %q: %w", s, err)
	}
	return TimeValue{d: d}, nil
}

// MustFromString is FromString for literals; it panics on a parse error.
func MustFromString(s string) TimeValue {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func FromSeconds(s int64) TimeValue {
	return TimeValue{d: decimal.NewFromInt(s)}
}

func FromMilliseconds(ms int64) TimeValue {
	return TimeValue{d: decimal.New(ms, -3)}
}

func (v TimeValue) Add(other TimeValue) TimeValue { return TimeValue{d: v.d.Add(other.d)} }

func (v TimeValue) Sub(other TimeValue) TimeValue { return TimeValue{d: v.d.Sub(other.d)} }

// Compare returns -1, 0 or +1.
func (v TimeValue) Compare(other TimeValue) int { return v.d.Cmp(other.d) }

func (v TimeValue) Less(other TimeValue) bool { return v.d.Cmp(other.d) < 0 }

func (v TimeValue) Equal(other TimeValue) bool { return v.d.Cmp(other.d) == 0 }

func (v TimeValue) IsZero() bool { return v.d.IsZero() }

func (v TimeValue) IsNegative() bool { return v.d.IsNegative() }

// String renders the value with its full scale, so "1.480" round-trips
// as "1.480" and not "1.48". The wrapped decimal keeps the parsed
// exponent (arithmetic rescales to the finer operand) but its String
// drops trailing zeros.
func (v TimeValue) String() string {
	if exp := v.d.Exponent(); exp < 0 {
		return v.d.StringFixed(-exp)
	}
	return v.d.String()
}
