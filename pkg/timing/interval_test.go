package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInterval(t *testing.T) {
	cases := map[string]struct {
		interval    string
		expectedErr bool
	}{
		"Normal":         {interval: "1.480-2.720"},
		"Point":          {interval: "1.480-1.480"},
		"FromZero":       {interval: "0.000-0.001"},
		"NoHyphen":       {interval: "1.480", expectedErr: true},
		"NotANumber":     {interval: "a-2.720", expectedErr: true},
		"EndBeforeBegin": {interval: "2.720-1.480", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			i, err := ParseInterval(tc.interval)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.interval, i.String())
		})
	}
}

func TestNewIntervalNegativeBegin(t *testing.T) {
	_, err := NewInterval(MustFromString("-1.000"), MustFromString("2.000"))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestLength(t *testing.T) {
	i := MustParseInterval("1.480-2.720")
	assert.Equal(t, "1.240", i.Length().String())
	assert.False(t, i.HasZeroLength())
	assert.True(t, MustParseInterval("1.480-1.480").HasZeroLength())
}

func TestIsAdjacentBefore(t *testing.T) {
	assert.True(t, MustParseInterval("0.000-1.000").IsAdjacentBefore(MustParseInterval("1.000-2.000")))
	assert.False(t, MustParseInterval("0.000-1.000").IsAdjacentBefore(MustParseInterval("1.500-2.000")))
}

func TestLess(t *testing.T) {
	cases := map[string]struct {
		a        string
		b        string
		expected bool
	}{
		"ByBegin":  {a: "0.000-1.000", b: "0.500-1.000", expected: true},
		"TieByEnd": {a: "0.000-1.000", b: "0.000-2.000", expected: true},
		"Equal":    {a: "0.000-1.000", b: "0.000-1.000", expected: false},
		"Greater":  {a: "0.500-1.000", b: "0.000-2.000", expected: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MustParseInterval(tc.a).Less(MustParseInterval(tc.b)))
		})
	}
}

func TestOffset(t *testing.T) {
	minBegin := MustFromString("0.000")
	maxEnd := MustFromString("2.000")
	cases := map[string]struct {
		interval string
		delta    string
		expected string
	}{
		"Within":        {interval: "0.000-1.000", delta: "0.500", expected: "0.500-1.500"},
		"ClampAtEnd":    {interval: "1.000-2.000", delta: "1.000", expected: "2.000-2.000"},
		"PartialAtEnd":  {interval: "0.500-1.500", delta: "1.000", expected: "1.500-2.000"},
		"NegativeDelta": {interval: "0.500-1.500", delta: "-0.250", expected: "0.250-1.250"},
		"ClampAtBegin":  {interval: "0.000-1.000", delta: "-2.000", expected: "0.000-0.000"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			i := MustParseInterval(tc.interval)
			i.Offset(MustFromString(tc.delta), false, &minBegin, &maxEnd)
			assert.Equal(t, tc.expected, i.String())
		})
	}
}

func TestShrink(t *testing.T) {
	i := MustParseInterval("1.000-3.000")
	assert.NoError(t, i.Shrink(MustFromString("0.500")))
	assert.Equal(t, "1.500-3.000", i.String())

	assert.ErrorIs(t, i.Shrink(MustFromString("2.000")), ErrInvalidInterval)
	assert.Equal(t, "1.500-3.000", i.String())
}

func TestEnlarge(t *testing.T) {
	i := MustParseInterval("1.000-3.000")
	assert.NoError(t, i.Enlarge(MustFromString("0.500")))
	assert.Equal(t, "0.500-3.000", i.String())

	assert.ErrorIs(t, i.Enlarge(MustFromString("1.000")), ErrInvalidInterval)
	assert.Equal(t, "0.500-3.000", i.String())
}

func TestMoveEndAt(t *testing.T) {
	i := MustParseInterval("1.000-3.000")
	assert.NoError(t, i.MoveEndAt(MustFromString("4.000")))
	assert.Equal(t, "2.000-4.000", i.String())

	assert.ErrorIs(t, i.MoveEndAt(MustFromString("1.000")), ErrInvalidInterval)
	assert.Equal(t, "2.000-4.000", i.String())
}
