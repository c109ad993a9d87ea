package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	cases := map[string]struct {
		value    TimeValue
		expected string
	}{
		"TrailingZero":     {value: MustFromString("1.480"), expected: "1.480"},
		"Zero":             {value: MustFromString("0.000"), expected: "0.000"},
		"Negative":         {value: MustFromString("-0.250"), expected: "-0.250"},
		"Integer":          {value: MustFromString("2"), expected: "2"},
		"ZeroValue":        {value: TimeValue{}, expected: "0"},
		"FromSeconds":      {value: FromSeconds(2), expected: "2"},
		"FromMilliseconds": {value: FromMilliseconds(1500), expected: "1.500"},
		"SubKeepsScale":    {value: MustFromString("2.720").Sub(MustFromString("1.480")), expected: "1.240"},
		"AddFinerOperand":  {value: MustFromString("0.0005").Add(MustFromString("0.001")), expected: "0.0015"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.000", "1.480", "2.720", "0.001", "10.000"} {
		assert.Equal(t, s, MustFromString(s).String())
	}
}

func TestCompare(t *testing.T) {
	// scale does not affect ordering
	assert.True(t, MustFromString("1.5").Equal(MustFromString("1.500")))
	assert.Equal(t, 0, MustFromString("0").Compare(MustFromString("0.000")))
	assert.True(t, MustFromString("1.480").Less(MustFromString("1.5")))
	assert.True(t, MustFromString("-0.001").IsNegative())
	assert.True(t, MustFromString("0.000").IsZero())
}
