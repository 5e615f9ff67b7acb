package clock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want Clock
	}{
		{"00:00", 0},
		{"09:05", 9*60 + 5},
		{"14:00", 14 * 60},
		{"23:59", 23*60 + 59},
		{"10:30:00", 10*60 + 30}, // TIME column round-trip
	}
	for _, tc := range cases {
		got, err := Parse(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseRejectsBadFormat(t *testing.T) {
	for _, raw := range []string{"", "9:30", "24:00", "12:60", "12.30", "ab:cd", "12:3", "119:30"} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrFormat, raw)
	}
}

func TestValidateOrder(t *testing.T) {
	start, _ := Parse("10:00")
	end, _ := Parse("11:00")
	assert.NoError(t, ValidateOrder(start, end))

	// equal times = zero-length session, rejected
	assert.ErrorIs(t, ValidateOrder(start, start), ErrOrder)
	// end before start is never "next day"
	assert.ErrorIs(t, ValidateOrder(end, start), ErrOrder)
}

func TestStringAndJSON(t *testing.T) {
	c, _ := Parse("07:45")
	assert.Equal(t, "07:45", c.String())

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"07:45"`, string(b))

	var back Clock
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, back)
}

func TestScanAndValue(t *testing.T) {
	var c Clock
	require.NoError(t, c.Scan("16:15:00"))
	assert.Equal(t, "16:15", c.String())

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "16:15:00", v)
}
