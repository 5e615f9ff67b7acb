package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(t *testing.T, start, end string) Interval {
	t.Helper()
	i, err := NewInterval(start, &end)
	require.NoError(t, err)
	return i
}

func open(t *testing.T, start string) Interval {
	t.Helper()
	i, err := NewInterval(start, nil)
	require.NoError(t, err)
	return i
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityHalf, ParseGranularity("half"))
	assert.Equal(t, GranularityHalf, ParseGranularity(" HALF "))
	assert.Equal(t, GranularityQuarter, ParseGranularity("quarter"))
	assert.Equal(t, GranularityQuarter, ParseGranularity(""))
	assert.Equal(t, GranularityQuarter, ParseGranularity("whatever"))
}

func TestComputeHoursOpenSessionBillsNothing(t *testing.T) {
	got := ComputeHours(open(t, "14:00"), GranularityQuarter)
	assert.True(t, got.IsZero())
}

func TestComputeHoursQuarter(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"10:00", "11:40", "1.75"}, // raw 1.6667 → nearest 0.25
		{"10:00", "11:00", "1"},
		{"10:00", "10:07", "0"},    // 7 min rounds down
		{"10:00", "10:08", "0.25"}, // 8 min is past the 7.5 midpoint
		{"09:00", "09:45", "0.75"},
		{"00:00", "23:59", "24"}, // 1439 min → 95.93 units → 96*15 min
	}
	for _, tc := range cases {
		got := ComputeHours(closed(t, tc.start, tc.end), GranularityQuarter)
		assert.Equal(t, tc.want, got.String(), "%s-%s", tc.start, tc.end)
	}
}

func TestComputeHoursHalf(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"10:00", "11:40", "1.5"}, // raw 1.6667 → nearest 0.5
		{"10:00", "11:45", "2"},   // 105 min sits exactly on 1.75 → half-up
		{"10:00", "10:14", "0"},
		{"10:00", "10:15", "0.5"}, // 15 min is the exact midpoint → half-up
	}
	for _, tc := range cases {
		got := ComputeHours(closed(t, tc.start, tc.end), GranularityHalf)
		assert.Equal(t, tc.want, got.String(), "%s-%s", tc.start, tc.end)
	}
}

func TestComputeHoursIsDeterministic(t *testing.T) {
	i := closed(t, "08:10", "09:50")
	first := ComputeHours(i, GranularityQuarter)
	for n := 0; n < 5; n++ {
		assert.True(t, first.Equal(ComputeHours(i, GranularityQuarter)))
	}
}

func TestComputeHoursNeverNegative(t *testing.T) {
	// sweep a few valid pairs; the interval constructor already rejects
	// end <= start, so everything that reaches the calculator is positive
	for _, g := range []Granularity{GranularityQuarter, GranularityHalf} {
		for _, pair := range [][2]string{{"00:00", "00:01"}, {"12:00", "12:30"}, {"22:15", "23:59"}} {
			got := ComputeHours(closed(t, pair[0], pair[1]), g)
			assert.False(t, got.IsNegative(), "%v %v", pair, g)
		}
	}
}
