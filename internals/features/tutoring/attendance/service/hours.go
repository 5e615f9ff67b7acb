// file: internals/features/tutoring/attendance/service/hours.go
package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Granularity is the billing rounding unit, in minutes.
type Granularity int

const (
	GranularityQuarter Granularity = 15 // nearest 0.25 h
	GranularityHalf    Granularity = 30 // nearest 0.5 h
)

// ParseGranularity reads ATTENDANCE_GRANULARITY ("quarter"|"half").
// Anything else falls back to quarter-hour.
func ParseGranularity(s string) Granularity {
	if strings.EqualFold(strings.TrimSpace(s), "half") {
		return GranularityHalf
	}
	return GranularityQuarter
}

var sixty = decimal.NewFromInt(60)

// ComputeHours derives billable hours from an interval. Open sessions
// bill nothing until they are closed. The elapsed minutes are rounded
// half-up to the granularity, so the result is exact in two decimals.
func ComputeHours(i Interval, g Granularity) decimal.Decimal {
	if i.Open() {
		return decimal.Zero
	}
	minutes := int64(*i.End - i.Start)
	gm := int64(g)
	units := (2*minutes + gm) / (2 * gm) // round half up
	return decimal.NewFromInt(units * gm).Div(sixty)
}
