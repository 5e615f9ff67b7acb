// file: internals/features/tutoring/attendance/service/interval.go
package service

import (
	"mathify_backend/internals/helpers/clock"
)

// Interval is one wall-clock span inside a single calendar day.
// End == nil means the session is still running (open session).
type Interval struct {
	Start clock.Clock
	End   *clock.Clock
}

// NewInterval parses and validates raw "HH:mm" punches.
// endRaw == nil builds an open interval.
func NewInterval(startRaw string, endRaw *string) (Interval, error) {
	start, err := clock.Parse(startRaw)
	if err != nil {
		return Interval{}, err
	}
	if endRaw == nil {
		return Interval{Start: start}, nil
	}
	end, err := clock.Parse(*endRaw)
	if err != nil {
		return Interval{}, err
	}
	if err := clock.ValidateOrder(start, end); err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: &end}, nil
}

func (i Interval) Open() bool { return i.End == nil }
