// file: internals/features/tutoring/attendance/service/admission.go
package service

import (
	"github.com/google/uuid"
)

// Session is the slice of an attendance record the admission check needs.
type Session struct {
	ID       uuid.UUID
	Interval Interval
}

// Admit decides whether a candidate interval may be persisted for a
// student/day, given every other session already on that day.
//
// Rules:
//   - at most one open session per student per day;
//   - a closed candidate entered while a session is running must sit
//     fully before the running session's start — touching its start is
//     also rejected (the stricter variant);
//   - closed sessions must not overlap; end == other's start is fine.
//
// excludeID skips the record being updated so it never blocks itself.
func Admit(cand Interval, existing []Session, excludeID uuid.UUID) error {
	for _, s := range existing {
		if excludeID != uuid.Nil && s.ID == excludeID {
			continue
		}
		if s.Interval.Open() {
			openStart := s.Interval.Start
			if cand.Open() {
				// second open session on the same day
				return &ConflictError{BlockingStart: openStart, BlockingOpen: true}
			}
			if cand.Start >= openStart || *cand.End >= openStart {
				return &ConflictError{BlockingStart: openStart, BlockingOpen: true}
			}
			continue
		}

		exStart, exEnd := s.Interval.Start, *s.Interval.End
		if cand.Open() {
			// an open punch cannot start inside a recorded session
			if cand.Start >= exStart && cand.Start < exEnd {
				return &ConflictError{BlockingStart: exStart}
			}
			continue
		}
		if cand.Start < exEnd && exStart < *cand.End {
			return &ConflictError{BlockingStart: exStart}
		}
	}
	return nil
}
