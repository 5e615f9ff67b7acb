// file: internals/features/tutoring/attendance/service/errors.go
package service

import (
	"fmt"

	"mathify_backend/internals/helpers/clock"
)

// ConflictError rejects a candidate session that collides with another
// session of the same student on the same day. BlockingStart is surfaced
// so the frontend can tell the admin which session is in the way.
type ConflictError struct {
	BlockingStart clock.Clock
	BlockingOpen  bool
}

func (e *ConflictError) Error() string {
	if e.BlockingOpen {
		return fmt.Sprintf("a session is still running since %s", e.BlockingStart)
	}
	return fmt.Sprintf("overlaps an existing session starting at %s", e.BlockingStart)
}
