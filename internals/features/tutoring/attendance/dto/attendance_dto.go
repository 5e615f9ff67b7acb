// file: internals/features/tutoring/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mathify_backend/internals/features/tutoring/attendance/model"
)

////////////////////////////////////////////////////////////////////////////////
// ATTENDANCE — DTO
////////////////////////////////////////////////////////////////////////////////

// Create: punch-in. End time absent = open session (class in progress).
type AttendanceCreateDTO struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required"` // "2006-01-02"
	AttendanceStartTime string    `json:"attendance_start_time" validate:"required"`
	AttendanceEndTime   *string   `json:"attendance_end_time,omitempty"`
	AttendanceIsPresent *bool     `json:"attendance_is_present,omitempty"` // default true
}

// Update (partial): punch-out / time edits. Hours are always recomputed,
// they cannot be patched directly.
type AttendanceUpdateDTO struct {
	AttendanceStartTime *string `json:"attendance_start_time,omitempty"`
	AttendanceEndTime   *string `json:"attendance_end_time,omitempty"`
	AttendanceIsPresent *bool   `json:"attendance_is_present,omitempty"`
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID       `json:"attendance_id"`
	AttendanceStudentID uuid.UUID       `json:"attendance_student_id"`
	AttendanceDate      string          `json:"attendance_date"`
	AttendanceStartTime string          `json:"attendance_start_time"`
	AttendanceEndTime   *string         `json:"attendance_end_time,omitempty"`
	AttendanceHours     decimal.Decimal `json:"attendance_hours"`
	AttendanceIsPresent bool            `json:"attendance_is_present"`
	AttendanceCreatedAt time.Time       `json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time      `json:"attendance_updated_at,omitempty"`
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceDate:      m.AttendanceDate.Format("2006-01-02"),
		AttendanceStartTime: m.AttendanceStartTime.String(),
		AttendanceHours:     m.AttendanceHours,
		AttendanceIsPresent: m.AttendanceIsPresent,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
	if m.AttendanceEndTime != nil {
		s := m.AttendanceEndTime.String()
		resp.AttendanceEndTime = &s
	}
	return resp
}

func ToAttendanceResponses(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}
