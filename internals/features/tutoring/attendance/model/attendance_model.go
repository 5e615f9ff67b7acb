// file: internals/features/tutoring/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mathify_backend/internals/helpers/clock"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_student_id" json:"attendance_student_id"`

	// Pure calendar-day key; grouping & overlap checks hang off this.
	AttendanceDate time.Time `gorm:"type:date;not null;index;column:attendance_date" json:"attendance_date"`

	AttendanceStartTime clock.Clock  `gorm:"type:time;not null;column:attendance_start_time" json:"attendance_start_time"`
	AttendanceEndTime   *clock.Clock `gorm:"type:time;column:attendance_end_time" json:"attendance_end_time,omitempty"`

	// Derived from the interval, never author-supplied.
	AttendanceHours decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0;column:attendance_hours" json:"attendance_hours"`

	AttendanceIsPresent bool `gorm:"not null;default:true;column:attendance_is_present" json:"attendance_is_present"`

	AttendanceCreatedAt time.Time      `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time     `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }
