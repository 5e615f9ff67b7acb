// file: internals/features/tutoring/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentName  string `gorm:"not null;column:student_name" json:"student_name"`
	StudentEmail string `gorm:"not null;uniqueIndex;column:student_email" json:"student_email"`
	StudentPhone string `gorm:"not null;column:student_phone" json:"student_phone"`

	StudentRegistrationNumber int `gorm:"not null;column:student_registration_number" json:"student_registration_number"`

	// Per-hour rate in rupees; zero means "inherit from batch".
	StudentFeesPerHour decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0;column:student_fees_per_hour" json:"student_fees_per_hour"`

	StudentBatchID *uuid.UUID `gorm:"type:uuid;index;column:student_batch_id" json:"student_batch_id,omitempty"`

	// Weekly class plan: {"monday":{"from":"10:00","to":"11:30"}, ...}
	StudentSchedule datatypes.JSONMap `gorm:"column:student_schedule" json:"student_schedule,omitempty"`

	StudentIsAdmin  bool `gorm:"not null;default:false;column:student_is_admin" json:"student_is_admin"`
	StudentIsActive bool `gorm:"not null;default:false;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
