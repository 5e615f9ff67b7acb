// file: internals/features/tutoring/students/dto/student_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"mathify_backend/internals/features/tutoring/students/model"
	"mathify_backend/internals/helpers/clock"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

// DayScheduleDTO: one weekday's class span, e.g. {"from":"10:00","to":"11:30"}
type DayScheduleDTO struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type StudentCreateDTO struct {
	StudentName               string                    `json:"student_name" validate:"required"`
	StudentEmail              string                    `json:"student_email" validate:"required,email"`
	StudentPhone              string                    `json:"student_phone" validate:"required"`
	StudentRegistrationNumber int                       `json:"student_registration_number" validate:"required"`
	StudentFeesPerHour        decimal.Decimal           `json:"student_fees_per_hour"`
	StudentBatchID            *uuid.UUID                `json:"student_batch_id,omitempty"`
	StudentSchedule           map[string]DayScheduleDTO `json:"student_schedule,omitempty"`
	StudentIsAdmin            *bool                     `json:"student_is_admin,omitempty"`
	StudentIsActive           *bool                     `json:"student_is_active,omitempty"`
}

type StudentUpdateDTO struct {
	StudentName               *string                   `json:"student_name,omitempty"`
	StudentEmail              *string                   `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentPhone              *string                   `json:"student_phone,omitempty"`
	StudentRegistrationNumber *int                      `json:"student_registration_number,omitempty"`
	StudentFeesPerHour        *decimal.Decimal          `json:"student_fees_per_hour,omitempty"`
	StudentBatchID            *uuid.UUID                `json:"student_batch_id,omitempty"`
	StudentSchedule           map[string]DayScheduleDTO `json:"student_schedule,omitempty"`
	StudentIsAdmin            *bool                     `json:"student_is_admin,omitempty"`
	StudentIsActive           *bool                     `json:"student_is_active,omitempty"`
}

type StudentResponse struct {
	StudentID                 uuid.UUID         `json:"student_id"`
	StudentName               string            `json:"student_name"`
	StudentEmail              string            `json:"student_email"`
	StudentPhone              string            `json:"student_phone"`
	StudentRegistrationNumber int               `json:"student_registration_number"`
	StudentFeesPerHour        decimal.Decimal   `json:"student_fees_per_hour"`
	StudentBatchID            *uuid.UUID        `json:"student_batch_id,omitempty"`
	StudentSchedule           datatypes.JSONMap `json:"student_schedule,omitempty"`
	StudentIsAdmin            bool              `json:"student_is_admin"`
	StudentIsActive           bool              `json:"student_is_active"`
	StudentCreatedAt          time.Time         `json:"student_created_at"`
	StudentUpdatedAt          *time.Time        `json:"student_updated_at,omitempty"`
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ValidateSchedule runs every day's span through the same clock rules
// the attendance engine uses.
func ValidateSchedule(schedule map[string]DayScheduleDTO) error {
	for day, span := range schedule {
		if !weekdays[strings.ToLower(day)] {
			return fmt.Errorf("unknown weekday %q", day)
		}
		from, err := clock.Parse(span.From)
		if err != nil {
			return err
		}
		to, err := clock.Parse(span.To)
		if err != nil {
			return err
		}
		if err := clock.ValidateOrder(from, to); err != nil {
			return err
		}
	}
	return nil
}

func ScheduleToJSONMap(schedule map[string]DayScheduleDTO) datatypes.JSONMap {
	if len(schedule) == 0 {
		return nil
	}
	out := datatypes.JSONMap{}
	for day, span := range schedule {
		out[strings.ToLower(day)] = map[string]any{"from": span.From, "to": span.To}
	}
	return out
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                 m.StudentID,
		StudentName:               m.StudentName,
		StudentEmail:              m.StudentEmail,
		StudentPhone:              m.StudentPhone,
		StudentRegistrationNumber: m.StudentRegistrationNumber,
		StudentFeesPerHour:        m.StudentFeesPerHour,
		StudentBatchID:            m.StudentBatchID,
		StudentSchedule:           m.StudentSchedule,
		StudentIsAdmin:            m.StudentIsAdmin,
		StudentIsActive:           m.StudentIsActive,
		StudentCreatedAt:          m.StudentCreatedAt,
		StudentUpdatedAt:          m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) model.StudentModel {
	m := model.StudentModel{
		StudentName:               d.StudentName,
		StudentEmail:              strings.ToLower(strings.TrimSpace(d.StudentEmail)),
		StudentPhone:              d.StudentPhone,
		StudentRegistrationNumber: d.StudentRegistrationNumber,
		StudentFeesPerHour:        d.StudentFeesPerHour,
		StudentBatchID:            d.StudentBatchID,
		StudentSchedule:           ScheduleToJSONMap(d.StudentSchedule),
	}
	if d.StudentIsAdmin != nil {
		m.StudentIsAdmin = *d.StudentIsAdmin
	}
	if d.StudentIsActive != nil {
		m.StudentIsActive = *d.StudentIsActive
	}
	return m
}

func ApplyStudentUpdate(m *model.StudentModel, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentEmail != nil {
		m.StudentEmail = strings.ToLower(strings.TrimSpace(*d.StudentEmail))
	}
	if d.StudentPhone != nil {
		m.StudentPhone = *d.StudentPhone
	}
	if d.StudentRegistrationNumber != nil {
		m.StudentRegistrationNumber = *d.StudentRegistrationNumber
	}
	if d.StudentFeesPerHour != nil {
		m.StudentFeesPerHour = *d.StudentFeesPerHour
	}
	if d.StudentBatchID != nil {
		m.StudentBatchID = d.StudentBatchID
	}
	if d.StudentSchedule != nil {
		m.StudentSchedule = ScheduleToJSONMap(d.StudentSchedule)
	}
	if d.StudentIsAdmin != nil {
		m.StudentIsAdmin = *d.StudentIsAdmin
	}
	if d.StudentIsActive != nil {
		m.StudentIsActive = *d.StudentIsActive
	}
}
