// file: internals/features/tutoring/billing/repository/gorm_source.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	attendanceModel "mathify_backend/internals/features/tutoring/attendance/model"
	batchModel "mathify_backend/internals/features/tutoring/batches/model"
	billing "mathify_backend/internals/features/tutoring/billing/service"
	feeModel "mathify_backend/internals/features/tutoring/fees/model"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
)

// GormSource backs all three aggregator boundaries with the record store.
type GormSource struct {
	DB *gorm.DB
}

var (
	_ billing.AttendanceSource = (*GormSource)(nil)
	_ billing.RateSource       = (*GormSource)(nil)
	_ billing.SettlementSource = (*GormSource)(nil)
)

func NewGormSource(db *gorm.DB) *GormSource { return &GormSource{DB: db} }

func (s *GormSource) PresentHours(ctx context.Context, studentID uuid.UUID, from, to time.Time) ([]decimal.Decimal, error) {
	var hours []decimal.Decimal
	err := s.DB.WithContext(ctx).
		Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID).
		Where("attendance_is_present = true").
		Where("attendance_date >= ? AND attendance_date < ?", from, to).
		Pluck("attendance_hours", &hours).Error
	return hours, err
}

func (s *GormSource) PeriodKeys(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	var keys []string
	err := s.DB.WithContext(ctx).
		Model(&attendanceModel.AttendanceModel{}).
		Distinct("to_char(attendance_date, 'YYYY-MM')").
		Where("attendance_student_id = ?", studentID).
		Pluck("to_char(attendance_date, 'YYYY-MM')", &keys).Error
	return keys, err
}

// HourlyRate: student rate wins; zero falls back to the batch rate;
// neither configured → ErrMissingRate.
func (s *GormSource) HourlyRate(ctx context.Context, studentID uuid.UUID) (decimal.Decimal, error) {
	var student studentModel.StudentModel
	if err := s.DB.WithContext(ctx).
		First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, billing.ErrStudentNotFound
		}
		return decimal.Zero, err
	}
	if student.StudentFeesPerHour.IsPositive() {
		return student.StudentFeesPerHour, nil
	}
	if student.StudentBatchID != nil {
		var batch batchModel.BatchModel
		if err := s.DB.WithContext(ctx).
			First(&batch, "batch_id = ?", *student.StudentBatchID).Error; err == nil &&
			batch.BatchFeesPerHour.IsPositive() {
			return batch.BatchFeesPerHour, nil
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, err
		}
	}
	return decimal.Zero, billing.ErrMissingRate
}

func (s *GormSource) Settlement(ctx context.Context, studentID uuid.UUID, periodKey string) (*billing.Settlement, error) {
	var fee feeModel.FeeModel
	err := s.DB.WithContext(ctx).
		Where("fee_student_id = ? AND fee_billing_month = ?", studentID, periodKey).
		Order("fee_created_at DESC").
		First(&fee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := &billing.Settlement{
		IsSettled:     fee.FeeIsSettled,
		PaymentMethod: fee.FeePaymentMethod,
	}
	if fee.FeePaidOn != nil {
		out.PaidOn = *fee.FeePaidOn
	}
	return out, nil
}
