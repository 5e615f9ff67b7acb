// file: internals/features/tutoring/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeePaymentCash = "cash"
	FeePaymentUPI  = "upi"
)

// FeeModel is the settlement record for one billing month of a student.
// Billing amounts are never stored here; they are recomputed from
// attendance on every query.
type FeeModel struct {
	FeeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_id" json:"fee_id"`

	FeeStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:fee_student_id" json:"fee_student_id"`

	// "YYYY-MM"
	FeeBillingMonth string `gorm:"type:varchar(7);not null;index;column:fee_billing_month" json:"fee_billing_month"`

	FeeIsSettled     bool       `gorm:"not null;default:false;column:fee_is_settled" json:"fee_is_settled"`
	FeePaymentMethod string     `gorm:"type:varchar(10);not null;default:'cash';column:fee_payment_method" json:"fee_payment_method"`
	FeePaidOn        *time.Time `gorm:"column:fee_paid_on" json:"fee_paid_on,omitempty"`

	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt *time.Time     `gorm:"column:fee_updated_at;autoUpdateTime" json:"fee_updated_at,omitempty"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"fee_deleted_at,omitempty"`
}

func (FeeModel) TableName() string { return "fees" }
