// file: internals/features/tutoring/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"mathify_backend/internals/features/tutoring/fees/model"
)

////////////////////////////////////////////////////////////////////////////////
// FEES (settlement records) — DTO
////////////////////////////////////////////////////////////////////////////////

type FeeCreateDTO struct {
	FeeStudentID     uuid.UUID  `json:"fee_student_id" validate:"required"`
	FeeBillingMonth  string     `json:"fee_billing_month" validate:"required,len=7"` // "2025-03"
	FeeIsSettled     *bool      `json:"fee_is_settled,omitempty"`
	FeePaymentMethod *string    `json:"fee_payment_method,omitempty" validate:"omitempty,oneof=cash upi"`
	FeePaidOn        *time.Time `json:"fee_paid_on,omitempty"`
}

type FeeUpdateDTO struct {
	FeeBillingMonth  *string    `json:"fee_billing_month,omitempty" validate:"omitempty,len=7"`
	FeeIsSettled     *bool      `json:"fee_is_settled,omitempty"`
	FeePaymentMethod *string    `json:"fee_payment_method,omitempty" validate:"omitempty,oneof=cash upi"`
	FeePaidOn        *time.Time `json:"fee_paid_on,omitempty"`
}

type FeeResponse struct {
	FeeID            uuid.UUID  `json:"fee_id"`
	FeeStudentID     uuid.UUID  `json:"fee_student_id"`
	FeeBillingMonth  string     `json:"fee_billing_month"`
	FeeIsSettled     bool       `json:"fee_is_settled"`
	FeePaymentMethod string     `json:"fee_payment_method"`
	FeePaidOn        *time.Time `json:"fee_paid_on,omitempty"`
	FeeCreatedAt     time.Time  `json:"fee_created_at"`
	FeeUpdatedAt     *time.Time `json:"fee_updated_at,omitempty"`
}

func ToFeeResponse(m model.FeeModel) FeeResponse {
	return FeeResponse{
		FeeID:            m.FeeID,
		FeeStudentID:     m.FeeStudentID,
		FeeBillingMonth:  m.FeeBillingMonth,
		FeeIsSettled:     m.FeeIsSettled,
		FeePaymentMethod: m.FeePaymentMethod,
		FeePaidOn:        m.FeePaidOn,
		FeeCreatedAt:     m.FeeCreatedAt,
		FeeUpdatedAt:     m.FeeUpdatedAt,
	}
}

func ToFeeResponses(list []model.FeeModel) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeResponse(m))
	}
	return out
}

func FeeCreateDTOToModel(d FeeCreateDTO) model.FeeModel {
	m := model.FeeModel{
		FeeStudentID:     d.FeeStudentID,
		FeeBillingMonth:  d.FeeBillingMonth,
		FeePaymentMethod: model.FeePaymentCash, // default cash
		FeePaidOn:        d.FeePaidOn,
	}
	if d.FeeIsSettled != nil {
		m.FeeIsSettled = *d.FeeIsSettled
	}
	if d.FeePaymentMethod != nil {
		m.FeePaymentMethod = *d.FeePaymentMethod
	}
	return m
}

// ApplyFeeUpdate: partial patch, settled periods stay as entered.
func ApplyFeeUpdate(m *model.FeeModel, d FeeUpdateDTO) {
	if d.FeeBillingMonth != nil {
		m.FeeBillingMonth = *d.FeeBillingMonth
	}
	if d.FeeIsSettled != nil {
		m.FeeIsSettled = *d.FeeIsSettled
	}
	if d.FeePaymentMethod != nil {
		m.FeePaymentMethod = *d.FeePaymentMethod
	}
	if d.FeePaidOn != nil {
		m.FeePaidOn = d.FeePaidOn
	}
}
