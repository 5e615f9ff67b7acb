// file: internals/features/tutoring/batches/dto/batch_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mathify_backend/internals/features/tutoring/batches/model"
)

type BatchCreateDTO struct {
	BatchName        string          `json:"batch_name" validate:"required"`
	BatchFeesPerHour decimal.Decimal `json:"batch_fees_per_hour"`
	BatchIsActive    *bool           `json:"batch_is_active,omitempty"`
}

type BatchUpdateDTO struct {
	BatchName        *string          `json:"batch_name,omitempty"`
	BatchFeesPerHour *decimal.Decimal `json:"batch_fees_per_hour,omitempty"`
	BatchIsActive    *bool            `json:"batch_is_active,omitempty"`
}

type BatchResponse struct {
	BatchID          uuid.UUID       `json:"batch_id"`
	BatchName        string          `json:"batch_name"`
	BatchFeesPerHour decimal.Decimal `json:"batch_fees_per_hour"`
	BatchIsActive    bool            `json:"batch_is_active"`
	BatchCreatedAt   time.Time       `json:"batch_created_at"`
	BatchUpdatedAt   *time.Time      `json:"batch_updated_at,omitempty"`
}

func ToBatchResponse(m model.BatchModel) BatchResponse {
	return BatchResponse{
		BatchID:          m.BatchID,
		BatchName:        m.BatchName,
		BatchFeesPerHour: m.BatchFeesPerHour,
		BatchIsActive:    m.BatchIsActive,
		BatchCreatedAt:   m.BatchCreatedAt,
		BatchUpdatedAt:   m.BatchUpdatedAt,
	}
}

func ToBatchResponses(list []model.BatchModel) []BatchResponse {
	out := make([]BatchResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBatchResponse(m))
	}
	return out
}

func BatchCreateDTOToModel(d BatchCreateDTO) model.BatchModel {
	m := model.BatchModel{
		BatchName:        d.BatchName,
		BatchFeesPerHour: d.BatchFeesPerHour,
		BatchIsActive:    true,
	}
	if d.BatchIsActive != nil {
		m.BatchIsActive = *d.BatchIsActive
	}
	return m
}

func ApplyBatchUpdate(m *model.BatchModel, d BatchUpdateDTO) {
	if d.BatchName != nil {
		m.BatchName = *d.BatchName
	}
	if d.BatchFeesPerHour != nil {
		m.BatchFeesPerHour = *d.BatchFeesPerHour
	}
	if d.BatchIsActive != nil {
		m.BatchIsActive = *d.BatchIsActive
	}
}
