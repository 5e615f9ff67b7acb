// file: internals/features/tutoring/batches/model/batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BatchModel struct {
	BatchID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:batch_id" json:"batch_id"`

	BatchName        string          `gorm:"not null;uniqueIndex;column:batch_name" json:"batch_name"`
	BatchFeesPerHour decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0;column:batch_fees_per_hour" json:"batch_fees_per_hour"`
	BatchIsActive    bool            `gorm:"not null;default:true;column:batch_is_active" json:"batch_is_active"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt *time.Time     `gorm:"column:batch_updated_at;autoUpdateTime" json:"batch_updated_at,omitempty"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"batch_deleted_at,omitempty"`
}

func (BatchModel) TableName() string { return "batches" }
