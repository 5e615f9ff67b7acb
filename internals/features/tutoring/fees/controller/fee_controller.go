// file: internals/features/tutoring/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mathify_backend/internals/features/tutoring/fees/dto"
	"mathify_backend/internals/features/tutoring/fees/model"
	helper "mathify_backend/internals/helpers"
)

var validate = validator.New()

type FeeHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /fees)
// -----------------------------------------
func (h *FeeHandler) Create(c *fiber.Ctx) error {
	var in dto.FeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := time.Parse("2006-01", in.FeeBillingMonth); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee_billing_month must be YYYY-MM")
	}

	m := dto.FeeCreateDTOToModel(in)
	if m.FeeIsSettled && m.FeePaidOn == nil {
		now := time.Now()
		m.FeePaidOn = &now
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee recorded", dto.ToFeeResponse(m))
}

// -----------------------------------------
// List (GET /fees) — filters: student_id, billing_month, settled
// -----------------------------------------
func (h *FeeHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.FeeModel{})

	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("fee_student_id = ?", id)
		}
	}
	if v := c.Query("billing_month"); v != "" {
		q = q.Where("fee_billing_month = ?", v)
	}
	if v := c.Query("settled"); v != "" {
		q = q.Where("fee_is_settled = ?", v == "true")
	}

	var rows []model.FeeModel
	if err := q.Order("fee_billing_month DESC, fee_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToFeeResponses(rows))
}

// -----------------------------------------
// Update (PATCH /fees/:id)
// -----------------------------------------
func (h *FeeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.FeeModel
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyFeeUpdate(&m, in)
	if m.FeeIsSettled && m.FeePaidOn == nil {
		now := time.Now()
		m.FeePaidOn = &now
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee record updated", dto.ToFeeResponse(m))
}

// -----------------------------------------
// Delete (DELETE /fees/:id)
// -----------------------------------------
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.FeeModel{}, "fee_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "fee record not found")
	}
	return helper.JsonDeleted(c, "fee record deleted", fiber.Map{"fee_id": id})
}
