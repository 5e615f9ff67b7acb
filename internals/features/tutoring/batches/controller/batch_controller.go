// file: internals/features/tutoring/batches/controller/batch_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mathify_backend/internals/features/tutoring/batches/dto"
	"mathify_backend/internals/features/tutoring/batches/model"
	helper "mathify_backend/internals/helpers"
)

var validate = validator.New()

type BatchHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /batches)
// -----------------------------------------
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.BatchCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := dto.BatchCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "batch name already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "batch created", dto.ToBatchResponse(m))
}

// -----------------------------------------
// List (GET /batches)
// -----------------------------------------
func (h *BatchHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.BatchModel{})
	if v := c.Query("active"); v != "" {
		q = q.Where("batch_is_active = ?", v == "true")
	}

	var rows []model.BatchModel
	if err := q.Order("batch_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToBatchResponses(rows))
}

// -----------------------------------------
// Update (PATCH /batches/:id)
// -----------------------------------------
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.BatchUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var m model.BatchModel
	if err := h.DB.First(&m, "batch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyBatchUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "batch name already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "batch updated", dto.ToBatchResponse(m))
}

// -----------------------------------------
// Delete (DELETE /batches/:id) — refuses while students still point here
// -----------------------------------------
func (h *BatchHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var members int64
	if err := h.DB.Table("students").
		Where("student_batch_id = ? AND student_deleted_at IS NULL", id).
		Count(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if members > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "batch still has students")
	}

	res := h.DB.Delete(&model.BatchModel{}, "batch_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "batch not found")
	}
	return helper.JsonDeleted(c, "batch deleted", fiber.Map{"batch_id": id})
}
