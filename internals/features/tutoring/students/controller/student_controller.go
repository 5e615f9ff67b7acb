// file: internals/features/tutoring/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "mathify_backend/internals/features/tutoring/batches/model"
	"mathify_backend/internals/features/tutoring/students/dto"
	"mathify_backend/internals/features/tutoring/students/model"
	helper "mathify_backend/internals/helpers"
)

var validate = validator.New()

type StudentHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := dto.ValidateSchedule(in.StudentSchedule); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.StudentBatchID != nil {
		if err := h.ensureBatch(*in.StudentBatchID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "batch not found")
		}
	}

	m := dto.StudentCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student registered", dto.ToStudentResponse(m))
}

// -----------------------------------------
// List (GET /students) — filters: batch_id, active, search
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.StudentModel{})

	if v := c.Query("batch_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_batch_id = ?", id)
		}
	}
	if v := c.Query("active"); v != "" {
		q = q.Where("student_is_active = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_name ILIKE ? OR student_email ILIKE ?", like, like)
	}

	var rows []model.StudentModel
	if err := q.Order("student_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponses(rows))
}

// -----------------------------------------
// GetByID (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := dto.ValidateSchedule(in.StudentSchedule); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.StudentBatchID != nil {
		if err := h.ensureBatch(*in.StudentBatchID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "batch not found")
		}
	}

	var m model.StudentModel
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Delete (DELETE /students/:id) — soft delete
// -----------------------------------------
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

func (h *StudentHandler) ensureBatch(id uuid.UUID) error {
	var b batchModel.BatchModel
	return h.DB.Select("batch_id").First(&b, "batch_id = ?", id).Error
}
