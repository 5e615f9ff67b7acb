// file: internals/features/tutoring/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"mathify_backend/internals/features/tutoring/attendance/dto"
	"mathify_backend/internals/features/tutoring/attendance/model"
	"mathify_backend/internals/features/tutoring/attendance/repository"
	"mathify_backend/internals/features/tutoring/attendance/service"
	helper "mathify_backend/internals/helpers"
	"mathify_backend/internals/helpers/clock"
)

var validate = validator.New()

type AttendanceHandler struct {
	DB          *gorm.DB
	Granularity service.Granularity
}

// engineError maps the engine's typed failures onto HTTP statuses.
// Everything here is detected before any write.
func engineError(c *fiber.Ctx, err error) error {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		return helper.JsonError(c, fiber.StatusConflict, conflict.Error())
	case errors.Is(err, clock.ErrFormat), errors.Is(err, clock.ErrOrder):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// isOpenSessionUniqueViolation: the partial unique index fired — two
// concurrent open punches raced past the advisory lock path.
func isOpenSessionUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func parseDay(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

// -----------------------------------------
// Create (POST /attendance) — punch-in
// -----------------------------------------
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var in dto.AttendanceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := parseDay(in.AttendanceDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "attendance_date must be YYYY-MM-DD")
	}
	interval, err := service.NewInterval(in.AttendanceStartTime, in.AttendanceEndTime)
	if err != nil {
		return engineError(c, err)
	}

	isPresent := true
	if in.AttendanceIsPresent != nil {
		isPresent = *in.AttendanceIsPresent
	}

	row := model.AttendanceModel{
		AttendanceStudentID: in.AttendanceStudentID,
		AttendanceDate:      date,
		AttendanceStartTime: interval.Start,
		AttendanceEndTime:   interval.End,
		AttendanceHours:     service.ComputeHours(interval, h.Granularity),
		AttendanceIsPresent: isPresent,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.LockStudentDay(tx, in.AttendanceStudentID, date); err != nil {
			return err
		}
		existing, err := repository.SessionsForDay(tx, in.AttendanceStudentID, date)
		if err != nil {
			return err
		}
		if err := service.Admit(interval, existing, uuid.Nil); err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		if isOpenSessionUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a session is already running for this student today")
		}
		return engineError(c, err)
	}
	return helper.JsonCreated(c, "attendance recorded", dto.ToAttendanceResponse(row))
}

// -----------------------------------------
// Update (PATCH /attendance/:id) — punch-out / edit times
// -----------------------------------------
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.AttendanceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var updated model.AttendanceModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		row, err := repository.FindByID(tx, id)
		if err != nil {
			return err
		}
		if err := repository.LockStudentDay(tx, row.AttendanceStudentID, row.AttendanceDate); err != nil {
			return err
		}

		// merge punches: unchanged fields keep their stored value
		startRaw := row.AttendanceStartTime.String()
		if in.AttendanceStartTime != nil {
			startRaw = *in.AttendanceStartTime
		}
		endRaw := in.AttendanceEndTime
		if endRaw == nil && row.AttendanceEndTime != nil {
			s := row.AttendanceEndTime.String()
			endRaw = &s
		}

		interval, err := service.NewInterval(startRaw, endRaw)
		if err != nil {
			return err
		}

		existing, err := repository.SessionsForDay(tx, row.AttendanceStudentID, row.AttendanceDate)
		if err != nil {
			return err
		}
		if err := service.Admit(interval, existing, row.AttendanceID); err != nil {
			return err
		}

		row.AttendanceStartTime = interval.Start
		row.AttendanceEndTime = interval.End
		row.AttendanceHours = service.ComputeHours(interval, h.Granularity)
		if in.AttendanceIsPresent != nil {
			row.AttendanceIsPresent = *in.AttendanceIsPresent
		}
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		updated = *row
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
		}
		if isOpenSessionUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "a session is already running for this student today")
		}
		return engineError(c, err)
	}
	return helper.JsonUpdated(c, "attendance updated", dto.ToAttendanceResponse(updated))
}

// -----------------------------------------
// List (GET /attendance)
// Query: student_id (required), date | date_from/date_to, present
// -----------------------------------------
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
	}
	return h.listFor(c, studentID)
}

// -----------------------------------------
// MyList (GET /attendance/me) — logged-in student's own records
// -----------------------------------------
func (h *AttendanceHandler) MyList(c *fiber.Ctx) error {
	idStr, _ := c.Locals("user_id").(string)
	studentID, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid session")
	}
	return h.listFor(c, studentID)
}

func (h *AttendanceHandler) listFor(c *fiber.Ctx, studentID uuid.UUID) error {
	q := h.DB.Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID)

	if v := c.Query("date"); v != "" {
		d, err := parseDay(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		q = q.Where("attendance_date = ?", d)
	}
	if v := c.Query("date_from"); v != "" {
		if d, err := parseDay(v); err == nil {
			q = q.Where("attendance_date >= ?", d)
		}
	}
	if v := c.Query("date_to"); v != "" {
		if d, err := parseDay(v); err == nil {
			q = q.Where("attendance_date < ?", d)
		}
	}
	if v := c.Query("present"); v != "" {
		q = q.Where("attendance_is_present = ?", v == "true")
	}

	var rows []model.AttendanceModel
	if err := q.
		Order("attendance_date DESC, attendance_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToAttendanceResponses(rows))
}

// -----------------------------------------
// Delete (DELETE /attendance/:id) — explicit admin action, soft delete
// -----------------------------------------
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := h.DB.Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}
	return helper.JsonDeleted(c, "attendance deleted", fiber.Map{"attendance_id": id})
}
