// file: internals/features/tutoring/billing/controller/billing_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	billing "mathify_backend/internals/features/tutoring/billing/service"
	helper "mathify_backend/internals/helpers"
)

type BillingHandler struct {
	Aggregator *billing.Aggregator
}

func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, billing.ErrMissingRate):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "no hourly rate configured for this student or its batch")
	case errors.Is(err, billing.ErrBadPeriodKey):
		return helper.JsonError(c, fiber.StatusBadRequest, "period must be YYYY-MM")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// -----------------------------------------
// Summary (GET /billing/:student_id/:period)
// -----------------------------------------
func (h *BillingHandler) Summary(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	summary, err := h.Aggregator.Summarize(c.UserContext(), studentID, c.Params("period"))
	if err != nil {
		return billingError(c, err)
	}
	return helper.JsonOK(c, "ok", summary)
}

// -----------------------------------------
// History (GET /billing/:student_id) — every month, most recent first
// -----------------------------------------
func (h *BillingHandler) History(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	summaries, err := h.Aggregator.SummarizeAll(c.UserContext(), studentID)
	if err != nil {
		return billingError(c, err)
	}
	return helper.JsonOK(c, "ok", summaries)
}

func selfID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("user_id").(string)
	return uuid.Parse(idStr)
}

// -----------------------------------------
// MySummary (GET /billing/me/:period) — logged-in student
// -----------------------------------------
func (h *BillingHandler) MySummary(c *fiber.Ctx) error {
	studentID, err := selfID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid session")
	}
	summary, err := h.Aggregator.Summarize(c.UserContext(), studentID, c.Params("period"))
	if err != nil {
		return billingError(c, err)
	}
	return helper.JsonOK(c, "ok", summary)
}

// -----------------------------------------
// MyHistory (GET /billing/me) — logged-in student
// -----------------------------------------
func (h *BillingHandler) MyHistory(c *fiber.Ctx) error {
	studentID, err := selfID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid session")
	}
	summaries, err := h.Aggregator.SummarizeAll(c.UserContext(), studentID)
	if err != nil {
		return billingError(c, err)
	}
	return helper.JsonOK(c, "ok", summaries)
}
