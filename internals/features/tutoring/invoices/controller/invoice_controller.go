// file: internals/features/tutoring/invoices/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billing "mathify_backend/internals/features/tutoring/billing/service"
	"mathify_backend/internals/features/tutoring/invoices/service"
	studentModel "mathify_backend/internals/features/tutoring/students/model"
	helper "mathify_backend/internals/helpers"
)

type InvoiceHandler struct {
	DB         *gorm.DB
	Dispatcher *service.Dispatcher
}

// -----------------------------------------
// Download (GET /invoices/:student_id/:period) — PDF
// -----------------------------------------
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	periodKey := c.Params("period")

	var s studentModel.StudentModel
	if err := h.DB.First(&s, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	period, err := h.Dispatcher.Agg.Summarize(c.UserContext(), studentID, periodKey)
	if err != nil {
		return billingError(c, err)
	}

	pdfBytes, err := service.BuildInvoicePDF(service.InvoiceData{Student: s, Period: period})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	number := service.InvoiceNumber(s.StudentRegistrationNumber, periodKey)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+number+`.pdf"`)
	return c.Send(pdfBytes)
}

// -----------------------------------------
// Statement (GET /invoices/:student_id) — full history PDF
// -----------------------------------------
func (h *InvoiceHandler) Statement(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	var s studentModel.StudentModel
	if err := h.DB.First(&s, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	periods, err := h.Dispatcher.Agg.SummarizeAll(c.UserContext(), studentID)
	if err != nil {
		return billingError(c, err)
	}

	pdfBytes, err := service.BuildStatementPDF(s, periods)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement-`+s.StudentID.String()+`.pdf"`)
	return c.Send(pdfBytes)
}

// -----------------------------------------
// Dispatch (POST /invoices/dispatch/:period) — mail all invoices now
// -----------------------------------------
func (h *InvoiceHandler) Dispatch(c *fiber.Ctx) error {
	periodKey := c.Params("period")
	sent, err := h.Dispatcher.DispatchMonth(c.UserContext(), periodKey)
	if err != nil {
		return billingError(c, err)
	}
	return helper.JsonOK(c, "invoices dispatched", fiber.Map{
		"period": periodKey,
		"sent":   sent,
	})
}

func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, billing.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, billing.ErrMissingRate):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, billing.ErrBadPeriodKey):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
