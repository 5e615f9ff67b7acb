// file: internals/features/tutoring/invoices/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "mathify_backend/internals/features/tutoring/invoices/controller"
	"mathify_backend/internals/features/tutoring/invoices/service"
	"mathify_backend/internals/helpers/mailer"
)

func InvoicesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &invoiceController.InvoiceHandler{
		DB:         db,
		Dispatcher: service.NewDispatcher(db, mailer.NewFromEnv()),
	}

	grp := admin.Group("/invoices")
	{
		grp.Post("/dispatch/:period", h.Dispatch)
		grp.Get("/:student_id", h.Statement)
		grp.Get("/:student_id/:period", h.Download)
	}
}
