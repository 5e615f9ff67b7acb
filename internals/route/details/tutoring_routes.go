// file: internals/route/details/tutoring_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AttendanceRoute "mathify_backend/internals/features/tutoring/attendance/route"
	BatchRoute "mathify_backend/internals/features/tutoring/batches/route"
	BillingRoute "mathify_backend/internals/features/tutoring/billing/route"
	FeeRoute "mathify_backend/internals/features/tutoring/fees/route"
	InvoiceRoute "mathify_backend/internals/features/tutoring/invoices/route"
	StudentRoute "mathify_backend/internals/features/tutoring/students/route"
)

func TutoringAdminRoutes(r fiber.Router, db *gorm.DB) {
	StudentRoute.StudentsAdminRoutes(r, db)
	BatchRoute.BatchesAdminRoutes(r, db)
	AttendanceRoute.AttendanceAdminRoutes(r, db)
	BillingRoute.BillingAdminRoutes(r, db)
	FeeRoute.FeesAdminRoutes(r, db)
	InvoiceRoute.InvoicesAdminRoutes(r, db)
}

func TutoringUserRoutes(r fiber.Router, db *gorm.DB) {
	AttendanceRoute.AttendanceUserRoutes(r, db)
	BillingRoute.BillingUserRoutes(r, db)
}
