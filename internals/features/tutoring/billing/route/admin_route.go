// file: internals/features/tutoring/billing/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingController "mathify_backend/internals/features/tutoring/billing/controller"
	"mathify_backend/internals/features/tutoring/billing/repository"
	billing "mathify_backend/internals/features/tutoring/billing/service"
)

// Read-only billing projections; nothing here mutates records.
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	src := repository.NewGormSource(db)
	h := &billingController.BillingHandler{
		Aggregator: billing.NewAggregator(src, src, src),
	}

	grp := admin.Group("/billing")
	{
		grp.Get("/:student_id", h.History)
		grp.Get("/:student_id/:period", h.Summary)
	}
}
