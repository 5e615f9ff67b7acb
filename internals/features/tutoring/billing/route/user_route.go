// file: internals/features/tutoring/billing/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingController "mathify_backend/internals/features/tutoring/billing/controller"
	"mathify_backend/internals/features/tutoring/billing/repository"
	billing "mathify_backend/internals/features/tutoring/billing/service"
)

func BillingUserRoutes(user fiber.Router, db *gorm.DB) {
	src := repository.NewGormSource(db)
	h := &billingController.BillingHandler{
		Aggregator: billing.NewAggregator(src, src, src),
	}

	user.Get("/billing/me", h.MyHistory)
	user.Get("/billing/me/:period", h.MySummary)
}
