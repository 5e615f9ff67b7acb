// file: internals/features/tutoring/fees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "mathify_backend/internals/features/tutoring/fees/controller"
)

func FeesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &feeController.FeeHandler{DB: db}

	grp := admin.Group("/fees")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
