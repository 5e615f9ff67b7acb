// file: internals/features/tutoring/batches/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchController "mathify_backend/internals/features/tutoring/batches/controller"
)

func BatchesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &batchController.BatchHandler{DB: db}

	grp := admin.Group("/batches")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
