// file: internals/features/tutoring/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "mathify_backend/internals/features/tutoring/students/controller"
)

func StudentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &studentController.StudentHandler{DB: db}

	grp := admin.Group("/students")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
