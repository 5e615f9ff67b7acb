// file: internals/features/tutoring/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	attendanceController "mathify_backend/internals/features/tutoring/attendance/controller"
	"mathify_backend/internals/features/tutoring/attendance/service"
)

// Admin routes (punch-in/out & corrections)
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &attendanceController.AttendanceHandler{
		DB:          db,
		Granularity: service.ParseGranularity(configs.AttendanceGranularity),
	}

	grp := admin.Group("/attendance")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
