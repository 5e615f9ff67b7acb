// file: internals/features/tutoring/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mathify_backend/internals/configs"
	attendanceController "mathify_backend/internals/features/tutoring/attendance/controller"
	"mathify_backend/internals/features/tutoring/attendance/service"
)

// Read-only view of the logged-in student's own records.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	h := &attendanceController.AttendanceHandler{
		DB:          db,
		Granularity: service.ParseGranularity(configs.AttendanceGranularity),
	}

	user.Get("/attendance/me", h.MyList)
}
