// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mathify_backend/internals/constants"
	authRoute "mathify_backend/internals/features/users/auth/route"
	authMiddleware "mathify_backend/internals/middlewares/auth"
	routeDetails "mathify_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	// Any enrolled, active student with a valid token.
	log.Println("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("tutoring administration"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Tutoring routes...")
	routeDetails.TutoringUserRoutes(user, db)
	routeDetails.TutoringAdminRoutes(admin, db)
}
