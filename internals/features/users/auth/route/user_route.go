// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "mathify_backend/internals/features/users/auth/controller"
	"mathify_backend/internals/middlewares"
	authMiddleware "mathify_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// public
	baseAuth.Post("/login-google", middlewares.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// protected
	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
