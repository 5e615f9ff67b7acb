// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mathify_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the app-wide middleware chain in order:
// recovery first, then logging, CORS, rate limiting, and the db handle.
func SetupMiddlewares(app *fiber.App, db *gorm.DB) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(DBMiddleware(db))
}
