package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "siwes_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide middleware chain.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
