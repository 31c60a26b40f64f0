package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "siwes_backend/internals/middlewares/auth"
	routeDetails "siwes_backend/internals/route/details"
)

// SetupRoutes mounts the whole API behind the auth middleware. The external
// identity provider resolves the principal. Role gates ride on the routes
// inside the feature route files — a gate handler on a group fences the
// whole prefix, and /attendance, /weeks and /students each serve more than
// one role. Controllers do the record-level checks (assignments, supervisor
// type, lock flag).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Setting up STUDENT routes...")
	routeDetails.SiwesStudentRoutes(api, db)

	log.Println("[INFO] Setting up SUPERVISOR routes...")
	routeDetails.SiwesSupervisorRoutes(api, db)

	log.Println("[INFO] Setting up SHARED routes...")
	routeDetails.SiwesSharedRoutes(api, db)

	log.Println("[INFO] Setting up ADMIN routes...")
	routeDetails.SiwesAdminRoutes(api, db)
}
