package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/constants"
	studentCtrl "siwes_backend/internals/features/siwes/students/controller"
	authMiddleware "siwes_backend/internals/middlewares/auth"
)

// StudentSelfRoutes: a student's own placement profile.
func StudentSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	studentOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("the placement profile"), constants.RoleStudent)

	g := r.Group("/students")
	g.Get("/me", studentOnly, ctrl.Me)
	g.Put("/me", studentOnly, ctrl.UpdateMe)
}

// StudentSupervisorRoutes: assigned-student listing.
func StudentSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	supervisorOnly := authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("assigned students"), constants.RoleSupervisor)

	g := r.Group("/students")
	g.Get("/assigned", supervisorOnly, ctrl.Assigned)
}

// StudentAdminRoutes: profile provisioning.
func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("provisioning"), constants.RoleAdmin)

	g := r.Group("/students")
	g.Post("/", adminOnly, ctrl.Create)
}
