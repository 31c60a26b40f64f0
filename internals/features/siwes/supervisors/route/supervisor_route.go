package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/constants"
	supCtrl "siwes_backend/internals/features/siwes/supervisors/controller"
	authMiddleware "siwes_backend/internals/middlewares/auth"
)

// SupervisorSelfRoutes: a supervisor's own record.
func SupervisorSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := supCtrl.NewSupervisorController(db)
	supervisorOnly := authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("the supervisor profile"), constants.RoleSupervisor)

	g := r.Group("/supervisors")
	g.Get("/me", supervisorOnly, ctrl.Me)
}

// SupervisorAdminRoutes: supervisor and assignment provisioning.
func SupervisorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := supCtrl.NewSupervisorController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("provisioning"), constants.RoleAdmin)

	r.Group("/supervisors").Post("/", adminOnly, ctrl.Create)
	r.Group("/assignments").Post("/", adminOnly, ctrl.Assign)
}
