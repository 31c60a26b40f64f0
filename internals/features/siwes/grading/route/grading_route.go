package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/constants"
	gradeCtrl "siwes_backend/internals/features/siwes/grading/controller"
	authMiddleware "siwes_backend/internals/middlewares/auth"
)

// GradingSupervisorRoutes: submit and preview (school supervisors only; the
// controller type-checks the Supervisor record beyond the role claim).
func GradingSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeCtrl.NewGradeController(db)
	supervisorOnly := authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("grading"), constants.RoleSupervisor)

	g := r.Group("/grading")
	g.Post("/submit-grade", supervisorOnly, ctrl.SubmitGrade)
	g.Get("/preview/:studentId", supervisorOnly, ctrl.PreviewGrade)
}

// GradingSharedRoutes: grade lookup for the student themself or a school
// supervisor; authorization is resolved inside the controller, so no role
// gate sits on the route.
func GradingSharedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeCtrl.NewGradeController(db)

	g := r.Group("/grading")
	g.Get("/get-grade/:studentId", ctrl.GetGrade)
}
