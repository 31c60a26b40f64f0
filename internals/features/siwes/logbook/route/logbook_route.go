package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/constants"
	logbookCtrl "siwes_backend/internals/features/siwes/logbook/controller"
	authMiddleware "siwes_backend/internals/middlewares/auth"
)

// LogbookStudentRoutes: save/submit and read own weeks. Gates are per-route
// because /weeks carries both sides of the review chain.
func LogbookStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := logbookCtrl.NewWeekController(db)
	studentOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("the logbook"), constants.RoleStudent)

	g := r.Group("/weeks")
	g.Post("/submit-week", studentOnly, ctrl.SubmitWeek)
	g.Get("/mine", studentOnly, ctrl.ListMine)
}

// LogbookSupervisorRoutes: the two-tier review chain.
func LogbookSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	weekCtrl := logbookCtrl.NewWeekController(db)
	reviewCtrl := logbookCtrl.NewReviewController(db)
	supervisorOnly := authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("logbook review"), constants.RoleSupervisor)

	g := r.Group("/weeks")
	g.Post("/review-week", supervisorOnly, reviewCtrl.ReviewWeek)
	g.Get("/student/:studentId", supervisorOnly, weekCtrl.ListByStudent)
}
