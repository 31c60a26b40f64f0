package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siwes_backend/internals/constants"
	attCtrl "siwes_backend/internals/features/siwes/attendance/controller"
	"siwes_backend/internals/middlewares"
	authMiddleware "siwes_backend/internals/middlewares/auth"
)

// AttendanceStudentRoutes: the student's own ledger. The role gate rides on
// each route, not the group: /attendance also serves the supervisor reads.
func AttendanceStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)
	studentOnly := authMiddleware.OnlyRoles(constants.RoleErrorStudent("the attendance ledger"), constants.RoleStudent)

	g := r.Group("/attendance")
	g.Post("/check-in", studentOnly, middlewares.AttendanceRateLimiter(), ctrl.CheckIn)
	g.Post("/check-out", studentOnly, middlewares.AttendanceRateLimiter(), ctrl.CheckOut)
	g.Get("/today", studentOnly, ctrl.Today)
	g.Get("/history", studentOnly, ctrl.History)
}

// AttendanceSupervisorRoutes: read-only aggregation over assigned students.
func AttendanceSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)
	supervisorOnly := authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("attendance review"), constants.RoleSupervisor)

	g := r.Group("/attendance")
	g.Get("/student/:studentId", supervisorOnly, ctrl.StudentAttendance)
	g.Get("/supervisor/summary", supervisorOnly, ctrl.SupervisorSummary)
}
