package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "siwes_backend/internals/features/siwes/attendance/route"
	gradingRoute "siwes_backend/internals/features/siwes/grading/route"
	logbookRoute "siwes_backend/internals/features/siwes/logbook/route"
	studentRoute "siwes_backend/internals/features/siwes/students/route"
	supervisorRoute "siwes_backend/internals/features/siwes/supervisors/route"
)

// SiwesStudentRoutes mounts everything a student principal may call.
func SiwesStudentRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentSelfRoutes(r, db)
	attendanceRoute.AttendanceStudentRoutes(r, db)
	logbookRoute.LogbookStudentRoutes(r, db)
}

// SiwesSupervisorRoutes mounts the review and grading surface.
func SiwesSupervisorRoutes(r fiber.Router, db *gorm.DB) {
	supervisorRoute.SupervisorSelfRoutes(r, db)
	studentRoute.StudentSupervisorRoutes(r, db)
	attendanceRoute.AttendanceSupervisorRoutes(r, db)
	logbookRoute.LogbookSupervisorRoutes(r, db)
	gradingRoute.GradingSupervisorRoutes(r, db)
}

// SiwesSharedRoutes: authenticated endpoints whose finer authorization lives
// in the controller (student-self or school supervisor).
func SiwesSharedRoutes(r fiber.Router, db *gorm.DB) {
	gradingRoute.GradingSharedRoutes(r, db)
}

// SiwesAdminRoutes: provisioning of students, supervisors and assignments.
func SiwesAdminRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentAdminRoutes(r, db)
	supervisorRoute.SupervisorAdminRoutes(r, db)
}
