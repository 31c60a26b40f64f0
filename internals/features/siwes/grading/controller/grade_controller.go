package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"siwes_backend/internals/constants"
	"siwes_backend/internals/features/siwes/grading/dto"
	"siwes_backend/internals/features/siwes/grading/model"
	"siwes_backend/internals/features/siwes/grading/service"
	studentModel "siwes_backend/internals/features/siwes/students/model"
	studentService "siwes_backend/internals/features/siwes/students/service"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	supervisorService "siwes_backend/internals/features/siwes/supervisors/service"
	helper "siwes_backend/internals/helpers"
)

type GradeController struct {
	DB *gorm.DB
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{DB: db}
}

/* ===================== SUBMIT ===================== */
// POST /grading/submit-grade
func (ctrl *GradeController) SubmitGrade(c *fiber.Ctx) error {
	sup, err := ctrl.requireSchoolSupervisor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SubmitGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if req.WeeklyReportsOverride != nil &&
		(*req.WeeklyReportsOverride < 0 || *req.WeeklyReportsOverride > service.WeeklyReportsCap) {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.CodeInvalidOverride,
			"Weekly-reports override must be between 0 and 15")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	guard := studentService.NewLockGuard(ctrl.DB)
	if _, err := guard.StudentByID(req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var grade model.GradeModel
	var breakdown service.Breakdown
	// Grade upsert and lock flip commit or fail together; a Grade must never
	// exist without the lock having taken effect.
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		svc := service.New(tx)
		breakdown = svc.ComputeBreakdown(req.StudentID)
		if breakdown.Confidence == service.ConfidencePartial {
			// a degraded read may not become a student's final grade
			return fiber.NewError(fiber.StatusInternalServerError,
				"Grade computation was incomplete; please retry")
		}
		if req.WeeklyReportsOverride != nil {
			breakdown = service.ApplyWeeklyOverride(breakdown, *req.WeeklyReportsOverride)
		}

		grade = model.GradeModel{
			GradeStudentID:               req.StudentID,
			GradeSupervisorID:            sup.SupervisorID,
			GradeAttendanceScore:         breakdown.AttendanceScore,
			GradeWeeklyReportsScore:      breakdown.WeeklyReportsScore,
			GradeSupervisorApprovalScore: breakdown.SupervisorApprovalScore,
			GradeTotalScore:              breakdown.TotalScore,
			GradeLetter:                  breakdown.Letter,
			GradeAutoCalculated:          req.WeeklyReportsOverride == nil,
			GradeRemarks:                 req.Remarks,
		}

		// one live Grade per (student, supervisor): resubmission updates in
		// place, and a concurrent insert race settles on the constraint
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "grade_student_id"},
				{Name: "grade_supervisor_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"grade_attendance_score",
				"grade_weekly_reports_score",
				"grade_supervisor_approval_score",
				"grade_total_score",
				"grade_letter",
				"grade_auto_calculated",
				"grade_remarks",
			}),
		}).Create(&grade).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to persist grade")
		}

		// the locking gate: irreversible through this API
		now := time.Now()
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", req.StudentID).
			Updates(map[string]any{
				"student_graded":          true,
				"student_siwes_locked":    true,
				"student_siwes_locked_at": now,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to lock student records")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Grade submitted", fiber.Map{
		"grade":     dto.NewGradeResponse(grade),
		"breakdown": breakdown,
	})
}

/* ===================== PREVIEW ===================== */
// GET /grading/preview/:studentId
func (ctrl *GradeController) PreviewGrade(c *fiber.Ctx) error {
	if _, err := ctrl.requireSchoolSupervisor(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	guard := studentService.NewLockGuard(ctrl.DB)
	if _, err := guard.StudentByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	svc := service.New(ctrl.DB)
	breakdown := svc.ComputeBreakdown(studentID)

	return helper.JsonOK(c, "", dto.PreviewResponse{
		StudentID: studentID,
		Breakdown: breakdown,
	})
}

/* ===================== GET ===================== */
// GET /grading/get-grade/:studentId — student-self or school supervisor.
func (ctrl *GradeController) GetGrade(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	role := helper.GetUserRole(c)
	switch role {
	case constants.RoleStudent:
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		guard := studentService.NewLockGuard(ctrl.DB)
		student, err := guard.StudentByUserID(userID)
		if err != nil || student.StudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own grade")
		}
	default:
		if _, err := ctrl.requireSchoolSupervisor(c); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	var grade model.GradeModel
	err = ctrl.DB.Where("grade_student_id = ?", studentID).First(&grade).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No grade yet", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read grade")
	}

	return helper.JsonOK(c, "", dto.NewGradeResponse(grade))
}

/* ===================== internals ===================== */

func (ctrl *GradeController) requireSchoolSupervisor(c *fiber.Ctx) (*supervisorModel.SupervisorModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	resolver := supervisorService.NewResolver(ctrl.DB)
	sup, err := resolver.RequireType(userID, supervisorModel.SupervisorTypeSchool)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, supervisorService.ErrNotAssigned) {
			return nil, fiber.NewError(fiber.StatusForbidden, "School supervisor record required")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load supervisor")
	}
	return sup, nil
}
