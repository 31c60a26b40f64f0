package dto

import (
	"time"

	"github.com/google/uuid"

	m "siwes_backend/internals/features/siwes/grading/model"
	"siwes_backend/internals/features/siwes/grading/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// SubmitGradeRequest finalises a student's grade. The only overridable
// sub-score is weekly reports, bounded to its 15-point cap.
type SubmitGradeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required,uuid4"`

	WeeklyReportsOverride *float64 `json:"weekly_reports_override" validate:"omitempty,min=0,max=15"`
	Remarks               *string  `json:"remarks" validate:"omitempty,max=2000"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type GradeResponse struct {
	GradeID           uuid.UUID `json:"grade_id"`
	GradeStudentID    uuid.UUID `json:"grade_student_id"`
	GradeSupervisorID uuid.UUID `json:"grade_supervisor_id"`

	AttendanceScore         float64 `json:"grade_attendance_score"`
	WeeklyReportsScore      float64 `json:"grade_weekly_reports_score"`
	SupervisorApprovalScore float64 `json:"grade_supervisor_approval_score"`
	TotalScore              float64 `json:"grade_total_score"`
	Letter                  string  `json:"grade_letter"`

	AutoCalculated bool    `json:"grade_auto_calculated"`
	Remarks        *string `json:"grade_remarks,omitempty"`

	CreatedAt time.Time  `json:"grade_created_at"`
	UpdatedAt *time.Time `json:"grade_updated_at,omitempty"`
}

type PreviewResponse struct {
	StudentID uuid.UUID         `json:"student_id"`
	Breakdown service.Breakdown `json:"breakdown"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func NewGradeResponse(mdl m.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:                 mdl.GradeID,
		GradeStudentID:          mdl.GradeStudentID,
		GradeSupervisorID:       mdl.GradeSupervisorID,
		AttendanceScore:         mdl.GradeAttendanceScore,
		WeeklyReportsScore:      mdl.GradeWeeklyReportsScore,
		SupervisorApprovalScore: mdl.GradeSupervisorApprovalScore,
		TotalScore:              mdl.GradeTotalScore,
		Letter:                  mdl.GradeLetter,
		AutoCalculated:          mdl.GradeAutoCalculated,
		Remarks:                 mdl.GradeRemarks,
		CreatedAt:               mdl.GradeCreatedAt,
		UpdatedAt:               mdl.GradeUpdatedAt,
	}
}
