package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeModel is the capped 30-point final grade, one live row per
// (student, supervisor); resubmission updates in place. Writing a Grade is
// what flips the student's graded/siwes_locked flags.
type GradeModel struct {
	GradeID uuid.UUID `gorm:"type:uuid;primaryKey;column:grade_id" json:"grade_id"`

	GradeStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_student_supervisor;column:grade_student_id" json:"grade_student_id"`
	GradeSupervisorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grade_student_supervisor;column:grade_supervisor_id" json:"grade_supervisor_id"`

	GradeAttendanceScore         float64 `gorm:"not null;column:grade_attendance_score" json:"grade_attendance_score"`                   // <= 10
	GradeWeeklyReportsScore      float64 `gorm:"not null;column:grade_weekly_reports_score" json:"grade_weekly_reports_score"`          // <= 15
	GradeSupervisorApprovalScore float64 `gorm:"not null;column:grade_supervisor_approval_score" json:"grade_supervisor_approval_score"` // <= 5
	GradeTotalScore              float64 `gorm:"not null;column:grade_total_score" json:"grade_total_score"`                            // min(30, sum)

	GradeLetter         string  `gorm:"not null;column:grade_letter" json:"grade_letter"`
	// No column default: GORM drops zero-valued fields with one from the
	// INSERT, so a manual-override false would never reach the database.
	GradeAutoCalculated bool    `gorm:"not null;column:grade_auto_calculated" json:"grade_auto_calculated"`
	GradeRemarks        *string `gorm:"column:grade_remarks" json:"grade_remarks,omitempty"`

	GradeCreatedAt time.Time  `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt *time.Time `gorm:"column:grade_updated_at;autoUpdateTime" json:"grade_updated_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}
