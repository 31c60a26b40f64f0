package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel is the placement profile for one student in the 24-week
// programme. The graded/siwes_locked pair is flipped only by grade
// submission; once locked, the student's attendance and logbook records are
// write-closed. Students are never hard-deleted.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`

	StudentUserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:student_user_id" json:"student_user_id"`
	StudentMatricNumber string    `gorm:"not null;uniqueIndex;column:student_matric_number" json:"student_matric_number"`
	StudentFullName     string    `gorm:"not null;column:student_full_name" json:"student_full_name"`

	// placement metadata
	StudentOrganisation string `gorm:"column:student_organisation" json:"student_organisation"`
	StudentFaculty      string `gorm:"column:student_faculty" json:"student_faculty"`
	StudentDepartment   string `gorm:"column:student_department" json:"student_department"`

	// denormalized supervisor contacts shown on the student dashboard
	StudentIndustrySupervisorName  *string `gorm:"column:student_industry_supervisor_name" json:"student_industry_supervisor_name,omitempty"`
	StudentIndustrySupervisorEmail *string `gorm:"column:student_industry_supervisor_email" json:"student_industry_supervisor_email,omitempty"`
	StudentSchoolSupervisorName    *string `gorm:"column:student_school_supervisor_name" json:"student_school_supervisor_name,omitempty"`
	StudentSchoolSupervisorEmail   *string `gorm:"column:student_school_supervisor_email" json:"student_school_supervisor_email,omitempty"`

	StudentGraded        bool       `gorm:"not null;default:false;column:student_graded" json:"student_graded"`
	StudentSiwesLocked   bool       `gorm:"not null;default:false;column:student_siwes_locked" json:"student_siwes_locked"`
	StudentSiwesLockedAt *time.Time `gorm:"column:student_siwes_locked_at" json:"student_siwes_locked_at,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
