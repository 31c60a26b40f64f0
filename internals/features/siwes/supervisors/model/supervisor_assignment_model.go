package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupervisorAssignmentModel binds (supervisor, student, academic session,
// assignment_type). The approval state machine and the grading engine read
// it for authorization; they never mutate it.
type SupervisorAssignmentModel struct {
	SupervisorAssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:supervisor_assignment_id" json:"supervisor_assignment_id"`

	SupervisorAssignmentSupervisorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_pair;column:supervisor_assignment_supervisor_id" json:"supervisor_assignment_supervisor_id"`
	SupervisorAssignmentStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_pair;column:supervisor_assignment_student_id" json:"supervisor_assignment_student_id"`

	SupervisorAssignmentSession string         `gorm:"not null;uniqueIndex:uq_assignment_pair;column:supervisor_assignment_session" json:"supervisor_assignment_session"`
	SupervisorAssignmentType    SupervisorType `gorm:"not null;uniqueIndex:uq_assignment_pair;column:supervisor_assignment_type" json:"supervisor_assignment_type"`

	SupervisorAssignmentActive bool `gorm:"not null;default:true;column:supervisor_assignment_active" json:"supervisor_assignment_active"`

	SupervisorAssignmentCreatedAt time.Time      `gorm:"column:supervisor_assignment_created_at;autoCreateTime" json:"supervisor_assignment_created_at"`
	SupervisorAssignmentUpdatedAt *time.Time     `gorm:"column:supervisor_assignment_updated_at;autoUpdateTime" json:"supervisor_assignment_updated_at,omitempty"`
	SupervisorAssignmentDeletedAt gorm.DeletedAt `gorm:"column:supervisor_assignment_deleted_at;index" json:"supervisor_assignment_deleted_at,omitempty"`
}

func (SupervisorAssignmentModel) TableName() string { return "supervisor_assignments" }

func (m *SupervisorAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.SupervisorAssignmentID == uuid.Nil {
		m.SupervisorAssignmentID = uuid.New()
	}
	return nil
}
