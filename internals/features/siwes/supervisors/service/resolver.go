package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/supervisors/model"
)

// ErrNotAssigned means no active assignment binds the supervisor to the
// student for the requested tier.
var ErrNotAssigned = errors.New("supervisor is not assigned to this student")

// Resolver answers the authorization questions the week state machine and
// the grading engine ask: who is this supervisor, and which students are
// theirs. Read-mostly; nothing here mutates assignments.
type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

// SupervisorByUser resolves the supervisor record for an authenticated user.
func (r *Resolver) SupervisorByUser(userID uuid.UUID) (*model.SupervisorModel, error) {
	var sup model.SupervisorModel
	if err := r.DB.Where("supervisor_user_id = ?", userID).First(&sup).Error; err != nil {
		return nil, err
	}
	return &sup, nil
}

// RequireType resolves the supervisor and checks the record's type. This is
// a type check against the Supervisor row, not just the role claim.
func (r *Resolver) RequireType(userID uuid.UUID, want model.SupervisorType) (*model.SupervisorModel, error) {
	sup, err := r.SupervisorByUser(userID)
	if err != nil {
		return nil, err
	}
	if sup.SupervisorType != want {
		return nil, ErrNotAssigned
	}
	return sup, nil
}

// IsAssigned reports whether an active assignment of the given tier binds
// the supervisor to the student.
func (r *Resolver) IsAssigned(supervisorID, studentID uuid.UUID, assignmentType model.SupervisorType) (bool, error) {
	var count int64
	err := r.DB.Model(&model.SupervisorAssignmentModel{}).
		Where("supervisor_assignment_supervisor_id = ?", supervisorID).
		Where("supervisor_assignment_student_id = ?", studentID).
		Where("supervisor_assignment_type = ?", assignmentType).
		Where("supervisor_assignment_active = ?", true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignedStudentIDs lists the students bound to a supervisor across active
// assignments of any tier.
func (r *Resolver) AssignedStudentIDs(supervisorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.Model(&model.SupervisorAssignmentModel{}).
		Where("supervisor_assignment_supervisor_id = ?", supervisorID).
		Where("supervisor_assignment_active = ?", true).
		Distinct().
		Pluck("supervisor_assignment_student_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
