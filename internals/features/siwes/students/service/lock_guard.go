package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/students/model"
)

// ErrLocked means the student's SIWES records are write-closed because a
// final grade has been submitted. There is no unlock path.
var ErrLocked = errors.New("siwes records are locked")

type LockGuard struct {
	DB *gorm.DB
}

func NewLockGuard(db *gorm.DB) *LockGuard {
	return &LockGuard{DB: db}
}

// EnsureNotLocked loads the student and fails with ErrLocked when the
// locking gate is closed. Every attendance write and every student-authored
// week write goes through this first. Note this is an application check, not
// a schema constraint; a write racing the lock flip can still land.
func (g *LockGuard) EnsureNotLocked(studentID uuid.UUID) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := g.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return nil, err
	}
	if student.StudentSiwesLocked {
		return &student, ErrLocked
	}
	return &student, nil
}

// StudentByID loads a student by primary key.
func (g *LockGuard) StudentByID(studentID uuid.UUID) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := g.DB.Where("student_id = ?", studentID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// StudentByUserID resolves the placement profile for the authenticated user.
func (g *LockGuard) StudentByUserID(userID uuid.UUID) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := g.DB.Where("student_user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}
