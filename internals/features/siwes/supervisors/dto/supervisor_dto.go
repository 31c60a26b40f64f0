package dto

import (
	"github.com/google/uuid"

	m "siwes_backend/internals/features/siwes/supervisors/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateSupervisorRequest struct {
	UserID       uuid.UUID        `json:"supervisor_user_id" validate:"required,uuid4"`
	Type         m.SupervisorType `json:"supervisor_type" validate:"required,oneof=school_supervisor industry_supervisor"`
	FullName     string           `json:"supervisor_full_name" validate:"required,max=200"`
	Email        string           `json:"supervisor_email" validate:"required,email"`
	Organisation *string          `json:"supervisor_organisation" validate:"omitempty,max=200"`
}

type CreateAssignmentRequest struct {
	SupervisorID uuid.UUID        `json:"supervisor_assignment_supervisor_id" validate:"required,uuid4"`
	StudentID    uuid.UUID        `json:"supervisor_assignment_student_id" validate:"required,uuid4"`
	Session      string           `json:"supervisor_assignment_session" validate:"required,max=20"` // e.g. "2025/2026"
	Type         m.SupervisorType `json:"supervisor_assignment_type" validate:"required,oneof=school_supervisor industry_supervisor"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SupervisorResponse struct {
	SupervisorID uuid.UUID        `json:"supervisor_id"`
	UserID       uuid.UUID        `json:"supervisor_user_id"`
	Type         m.SupervisorType `json:"supervisor_type"`
	FullName     string           `json:"supervisor_full_name"`
	Email        string           `json:"supervisor_email"`
	Organisation *string          `json:"supervisor_organisation,omitempty"`
}

type AssignmentResponse struct {
	AssignmentID uuid.UUID        `json:"supervisor_assignment_id"`
	SupervisorID uuid.UUID        `json:"supervisor_assignment_supervisor_id"`
	StudentID    uuid.UUID        `json:"supervisor_assignment_student_id"`
	Session      string           `json:"supervisor_assignment_session"`
	Type         m.SupervisorType `json:"supervisor_assignment_type"`
	Active       bool             `json:"supervisor_assignment_active"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func (r CreateSupervisorRequest) ToModel() m.SupervisorModel {
	return m.SupervisorModel{
		SupervisorUserID:       r.UserID,
		SupervisorType:         r.Type,
		SupervisorFullName:     r.FullName,
		SupervisorEmail:        r.Email,
		SupervisorOrganisation: r.Organisation,
	}
}

func (r CreateAssignmentRequest) ToModel() m.SupervisorAssignmentModel {
	return m.SupervisorAssignmentModel{
		SupervisorAssignmentSupervisorID: r.SupervisorID,
		SupervisorAssignmentStudentID:    r.StudentID,
		SupervisorAssignmentSession:      r.Session,
		SupervisorAssignmentType:         r.Type,
		SupervisorAssignmentActive:       true,
	}
}

func NewSupervisorResponse(mdl m.SupervisorModel) SupervisorResponse {
	return SupervisorResponse{
		SupervisorID: mdl.SupervisorID,
		UserID:       mdl.SupervisorUserID,
		Type:         mdl.SupervisorType,
		FullName:     mdl.SupervisorFullName,
		Email:        mdl.SupervisorEmail,
		Organisation: mdl.SupervisorOrganisation,
	}
}

func NewAssignmentResponse(mdl m.SupervisorAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: mdl.SupervisorAssignmentID,
		SupervisorID: mdl.SupervisorAssignmentSupervisorID,
		StudentID:    mdl.SupervisorAssignmentStudentID,
		Session:      mdl.SupervisorAssignmentSession,
		Type:         mdl.SupervisorAssignmentType,
		Active:       mdl.SupervisorAssignmentActive,
	}
}
