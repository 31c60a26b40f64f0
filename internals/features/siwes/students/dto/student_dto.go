package dto

import (
	"time"

	"github.com/google/uuid"

	m "siwes_backend/internals/features/siwes/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreateStudentRequest provisions a placement profile (admin only).
type CreateStudentRequest struct {
	UserID       uuid.UUID `json:"student_user_id" validate:"required,uuid4"`
	MatricNumber string    `json:"student_matric_number" validate:"required,max=50"`
	FullName     string    `json:"student_full_name" validate:"required,max=200"`

	Organisation string `json:"student_organisation" validate:"omitempty,max=200"`
	Faculty      string `json:"student_faculty" validate:"omitempty,max=200"`
	Department   string `json:"student_department" validate:"omitempty,max=200"`
}

// UpdateProfileRequest is the student's own profile edit (partial). Lock and
// graded flags are not client-writable.
type UpdateProfileRequest struct {
	Organisation *string `json:"student_organisation" validate:"omitempty,max=200"`
	Faculty      *string `json:"student_faculty" validate:"omitempty,max=200"`
	Department   *string `json:"student_department" validate:"omitempty,max=200"`

	IndustrySupervisorName  *string `json:"student_industry_supervisor_name" validate:"omitempty,max=200"`
	IndustrySupervisorEmail *string `json:"student_industry_supervisor_email" validate:"omitempty,email"`
	SchoolSupervisorName    *string `json:"student_school_supervisor_name" validate:"omitempty,max=200"`
	SchoolSupervisorEmail   *string `json:"student_school_supervisor_email" validate:"omitempty,email"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID    uuid.UUID `json:"student_id"`
	UserID       uuid.UUID `json:"student_user_id"`
	MatricNumber string    `json:"student_matric_number"`
	FullName     string    `json:"student_full_name"`

	Organisation string `json:"student_organisation"`
	Faculty      string `json:"student_faculty"`
	Department   string `json:"student_department"`

	IndustrySupervisorName  *string `json:"student_industry_supervisor_name,omitempty"`
	IndustrySupervisorEmail *string `json:"student_industry_supervisor_email,omitempty"`
	SchoolSupervisorName    *string `json:"student_school_supervisor_name,omitempty"`
	SchoolSupervisorEmail   *string `json:"student_school_supervisor_email,omitempty"`

	Graded        bool       `json:"student_graded"`
	SiwesLocked   bool       `json:"student_siwes_locked"`
	SiwesLockedAt *time.Time `json:"student_siwes_locked_at,omitempty"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentUserID:       r.UserID,
		StudentMatricNumber: r.MatricNumber,
		StudentFullName:     r.FullName,
		StudentOrganisation: r.Organisation,
		StudentFaculty:      r.Faculty,
		StudentDepartment:   r.Department,
	}
}

// ToUpdates builds the partial-update map; only supplied fields change.
func (r UpdateProfileRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.Organisation != nil {
		updates["student_organisation"] = *r.Organisation
	}
	if r.Faculty != nil {
		updates["student_faculty"] = *r.Faculty
	}
	if r.Department != nil {
		updates["student_department"] = *r.Department
	}
	if r.IndustrySupervisorName != nil {
		updates["student_industry_supervisor_name"] = *r.IndustrySupervisorName
	}
	if r.IndustrySupervisorEmail != nil {
		updates["student_industry_supervisor_email"] = *r.IndustrySupervisorEmail
	}
	if r.SchoolSupervisorName != nil {
		updates["student_school_supervisor_name"] = *r.SchoolSupervisorName
	}
	if r.SchoolSupervisorEmail != nil {
		updates["student_school_supervisor_email"] = *r.SchoolSupervisorEmail
	}
	return updates
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:               mdl.StudentID,
		UserID:                  mdl.StudentUserID,
		MatricNumber:            mdl.StudentMatricNumber,
		FullName:                mdl.StudentFullName,
		Organisation:            mdl.StudentOrganisation,
		Faculty:                 mdl.StudentFaculty,
		Department:              mdl.StudentDepartment,
		IndustrySupervisorName:  mdl.StudentIndustrySupervisorName,
		IndustrySupervisorEmail: mdl.StudentIndustrySupervisorEmail,
		SchoolSupervisorName:    mdl.StudentSchoolSupervisorName,
		SchoolSupervisorEmail:   mdl.StudentSchoolSupervisorEmail,
		Graded:                  mdl.StudentGraded,
		SiwesLocked:             mdl.StudentSiwesLocked,
		SiwesLockedAt:           mdl.StudentSiwesLockedAt,
	}
}

func NewStudentResponses(mdls []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewStudentResponse(mdl))
	}
	return out
}
