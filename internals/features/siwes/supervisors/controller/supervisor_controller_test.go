package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"siwes_backend/internals/constants"
	"siwes_backend/internals/features/siwes/supervisors/dto"
	"siwes_backend/internals/features/siwes/supervisors/model"
	"siwes_backend/internals/testutil"
)

func TestCreateSupervisorAndAssign(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	admin := testutil.Token(t, uuid.New(), constants.RoleAdmin)
	student := testutil.SeedStudent(t, db, "ENG/2025/060")

	resp := testutil.Do(t, app, http.MethodPost, "/api/supervisors/", admin, dto.CreateSupervisorRequest{
		UserID:   uuid.New(),
		Type:     model.SupervisorTypeIndustry,
		FullName: "Engr. K. Musa",
		Email:    "k.musa@acme.example",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var sup dto.SupervisorResponse
	testutil.DecodeData(t, resp, &sup)
	assert.Equal(t, model.SupervisorTypeIndustry, sup.Type)

	assignReq := dto.CreateAssignmentRequest{
		SupervisorID: sup.SupervisorID,
		StudentID:    student.StudentID,
		Session:      "2025/2026",
		Type:         model.SupervisorTypeIndustry,
	}
	resp = testutil.Do(t, app, http.MethodPost, "/api/assignments/", admin, assignReq)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var assignment dto.AssignmentResponse
	testutil.DecodeData(t, resp, &assignment)
	assert.True(t, assignment.Active)

	// the (supervisor, student, session, type) tuple is unique
	resp = testutil.Do(t, app, http.MethodPost, "/api/assignments/", admin, assignReq)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateSupervisorRejectsUnknownType(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	admin := testutil.Token(t, uuid.New(), constants.RoleAdmin)

	resp := testutil.Do(t, app, http.MethodPost, "/api/supervisors/", admin, dto.CreateSupervisorRequest{
		UserID:   uuid.New(),
		Type:     model.SupervisorType("line_manager"),
		FullName: "Engr. K. Musa",
		Email:    "k.musa@acme.example",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSupervisorMe(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	school := testutil.SeedSupervisor(t, db, model.SupervisorTypeSchool)
	token := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	var out dto.SupervisorResponse
	resp := testutil.Do(t, app, http.MethodGet, "/api/supervisors/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &out)
	assert.Equal(t, school.SupervisorID, out.SupervisorID)

	// a supervisor-role user without a record
	orphan := testutil.Token(t, uuid.New(), constants.RoleSupervisor)
	resp = testutil.Do(t, app, http.MethodGet, "/api/supervisors/me", orphan, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
