package controller_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwes_backend/internals/constants"
	"siwes_backend/internals/features/siwes/students/dto"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	"siwes_backend/internals/testutil"
)

func TestCreateStudent(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	admin := testutil.Token(t, uuid.New(), constants.RoleAdmin)

	req := dto.CreateStudentRequest{
		UserID:       uuid.New(),
		MatricNumber: "ENG/2025/050",
		FullName:     "Ada Obi",
		Organisation: "Acme Engineering Ltd",
		Faculty:      "Engineering",
		Department:   "Computer Engineering",
	}
	resp := testutil.Do(t, app, http.MethodPost, "/api/students/", admin, req)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.StudentResponse
	testutil.DecodeData(t, resp, &out)
	assert.Equal(t, req.MatricNumber, out.MatricNumber)
	assert.False(t, out.SiwesLocked)
	assert.False(t, out.Graded)

	// the matric number is unique
	req.UserID = uuid.New()
	resp = testutil.Do(t, app, http.MethodPost, "/api/students/", admin, req)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateStudentRequiresAdmin(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	token := testutil.Token(t, uuid.New(), constants.RoleStudent)

	resp := testutil.Do(t, app, http.MethodPost, "/api/students/", token, dto.CreateStudentRequest{
		UserID:       uuid.New(),
		MatricNumber: "ENG/2025/051",
		FullName:     "Ada Obi",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStudentMe(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/052")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	var out dto.StudentResponse
	resp := testutil.Do(t, app, http.MethodGet, "/api/students/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &out)
	assert.Equal(t, student.StudentID, out.StudentID)

	// a user without a placement profile
	orphan := testutil.Token(t, uuid.New(), constants.RoleStudent)
	resp = testutil.Do(t, app, http.MethodGet, "/api/students/me", orphan, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMePartial(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/053")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	org := "Globex Power Systems"
	supName := "Engr. T. Bello"
	supEmail := "t.bello@globex.example"
	resp := testutil.Do(t, app, http.MethodPut, "/api/students/me", token, dto.UpdateProfileRequest{
		Organisation:            &org,
		IndustrySupervisorName:  &supName,
		IndustrySupervisorEmail: &supEmail,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.StudentResponse
	testutil.DecodeData(t, resp, &out)
	assert.Equal(t, org, out.Organisation)
	require.NotNil(t, out.IndustrySupervisorName)
	assert.Equal(t, supName, *out.IndustrySupervisorName)
	// untouched fields survive a partial update
	assert.Equal(t, student.StudentFaculty, out.Faculty)

	// empty update is a no-op
	resp = testutil.Do(t, app, http.MethodPut, "/api/students/me", token, dto.UpdateProfileRequest{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No changes", testutil.Decode(t, resp).Message)
}

func TestUpdateMeRejectsBadEmail(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/054")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	bad := "not-an-email"
	resp := testutil.Do(t, app, http.MethodPut, "/api/students/me", token, dto.UpdateProfileRequest{
		IndustrySupervisorEmail: &bad,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssignedStudents(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	school := testutil.SeedSupervisor(t, db, supervisorModel.SupervisorTypeSchool)
	token := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	s1 := testutil.SeedStudent(t, db, "ENG/2025/055")
	testutil.SeedStudent(t, db, "ENG/2025/056") // unassigned
	testutil.SeedAssignment(t, db, school, s1)

	var out []dto.StudentResponse
	resp := testutil.Do(t, app, http.MethodGet, "/api/students/assigned", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, s1.StudentID, out[0].StudentID)
}
