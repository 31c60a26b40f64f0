package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwes_backend/internals/constants"
	"siwes_backend/internals/features/siwes/attendance/dto"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	helper "siwes_backend/internals/helpers"
	"siwes_backend/internals/testutil"
)

func TestCheckInAndOut(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/020")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	// first check-in of the day
	resp := testutil.Do(t, app, http.MethodPost, "/api/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var rec dto.AttendanceRecordResponse
	env := testutil.DecodeData(t, resp, &rec)
	assert.True(t, env.Success)
	assert.Equal(t, student.StudentID, rec.AttendanceRecordStudentID)
	assert.True(t, rec.AttendanceRecordVerified)
	assert.Nil(t, rec.AttendanceRecordCheckOut)

	// second check-in is a duplicate
	resp = testutil.Do(t, app, http.MethodPost, "/api/attendance/check-in", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, helper.CodeAlreadyCheckedIn, testutil.Decode(t, resp).ErrorCode)

	// check-out completes the pair
	resp = testutil.Do(t, app, http.MethodPost, "/api/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env = testutil.DecodeData(t, resp, &rec)
	assert.True(t, env.Success)
	require.NotNil(t, rec.AttendanceRecordCheckOut)

	// the pair is immutable now
	resp = testutil.Do(t, app, http.MethodPost, "/api/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, helper.CodeAlreadyCheckedOut, testutil.Decode(t, resp).ErrorCode)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/021")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	resp := testutil.Do(t, app, http.MethodPost, "/api/attendance/check-out", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, helper.CodeNoCheckIn, testutil.Decode(t, resp).ErrorCode)
}

func TestAttendanceClosedWhenLocked(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/022")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	require.NoError(t, db.Model(student).Update("student_siwes_locked", true).Error)

	for _, path := range []string{"/api/attendance/check-in", "/api/attendance/check-out"} {
		resp := testutil.Do(t, app, http.MethodPost, path, token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		assert.Equal(t, helper.CodeLocked, testutil.Decode(t, resp).ErrorCode, path)
	}
}

func TestToday(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/023")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	var today dto.TodayResponse
	resp := testutil.Do(t, app, http.MethodGet, "/api/attendance/today", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &today)
	assert.False(t, today.CheckedIn)
	assert.Nil(t, today.Record)

	testutil.Do(t, app, http.MethodPost, "/api/attendance/check-in", token, nil)

	resp = testutil.Do(t, app, http.MethodGet, "/api/attendance/today", token, nil)
	testutil.DecodeData(t, resp, &today)
	assert.True(t, today.CheckedIn)
	assert.False(t, today.CheckedOut)
	require.NotNil(t, today.Record)
}

func TestHistoryCarriesStats(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/024")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	testutil.SeedAttendance(t, db, student.StudentID, 5)

	var hist dto.HistoryResponse
	resp := testutil.Do(t, app, http.MethodGet, "/api/attendance/history", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &hist)

	assert.Len(t, hist.Records, 5)
	assert.Equal(t, 5, hist.Stats.TotalDays)
	assert.Equal(t, 5, hist.Stats.CompletedDays)
	assert.Equal(t, 40.0, hist.Stats.TotalHours) // 5 x 8h
}

func TestStudentAttendanceRequiresAssignment(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/025")
	school := testutil.SeedSupervisor(t, db, supervisorModel.SupervisorTypeSchool)
	token := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	// not assigned yet
	resp := testutil.Do(t, app, http.MethodGet, "/api/attendance/student/"+student.StudentID.String(), token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, helper.CodeNotAssigned, testutil.Decode(t, resp).ErrorCode)

	testutil.SeedAssignment(t, db, school, student)
	testutil.SeedAttendance(t, db, student.StudentID, 3)

	var hist dto.HistoryResponse
	resp = testutil.Do(t, app, http.MethodGet, "/api/attendance/student/"+student.StudentID.String(), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &hist)
	assert.Len(t, hist.Records, 3)
}

func TestStudentAttendanceRejectsIndustrySupervisor(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/026")
	industry := testutil.SeedSupervisor(t, db, supervisorModel.SupervisorTypeIndustry)
	testutil.SeedAssignment(t, db, industry, student)
	token := testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor)

	resp := testutil.Do(t, app, http.MethodGet, "/api/attendance/student/"+student.StudentID.String(), token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSupervisorSummary(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	school := testutil.SeedSupervisor(t, db, supervisorModel.SupervisorTypeSchool)
	token := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	s1 := testutil.SeedStudent(t, db, "ENG/2025/027")
	s2 := testutil.SeedStudent(t, db, "ENG/2025/028")
	testutil.SeedAssignment(t, db, school, s1)
	testutil.SeedAssignment(t, db, school, s2)
	testutil.SeedAttendance(t, db, s1.StudentID, 4)

	var entries []dto.SummaryEntry
	resp := testutil.Do(t, app, http.MethodGet, "/api/attendance/supervisor/summary", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &entries)

	require.Len(t, entries, 2)
	byID := map[string]dto.SummaryEntry{}
	for _, e := range entries {
		byID[e.StudentID.String()] = e
	}
	assert.Equal(t, 4, byID[s1.StudentID.String()].Stats.TotalDays)
	assert.Equal(t, 0, byID[s2.StudentID.String()].Stats.TotalDays)
}

func TestAttendanceRequiresToken(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)

	resp := testutil.Do(t, app, http.MethodPost, "/api/attendance/check-in", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
