package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwes_backend/internals/constants"
	"siwes_backend/internals/features/siwes/logbook/dto"
	"siwes_backend/internals/features/siwes/logbook/model"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
	helper "siwes_backend/internals/helpers"
	"siwes_backend/internals/testutil"
)

const (
	supervisorTypeIndustry = supervisorModel.SupervisorTypeIndustry
	supervisorTypeSchool   = supervisorModel.SupervisorTypeSchool
)

func submitBody(week int, saveOnly bool) dto.SubmitWeekRequest {
	return dto.SubmitWeekRequest{
		WeekNumber:   week,
		Monday:       "Configured the test rig",
		Tuesday:      "Calibration runs",
		EvidenceRefs: []string{"blob://evidence/rig-setup.jpg"},
		SaveOnly:     saveOnly,
	}
}

func TestSubmitWeekDraftThenSubmit(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/030")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	// save-only keeps the week in draft
	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(1, true))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var week dto.LogbookWeekResponse
	testutil.DecodeData(t, resp, &week)
	assert.Equal(t, model.WeekStatusDraft, week.LogbookWeekStatus)
	assert.Nil(t, week.SubmittedAt)
	assert.Equal(t, []string{"blob://evidence/rig-setup.jpg"}, week.EvidenceRefs)

	// submitting updates the same row, never creates a second one
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(1, false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &week)
	assert.Equal(t, model.WeekStatusSubmitted, week.LogbookWeekStatus)
	require.NotNil(t, week.SubmittedAt)

	var weeks []dto.LogbookWeekResponse
	resp = testutil.Do(t, app, http.MethodGet, "/api/weeks/mine", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &weeks)
	assert.Len(t, weeks, 1)
}

func TestSubmitWeekRejectsBadWeekNumber(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/031")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	for _, n := range []int{0, 25, -3} {
		resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(n, false))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, helper.CodeInvalidWeekNumber, testutil.Decode(t, resp).ErrorCode)
	}
}

func TestSubmitWeekLocked(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/032")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	require.NoError(t, db.Model(student).Update("student_siwes_locked", true).Error)

	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(1, false))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, helper.CodeLocked, testutil.Decode(t, resp).ErrorCode)
}

func TestSubmittedWeekNotEditable(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/033")
	token := testutil.Token(t, student.StudentUserID, constants.RoleStudent)

	testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(2, false))

	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", token, submitBody(2, true))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReviewForwardThenApprove(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/034")
	industry := testutil.SeedSupervisor(t, db, supervisorTypeIndustry)
	school := testutil.SeedSupervisor(t, db, supervisorTypeSchool)
	testutil.SeedAssignment(t, db, industry, student)
	testutil.SeedAssignment(t, db, school, student)

	studentToken := testutil.Token(t, student.StudentUserID, constants.RoleStudent)
	industryToken := testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor)
	schoolToken := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", studentToken, submitBody(3, false))

	// industry tier stamps and forwards
	stamp := "blob://stamps/acme-week-3.png"
	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", industryToken, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 3,
		Action:     dto.ReviewActionForward,
		StampRef:   &stamp,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var week dto.LogbookWeekResponse
	testutil.DecodeData(t, resp, &week)
	assert.Equal(t, model.WeekStatusForwarded, week.LogbookWeekStatus)
	require.NotNil(t, week.StampRef)
	assert.Equal(t, stamp, *week.StampRef)
	assert.NotNil(t, week.IndustryApprovedAt)

	// school tier settles it with a score
	score := 85.0
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", schoolToken, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 3,
		Action:     dto.ReviewActionApprove,
		Score:      &score,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.DecodeData(t, resp, &week)
	assert.Equal(t, model.WeekStatusApproved, week.LogbookWeekStatus)
	assert.NotNil(t, week.SchoolApprovedAt)
	require.NotNil(t, week.Score)
	assert.Equal(t, 85.0, *week.Score)

	// approved is terminal for the student...
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", studentToken, submitBody(3, false))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// ...and for the reviewers
	reason := "changed my mind"
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", schoolToken, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 3,
		Action:     dto.ReviewActionReject,
		Reason:     &reason,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, helper.CodeIllegalTransition, testutil.Decode(t, resp).ErrorCode)
}

func TestRejectRequiresReason(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/035")
	industry := testutil.SeedSupervisor(t, db, supervisorTypeIndustry)
	testutil.SeedAssignment(t, db, industry, student)
	token := testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor)

	testutil.SeedWeek(t, db, student.StudentID, 4, model.WeekStatusSubmitted)

	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", token, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 4,
		Action:     dto.ReviewActionReject,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, helper.CodeMissingReason, testutil.Decode(t, resp).ErrorCode)
}

func TestRejectThenResubmit(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/036")
	industry := testutil.SeedSupervisor(t, db, supervisorTypeIndustry)
	testutil.SeedAssignment(t, db, industry, student)

	studentToken := testutil.Token(t, student.StudentUserID, constants.RoleStudent)
	industryToken := testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor)

	testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", studentToken, submitBody(5, false))

	reason := "Tuesday entry does not match the site log"
	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", industryToken, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 5,
		Action:     dto.ReviewActionReject,
		Reason:     &reason,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var week dto.LogbookWeekResponse
	testutil.DecodeData(t, resp, &week)
	assert.Equal(t, model.WeekStatusRejected, week.LogbookWeekStatus)
	require.NotNil(t, week.RejectionReason)
	assert.Equal(t, reason, *week.RejectionReason)

	// resubmission reuses the row and clears the rejection; decode into a
	// fresh struct so the omitted rejection_reason cannot linger from the
	// earlier response
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", studentToken, submitBody(5, false))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var resubmitted dto.LogbookWeekResponse
	testutil.DecodeData(t, resp, &resubmitted)
	assert.Equal(t, model.WeekStatusSubmitted, resubmitted.LogbookWeekStatus)
	assert.Nil(t, resubmitted.RejectionReason)
}

func TestWeekRoutesRoleSeparation(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/048")
	school := testutil.SeedSupervisor(t, db, supervisorTypeSchool)
	testutil.SeedAssignment(t, db, school, student)

	studentToken := testutil.Token(t, student.StudentUserID, constants.RoleStudent)
	supToken := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	// students never review
	reason := "not theirs to call"
	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", studentToken, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 1,
		Action:     dto.ReviewActionReject,
		Reason:     &reason,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// supervisors never submit or read /mine
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/submit-week", supToken, submitBody(1, false))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = testutil.Do(t, app, http.MethodGet, "/api/weeks/mine", supToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// but the supervisor-side routes under the same prefix stay open
	resp = testutil.Do(t, app, http.MethodGet, "/api/weeks/student/"+student.StudentID.String(), supToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReviewRequiresAssignment(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/037")
	industry := testutil.SeedSupervisor(t, db, supervisorTypeIndustry)
	token := testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor)

	testutil.SeedWeek(t, db, student.StudentID, 6, model.WeekStatusSubmitted)

	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", token, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 6,
		Action:     dto.ReviewActionForward,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, helper.CodeNotAssigned, testutil.Decode(t, resp).ErrorCode)
}

func TestReviewCrossTierForbidden(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/038")
	industry := testutil.SeedSupervisor(t, db, supervisorTypeIndustry)
	school := testutil.SeedSupervisor(t, db, supervisorTypeSchool)
	testutil.SeedAssignment(t, db, industry, student)
	testutil.SeedAssignment(t, db, school, student)

	testutil.SeedWeek(t, db, student.StudentID, 7, model.WeekStatusSubmitted)

	// industry supervisors never approve
	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week",
		testutil.Token(t, industry.SupervisorUserID, constants.RoleSupervisor),
		dto.ReviewWeekRequest{StudentID: student.StudentID, WeekNumber: 7, Action: dto.ReviewActionApprove})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// school supervisors never forward
	resp = testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week",
		testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor),
		dto.ReviewWeekRequest{StudentID: student.StudentID, WeekNumber: 7, Action: dto.ReviewActionForward})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestReviewWeekNotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t, db)
	student := testutil.SeedStudent(t, db, "ENG/2025/039")
	school := testutil.SeedSupervisor(t, db, supervisorTypeSchool)
	testutil.SeedAssignment(t, db, school, student)
	token := testutil.Token(t, school.SupervisorUserID, constants.RoleSupervisor)

	resp := testutil.Do(t, app, http.MethodPost, "/api/weeks/review-week", token, dto.ReviewWeekRequest{
		StudentID:  student.StudentID,
		WeekNumber: 8,
		Action:     dto.ReviewActionApprove,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
