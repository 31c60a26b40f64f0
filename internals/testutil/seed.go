package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	attendanceModel "siwes_backend/internals/features/siwes/attendance/model"
	logbookModel "siwes_backend/internals/features/siwes/logbook/model"
	studentModel "siwes_backend/internals/features/siwes/students/model"
	supervisorModel "siwes_backend/internals/features/siwes/supervisors/model"
)

// SeedStudent inserts a placement profile with a fresh user id.
func SeedStudent(t *testing.T, db *gorm.DB, matric string) *studentModel.StudentModel {
	t.Helper()

	s := studentModel.StudentModel{
		StudentUserID:       uuid.New(),
		StudentMatricNumber: matric,
		StudentFullName:     "Student " + matric,
		StudentOrganisation: "Acme Engineering Ltd",
		StudentFaculty:      "Engineering",
		StudentDepartment:   "Computer Engineering",
	}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

// SeedSupervisor inserts a supervisor of the given tier.
func SeedSupervisor(t *testing.T, db *gorm.DB, supType supervisorModel.SupervisorType) *supervisorModel.SupervisorModel {
	t.Helper()

	s := supervisorModel.SupervisorModel{
		SupervisorUserID:   uuid.New(),
		SupervisorType:     supType,
		SupervisorFullName: "Supervisor " + uuid.NewString()[:8],
		SupervisorEmail:    uuid.NewString()[:8] + "@example.edu",
	}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

// SeedAssignment binds a supervisor to a student for the current session.
func SeedAssignment(t *testing.T, db *gorm.DB, sup *supervisorModel.SupervisorModel, student *studentModel.StudentModel) {
	t.Helper()

	a := supervisorModel.SupervisorAssignmentModel{
		SupervisorAssignmentSupervisorID: sup.SupervisorID,
		SupervisorAssignmentStudentID:    student.StudentID,
		SupervisorAssignmentSession:      "2025/2026",
		SupervisorAssignmentType:         sup.SupervisorType,
		SupervisorAssignmentActive:       true,
	}
	require.NoError(t, db.Create(&a).Error)
}

// SeedAttendance inserts n checked-in days ending the given number of days
// before today, each with an 8-hour completed pair.
func SeedAttendance(t *testing.T, db *gorm.DB, studentID uuid.UUID, n int) {
	t.Helper()

	base := time.Now().AddDate(0, 0, -n-1)
	for i := 0; i < n; i++ {
		day := attendanceModel.DateOnly(base.AddDate(0, 0, i))
		checkIn := day.Add(8 * time.Hour)
		checkOut := day.Add(16 * time.Hour)
		rec := attendanceModel.AttendanceRecordModel{
			AttendanceRecordStudentID:    studentID,
			AttendanceRecordDate:         day,
			AttendanceRecordCheckInTime:  checkIn,
			AttendanceRecordCheckOutTime: &checkOut,
			AttendanceRecordVerified:     true,
		}
		require.NoError(t, db.Create(&rec).Error)
	}
}

// SeedWeek inserts a logbook week in the given status.
func SeedWeek(t *testing.T, db *gorm.DB, studentID uuid.UUID, number int, status logbookModel.WeekStatus) *logbookModel.LogbookWeekModel {
	t.Helper()

	w := logbookModel.LogbookWeekModel{
		LogbookWeekStudentID: studentID,
		LogbookWeekNumber:    number,
		LogbookWeekMonday:    "Routine maintenance",
		LogbookWeekStatus:    status,
	}
	if status != logbookModel.WeekStatusDraft {
		now := time.Now()
		w.LogbookWeekSubmittedAt = &now
	}
	require.NoError(t, db.Create(&w).Error)
	return &w
}
