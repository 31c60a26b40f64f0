package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwes_backend/internals/features/siwes/attendance/model"
	service "siwes_backend/internals/features/siwes/attendance/service"
	"siwes_backend/internals/testutil"
)

func TestStudentStats(t *testing.T) {
	db := testutil.OpenDB(t)
	student := testutil.SeedStudent(t, db, "ENG/2025/010")

	day1 := model.DateOnly(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	out1 := day1.Add(16*time.Hour + 30*time.Minute)
	records := []model.AttendanceRecordModel{
		{
			AttendanceRecordStudentID:    student.StudentID,
			AttendanceRecordDate:         day1,
			AttendanceRecordCheckInTime:  day1.Add(8 * time.Hour),
			AttendanceRecordCheckOutTime: &out1, // 8.5h
			AttendanceRecordVerified:     true,
		},
		{
			// open day: checked in, never out
			AttendanceRecordStudentID:   student.StudentID,
			AttendanceRecordDate:        day2,
			AttendanceRecordCheckInTime: day2.Add(9 * time.Hour),
			AttendanceRecordVerified:    true,
		},
		{
			AttendanceRecordStudentID:   student.StudentID,
			AttendanceRecordDate:        day3,
			AttendanceRecordCheckInTime: day3.Add(8 * time.Hour),
			AttendanceRecordVerified:    false,
		},
	}
	for i := range records {
		require.NoError(t, db.Create(&records[i]).Error)
	}

	stats, err := service.NewStatsService(db).StudentStats(student.StudentID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalDays)
	assert.Equal(t, 1, stats.CompletedDays)
	assert.Equal(t, 2, stats.VerifiedDays)
	assert.Equal(t, 8.5, stats.TotalHours)
}

// A check-out earlier than its check-in contributes zero hours, never a
// negative sum.
func TestStudentStatsClampsNegativeDuration(t *testing.T) {
	db := testutil.OpenDB(t)
	student := testutil.SeedStudent(t, db, "ENG/2025/011")

	day := model.DateOnly(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	out := day.Add(7 * time.Hour) // before check-in
	rec := model.AttendanceRecordModel{
		AttendanceRecordStudentID:    student.StudentID,
		AttendanceRecordDate:         day,
		AttendanceRecordCheckInTime:  day.Add(9 * time.Hour),
		AttendanceRecordCheckOutTime: &out,
		AttendanceRecordVerified:     true,
	}
	require.NoError(t, db.Create(&rec).Error)

	stats, err := service.NewStatsService(db).StudentStats(student.StudentID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.CompletedDays)
	assert.Equal(t, 0.0, stats.TotalHours)
}

func TestStudentStatsEmpty(t *testing.T) {
	db := testutil.OpenDB(t)
	student := testutil.SeedStudent(t, db, "ENG/2025/012")

	stats, err := service.NewStatsService(db).StudentStats(student.StudentID)
	require.NoError(t, err)
	assert.Equal(t, service.StudentStats{}, stats)
}
