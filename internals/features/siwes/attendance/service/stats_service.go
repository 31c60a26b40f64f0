package service

import (
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siwes_backend/internals/features/siwes/attendance/model"
)

// StudentStats is the read-only aggregation over a student's ledger.
type StudentStats struct {
	TotalDays     int     `json:"total_days"`
	CompletedDays int     `json:"completed_days"` // both timestamps present
	VerifiedDays  int     `json:"verified_days"`
	TotalHours    float64 `json:"total_hours"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// StudentStats sums hours as wall-clock differences within each day. A
// check-out earlier than its check-in contributes zero hours, not a negative
// number; the anomaly is logged, not repaired.
func (s *StatsService) StudentStats(studentID uuid.UUID) (StudentStats, error) {
	var records []model.AttendanceRecordModel
	if err := s.DB.
		Where("attendance_record_student_id = ?", studentID).
		Order("attendance_record_date ASC").
		Find(&records).Error; err != nil {
		return StudentStats{}, err
	}

	stats := StudentStats{TotalDays: len(records)}
	for _, rec := range records {
		if rec.AttendanceRecordVerified {
			stats.VerifiedDays++
		}
		if rec.AttendanceRecordCheckOutTime == nil {
			continue
		}
		stats.CompletedDays++
		d := rec.AttendanceRecordCheckOutTime.Sub(rec.AttendanceRecordCheckInTime)
		if d < 0 {
			log.Printf("[WARN] attendance record %s has check-out before check-in; counting zero hours",
				rec.AttendanceRecordID)
			d = 0
		}
		stats.TotalHours += d.Hours()
	}
	stats.TotalHours = round2(stats.TotalHours)
	return stats, nil
}

// CheckedInDays counts records with a check-in, the input to the attendance
// sub-score.
func (s *StatsService) CheckedInDays(studentID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
