package service

import (
	"log"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "siwes_backend/internals/features/siwes/attendance/service"
	logbookModel "siwes_backend/internals/features/siwes/logbook/model"
)

// Fixed by policy: 10 attendance + 15 weekly reports + 5 supervisor
// approval, capped at 30. 144 = 24 weeks x 6 working days.
const (
	MaxAttendanceDays = 144
	TotalWeeks        = 24

	AttendanceCap    = 10.0
	WeeklyReportsCap = 15.0
	ApprovalCap      = 5.0
	TotalCap         = 30.0
)

// Confidence marks whether every sub-score was computed from a successful
// read. A failed sub-query degrades that score to zero instead of blocking
// the read, but the degradation must stay distinguishable from a genuinely
// low score.
type Confidence string

const (
	ConfidenceFull    Confidence = "full"
	ConfidencePartial Confidence = "partial"
)

// Breakdown is one computed grade.
type Breakdown struct {
	AttendanceScore         float64    `json:"attendance_score"`
	WeeklyReportsScore      float64    `json:"weekly_reports_score"`
	SupervisorApprovalScore float64    `json:"supervisor_approval_score"`
	TotalScore              float64    `json:"total_score"`
	Letter                  string     `json:"letter"`
	Confidence              Confidence `json:"grade_confidence"`
}

type GradingService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GradingService {
	return &GradingService{DB: db}
}

/* ===================== FORMULAS ===================== */

// AttendanceScoreFor: n checked-in days out of 144 scale to 10 points.
func AttendanceScoreFor(days int64) float64 {
	return round2(math.Min(AttendanceCap, float64(days)/MaxAttendanceDays*AttendanceCap))
}

// WeeklyReportsScoreFor: s submitted weeks out of 24 scale to 15 points.
func WeeklyReportsScoreFor(submitted int64) float64 {
	return round2(math.Min(WeeklyReportsCap, float64(submitted)/TotalWeeks*WeeklyReportsCap))
}

// ApprovalScoreFor: approved/submitted ratio scales to 5 points; zero
// submissions score zero.
func ApprovalScoreFor(approved, submitted int64) float64 {
	if submitted == 0 {
		return 0
	}
	return round2(math.Min(ApprovalCap, float64(approved)/float64(submitted)*ApprovalCap))
}

// TotalFor caps the sum at 30.
func TotalFor(attendance, weekly, approval float64) float64 {
	return round2(math.Min(TotalCap, attendance+weekly+approval))
}

// LetterFor maps a total to its letter grade.
func LetterFor(total float64) string {
	switch {
	case total >= 25:
		return "A"
	case total >= 20:
		return "B"
	case total >= 15:
		return "C"
	case total >= 12:
		return "D"
	default:
		return "F"
	}
}

/* ===================== SUB-QUERIES ===================== */

// checkedInDays defers to the attendance stats service so grading and the
// student dashboard count the same thing.
func (s *GradingService) checkedInDays(studentID uuid.UUID) (int64, error) {
	return attendanceService.NewStatsService(s.DB).CheckedInDays(studentID)
}

// submittedStatuses: a forwarded week has been submitted; it stays in the
// submitted bucket until the school tier settles it.
var submittedStatuses = []logbookModel.WeekStatus{
	logbookModel.WeekStatusSubmitted,
	logbookModel.WeekStatusForwarded,
	logbookModel.WeekStatusApproved,
}

func (s *GradingService) submittedWeeks(studentID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&logbookModel.LogbookWeekModel{}).
		Where("logbook_week_student_id = ?", studentID).
		Where("logbook_week_status IN ?", submittedStatuses).
		Count(&count).Error
	return count, err
}

func (s *GradingService) approvedWeeks(studentID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&logbookModel.LogbookWeekModel{}).
		Where("logbook_week_student_id = ?", studentID).
		Where("logbook_week_status = ?", logbookModel.WeekStatusApproved).
		Count(&count).Error
	return count, err
}

/* ===================== BREAKDOWN ===================== */

// ComputeBreakdown assembles the three sub-scores. A failed sub-query is
// logged and degrades that score to zero so a dashboard read never blocks;
// the breakdown then carries partial confidence and submitGrade refuses it.
func (s *GradingService) ComputeBreakdown(studentID uuid.UUID) Breakdown {
	confidence := ConfidenceFull

	days, err := s.checkedInDays(studentID)
	if err != nil {
		log.Printf("[ERROR] attendance sub-score query failed for student %s: %v", studentID, err)
		days, confidence = 0, ConfidencePartial
	}

	submitted, err := s.submittedWeeks(studentID)
	if err != nil {
		log.Printf("[ERROR] weekly-reports sub-score query failed for student %s: %v", studentID, err)
		submitted, confidence = 0, ConfidencePartial
	}

	approved, err := s.approvedWeeks(studentID)
	if err != nil {
		log.Printf("[ERROR] approval sub-score query failed for student %s: %v", studentID, err)
		approved, confidence = 0, ConfidencePartial
	}

	attendance := AttendanceScoreFor(days)
	weekly := WeeklyReportsScoreFor(submitted)
	approval := ApprovalScoreFor(approved, submitted)
	total := TotalFor(attendance, weekly, approval)

	return Breakdown{
		AttendanceScore:         attendance,
		WeeklyReportsScore:      weekly,
		SupervisorApprovalScore: approval,
		TotalScore:              total,
		Letter:                  LetterFor(total),
		Confidence:              confidence,
	}
}

// ApplyWeeklyOverride replaces the weekly-reports sub-score and recomputes
// total and letter. The caller validates the override range.
func ApplyWeeklyOverride(b Breakdown, override float64) Breakdown {
	b.WeeklyReportsScore = round2(override)
	b.TotalScore = TotalFor(b.AttendanceScore, b.WeeklyReportsScore, b.SupervisorApprovalScore)
	b.Letter = LetterFor(b.TotalScore)
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
