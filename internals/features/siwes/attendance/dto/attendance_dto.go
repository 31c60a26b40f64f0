package dto

import (
	"time"

	"github.com/google/uuid"

	m "siwes_backend/internals/features/siwes/attendance/model"
	"siwes_backend/internals/features/siwes/attendance/service"
)

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID        uuid.UUID  `json:"attendance_record_id"`
	AttendanceRecordStudentID uuid.UUID  `json:"attendance_record_student_id"`
	AttendanceRecordDate      time.Time  `json:"attendance_record_date"`
	AttendanceRecordCheckIn   time.Time  `json:"attendance_record_check_in_time"`
	AttendanceRecordCheckOut  *time.Time `json:"attendance_record_check_out_time,omitempty"`
	AttendanceRecordVerified  bool       `json:"attendance_record_verified"`
}

type TodayResponse struct {
	CheckedIn  bool                      `json:"checked_in"`
	CheckedOut bool                      `json:"checked_out"`
	Record     *AttendanceRecordResponse `json:"record,omitempty"`
}

type HistoryResponse struct {
	Records []AttendanceRecordResponse `json:"records"`
	Stats   service.StudentStats       `json:"stats"`
}

// SummaryEntry is one row of the supervisor's per-student overview.
type SummaryEntry struct {
	StudentID       uuid.UUID            `json:"student_id"`
	StudentFullName string               `json:"student_full_name"`
	MatricNumber    string               `json:"student_matric_number"`
	TodayCheckedIn  bool                 `json:"today_checked_in"`
	TodayCheckedOut bool                 `json:"today_checked_out"`
	Stats           service.StudentStats `json:"stats"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func NewAttendanceRecordResponse(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:        mdl.AttendanceRecordID,
		AttendanceRecordStudentID: mdl.AttendanceRecordStudentID,
		AttendanceRecordDate:      mdl.AttendanceRecordDate,
		AttendanceRecordCheckIn:   mdl.AttendanceRecordCheckInTime,
		AttendanceRecordCheckOut:  mdl.AttendanceRecordCheckOutTime,
		AttendanceRecordVerified:  mdl.AttendanceRecordVerified,
	}
}

func NewAttendanceRecordResponses(mdls []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewAttendanceRecordResponse(mdl))
	}
	return out
}
