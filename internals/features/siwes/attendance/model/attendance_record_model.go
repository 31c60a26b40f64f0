package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecordModel is one check-in/check-out pair per student per
// calendar day. The (student, date) unique index is the sole concurrency
// guard for check-in: a racing second insert must fail on the constraint,
// not on an application lock. Records are immutable after check-out.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_date" json:"attendance_record_date"`

	AttendanceRecordCheckInTime  time.Time  `gorm:"not null;column:attendance_record_check_in_time" json:"attendance_record_check_in_time"`
	AttendanceRecordCheckOutTime *time.Time `gorm:"column:attendance_record_check_out_time" json:"attendance_record_check_out_time,omitempty"`

	// verified is implicit: both timestamps come from the server clock.
	// Set explicitly on insert; a column default would keep a false value
	// from ever persisting (GORM omits zero-valued defaulted fields).
	AttendanceRecordVerified bool `gorm:"not null;column:attendance_record_verified" json:"attendance_record_verified"`

	AttendanceRecordCreatedAt time.Time  `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}

// DateOnly normalises a timestamp to its calendar day (midnight UTC). Day
// identity is the date, not the datetime, so cross-midnight shifts are out
// of scope.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
