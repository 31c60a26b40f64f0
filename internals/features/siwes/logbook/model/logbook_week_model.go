package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LogbookWeekModel is one of the 24 weekly activity reports per student.
// (student, week_number) is unique: resubmission after rejection overwrites
// the same row, never creates a duplicate. Weeks are never deleted.
type LogbookWeekModel struct {
	LogbookWeekID uuid.UUID `gorm:"type:uuid;primaryKey;column:logbook_week_id" json:"logbook_week_id"`

	LogbookWeekStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_logbook_student_week;column:logbook_week_student_id" json:"logbook_week_student_id"`
	LogbookWeekNumber     int       `gorm:"not null;uniqueIndex:uq_logbook_student_week;column:logbook_week_number" json:"logbook_week_number"`

	// one activity entry per working day (Mon..Sat)
	LogbookWeekMonday    string `gorm:"column:logbook_week_monday" json:"logbook_week_monday"`
	LogbookWeekTuesday   string `gorm:"column:logbook_week_tuesday" json:"logbook_week_tuesday"`
	LogbookWeekWednesday string `gorm:"column:logbook_week_wednesday" json:"logbook_week_wednesday"`
	LogbookWeekThursday  string `gorm:"column:logbook_week_thursday" json:"logbook_week_thursday"`
	LogbookWeekFriday    string `gorm:"column:logbook_week_friday" json:"logbook_week_friday"`
	LogbookWeekSaturday  string `gorm:"column:logbook_week_saturday" json:"logbook_week_saturday"`

	LogbookWeekComments *string `gorm:"column:logbook_week_comments" json:"logbook_week_comments,omitempty"`

	// opaque blob references; replaced wholesale on each save
	LogbookWeekEvidenceRefs datatypes.JSON `gorm:"column:logbook_week_evidence_refs" json:"logbook_week_evidence_refs,omitempty"`

	LogbookWeekStatus      WeekStatus `gorm:"not null;default:draft;column:logbook_week_status" json:"logbook_week_status"`
	LogbookWeekSubmittedAt *time.Time `gorm:"column:logbook_week_submitted_at" json:"logbook_week_submitted_at,omitempty"`

	// audit trail of each tier's action; status above is the state of record
	LogbookWeekIndustryApprovedAt *time.Time `gorm:"column:logbook_week_industry_approved_at" json:"logbook_week_industry_approved_at,omitempty"`
	LogbookWeekIndustryComment    *string    `gorm:"column:logbook_week_industry_comment" json:"logbook_week_industry_comment,omitempty"`
	LogbookWeekStampRef           *string    `gorm:"column:logbook_week_stamp_ref" json:"logbook_week_stamp_ref,omitempty"`

	LogbookWeekSchoolApprovedAt *time.Time `gorm:"column:logbook_week_school_approved_at" json:"logbook_week_school_approved_at,omitempty"`
	LogbookWeekSchoolComment    *string    `gorm:"column:logbook_week_school_comment" json:"logbook_week_school_comment,omitempty"`

	LogbookWeekScore           *float64 `gorm:"column:logbook_week_score" json:"logbook_week_score,omitempty"`
	LogbookWeekRejectionReason *string  `gorm:"column:logbook_week_rejection_reason" json:"logbook_week_rejection_reason,omitempty"`

	LogbookWeekCreatedAt time.Time  `gorm:"column:logbook_week_created_at;autoCreateTime" json:"logbook_week_created_at"`
	LogbookWeekUpdatedAt *time.Time `gorm:"column:logbook_week_updated_at;autoUpdateTime" json:"logbook_week_updated_at,omitempty"`
}

func (LogbookWeekModel) TableName() string { return "logbook_weeks" }

func (m *LogbookWeekModel) BeforeCreate(tx *gorm.DB) error {
	if m.LogbookWeekID == uuid.Nil {
		m.LogbookWeekID = uuid.New()
	}
	return nil
}
