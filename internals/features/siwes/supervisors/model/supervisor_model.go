package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupervisorType distinguishes the two reviewer tiers.
type SupervisorType string

const (
	SupervisorTypeSchool   SupervisorType = "school_supervisor"
	SupervisorTypeIndustry SupervisorType = "industry_supervisor"
)

// Valid returns true when the type is a supported value.
func (t SupervisorType) Valid() bool {
	switch t {
	case SupervisorTypeSchool, SupervisorTypeIndustry:
		return true
	default:
		return false
	}
}

type SupervisorModel struct {
	SupervisorID uuid.UUID `gorm:"type:uuid;primaryKey;column:supervisor_id" json:"supervisor_id"`

	SupervisorUserID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:supervisor_user_id" json:"supervisor_user_id"`
	SupervisorType   SupervisorType `gorm:"not null;column:supervisor_type" json:"supervisor_type"`

	SupervisorFullName     string  `gorm:"not null;column:supervisor_full_name" json:"supervisor_full_name"`
	SupervisorEmail        string  `gorm:"not null;column:supervisor_email" json:"supervisor_email"`
	SupervisorOrganisation *string `gorm:"column:supervisor_organisation" json:"supervisor_organisation,omitempty"`

	SupervisorCreatedAt time.Time      `gorm:"column:supervisor_created_at;autoCreateTime" json:"supervisor_created_at"`
	SupervisorUpdatedAt *time.Time     `gorm:"column:supervisor_updated_at;autoUpdateTime" json:"supervisor_updated_at,omitempty"`
	SupervisorDeletedAt gorm.DeletedAt `gorm:"column:supervisor_deleted_at;index" json:"supervisor_deleted_at,omitempty"`
}

func (SupervisorModel) TableName() string { return "supervisors" }

func (m *SupervisorModel) BeforeCreate(tx *gorm.DB) error {
	if m.SupervisorID == uuid.Nil {
		m.SupervisorID = uuid.New()
	}
	return nil
}
