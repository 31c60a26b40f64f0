package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "siwes_backend/internals/features/siwes/logbook/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// SubmitWeekRequest saves the student's logbook week and submits it for
// review. The evidence list replaces the stored one wholesale.
type SubmitWeekRequest struct {
	WeekNumber int `json:"logbook_week_number" validate:"required,min=1,max=24"`

	Monday    string `json:"logbook_week_monday" validate:"omitempty,max=2000"`
	Tuesday   string `json:"logbook_week_tuesday" validate:"omitempty,max=2000"`
	Wednesday string `json:"logbook_week_wednesday" validate:"omitempty,max=2000"`
	Thursday  string `json:"logbook_week_thursday" validate:"omitempty,max=2000"`
	Friday    string `json:"logbook_week_friday" validate:"omitempty,max=2000"`
	Saturday  string `json:"logbook_week_saturday" validate:"omitempty,max=2000"`

	Comments     *string  `json:"logbook_week_comments" validate:"omitempty,max=2000"`
	EvidenceRefs []string `json:"logbook_week_evidence_refs" validate:"omitempty,dive,max=500"`

	// SaveOnly keeps the week in draft (or rejected) without submitting.
	SaveOnly bool `json:"save_only"`
}

// ReviewAction is what a supervisor does to a submitted week.
type ReviewAction string

const (
	ReviewActionForward ReviewAction = "forward" // industry tier
	ReviewActionApprove ReviewAction = "approve" // school tier
	ReviewActionReject  ReviewAction = "reject"  // either tier
)

type ReviewWeekRequest struct {
	StudentID  uuid.UUID    `json:"student_id" validate:"required"`
	WeekNumber int          `json:"logbook_week_number" validate:"required,min=1,max=24"`
	Action     ReviewAction `json:"action" validate:"required,oneof=forward approve reject"`

	Comment *string `json:"comment" validate:"omitempty,max=2000"`
	Reason  *string `json:"reason" validate:"omitempty,max=2000"` // required on reject

	// industry tier: opaque stamp artifact reference
	StampRef *string `json:"stamp_ref" validate:"omitempty,max=500"`

	// school tier: optional 0-100 sub-score
	Score *float64 `json:"score" validate:"omitempty,min=0,max=100"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type LogbookWeekResponse struct {
	LogbookWeekID        uuid.UUID    `json:"logbook_week_id"`
	LogbookWeekStudentID uuid.UUID    `json:"logbook_week_student_id"`
	LogbookWeekNumber    int          `json:"logbook_week_number"`
	LogbookWeekStatus    m.WeekStatus `json:"logbook_week_status"`

	Monday    string `json:"logbook_week_monday"`
	Tuesday   string `json:"logbook_week_tuesday"`
	Wednesday string `json:"logbook_week_wednesday"`
	Thursday  string `json:"logbook_week_thursday"`
	Friday    string `json:"logbook_week_friday"`
	Saturday  string `json:"logbook_week_saturday"`

	Comments     *string  `json:"logbook_week_comments,omitempty"`
	EvidenceRefs []string `json:"logbook_week_evidence_refs"`

	SubmittedAt        *time.Time `json:"logbook_week_submitted_at,omitempty"`
	IndustryApprovedAt *time.Time `json:"logbook_week_industry_approved_at,omitempty"`
	IndustryComment    *string    `json:"logbook_week_industry_comment,omitempty"`
	StampRef           *string    `json:"logbook_week_stamp_ref,omitempty"`
	SchoolApprovedAt   *time.Time `json:"logbook_week_school_approved_at,omitempty"`
	SchoolComment      *string    `json:"logbook_week_school_comment,omitempty"`

	Score           *float64 `json:"logbook_week_score,omitempty"`
	RejectionReason *string  `json:"logbook_week_rejection_reason,omitempty"`
}

/* =========================================================
 * CONVERTERS
 * ========================================================= */

func EvidenceToJSON(refs []string) datatypes.JSON {
	if refs == nil {
		refs = []string{}
	}
	b, _ := json.Marshal(refs)
	return datatypes.JSON(b)
}

func evidenceFromJSON(raw datatypes.JSON) []string {
	refs := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &refs)
	}
	return refs
}

func NewLogbookWeekResponse(mdl m.LogbookWeekModel) LogbookWeekResponse {
	return LogbookWeekResponse{
		LogbookWeekID:        mdl.LogbookWeekID,
		LogbookWeekStudentID: mdl.LogbookWeekStudentID,
		LogbookWeekNumber:    mdl.LogbookWeekNumber,
		LogbookWeekStatus:    mdl.LogbookWeekStatus,
		Monday:               mdl.LogbookWeekMonday,
		Tuesday:              mdl.LogbookWeekTuesday,
		Wednesday:            mdl.LogbookWeekWednesday,
		Thursday:             mdl.LogbookWeekThursday,
		Friday:               mdl.LogbookWeekFriday,
		Saturday:             mdl.LogbookWeekSaturday,
		Comments:             mdl.LogbookWeekComments,
		EvidenceRefs:         evidenceFromJSON(mdl.LogbookWeekEvidenceRefs),
		SubmittedAt:          mdl.LogbookWeekSubmittedAt,
		IndustryApprovedAt:   mdl.LogbookWeekIndustryApprovedAt,
		IndustryComment:      mdl.LogbookWeekIndustryComment,
		StampRef:             mdl.LogbookWeekStampRef,
		SchoolApprovedAt:     mdl.LogbookWeekSchoolApprovedAt,
		SchoolComment:        mdl.LogbookWeekSchoolComment,
		Score:                mdl.LogbookWeekScore,
		RejectionReason:      mdl.LogbookWeekRejectionReason,
	}
}

func NewLogbookWeekResponses(mdls []m.LogbookWeekModel) []LogbookWeekResponse {
	out := make([]LogbookWeekResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, NewLogbookWeekResponse(mdl))
	}
	return out
}
