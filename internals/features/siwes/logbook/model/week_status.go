package model

// WeekStatus is the lifecycle state of a logbook week. State is explicit
// here; it is never inferred from nullable timestamp combinations.
type WeekStatus string

const (
	WeekStatusDraft     WeekStatus = "draft"
	WeekStatusSubmitted WeekStatus = "submitted"
	WeekStatusForwarded WeekStatus = "forwarded" // industry tier done, awaiting school tier
	WeekStatusApproved  WeekStatus = "approved"  // terminal
	WeekStatusRejected  WeekStatus = "rejected"  // re-enterable: student may edit and resubmit
)

// Valid returns true when the status is a supported value.
func (s WeekStatus) Valid() bool {
	switch s {
	case WeekStatusDraft, WeekStatusSubmitted, WeekStatusForwarded, WeekStatusApproved, WeekStatusRejected:
		return true
	default:
		return false
	}
}

// WeekActor identifies who is driving a transition.
type WeekActor string

const (
	ActorStudent            WeekActor = "student"
	ActorIndustrySupervisor WeekActor = "industry_supervisor"
	ActorSchoolSupervisor   WeekActor = "school_supervisor"
)

// weekTransitions is the full legal-move table. Anything absent is illegal.
var weekTransitions = map[WeekActor]map[WeekStatus][]WeekStatus{
	ActorStudent: {
		WeekStatusDraft:    {WeekStatusDraft, WeekStatusSubmitted},
		WeekStatusRejected: {WeekStatusRejected, WeekStatusSubmitted},
	},
	ActorIndustrySupervisor: {
		WeekStatusSubmitted: {WeekStatusForwarded, WeekStatusRejected},
	},
	ActorSchoolSupervisor: {
		WeekStatusSubmitted: {WeekStatusApproved, WeekStatusRejected},
		WeekStatusForwarded: {WeekStatusApproved, WeekStatusRejected},
	},
}

// CanTransition reports whether actor may move a week from one status to
// another. Approved is terminal for every actor.
func CanTransition(from, to WeekStatus, actor WeekActor) bool {
	allowed, ok := weekTransitions[actor][from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// StudentEditable reports whether the student may still change the week's
// contents (activity text, evidence, comments).
func (s WeekStatus) StudentEditable() bool {
	return s == WeekStatusDraft || s == WeekStatusRejected
}
