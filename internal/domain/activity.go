package domain

import "github.com/jacobhenn/unistellar/internal/domain/id"

// ActivityKind is the state of a logged activity.
type ActivityKind string

// Activity kind constants.
const (
	// ActivityPlanning means the user intends to do the work.
	ActivityPlanning ActivityKind = "Planning"
	// ActivityCompleted means the work is done.
	ActivityCompleted ActivityKind = "Completed"
	// ActivityWorkedOn records a work session with a duration.
	ActivityWorkedOn ActivityKind = "WorkedOn"
)

// IsValid checks the kind against the known set.
func (k ActivityKind) IsValid() bool {
	return k == ActivityPlanning || k == ActivityCompleted || k == ActivityWorkedOn
}

// Activity is one entry in a user's activity log. DurationSecs is only
// meaningful for WorkedOn entries; JSON has no duration type, so it travels
// as a plain number of seconds.
type Activity struct {
	ID           id.ID        `json:"id"`
	User         id.ID        `json:"user"`
	Assignment   id.ID        `json:"assignment"`
	Kind         ActivityKind `json:"kind"`
	DurationSecs int64        `json:"duration_secs,omitempty"`
}

// Stats aggregates a user's activity log.
type Stats struct {
	AssignmentsCompleted int   `json:"assignments_completed"`
	SecsWorked           int64 `json:"secs_worked"`
}
