package request

import "time"

type Status string

const (
	StatusOpen      Status = "open"
	StatusFulfilled Status = "fulfilled"
)

// Request is an open solicitation for a skill. SkillName is free text, not a
// catalog reference. The only transition is open → fulfilled, triggered by a
// share call carrying the request id.
type Request struct {
	ID          int64      `json:"id"`
	RequesterID string     `json:"requester_agent_id"`
	SkillName   string     `json:"skill_name"`
	Status      Status     `json:"status"`
	FulfilledBy *string    `json:"fulfilled_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
}

func New(requesterID, skillName string) Request {
	return Request{
		RequesterID: requesterID,
		SkillName:   skillName,
		Status:      StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
}
