package transfer

import "time"

type Status string

// Transfers are logged assertions, not verified deliveries, so they are
// recorded completed. No pending or failed state exists.
const StatusCompleted Status = "completed"

// Transfer is an append-only log entry stating that one agent shared a named
// skill with another. SkillID is a weak reference resolved best-effort at
// share time from the catalog; it may be nil when the sharer never published
// the skill formally.
type Transfer struct {
	ID          int64     `json:"id"`
	SkillID     *int64    `json:"skill_id,omitempty"`
	SkillName   string    `json:"skill_name"`
	FromAgentID string    `json:"from_agent_id"`
	ToAgentID   string    `json:"to_agent_id"`
	Status      Status    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

func New(skillID *int64, skillName, fromAgentID, toAgentID string) Transfer {
	return Transfer{
		SkillID:     skillID,
		SkillName:   skillName,
		FromAgentID: fromAgentID,
		ToAgentID:   toAgentID,
		Status:      StatusCompleted,
		Timestamp:   time.Now().UTC(),
	}
}
