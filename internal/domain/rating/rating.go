package rating

import "time"

const (
	Min = 1
	Max = 5
)

// Rating is an immutable review of a catalog skill. The same rater may rate
// a skill more than once; every row counts toward the mean.
type Rating struct {
	ID        int64     `json:"id"`
	SkillID   int64     `json:"skill_id"`
	RaterID   string    `json:"rater_agent_id"`
	Value     int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New(skillID int64, raterID string, value int, review string) Rating {
	return Rating{
		SkillID:   skillID,
		RaterID:   raterID,
		Value:     value,
		Review:    review,
		CreatedAt: time.Now().UTC(),
	}
}

// Valid reports whether the value is within the accepted range.
func Valid(value int) bool {
	return value >= Min && value <= Max
}
