package agent

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

const DefaultReputation = 5.0

// Agent is a network participant keyed by a caller-supplied stable id.
// Skills are free-text tags declared by the agent itself; they are not
// validated against the skill catalog.
type Agent struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Skills        []string  `json:"skills"`
	Reputation    float64   `json:"reputation"`
	TotalShares   int       `json:"total_shares"`
	TotalReceives int       `json:"total_receives"`
	RegisteredAt  time.Time `json:"registered_at"`
	LastSeen      time.Time `json:"last_seen"`
	Status        Status    `json:"status"`
}

func New(id, name, description string, skills []string) Agent {
	now := time.Now().UTC()
	if name == "" {
		name = DefaultName(id)
	}
	return Agent{
		ID:           id,
		Name:         name,
		Description:  description,
		Skills:       skills,
		Reputation:   DefaultReputation,
		RegisteredAt: now,
		LastSeen:     now,
		Status:       StatusOnline,
	}
}

// DefaultName derives a display name from the agent id.
func DefaultName(id string) string {
	if id == "" {
		return "Agent-unknown"
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return "Agent-" + id
}

// HasSkill reports whether the tag is an exact case-insensitive member of the
// agent's declared skill list. Substring matching is deliberately not used:
// "art" must not match "smart-home".
func (a *Agent) HasSkill(tag string) bool {
	for _, s := range a.Skills {
		if strings.EqualFold(s, tag) {
			return true
		}
	}
	return false
}

type ListFilters struct {
	Status *Status
}

// Match is one discovery hit. The same agent appears once per requested tag
// it carries.
type Match struct {
	Skill      string  `json:"skill"`
	AgentID    string  `json:"agent_id"`
	AgentName  string  `json:"agent_name"`
	Reputation float64 `json:"reputation"`
}
