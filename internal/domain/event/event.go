package event

import "time"

type Type string

const (
	TypeAgentOnline      Type = "agent_online"
	TypeAgentOffline     Type = "agent_offline"
	TypeSkillPublished   Type = "skill_published"
	TypeSkillShared      Type = "skill_shared"
	TypeSkillRated       Type = "skill_rated"
	TypeRequestOpened    Type = "request_opened"
	TypeRequestFulfilled Type = "request_fulfilled"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelAgent    Channel = "agent"
	ChannelSkill    Channel = "skill"
	ChannelExchange Channel = "exchange"
)

var typeToChannel = map[Type]Channel{
	TypeAgentOnline:      ChannelAgent,
	TypeAgentOffline:     ChannelAgent,
	TypeSkillPublished:   ChannelSkill,
	TypeSkillRated:       ChannelSkill,
	TypeSkillShared:      ChannelExchange,
	TypeRequestOpened:    ChannelExchange,
	TypeRequestFulfilled: ChannelExchange,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID string) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
