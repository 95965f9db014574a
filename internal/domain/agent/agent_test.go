package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/alanyang/skillswap/internal/domain/agent"
)

func TestHasSkill(t *testing.T) {
	a := Agent{Skills: []string{"Translation", "smart-home", "OCR"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "exact match", tag: "smart-home", want: true},
		{name: "case-insensitive match", tag: "translation", want: true},
		{name: "upper-case query", tag: "ocr", want: true},

		// Membership is exact, never substring.
		{name: "substring of a member", tag: "art", want: false},
		{name: "member is substring of query", tag: "translations", want: false},
		{name: "unknown tag", tag: "cooking", want: false},
		{name: "empty tag", tag: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.HasSkill(tt.tag))
		})
	}
}

func TestHasSkillEmptyList(t *testing.T) {
	a := Agent{}
	assert.False(t, a.HasSkill("anything"))
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "long id truncated to 8", id: "abcdef1234567890", want: "Agent-abcdef12"},
		{name: "short id kept whole", id: "bot7", want: "Agent-bot7"},
		{name: "exactly 8 chars", id: "12345678", want: "Agent-12345678"},
		{name: "empty id", id: "", want: "Agent-unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultName(tt.id))
		})
	}
}

func TestNewDefaults(t *testing.T) {
	a := New("agent-1", "", "helper bot", []string{"ocr"})

	assert.Equal(t, "Agent-agent-1", a.Name)
	assert.Equal(t, DefaultReputation, a.Reputation)
	assert.Equal(t, StatusOnline, a.Status)
	assert.Zero(t, a.TotalShares)
	assert.Zero(t, a.TotalReceives)
	assert.False(t, a.RegisteredAt.IsZero())
	assert.Equal(t, a.RegisteredAt, a.LastSeen)
}

func TestNewKeepsExplicitName(t *testing.T) {
	a := New("agent-1", "Aristotle", "", nil)
	assert.Equal(t, "Aristotle", a.Name)
}
