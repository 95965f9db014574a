package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	mcptransport "github.com/alanyang/skillswap/internal/transport/mcp"
)

func TestSessionRegistry(t *testing.T) {
	reg := mcptransport.NewSessionRegistry()

	reg.Register("sess-1", "agent-1")

	agentID, ok := reg.AgentFor("sess-1")
	assert.True(t, ok)
	assert.Equal(t, "agent-1", agentID)

	agentID, ok = reg.Unregister("sess-1")
	assert.True(t, ok)
	assert.Equal(t, "agent-1", agentID)

	_, ok = reg.AgentFor("sess-1")
	assert.False(t, ok)
}

func TestSessionRegistryUnknownSession(t *testing.T) {
	reg := mcptransport.NewSessionRegistry()

	_, ok := reg.Unregister("never-registered")
	assert.False(t, ok)
}

func TestSessionRegistryRebind(t *testing.T) {
	reg := mcptransport.NewSessionRegistry()

	// A session re-registering switches identity; the last registration wins.
	reg.Register("sess-1", "agent-1")
	reg.Register("sess-1", "agent-2")

	agentID, ok := reg.AgentFor("sess-1")
	assert.True(t, ok)
	assert.Equal(t, "agent-2", agentID)
}
