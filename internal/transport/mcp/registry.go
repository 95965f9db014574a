package mcp

import "sync"

// SessionRegistry tracks which agent registered over which MCP session, so a
// closing session can flip its agent offline without the agent asking.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]string // session id → agent id
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]string),
	}
}

func (r *SessionRegistry) Register(sessionID, agentID string) {
	r.mu.Lock()
	r.sessions[sessionID] = agentID
	r.mu.Unlock()
}

// Unregister removes the session and returns the agent id it carried.
func (r *SessionRegistry) Unregister(sessionID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agentID, ok := r.sessions[sessionID]
	if ok {
		delete(r.sessions, sessionID)
	}
	return agentID, ok
}

func (r *SessionRegistry) AgentFor(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agentID, ok := r.sessions[sessionID]
	return agentID, ok
}
