package mcp

import (
	"context"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"
)

// Server exposes the exchange operations as MCP tools so agents can join the
// network over an MCP session instead of raw HTTP. When a session closes, the
// agent it registered is flipped offline best-effort, mirroring deregister.
type Server struct {
	httpSrv  *mcpserver.StreamableHTTPServer
	reg      *SessionRegistry
	agentSvc *agentsvc.Service
}

func New(
	reg *SessionRegistry,
	agentSvc *agentsvc.Service,
	skillSvc *skillsvc.Service,
	exchangeSvc *exchangesvc.Service,
) *Server {
	s := &Server{
		reg:      reg,
		agentSvc: agentSvc,
	}

	hooks := &mcpserver.Hooks{}
	hooks.OnUnregisterSession = append(hooks.OnUnregisterSession, s.onSessionClose)

	mcpSrv := mcpserver.NewMCPServer(
		"skillswap",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithHooks(hooks),
	)

	RegisterTools(mcpSrv, reg, agentSvc, skillSvc, exchangeSvc)

	s.httpSrv = mcpserver.NewStreamableHTTPServer(mcpSrv)
	return s
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}

func (s *Server) onSessionClose(ctx context.Context, session mcpserver.ClientSession) {
	agentID, ok := s.reg.Unregister(session.SessionID())
	if !ok {
		return
	}
	slog.InfoContext(ctx, "mcp: session closed, deregistering agent",
		"session_id", session.SessionID(), "agent_id", agentID)
	if err := s.agentSvc.Deregister(context.WithoutCancel(ctx), agentID); err != nil {
		slog.ErrorContext(ctx, "mcp: deregister on session close failed", "agent_id", agentID, "error", err)
	}
}
