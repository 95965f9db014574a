package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"
)

// RegisterTools registers the exchange operations as MCP tools.
func RegisterTools(
	s *mcpserver.MCPServer,
	reg *SessionRegistry,
	agentSvc *agentsvc.Service,
	skillSvc *skillsvc.Service,
	exchangeSvc *exchangesvc.Service,
) {
	s.AddTool(mcpmcp.NewTool("register_agent",
		mcpmcp.WithDescription("Join the network. Re-registering the same agent_id updates the profile and marks the agent online; reputation and share counters are preserved."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Stable unique agent id")),
		mcpmcp.WithString("name", mcpmcp.Description("Display name; defaults to a name derived from agent_id")),
		mcpmcp.WithString("description", mcpmcp.Description("What this agent does")),
		mcpmcp.WithString("skills", mcpmcp.Description("Comma-separated skill tags, e.g. \"weather,translate\"")),
	), registerAgentHandler(reg, agentSvc))

	s.AddTool(mcpmcp.NewTool("deregister_agent",
		mcpmcp.WithDescription("Leave the network. Best-effort: unknown agent ids are accepted silently."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Agent id")),
	), deregisterAgentHandler(agentSvc))

	s.AddTool(mcpmcp.NewTool("discover_agents",
		mcpmcp.WithDescription("Find online agents carrying the given skill tags. Matching is exact and case-insensitive; results are ordered by reputation."),
		mcpmcp.WithString("skills_needed", mcpmcp.Required(), mcpmcp.Description("Comma-separated skill tags to look for")),
		mcpmcp.WithString("requester_id", mcpmcp.Description("Your agent id, to exclude yourself from matches")),
	), discoverHandler(agentSvc))

	s.AddTool(mcpmcp.NewTool("publish_skill",
		mcpmcp.WithDescription("Publish a formal catalog entry for a skill you offer."),
		mcpmcp.WithString("owner_agent_id", mcpmcp.Required(), mcpmcp.Description("Your agent id")),
		mcpmcp.WithString("skill_name", mcpmcp.Required(), mcpmcp.Description("Skill name")),
		mcpmcp.WithString("category", mcpmcp.Description("One of: data, language, vision, audio, code, search, automation, communication, other")),
		mcpmcp.WithString("description", mcpmcp.Description("What the skill does")),
		mcpmcp.WithString("endpoint", mcpmcp.Description("Where the skill can be invoked; opaque to the registry")),
	), publishSkillHandler(skillSvc))

	s.AddTool(mcpmcp.NewTool("request_skill",
		mcpmcp.WithDescription("Post an open request for a skill. Use discover_agents to find a provider; the registry does no matching itself."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Your agent id")),
		mcpmcp.WithString("skill_name", mcpmcp.Required(), mcpmcp.Description("Skill you need")),
	), requestSkillHandler(exchangeSvc))

	s.AddTool(mcpmcp.NewTool("share_skill",
		mcpmcp.WithDescription("Record that you shared a skill with another agent. Pass request_id to mark that request fulfilled."),
		mcpmcp.WithString("from_agent_id", mcpmcp.Required(), mcpmcp.Description("Your agent id")),
		mcpmcp.WithString("to_agent_id", mcpmcp.Required(), mcpmcp.Description("Receiving agent id")),
		mcpmcp.WithString("skill_name", mcpmcp.Required(), mcpmcp.Description("Skill being shared")),
		mcpmcp.WithNumber("request_id", mcpmcp.Description("Open request this share fulfills")),
	), shareSkillHandler(exchangeSvc))

	s.AddTool(mcpmcp.NewTool("rate_skill",
		mcpmcp.WithDescription("Rate a catalog skill from 1 to 5. Updates the skill rating and the owner's reputation."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Your agent id")),
		mcpmcp.WithNumber("skill_id", mcpmcp.Required(), mcpmcp.Description("Catalog skill id")),
		mcpmcp.WithNumber("rating", mcpmcp.Required(), mcpmcp.Description("1 to 5")),
		mcpmcp.WithString("review", mcpmcp.Description("Free-text review")),
	), rateSkillHandler(skillSvc))

	s.AddTool(mcpmcp.NewTool("network_stats",
		mcpmcp.WithDescription("Network totals plus the top shared skills and top sharing agents."),
	), statsHandler(exchangeSvc))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func registerAgentHandler(reg *SessionRegistry, svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		agentID := mcpmcp.ParseString(req, "agent_id", "")
		name := mcpmcp.ParseString(req, "name", "")
		description := mcpmcp.ParseString(req, "description", "")
		skills := splitTags(mcpmcp.ParseString(req, "skills", ""))

		a, err := svc.Register(ctx, agentID, name, description, skills)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		if session := mcpserver.ClientSessionFromContext(ctx); session != nil {
			reg.Register(session.SessionID(), a.ID)
		}

		return jsonResult(map[string]interface{}{"agent_id": a.ID, "name": a.Name, "reputation": a.Reputation})
	}
}

func deregisterAgentHandler(svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		agentID := mcpmcp.ParseString(req, "agent_id", "")
		if err := svc.Deregister(ctx, agentID); err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"success": true})
	}
}

func discoverHandler(svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		skillsNeeded := splitTags(mcpmcp.ParseString(req, "skills_needed", ""))
		requesterID := mcpmcp.ParseString(req, "requester_id", "")

		matches, err := svc.Discover(ctx, skillsNeeded, requesterID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"found": len(matches), "matches": matches})
	}
}

func publishSkillHandler(svc *skillsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		s, err := svc.Publish(ctx,
			mcpmcp.ParseString(req, "owner_agent_id", ""),
			mcpmcp.ParseString(req, "skill_name", ""),
			mcpmcp.ParseString(req, "category", ""),
			mcpmcp.ParseString(req, "description", ""),
			mcpmcp.ParseString(req, "endpoint", ""),
			nil,
		)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"skill_id": s.ID})
	}
}

func requestSkillHandler(svc *exchangesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		created, err := svc.Request(ctx,
			mcpmcp.ParseString(req, "agent_id", ""),
			mcpmcp.ParseString(req, "skill_name", ""),
		)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"request_id": created.ID})
	}
}

func shareSkillHandler(svc *exchangesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		var requestID *int64
		if raw := mcpmcp.ParseInt64(req, "request_id", 0); raw != 0 {
			requestID = &raw
		}

		t, err := svc.Share(ctx,
			mcpmcp.ParseString(req, "from_agent_id", ""),
			mcpmcp.ParseString(req, "to_agent_id", ""),
			mcpmcp.ParseString(req, "skill_name", ""),
			requestID,
		)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"transfer_id": t.ID, "status": t.Status})
	}
}

func rateSkillHandler(svc *skillsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		err := svc.Rate(ctx,
			mcpmcp.ParseString(req, "agent_id", ""),
			mcpmcp.ParseInt64(req, "skill_id", 0),
			int(mcpmcp.ParseInt64(req, "rating", 0)),
			mcpmcp.ParseString(req, "review", ""),
		)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(map[string]interface{}{"success": true})
	}
}

func statsHandler(svc *exchangesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		stats, err := svc.Stats(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		return jsonResult(stats)
	}
}

func jsonResult(v interface{}) (*mcpmcp.CallToolResult, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
	}
	return mcpmcp.NewToolResultText(string(payload)), nil
}

func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
