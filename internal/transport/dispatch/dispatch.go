package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/domain/errs"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"
	"github.com/alanyang/skillswap/internal/transport/respond"
)

// Handler is the single-endpoint aggregation the onboarding doc points agents
// at: one POST carrying {action, params}. Each action routes through the same
// services as the per-resource endpoints; this surface adds no behavior.
type Handler struct {
	actions map[string]actionFunc
}

type actionFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

func New(agents *agentsvc.Service, skills *skillsvc.Service, exchange *exchangesvc.Service) *Handler {
	h := &Handler{}
	h.actions = map[string]actionFunc{
		"register":      h.register(agents),
		"deregister":    h.deregister(agents),
		"discover":      h.discover(agents),
		"publish_skill": h.publishSkill(skills),
		"request":       h.openRequest(exchange),
		"share":         h.share(exchange),
		"rate":          h.rate(skills),
		"list_agents":   h.listAgents(agents),
		"list_skills":   h.listSkills(skills),
		"stats":         h.stats(exchange),
	}
	return h
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.handle)
}

type envelope struct {
	Action string          `json:"action"`
	Params json.RawMessage `json:"params"`
}

func (h *Handler) handle(c *gin.Context) {
	var env envelope
	if err := c.ShouldBindJSON(&env); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fn, ok := h.actions[strings.ToLower(env.Action)]
	if !ok {
		// Unknown actions are a structured value, not an error status.
		c.JSON(http.StatusOK, gin.H{
			"error":             "Unknown action: " + env.Action,
			"available_actions": h.availableActions(),
		})
		return
	}

	result, err := fn(c.Request.Context(), env.Params)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) availableActions() []string {
	names := make([]string, 0, len(h.actions))
	for name := range h.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decode(params json.RawMessage, dst interface{}) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, dst); err != nil {
		return errs.Validationf("invalid params: %s", err)
	}
	return nil
}

func (h *Handler) register(svc *agentsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			AgentID     string   `json:"agent_id"`
			Name        string   `json:"name"`
			Description string   `json:"description"`
			Skills      []string `json:"skills"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		a, err := svc.Register(ctx, p.AgentID, p.Name, p.Description, p.Skills)
		if err != nil {
			return nil, err
		}
		return gin.H{"success": true, "agent_id": a.ID, "message": "Welcome to the network, " + a.Name}, nil
	}
}

func (h *Handler) deregister(svc *agentsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			AgentID string `json:"agent_id"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		if err := svc.Deregister(ctx, p.AgentID); err != nil {
			return nil, err
		}
		return gin.H{"success": true, "message": "Agent " + p.AgentID + " has left the network"}, nil
	}
}

func (h *Handler) discover(svc *agentsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			SkillsNeeded []string `json:"skills_needed"`
			RequesterID  string   `json:"requester_id"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		matches, err := svc.Discover(ctx, p.SkillsNeeded, p.RequesterID)
		if err != nil {
			return nil, err
		}
		if matches == nil {
			matches = []domainagent.Match{}
		}
		return gin.H{"found": len(matches), "matches": matches}, nil
	}
}

func (h *Handler) publishSkill(svc *skillsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			OwnerAgentID string                 `json:"owner_agent_id"`
			SkillName    string                 `json:"skill_name"`
			Category     string                 `json:"category"`
			Description  string                 `json:"description"`
			Endpoint     string                 `json:"endpoint"`
			Parameters   map[string]interface{} `json:"parameters"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		s, err := svc.Publish(ctx, p.OwnerAgentID, p.SkillName, p.Category, p.Description, p.Endpoint, p.Parameters)
		if err != nil {
			return nil, err
		}
		return gin.H{"success": true, "skill_id": s.ID}, nil
	}
}

func (h *Handler) openRequest(svc *exchangesvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			AgentID   string `json:"agent_id"`
			SkillName string `json:"skill_name"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		req, err := svc.Request(ctx, p.AgentID, p.SkillName)
		if err != nil {
			return nil, err
		}
		return gin.H{"success": true, "request_id": req.ID, "message": "Requested '" + p.SkillName + "'"}, nil
	}
}

func (h *Handler) share(svc *exchangesvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			FromAgentID string `json:"from_agent_id"`
			ToAgentID   string `json:"to_agent_id"`
			SkillName   string `json:"skill_name"`
			RequestID   *int64 `json:"request_id"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		t, err := svc.Share(ctx, p.FromAgentID, p.ToAgentID, p.SkillName, p.RequestID)
		if err != nil {
			return nil, err
		}
		return gin.H{"success": true, "transfer": t, "message": "Shared '" + p.SkillName + "'"}, nil
	}
}

func (h *Handler) rate(svc *skillsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			AgentID string `json:"agent_id"`
			SkillID int64  `json:"skill_id"`
			Rating  int    `json:"rating"`
			Review  string `json:"review"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		if err := svc.Rate(ctx, p.AgentID, p.SkillID, p.Rating, p.Review); err != nil {
			return nil, err
		}
		return gin.H{"success": true}, nil
	}
}

func (h *Handler) listAgents(svc *agentsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			Status string `json:"status"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		var filters domainagent.ListFilters
		if p.Status != "" {
			s := domainagent.Status(p.Status)
			filters.Status = &s
		}
		agents, err := svc.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		if agents == nil {
			agents = []domainagent.Agent{}
		}
		return gin.H{"total_agents": len(agents), "agents": agents}, nil
	}
}

func (h *Handler) listSkills(svc *skillsvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var p struct {
			Category string `json:"category"`
			Search   string `json:"search"`
		}
		if err := decode(params, &p); err != nil {
			return nil, err
		}
		var filters domainskill.ListFilters
		if p.Category != "" {
			cat := domainskill.NormalizeCategory(p.Category)
			filters.Category = &cat
		}
		if p.Search != "" {
			filters.Search = &p.Search
		}
		skills, err := svc.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		if skills == nil {
			skills = []domainskill.Skill{}
		}
		return gin.H{"total_skills": len(skills), "skills": skills}, nil
	}
}

func (h *Handler) stats(svc *exchangesvc.Service) actionFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		return svc.Stats(ctx)
	}
}
