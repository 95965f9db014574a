package agent

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagent "github.com/alanyang/skillswap/internal/domain/agent"
	"github.com/alanyang/skillswap/internal/metrics"
	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	"github.com/alanyang/skillswap/internal/transport/respond"
)

func Register(rg *gin.RouterGroup, svc *agentsvc.Service) {
	rg.POST("/register", registerAgent(svc))
	rg.POST("/deregister", deregisterAgent(svc))
	rg.POST("/discover", discover(svc))
	rg.GET("/", listAgents(svc))
	rg.GET("/:id", getAgent(svc))
}

type registerReq struct {
	AgentID     string   `json:"agent_id" binding:"required"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func registerAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		a, err := svc.Register(c.Request.Context(), req.AgentID, req.Name, req.Description, req.Skills)
		if err != nil {
			respond.Error(c, err)
			return
		}
		metrics.AgentsRegistered.Inc()
		c.JSON(http.StatusOK, gin.H{"success": true, "agent_id": a.ID, "agent": a})
	}
}

type deregisterReq struct {
	AgentID string `json:"agent_id" binding:"required"`
}

func deregisterAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deregisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Deregister(c.Request.Context(), req.AgentID); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type discoverReq struct {
	SkillsNeeded []string `json:"skills_needed" binding:"required"`
	RequesterID  string   `json:"requester_id"`
}

func discover(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req discoverReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		matches, err := svc.Discover(c.Request.Context(), req.SkillsNeeded, req.RequesterID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if matches == nil {
			matches = []domainagent.Match{}
		}
		c.JSON(http.StatusOK, gin.H{"found": len(matches), "matches": matches})
	}
}

func listAgents(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainagent.ListFilters

		if v := c.Query("status"); v != "" {
			s := domainagent.Status(v)
			filters.Status = &s
		}

		agents, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if agents == nil {
			agents = []domainagent.Agent{}
		}
		c.JSON(http.StatusOK, gin.H{"total_agents": len(agents), "agents": agents})
	}
}

func getAgent(svc *agentsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
