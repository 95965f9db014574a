package exchange

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
	"github.com/alanyang/skillswap/internal/metrics"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	"github.com/alanyang/skillswap/internal/transport/respond"
)

const defaultFeedLimit = 20

func Register(rg *gin.RouterGroup, svc *exchangesvc.Service) {
	rg.POST("/requests", openRequest(svc))
	rg.GET("/requests", listOpenRequests(svc))
	rg.GET("/requests/:id", getRequest(svc))
	rg.POST("/share", share(svc))
	rg.GET("/transfers", recentTransfers(svc))
	rg.GET("/stats", stats(svc))
}

type requestReq struct {
	AgentID   string `json:"agent_id" binding:"required"`
	SkillName string `json:"skill_name" binding:"required"`
}

func openRequest(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requestReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.Request(c.Request.Context(), req.AgentID, req.SkillName)
		if err != nil {
			respond.Error(c, err)
			return
		}
		metrics.RequestsOpened.Inc()
		c.JSON(http.StatusCreated, gin.H{"success": true, "request_id": created.ID, "request": created})
	}
}

func listOpenRequests(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := svc.OpenRequests(c.Request.Context(), feedLimit(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		if requests == nil {
			requests = []domainrequest.Request{}
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests})
	}
}

func getRequest(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
			return
		}

		req, err := svc.GetRequest(c.Request.Context(), id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

type shareReq struct {
	FromAgentID string `json:"from_agent_id" binding:"required"`
	ToAgentID   string `json:"to_agent_id" binding:"required"`
	SkillName   string `json:"skill_name" binding:"required"`
	RequestID   *int64 `json:"request_id"`
}

func share(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req shareReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.Share(c.Request.Context(), req.FromAgentID, req.ToAgentID, req.SkillName, req.RequestID)
		if err != nil {
			respond.Error(c, err)
			return
		}
		metrics.SkillsShared.Inc()
		c.JSON(http.StatusCreated, gin.H{"success": true, "transfer": t})
	}
}

func recentTransfers(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		transfers, err := svc.RecentTransfers(c.Request.Context(), feedLimit(c))
		if err != nil {
			respond.Error(c, err)
			return
		}
		if transfers == nil {
			transfers = []domaintransfer.Transfer{}
		}
		c.JSON(http.StatusOK, gin.H{"transfers": transfers})
	}
}

func stats(svc *exchangesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Stats(c.Request.Context())
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func feedLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			return n
		}
	}
	return defaultFeedLimit
}
