package skill

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainrating "github.com/alanyang/skillswap/internal/domain/rating"
	domainskill "github.com/alanyang/skillswap/internal/domain/skill"
	"github.com/alanyang/skillswap/internal/metrics"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"
	"github.com/alanyang/skillswap/internal/transport/respond"
)

func Register(rg *gin.RouterGroup, svc *skillsvc.Service) {
	rg.POST("/", publishSkill(svc))
	rg.GET("/", listSkills(svc))
	rg.GET("/:id", getSkill(svc))
	rg.GET("/:id/ratings", listRatings(svc))
	rg.POST("/:id/rate", rateSkill(svc))
}

type publishReq struct {
	OwnerAgentID string                 `json:"owner_agent_id" binding:"required"`
	SkillName    string                 `json:"skill_name" binding:"required"`
	Category     string                 `json:"category"`
	Description  string                 `json:"description"`
	Endpoint     string                 `json:"endpoint"`
	Parameters   map[string]interface{} `json:"parameters"`
}

func publishSkill(svc *skillsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req publishReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s, err := svc.Publish(c.Request.Context(), req.OwnerAgentID, req.SkillName,
			req.Category, req.Description, req.Endpoint, req.Parameters)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "skill_id": s.ID, "skill": s})
	}
}

func listSkills(svc *skillsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainskill.ListFilters

		if v := c.Query("category"); v != "" {
			cat := domainskill.NormalizeCategory(v)
			filters.Category = &cat
		}
		if v := c.Query("search"); v != "" {
			filters.Search = &v
		}

		skills, err := svc.List(c.Request.Context(), filters)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if skills == nil {
			skills = []domainskill.Skill{}
		}
		c.JSON(http.StatusOK, gin.H{"total_skills": len(skills), "skills": skills})
	}
}

func getSkill(svc *skillsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill id"})
			return
		}

		s, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func listRatings(svc *skillsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill id"})
			return
		}

		ratings, err := svc.ListRatings(c.Request.Context(), id)
		if err != nil {
			respond.Error(c, err)
			return
		}
		if ratings == nil {
			ratings = []domainrating.Rating{}
		}
		c.JSON(http.StatusOK, gin.H{"ratings": ratings})
	}
}

type rateReq struct {
	AgentID string `json:"agent_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Review  string `json:"review"`
}

func rateSkill(svc *skillsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill id"})
			return
		}

		var req rateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := svc.Rate(c.Request.Context(), req.AgentID, id, req.Rating, req.Review); err != nil {
			respond.Error(c, err)
			return
		}
		metrics.RatingsSubmitted.Inc()
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
