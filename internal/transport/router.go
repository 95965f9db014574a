package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alanyang/skillswap/internal/domain/event"
	portbus "github.com/alanyang/skillswap/internal/port/eventbus"
	portidem "github.com/alanyang/skillswap/internal/port/idempotency"
	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"

	agenthandler "github.com/alanyang/skillswap/internal/transport/agent"
	dispatchhandler "github.com/alanyang/skillswap/internal/transport/dispatch"
	"github.com/alanyang/skillswap/internal/transport/docs"
	exchangehandler "github.com/alanyang/skillswap/internal/transport/exchange"
	mcptransport "github.com/alanyang/skillswap/internal/transport/mcp"
	skillhandler "github.com/alanyang/skillswap/internal/transport/skill"
	wshandler "github.com/alanyang/skillswap/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	agentSvc *agentsvc.Service,
	skillSvc *skillsvc.Service,
	exchangeSvc *exchangesvc.Service,
	mcpServer *mcptransport.Server,
	idemStore portidem.Store,
	eventBus portbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(IdempotencyMiddleware(idemStore))

	api := r.Group("/api")

	agenthandler.Register(api.Group("/agents"), agentSvc)
	skillhandler.Register(api.Group("/skills"), skillSvc)

	exchange := api.Group("/exchange")
	exchangehandler.Register(exchange, exchangeSvc)
	dispatchhandler.New(agentSvc, skillSvc, exchangeSvc).Register(exchange)

	docs.Register(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "skillswap"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if mcpServer != nil {
		r.Any("/mcp", gin.WrapH(mcpServer.Handler()))
		r.Any("/mcp/*path", gin.WrapH(mcpServer.Handler()))
	}

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel. All events within a
	// channel are forwarded to WS clients; event.Type in the payload lets the
	// client filter.
	for _, ch := range []event.Channel{
		event.ChannelAgent,
		event.ChannelSkill,
		event.ChannelExchange,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
