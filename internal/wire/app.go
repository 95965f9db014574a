package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/skillswap/internal/adapter/memory"
	pgdb "github.com/alanyang/skillswap/internal/adapter/postgres"
	pgagent "github.com/alanyang/skillswap/internal/adapter/postgres/agent"
	pgeventbus "github.com/alanyang/skillswap/internal/adapter/postgres/eventbus"
	pgexchange "github.com/alanyang/skillswap/internal/adapter/postgres/exchange"
	pgidempotency "github.com/alanyang/skillswap/internal/adapter/postgres/idempotency"
	pglocker "github.com/alanyang/skillswap/internal/adapter/postgres/locker"
	pgrating "github.com/alanyang/skillswap/internal/adapter/postgres/rating"
	pgrequest "github.com/alanyang/skillswap/internal/adapter/postgres/request"
	pgskill "github.com/alanyang/skillswap/internal/adapter/postgres/skill"
	pgtransfer "github.com/alanyang/skillswap/internal/adapter/postgres/transfer"

	"github.com/alanyang/skillswap/internal/config"

	agentsvc "github.com/alanyang/skillswap/internal/service/agent"
	exchangesvc "github.com/alanyang/skillswap/internal/service/exchange"
	skillsvc "github.com/alanyang/skillswap/internal/service/skill"

	"github.com/alanyang/skillswap/internal/transport"
	mcptransport "github.com/alanyang/skillswap/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Config      *config.Config
	Pool        *pgxpool.Pool
	Server      *http.Server
	AgentSvc    *agentsvc.Service
	SkillSvc    *skillsvc.Service
	ExchangeSvc *exchangesvc.Service
	MCPServer   *mcptransport.Server
}

// Build is the composition root: the only place concrete types are wired to their
// interface dependencies.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	pool, err := pgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	agentRepo := pgagent.New(pool)
	skillRepo := pgskill.New(pool)
	transferRepo := pgtransfer.New(pool)
	requestRepo := pgrequest.New(pool)
	ratingRepo := pgrating.New(pool)
	recorder := pgexchange.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	idemStore := pgidempotency.New(pool)
	statsCache := memory.NewCache()

	// ── Services ─────────────────────────────────────────────────────────────
	agentSvcInstance := agentsvc.NewService(agentRepo, eventBus)
	skillSvcInstance := skillsvc.NewService(skillRepo, agentRepo, ratingRepo, locker, eventBus)
	exchangeSvcInstance := exchangesvc.NewService(
		agentRepo,
		skillRepo,
		transferRepo,
		requestRepo,
		recorder,
		statsCache,
		eventBus,
	)

	reg := mcptransport.NewSessionRegistry()
	mcpServer := mcptransport.New(reg, agentSvcInstance, skillSvcInstance, exchangeSvcInstance)

	// ── Transport ─────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		agentSvcInstance,
		skillSvcInstance,
		exchangeSvcInstance,
		mcpServer,
		idemStore,
		eventBus,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port, "env", cfg.Env)

	return &App{
		Config:      cfg,
		Pool:        pool,
		Server:      server,
		AgentSvc:    agentSvcInstance,
		SkillSvc:    skillSvcInstance,
		ExchangeSvc: exchangeSvcInstance,
		MCPServer:   mcpServer,
	}, nil
}
