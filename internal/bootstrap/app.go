package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/Matchday_Go/internal/apiclient"
	"github.com/osse101/Matchday_Go/internal/auth"
	"github.com/osse101/Matchday_Go/internal/config"
	"github.com/osse101/Matchday_Go/internal/draft"
	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/participation"
	"github.com/osse101/Matchday_Go/internal/presenter"
	"github.com/osse101/Matchday_Go/internal/scheduler"
	"github.com/osse101/Matchday_Go/internal/server"
	"github.com/osse101/Matchday_Go/internal/sse"
	"github.com/osse101/Matchday_Go/internal/submission"
	"github.com/osse101/Matchday_Go/internal/worker"
)

// App holds every long-lived component of the service
type App struct {
	Server    *server.Server
	Registry  *participation.Registry
	Hub       *sse.Hub
	Drafts    draft.Store
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// Build wires the components described by cfg. Background loops (hub, worker
// pool, sweep schedule) are started; the HTTP listener is not.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	slog.Info(LogMsgStartingMatchday,
		"environment", cfg.Environment,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"backend", cfg.BackendAPIURL,
		"draft_store", cfg.DraftStore)

	verifier, err := auth.NewVerifier(auth.VerifierConfig{
		Secret:       cfg.JWTSecret,
		PublicKeyPEM: cfg.JWTPublicKey,
		Issuer:       cfg.JWTIssuer,
		Audience:     cfg.JWTAudience,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	presets, err := presenter.ParsePresets(cfg.BuyInPresets)
	if err != nil {
		return nil, fmt.Errorf("invalid buy-in presets: %w", err)
	}

	drafts, err := draft.New(ctx, draft.Config{
		Kind:     cfg.DraftStore,
		RedisURL: cfg.RedisURL,
		TTL:      cfg.DraftTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}

	client := apiclient.New(cfg.BackendAPIURL, cfg.BackendAPIKey)
	client.MaxRetries = cfg.BackendMaxRetries
	client.GetTimeout = cfg.BackendGetTimeout

	gameweeks := gameweek.NewService(client, gameweek.CacheConfig{
		Size: cfg.GameweekCacheSize,
		TTL:  cfg.GameweekCacheTTL,
	})

	machine := presenter.NewMachine(presenter.Config{
		SuccessCloseDelay: cfg.SuccessCloseDelay,
		FatalCloseDelay:   cfg.FatalCloseDelay,
		ResultsPath:       cfg.ResultsPath,
		LoginPath:         cfg.LoginPath,
		BuyInPresets:      presets,
	})

	hub := sse.NewHub()
	hub.Start()

	registry := participation.NewRegistry(
		gameweeks,
		drafts,
		submission.NewCoordinator(client, nil),
		machine,
		sse.NewSink(hub),
	)

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(SweepJobName, cfg.SweepInterval, participation.NewSweepJob(registry, cfg.WorkspaceIdleTTL))
	slog.Info(LogMsgSweepScheduled, "interval", cfg.SweepInterval, "max_idle", cfg.WorkspaceIdleTTL)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, verifier, gameweeks, registry, drafts, hub)

	slog.Info(LogMsgComponentsReady)
	return &App{
		Server:    srv,
		Registry:  registry,
		Hub:       hub,
		Drafts:    drafts,
		Pool:      pool,
		Scheduler: sched,
	}, nil
}
