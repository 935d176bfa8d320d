package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SHEBN-DEV/Demoshebn/internal/app/registry"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/rendezvous"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/server"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/server/handlers"
	"github.com/SHEBN-DEV/Demoshebn/internal/app/worker"
	"github.com/SHEBN-DEV/Demoshebn/internal/config"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/contracts"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/services"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/logger"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/metrics"
	"github.com/SHEBN-DEV/Demoshebn/internal/platform/telemetry"
	"github.com/SHEBN-DEV/Demoshebn/internal/plugins/didit"
	"github.com/SHEBN-DEV/Demoshebn/internal/plugins/postgres"
	redisPlugin "github.com/SHEBN-DEV/Demoshebn/internal/plugins/redis"
	"github.com/SHEBN-DEV/Demoshebn/pkg/logging"
	"github.com/redis/go-redis/v9"
)

const feedNotify = "notify"

func main() {
	// Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg := config.Load()

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", logging.Err(err))
		return
	}

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", logging.Err(err))
	}
	defer func() {
		if otelShutdown == nil {
			return
		}
		log.Info("flushing telemetry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", logging.Err(err))
		}
	}()

	// Infra
	var pdb *sql.DB
	if pdb, err = postgres.New(ctx, *cfg.Postgres); err != nil {
		log.Error("postgres connection failed", logging.Err(err))
		return
	}
	defer pdb.Close()
	log.Info("postgres connected")
	if err = postgres.Migrate(ctx, pdb); err != nil {
		log.Error("postgres migration failed", logging.Err(err))
		return
	}
	var rdb *redis.Client
	if rdb, err = redisPlugin.NewRedisClient(ctx, *cfg.Redis); err != nil {
		log.Error("redis connection failed", "url", cfg.Redis.URL, logging.Err(err))
		return
	}
	defer rdb.Close()
	log.Info("redis connected")

	m := metrics.New()

	// Adapters
	identityRepo := postgres.NewIdentityRepo(pdb)
	profileRepo := postgres.NewProfileRepo(pdb)
	msgRepo := postgres.NewMessageRepo(pdb)
	txManager := postgres.NewTxManager(pdb)
	presStore := redisPlugin.NewRedisPresenceStore(rdb, services.OnlineWindow)
	feed := redisPlugin.NewRedisChangeFeed(log, rdb)
	verifier := didit.NewDiditClient(log, *cfg.Verification, cfg.Service.PublicURL+"/verification/callback")

	// Core Services
	tokenSvc := services.NewTokenService(cfg.SecretToken)
	identitySvc := services.NewIdentityService(log, identityRepo, tokenSvc)
	contactSvc := services.NewContactService(log, profileRepo, presStore)
	presenceSvc := services.NewPresenceService(log, presStore)

	var publisher contracts.ChangePublisher = feed
	if cfg.Feed.Source == feedNotify {
		// the database trigger feeds the relay; publishing here would duplicate
		publisher = nil
	}
	msgSvc := services.NewMessageService(log, msgRepo, publisher, m)

	signupSvc := services.NewSignUpService(
		log,
		identitySvc,
		profileRepo,
		txManager,
		verifier,
		rendezvous.New(),
		services.SignUpOptions{
			VerificationTimeout: cfg.SignUp.VerificationTimeout,
			RedirectTo:          cfg.SignUp.RedirectTo,
			RedirectAfter:       cfg.SignUp.RedirectAfter,
			FlowRetention:       cfg.SignUp.FlowRetention,
			AllowClientRelay:    cfg.Verification.APIKey == "",
		},
		m,
	)
	defer signupSvc.Close()

	// Presence follows the user's first and last connection
	hub := registry.NewRegistry()
	hub.RunWorker(presenceSvc.Track)

	if cfg.Feed.Source == feedNotify {
		listener := postgres.NewNotifyListener(log, *cfg.Postgres, *cfg.Feed)
		relay := worker.NewChangeRelay(log, listener, feed, m)
		go func() {
			if err := relay.Run(ctx); err != nil {
				log.Error("change relay stopped", logging.Err(err))
				stop()
			}
		}()
	}
	log.Info("change feed ready", "source", cfg.Feed.Source)

	// Server
	srv := server.NewServer(
		log,
		cfg.Service.Name,
		cfg.Service.Add,
		tokenSvc,
		handlers.NewAuthHandler(identitySvc, signupSvc, contactSvc),
		handlers.NewVerificationHandler(signupSvc, cfg.Verification.CallbackSecret),
		handlers.NewContactsHandler(contactSvc),
		handlers.NewMessagesHandler(msgSvc),
		handlers.NewWSHandler(hub, msgSvc, feed, m),
		m,
	)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", logging.Err(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", logging.Err(err))
	}
	hub.CloseAll()
	log.Info("stopped", "open_connections", hub.Count())
}
