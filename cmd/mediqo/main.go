// mediqo server — receives patient messages over the webhook, runs the
// conversation pipeline, and exposes the scheduling REST API plus the
// rule-authoring gRPC surface.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/mediqo/mediqo/pkg/api"
	"github.com/mediqo/mediqo/pkg/cleanup"
	"github.com/mediqo/mediqo/pkg/clinic"
	"github.com/mediqo/mediqo/pkg/config"
	"github.com/mediqo/mediqo/pkg/constraints"
	"github.com/mediqo/mediqo/pkg/database"
	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/messaging"
	"github.com/mediqo/mediqo/pkg/outreach"
	"github.com/mediqo/mediqo/pkg/pipeline"
	"github.com/mediqo/mediqo/pkg/policy"
	"github.com/mediqo/mediqo/pkg/router"
	"github.com/mediqo/mediqo/pkg/rulestore"
	"github.com/mediqo/mediqo/pkg/scheduling"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/slack"
	"github.com/mediqo/mediqo/pkg/summarizer"
	"github.com/mediqo/mediqo/pkg/tiers"
	"github.com/mediqo/mediqo/pkg/version"
	"github.com/mediqo/mediqo/proto/rulestorepb"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// sweepInterval is how often the summarizer retries sessions whose
// archival-time summarization was missed (e.g. across a restart).
const sweepInterval = 10 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.Default()

	ctx := context.Background()

	// Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Redis-backed KV layer: constraints, locks, limit counters,
	// caches.
	redisClient, err := kv.NewRedisClient(ctx)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	store := kv.NewRedisStore(redisClient)
	locker := kv.NewRedisLocker(redisClient)
	limits := kv.NewRedisLimitCounter(redisClient)
	slog.Info("Connected to Redis")

	entClient := dbClient.Client

	// Clinic profiles, constraints, language.
	clinics := clinic.NewCache(clinic.NewEntSource(entClient), store,
		clinic.WithWarmTTL(cfg.ClinicCacheWarmTTL))
	constraintStore := constraints.NewStore(store)
	langService := lang.NewService(store)

	// Model tiers and providers.
	registry, err := tiers.NewRegistry(tiers.Config{})
	if err != nil {
		slog.Error("Model tier configuration is invalid", "error", err)
		os.Exit(1)
	}
	providers := llm.NewFactory(llm.FactoryConfig{
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
	})

	// Sessions: archival fires the summarizer without blocking.
	sessionRepo := session.NewEntRepo(entClient)
	historySource := hydrate.NewEntHistorySource(entClient)
	summarizerSvc := summarizer.New(historySource, sessionRepo, registry, providers, logger)
	sessions := session.NewManager(sessionRepo, locker, constraintStore, cfg.BoundaryLockTTL,
		func(sessionID string) { summarizerSvc.Kick(ctx, sessionID) })

	hydrator := hydrate.New(
		clinics,
		hydrate.NewEntPatientSource(entClient, cfg.PatientUpsertCacheTTL),
		historySource,
		constraintStore,
	)

	// Scheduling engine over the active policy bundle. The Slack
	// notifier is nil without credentials, which disables it.
	notifier := slack.NewService(slack.ServiceConfig{
		Token:        cfg.SlackToken,
		Channel:      cfg.SlackChannel,
		DashboardURL: cfg.DashboardURL,
	})
	ruleStore := rulestore.NewEntStore(entClient)
	escalations := scheduling.NewEntEscalationRepo(entClient)
	engine := scheduling.NewEngine(scheduling.Deps{
		Clinics:     clinics,
		Holds:       scheduling.NewEntHoldRepo(entClient),
		Appts:       scheduling.NewEntAppointmentRepo(entClient),
		Escalations: escalations,
		Policies:    rulestore.NewPolicySource(ruleStore, policy.NewCache()),
		Limits:      limits,
		Notifier:    notifier,
		Logger:      logger,
	})

	if !cfg.EnablePipeline {
		slog.Warn("ENABLE_PIPELINE=false is ignored; the step pipeline handles all messages")
	}
	pipe := pipeline.New(pipeline.Deps{
		Language:    langService,
		Sessions:    sessions,
		Hydrator:    hydrator,
		Escalations: escalations,
		Router:      router.New(),
		FastPath:    router.NewFastPath(),
		State:       sessionRepo,
		Extractor:   constraints.NewExtractor(),
		Constraints: constraintStore,
		Tiers:       registry,
		Providers:   providers,
		Scheduler:   engine,
		TurnLog:     pipeline.NewEntTurnLog(entClient),
		FollowUps:   pipeline.NewKVFollowUps(store),
		Logger:      logger,
		LogFailFast: cfg.ConversationLogFailFast,
	})
	slog.Info("Pipeline initialized")

	// HTTP surface.
	sender := messaging.NewClient(cfg.MessagingBaseURL, cfg.MessagingAPIKey)
	httpAPI := api.NewServer(api.Deps{
		Pipeline:        pipe,
		Scheduling:      engine,
		Sender:          sender,
		DB:              dbClient,
		DefaultClinicID: cfg.DefaultClinicID,
		Logger:          logger,
	})
	ginEngine := gin.New()
	ginEngine.Use(gin.Recovery())
	httpAPI.Register(ginEngine)
	httpServer := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: ginEngine}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Rule-authoring gRPC surface.
	grpcAddr := ":" + getEnv("GRPC_PORT", "50051")
	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		slog.Error("Failed to listen for gRPC", "addr", grpcAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	rulestorepb.RegisterRuleStoreServer(grpcServer, rulestore.NewService(ruleStore, logger))
	go func() {
		slog.Info("gRPC server listening", "addr", grpcAddr)
		if err := grpcServer.Serve(listener); err != nil {
			errCh <- err
		}
	}()

	// Background workers: promised follow-ups and data retention.
	outreachWorker := outreach.NewWorker(store, clinics, sender, logger, outreach.Config{
		Interval: cfg.OutreachInterval,
	})
	outreachWorker.Start(ctx)

	retention := cleanup.NewService(entClient, cleanup.Config{
		SessionRetentionDays: cfg.SessionRetentionDays,
		Interval:             cfg.RetentionInterval,
	})
	retention.Start(ctx)

	// Background summary sweep.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if _, err := summarizerSvc.Sweep(sweepCtx, 20); err != nil {
					slog.Warn("Summary sweep failed", "error", err)
				}
			}
		}
	}()

	slog.Info("mediqo started", "version", version.Full(), "http_port", cfg.HTTPPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	stopSweep()
	outreachWorker.Stop()
	retention.Stop()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}
