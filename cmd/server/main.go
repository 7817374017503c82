// Command server starts the Nomad Planner HTTP API.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/api"
	"github.com/nomadplanner/planner-api/internal/core/ports"
	"github.com/nomadplanner/planner-api/internal/core/service"
	"github.com/nomadplanner/planner-api/internal/infrastructure/ai/gemini"
	"github.com/nomadplanner/planner-api/internal/infrastructure/config"
	"github.com/nomadplanner/planner-api/internal/infrastructure/db/memory"
	mongostore "github.com/nomadplanner/planner-api/internal/infrastructure/db/mongo"
	"github.com/nomadplanner/planner-api/internal/infrastructure/db/postgres"
	rediscache "github.com/nomadplanner/planner-api/internal/infrastructure/db/redis"
	"github.com/nomadplanner/planner-api/internal/infrastructure/db/seed"
	"github.com/nomadplanner/planner-api/internal/infrastructure/http/handlers"
	"github.com/nomadplanner/planner-api/internal/infrastructure/queue"
	"github.com/nomadplanner/planner-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "planner-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// store is an opened record store backend.
type store struct {
	repos ports.Repositories
	ping  handlers.Check
	close func()
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return nil, err
		}
		db, err := postgres.New(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("using postgres record store")
		return &store{repos: db.Repositories(), ping: db.Ping, close: db.Close}, nil

	case config.DriverMongo:
		client, database, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s := mongostore.NewStore(database)
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo record store")
		return &store{
			repos: s.Repositories(),
			ping:  s.Ping,
			close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	default:
		log.Info().Msg("using in-memory record store")
		return &store{
			repos: memory.New().Repositories(),
			ping:  func(context.Context) error { return nil },
			close: func() {},
		}, nil
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	if cfg.SeedDemo {
		if _, err := seed.Demo(ctx, st.repos, time.Now(), logger.Component("seed")); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	checks := map[string]handlers.Check{"store": st.ping}

	var insightOpts []service.InsightOption
	if cfg.Redis.Addr != "" {
		rdb, err := rediscache.Connect(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache := rediscache.NewResponseCache(rdb)
		checks["redis"] = cache.Ping
		insightOpts = append(insightOpts, service.WithResponseCache(cache, cfg.AI.CacheTTL))
	}

	if cfg.AI.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, AI routes will fail")
	}
	ai := gemini.New(gemini.Config{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	}, logger.Component("gemini"))

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = randomSecret()
		if err != nil {
			return err
		}
		log.Warn().Msg("JWT_SECRET is not set, issued tokens will not survive a restart")
	}

	conversations := service.NewConversationService(st.repos.Conversations, log)
	recorder := queue.NewRecorder(cfg.AI.Workers, conversations, logger.Component("recorder"))
	recorder.Start(ctx)
	insightOpts = append(insightOpts, service.WithRecorder(recorder))

	e := api.NewRouter(api.Deps{
		Auth:          service.NewAuthService(st.repos.Users, jwtSecret, cfg.TokenTTL, log),
		Calendar:      service.NewCalendarService(st.repos.Calendar, log),
		Coworking:     service.NewCoworkingService(st.repos.Coworking, log),
		Budget:        service.NewBudgetService(st.repos.Budget, log),
		Preferences:   service.NewPreferencesService(st.repos.Preferences, log),
		Conversations: conversations,
		Insights:      service.NewInsightService(ai, st.repos, log, insightOpts...),
		Checks:        checks,
		JWTSecret:     jwtSecret,
		DemoMode:      cfg.DemoMode,
		DemoUserID:    cfg.DemoUserID,
		Logger:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		recorder.Close()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	recorder.Close()
	log.Info().Msg("stopped")
	return nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate jwt secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
