package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/achievement"
	"github.com/codelingo/backend/internal/auth"
	"github.com/codelingo/backend/internal/auth/jwt"
	"github.com/codelingo/backend/internal/catalog"
	"github.com/codelingo/backend/internal/config"
	"github.com/codelingo/backend/internal/db/repository"
	"github.com/codelingo/backend/internal/lesson"
	"github.com/codelingo/backend/internal/lesson/scoring"
	"github.com/codelingo/backend/internal/logging"
	"github.com/codelingo/backend/internal/player"
	"github.com/codelingo/backend/internal/progress"
	"github.com/codelingo/backend/internal/server"
	ws "github.com/codelingo/backend/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	syncWorker *progress.SyncWorker
	bgCancels  []context.CancelFunc
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	userRepo := repository.NewUserRepository(pool)
	progressRepo := repository.NewProgressRepository(pool)
	levelRepo := repository.NewLevelRepository(pool)

	if cfg.Security.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be configured")
	}

	tokenCfg := jwt.TokenConfig{
		AccessSecret:  []byte(cfg.Security.JWTSecret),
		RefreshSecret: []byte(cfg.Security.JWTSecret + "_refresh"),
		Issuer:        cfg.Name,
	}
	authSvc := auth.NewService(userRepo, tokenCfg, logger)

	var oauthSvc *auth.OAuthService
	if cfg.OAuth.GoogleClientID != "" && cfg.OAuth.GoogleClientSecret != "" {
		redirectURL := cfg.OAuth.GoogleRedirectURL
		if redirectURL == "" {
			redirectURL = fmt.Sprintf("http://%s/v1/oauth/google/callback", cfg.HTTPAddr)
		}
		oauthSvc = auth.NewOAuthService(
			cfg.OAuth.GoogleClientID,
			cfg.OAuth.GoogleClientSecret,
			redirectURL,
			logger,
		)
		logger.Info().Msg("OAuth service initialized")
	} else {
		logger.Warn().Msg("OAuth not configured (missing GOOGLE_OAUTH_CLIENT_ID or GOOGLE_OAUTH_CLIENT_SECRET)")
	}
	authHandlers := auth.NewHTTPHandlers(authSvc, oauthSvc, logger)

	// Level catalog: curated Postgres levels first, embedded curriculum as
	// fallback, Redis in front of both.
	catalogCache := catalog.NewCache(redisClient, 0)
	catalogSvc := catalog.NewService(
		[]catalog.Source{levelRepo, catalog.NewStaticSource(catalog.Curriculum())},
		catalogCache,
		catalog.ServiceOptions{PracticeSetSize: cfg.Gameplay.PracticeSetSize},
		logger,
	)
	catalogHandler := catalog.NewHTTPHandler(catalogSvc, logger)

	// Progress: Redis hot copy, write-behind flush to Postgres.
	progressStore := progress.NewStore(progressRepo, redisClient, logger)
	syncWorker := progress.NewSyncWorker(progressStore, cfg.Sync.FlushInterval, logger)

	playerSvc := player.NewService(progressStore, player.ServiceOptions{
		MaxHearts:          cfg.Gameplay.MaxHearts,
		HeartRegenInterval: cfg.Gameplay.HeartRegenInterval,
		QuestResetCost:     cfg.Gameplay.QuestResetCost,
		HeartRefillCost:    cfg.Gameplay.HeartRefillCost,
		SkipTokenCost:      cfg.Gameplay.SkipTokenCost,
	}, logger)
	playerHandlers := player.NewHTTPHandlers(playerSvc, userRepo, logger)

	sessionStore := lesson.NewRedisSessionStore(redisClient, logger)
	lessonSvc := lesson.NewService(
		catalogSvc,
		progressStore,
		sessionStore,
		scoring.NewEngine(scoring.DefaultRewardConfig()),
		achievement.Defaults(),
		lesson.Options{
			MaxHearts:          cfg.Gameplay.MaxHearts,
			HeartRegenInterval: cfg.Gameplay.HeartRegenInterval,
		},
		logger,
	)

	wsHub := ws.NewHub(logger)
	lessonHandler := lesson.NewHandler(lessonSvc, wsHub, logger)
	lessonWS := lesson.NewWSHandler(lessonHandler, authSvc)

	apiServer := server.NewHTTPServer(
		cfg,
		logger,
		pool,
		redisClient,
		authHandlers,
		authSvc,
		playerHandlers,
		catalogHandler.ListLevels,
		lessonWS.HandleWebSocket,
	)

	return &Application{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		redis:      redisClient,
		http:       apiServer,
		syncWorker: syncWorker,
		bgCancels:  make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}
	// Give the sync worker a beat to run its final flush.
	time.Sleep(100 * time.Millisecond)

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.syncWorker != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.syncWorker.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("progress sync worker stopped")
			}
		}()
	}
}
