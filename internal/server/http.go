package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/codelingo/backend/internal/auth"
	"github.com/codelingo/backend/internal/config"
	"github.com/codelingo/backend/internal/logging"
	"github.com/codelingo/backend/internal/player"
	httperrors "github.com/codelingo/backend/pkg/http/errors"
)

// WSUpgrader handles WebSocket upgrades (configure CORS/security as needed).
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: implement proper origin checking for production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewHTTPServer wires all routes for the API service. The lesson WebSocket
// handler is passed as a plain func to keep the lesson package in charge of
// its own upgrade path.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	pool *pgxpool.Pool,
	redisClient *redis.Client,
	authHandlers *auth.HTTPHandlers,
	authSvc *auth.Service,
	playerHandlers *player.HTTPHandlers,
	listLevels http.HandlerFunc,
	lessonWSHandler http.HandlerFunc,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "dependency unavailable")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	// Auth endpoints
	mux.HandleFunc("/v1/auth/register", authHandlers.Register)
	mux.HandleFunc("/v1/auth/guest", authHandlers.RegisterGuest)
	mux.HandleFunc("/v1/auth/login", authHandlers.Login)
	mux.HandleFunc("/v1/auth/refresh", authHandlers.RefreshToken)
	mux.HandleFunc("/v1/oauth/{provider}/start", authHandlers.OAuthStart)
	mux.HandleFunc("/v1/oauth/{provider}/callback", authHandlers.OAuthCallback)

	// Authenticated REST surface
	authed := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(authSvc, logger)(auth.RequireAuth(h))
	}
	mux.Handle("/v1/users/me", authed(authHandlers.GetMe))
	mux.Handle("/v1/profile", authed(playerHandlers.GetProfile))
	mux.Handle("/v1/quests/claim", authed(playerHandlers.ClaimQuest))
	mux.Handle("/v1/quests/reset", authed(playerHandlers.ResetQuest))
	mux.Handle("/v1/shop/hearts", authed(playerHandlers.BuyHearts))
	mux.Handle("/v1/shop/skip-tokens", authed(playerHandlers.BuySkipToken))
	mux.Handle("/v1/shop/premium", authed(playerHandlers.SetPremium))

	// Level catalog (public read)
	if listLevels != nil {
		mux.HandleFunc("/v1/levels", listLevels)
	}

	// Lesson play rides WebSocket; auth happens inside the handler via the
	// token query parameter.
	if lessonWSHandler != nil {
		mux.HandleFunc("/ws/lessons", lessonWSHandler)
	}

	handler := corsMiddleware(cfg.CORS)(requestLogger(logger)(recoverPanics(mux)))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	return redisClient.Ping(ctx).Err()
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), logger)))
		})
	}
}

func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger := logging.FromContext(r.Context())
				logger.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("handler panicked")
				httperrors.RespondInternalError(w, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(cfg config.CORS) func(http.Handler) http.Handler {
	allowedOrigins := map[string]bool{}
	for _, o := range cfg.AllowedOrigins {
		allowedOrigins[o] = true
	}
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowedOrigins["*"] || allowedOrigins[origin]) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
