package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/ianattheGrid/jobz/internal/config"
	"github.com/ianattheGrid/jobz/internal/db"
	"github.com/ianattheGrid/jobz/internal/jobs"
	"github.com/ianattheGrid/jobz/internal/metrics"
	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/revocation"
	"github.com/ianattheGrid/jobz/internal/server/middleware"
	"github.com/ianattheGrid/jobz/internal/server/ratelimit"
)

// maxBodyBytes caps every request body.
const maxBodyBytes = 1 << 20

// Store is everything the server persists. *db.DB and *db.MemoryStore
// implement it.
type Store interface {
	UserStore
	profile.Store
	jobs.Store
	Ping(ctx context.Context) error
}

// Deps are the collaborators of a Server.
type Deps struct {
	Store     Store
	Revoked   revocation.List
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	RateLimit *ratelimit.Config // nil loads RATE_LIMIT_* from the environment
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	cfg         *config.Config
	store       Store
	logger      *slog.Logger
	metrics     *metrics.Metrics
	rateLimiter *ratelimit.Limiter
	closers     []func()

	userService *UserService
	jwtService  *JWTService
	authHandler *AuthHandler
	profiles    *profile.Service
	jobs        *jobs.Service
}

// Open builds a Server for cfg, connecting to Postgres and Redis when their
// URLs are set and falling back to memory otherwise. The Postgres schema is
// applied on connect.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) (*Server, error) {
	var (
		store   Store
		revoked revocation.List
		closers []func()
	)

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
		store = database
		closers = append(closers, database.Close)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory store")
		store = db.NewMemoryStore()
	}

	if cfg.RedisURL != "" {
		client, err := revocation.Dial(ctx, cfg.RedisURL)
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		revoked = revocation.NewRedisList(client)
		closers = append(closers, func() { _ = client.Close() })
	} else {
		revoked = revocation.NewMemoryList()
	}

	s := New(cfg, Deps{Store: store, Revoked: revoked, Logger: logger, Metrics: m})
	s.closers = append(s.closers, closers...)
	return s, nil
}

// New creates a new server instance over deps.
func New(cfg *config.Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.RateLimit == nil {
		deps.RateLimit = ratelimit.LoadConfig()
	}

	s := &Server{
		cfg:         cfg,
		store:       deps.Store,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		rateLimiter: ratelimit.NewLimiter(deps.RateLimit),
	}
	s.closers = append(s.closers, s.rateLimiter.Stop)

	s.userService = NewUserService(deps.Store, cfg.Password)
	s.jwtService = NewJWTService(cfg.JWT, deps.Revoked)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s.logger)
	s.profiles = profile.NewService(deps.Store,
		profile.WithLogger(s.logger),
		profile.WithMetrics(s.metrics))
	s.jobs = jobs.NewService(deps.Store,
		jobs.WithLogger(s.logger),
		jobs.WithMetrics(s.metrics))

	mux := http.NewServeMux()
	s.routes(mux)
	s.handler = s.withLogging(s.withRateLimit(s.withCORS(mux)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// Auth
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)
	mux.Handle("POST /v1/auth/logout", s.authed(s.authHandler.Logout))
	mux.Handle("PUT /v1/auth/password", s.authed(s.authHandler.UpdatePassword))
	mux.Handle("GET /v1/session", s.authed(s.authHandler.Session))

	// Taxonomy and the role picker
	mux.HandleFunc("GET /v1/taxonomy/areas", s.handleListAreas)
	mux.HandleFunc("GET /v1/taxonomy/areas/{area}", s.handleGetArea)
	mux.HandleFunc("GET /v1/taxonomy/specializations/{spec}/titles", s.handleListTitles)
	mux.HandleFunc("GET /v1/taxonomy/gaps", s.handleListGaps)
	mux.HandleFunc("POST /v1/cascade", s.handleCascade)

	// Candidate profiles
	mux.HandleFunc("GET /v1/profiles/{track}/schema", s.handleProfileSchema)
	mux.Handle("GET /v1/profiles", s.withRole(db.RoleCandidate, s.handleListProfiles))
	mux.Handle("GET /v1/profiles/{track}", s.withRole(db.RoleCandidate, s.handleGetProfile))
	mux.Handle("PUT /v1/profiles/{track}", s.withRole(db.RoleCandidate, s.handlePutProfile))
	mux.Handle("POST /v1/profiles/{track}/edits", s.withRole(db.RoleCandidate, s.handleEditProfile))
	mux.HandleFunc("POST /v1/profiles/{track}/preview", s.handlePreviewEdits)

	// Job postings
	mux.HandleFunc("GET /v1/jobs", s.handleListJobs)
	mux.Handle("POST /v1/jobs", s.withRole(db.RoleEmployer, s.handleCreateJob))
	mux.Handle("GET /v1/jobs/matches", s.withRole(db.RoleCandidate, s.handleJobMatches))
	mux.HandleFunc("GET /v1/jobs/{id}", s.handleGetJob)
	mux.Handle("DELETE /v1/jobs/{id}", s.withRole(db.RoleEmployer, s.handleDeleteJob))
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases the store, the revocation client and the rate limiter.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

func (s *Server) authed(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

func (s *Server) withRole(role string, h http.HandlerFunc) http.Handler {
	return s.authed(middleware.RequireRole(role)(h).ServeHTTP)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs every request and records its latency.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(route, r.Method, rec.status, elapsed)
		s.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", elapsed))
	})
}

// handleHealth reports whether the store is reachable.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.ErrorContext(r.Context(), "health check failed", slog.Any("error", err))
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// fail maps err to a status and writes it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, s.logger, err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already out; nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	writeJSON(w, status, errorBody(err, status))
}

// decodeJSON decodes the request body into v. On failure it writes a 400 and
// returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return false
	}
	return true
}

// clientID extracts the client identifier from the request. X-Forwarded-For
// is ignored since no trusted proxy list is configured.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Round(time.Second).Seconds())
		response["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	s.logger.WarnContext(r.Context(), "rate limit exceeded",
		slog.String("client", clientID(r)),
		slog.String("path", r.URL.Path),
		slog.Int("limit", info.Limit))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
