// Package server provides the HTTP REST API for drafting and rendering resumes.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/bethejack/internal/db"
	"github.com/jonathan/bethejack/internal/drafts"
	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/profile"
	"github.com/jonathan/bethejack/internal/server/middleware"
	"github.com/jonathan/bethejack/internal/server/ratelimit"
)

// maxBodyBytes bounds request bodies; photos arrive base64 encoded.
const maxBodyBytes = 16 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	db          *db.DB
	drafts      drafts.Store
	profiles    profile.Store
	drafter     generation.Drafter
	displayName string
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port int
	// DatabaseURL switches drafts and profiles to PostgreSQL when set.
	DatabaseURL string
	// ProfileDir holds profile JSON files when no database is configured.
	ProfileDir string
	// DisplayName is the default name line for renders.
	DisplayName string
	Drafter     generation.Drafter
	// RateLimit defaults to ratelimit.LoadConfig().
	RateLimit *ratelimit.Config

	// Drafts and Profiles override the stores chosen above.
	Drafts   drafts.Store
	Profiles profile.Store
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Drafter == nil {
		return nil, fmt.Errorf("a drafter is required")
	}

	s := &Server{
		drafter:     cfg.Drafter,
		displayName: cfg.DisplayName,
		drafts:      cfg.Drafts,
		profiles:    cfg.Profiles,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
		if s.drafts == nil {
			s.drafts = db.Drafts{DB: database}
		}
		if s.profiles == nil {
			s.profiles = db.Profiles{DB: database}
		}
	}
	if s.drafts == nil {
		s.drafts = drafts.NewMemoryStore()
	}
	if s.profiles == nil {
		dir := cfg.ProfileDir
		if dir == "" {
			dir = "profiles"
		}
		s.profiles = profile.NewFileStore(dir)
	}

	limits := cfg.RateLimit
	if limits == nil {
		limits = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(limits)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /drafts", s.handleCreateDraft)
	mux.HandleFunc("GET /drafts", s.handleListDrafts)
	mux.HandleFunc("GET /drafts/{id}", s.handleGetDraft)
	mux.HandleFunc("PUT /drafts/{id}", s.handleUpdateDraft)
	mux.HandleFunc("POST /drafts/{id}/render", s.handleRenderDraft)
	mux.HandleFunc("GET /drafts/{id}/renders", s.handleListRenders)

	mux.HandleFunc("POST /render", s.handleRender)

	mux.HandleFunc("GET /profiles/{name}", s.handleGetProfile)
	mux.HandleFunc("PUT /profiles/{name}", s.handlePutProfile)

	s.handler = middleware.RequestID(s.withRateLimit(s.withLogging(s.withCORS(mux))))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 180 * time.Second, // Model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully. It
// returns early if the listener fails.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Println("[server] shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer s.Close()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("[server] stopped")
	return nil
}

// Close releases the rate limiter and the database pool.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		d := s.rateLimiter.Allow(clientID, r.Method, r.URL.Path)
		s.setRateLimitHeaders(w, d)
		if !d.Allowed {
			s.rateLimitResponse(w, d)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := middleware.GetRequestID(r)
		log.Printf("[server] %s %s %s (%s)", r.Method, r.URL.Path, r.RemoteAddr, id)
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s completed in %v (%s)", r.Method, r.URL.Path, time.Since(start), id)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			s.jsonResponse(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to a status code and writes it as an error response.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[server] request failed: %v", err)
	}
	s.errorResponse(w, status, err.Error())
}

// decode reads a JSON body into v. An empty body leaves v untouched when
// optional is set.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, d ratelimit.Decision) {
	if d.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, d ratelimit.Decision) {
	response := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"rule":    d.Rule,
		"limit":   d.Limit,
	}

	if d.RetryAfter > 0 {
		secs := int(math.Ceil(d.RetryAfter.Seconds()))
		response["retry_after"] = secs
		response["reset_at"] = d.Reset.Format(time.RFC3339)
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	log.Printf("[rate-limit] %s exceeded: limit=%d retry_after=%s", d.Rule, d.Limit, d.RetryAfter.Round(time.Second))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
