package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Matchday_Go/internal/auth"
	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/handler"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
	"github.com/osse101/Matchday_Go/internal/participation"
	"github.com/osse101/Matchday_Go/internal/sse"
)

type Server struct {
	httpServer *http.Server
	registry   *participation.Registry
	hub        *sse.Hub
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, verifier auth.TokenVerifier, gameweeks gameweek.Service, registry *participation.Registry, drafts handler.Pinger, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	proxies := newProxySet(trustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(RateLimitMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(DefaultMaxBodyBytes))
	r.Use(AuthMiddleware(verifier, proxies, detector))

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(drafts))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	participationHandler := handler.NewParticipationHandler(registry)
	adminHandler := handler.NewAdminHandler(registry, gameweeks)

	r.Route("/api/v1", func(r chi.Router) {
		// Push channel for toasts and navigation
		r.Get("/events", sse.Handler(hub))

		r.Route("/gameweeks/{gameweekID}", func(r chi.Router) {
			r.Get("/", handler.HandleGetGameweek(gameweeks))

			r.Post("/workspace", participationHandler.HandleOpenWorkspace)
			r.Get("/workspace", participationHandler.HandleGetWorkspace)

			r.Route("/picks/{matchID}", func(r chi.Router) {
				r.Put("/", participationHandler.HandleSetPick)
				r.Put("/score", participationHandler.HandleSetScore)
			})

			r.Patch("/form", participationHandler.HandleUpdateForm)

			r.Route("/dialog", func(r chi.Router) {
				r.Post("/submit", participationHandler.HandleSubmit)
				r.Post("/cancel", participationHandler.HandleCancel)
				r.Post("/dismiss", participationHandler.HandleDismiss)
				r.Delete("/", participationHandler.HandleClose)
			})
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin))
			r.Get("/workspaces", adminHandler.HandleGetWorkspaceStats)

			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", adminHandler.HandleGetCacheStats)
				r.Post("/clear", adminHandler.HandleClearCache)
				r.Delete("/gameweeks/{gameweekID}", adminHandler.HandleInvalidateGameweek)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		registry: registry,
		hub:      hub,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps event streams working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops accepting requests, closes event streams so Shutdown does not
// wait on them, then drops open workspaces and their pending close timers.
func (s *Server) Stop(ctx context.Context) error {
	s.hub.Stop()
	err := s.httpServer.Shutdown(ctx)
	s.registry.Shutdown()
	return err
}
