// Package api provides the HTTP server for LandLord.
// It exposes the progression engine as a JSON REST API.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bunkeboy/landlord/internal/app/progression"
	"github.com/bunkeboy/landlord/internal/health"
	"github.com/bunkeboy/landlord/internal/infra/metrics"
)

// Server is the LandLord HTTP API server.
type Server struct {
	svc            *progression.Service
	version        string
	metricsEnabled bool
	health         *health.Checker
}

// NewServer creates a new API server.
func NewServer(svc *progression.Service, version string) *Server {
	return &Server{svc: svc, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth attaches the daemon's health checker to /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)
	if s.metricsEnabled {
		r.Use(metricsMiddleware)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if s.health == nil {
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "ok",
			})
			return
		}
		status := http.StatusOK
		overall := "ok"
		if !s.health.IsHealthy() {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}
		writeJSON(w, status, map[string]interface{}{
			"status": overall,
			"checks": s.health.Statuses(),
		})
	})

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	r.Get("/api/achievements/catalog", s.handleCatalog)

	r.Route("/api/users/{userID}", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/progress", s.handleProgress)
		r.Get("/quests", s.handleListQuests)
		r.Post("/quests/start", s.handleStartQuest)
		r.Post("/quests/complete", s.handleCompleteQuest)
		r.Post("/activity", s.handleActivity)
		r.Post("/regeneration", s.handleRegeneration)
		r.Post("/shields/lose", s.handleLoseShield)
		r.Post("/hearts/lose", s.handleLoseHeart)
		r.Post("/sales", s.handleSale)
		r.Get("/achievements", s.handleAchievements)
		r.Post("/achievements/{achievementID}/seen", s.handleAchievementSeen)
		r.Get("/goals/{year}", s.handleGoalSummary)
		r.Put("/goals/annual", s.handleSetGoal)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// metricsMiddleware records request counts and latency per route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
