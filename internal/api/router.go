package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/device-inventory/internal/auth"
)

// healthCheckTimeout bounds each component check on /health.
const healthCheckTimeout = 2 * time.Second

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrCodeBadRequest, "method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.With(requirePermission(auth.PermDeviceRead)).Get("/metrics", s.handleMetrics)
			r.With(requirePermission(auth.PermDeviceRead)).Get(s.wsPath(), s.handleWebSocket)

			r.Route("/devices", func(r chi.Router) {
				r.With(requirePermission(auth.PermDeviceRead)).Get("/", s.handleListDevices)
				r.With(requirePermission(auth.PermDeviceWrite)).Post("/", s.handleCreateDevice)
				r.With(requirePermission(auth.PermDeviceRead)).Get("/stats", s.handleDeviceStats)

				r.Route("/{id}", func(r chi.Router) {
					r.With(requirePermission(auth.PermDeviceRead)).Get("/", s.handleGetDevice)
					r.With(requirePermission(auth.PermDeviceWrite)).Patch("/", s.handleUpdateDevice)
					r.With(requirePermission(auth.PermDeviceWrite)).Delete("/", s.handleDeleteDevice)
				})
			})
		})
	})

	return r
}

// handleHealth runs each registered component check. Any failure turns the
// response into 503 with status "degraded".
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	overall := "ok"
	checks := make(map[string]string, len(s.checks))

	for name, checker := range s.checks {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := checker.HealthCheck(ctx)
		cancel()

		if err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			overall = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	writeJSON(w, status, map[string]any{
		"status":  overall,
		"version": s.version,
		"checks":  checks,
	})
}

// wsPath is the configured WebSocket route under /api/v1.
func (s *Server) wsPath() string {
	p := strings.TrimSpace(s.wsCfg.Path)
	if p == "" || p == "/" {
		return "/ws"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
