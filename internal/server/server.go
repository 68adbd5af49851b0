// internal/server/server.go
package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-signups/internal/common/config"
	"activity-signups/internal/common/logger"
	"activity-signups/internal/common/metrics"
	"activity-signups/internal/common/observability"
	"activity-signups/internal/registry"
)

// Server owns the HTTP listener for the sign-up API.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

// NewRouter assembles the full route table. Activity names are
// path-embedded; ServeMux decodes the {name} segment before it reaches the
// handlers.
func NewRouter(reg *registry.Registry, staticDir string, log logger.Logger, obs *observability.Observability) *http.ServeMux {
	h := NewHandler(reg, log)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", instrument("GET /activities", h.ListActivities, log, obs))
	mux.HandleFunc("POST /activities/{name}/signup", instrument("POST /activities/{name}/signup", h.Signup, log, obs))
	mux.HandleFunc("POST /activities/{name}/unregister", instrument("POST /activities/{name}/unregister", h.Unregister, log, obs))
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("GET /{$}", h.Root)

	seedParticipantGauge(reg)

	return mux
}

// seedParticipantGauge initializes the per-activity gauge so dashboards see
// the roster before the first mutation.
func seedParticipantGauge(reg *registry.Registry) {
	for name, activity := range reg.List() {
		metrics.ActivityParticipants.WithLabelValues(name).Set(float64(len(activity.Participants)))
	}
}

func New(cfg *config.Config, reg *registry.Registry, log logger.Logger, obs *observability.Observability) *Server {
	mux := NewRouter(reg, cfg.Static.Dir, log, obs)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      mux,
			ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
			WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		},
		logger: log,
	}
}

// ListenAndServe blocks until the listener fails or Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
