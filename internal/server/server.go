// Package server exposes the arrangement engines over HTTP JSON. It is
// caller glue: request validation, engine dispatch, failure mapping, and
// observability — never solver logic.
package server

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/seatgrid/internal/config"
)

// Server carries the shared state of the HTTP API: the current config
// snapshot (swapped atomically on hot reload) and the solve cap.
type Server struct {
	cfg    atomic.Pointer[config.Config]
	solves *semaphore.Weighted
	logger *log.Logger
}

// New builds a Server around an initial config. maxSolves caps concurrent
// solver invocations; the engines are CPU-bound, so a cap near the core
// count keeps latency predictable under bursts.
func New(cfg *config.Config, logger *log.Logger, maxSolves int64) *Server {
	if maxSolves < 1 {
		maxSolves = 1
	}
	s := &Server{
		solves: semaphore.NewWeighted(maxSolves),
		logger: logger,
	}
	s.cfg.Store(cfg)
	return s
}

// ApplyConfig swaps in a new configuration snapshot. Safe for concurrent
// use; in-flight requests keep the snapshot they started with.
func (s *Server) ApplyConfig(cfg *config.Config) {
	s.cfg.Store(cfg)
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/arrange", s.instrument("arrange", s.handleArrange))
	mux.Handle("GET /api/v1/halls", s.instrument("halls", s.handleHalls))
	mux.Handle("GET /healthz", s.instrument("healthz", s.handleHealthz))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
