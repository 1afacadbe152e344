package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/seatgrid/arrange"
	"github.com/katalvlaran/seatgrid/exact"
	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/internal/config"
	"github.com/katalvlaran/seatgrid/internal/metrics"
	"github.com/katalvlaran/seatgrid/seat"
)

// Failure kinds surfaced to API clients. Both solver kinds are
// recoverable conditions, hence 422 rather than 500.
const (
	kindCountMismatch  = "count_mismatch"
	kindExhausted      = "search_exhausted"
	kindNotSatisfiable = "not_satisfiable"
)

type arrangeRequest struct {
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Counts map[string]int `json:"counts"`
	Seed   int64          `json:"seed,omitempty"`
	Exact  bool           `json:"exact,omitempty"`
	Hall   string         `json:"hall,omitempty"`
}

type arrangeResponse struct {
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Seats      [][]seat.Seat `json:"seats"`
	Attempts   int           `json:"attempts,omitempty"`
	Runs       int           `json:"runs,omitempty"`
	DurationMs int64         `json:"durationMs"`
}

type failureResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	var req arrangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, failureResponse{Error: "malformed request body", Kind: "bad_request"})
		return
	}

	cfg := s.cfg.Load()
	if req.Hall != "" {
		hall, ok := cfg.Hall(req.Hall)
		if !ok {
			s.writeJSON(w, http.StatusBadRequest, failureResponse{Error: "unknown hall " + strconv.Quote(req.Hall), Kind: "bad_request"})
			return
		}
		req.Rows, req.Cols, req.Counts = hall.Rows, hall.Cols, hall.Counts
	}

	counts := make(grid.Counts, len(req.Counts))
	for cat, n := range req.Counts {
		counts[grid.Category(cat)] = n
	}

	// The engines are CPU-bound; past the cap, clients wait their turn or
	// give up with their request context.
	if err := s.solves.Acquire(r.Context(), 1); err != nil {
		s.writeJSON(w, http.StatusServiceUnavailable, failureResponse{Error: "server busy", Kind: "busy"})
		return
	}
	defer s.solves.Release(1)

	engine := metrics.EngineRandomized
	if req.Exact {
		engine = metrics.EngineExact
	}

	start := time.Now()
	layout, stats, err := s.solve(r, req, counts, cfg)
	metrics.ArrangeAttempts.Add(float64(stats.Attempts))

	if err != nil {
		outcome, status, kind := classify(err)
		metrics.ArrangeDuration.WithLabelValues(engine, outcome).Observe(time.Since(start).Seconds())
		s.logger.WithFields(log.Fields{
			"rows": req.Rows, "cols": req.Cols, "engine": engine, "kind": kind,
		}).Info("arrangement failed")
		s.writeJSON(w, status, failureResponse{Error: userMessage(err), Kind: kind})
		return
	}

	sg, err := seat.Assign(layout)
	if err != nil {
		// Assign only fails on a broken solver contract.
		metrics.ArrangeDuration.WithLabelValues(engine, metrics.OutcomeError).Observe(time.Since(start).Seconds())
		s.logger.WithError(err).Error("label assignment rejected a solved layout")
		s.writeJSON(w, http.StatusInternalServerError, failureResponse{Error: "internal error", Kind: "internal"})
		return
	}

	metrics.ArrangeDuration.WithLabelValues(engine, metrics.OutcomeSolved).Observe(time.Since(start).Seconds())
	s.writeJSON(w, http.StatusOK, arrangeResponse{
		Rows:       layout.Rows(),
		Cols:       layout.Cols(),
		Seats:      sg.Seats(),
		Attempts:   stats.Attempts,
		Runs:       stats.Runs,
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// solve dispatches to the chosen engine. The randomized engine runs
// parallel when the config asks for more than one worker.
func (s *Server) solve(r *http.Request, req arrangeRequest, counts grid.Counts, cfg *config.Config) (*grid.Layout, arrange.Stats, error) {
	if req.Exact {
		layout, err := exact.Arrange(r.Context(), req.Rows, req.Cols, counts)
		return layout, arrange.Stats{}, err
	}
	opts := cfg.Options(req.Seed)
	if opts.Workers > 1 {
		return arrange.SolveParallel(r.Context(), req.Rows, req.Cols, counts, opts)
	}
	return arrange.Solve(req.Rows, req.Cols, counts, opts)
}

// classify maps an engine failure to its metric outcome, HTTP status, and
// client-facing kind.
func classify(err error) (outcome string, status int, kind string) {
	var ns exact.NotSatisfiable
	switch {
	case errors.Is(err, grid.ErrCountMismatch):
		return metrics.OutcomeBadRequest, http.StatusUnprocessableEntity, kindCountMismatch
	case errors.Is(err, grid.ErrBadDimensions), errors.Is(err, grid.ErrNegativeCount):
		return metrics.OutcomeBadRequest, http.StatusBadRequest, "bad_request"
	case errors.Is(err, arrange.ErrSearchExhausted):
		return metrics.OutcomeExhausted, http.StatusUnprocessableEntity, kindExhausted
	case errors.As(err, &ns):
		return metrics.OutcomeUnsat, http.StatusUnprocessableEntity, kindNotSatisfiable
	default:
		return metrics.OutcomeError, http.StatusInternalServerError, "internal"
	}
}

// userMessage phrases failures for end users. Exhaustion never claims
// impossibility; only the exact engine may say that.
func userMessage(err error) string {
	var ns exact.NotSatisfiable
	switch {
	case errors.Is(err, arrange.ErrSearchExhausted):
		return "could not find an arrangement; try again or adjust the counts"
	case errors.As(err, &ns):
		return "no arrangement exists: " + ns.Error()
	default:
		return err.Error()
	}
}

func (s *Server) handleHalls(w http.ResponseWriter, _ *http.Request) {
	cfg := s.cfg.Load()
	s.writeJSON(w, http.StatusOK, struct {
		Halls []config.Hall `json:"halls"`
	}{Halls: cfg.Halls})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Warn("response encode failed")
	}
}
