// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/copa/internal/domain/types"
)

// MatchDependencies defines the interface for match lookups.
type MatchDependencies interface {
	MatchSummary(ctx context.Context, year int) (types.Record, string, bool)
}

// MatchHandler handles match requests.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// matchResponse mirrors the OpenAPI schema for GET /match/{year}.
type matchResponse struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner,omitempty"`
	RunnerUp string `json:"runner_up,omitempty"`
	Summary  string `json:"summary"`
	Found    bool   `json:"found"`
}

// HandleGetMatch handles GET /match/{year} requests. A year outside the
// dataset is answered with 200 and the no-data summary, never a failure.
func (h *MatchHandler) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_match"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /match/
	path := strings.TrimPrefix(r.URL.Path, "/match/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	year, err := strconv.Atoi(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rec, summary, found := h.deps.MatchSummary(r.Context(), year)
	writeJSON(w, http.StatusOK, matchResponse{
		Year:     year,
		Winner:   rec.Winner,
		RunnerUp: rec.RunnerUp,
		Summary:  summary,
		Found:    found,
	})
}
