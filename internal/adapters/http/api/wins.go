// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"
)

// WinsDependencies defines the interface for win-count lookups.
type WinsDependencies interface {
	WinSummary(ctx context.Context, country string) (int, string)
}

// WinsHandler handles win-count requests.
type WinsHandler struct {
	deps WinsDependencies
}

// NewWinsHandler creates a new wins handler.
func NewWinsHandler(deps WinsDependencies) *WinsHandler {
	return &WinsHandler{deps: deps}
}

// winsResponse mirrors the OpenAPI schema for GET /wins/{country}.
type winsResponse struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
	Summary string `json:"summary"`
}

// HandleGetWins handles GET /wins/{country} requests. A country that never
// won is not an error: it reports zero wins and the never-won summary.
func (h *WinsHandler) HandleGetWins(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_wins"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /wins/
	country := strings.TrimPrefix(r.URL.Path, "/wins/")
	if country == "" || strings.Contains(country, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	wins, summary := h.deps.WinSummary(r.Context(), country)
	writeJSON(w, http.StatusOK, winsResponse{Country: country, Wins: wins, Summary: summary})
}
