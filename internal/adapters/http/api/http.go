// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/copa/internal/domain/types"
	"github.com/okian/copa/internal/domain/view"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Figure resolves the selection into a rendering instruction set.
	Figure(ctx context.Context, sel view.Selection) view.Figure

	// WinSummary returns the title count and status line for a country.
	WinSummary(ctx context.Context, country string) (int, string)

	// MatchSummary returns the record and status line for a year.
	MatchSummary(ctx context.Context, year int) (types.Record, string, bool)

	// Controls evaluates the selector interlock.
	Controls(ctx context.Context, sel view.Selection) view.Controls

	// SelectorOptions returns the dropdown option lists.
	SelectorOptions(ctx context.Context) (countries []string, years []int)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	figureHandler    *FigureHandler
	winsHandler      *WinsHandler
	matchHandler     *MatchHandler
	controlsHandler  *ControlsHandler
	selectorsHandler *SelectorsHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		figureHandler:    NewFigureHandler(deps),
		winsHandler:      NewWinsHandler(deps),
		matchHandler:     NewMatchHandler(deps),
		controlsHandler:  NewControlsHandler(deps),
		selectorsHandler: NewSelectorsHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/figure", MetricsMiddleware(s.figureHandler.HandleGetFigure, "figure"))
	mux.HandleFunc("/controls", MetricsMiddleware(s.controlsHandler.HandleGetControls, "controls"))
	mux.HandleFunc("/options", MetricsMiddleware(s.selectorsHandler.HandleGetOptions, "options"))
	mux.HandleFunc("/wins/", MetricsMiddleware(s.winsHandler.HandleGetWins, "wins"))
	mux.HandleFunc("/match/", MetricsMiddleware(s.matchHandler.HandleGetMatch, "match"))
}

// parseSelection reads the shared country/year query parameters.
// An absent or blank year means no year is selected; anything else must be
// an integer.
func parseSelection(r *http.Request) (view.Selection, error) {
	sel := view.Selection{
		Country: strings.TrimSpace(r.URL.Query().Get("country")),
	}
	yearStr := strings.TrimSpace(r.URL.Query().Get("year"))
	if yearStr == "" {
		return sel, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return view.Selection{}, ErrBadRequest
	}
	sel.Year = year
	return sel, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
