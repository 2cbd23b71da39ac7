// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/copa/internal/domain/view"
)

// FigureDependencies defines the interface for figure resolution.
type FigureDependencies interface {
	Figure(ctx context.Context, sel view.Selection) view.Figure
}

// FigureHandler handles figure requests.
type FigureHandler struct {
	deps FigureDependencies
}

// NewFigureHandler creates a new figure handler.
func NewFigureHandler(deps FigureDependencies) *FigureHandler {
	return &FigureHandler{deps: deps}
}

// HandleGetFigure handles GET /figure?country=&year= requests.
// An unselectable year yields an empty figure with HTTP 200; only a
// malformed year value is a client error.
func (h *FigureHandler) HandleGetFigure(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_figure"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Figure(r.Context(), sel))
}
