// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/copa/internal/domain/view"
)

// ControlsDependencies defines the interface for the selector interlock.
type ControlsDependencies interface {
	Controls(ctx context.Context, sel view.Selection) view.Controls
}

// ControlsHandler handles selector interlock requests.
type ControlsHandler struct {
	deps ControlsDependencies
}

// NewControlsHandler creates a new controls handler.
func NewControlsHandler(deps ControlsDependencies) *ControlsHandler {
	return &ControlsHandler{deps: deps}
}

// HandleGetControls handles GET /controls?country=&year= requests.
func (h *ControlsHandler) HandleGetControls(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_controls"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Controls(r.Context(), sel))
}
