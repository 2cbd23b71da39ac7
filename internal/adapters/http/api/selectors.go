// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// SelectorsDependencies defines the interface for dropdown population.
type SelectorsDependencies interface {
	SelectorOptions(ctx context.Context) (countries []string, years []int)
}

// SelectorsHandler handles dropdown option requests.
type SelectorsHandler struct {
	deps SelectorsDependencies
}

// NewSelectorsHandler creates a new selectors handler.
func NewSelectorsHandler(deps SelectorsDependencies) *SelectorsHandler {
	return &SelectorsHandler{deps: deps}
}

// optionsResponse lists the values the two dropdowns may take. The UI
// builds its option lists from this, so invalid selections cannot be made.
type optionsResponse struct {
	Countries []string `json:"countries"`
	Years     []int    `json:"years"`
}

// HandleGetOptions handles GET /options requests.
func (h *SelectorsHandler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	countries, years := h.deps.SelectorOptions(r.Context())
	writeJSON(w, http.StatusOK, optionsResponse{Countries: countries, Years: years})
}
