// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
)

// SummaryDependencies defines the interface for headline metrics.
type SummaryDependencies interface {
	Summary(ctx context.Context, scope query.Scope) (query.SummaryMetrics, error)
}

// SummaryHandler handles summary metric requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /views/summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_summary"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	scope, err := parseScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	metrics, err := h.deps.Summary(r.Context(), scope)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
