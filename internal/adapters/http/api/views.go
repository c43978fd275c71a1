// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
)

// ViewDependencies defines the interface for aggregate view requests.
type ViewDependencies interface {
	View(ctx context.Context, scope query.Scope, kind query.ViewKind, opts query.Options) (query.View, error)
}

// ViewsHandler handles aggregate view requests.
type ViewsHandler struct {
	deps ViewDependencies
}

// NewViewsHandler creates a new views handler.
func NewViewsHandler(deps ViewDependencies) *ViewsHandler {
	return &ViewsHandler{deps: deps}
}

// HandleGetView handles GET /views/{kind} requests. The kind names one
// of the fixed aggregate views; n and bins tune ranking length and
// histogram bucket count.
func (h *ViewsHandler) HandleGetView(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_view"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/views/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrBadRequest))
		return
	}
	kind, err := query.ParseViewKind(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	}

	scope, err := parseScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	opts, err := parseViewOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	view, err := h.deps.View(r.Context(), scope, kind, opts)
	if err != nil {
		if errors.Is(err, query.ErrUnknownView) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// parseViewOptions reads the shared presentation parameters.
func parseViewOptions(r *http.Request) (query.Options, error) {
	n, err := intParam(r, "n", 0)
	if err != nil {
		return query.Options{}, err
	}
	bins, err := intParam(r, "bins", 0)
	if err != nil {
		return query.Options{}, err
	}
	return query.Options{TopN: n, Bins: bins}, nil
}
