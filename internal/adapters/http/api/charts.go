// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/Arun1457/olympics-dashboard/internal/adapters/render"
	"github.com/Arun1457/olympics-dashboard/internal/domain/chartspec"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
)

// ChartsHandler handles chart requests in both representations: the
// JSON drawing config the embedded dashboard consumes and a server-side
// PNG raster.
type ChartsHandler struct {
	deps ViewDependencies
}

// NewChartsHandler creates a new charts handler.
func NewChartsHandler(deps ViewDependencies) *ChartsHandler {
	return &ChartsHandler{deps: deps}
}

// HandleGetChart handles GET /charts/{kind}.json and
// GET /charts/{kind}.png requests.
func (h *ChartsHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_chart"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/charts/")
	var asPNG bool
	switch {
	case strings.HasSuffix(raw, ".json"):
		raw = strings.TrimSuffix(raw, ".json")
	case strings.HasSuffix(raw, ".png"):
		raw = strings.TrimSuffix(raw, ".png")
		asPNG = true
	default:
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
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	cfg, err := chartspec.Build(view)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	if !asPNG {
		writeJSON(w, http.StatusOK, cfg)
		return
	}

	// Render to a buffer first so an error can still become a clean
	// status instead of a half-written image.
	var buf bytes.Buffer
	if err := render.PNG(&buf, cfg); err != nil {
		if errors.Is(err, render.ErrEmptyChart) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
