// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/Arun1457/olympics-dashboard/internal/domain/types"
)

// RecordsDependencies defines the interface for raw row listings.
type RecordsDependencies interface {
	Records(ctx context.Context, scope query.Scope, offset, limit int) (types.RecordsPage, error)
}

// RecordsHandler handles raw record listings.
type RecordsHandler struct {
	deps RecordsDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordsDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetRecords handles GET /records?offset=N&limit=N requests plus
// the shared filter parameters.
func (h *RecordsHandler) HandleGetRecords(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_records"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	scope, err := parseScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	offset, err := intParam(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}
	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	page, err := h.deps.Records(r.Context(), scope, offset, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// intParam parses a non-negative integer query parameter, using the
// fallback when absent.
func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, WrapKind(name, ErrBadRequest, err)
	}
	if n < 0 {
		return 0, NewKind(name, ErrBadRequest)
	}
	return n, nil
}
