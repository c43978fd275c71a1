// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// ExportDependencies defines the interface for delimited downloads.
type ExportDependencies interface {
	ExportRecords(ctx context.Context, scope query.Scope, w io.Writer) (int, error)
	ExportTally(ctx context.Context, scope query.Scope, w io.Writer) (int, error)
}

// ExportHandler handles CSV download requests.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleRecordsCSV handles GET /export/records.csv requests, streaming
// the selected rows as a download.
func (h *ExportHandler) HandleRecordsCSV(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_records"
	h.handle(w, r, op, "olympics_records.csv", h.deps.ExportRecords)
}

// HandleTallyCSV handles GET /export/tally.csv requests, streaming the
// medal tally of the selection.
func (h *ExportHandler) HandleTallyCSV(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_tally"
	h.handle(w, r, op, "medal_tally.csv", h.deps.ExportTally)
}

func (h *ExportHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	op, filename string,
	write func(context.Context, query.Scope, io.Writer) (int, error),
) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	scope, err := parseScope(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := write(r.Context(), scope, w); err != nil {
		// The header is gone already; log instead of rewriting the status.
		logger.Get().Error(r.Context(), "export stream failed",
			logger.String("op", op),
			logger.Error(err),
		)
	}
}
