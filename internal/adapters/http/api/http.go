// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
	"github.com/Arun1457/olympics-dashboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Domains exposes the observed filter domains of the loaded table.
	Domains(ctx context.Context) (types.Domains, error)

	// Records returns one page of rows selected by the scope.
	Records(ctx context.Context, scope query.Scope, offset, limit int) (types.RecordsPage, error)

	// View computes one of the fixed aggregate views over the scope.
	View(ctx context.Context, scope query.Scope, kind query.ViewKind, opts query.Options) (query.View, error)

	// Summary computes the headline metrics of the scope.
	Summary(ctx context.Context, scope query.Scope) (query.SummaryMetrics, error)

	// Export operations stream delimited downloads of the scope.
	ExportRecords(ctx context.Context, scope query.Scope, w io.Writer) (int, error)
	ExportTally(ctx context.Context, scope query.Scope, w io.Writer) (int, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	domainsHandler *DomainsHandler
	recordsHandler *RecordsHandler
	viewsHandler   *ViewsHandler
	summaryHandler *SummaryHandler
	chartsHandler  *ChartsHandler
	exportHandler  *ExportHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		domainsHandler: NewDomainsHandler(deps),
		recordsHandler: NewRecordsHandler(deps),
		viewsHandler:   NewViewsHandler(deps),
		summaryHandler: NewSummaryHandler(deps),
		chartsHandler:  NewChartsHandler(deps),
		exportHandler:  NewExportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/domains", MetricsMiddleware(s.domainsHandler.HandleGetDomains, "domains"))
	mux.HandleFunc("/records", MetricsMiddleware(s.recordsHandler.HandleGetRecords, "records"))
	mux.HandleFunc("/views/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/views/", MetricsMiddleware(s.viewsHandler.HandleGetView, "views"))
	mux.HandleFunc("/charts/", MetricsMiddleware(s.chartsHandler.HandleGetChart, "charts"))
	mux.HandleFunc("/export/records.csv", MetricsMiddleware(s.exportHandler.HandleRecordsCSV, "export_records"))
	mux.HandleFunc("/export/tally.csv", MetricsMiddleware(s.exportHandler.HandleTallyCSV, "export_tally"))
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

// parseScope builds the request scope from query parameters.
//
// overall=true forces the full table. Otherwise the years, countries
// and sports parameters (repeatable; years also accept comma lists)
// form a filtered selection, optionally restricted by medal. A request
// naming no filter parameter at all means the overall table, which is
// what the dashboard shows before any filter is picked. A parameter
// that is present but empty is an empty set and selects nothing.
func parseScope(r *http.Request) (query.Scope, error) {
	q := r.URL.Query()

	if raw := q.Get("overall"); raw != "" {
		overall, err := strconv.ParseBool(raw)
		if err != nil {
			return query.Scope{}, fmt.Errorf("overall: %w", ErrBadRequest)
		}
		if overall {
			return query.OverallScope(), nil
		}
	}

	_, hasYears := q["years"]
	_, hasCountries := q["countries"]
	_, hasSports := q["sports"]
	medalRaw := q.Get("medal")
	if !hasYears && !hasCountries && !hasSports && medalRaw == "" {
		return query.OverallScope(), nil
	}

	sel := query.Selection{
		Countries: cleanValues(q["countries"]),
		Sports:    cleanValues(q["sports"]),
	}

	years, err := parseYears(q["years"])
	if err != nil {
		return query.Scope{}, err
	}
	sel.Years = years

	if medalRaw != "" && medalRaw != "All" {
		medal := model.ParseMedal(medalRaw)
		if !medal.Present() {
			return query.Scope{}, fmt.Errorf("medal %q: %w", medalRaw, ErrBadRequest)
		}
		sel.Medal = medal
	}

	return query.FilteredScope(sel), nil
}

// parseYears accepts repeated year parameters, each a single year or a
// comma list. Years never contain commas, unlike region names.
func parseYears(values []string) ([]int, error) {
	var years []int
	for _, v := range values {
		for _, part := range splitComma(v) {
			y, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("year %q: %w", part, ErrBadRequest)
			}
			years = append(years, y)
		}
	}
	return years, nil
}

func splitComma(s string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				parts = append(parts, part)
			}
			start = i + 1
		}
	}
	return parts
}

func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
