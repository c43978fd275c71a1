// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// StatsProvider supplies the operational counters served on /stats.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves the dashboard's operational counters.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats handles GET /stats requests. The payload reports whether
// the table is loaded and, once it is, the row count, the
// unmatched-region count, the load timestamp and the view memo
// counters (size, hits, misses).
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.provider.GetStats())
}
