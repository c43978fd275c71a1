// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/Arun1457/olympics-dashboard/internal/domain/types"
)

// DomainsDependencies defines the interface for domain listing.
type DomainsDependencies interface {
	Domains(ctx context.Context) (types.Domains, error)
}

// DomainsHandler handles filter domain requests.
type DomainsHandler struct {
	deps DomainsDependencies
}

// NewDomainsHandler creates a new domains handler.
func NewDomainsHandler(deps DomainsDependencies) *DomainsHandler {
	return &DomainsHandler{deps: deps}
}

// HandleGetDomains handles GET /domains requests.
func (h *DomainsHandler) HandleGetDomains(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_domains"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	domains, err := h.deps.Domains(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, domains)
}
