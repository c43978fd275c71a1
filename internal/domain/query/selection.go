// Package query implements the aggregation engine over the joined
// athlete table. Every operation is a pure function of a row set: the
// table is never mutated, empty input degrades to empty output, and no
// operation errors on a selection that matches nothing.
package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
)

// Selection is the ephemeral filter tuple a user picks in the sidebar.
// Values are expected to come from the table's own observed domains;
// anything else simply matches no rows. A zero Medal means "All".
type Selection struct {
	Years     []int
	Countries []string
	Sports    []string
	Medal     model.Medal
}

// ScopeKind tags the two ways a view can be computed.
type ScopeKind int

// Scope kinds.
const (
	// ScopeOverall bypasses every predicate and uses the full table.
	ScopeOverall ScopeKind = iota
	// ScopeFiltered applies the selection predicates.
	ScopeFiltered
)

// Scope is the tagged "overall vs. filtered" variant. Handlers build
// one per request; the engine and the memo cache consume it.
type Scope struct {
	kind ScopeKind
	sel  Selection
}

// OverallScope returns a scope covering the full table.
func OverallScope() Scope {
	return Scope{kind: ScopeOverall}
}

// FilteredScope returns a scope restricted to the given selection.
func FilteredScope(sel Selection) Scope {
	return Scope{kind: ScopeFiltered, sel: sel}
}

// Kind returns the scope tag.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// Selection returns the filter tuple. Meaningless for ScopeOverall.
func (s Scope) Selection() Selection {
	return s.sel
}

// Key returns a canonical string for the scope, used as a memoization
// key. Set order does not matter: values are sorted before joining.
func (s Scope) Key() string {
	if s.kind == ScopeOverall {
		return "overall"
	}

	years := make([]string, 0, len(s.sel.Years))
	for _, y := range s.sel.Years {
		years = append(years, strconv.Itoa(y))
	}
	sort.Strings(years)

	countries := append([]string(nil), s.sel.Countries...)
	sort.Strings(countries)
	sports := append([]string(nil), s.sel.Sports...)
	sort.Strings(sports)

	var b strings.Builder
	b.WriteString("y=")
	b.WriteString(strings.Join(years, ","))
	b.WriteString("|c=")
	b.WriteString(strings.Join(countries, ","))
	b.WriteString("|s=")
	b.WriteString(strings.Join(sports, ","))
	b.WriteString("|m=")
	b.WriteString(s.sel.Medal.String())
	return b.String()
}
