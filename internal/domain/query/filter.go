package query

// Filter returns the subset of the table selected by the scope.
//
// ScopeOverall bypasses every predicate and returns the full table.
// ScopeFiltered keeps rows whose year, region and sport are each a
// member of the corresponding selection set, and whose medal matches
// when a medal restriction is set. An empty years, countries or sports
// set yields an empty subset on its own: an unconstrained dimension is
// expressed by selecting its whole domain, not by leaving it empty.
//
// Rows with no resolved region can never match a country filter, which
// is how unmatched-join rows stay out of region-keyed views.
func Filter(t Table, scope Scope) Subset {
	if scope.Kind() == ScopeOverall {
		return All(t)
	}

	sel := scope.Selection()
	if len(sel.Years) == 0 || len(sel.Countries) == 0 || len(sel.Sports) == 0 {
		return Subset{table: t}
	}

	years := make(map[int]struct{}, len(sel.Years))
	for _, y := range sel.Years {
		years[y] = struct{}{}
	}
	countries := make(map[string]struct{}, len(sel.Countries))
	for _, c := range sel.Countries {
		countries[c] = struct{}{}
	}
	sports := make(map[string]struct{}, len(sel.Sports))
	for _, s := range sel.Sports {
		sports[s] = struct{}{}
	}

	rows := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		if _, ok := years[r.Year]; !ok {
			continue
		}
		if r.Region == "" {
			continue
		}
		if _, ok := countries[r.Region]; !ok {
			continue
		}
		if _, ok := sports[r.Sport]; !ok {
			continue
		}
		if sel.Medal.Present() && r.Medal != sel.Medal {
			continue
		}
		rows = append(rows, i)
	}
	return Subset{table: t, rows: rows}
}
