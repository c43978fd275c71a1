package query

import (
	"sort"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
)

// Grid is a dense pivot: one row per row key, one cell per column, with
// absent combinations filled with zero rather than omitted. It is the
// shape both trend lines and heatmaps render from.
type Grid struct {
	Columns []string  `json:"columns"`
	Rows    []GridRow `json:"rows"`
}

// GridRow is one labeled row of a Grid.
type GridRow struct {
	Key   string `json:"key"`
	Cells []int  `json:"cells"`
}

// YearlyCount counts subset rows per (year, group key value). Rows are
// the distinct years present in the input, ascending; columns are the
// distinct key values observed, sorted. Every cell of that rectangle is
// present, zero-filled where a combination never occurs.
func YearlyCount(s Subset, key GroupKey) Grid {
	type cellKey struct {
		year  int
		value string
	}

	counts := make(map[cellKey]int)
	yearSet := make(map[int]struct{})
	valueSet := make(map[string]struct{})
	for i := 0; i < s.Len(); i++ {
		r := s.Row(i)
		v, ok := keyValue(r, key)
		if !ok {
			continue
		}
		yearSet[r.Year] = struct{}{}
		valueSet[v] = struct{}{}
		counts[cellKey{year: r.Year, value: v}]++
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	columns := make([]string, 0, len(valueSet))
	for v := range valueSet {
		columns = append(columns, v)
	}
	sort.Strings(columns)

	grid := Grid{Columns: columns, Rows: make([]GridRow, 0, len(years))}
	for _, y := range years {
		row := GridRow{Key: yearLabel(y), Cells: make([]int, len(columns))}
		for c, v := range columns {
			row.Cells[c] = counts[cellKey{year: y, value: v}]
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// medalColumns is the fixed column order of the sport pivot.
var medalColumns = []string{
	string(model.MedalGold),
	string(model.MedalSilver),
	string(model.MedalBronze),
}

// SportMedalPivot counts the medal-bearing rows of the subset per
// (sport, medal type). Rows are the sports with at least one medal in
// the input, sorted; the three medal columns are always present and
// zero-filled.
func SportMedalPivot(s Subset) Grid {
	medals := MedalRows(s)

	type cellKey struct {
		sport string
		medal model.Medal
	}

	counts := make(map[cellKey]int)
	sportSet := make(map[string]struct{})
	for i := 0; i < medals.Len(); i++ {
		r := medals.Row(i)
		sportSet[r.Sport] = struct{}{}
		counts[cellKey{sport: r.Sport, medal: r.Medal}]++
	}

	sports := make([]string, 0, len(sportSet))
	for sp := range sportSet {
		sports = append(sports, sp)
	}
	sort.Strings(sports)

	grid := Grid{Columns: medalColumns, Rows: make([]GridRow, 0, len(sports))}
	for _, sp := range sports {
		row := GridRow{Key: sp, Cells: make([]int, len(medalColumns))}
		for c, m := range medalColumns {
			row.Cells[c] = counts[cellKey{sport: sp, medal: model.Medal(m)}]
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}
