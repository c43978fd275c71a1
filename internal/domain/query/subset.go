package query

import "github.com/Arun1457/olympics-dashboard/internal/domain/model"

// Table is the read contract the engine needs from storage. The dataset
// store satisfies it; tests satisfy it with plain slices.
type Table interface {
	Len() int
	Row(i int) model.Record
}

// Rows adapts a record slice to the Table interface.
type Rows []model.Record

// Len returns the row count.
func (r Rows) Len() int { return len(r) }

// Row returns the record at index i.
func (r Rows) Row(i int) model.Record { return r[i] }

// Subset is an index view over a Table: no row is copied or altered,
// only selected. A Subset is itself a Table, so every aggregate can run
// on filtered and unfiltered input alike.
type Subset struct {
	table Table
	rows  []int
}

// All wraps a full table as a subset.
func All(t Table) Subset {
	rows := make([]int, t.Len())
	for i := range rows {
		rows[i] = i
	}
	return Subset{table: t, rows: rows}
}

// Len returns the number of selected rows.
func (s Subset) Len() int { return len(s.rows) }

// Row returns the i-th selected record.
func (s Subset) Row(i int) model.Record {
	return s.table.Row(s.rows[i])
}

// Records materializes the selected rows in order.
func (s Subset) Records() []model.Record {
	out := make([]model.Record, 0, len(s.rows))
	for _, idx := range s.rows {
		out = append(out, s.table.Row(idx))
	}
	return out
}

// narrow builds a sub-subset from positions within s.
func (s Subset) narrow(positions []int) Subset {
	rows := make([]int, 0, len(positions))
	for _, p := range positions {
		rows = append(rows, s.rows[p])
	}
	return Subset{table: s.table, rows: rows}
}

// MedalRows restricts a subset to its medal-bearing rows. Every
// medal-keyed aggregate starts here.
func MedalRows(s Subset) Subset {
	positions := make([]int, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		if s.Row(i).Medal.Present() {
			positions = append(positions, i)
		}
	}
	return s.narrow(positions)
}
