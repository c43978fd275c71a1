// Package export serializes computed tables to delimited text for user
// download. This is pure serialization of already-computed rows: UTF-8,
// comma-separated, header row, source column order.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
)

// WriteRecords writes records in ExportColumns order with a header row.
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.ExportColumns); err != nil {
		return fmt.Errorf("export header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.ExportRow()); err != nil {
			return fmt.Errorf("export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export flush: %w", err)
	}
	return nil
}

// tallyColumns is the header of the medal tally export.
var tallyColumns = []string{"region", "Gold", "Silver", "Bronze", "Total"}

// WriteTally writes a medal tally with a header row, preserving the
// tally's own ordering.
func WriteTally(w io.Writer, tally []query.TallyRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tallyColumns); err != nil {
		return fmt.Errorf("export header: %w", err)
	}
	for _, row := range tally {
		cells := []string{
			row.Region,
			strconv.Itoa(row.Gold),
			strconv.Itoa(row.Silver),
			strconv.Itoa(row.Bronze),
			strconv.Itoa(row.Total),
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export flush: %w", err)
	}
	return nil
}

// ReadRecords parses an export produced by WriteRecords back into rows.
// The header must match ExportColumns exactly; a download re-imported
// unchanged reproduces the original row set.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("export header: %w", err)
	}
	if len(header) != len(model.ExportColumns) {
		return nil, fmt.Errorf("export header: want %d columns, got %d", len(model.ExportColumns), len(header))
	}
	for i, name := range model.ExportColumns {
		if header[i] != name {
			return nil, fmt.Errorf("export header: column %d is %q, want %q", i, header[i], name)
		}
	}

	var records []model.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("export row: %w", err)
		}
		records = append(records, model.Record{
			ID:     atoiCell(row[0]),
			Name:   row[1],
			Sex:    row[2],
			Age:    atofCell(row[3]),
			Height: atofCell(row[4]),
			Weight: atofCell(row[5]),
			Team:   row[6],
			NOC:    row[7],
			Games:  row[8],
			Year:   atoiCell(row[9]),
			Season: row[10],
			City:   row[11],
			Sport:  row[12],
			Event:  row[13],
			Medal:  model.ParseMedal(row[14]),
			Region: row[15],
			Note:   row[16],
		})
	}
	return records, nil
}

func atoiCell(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atofCell(s string) float64 {
	if s == "NA" || s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
