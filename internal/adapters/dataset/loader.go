package dataset

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Arun1457/olympics-dashboard/internal/domain/model"
	"github.com/Arun1457/olympics-dashboard/pkg/metrics"
)

// Columns the loader requires in the athlete file. The lookup file
// additionally needs NOC and region.
var requiredAthleteColumns = []string{
	"ID", "Name", "Sex", "NOC", "Year", "Sport", "Event", "Medal",
}

type loader struct {
	metricsEnabled bool
	comma          rune
}

// Load reads the athlete events file and the NOC lookup file, left-joins
// them on the committee code, and returns an immutable Store. A missing
// or malformed file is fatal. An NOC with no region mapping is not; the
// row is kept with an empty region.
func Load(ctx context.Context, athletesPath, regionsPath string, opts ...Option) (*Store, error) {
	l := &loader{
		metricsEnabled: true,
		comma:          ',',
	}
	for _, opt := range opts {
		opt(l)
	}

	start := time.Now()

	athletes, err := l.readFrame(athletesPath)
	if err != nil {
		return nil, err
	}
	regions, err := l.readFrame(regionsPath)
	if err != nil {
		return nil, err
	}

	if err := requireColumns(athletes, athletesPath, requiredAthleteColumns); err != nil {
		return nil, err
	}
	if err := requireColumns(regions, regionsPath, []string{"NOC", "region"}); err != nil {
		return nil, err
	}

	joined := athletes.LeftJoin(regions, "NOC")
	if joined.Err != nil {
		return nil, fmt.Errorf("%w: joining %s with %s: %w", ErrLoad, athletesPath, regionsPath, joined.Err)
	}

	records, err := toRecords(joined)
	if err != nil {
		return nil, err
	}

	store := NewStore(records)

	if l.metricsEnabled {
		metrics.UpdateDatasetRows(store.Len())
		metrics.UpdateDatasetUnmatchedRegions(store.UnmatchedRegions())
		metrics.RecordDatasetLoadDuration(float64(time.Since(start).Milliseconds()))
	}

	return store, nil
}

// readFrame loads one CSV file as an all-string frame. Type detection is
// off: the converter owns parsing so "NA" cells never turn into NaN
// columns behind our back.
func (l *loader) readFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(l.comma),
	)
	if df.Err != nil {
		// gota reports a header-only (or fully empty) file as an
		// "empty DataFrame" load error before Nrow is usable; fold
		// that case into the no-rows sentinel.
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, ErrNoRows)
		}
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, df.Err)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %w", ErrLoad, path, ErrNoRows)
	}
	return df, nil
}

func requireColumns(df dataframe.DataFrame, path string, cols []string) error {
	have := make(map[string]bool, len(df.Names()))
	for _, n := range df.Names() {
		have[n] = true
	}
	for _, c := range cols {
		if !have[c] {
			return fmt.Errorf("%w: %s: %w: %s", ErrLoad, path, ErrBadColumn, c)
		}
	}
	return nil
}

// toRecords converts the joined frame into typed rows. Column positions
// come from the joined header, so gota's join column reordering (key
// first) does not matter here.
func toRecords(joined dataframe.DataFrame) ([]model.Record, error) {
	names := joined.Names()
	col := make(map[string]int, len(names))
	for i, n := range names {
		col[n] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return cleanCell(row[i])
	}

	raw := joined.Records()
	if len(raw) < 1 {
		return nil, fmt.Errorf("%w: %w", ErrLoad, ErrNoRows)
	}

	records := make([]model.Record, 0, len(raw)-1)
	for _, row := range raw[1:] {
		records = append(records, model.Record{
			ID:     parseIntCell(cell(row, "ID")),
			Name:   cell(row, "Name"),
			Sex:    cell(row, "Sex"),
			Age:    parseFloatCell(cell(row, "Age")),
			Height: parseFloatCell(cell(row, "Height")),
			Weight: parseFloatCell(cell(row, "Weight")),
			Team:   cell(row, "Team"),
			NOC:    cell(row, "NOC"),
			Games:  cell(row, "Games"),
			Year:   parseIntCell(cell(row, "Year")),
			Season: cell(row, "Season"),
			City:   cell(row, "City"),
			Sport:  cell(row, "Sport"),
			Event:  cell(row, "Event"),
			Medal:  model.ParseMedal(cell(row, "Medal")),
			Region: cell(row, "region"),
			Note:   cell(row, "notes"),
		})
	}
	return records, nil
}

// cleanCell maps the absent-value spellings of the source files and of
// gota's join fill to the empty string.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "NA", "NaN", "<nil>":
		return ""
	}
	return s
}

func parseIntCell(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parseFloatCell(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
