// Package chartspec turns aggregate views into render-ready chart
// configurations. The engine's contract ends at producing these; the
// frontend (or the PNG renderer) treats them as opaque drawing input.
package chartspec

import (
	"fmt"

	"github.com/Arun1457/olympics-dashboard/internal/domain/query"
)

// Chart kinds understood by the rendering sinks.
const (
	KindBar       = "bar"
	KindBarH      = "bar-horizontal"
	KindLine      = "line"
	KindPie       = "pie"
	KindHistogram = "histogram"
	KindHeatmap   = "heatmap"
)

// Config describes one chart: type, axes and series. It matches what
// the embedded dashboard draws and what the PNG renderer consumes.
type Config struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
}

// Series is one data series of a chart.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single labeled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// palette cycles across series.
var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Build maps an aggregate view onto its chart shape: tally and top
// rankings become bars, trends become lines, the gender split becomes a
// pie, ages a histogram and the sport pivot a heatmap matrix.
func Build(v query.View) (*Config, error) {
	switch v.Kind {
	case query.ViewMedalTally:
		return tallyChart(v.Tally), nil
	case query.ViewTopAthletes:
		return topChart(v.Top, "Top Athletes by Medals", KindBar, "Athlete"), nil
	case query.ViewTopSports:
		return topChart(v.Top, "Top Sports by Medals", KindBarH, "Sport"), nil
	case query.ViewParticipation:
		return gridChart(v.Grid, "Participation by Gender Over the Years", KindLine, "Year", "Athletes"), nil
	case query.ViewMedalTrend:
		return gridChart(v.Grid, "Medals Over the Years", KindLine, "Year", "Medals"), nil
	case query.ViewSportPivot:
		return gridChart(v.Grid, "Medal Distribution Across Sports", KindHeatmap, "Medal", "Sport"), nil
	case query.ViewGenderSplit:
		return splitChart(v.Split), nil
	case query.ViewAgeHistogram:
		return histogramChart(v.Buckets), nil
	default:
		return nil, fmt.Errorf("%w: %q", query.ErrUnknownView, v.Kind)
	}
}

func tallyChart(tally []query.TallyRow) *Config {
	points := make([]Point, 0, len(tally))
	for _, row := range tally {
		points = append(points, Point{Label: row.Region, Value: float64(row.Total)})
	}
	return &Config{
		ChartType: KindBar,
		Title:     "Countries by Total Medals",
		XAxis:     "Country",
		YAxis:     "Total Medals",
		Series:    []Series{{Name: "Total", Data: points}},
		Colors:    assignColors(1),
	}
}

func topChart(top []query.TopEntry, title, kind, xAxis string) *Config {
	points := make([]Point, 0, len(top))
	for _, e := range top {
		points = append(points, Point{Label: e.Key, Value: float64(e.Medals)})
	}
	return &Config{
		ChartType: kind,
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Medals",
		Series:    []Series{{Name: "Medals", Data: points}},
		Colors:    assignColors(1),
	}
}

func gridChart(grid *query.Grid, title, kind, xAxis, yAxis string) *Config {
	if grid == nil {
		grid = &query.Grid{}
	}
	series := make([]Series, 0, len(grid.Columns))
	for c, name := range grid.Columns {
		points := make([]Point, 0, len(grid.Rows))
		for _, row := range grid.Rows {
			points = append(points, Point{Label: row.Key, Value: float64(row.Cells[c])})
		}
		series = append(series, Series{Name: name, Data: points})
	}
	return &Config{
		ChartType:  kind,
		Title:      title,
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
		Colors:     assignColors(len(series)),
		ShowLegend: len(series) > 1,
	}
}

func splitChart(split []query.SexCount) *Config {
	points := make([]Point, 0, len(split))
	for _, s := range split {
		points = append(points, Point{Label: s.Sex, Value: float64(s.Medals)})
	}
	return &Config{
		ChartType:  KindPie,
		Title:      "Medal Ratio by Gender",
		Series:     []Series{{Name: "Medals", Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
	}
}

func histogramChart(buckets []query.AgeBucket) *Config {
	points := make([]Point, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, Point{Label: b.Label, Value: float64(b.Count)})
	}
	return &Config{
		ChartType: KindHistogram,
		Title:     "Age Distribution of Medalists",
		XAxis:     "Age",
		YAxis:     "Medalists",
		Series:    []Series{{Name: "Medalists", Data: points}},
		Colors:    assignColors(1),
	}
}

func assignColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
