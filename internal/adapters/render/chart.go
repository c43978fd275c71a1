// Package render rasterizes chart configurations to PNG for clients
// that want images instead of drawing the JSON themselves.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Arun1457/olympics-dashboard/internal/domain/chartspec"
	"github.com/Arun1457/olympics-dashboard/pkg/metrics"
)

// Default raster dimensions. The pie is square so the circle fills it.
const (
	chartWidth  = 900
	chartHeight = 450
	pieSize     = 520
)

// PNG renders the chart configuration as a PNG image. A configuration
// with no data points fails with ErrEmptyChart so callers can answer
// with an empty response instead of a broken image.
func PNG(w io.Writer, cfg *chartspec.Config) error {
	start := time.Now()

	var err error
	switch cfg.ChartType {
	case chartspec.KindBar, chartspec.KindBarH, chartspec.KindHistogram:
		err = renderBars(w, cfg)
	case chartspec.KindLine:
		err = renderLines(w, cfg)
	case chartspec.KindPie:
		err = renderPie(w, cfg)
	case chartspec.KindHeatmap:
		err = renderStacked(w, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedChart, cfg.ChartType)
	}
	if err != nil {
		metrics.RecordChartRenderError()
		return err
	}

	metrics.RecordChartRenderLatency(cfg.ChartType, float64(time.Since(start).Milliseconds()))
	return nil
}

// renderBars draws single-series charts as vertical bars. The
// horizontal-bar and histogram kinds share this shape: orientation is a
// frontend nicety the raster does not reproduce.
func renderBars(w io.Writer, cfg *chartspec.Config) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	fill := colorAt(cfg.Colors, 0)
	bars := make([]chart.Value, 0, len(cfg.Series[0].Data))
	for _, p := range cfg.Series[0].Data {
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: fill, StrokeWidth: 0},
		})
	}

	ch := chart.BarChart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 32}},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth(len(bars)),
		Bars:       bars,
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render bars: %w", err)
	}
	return nil
}

// renderLines draws one continuous series per chart series over a
// shared categorical x axis.
func renderLines(w io.Writer, cfg *chartspec.Config) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	ticks := make([]chart.Tick, 0, len(cfg.Series[0].Data))
	for i, p := range cfg.Series[0].Data {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: p.Label})
	}
	if len(ticks) == 1 {
		// Single-point series get a duplicated point below; the tick
		// axis needs the same second x value or the renderer rejects
		// the zero x-range.
		ticks = append(ticks, chart.Tick{Value: 1, Label: ""})
	}

	series := make([]chart.Series, 0, len(cfg.Series))
	for i, s := range cfg.Series {
		xs := make([]float64, 0, len(s.Data))
		ys := make([]float64, 0, len(s.Data))
		for j, p := range s.Data {
			xs = append(xs, float64(j))
			ys = append(ys, p.Value)
		}
		if len(xs) == 1 {
			// A single point has no x range; duplicate it so the
			// renderer still produces a line.
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: colorAt(cfg.Colors, i),
				StrokeWidth: 2.2,
			},
		})
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 32}},
		Width:      chartWidth,
		Height:     chartHeight,
		XAxis:      chart.XAxis{Name: cfg.XAxis, Ticks: ticks},
		YAxis:      chart.YAxis{Name: cfg.YAxis},
		Series:     series,
	}
	if cfg.ShowLegend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render lines: %w", err)
	}
	return nil
}

func renderPie(w io.Writer, cfg *chartspec.Config) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	values := make([]chart.Value, 0, len(cfg.Series[0].Data))
	for i, p := range cfg.Series[0].Data {
		if p.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: colorAt(cfg.Colors, i)},
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	ch := chart.PieChart{
		Title:  cfg.Title,
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie: %w", err)
	}
	return nil
}

// renderStacked draws the sport-medal matrix as stacked bars, one bar
// per row key with one segment per series.
func renderStacked(w io.Writer, cfg *chartspec.Config) error {
	if len(cfg.Series) == 0 || len(cfg.Series[0].Data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	bars := make([]chart.StackedBar, 0, len(cfg.Series[0].Data))
	for i, p := range cfg.Series[0].Data {
		bar := chart.StackedBar{Name: p.Label}
		total := 0.0
		for s, ser := range cfg.Series {
			v := ser.Data[i].Value
			total += v
			bar.Values = append(bar.Values, chart.Value{
				Label: ser.Name,
				Value: v,
				Style: chart.Style{FillColor: colorAt(cfg.Colors, s), StrokeWidth: 0},
			})
		}
		// A zero-total bar cannot be scaled into segments.
		if total > 0 {
			bars = append(bars, bar)
		}
	}
	if len(bars) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyChart, cfg.Title)
	}

	ch := chart.StackedBarChart{
		Title:      cfg.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 64}},
		Width:      chartWidth,
		Height:     chartHeight,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis:      chart.Style{},
		Bars:       bars,
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render stacked bars: %w", err)
	}
	return nil
}

// barWidth keeps wide tallies readable and short rankings chunky.
func barWidth(n int) int {
	if n == 0 {
		return 1
	}
	w := (chartWidth - 100) / n
	switch {
	case w < 4:
		return 4
	case w > 60:
		return 60
	default:
		return w
	}
}

var defaultColor = drawing.Color{R: 0x4f, G: 0x46, B: 0xe5, A: 255}

// colorAt resolves the i-th palette entry, falling back to the default
// accent when the palette is short or malformed.
func colorAt(colors []string, i int) drawing.Color {
	if len(colors) == 0 {
		return defaultColor
	}
	hex := strings.TrimPrefix(colors[i%len(colors)], "#")
	if len(hex) != 6 {
		return defaultColor
	}
	return drawing.ColorFromHex(hex)
}
