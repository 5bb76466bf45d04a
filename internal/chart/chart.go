package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type Kind string

const (
	KindTrend            Kind = "trend"
	KindGrowth           Kind = "growth"
	KindCFR              Kind = "cfr"
	KindRecovery         Kind = "recovery"
	KindActive           Kind = "active"
	KindRegions          Kind = "regions"
	KindCompareRates     Kind = "compare-rates"
	KindCompareConfirmed Kind = "compare-confirmed"
	KindForecast         Kind = "forecast"
)

var Kinds = []Kind{
	KindTrend, KindGrowth, KindCFR, KindRecovery, KindActive,
	KindRegions, KindCompareRates, KindCompareConfirmed, KindForecast,
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidChartKind, s)
}

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidFormat, s)
}

func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

var (
	ColorConfirmed = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorDeaths    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	ColorRecovered = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	ColorGrowth    = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	ColorActive    = color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}
	ColorForecast  = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
)

const (
	width  = 10 * vg.Inch
	height = 5 * vg.Inch
)

type Series struct {
	Name   string
	Color  color.Color
	Dashed bool
	Dates  []time.Time
	Values []float64
}

// Lines is a time series chart with one line per series.
type Lines struct {
	Title  string
	YLabel string
	Series []Series
}

type BarGroup struct {
	Name   string
	Color  color.Color
	Values []float64
}

// Bars is a grouped bar chart: one bar per group inside each category.
type Bars struct {
	Title      string
	YLabel     string
	Categories []string
	Groups     []BarGroup
}

func RenderLines(c Lines, format Format) ([]byte, error) {
	p := newPlot(c.Title, c.YLabel)
	p.X.Label.Text = "Date"
	p.X.Tick.Marker = plot.TimeTicks{Format: domain.DateLayout}

	drawn := 0
	for _, s := range c.Series {
		if len(s.Dates) != len(s.Values) {
			return nil, fmt.Errorf("series %q: %d dates for %d values", s.Name, len(s.Dates), len(s.Values))
		}
		if len(s.Dates) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Dates))
		for i, d := range s.Dates {
			xys[i].X = float64(d.Unix())
			xys[i].Y = s.Values[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = s.Color
		line.Width = vg.Points(2)
		if s.Dashed {
			line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
		drawn++
	}
	if drawn == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptySelection, c.Title)
	}
	return encode(p, format)
}

func RenderBars(c Bars, format Format) ([]byte, error) {
	if len(c.Categories) == 0 || len(c.Groups) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptySelection, c.Title)
	}
	p := newPlot(c.Title, c.YLabel)

	barWidth := vg.Points(60 / float64(len(c.Groups)))
	for i, g := range c.Groups {
		if len(g.Values) != len(c.Categories) {
			return nil, fmt.Errorf("group %q: %d values for %d categories", g.Name, len(g.Values), len(c.Categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(g.Values), barWidth)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		bars.Color = g.Color
		bars.LineStyle.Width = vg.Length(0)
		// centre the groups around each category tick
		bars.Offset = barWidth * vg.Length(2*i-len(c.Groups)+1) / 2
		p.Add(bars)
		p.Legend.Add(g.Name, bars)
	}
	p.NominalX(c.Categories...)
	return encode(p, format)
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func encode(p *plot.Plot, format Format) ([]byte, error) {
	w, err := p.WriterTo(width, height, string(format))
	if err != nil {
		return nil, fmt.Errorf("chart writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("chart encode: %w", err)
	}
	return buf.Bytes(), nil
}
