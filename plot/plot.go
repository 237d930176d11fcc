// Package plot renders a gamut report onto CIE 1931 xy axes.
package plot

import (
	"fmt"
	"io"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/core"
	"github.com/kpfaulkner/gamutcheck/geometry"
	"github.com/kpfaulkner/gamutcheck/util"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DEFAULT_SIZE = 1000

	ellipseSamples = 90
	markerSize     = 0.004
)

var (
	referenceColor = drawing.Color{R: 128, G: 128, B: 128, A: 255}
	warmColor      = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	coldColor      = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	dashed         = []float64{6, 4}
	dotted         = []float64{2, 3}
)

type Options struct {
	Title string
	Size  int
}

// Render draws the reference and measured gamuts, white points and, when
// present, the tolerance ellipse as a PNG.
func Render(w io.Writer, report *core.GamutReport, opts Options) error {
	if opts.Size <= 0 {
		opts.Size = DEFAULT_SIZE
	}
	if opts.Title == "" {
		opts.Title = "Color Gamut Analysis on CIE 1931 Diagram"
	}

	series := []chart.Series{
		polygonSeries(fmt.Sprintf("%s (%.3f)", report.Reference.Label, report.Warm.ReferenceArea),
			report.ReferencePolygon, referenceColor, dashed),
		polygonSeries(fmt.Sprintf("Measured (%.3f)", report.Warm.MeasuredArea),
			report.Warm.MeasuredPolygon, warmColor, dashed),
	}
	if report.Cold != nil {
		series = append(series, polygonSeries(fmt.Sprintf("Measured Cold (%.3f)", report.Cold.MeasuredArea),
			report.Cold.MeasuredPolygon, coldColor, dashed))
	}

	series = append(series,
		markerSeries(fmt.Sprintf("Reference White (%.3f, %.3f)", report.Reference.White.X, report.Reference.White.Y),
			report.Reference.White, referenceColor),
		markerSeries(fmt.Sprintf("Measured White (%.3f, %.3f)", report.Warm.White.X, report.Warm.White.Y),
			report.Warm.White, swatchColor(report.Warm)),
	)
	if report.Cold != nil {
		series = append(series, markerSeries(fmt.Sprintf("Cold White (%.3f, %.3f)", report.Cold.White.X, report.Cold.White.Y),
			report.Cold.White, coldColor))
	}

	if report.Ellipse != nil {
		series = append(series, polygonSeries(fmt.Sprintf("Tolerance (±%.3f)", report.Ellipse.Tolerance),
			report.Ellipse.Outline(ellipseSamples), referenceColor, dotted))
	}

	graph := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Size,
		Height:     opts.Size,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  "x",
			Range: axisRange(series, 0, 0.8, xValues),
		},
		YAxis: chart.YAxis{
			Name:  "y",
			Range: axisRange(series, 0, 0.9, yValues),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}

func xValues(s chart.ContinuousSeries) []float64 { return s.XValues }
func yValues(s chart.ContinuousSeries) []float64 { return s.YValues }

// axisRange covers [lo, hi], widened to fit any series that strays past it.
func axisRange(series []chart.Series, lo float64, hi float64, values func(chart.ContinuousSeries) []float64) *chart.ContinuousRange {
	for _, s := range series {
		cs, ok := s.(chart.ContinuousSeries)
		if !ok {
			continue
		}
		v := values(cs)
		if len(v) == 0 {
			continue
		}
		lo = util.Min(lo, util.Min(v...))
		hi = util.Max(hi, util.Max(v...))
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func polygonSeries(name string, points []geometry.Point, col drawing.Color, dash []float64) chart.ContinuousSeries {
	closed := geometry.Close(points)
	xs := make([]float64, len(closed))
	ys := make([]float64, len(closed))
	for i, p := range closed {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor:     col,
			StrokeWidth:     2,
			StrokeDashArray: dash,
		},
		XValues: xs,
		YValues: ys,
	}
}

// markerSeries draws a small x at the point. Two strokes through the centre
// keep it a single connected path.
func markerSeries(name string, xy color.CIEXY, col drawing.Color) chart.ContinuousSeries {
	d := markerSize
	return chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: col,
			StrokeWidth: 2,
		},
		XValues: []float64{xy.X - d, xy.X + d, xy.X, xy.X - d, xy.X + d},
		YValues: []float64{xy.Y - d, xy.Y + d, xy.Y, xy.Y + d, xy.Y - d},
	}
}

// swatchColor shows the measured white in its own colour, darkened enough to
// be visible on the white background.
func swatchColor(res *core.AnalysisResult) drawing.Color {
	c := color.Swatch(res.White, res.Luminance, res.Luminance)
	h, s, l := c.Hsl()
	if l > 0.4 {
		l = 0.4
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
