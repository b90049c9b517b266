package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/SalesViewer/cmd/salesviewer/uihelpers"
	"github.com/iafilius/SalesViewer/src/sales"
)

var (
	lineColor     = drawing.ColorFromHex("008000") // green
	barFillColor  = drawing.ColorFromHex("87ceeb") // skyblue
	histFillColor = drawing.ColorFromHex("ffa500") // orange
	edgeColor     = drawing.ColorBlack
	gridColor     = drawing.Color{R: 0, G: 0, B: 0, A: 40}
)

const (
	emptyHintText  = "No rows match the current selection"
	barHalfWidth   = 0.4
	valueAxisTicks = 6
)

// renderChart draws spec at w×h pixels. It returns nil for an empty spec
// (no dataset) so callers keep whatever the canvas showed before.
func renderChart(spec sales.ChartSpec, w, h int) image.Image {
	if spec.Empty() {
		return nil
	}
	var ch chart.Chart
	switch spec.Kind {
	case sales.KindHistogram:
		ch = histogramChart(spec, w)
	default:
		ch = dailyChart(spec, w)
	}
	ch.Title = spec.Title
	ch.Width = w
	ch.Height = h

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		// Keep the UI responsive with a blank image rather than a stale chart.
		sales.Errorf("%s chart render error: %v; showing blank fallback", spec.Kind, err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		sales.Errorf("%s chart decode error: %v; showing blank fallback", spec.Kind, err)
		return blank(w, h)
	}
	if spec.Rows == 0 {
		return drawHint(img, emptyHintText)
	}
	return img
}

// dailyChart plots one point (Line) or one bar (Bar) per date. Dates sit at
// x = 1..n with their text as tick labels.
func dailyChart(spec sales.ChartSpec, w int) chart.Chart {
	n := len(spec.Daily)
	xs := make([]float64, n)
	ys := make([]float64, n)
	minY, maxY := 0.0, 0.0
	for i, d := range spec.Daily {
		xs[i] = float64(i + 1)
		ys[i] = d.Total
		minY = math.Min(minY, d.Total)
		maxY = math.Max(maxY, d.Total)
	}

	stride := uihelpers.LabelStride(n, uihelpers.MaxDateLabels(w))
	ticks := make([]chart.Tick, 0, n+2)
	for i, d := range spec.Daily {
		label := ""
		if i%stride == 0 {
			label = d.Date
		}
		ticks = append(ticks, chart.Tick{Value: xs[i], Label: label})
	}
	minX, maxX := 0.5, float64(n)+0.5
	if n == 0 {
		maxX = 1.5
	}
	if len(ticks) < 2 {
		// go-chart wants at least two ticks to lay out the axis.
		ticks = append([]chart.Tick{{Value: minX, Label: ""}}, ticks...)
		ticks = append(ticks, chart.Tick{Value: maxX, Label: ""})
	}

	var series chart.Series
	switch {
	case n == 0:
		series = placeholderSeries(minX, maxX)
	case spec.Kind == sales.KindBar:
		bx, by := barPath(xs, ys)
		series = chart.ContinuousSeries{
			Name:    spec.YLabel,
			XValues: bx,
			YValues: by,
			Style:   chart.Style{StrokeColor: edgeColor, StrokeWidth: 1, FillColor: barFillColor},
		}
	default:
		series = chart.ContinuousSeries{
			Name:    spec.YLabel,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: lineColor, StrokeWidth: 2, DotColor: lineColor, DotWidth: 4},
		}
	}

	xAxis := chart.XAxis{
		Name:  spec.XLabel,
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: minX, Max: maxX},
	}
	padBottom := 28
	if spec.RotateXLabels {
		xAxis.TickStyle = chart.Style{TextRotationDegrees: 45}
		padBottom = 24 + longestLabel(spec.Daily)*6
	}
	yAxis := valueAxis(spec.YLabel, uihelpers.AxisTicks(minY, maxY, valueAxisTicks))
	if spec.Grid {
		grid := chart.Style{StrokeColor: gridColor, StrokeWidth: 1}
		xAxis.GridMajorStyle = grid
		yAxis.GridMajorStyle = grid
	}
	return chart.Chart{
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     []chart.Series{series},
	}
}

// histogramChart draws adjacent bars over the bin edges.
func histogramChart(spec sales.ChartSpec, w int) chart.Chart {
	bins := spec.Bins
	if len(bins) == 0 {
		bins = sales.Histogram(nil, sales.HistogramBins)
	}
	var xs, ys []float64
	maxCount := 0
	for _, b := range bins {
		xs = append(xs, b.Lo, b.Lo, b.Hi, b.Hi)
		c := float64(b.Count)
		ys = append(ys, 0, c, c, 0)
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	edges := len(bins) + 1
	stride := uihelpers.LabelStride(edges, w/70)
	ticks := make([]chart.Tick, 0, edges)
	for i := 0; i < edges; i++ {
		var v float64
		if i < len(bins) {
			v = bins[i].Lo
		} else {
			v = bins[len(bins)-1].Hi
		}
		label := ""
		if i%stride == 0 || i == edges-1 {
			label = uihelpers.FormatNumericTick(v)
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: label})
	}
	yTicks := uihelpers.IntegerTicks(maxCount, valueAxisTicks)
	return chart.Chart{
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: bins[0].Lo, Max: bins[len(bins)-1].Hi},
		},
		YAxis: valueAxis(spec.YLabel, yTicks),
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    spec.YLabel,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: edgeColor, StrokeWidth: 1, FillColor: histFillColor},
		}},
	}
}

func valueAxis(name string, ticks []float64) chart.YAxis {
	ct := make([]chart.Tick, len(ticks))
	for i, v := range ticks {
		ct[i] = chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)}
	}
	return chart.YAxis{
		Name:  name,
		Ticks: ct,
		Range: &chart.ContinuousRange{Min: ticks[0], Max: ticks[len(ticks)-1]},
	}
}

// barPath turns (x, y) points into one outline of rectangles standing on the
// zero line; go-chart fills the area below it.
func barPath(xs, ys []float64) ([]float64, []float64) {
	bx := make([]float64, 0, 4*len(xs))
	by := make([]float64, 0, 4*len(xs))
	for i, x := range xs {
		bx = append(bx, x-barHalfWidth, x-barHalfWidth, x+barHalfWidth, x+barHalfWidth)
		by = append(by, 0, ys[i], ys[i], 0)
	}
	return bx, by
}

// placeholderSeries is an invisible flat line so an empty selection still
// renders its axes.
func placeholderSeries(minX, maxX float64) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{minX, maxX},
		YValues: []float64{0, 0},
		Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
	}
}

func longestLabel(daily []sales.DailyTotal) int {
	n := 0
	for _, d := range daily {
		if l := len([]rune(d.Date)); l > n {
			n = l
		}
	}
	if n > 20 {
		n = 20
	}
	return n
}

// drawHint draws a small hint string centred on the provided image.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.White), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	y := b.Min.Y + b.Dy()/2
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
