package main

import (
	"image/color"
	"strings"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/SalesViewer/src/sales"
)

func scenarioDataset(t *testing.T) *sales.Dataset {
	t.Helper()
	ds, err := sales.ParseCSV(strings.NewReader(scenarioCSV), "scenario.csv")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return ds
}

func TestRenderChart_AllKindsProduceSizedImages(t *testing.T) {
	ds := scenarioDataset(t)
	for _, k := range sales.ChartKinds {
		for _, cat := range []string{sales.AllCategories, "A", "nobody"} {
			img := renderChart(sales.BuildChart(ds, cat, k), 800, 440)
			if img == nil {
				t.Fatalf("%v/%s: nil image", k, cat)
			}
			if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 440 {
				t.Fatalf("%v/%s: size %dx%d", k, cat, b.Dx(), b.Dy())
			}
		}
	}
}

func TestRenderChart_EmptySpecKeepsCanvas(t *testing.T) {
	if img := renderChart(sales.ChartSpec{}, 800, 440); img != nil {
		t.Fatalf("expected nil image for empty spec")
	}
}

func TestRenderChart_SingleDate(t *testing.T) {
	ds, err := sales.ParseCSV(strings.NewReader("Date,Price,Quantity\n2024-05-01,3,3\n"), "one.csv")
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	for _, k := range sales.ChartKinds {
		if img := renderChart(sales.BuildChart(ds, sales.AllCategories, k), 700, 400); img == nil {
			t.Fatalf("%v: nil image", k)
		}
	}
}

func TestDailyChart_AxesAndDecorations(t *testing.T) {
	ds := scenarioDataset(t)
	ch := dailyChart(sales.BuildChart(ds, sales.AllCategories, sales.KindLine), 800)
	if ch.XAxis.Name != "Date" || ch.YAxis.Name != "Total (€)" {
		t.Fatalf("axis names %q / %q", ch.XAxis.Name, ch.YAxis.Name)
	}
	if ch.XAxis.TickStyle.TextRotationDegrees != 45 {
		t.Fatalf("date labels not rotated")
	}
	if ch.YAxis.GridMajorStyle.StrokeWidth == 0 {
		t.Fatalf("grid not enabled")
	}
	if len(ch.XAxis.Ticks) != 2 || ch.XAxis.Ticks[0].Label != "2024-01-01" || ch.XAxis.Ticks[1].Label != "2024-01-02" {
		t.Fatalf("ticks=%+v", ch.XAxis.Ticks)
	}
	yr := ch.YAxis.Range.(*chart.ContinuousRange)
	if yr.Min != 0 || yr.Max < 25 {
		t.Fatalf("y range=[%v,%v]", yr.Min, yr.Max)
	}
	s := ch.Series[0].(chart.ContinuousSeries)
	if len(s.YValues) != 2 || s.YValues[0] != 25 || s.YValues[1] != 20 {
		t.Fatalf("line values=%v", s.YValues)
	}
}

func TestDailyChart_BarOutline(t *testing.T) {
	ds := scenarioDataset(t)
	ch := dailyChart(sales.BuildChart(ds, sales.AllCategories, sales.KindBar), 800)
	s := ch.Series[0].(chart.ContinuousSeries)
	if len(s.XValues) != 8 || len(s.YValues) != 8 {
		t.Fatalf("bar path has %d/%d points", len(s.XValues), len(s.YValues))
	}
	wantY := []float64{0, 25, 25, 0, 0, 20, 20, 0}
	for i := range wantY {
		if s.YValues[i] != wantY[i] {
			t.Fatalf("bar y=%v want %v", s.YValues, wantY)
		}
	}
	if s.Style.FillColor != barFillColor {
		t.Fatalf("bar fill=%v", s.Style.FillColor)
	}
}

func TestDailyChart_ThinsCrowdedLabels(t *testing.T) {
	daily := make([]sales.DailyTotal, 120)
	for i := range daily {
		daily[i] = sales.DailyTotal{Date: "d", Total: float64(i)}
	}
	spec := sales.ChartSpec{Kind: sales.KindLine, Title: "t", Daily: daily, Rows: 120}
	ch := dailyChart(spec, 640)
	labelled := 0
	for _, tk := range ch.XAxis.Ticks {
		if tk.Label != "" {
			labelled++
		}
	}
	if labelled == 0 || labelled > 640/28 {
		t.Fatalf("labelled ticks=%d", labelled)
	}
}

func TestHistogramChart_Axes(t *testing.T) {
	ds := scenarioDataset(t)
	ch := histogramChart(sales.BuildChart(ds, sales.AllCategories, sales.KindHistogram), 800)
	if ch.XAxis.Name != "Single-sale Total (€)" || ch.YAxis.Name != "Frequency" {
		t.Fatalf("axis names %q / %q", ch.XAxis.Name, ch.YAxis.Name)
	}
	if len(ch.XAxis.Ticks) != sales.HistogramBins+1 {
		t.Fatalf("edge ticks=%d", len(ch.XAxis.Ticks))
	}
	if ch.XAxis.TickStyle.TextRotationDegrees != 0 || ch.YAxis.GridMajorStyle.StrokeWidth != 0 {
		t.Fatalf("histogram should not rotate labels or draw a grid")
	}
	for _, tk := range ch.YAxis.Ticks {
		if tk.Value != float64(int(tk.Value)) {
			t.Fatalf("fractional frequency tick %v", tk.Value)
		}
	}
}

func TestDrawHint_ChangesPixels(t *testing.T) {
	base := blank(300, 100)
	out := drawHint(base, emptyHintText)
	if out.Bounds() != base.Bounds() {
		t.Fatalf("bounds changed")
	}
	changed := false
	for y := 0; y < 100 && !changed; y++ {
		for x := 0; x < 300; x++ {
			if out.At(x, y) != base.At(x, y) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Fatalf("hint not drawn")
	}
	if drawHint(base, "  ") != base {
		t.Fatalf("blank hint should return the input image")
	}
	if c := color.RGBAModel.Convert(blank(1, 1).At(0, 0)).(color.RGBA); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("blank color=%v", c)
	}
}
