package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		in    int
		wantW int
	}{
		{100, 640},
		{639, 640},
		{800, 800},
		{1600, 1600},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.in)
		if w != c.wantW {
			t.Fatalf("input %d => width %d want %d", c.in, w, c.wantW)
		}
		if h < 320 || h > 600 {
			t.Fatalf("height clamp violated for input %d => h=%d", c.in, h)
		}
	}
}

func TestBuildNumericTicksAndFormat(t *testing.T) {
	cases := []struct {
		min, max float64
		n        int
	}{
		{0, 100, 6},
		{0, 1, 5},
		{5, 5.2, 4},
		{-10, 10, 7},
	}
	for _, c := range cases {
		vals := BuildNumericTicks(c.min, c.max, c.n)
		if len(vals) < 2 {
			t.Fatalf("expected >=2 ticks for %#v got %v", c, vals)
		}
		if vals[0] > c.min && math.Abs(vals[0]-c.min) > 1e-6 {
			t.Fatalf("first tick %v should not exceed min %v", vals[0], c.min)
		}
		if last := vals[len(vals)-1]; last < c.max && math.Abs(last-c.max) > 1e-6 {
			t.Fatalf("last tick %v should not be below max %v (vals=%v)", last, c.max, vals)
		}
	}

	if got := FormatNumericTick(0); got != "0" {
		t.Fatalf("format 0 => %q", got)
	}
	if got := FormatNumericTick(123.4); got != "123" {
		t.Fatalf("format 123.4 => %q want 123", got)
	}
	if got := FormatNumericTick(12.34); got != "12.3" {
		t.Fatalf("format 12.34 => %q want 12.3", got)
	}
	if got := FormatNumericTick(1.234); got != "1.23" {
		t.Fatalf("format 1.234 => %q want 1.23", got)
	}
	if got := FormatNumericTick(0.001234); got != "0.0012" {
		t.Fatalf("format 0.001234 => %q want 0.0012", got)
	}
}

func TestAxisTicks(t *testing.T) {
	ticks := AxisTicks(5, 25, 6)
	if ticks[0] != 0 {
		t.Fatalf("axis must start at 0: %v", ticks)
	}
	if last := ticks[len(ticks)-1]; last < 25 {
		t.Fatalf("axis must cover max: %v", ticks)
	}
	neg := AxisTicks(-8, 20, 6)
	if neg[0] > -8 || neg[len(neg)-1] < 20 {
		t.Fatalf("axis must cover [-8,20]: %v", neg)
	}
	for _, c := range [][2]float64{{0, 0}, {math.NaN(), 3}} {
		if got := AxisTicks(c[0], c[1], 6); len(got) != 2 || got[0] != 0 || got[1] != 1 {
			t.Fatalf("range %v => %v want [0 1]", c, got)
		}
	}
}

func TestIntegerTicks(t *testing.T) {
	cases := []struct {
		max, n int
		want   []float64
	}{
		{0, 6, []float64{0, 1}},
		{2, 6, []float64{0, 1, 2}},
		{10, 6, []float64{0, 2, 4, 6, 8, 10}},
		{11, 6, []float64{0, 3, 6, 9, 12}},
	}
	for _, c := range cases {
		got := IntegerTicks(c.max, c.n)
		if len(got) != len(c.want) {
			t.Fatalf("IntegerTicks(%d,%d)=%v want %v", c.max, c.n, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("IntegerTicks(%d,%d)=%v want %v", c.max, c.n, got, c.want)
			}
		}
	}
}

func TestLabelStride(t *testing.T) {
	cases := []struct{ n, max, want int }{
		{0, 10, 1},
		{5, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 10, 10},
		{101, 10, 11},
		{7, 0, 1},
	}
	for _, c := range cases {
		if got := LabelStride(c.n, c.max); got != c.want {
			t.Fatalf("LabelStride(%d,%d)=%d want %d", c.n, c.max, got, c.want)
		}
	}
	if MaxDateLabels(10) != 2 || MaxDateLabels(280) != 10 {
		t.Fatalf("MaxDateLabels unexpected: %d %d", MaxDateLabels(10), MaxDateLabels(280))
	}
}
