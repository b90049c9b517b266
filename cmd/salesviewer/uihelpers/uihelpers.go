// Package uihelpers holds the display-free layout and axis arithmetic of the
// viewer so it can be unit tested without a window.
package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions clamps the chart image size to the canvas width.
// Returns width & height in pixels.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.55)
	if h < 320 {
		h = 320
	}
	if h > 600 {
		h = 600
	}
	return w, h
}

// round6 rounds to 6 decimal places to stabilize test comparisons / labels prep.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a
// 1,2,2.5,5 * 10^k step. Returns raw positions; labels are the caller's job.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// AxisTicks returns ticks for a value axis that always includes 0 and covers
// [minV, maxV]. NaN bounds or an all-zero range yield the unit axis {0, 1}.
func AxisTicks(minV, maxV float64, n int) []float64 {
	if math.IsNaN(minV) || math.IsNaN(maxV) {
		return []float64{0, 1}
	}
	lo := math.Min(0, minV)
	hi := math.Max(0, maxV)
	if lo == 0 && hi == 0 {
		return []float64{0, 1}
	}
	return BuildNumericTicks(lo, hi, n)
}

// IntegerTicks returns 0-based ticks with a whole-number step covering max,
// for count axes.
func IntegerTicks(max, n int) []float64 {
	if n < 2 {
		n = 2
	}
	if max < 1 {
		max = 1
	}
	step := (max + n - 2) / (n - 1)
	if step < 1 {
		step = 1
	}
	var out []float64
	for v := 0; ; v += step {
		out = append(out, float64(v))
		if v >= max {
			break
		}
	}
	return out
}

// FormatNumericTick provides a compact label for axis ticks and bin edges.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// LabelStride returns k such that labelling every k-th of n categories keeps
// at most maxLabels labels on the axis.
func LabelStride(n, maxLabels int) int {
	if n <= 0 || maxLabels <= 0 || n <= maxLabels {
		return 1
	}
	return (n + maxLabels - 1) / maxLabels
}

// MaxDateLabels is how many rotated date labels fit in width pixels.
func MaxDateLabels(width int) int {
	const perLabel = 28
	n := width / perLabel
	if n < 2 {
		n = 2
	}
	return n
}
