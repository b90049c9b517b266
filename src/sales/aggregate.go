package sales

import (
	"math"
	"sort"
	"time"
)

// HistogramBins is the fixed bucket count of the histogram chart.
const HistogramBins = 10

// DailyTotal is the summed Total of all rows sharing one Date.
type DailyTotal struct {
	Date  string
	Time  time.Time
	Total float64
}

// Bin is one histogram bucket covering [Lo, Hi); the last bin also covers Hi.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// Filter returns the rows whose Category equals category exactly. The
// AllCategories sentinel, an empty category and rows from a file without a
// Category column are never filtered.
func Filter(ds *Dataset, category string) []Record {
	if ds == nil {
		return nil
	}
	if !ds.HasCategory || category == "" || category == AllCategories {
		return ds.Rows
	}
	out := make([]Record, 0, len(ds.Rows))
	for _, r := range ds.Rows {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Totals returns Price × Quantity for every row, in row order.
func Totals(rows []Record) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Total()
	}
	return out
}

// DailyAggregate sums Total per distinct Date, ascending by date. Dates that
// parsed come first in chronological order (ties by text); the rest follow
// in text order.
func DailyAggregate(rows []Record) []DailyTotal {
	index := map[string]int{}
	var out []DailyTotal
	for _, r := range rows {
		i, ok := index[r.Date]
		if !ok {
			i = len(out)
			index[r.Date] = i
			out = append(out, DailyTotal{Date: r.Date, Time: r.Time})
		}
		out[i].Total += r.Total()
	}
	sort.SliceStable(out, func(i, j int) bool { return dateLess(out[i], out[j]) })
	return out
}

func dateLess(a, b DailyTotal) bool {
	aParsed, bParsed := !a.Time.IsZero(), !b.Time.IsZero()
	if aParsed != bParsed {
		return aParsed
	}
	if aParsed && !a.Time.Equal(b.Time) {
		return a.Time.Before(b.Time)
	}
	return a.Date < b.Date
}

// Histogram distributes values into n equal-width bins over [min, max].
// NaN and ±Inf are ignored. A single distinct value widens the range to ±0.5
// around it; no values yields the range [0, 1] with all counts zero.
func Histogram(values []float64, n int) []Bin {
	if n <= 0 {
		return nil
	}
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	values = finite
	lo, hi := 0.0, 1.0
	if len(values) > 0 {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
	}
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[n-1].Hi = hi
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		bins[i].Count++
	}
	return bins
}
