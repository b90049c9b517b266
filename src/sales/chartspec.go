package sales

import (
	"fmt"
	"strings"
)

// ChartKind selects both the aggregation and the drawing style.
type ChartKind int

const (
	KindLine ChartKind = iota
	KindBar
	KindHistogram
)

// ChartKinds lists every kind in selector order.
var ChartKinds = []ChartKind{KindLine, KindBar, KindHistogram}

func (k ChartKind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindBar:
		return "Bar"
	case KindHistogram:
		return "Histogram"
	}
	return fmt.Sprintf("ChartKind(%d)", int(k))
}

// ParseChartKind maps a selector label (case-insensitive) back to its kind.
func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range ChartKinds {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return KindLine, fmt.Errorf("unknown chart kind %q", s)
}

// ChartKindLabels returns the selector options for ChartKinds.
func ChartKindLabels() []string {
	out := make([]string, len(ChartKinds))
	for i, k := range ChartKinds {
		out[i] = k.String()
	}
	return out
}

// Axis captions and titles shown on the charts.
const (
	LabelDate           = "Date"
	LabelTotal          = "Total (€)"
	LabelSingleTotal    = "Single-sale Total (€)"
	LabelFrequency      = "Frequency"
	TitleDailySales     = "Daily sales"
	TitleSalesHistogram = "Sales histogram"
)

// ChartSpec is a display-independent description of one chart. Daily is set
// for Line and Bar, Bins for Histogram.
type ChartSpec struct {
	Kind          ChartKind
	Title         string
	XLabel        string
	YLabel        string
	Daily         []DailyTotal
	Bins          []Bin
	Grid          bool
	RotateXLabels bool
	Rows          int // rows left after filtering
}

// Empty reports whether there is no chart at all (no dataset loaded). A
// chart for an empty selection is not Empty: it still has title and axes.
func (s ChartSpec) Empty() bool { return s.Title == "" }

// BuildChart computes the chart for ds filtered by category. It is a pure
// function of its inputs; a nil dataset yields the zero ChartSpec.
func BuildChart(ds *Dataset, category string, kind ChartKind) ChartSpec {
	if ds == nil {
		return ChartSpec{}
	}
	rows := Filter(ds, category)
	suffix := ""
	if category != "" && category != AllCategories {
		suffix = " - " + category
	}
	spec := ChartSpec{Kind: kind, Rows: len(rows)}
	switch kind {
	case KindHistogram:
		spec.Title = TitleSalesHistogram + suffix
		spec.XLabel = LabelSingleTotal
		spec.YLabel = LabelFrequency
		spec.Bins = Histogram(Totals(rows), HistogramBins)
	default:
		spec.Kind = kindOrLine(kind)
		spec.Title = TitleDailySales + suffix
		spec.XLabel = LabelDate
		spec.YLabel = LabelTotal
		spec.Daily = DailyAggregate(rows)
		spec.Grid = true
		spec.RotateXLabels = true
	}
	return spec
}

func kindOrLine(k ChartKind) ChartKind {
	if k == KindBar {
		return KindBar
	}
	return KindLine
}
