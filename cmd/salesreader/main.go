// salesreader prints the aggregates the viewer charts, without a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iafilius/SalesViewer/src/sales"
)

func main() {
	var file, category, kind, logLevel string
	flag.StringVar(&file, "file", "", "Path to the sales CSV")
	flag.StringVar(&category, "category", sales.AllCategories, "Category filter (exact match)")
	flag.StringVar(&kind, "kind", "line", "Aggregation: line, bar or histogram")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.Parse()
	sales.SetLogLevel(logLevel)

	if err := run(os.Stdout, file, category, kind); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, file, category, kind string) error {
	if file == "" {
		return fmt.Errorf("-file is required")
	}
	k, err := sales.ParseChartKind(kind)
	if err != nil {
		return err
	}
	ds, err := sales.LoadCSV(file)
	if err != nil {
		return err
	}
	spec := sales.BuildChart(ds, category, k)

	cats := ds.Categories()
	if len(cats) == 0 {
		fmt.Fprintln(w, "Categories: (none)")
	} else {
		fmt.Fprintf(w, "Categories: %s\n", strings.Join(cats, ", "))
	}
	fmt.Fprintf(w, "%s (%d rows)\n", spec.Title, spec.Rows)
	if k == sales.KindHistogram {
		for i, b := range spec.Bins {
			closing := ")"
			if i == len(spec.Bins)-1 {
				closing = "]"
			}
			fmt.Fprintf(w, "[%.2f, %.2f%s\t%d\n", b.Lo, b.Hi, closing, b.Count)
		}
		return nil
	}
	for _, d := range spec.Daily {
		fmt.Fprintf(w, "%s\t%.2f\n", d.Date, d.Total)
	}
	return nil
}
