package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/SalesViewer/src/sales"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

const scenarioCSV = "Date,Category,Price,Quantity\n2024-01-01,A,10,2\n2024-01-01,B,5,1\n2024-01-02,A,20,1\n"

func TestRun_Daily(t *testing.T) {
	p := writeCSV(t, scenarioCSV)
	var buf bytes.Buffer
	if err := run(&buf, p, "A", "bar"); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Categories: A, B\nDaily sales - A (2 rows)\n2024-01-01\t20.00\n2024-01-02\t20.00\n"
	if buf.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRun_Histogram(t *testing.T) {
	p := writeCSV(t, scenarioCSV)
	var buf bytes.Buffer
	if err := run(&buf, p, sales.AllCategories, "histogram"); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// categories + title + 10 bins
	if len(lines) != 2+sales.HistogramBins {
		t.Fatalf("lines=%d:\n%s", len(lines), buf.String())
	}
	if lines[2] != "[5.00, 6.50)\t1" || lines[len(lines)-1] != "[18.50, 20.00]\t2" {
		t.Fatalf("unexpected bins:\n%s", buf.String())
	}
}

func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "", sales.AllCategories, "line"); err == nil {
		t.Fatalf("expected error without -file")
	}
	if err := run(&buf, "x.csv", sales.AllCategories, "pie"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	p := writeCSV(t, "Date,Price\n2024-01-01,1\n")
	err := run(&buf, p, sales.AllCategories, "line")
	var mce *sales.MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("err=%v want MissingColumnsError", err)
	}
}
