// Package sales loads sales records from CSV and computes the aggregates the
// viewer charts: per-row totals, daily sums and a fixed-bin histogram.
//
// Nothing in this package depends on the UI toolkit so it can be exercised
// headlessly (tests, cmd/salesreader).
package sales

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// AllCategories is the selector entry meaning "no category filter".
const AllCategories = "All"

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("csv file is empty")

var (
	errNotFinite      = errors.New("value is not finite")
	errTotalOverflows = errors.New("price × quantity is not finite")
)

// MissingColumnsError reports required columns absent from the header.
type MissingColumnsError struct {
	Missing     []Column
	Suggestions map[Column]string // closest header per missing column, if any
}

func (e *MissingColumnsError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, c := range e.Missing {
		p := c.String()
		if s, ok := e.Suggestions[c]; ok {
			p += fmt.Sprintf(" (did you mean %q?)", s)
		}
		parts = append(parts, p)
	}
	return "missing required column(s): " + strings.Join(parts, ", ")
}

// CellError reports a value that could not be parsed as a number, or a row
// whose Total overflows.
type CellError struct {
	Line   int
	Column Column
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	if errors.Is(e.Err, errTotalOverflows) {
		return fmt.Sprintf("line %d: total of %s is not finite", e.Line, e.Value)
	}
	return fmt.Sprintf("line %d: %s %q is not a number", e.Line, e.Column, e.Value)
}

func (e *CellError) Unwrap() error { return e.Err }

// Record is one sales row.
type Record struct {
	Date     string    // raw value, used as the group key
	Time     time.Time // parsed Date; zero when no known layout matched
	Category string
	Price    float64
	Quantity float64
}

// Total is Price × Quantity.
func (r Record) Total() float64 { return r.Price * r.Quantity }

// Dataset is the in-memory table parsed from one CSV file.
type Dataset struct {
	Path        string
	Columns     []string
	Rows        []Record
	HasCategory bool
}

// Categories returns the distinct non-empty categories in first-seen order,
// or nil when the file had no Category column.
func (d *Dataset) Categories() []string {
	if d == nil || !d.HasCategory {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, r := range d.Rows {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}

// dateLayouts are tried in order; the first that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"20060102",
}

// parseDate returns the parsed time for s, or the zero time when s matches
// none of dateLayouts.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseNumber accepts "12.5", "12,5" and surrounding whitespace.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// detectComma picks ';' for files whose header line has semicolons but no
// commas, ',' otherwise.
func detectComma(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.IndexByte(line, ',') < 0 && bytes.IndexByte(line, ';') >= 0 {
		return ';'
	}
	return ','
}

// ParseCSV reads a header row plus data rows. It either returns a complete
// Dataset or an error; partial results are never returned.
func ParseCSV(r io.Reader, source string) (*Dataset, error) {
	defer TimeTrack(time.Now(), "parse "+source)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectComma(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}
	catIdx, hasCat := cols[ColCategory]
	ds := &Dataset{Path: source, Columns: header, HasCategory: hasCat}

	field := func(rec []string, i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row := Record{Date: field(rec, cols[ColDate])}
		row.Time = parseDate(row.Date)
		if hasCat {
			row.Category = field(rec, catIdx)
		}
		for _, nc := range []struct {
			col Column
			dst *float64
		}{{ColPrice, &row.Price}, {ColQuantity, &row.Quantity}} {
			raw := field(rec, cols[nc.col])
			v, err := parseNumber(raw)
			if err != nil {
				return nil, &CellError{Line: line, Column: nc.col, Value: raw, Err: err}
			}
			*nc.dst = v
		}
		if t := row.Total(); math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, &CellError{
				Line:   line,
				Column: ColQuantity,
				Value:  fmt.Sprintf("%g × %g", row.Price, row.Quantity),
				Err:    errTotalOverflows,
			}
		}
		ds.Rows = append(ds.Rows, row)
	}
	Debugf("parsed %s: %d rows, category column=%v", source, len(ds.Rows), hasCat)
	return ds, nil
}

// LoadCSV opens path and parses it with ParseCSV.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	ds, err := ParseCSV(f, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}
