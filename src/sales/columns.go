package sales

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gosimple/slug"
)

// Column identifies one of the logical columns the viewer understands.
type Column int

const (
	ColDate Column = iota
	ColPrice
	ColQuantity
	ColCategory
)

func (c Column) String() string {
	switch c {
	case ColDate:
		return "Date"
	case ColPrice:
		return "Price"
	case ColQuantity:
		return "Quantity"
	case ColCategory:
		return "Category"
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// columnAliases lists the normalised header names accepted for each column.
// The Italian names are what older exports of the sales sheet use.
var columnAliases = map[Column][]string{
	ColDate:     {"date", "data", "day"},
	ColPrice:    {"price", "prezzo", "unit-price"},
	ColQuantity: {"quantity", "quantita", "qty"},
	ColCategory: {"category", "categoria"},
}

var requiredColumns = []Column{ColDate, ColPrice, ColQuantity}

// maxSuggestDistance bounds how far a header may be from an alias and
// still be offered as a "did you mean" hint.
const maxSuggestDistance = 2

// normalizeHeader folds a header cell to the form used in columnAliases:
// BOM stripped, lower-case, accents removed, separators collapsed to '-'.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return slug.Make(strings.TrimSpace(h))
}

// columnIndex maps each logical column found in header to its field index.
type columnIndex map[Column]int

// resolveColumns matches a CSV header against the known aliases. The first
// matching header cell wins. Missing required columns are reported together.
func resolveColumns(header []string) (columnIndex, error) {
	idx := columnIndex{}
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = normalizeHeader(h)
	}
	for col, aliases := range columnAliases {
		for i, n := range norm {
			if containsString(aliases, n) {
				idx[col] = i
				break
			}
		}
	}
	var missing []Column
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return idx, nil
	}
	e := &MissingColumnsError{Missing: missing, Suggestions: map[Column]string{}}
	for _, col := range missing {
		if s, ok := suggestHeader(col, header, idx); ok {
			e.Suggestions[col] = s
		}
	}
	return nil, e
}

// suggestHeader returns the unused header cell closest to any alias of col.
func suggestHeader(col Column, header []string, used columnIndex) (string, bool) {
	taken := map[int]bool{}
	for _, i := range used {
		taken[i] = true
	}
	best, bestDist := "", maxSuggestDistance+1
	for i, h := range header {
		if taken[i] {
			continue
		}
		n := normalizeHeader(h)
		if n == "" {
			continue
		}
		for _, a := range columnAliases[col] {
			if d := levenshtein.ComputeDistance(n, a); d < bestDist {
				best, bestDist = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), d
			}
		}
	}
	return best, bestDist <= maxSuggestDistance
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
