package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// filterIndices returns the indices of rows matching query, in row order.
// A row matches when at least one column's value, stringified and
// case-folded, contains the case-folded query as a substring. An empty
// query matches every row.
func filterIndices(rows []Row, cols []Column, query string) []int {
	idx := make([]int, 0, len(rows))
	if query == "" {
		for i := range rows {
			idx = append(idx, i)
		}
		return idx
	}
	q := strings.ToLower(query)
	for i, r := range rows {
		if rowMatches(r, cols, q) {
			idx = append(idx, i)
		}
	}
	return idx
}

func rowMatches(r Row, cols []Column, foldedQuery string) bool {
	for _, c := range cols {
		v, ok := r[c.Key]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringifyValue(v)), foldedQuery) {
			return true
		}
	}
	return false
}

// DisplayValue renders a cell value the way hosts display it; the filter
// matches against this same form so search finds what the user sees.
func DisplayValue(v any) string { return stringifyValue(v) }

// stringifyValue renders a cell value as text. Numbers drop trailing zeros.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
