package grid

import (
	"strings"
	"testing"
)

func TestFilterEmptyQueryReturnsAllRows(t *testing.T) {
	rows := testRows()
	idx := filterIndices(rows, testColumns(), "")
	if len(idx) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(idx))
	}
	for i, raw := range idx {
		if raw != i {
			t.Errorf("index %d = %d, order not preserved", i, raw)
		}
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	// Scenario: query "bob" over [name, email] retains only rows whose name
	// or email contains "bob" case-insensitively.
	rows := []Row{
		{"name": "Alice", "email": "alice@example.com"},
		{"name": "BOBBY", "email": "b@example.com"},
		{"name": "Carol", "email": "big.bob@example.com"},
		{"name": "Dave", "email": "dave@example.com"},
	}
	cols := []Column{{Key: "name", Label: "Name"}, {Key: "email", Label: "Email"}}

	idx := filterIndices(rows, cols, "bob")
	if len(idx) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(idx))
	}
	if idx[0] != 1 || idx[1] != 2 {
		t.Errorf("matches = %v, want [1 2]", idx)
	}
}

func TestFilterMatchesNumericColumns(t *testing.T) {
	rows := testRows()
	idx := filterIndices(rows, testColumns(), "41")
	if len(idx) != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "41", len(idx))
	}
	if got, _ := rows[idx[0]]["name"].(string); got != "Bob" {
		t.Errorf("matched %q, want Bob", got)
	}
}

func TestFilterIgnoresColumnsOutsideDescriptorSet(t *testing.T) {
	rows := []Row{{"name": "Alice", "secret": "bob"}}
	cols := []Column{{Key: "name", Label: "Name"}}
	if idx := filterIndices(rows, cols, "bob"); len(idx) != 0 {
		t.Fatalf("value outside column set matched: %v", idx)
	}
}

// Filter correctness property: the result is an order-preserving subsequence
// and every surviving row has at least one matching column.
func TestFilterSubsequenceProperty(t *testing.T) {
	rows := manyRows(40)
	cols := []Column{{Key: "id", Label: "ID"}, {Key: "name", Label: "Name"}}
	for _, query := range []string{"", "person", "Person 1", "3", "zzz"} {
		idx := filterIndices(rows, cols, query)
		prev := -1
		for _, raw := range idx {
			if raw <= prev {
				t.Fatalf("query %q: indices %v not strictly increasing", query, idx)
			}
			prev = raw
			if query != "" && !rowMatches(rows[raw], cols, strings.ToLower(query)) {
				t.Errorf("query %q: row %d in result but does not match", query, raw)
			}
		}
		if query == "" && len(idx) != len(rows) {
			t.Errorf("empty query dropped rows: %d != %d", len(idx), len(rows))
		}
	}
}

func TestStringifyValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{float64(42), "42"},
		{float64(3.5), "3.5"},
		{7, "7"},
		{true, "true"},
		{nil, ""},
	}
	for _, c := range cases {
		if got := stringifyValue(c.in); got != c.want {
			t.Errorf("stringifyValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
