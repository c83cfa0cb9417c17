package grid

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Attribute boundary: the host's configuration surface arrives as untyped
// strings and serialized blobs. Everything is converted to the typed state
// record here so downstream code never sees raw input. The default posture
// matches the widget contract (malformed input degrades silently to the
// attribute's default), with strict variants for hosts that want a typed
// error channel instead.

// AttrError reports a malformed attribute value.
type AttrError struct {
	Attr string
	Err  error
}

func (e *AttrError) Error() string { return fmt.Sprintf("attribute %q: %v", e.Attr, e.Err) }
func (e *AttrError) Unwrap() error { return e.Err }

// ParseRows decodes a serialized row collection. Malformed input falls back
// to an empty collection.
func ParseRows(raw string) []Row {
	rows, err := ParseRowsStrict(raw)
	if err != nil {
		return nil
	}
	return rows
}

// ParseRowsStrict decodes a serialized row collection, reporting malformed
// input as an *AttrError.
func ParseRowsStrict(raw string) ([]Row, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var rows []Row
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, &AttrError{Attr: "data", Err: err}
	}
	return rows, nil
}

// ParseColumns decodes a serialized column-descriptor collection. Malformed
// input falls back to an empty collection.
func ParseColumns(raw string) []Column {
	cols, err := ParseColumnsStrict(raw)
	if err != nil {
		return nil
	}
	return cols
}

// ParseColumnsStrict decodes a serialized column-descriptor collection,
// reporting malformed input as an *AttrError.
func ParseColumnsStrict(raw string) ([]Column, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var cols []Column
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		return nil, &AttrError{Attr: "columns", Err: err}
	}
	return cols, nil
}

// ParseSelectionMode maps the selectable attribute to a mode. Anything but
// "single" or "multiple" is SelectNone.
func ParseSelectionMode(raw string) SelectionMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "single":
		return SelectSingle
	case "multiple":
		return SelectMultiple
	}
	return SelectNone
}

// ParsePageSize reads the page-size attribute; non-positive or malformed
// values fall back to DefaultPageSize.
func ParsePageSize(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultPageSize
	}
	return n
}

// ParsePage reads the current-page attribute; malformed values fall back to
// 1. The value is still clamped against the filtered set when applied.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseFlag reads boolean affordance attributes (sortable / searchable /
// pageable). Absent or malformed values are off.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
