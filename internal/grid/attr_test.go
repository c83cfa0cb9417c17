package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRows(t *testing.T) {
	rows := ParseRows(`[{"id": 1, "name": "Alice"}, {"id": 2, "name": "Bob"}]`)
	require.Len(t, rows, 2)
	require.Equal(t, "Alice", rows[0]["name"])
	require.Equal(t, float64(1), rows[0]["id"])
}

func TestParseRowsMalformedFallsBackToEmpty(t *testing.T) {
	require.Empty(t, ParseRows(`{"not": "an array"}`))
	require.Empty(t, ParseRows(`[{"unterminated`))
	require.Empty(t, ParseRows(""))
}

func TestParseRowsStrictReportsAttrError(t *testing.T) {
	_, err := ParseRowsStrict(`[{"unterminated`)
	require.Error(t, err)
	var attrErr *AttrError
	require.True(t, errors.As(err, &attrErr))
	require.Equal(t, "data", attrErr.Attr)
}

func TestParseColumns(t *testing.T) {
	cols := ParseColumns(`[{"key": "name", "label": "Name", "sortable": true, "width": 20, "align": "left"}]`)
	require.Len(t, cols, 1)
	require.Equal(t, Column{Key: "name", Label: "Name", Sortable: true, Width: 20, Align: "left"}, cols[0])
}

func TestParseColumnsMalformedFallsBackToEmpty(t *testing.T) {
	require.Empty(t, ParseColumns(`42`))

	_, err := ParseColumnsStrict(`42`)
	var attrErr *AttrError
	require.True(t, errors.As(err, &attrErr))
	require.Equal(t, "columns", attrErr.Attr)
}

func TestParseSelectionMode(t *testing.T) {
	require.Equal(t, SelectSingle, ParseSelectionMode("single"))
	require.Equal(t, SelectMultiple, ParseSelectionMode(" Multiple "))
	require.Equal(t, SelectNone, ParseSelectionMode("none"))
	require.Equal(t, SelectNone, ParseSelectionMode(""))
	require.Equal(t, SelectNone, ParseSelectionMode("banana"))
}

func TestParsePageSize(t *testing.T) {
	require.Equal(t, 25, ParsePageSize("25"))
	require.Equal(t, DefaultPageSize, ParsePageSize("0"))
	require.Equal(t, DefaultPageSize, ParsePageSize("-3"))
	require.Equal(t, DefaultPageSize, ParsePageSize("lots"))
	require.Equal(t, DefaultPageSize, ParsePageSize(""))
}

func TestParsePage(t *testing.T) {
	require.Equal(t, 3, ParsePage("3"))
	require.Equal(t, 1, ParsePage("0"))
	require.Equal(t, 1, ParsePage("x"))
}

func TestParseFlag(t *testing.T) {
	for _, on := range []string{"true", "1", "YES", "on"} {
		require.True(t, ParseFlag(on), on)
	}
	for _, off := range []string{"", "false", "0", "nope"} {
		require.False(t, ParseFlag(off), off)
	}
}
