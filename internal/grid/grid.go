// Package grid implements the view engine behind the data table: a derived
// filter → sort → page pipeline over an in-memory row set, plus an orthogonal
// selection axis. State changes go through explicit actions (see action.go)
// and are reported as typed events (see event.go). The package does no
// rendering; hosts read the projected window and paint it themselves.
package grid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Row is one record of column-keyed scalar values. The engine never
// interprets row shape beyond looking up the keys named by columns.
type Row map[string]any

// Column describes how one column is labeled and sorted. Key uniqueness is
// the caller's responsibility; duplicates produce duplicate header cells.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable,omitempty"`
	Width    int    `json:"width,omitempty"`
	Align    string `json:"align,omitempty"`
}

// Direction is the sort direction for the active sort column.
type Direction int

const (
	DirNone Direction = iota
	DirAscending
	DirDescending
)

func (d Direction) String() string {
	switch d {
	case DirAscending:
		return "ascending"
	case DirDescending:
		return "descending"
	}
	return "none"
}

// SelectionMode controls how row clicks affect the selected set.
type SelectionMode int

const (
	SelectNone SelectionMode = iota
	SelectSingle
	SelectMultiple
)

func (m SelectionMode) String() string {
	switch m {
	case SelectSingle:
		return "single"
	case SelectMultiple:
		return "multiple"
	}
	return "none"
}

// DefaultPageSize applies when no page-size attribute is supplied.
const DefaultPageSize = 10

// State is the whole engine state for one table. Rows and Columns are
// replaced wholesale, never patched in place. The zero value is not usable;
// construct with NewState.
type State struct {
	Rows    []Row
	Columns []Column

	Query      string
	SortColumn string
	SortDir    Direction

	Page     int // 1-based, clamped into [1, TotalPages()]
	PageSize int

	SelectionMode SelectionMode

	// keys runs parallel to Rows and gives each row a stable identity that
	// survives filtering and sorting. Selection is tracked against keys, not
	// positions, so the selection-changed payload always describes the rows
	// the user actually clicked.
	keys     []string
	selected map[string]struct{}
}

// NewState returns an empty engine state with the widget defaults.
func NewState() State {
	return State{
		Page:     1,
		PageSize: DefaultPageSize,
		selected: map[string]struct{}{},
	}
}

// rowKeys derives a stable key per row: the row's "id" value when present,
// otherwise a fresh uuid. Keys are assigned once per dataset replacement.
func rowKeys(rows []Row) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		if id, ok := r["id"]; ok && id != nil {
			keys[i] = fmt.Sprintf("id:%s", stringifyValue(id))
			continue
		}
		keys[i] = uuid.NewString()
	}
	return keys
}

// ---------------------------------------------------------------------------
// Derived view
// ---------------------------------------------------------------------------

// viewIndices derives the filtered, sorted index sequence into s.Rows.
// Recomputed on every call; the engine trades redundant recomputation for the
// invariant that the view is always exactly paginate(sort(filter(rows))).
func (s State) viewIndices() []int {
	idx := filterIndices(s.Rows, s.Columns, s.Query)
	sortIndices(idx, s.Rows, s.SortColumn, s.SortDir)
	return idx
}

// MatchCount reports how many rows survive the current filter.
func (s State) MatchCount() int {
	return len(filterIndices(s.Rows, s.Columns, s.Query))
}

// TotalPages reports the page count for the current filter and page size.
// Always at least 1, even for an empty row set.
func (s State) TotalPages() int {
	return totalPages(s.MatchCount(), s.PageSize)
}

// View returns the rows of the current page window, in display order.
func (s State) View() []Row {
	idx := s.viewIndices()
	lo, hi := pageWindow(len(idx), s.Page, s.PageSize)
	out := make([]Row, 0, hi-lo)
	for _, i := range idx[lo:hi] {
		out = append(out, s.Rows[i])
	}
	return out
}

// ViewOffset returns the position of the window's first row within the
// filtered/sorted sequence. A host maps a window-relative row index i to the
// position ViewOffset()+i when dispatching ClickRow.
func (s State) ViewOffset() int {
	lo, _ := pageWindow(s.MatchCount(), s.Page, s.PageSize)
	return lo
}

// rowAt resolves a position in the filtered/sorted sequence to its raw index,
// or -1 when the position is out of range.
func (s State) rowAt(position int) int {
	idx := s.viewIndices()
	if position < 0 || position >= len(idx) {
		return -1
	}
	return idx[position]
}

// ---------------------------------------------------------------------------
// Engine
// ---------------------------------------------------------------------------

// ErrReentrantDispatch is returned when Dispatch is invoked from inside a
// listener callback. The pipeline is synchronous and non-reentrant; a
// listener that wants to trigger a follow-up action must defer it until the
// current dispatch returns.
var ErrReentrantDispatch = errors.New("grid: re-entrant dispatch from listener")

// Engine owns one State and runs actions through the reducer, fanning the
// resulting events out to listeners. All methods must be called from a single
// goroutine; the engine cooperates with the host's event loop and has no
// internal concurrency.
type Engine struct {
	state       State
	listeners   []Listener
	dispatching bool
}

// NewEngine returns an engine over an empty state.
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// State returns the current state. The returned value shares row storage
// with the engine; treat it as read-only.
func (e *Engine) State() State { return e.state }

// Subscribe registers a listener for all future events.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Dispatch applies one action, notifies listeners of every resulting event,
// and returns those events. Every action runs to completion before Dispatch
// returns; there are no suspension points.
func (e *Engine) Dispatch(a Action) ([]Event, error) {
	if e.dispatching {
		return nil, ErrReentrantDispatch
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	next, events := apply(e.state, a)
	e.state = next
	for _, ev := range events {
		for _, l := range e.listeners {
			l.OnEvent(ev)
		}
	}
	return events, nil
}
