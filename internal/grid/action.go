package grid

// Action is one user gesture or host write. The reducer apply is a pure
// (State, Action) -> (State, events) function; the renderer is a projection
// of the resulting state, so there is no ordering dependency between
// "update state" and "re-render".
type Action interface{ isAction() }

// ReplaceRows swaps the whole row set. Resets the page to 1 and re-keys
// every row; selections keyed by a stable id column survive.
type ReplaceRows struct{ Rows []Row }

// ReplaceColumns swaps the whole column set. Resets the page to 1.
type ReplaceColumns struct{ Columns []Column }

// SetQuery replaces the search query and resets the page to 1. The filter
// is recomputed unconditionally on every change; there is no debouncing.
type SetQuery struct{ Query string }

// ClickHeader applies the header-click sort protocol to the named column.
// Clicks on non-sortable or unknown columns are ignored.
type ClickHeader struct{ Column string }

// Page navigation. All clamp into the valid range rather than failing.
type (
	PageFirst struct{}
	PagePrev  struct{}
	PageNext  struct{}
	PageLast  struct{}
	PageJump  struct{ Page int }
)

// SetPageSize changes the window size. Sizes < 1 fall back to the default.
// The current page is re-clamped, not reset.
type SetPageSize struct{ Size int }

// SetSelectionMode switches the selection mode. Narrowing the mode keeps
// the existing selection; it only changes how future clicks behave.
type SetSelectionMode struct{ Mode SelectionMode }

// ClickRow toggles selection at a position in the filtered/sorted sequence
// (window offset + window-relative index, see State.ViewOffset).
type ClickRow struct{ Position int }

func (ReplaceRows) isAction()      {}
func (ReplaceColumns) isAction()   {}
func (SetQuery) isAction()         {}
func (ClickHeader) isAction()      {}
func (PageFirst) isAction()        {}
func (PagePrev) isAction()         {}
func (PageNext) isAction()         {}
func (PageLast) isAction()         {}
func (PageJump) isAction()         {}
func (SetPageSize) isAction()      {}
func (SetSelectionMode) isAction() {}
func (ClickRow) isAction()         {}

// apply runs one action against the state and returns the next state plus
// the events describing the transition.
func apply(s State, a Action) (State, []Event) {
	var events []Event

	switch a := a.(type) {
	case ReplaceRows:
		s.Rows = a.Rows
		s.keys = rowKeys(a.Rows)
		s.pruneSelection()
		s, events = s.resetPage(events)

	case ReplaceColumns:
		s.Columns = a.Columns
		s, events = s.resetPage(events)

	case SetQuery:
		s.Query = a.Query
		s, events = s.resetPage(events)

	case ClickHeader:
		col, ok := s.columnByKey(a.Column)
		if !ok || !col.Sortable {
			break
		}
		s.SortColumn, s.SortDir = nextSort(s.SortColumn, s.SortDir, a.Column)
		events = append(events, SortChangedEvent{Column: s.SortColumn, Direction: s.SortDir})

	case PageFirst:
		s, events = s.navigate(1, events)
	case PagePrev:
		s, events = s.navigate(s.Page-1, events)
	case PageNext:
		s, events = s.navigate(s.Page+1, events)
	case PageLast:
		s, events = s.navigate(s.TotalPages(), events)
	case PageJump:
		s, events = s.navigate(a.Page, events)

	case SetPageSize:
		size := a.Size
		if size < 1 {
			size = DefaultPageSize
		}
		if size == s.PageSize {
			break
		}
		s.PageSize = size
		s.Page = clampPage(s.Page, s.MatchCount(), s.PageSize)
		events = append(events, s.pageEvent())

	case SetSelectionMode:
		s.SelectionMode = a.Mode

	case ClickRow:
		if s.toggleSelection(a.Position) {
			positions, rows := s.selectionSnapshot()
			events = append(events, SelectionChangedEvent{Positions: positions, Rows: rows})
		}
	}

	// Re-clamp after any action; replacing rows or shrinking the filter can
	// leave the page past the end.
	if clamped := clampPage(s.Page, s.MatchCount(), s.PageSize); clamped != s.Page {
		s.Page = clamped
		events = append(events, s.pageEvent())
	}

	return s, events
}

// resetPage forces the page back to 1 (dataset, column set, or query
// changed) and reports the move when the page was elsewhere.
func (s State) resetPage(events []Event) (State, []Event) {
	if s.Page == 1 {
		return s, events
	}
	s.Page = 1
	return s, append(events, s.pageEvent())
}

// navigate clamps the requested page and emits page-changed only when the
// page actually moves; navigating to the current page is a no-op.
func (s State) navigate(page int, events []Event) (State, []Event) {
	page = clampPage(page, s.MatchCount(), s.PageSize)
	if page == s.Page {
		return s, events
	}
	s.Page = page
	return s, append(events, s.pageEvent())
}

func (s State) pageEvent() PageChangedEvent {
	return PageChangedEvent{Page: s.Page, PageSize: s.PageSize, TotalPages: s.TotalPages()}
}

func (s State) columnByKey(key string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
