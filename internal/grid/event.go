package grid

import "log/slog"

// Event is a change notification produced by the reducer. Hosts receive
// events both as the return value of Dispatch and through subscribed
// listeners.
type Event interface{ isEvent() }

// SortChangedEvent fires on every header click, even when the resulting
// order is unchanged.
type SortChangedEvent struct {
	Column    string
	Direction Direction
}

// PageChangedEvent fires whenever the current page or page size actually
// changes, whether from navigation or from a clamp after the filtered set
// shrank. Navigating to the already-current page emits nothing.
type PageChangedEvent struct {
	Page       int
	PageSize   int
	TotalPages int
}

// SelectionChangedEvent carries the full selected set: positions within the
// current filtered/sorted sequence (-1 for rows the filter hides) aligned
// index-for-index with the row payloads.
type SelectionChangedEvent struct {
	Positions []int
	Rows      []Row
}

func (SortChangedEvent) isEvent()      {}
func (PageChangedEvent) isEvent()      {}
func (SelectionChangedEvent) isEvent() {}

// Listener receives every event a dispatch produces. Callbacks run
// synchronously inside Dispatch; dispatching from a callback fails with
// ErrReentrantDispatch.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

// LogListener logs every event with structured fields. Useful when the host
// redirects logs to a file while the terminal is owned by the UI.
type LogListener struct {
	Logger *slog.Logger
}

func (l LogListener) OnEvent(ev Event) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch ev := ev.(type) {
	case SortChangedEvent:
		logger.Info("sort-changed", "column", ev.Column, "direction", ev.Direction.String())
	case PageChangedEvent:
		logger.Info("page-changed", "page", ev.Page, "page_size", ev.PageSize, "total_pages", ev.TotalPages)
	case SelectionChangedEvent:
		logger.Info("selection-changed", "count", len(ev.Rows), "positions", ev.Positions)
	}
}
