package grid

import (
	"reflect"
	"testing"
)

func TestSelectionNoneIgnoresClicks(t *testing.T) {
	eng := newTestEngine(t, testRows(), testColumns())
	events := mustDispatch(t, eng, ClickRow{Position: 0})
	if len(events) != 0 {
		t.Fatalf("click in none mode emitted %d events", len(events))
	}
	if n := eng.State().SelectedCount(); n != 0 {
		t.Errorf("selected count = %d, want 0", n)
	}
}

func TestSelectionSingleReplacesPrevious(t *testing.T) {
	// Scenario: single mode, click position 0 then position 1 leaves
	// exactly {1} selected.
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectSingle})

	mustDispatch(t, eng, ClickRow{Position: 0})
	events := mustDispatch(t, eng, ClickRow{Position: 1})

	s := eng.State()
	if s.SelectedCount() != 1 {
		t.Fatalf("selected count = %d, want 1", s.SelectedCount())
	}
	if !s.IsSelectedAt(1) || s.IsSelectedAt(0) {
		t.Error("selection did not move from position 0 to 1")
	}

	ev := lastSelectionEvent(t, events)
	if !reflect.DeepEqual(ev.Positions, []int{1}) {
		t.Errorf("positions = %v, want [1]", ev.Positions)
	}
	if len(ev.Rows) != 1 || ev.Rows[0]["name"] != "Alice" {
		t.Errorf("rows payload = %v, want the row at position 1", ev.Rows)
	}
}

func TestSelectionMultipleToggles(t *testing.T) {
	// Select A, then B, then A again: exactly {B} remains.
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectMultiple})

	mustDispatch(t, eng, ClickRow{Position: 0})
	mustDispatch(t, eng, ClickRow{Position: 1})
	mustDispatch(t, eng, ClickRow{Position: 0})

	s := eng.State()
	if s.SelectedCount() != 1 {
		t.Fatalf("selected count = %d, want 1", s.SelectedCount())
	}
	if !s.IsSelectedAt(1) {
		t.Error("expected position 1 to remain selected")
	}
}

func TestSelectionSurvivesFilterSortPage(t *testing.T) {
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectMultiple})
	mustDispatch(t, eng, ClickRow{Position: 0}) // Charlie (raw order)

	mustDispatch(t, eng, SetQuery{Query: "alice"})
	if n := eng.State().SelectedCount(); n != 1 {
		t.Fatalf("selection dropped by filter: count = %d", n)
	}
	mustDispatch(t, eng, SetQuery{Query: ""})
	mustDispatch(t, eng, ClickHeader{Column: "name"})
	mustDispatch(t, eng, PageNext{})

	s := eng.State()
	rows := s.SelectedRows()
	if len(rows) != 1 || rows[0]["name"] != "Charlie" {
		t.Fatalf("selected rows = %v, want Charlie", rows)
	}
	// After the name sort, Charlie sits at position 2.
	if !s.IsSelectedAt(2) {
		t.Error("selected row not found at its sorted position")
	}
}

func TestSelectionPayloadConsistentUnderSort(t *testing.T) {
	// The event payload must describe the clicked rows even when a sort
	// reorders the view between click and read.
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectMultiple})
	mustDispatch(t, eng, ClickHeader{Column: "name"}) // Alice, Bob, Charlie

	events := mustDispatch(t, eng, ClickRow{Position: 0})
	ev := lastSelectionEvent(t, events)
	if len(ev.Rows) != 1 || ev.Rows[0]["name"] != "Alice" {
		t.Fatalf("clicked position 0 after sort, payload = %v, want Alice", ev.Rows)
	}
	if !reflect.DeepEqual(ev.Positions, []int{0}) {
		t.Errorf("positions = %v, want [0]", ev.Positions)
	}
}

func TestSelectionHiddenRowsReportPositionMinusOne(t *testing.T) {
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectMultiple})
	mustDispatch(t, eng, ClickRow{Position: 2}) // Bob (raw order)

	mustDispatch(t, eng, SetQuery{Query: "alice"})
	events := mustDispatch(t, eng, ClickRow{Position: 0}) // Alice, only visible row
	ev := lastSelectionEvent(t, events)

	if len(ev.Rows) != 2 {
		t.Fatalf("payload rows = %d, want 2", len(ev.Rows))
	}
	for i, r := range ev.Rows {
		switch r["name"] {
		case "Alice":
			if ev.Positions[i] != 0 {
				t.Errorf("Alice position = %d, want 0", ev.Positions[i])
			}
		case "Bob":
			if ev.Positions[i] != -1 {
				t.Errorf("hidden Bob position = %d, want -1", ev.Positions[i])
			}
		default:
			t.Errorf("unexpected row in payload: %v", r)
		}
	}
}

func TestSelectionKeyedByIDSurvivesDatasetReplacement(t *testing.T) {
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectMultiple})
	mustDispatch(t, eng, ClickRow{Position: 1}) // id 1, Alice

	// Same ids, new payloads: the id-keyed selection carries over.
	mustDispatch(t, eng, ReplaceRows{Rows: []Row{
		{"id": float64(1), "name": "Alice Cooper"},
		{"id": float64(2), "name": "Bob"},
	}})
	rows := eng.State().SelectedRows()
	if len(rows) != 1 || rows[0]["name"] != "Alice Cooper" {
		t.Fatalf("selected rows after replacement = %v, want Alice Cooper", rows)
	}

	// Ids that vanish take their selection with them.
	mustDispatch(t, eng, ReplaceRows{Rows: []Row{{"id": float64(9), "name": "Nine"}}})
	if n := eng.State().SelectedCount(); n != 0 {
		t.Errorf("selection count after id vanished = %d, want 0", n)
	}
}

func TestClickRowOutOfRangeIgnored(t *testing.T) {
	eng := newTestEngine(t, testRows(), testColumns())
	mustDispatch(t, eng, SetSelectionMode{Mode: SelectSingle})
	if events := mustDispatch(t, eng, ClickRow{Position: 99}); len(events) != 0 {
		t.Fatalf("out-of-range click emitted %d events", len(events))
	}
}

func lastSelectionEvent(t *testing.T, events []Event) SelectionChangedEvent {
	t.Helper()
	for i := len(events) - 1; i >= 0; i-- {
		if ev, ok := events[i].(SelectionChangedEvent); ok {
			return ev
		}
	}
	t.Fatal("no selection-changed event")
	return SelectionChangedEvent{}
}
