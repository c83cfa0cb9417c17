package grid

// Selection is tracked as a set of stable row keys (see rowKeys), not view
// positions, so it survives filter, sort and page changes and the reported
// payload always names the rows that were actually clicked.

// SelectedCount reports how many rows are currently selected.
func (s State) SelectedCount() int { return len(s.selected) }

// IsSelectedAt reports whether the row at the given position in the
// filtered/sorted sequence is selected.
func (s State) IsSelectedAt(position int) bool {
	raw := s.rowAt(position)
	if raw < 0 {
		return false
	}
	_, ok := s.selected[s.keys[raw]]
	return ok
}

// SelectedRows returns the payloads of all selected rows in raw-row order,
// including rows the current filter hides.
func (s State) SelectedRows() []Row {
	out := make([]Row, 0, len(s.selected))
	for i, k := range s.keys {
		if _, ok := s.selected[k]; ok {
			out = append(out, s.Rows[i])
		}
	}
	return out
}

// selectionSnapshot builds the selection-changed payload: one entry per
// selected row, position within the current filtered/sorted sequence (-1
// when the filter hides the row) aligned index-for-index with the payload.
func (s State) selectionSnapshot() ([]int, []Row) {
	posByKey := make(map[string]int, len(s.selected))
	for pos, raw := range s.viewIndices() {
		if _, ok := s.selected[s.keys[raw]]; ok {
			posByKey[s.keys[raw]] = pos
		}
	}
	positions := make([]int, 0, len(s.selected))
	rows := make([]Row, 0, len(s.selected))
	for i, k := range s.keys {
		if _, ok := s.selected[k]; !ok {
			continue
		}
		pos, visible := posByKey[k]
		if !visible {
			pos = -1
		}
		positions = append(positions, pos)
		rows = append(rows, s.Rows[i])
	}
	return positions, rows
}

// toggleSelection applies a row click to the selected set per the active
// mode. Reports whether the set changed. SelectNone ignores clicks; single
// mode replaces the set; multiple mode toggles membership.
func (s *State) toggleSelection(position int) bool {
	if s.SelectionMode == SelectNone {
		return false
	}
	raw := s.rowAt(position)
	if raw < 0 {
		return false
	}
	key := s.keys[raw]
	next := make(map[string]struct{}, len(s.selected)+1)
	switch s.SelectionMode {
	case SelectSingle:
		next[key] = struct{}{}
	case SelectMultiple:
		for k := range s.selected {
			next[k] = struct{}{}
		}
		if _, ok := next[key]; ok {
			delete(next, key)
		} else {
			next[key] = struct{}{}
		}
	}
	s.selected = next
	return true
}

// pruneSelection drops selected keys that no longer exist after a dataset
// replacement. Rows keyed by a stable id column keep their selection; rows
// that were keyed by a generated uuid are gone with the old dataset.
func (s *State) pruneSelection() {
	next := make(map[string]struct{}, len(s.selected))
	for _, k := range s.keys {
		if _, ok := s.selected[k]; ok {
			next[k] = struct{}{}
		}
	}
	s.selected = next
}
