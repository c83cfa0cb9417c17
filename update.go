package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskgrid/internal/grid"
)

// ---------------------------------------------------------------------------
// Browse scope
// ---------------------------------------------------------------------------

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.eng.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.UpDown):
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(s.View())-1 {
				m.cursor++
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.pageable && s.CanPrev() {
			m.send(grid.PagePrev{})
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.pageable && s.CanNext() {
			m.send(grid.PageNext{})
		}
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		if m.pageable {
			m.send(grid.PageFirst{})
		}
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		if m.pageable {
			m.send(grid.PageLast{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		if m.sortable {
			m.sortNext()
		}
		return m, nil

	case key.Matches(msg, m.keys.SortNum):
		if m.sortable {
			m.sortByIndex(int(msg.String()[0] - '1'))
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.searchable {
			m.searchMode = true
			m.searchInput.SetValue(s.Query)
			m.searchInput.CursorEnd()
			m.searchInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.commandMode = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.send(grid.ClickRow{Position: s.ViewOffset() + m.cursor})
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		if s.Query != "" {
			m.send(grid.SetQuery{Query: ""})
			m.setStatus("Search cleared.")
		}
		return m, nil
	}
	return m, nil
}

// sortNext clicks the header after the currently sorted one, wrapping
// through the sortable columns. With no active sort it clicks the first
// sortable column.
func (m *model) sortNext() {
	s := m.eng.State()
	sortable := make([]grid.Column, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c.Sortable {
			sortable = append(sortable, c)
		}
	}
	if len(sortable) == 0 {
		m.setStatus("No sortable columns.")
		return
	}
	next := sortable[0]
	for i, c := range sortable {
		if c.Key == s.SortColumn {
			next = sortable[(i+1)%len(sortable)]
			break
		}
	}
	m.send(grid.ClickHeader{Column: next.Key})
}

// sortByIndex clicks the i-th column header (0-based); repeated presses on
// the same column cycle ascending/descending.
func (m *model) sortByIndex(i int) {
	s := m.eng.State()
	if i < 0 || i >= len(s.Columns) {
		return
	}
	col := s.Columns[i]
	if !col.Sortable {
		m.setStatus("Column " + col.Label + " is not sortable.")
		return
	}
	m.send(grid.ClickHeader{Column: col.Key})
}

// ---------------------------------------------------------------------------
// Search scope: every keystroke re-filters, no debouncing
// ---------------------------------------------------------------------------

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.searchMode = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.send(grid.SetQuery{Query: ""})
		m.setStatus("Search cleared.")
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.send(grid.SetQuery{Query: after})
		m.cursor = 0
	}
	return m, cmd
}

// ---------------------------------------------------------------------------
// Command scope
// ---------------------------------------------------------------------------

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.commandMode = false
		m.commandInput.Blur()
		return m, nil
	case "enter":
		line := m.commandInput.Value()
		m.commandMode = false
		m.commandInput.Blur()
		m.runCommand(line)
		return m, nil
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}
