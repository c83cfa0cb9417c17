package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskgrid/internal/grid"
)

const appName = "Jaskgrid"

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// model is the host around the grid engine: it owns the terminal, turns key
// presses into engine actions and projects the engine's page window into
// the frame. Every update re-derives and re-renders the whole view.
type model struct {
	eng   *grid.Engine
	keys  keyMap
	title string

	// Affordance flags from the host configuration; when off, the matching
	// key bindings are ignored and hidden from the footer.
	sortable   bool
	searchable bool
	pageable   bool

	// cursor is the window-relative row the user is on; the absolute
	// position in the filtered/sorted sequence is ViewOffset()+cursor.
	cursor int

	searchMode   bool
	searchInput  textinput.Model
	commandMode  bool
	commandInput textinput.Model

	status    string
	statusErr bool
	width     int
	height    int
}

func newModel(eng *grid.Engine, title string) model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 120

	command := textinput.New()
	command.Prompt = ":"
	command.CharLimit = 120

	return model{
		eng:          eng,
		keys:         newKeyMap(),
		title:        title,
		sortable:     true,
		searchable:   true,
		pageable:     true,
		searchInput:  search,
		commandInput: command,
		status:       "Ready. / to search, s to sort, : for commands.",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		switch {
		case m.searchMode:
			return m.updateSearch(msg)
		case m.commandMode:
			return m.updateCommand(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Engine plumbing
// ---------------------------------------------------------------------------

// send dispatches one action and folds the resulting events into the status
// line. Engine errors (only the re-entrancy guard today) surface in red.
func (m *model) send(a grid.Action) {
	events, err := m.eng.Dispatch(a)
	if err != nil {
		m.setError(err.Error())
		return
	}
	if desc := describeEvents(events); desc != "" {
		m.setStatus(desc)
	}
	m.clampCursor()
}

func (m *model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *model) setError(text string) {
	m.status = text
	m.statusErr = true
}

// clampCursor keeps the cursor inside the current page window; the window
// shrinks when a filter, page change or dataset replacement lands.
func (m *model) clampCursor() {
	n := len(m.eng.State().View())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// describeEvents turns a dispatch's events into one status line.
func describeEvents(events []grid.Event) string {
	parts := make([]string, 0, len(events))
	for _, ev := range events {
		switch ev := ev.(type) {
		case grid.SortChangedEvent:
			parts = append(parts, fmt.Sprintf("Sorted by %s %s.", ev.Column, ev.Direction))
		case grid.PageChangedEvent:
			parts = append(parts, fmt.Sprintf("Page %d of %d.", ev.Page, ev.TotalPages))
		case grid.SelectionChangedEvent:
			switch len(ev.Rows) {
			case 0:
				parts = append(parts, "Selection cleared.")
			case 1:
				parts = append(parts, "1 row selected.")
			default:
				parts = append(parts, fmt.Sprintf("%d rows selected.", len(ev.Rows)))
			}
		}
	}
	return strings.Join(parts, " ")
}
