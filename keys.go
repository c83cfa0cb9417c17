package main

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the browse-scope bindings. Search and command modes consume
// raw input and only honor Close/Confirm.
type keyMap struct {
	Quit      key.Binding
	UpDown    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Sort      key.Binding
	SortNum   key.Binding
	Search    key.Binding
	Command   key.Binding
	Select    key.Binding
	Clear     key.Binding
	Confirm   key.Binding
	Close     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		UpDown:    key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("j/k", "move")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l", "next page")),
		FirstPage: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		SortNum:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort by column")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select row")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// browseHelp returns the footer bindings for the browse scope, trimmed to
// the affordances the dataset actually enables.
func (m model) browseHelp() []key.Binding {
	out := []key.Binding{m.keys.UpDown}
	if m.pageable {
		out = append(out, m.keys.PrevPage, m.keys.NextPage)
	}
	if m.sortable {
		out = append(out, m.keys.Sort)
	}
	if m.searchable {
		out = append(out, m.keys.Search)
	}
	out = append(out, m.keys.Command, m.keys.Quit)
	return out
}

func (m model) inputHelp() []key.Binding {
	return []key.Binding{m.keys.Confirm, m.keys.Close, m.keys.Quit}
}
