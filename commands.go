package main

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskgrid/internal/grid"
)

// ---------------------------------------------------------------------------
// Command line (":" scope)
// ---------------------------------------------------------------------------
//
//	sort <column>        click the named header (fuzzy column match)
//	page <n>             jump to page n (clamped)
//	pagesize <n>         change the window size
//	select <mode>        none | single | multiple
//	clear                clear search, keep everything else

func (m *model) runCommand(line string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "sort":
		if len(args) == 0 {
			m.setError("Usage: sort <column>")
			return
		}
		m.commandSort(strings.Join(args, " "))
	case "page":
		if len(args) != 1 {
			m.setError("Usage: page <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			m.setError("Not a page number: " + args[0])
			return
		}
		m.send(grid.PageJump{Page: n})
	case "pagesize":
		if len(args) != 1 {
			m.setError("Usage: pagesize <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			m.setError("Not a page size: " + args[0])
			return
		}
		m.send(grid.SetPageSize{Size: n})
	case "select":
		if len(args) != 1 {
			m.setError("Usage: select none|single|multiple")
			return
		}
		mode := grid.ParseSelectionMode(args[0])
		m.send(grid.SetSelectionMode{Mode: mode})
		m.setStatus("Selection mode: " + mode.String() + ".")
	case "clear":
		m.send(grid.SetQuery{Query: ""})
		m.setStatus("Search cleared.")
	default:
		m.setError("Unknown command: " + cmd)
	}
}

func (m *model) commandSort(name string) {
	s := m.eng.State()
	col, ok := closestColumn(s.Columns, name)
	if !ok {
		m.setError("No column like " + strconv.Quote(name) + ".")
		return
	}
	if !col.Sortable {
		m.setStatus("Column " + col.Label + " is not sortable.")
		return
	}
	m.send(grid.ClickHeader{Column: col.Key})
}

// closestColumn resolves a user-typed column name against keys and labels:
// exact match first, then prefix, then smallest edit distance within a
// budget that scales with the input length.
func closestColumn(cols []grid.Column, name string) (grid.Column, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return grid.Column{}, false
	}

	for _, c := range cols {
		if strings.ToLower(c.Key) == want || strings.ToLower(c.Label) == want {
			return c, true
		}
	}
	for _, c := range cols {
		if strings.HasPrefix(strings.ToLower(c.Key), want) ||
			strings.HasPrefix(strings.ToLower(c.Label), want) {
			return c, true
		}
	}

	budget := len(want) / 2
	if budget < 1 {
		budget = 1
	}
	best := grid.Column{}
	bestDist := budget + 1
	for _, c := range cols {
		for _, candidate := range []string{strings.ToLower(c.Key), strings.ToLower(c.Label)} {
			if d := levenshtein.ComputeDistance(want, candidate); d < bestDist {
				best = c
				bestDist = d
			}
		}
	}
	if bestDist > budget {
		return grid.Column{}, false
	}
	return best, true
}
