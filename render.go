package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskgrid/internal/grid"
)

func (m model) View() string {
	s := m.eng.State()

	header := m.renderHeader(s)
	table := m.renderTable(s)
	pager := m.renderPager(s)

	var input string
	switch {
	case m.searchMode:
		input = searchPromptStyle.Render("") + m.searchInput.View()
	case m.commandMode:
		input = m.commandInput.View()
	}

	body := header + "\n\n" + table + "\n" + pager
	if input != "" {
		body += "\n" + input
	}

	return m.placeWithFooter(body, m.renderStatus(), m.renderFooter(m.footerBindings()))
}

func (m model) footerBindings() []key.Binding {
	if m.searchMode || m.commandMode {
		return m.inputHelp()
	}
	return m.browseHelp()
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m model) renderHeader(s grid.State) string {
	name := headerAppStyle.Render(appName)
	title := m.title
	if title == "" {
		title = "untitled dataset"
	}
	content := name + "  " + title
	if s.Query != "" {
		content += "  " + searchPromptStyle.Render(fmt.Sprintf("/%s (%d matches)", s.Query, s.MatchCount()))
	}
	if m.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(m.width).Render(content)
}

func (m model) renderStatus() string {
	flat := strings.ReplaceAll(m.status, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = errorStatusStyle
	}
	if m.width <= 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if m.width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines prevent ghosting from previous frames.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// Table projection
// ---------------------------------------------------------------------------

const (
	markWidth     = 4 // cursor + selection marks
	minColWidth   = 6
	columnPadding = 2
)

func (m model) renderTable(s grid.State) string {
	if len(s.Columns) == 0 {
		return rowStyle.Render("No columns configured.")
	}
	widths := columnWidths(s.Columns, m.contentWidth())

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", markWidth))
	for i, c := range s.Columns {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		style := columnHeaderStyle
		if m.sortable && c.Key == s.SortColumn && s.SortDir != grid.DirNone {
			style = sortedHeaderStyle
			if s.SortDir == grid.DirAscending {
				label += " ▲"
			} else {
				label += " ▼"
			}
		}
		b.WriteString(style.Render(cell(label, widths[i], c.Align)))
		b.WriteString(strings.Repeat(" ", columnPadding))
	}
	b.WriteString("\n")
	b.WriteString(headerRuleStyle.Render(strings.Repeat("─", m.contentWidth())))
	b.WriteString("\n")

	view := s.View()
	if len(view) == 0 {
		if s.Query != "" {
			b.WriteString(rowStyle.Render(fmt.Sprintf("No rows match %q.", s.Query)))
		} else {
			b.WriteString(rowStyle.Render("No rows."))
		}
		return b.String()
	}

	offset := s.ViewOffset()
	for i, row := range view {
		marks := "  "
		if s.IsSelectedAt(offset + i) {
			marks = selectedMarkStyle.Render("● ")
		}
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + marks)

		line := renderCells(row, s.Columns, widths)
		if i == m.cursor {
			line = cursorRowStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(view)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCells(row grid.Row, cols []grid.Column, widths []int) string {
	var b strings.Builder
	for i, c := range cols {
		b.WriteString(cell(grid.DisplayValue(row[c.Key]), widths[i], c.Align))
		b.WriteString(strings.Repeat(" ", columnPadding))
	}
	return strings.TrimRight(b.String(), " ")
}

// renderPager shows the window bookkeeping with first/prev and next/last
// affordances dimmed when they would be no-ops.
func (m model) renderPager(s grid.State) string {
	if !m.pageable {
		return pagerStyle.Render(fmt.Sprintf("%d rows", s.MatchCount()))
	}
	prev := pagerDisabledStyle.Render("◀ prev")
	if s.CanPrev() {
		prev = pagerActiveStyle.Render("◀ prev")
	}
	next := pagerDisabledStyle.Render("next ▶")
	if s.CanNext() {
		next = pagerActiveStyle.Render("next ▶")
	}
	middle := pagerStyle.Render(fmt.Sprintf(" Page %d/%d · %d rows ", s.Page, s.TotalPages(), s.MatchCount()))
	if n := s.SelectedCount(); n > 0 {
		middle += selectedMarkStyle.Render(fmt.Sprintf("· %d selected ", n))
	}
	return prev + middle + next
}

// ---------------------------------------------------------------------------
// Layout helpers
// ---------------------------------------------------------------------------

func (m model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// columnWidths honors declared widths and splits the remaining space evenly
// among the rest.
func columnWidths(cols []grid.Column, total int) []int {
	widths := make([]int, len(cols))
	remaining := total - markWidth - columnPadding*len(cols)
	flexible := 0
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			remaining -= c.Width
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		each := remaining / flexible
		if each < minColWidth {
			each = minColWidth
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = each
			}
		}
	}
	return widths
}

// cell truncates or pads a value to width, honoring right alignment.
func cell(value string, width int, align string) string {
	if width <= 0 {
		return ""
	}
	value = truncate(value, width)
	if align == "right" {
		if pad := width - ansi.StringWidth(value); pad > 0 {
			return strings.Repeat(" ", pad) + value
		}
		return value
	}
	return padRight(value, width)
}

// ---------------------------------------------------------------------------
// String utilities
// ---------------------------------------------------------------------------

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate shortens s to width cells, appending an ellipsis when cut.
func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "…")
}
