package views

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"folio/internal/ui/services/search"
)

// PaletteState is what the palette box needs to draw itself
type PaletteState struct {
	Input         string // rendered text input
	Query         string
	Groups        []search.Group
	SelectedIndex int
	Width         int
	MaxRows       int
}

// PaletteRow maps a rendered line of the palette to a suggestion index, so
// mouse hover can be resolved. Index is -1 for headings and blank lines.
type PaletteRow struct {
	Index int
}

// RenderPalette draws the search field and the grouped results. It also
// returns the row map relative to the first line inside the border.
func (r *Renderer) RenderPalette(st PaletteState) (string, []PaletteRow) {
	inner := st.Width - 4
	if inner < 10 {
		inner = 10
	}

	var lines []string
	var rows []PaletteRow
	add := func(line string, idx int) {
		lines = append(lines, line)
		rows = append(rows, PaletteRow{Index: idx})
	}

	add("› "+st.Input, -1)
	add(r.styles.Dim.Render(strings.Repeat("─", inner)), -1)

	index := 0
	for _, g := range st.Groups {
		add(r.styles.GroupTitle.UnsetMarginTop().Render(g.Title), -1)
		for _, s := range g.Entries {
			add(r.renderSuggestion(s, index == st.SelectedIndex, st.Query, inner), index)
			index++
		}
	}
	if index == 0 {
		add(r.styles.Dim.Render("No results found."), -1)
	}

	if st.MaxRows > 0 && len(lines) > st.MaxRows {
		lines, rows = scrollWindow(lines, rows, st.SelectedIndex, st.MaxRows)
	}

	box := r.styles.PaletteBox.Width(inner + 2).Render(strings.Join(lines, "\n"))
	return box, rows
}

// scrollWindow keeps the selected row on screen when the list is taller
// than the box
func scrollWindow(lines []string, rows []PaletteRow, selected, max int) ([]string, []PaletteRow) {
	const header = 2
	target := header
	for i, row := range rows {
		if row.Index == selected {
			target = i
			break
		}
	}
	start := header
	if target >= header+max-header {
		start = target - (max - header) + 1
	}
	end := start + max - header
	if end > len(lines) {
		end = len(lines)
	}
	outLines := append(append([]string{}, lines[:header]...), lines[start:end]...)
	outRows := append(append([]PaletteRow{}, rows[:header]...), rows[start:end]...)
	return outLines, outRows
}

func (r *Renderer) renderSuggestion(s search.Suggestion, selected bool, query string, width int) string {
	icon := s.Icon
	if icon == "" {
		icon = "•"
	}
	shortcut := ""
	if s.Shortcut != "" {
		shortcut = r.styles.Shortcut.Render(s.Shortcut)
	}

	labelW := width - lipgloss.Width(shortcut) - runewidth.StringWidth(icon) - 3
	label := runewidth.Truncate(s.Label, max(labelW, 1), "…")
	if query != "" {
		label = r.highlightMatch(label, strings.TrimSpace(query))
	}

	line := icon + " " + label
	if pad := width - lipgloss.Width(line) - lipgloss.Width(shortcut); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	line += shortcut

	if selected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// highlightMatch highlights the first case-insensitive, rune-wise match
// of query
func (r *Renderer) highlightMatch(text, query string) string {
	tr, qr := []rune(text), []rune(query)
	index := foldIndex(tr, qr)
	if index == -1 || len(qr) == 0 {
		return text
	}
	before := string(tr[:index])
	match := string(tr[index : index+len(qr)])
	after := string(tr[index+len(qr):])
	return before + r.styles.Highlight.Render(match) + after
}

func foldIndex(text, query []rune) int {
	for i := 0; i+len(query) <= len(text); i++ {
		j := 0
		for j < len(query) && unicode.ToLower(text[i+j]) == unicode.ToLower(query[j]) {
			j++
		}
		if j == len(query) {
			return i
		}
	}
	return -1
}
