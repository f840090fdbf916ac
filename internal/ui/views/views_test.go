package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/contact"
	"folio/internal/domain"
	"folio/internal/responsive"
	"folio/internal/ui/services/search"
)

func groups() []search.Group {
	return []search.Group{
		{Title: "Suggestions", Entries: []search.Suggestion{
			{ID: "home", Label: "Home", Shortcut: "alt+1"},
			{ID: "about", Label: "About"},
		}},
		{Title: "Settings", Entries: []search.Suggestion{
			{ID: "toggle-theme", Label: "Toggle Theme", Shortcut: "alt+t"},
		}},
	}
}

func TestRenderPaletteRowMap(t *testing.T) {
	r := NewRenderer(true)
	out, rows := r.RenderPalette(PaletteState{Groups: groups(), SelectedIndex: 1, Width: 60})

	want := []int{-1, -1, -1, 0, 1, -1, 2}
	got := make([]int, len(rows))
	for i, row := range rows {
		got[i] = row.Index
	}
	assert.Equal(t, want, got)
	assert.Contains(t, out, "Toggle Theme")
	assert.Contains(t, out, "alt+t")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestRenderPaletteEmpty(t *testing.T) {
	r := NewRenderer(true)
	out, rows := r.RenderPalette(PaletteState{Query: "zzz", Width: 40})
	assert.Contains(t, out, "No results found.")
	assert.Len(t, rows, 3)
}

func TestRenderPaletteScrollsToSelection(t *testing.T) {
	var entries []search.Suggestion
	for i := 0; i < 30; i++ {
		entries = append(entries, search.Suggestion{ID: string(rune('a' + i%26)), Label: "Entry"})
	}
	r := NewRenderer(true)
	_, rows := r.RenderPalette(PaletteState{
		Groups:        []search.Group{{Title: "Suggestions", Entries: entries}},
		SelectedIndex: 25,
		Width:         40,
		MaxRows:       8,
	})
	require.Len(t, rows, 8)
	found := false
	for _, row := range rows {
		if row.Index == 25 {
			found = true
		}
	}
	assert.True(t, found, "selected row stays visible")
}

func TestOverlayPlacesPopup(t *testing.T) {
	base := strings.Repeat(strings.Repeat("x", 20)+"\n", 11) + strings.Repeat("x", 20)
	out := Overlay(base, "AB\nCD", 20, 12, true)
	lines := strings.Split(stripANSI(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "xxxxxxxxxABxxxxxxxxx", lines[2])
	assert.Equal(t, "xxxxxxxxxCDxxxxxxxxx", lines[3])
	assert.Equal(t, strings.Repeat("x", 20), lines[0])

	centered := strings.Split(stripANSI(Overlay(base, "AB\nCD", 20, 12, false)), "\n")
	assert.Equal(t, "xxxxxxxxxABxxxxxxxxx", centered[5])
}

func TestOverlayWideRunes(t *testing.T) {
	base := "日本語テキスト日本語"
	out := stripANSI(Overlay(base, "--", 20, 1, true))
	assert.True(t, strings.HasPrefix(out, "日本語テ"))
	assert.Contains(t, out, "--")
}

func sectionData() SectionData {
	return SectionData{
		Profile: domain.Profile{Name: "Alex Rivera", Role: "Engineer", Email: "alex@example.com"},
		Projects: []domain.Project{
			{ID: "a", Title: "termdash", Summary: "terminal dashboards", Category: "tools"},
			{ID: "b", Title: "shortlink", Summary: "url shortener", Category: "web"},
		},
		Filters:   []string{"all", "tools", "web"},
		Filter:    "all",
		Skills:    []domain.Skill{{Name: "Go", Category: "languages", Level: 5}},
		Stats:     []domain.StatSample{{Label: "Commits", Value: 12345}},
		Languages: []domain.LanguageShare{{Name: "Go", Percent: 61.5}},
		Resume: domain.Resume{
			Headline: "Builds tools.",
			Experience: []domain.ResumeItem{{
				Title: "Engineer", Organization: "Acme", Start: "2020", End: "now",
				Bullets: []string{"Shipped things"},
			}},
		},
		Chat: []contact.Line{
			{From: contact.Bot, Text: "What's your name?"},
			{From: contact.Visitor, Text: "Ada"},
		},
		Width: 90,
		Tier:  responsive.Desktop,
	}
}

func TestRenderSections(t *testing.T) {
	r := NewRenderer(true)
	d := sectionData()

	cases := map[domain.Section][]string{
		domain.SectionHome:     {"Alex Rivera", "Engineer"},
		domain.SectionProjects: {"termdash", "shortlink", "tools"},
		domain.SectionSkills:   {"Go"},
		domain.SectionStats:    {"12,345", "61.5%"},
		domain.SectionResume:   {"EXPERIENCE", "Engineer · Acme (2020 - now)", "Shipped things"},
		domain.SectionContact:  {"What's your name?", "Ada"},
	}
	for sec, wants := range cases {
		out := stripANSI(r.RenderSection(sec, d))
		for _, w := range wants {
			assert.Contains(t, out, w, string(sec))
		}
	}
}

func TestHighlightMatchIsRuneWise(t *testing.T) {
	r := NewRenderer(true)

	cases := []struct {
		text, query, want string
	}{
		{"Projects", "JECT", "Pro[ject]s"},
		{"İstanbul trip", "trip", "İstanbul [trip]"},
		{"İİİ", "ii", "[İİ]İ"},
		{"Ünïcode", "zzz", "Ünïcode"},
		{"Home", "", "Home"},
	}
	for _, tc := range cases {
		var out string
		require.NotPanics(t, func() { out = r.highlightMatch(tc.text, tc.query) })
		hl := highlighted(tc.want)
		if hl == "" {
			assert.Equal(t, tc.want, out, tc.text)
			continue
		}
		got := strings.Replace(out, r.styles.Highlight.Render(hl), "["+hl+"]", 1)
		assert.Equal(t, tc.want, got, tc.text)
	}
}

// highlighted returns the bracketed part of want, or "" when there is none
func highlighted(want string) string {
	start, end := strings.Index(want, "["), strings.Index(want, "]")
	if start < 0 || end < start {
		return ""
	}
	return want[start+1 : end]
}

func TestStatsBarsClampPercent(t *testing.T) {
	r := NewRenderer(true)
	d := sectionData()
	d.Languages = []domain.LanguageShare{{Name: "Go", Percent: 140}, {Name: "Rust", Percent: -5}}

	var out string
	require.NotPanics(t, func() { out = stripANSI(r.RenderSection(domain.SectionStats, d)) })
	assert.Contains(t, out, "Rust")
}

func TestChatVisitorIsRightAligned(t *testing.T) {
	r := NewRenderer(true)
	out := stripANSI(r.renderChat(sectionData()))
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, " "), "visitor bubble is padded from the left")
}

func TestRenderFramesToHeight(t *testing.T) {
	r := NewRenderer(false)
	out := r.Render(ViewState{
		Width:        80,
		Height:       20,
		Screen:       ScreenContent,
		SectionTitle: "Projects",
		Body:         "body",
		Error:        "failed to load content",
		Footer:       "esc back",
		ThemeLabel:   "theme: Light",
	})
	plain := stripANSI(out)
	assert.Len(t, strings.Split(plain, "\n"), 20)
	assert.Contains(t, plain, "folio / Projects")
	assert.Contains(t, plain, "failed to load content")
	assert.Contains(t, plain, "theme: Light")
}

func TestRenderCrashPanel(t *testing.T) {
	r := NewRenderer(true)
	out := stripANSI(r.Render(ViewState{Width: 80, Height: 20, Screen: ScreenContent, Crashed: true}))
	assert.Contains(t, out, "Something went wrong")
	assert.Contains(t, out, "Press r to try again")
}

func TestMarkdownCaches(t *testing.T) {
	md := NewMarkdown()
	first := md.Render("# Title\n\nSome *text*.", 60, true)
	assert.Contains(t, stripANSI(first), "Title")
	assert.Equal(t, first, md.Render("# Title\n\nSome *text*.", 60, true))
	_, cached := md.rendered.Get(cacheKey("# Title\n\nSome *text*.", 60, true))
	assert.True(t, cached)

	md.Flush()
	_, cached = md.rendered.Get(cacheKey("# Title\n\nSome *text*.", 60, true))
	assert.False(t, cached)
}

func TestCardWidthFloor(t *testing.T) {
	assert.Equal(t, 30, cardWidth(90, 3))
	assert.Equal(t, 16, cardWidth(20, 3))
	assert.Equal(t, 20, cardWidth(20, 0))
}
