package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"folio/internal/contact"
	"folio/internal/domain"
	"folio/internal/responsive"
)

// SectionData is the content a section body is drawn from
type SectionData struct {
	Profile   domain.Profile
	Projects  []domain.Project
	Filters   []string
	Filter    string
	Skills    []domain.Skill
	Stats     []domain.StatSample
	Languages []domain.LanguageShare
	Resume    domain.Resume
	Chat      []contact.Line
	Width     int
	Tier      responsive.Tier
}

// RenderSection draws the body for section. Unknown sections render the
// not-found text.
func (r *Renderer) RenderSection(section domain.Section, d SectionData) string {
	switch section {
	case domain.SectionHome:
		return r.renderHome(d)
	case domain.SectionAbout:
		return r.renderAbout(d)
	case domain.SectionProjects:
		return r.renderProjects(d)
	case domain.SectionSkills:
		return r.renderSkills(d)
	case domain.SectionStats:
		return r.renderStats(d)
	case domain.SectionResume:
		return r.renderResume(d)
	case domain.SectionContact:
		return r.renderChat(d)
	default:
		return r.styles.Dim.Render("Page not found. Press esc to go back.")
	}
}

func (r *Renderer) renderHome(d SectionData) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(d.Profile.Name))
	b.WriteString("\n")
	b.WriteString(d.Profile.Role)
	if d.Profile.Location != "" {
		b.WriteString(r.styles.Dim.Render(" · " + d.Profile.Location))
	}
	b.WriteString("\n\n")
	b.WriteString(wordwrap.String(d.Profile.Tagline, d.Width))
	b.WriteString("\n\n")
	for _, l := range d.Profile.Links {
		b.WriteString(fmt.Sprintf("%s %s\n", r.styles.Dim.Render(l.Label+":"), l.URL))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("Press ctrl+k to search, ? for help"))
	return b.String()
}

func (r *Renderer) renderAbout(d SectionData) string {
	return r.md.Render(d.Profile.About, d.Width, r.styles.Dark)
}

func (r *Renderer) renderProjects(d SectionData) string {
	var b strings.Builder

	tabs := make([]string, 0, len(d.Filters))
	for _, f := range d.Filters {
		if f == d.Filter {
			tabs = append(tabs, r.styles.ActiveTab.Render(f))
		} else {
			tabs = append(tabs, r.styles.Tab.Render(f))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("←/→ change filter"))
	b.WriteString("\n\n")

	if len(d.Projects) == 0 {
		b.WriteString(r.styles.Dim.Render("No projects in this category."))
		return b.String()
	}

	cards := make([]string, 0, len(d.Projects))
	cardW := cardWidth(d.Width, d.Tier.Columns())
	for _, p := range d.Projects {
		cards = append(cards, r.projectCard(p, cardW))
	}
	b.WriteString(grid(cards, d.Tier.Columns()))
	return b.String()
}

func (r *Renderer) projectCard(p domain.Project, width int) string {
	inner := width - 4
	title := p.Title
	if p.Featured {
		title += " ★"
	}
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(runewidth.Truncate(title, inner, "…")))
	b.WriteString("\n")
	b.WriteString(wordwrap.String(p.Summary, inner))
	b.WriteString("\n")
	meta := fmt.Sprintf("%d", p.Year)
	if len(p.Tags) > 0 {
		meta += " · #" + strings.Join(p.Tags, " #")
	}
	b.WriteString(r.styles.Dim.Render(runewidth.Truncate(meta, inner, "…")))
	if p.RepoURL != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Shortcut.Render(runewidth.Truncate(p.RepoURL, inner, "…")))
	}
	return r.styles.Card.Width(width - 2).Render(b.String())
}

func (r *Renderer) renderSkills(d SectionData) string {
	cols := d.Tier.Columns()
	cellW := cardWidth(d.Width, cols)
	cells := make([]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		stars := strings.Repeat("★", s.Level) + strings.Repeat("☆", 5-s.Level)
		name := runewidth.Truncate(s.Name, cellW-8, "…")
		cell := runewidth.FillRight(name, cellW-7) + r.styles.Bar.Render(stars)
		cells = append(cells, cell)
	}
	return grid(cells, cols)
}

func (r *Renderer) renderStats(d SectionData) string {
	cols := d.Tier.Columns()
	cellW := cardWidth(d.Width, cols)
	cards := make([]string, 0, len(d.Stats))
	for _, s := range d.Stats {
		value := r.styles.Title.Render(humanize.Comma(s.Value))
		if s.Unit != "" {
			value += " " + s.Unit
		}
		cards = append(cards, r.styles.Card.Width(cellW-2).Render(value+"\n"+r.styles.Dim.Render(s.Label)))
	}

	var b strings.Builder
	b.WriteString(grid(cards, cols))
	b.WriteString("\n\n")
	b.WriteString(r.styles.GroupTitle.UnsetMarginTop().Render("Languages"))
	b.WriteString("\n")

	barW := d.Width - 24
	if barW < 10 {
		barW = 10
	}
	for _, l := range d.Languages {
		filled := min(max(int(l.Percent/100*float64(barW)), 0), barW)
		bar := r.styles.Bar.Render(strings.Repeat("█", filled)) + r.styles.Dim.Render(strings.Repeat("░", barW-filled))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			runewidth.FillRight(runewidth.Truncate(l.Name, 12, "…"), 12),
			bar,
			humanize.FtoaWithDigits(l.Percent, 1)+"%"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ResumeText is the resume as plain text, used by both the section and the
// pager
func ResumeText(res domain.Resume, width int) string {
	var b strings.Builder
	if res.Headline != "" {
		b.WriteString(wordwrap.String(res.Headline, width))
		b.WriteString("\n\n")
	}
	writeItems := func(title string, items []domain.ResumeItem) {
		if len(items) == 0 {
			return
		}
		b.WriteString(strings.ToUpper(title))
		b.WriteString("\n")
		for _, it := range items {
			b.WriteString(fmt.Sprintf("%s · %s (%s - %s)\n", it.Title, it.Organization, it.Start, it.End))
			for _, bullet := range it.Bullets {
				b.WriteString(wordwrap.String("  - "+bullet, width))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	writeItems("Experience", res.Experience)
	writeItems("Education", res.Education)
	writeItems("Certificates", res.Certificates)
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderResume(d SectionData) string {
	return ResumeText(d.Resume, d.Width) + "\n\n" + r.styles.Help.Render("p open in pager · c copy email")
}

func (r *Renderer) renderChat(d SectionData) string {
	bubbleW := d.Width * 3 / 4
	if bubbleW < 20 {
		bubbleW = d.Width
	}
	var b strings.Builder
	for _, line := range d.Chat {
		text := wordwrap.String(line.Text, bubbleW)
		if line.From == contact.Visitor {
			bubble := r.styles.Visitor.Render(text)
			b.WriteString(lipgloss.PlaceHorizontal(d.Width, lipgloss.Right, bubble))
		} else {
			b.WriteString(r.styles.Bot.Render(text))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func cardWidth(total, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := total / cols
	if w < 16 {
		w = 16
	}
	return w
}

// grid lays cells out in rows of cols
func grid(cells []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := i + cols
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
