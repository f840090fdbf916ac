package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Screen is which top-level layout to draw
type Screen int

const (
	ScreenLanding Screen = iota // palette closed, landing page only
	ScreenPalette               // palette open over the landing page
	ScreenContent               // a section in the content panel
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen Screen

	Landing string // rendered landing page
	Palette PaletteState

	SectionTitle string
	Body         string // viewport view of the section
	Loading      bool
	Spinner      string
	Crashed      bool
	ChatInput    string // rendered text input for the contact chat

	Error      string
	Toast      string
	ThemeLabel string
	Footer     string // short help
	ShowHelp   bool
	HelpBody   string

	// BottomPadding keeps the footer clear of an on-screen keyboard
	BottomPadding int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	md     *Markdown
}

// NewRenderer creates a renderer for the dark or light theme
func NewRenderer(dark bool) *Renderer {
	return &Renderer{styles: NewStyles(dark), md: NewMarkdown()}
}

// SetDark switches palettes. Cached markdown is keyed by theme, so it stays.
func (r *Renderer) SetDark(dark bool) {
	if r.styles.Dark != dark {
		r.styles = NewStyles(dark)
	}
}

func (r *Renderer) Dark() bool        { return r.styles.Dark }
func (r *Renderer) Styles() *Styles   { return r.styles }
func (r *Renderer) Markdown() *Markdown { return r.md }

// PaletteTop is the row the palette box starts on for a screen height
func PaletteTop(height int) int {
	return height / 6
}

// Render produces the complete view
func (r *Renderer) Render(st ViewState) string {
	var out string
	switch st.Screen {
	case ScreenContent:
		out = r.renderContent(st)
	case ScreenPalette:
		base := r.renderLanding(st)
		box, _ := r.RenderPalette(st.Palette)
		out = Overlay(base, box, st.Width, st.Height, true)
	default:
		out = r.renderLanding(st)
	}

	if st.ShowHelp {
		out = Overlay(out, r.styles.InfoBox.Render(st.HelpBody), st.Width, st.Height, false)
	}
	return out
}

func (r *Renderer) renderLanding(st ViewState) string {
	body := st.Landing
	return r.frame(st, r.header(st, ""), body)
}

func (r *Renderer) renderContent(st ViewState) string {
	var body strings.Builder
	if st.Error != "" {
		body.WriteString(r.styles.Banner.Render(st.Error + "  (x dismiss)"))
		body.WriteString("\n\n")
	}
	switch {
	case st.Crashed:
		body.WriteString(r.styles.Banner.Render("Something went wrong rendering this section."))
		body.WriteString("\n")
		body.WriteString(r.styles.Help.Render("Press r to try again, esc to go back."))
	case st.Loading:
		body.WriteString(st.Spinner + " Loading…")
	default:
		body.WriteString(st.Body)
	}
	if st.ChatInput != "" && !st.Loading && !st.Crashed {
		body.WriteString("\n\n")
		body.WriteString("› " + st.ChatInput)
	}
	return r.frame(st, r.header(st, st.SectionTitle), body.String())
}

func (r *Renderer) header(st ViewState, section string) string {
	logo := r.styles.Title.Render("folio")
	if section != "" {
		logo += r.styles.Dim.Render(" / ") + section
	}
	right := r.styles.Dim.Render(st.ThemeLabel)
	if st.Toast != "" {
		right = r.styles.Toast.Render(st.Toast) + "  " + right
	}

	avail := st.Width - 4
	if avail <= 0 {
		avail = 76
	}
	pad := avail - lipgloss.Width(logo) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return logo + strings.Repeat(" ", pad) + right
}

// frame stacks header, body and footer and pins the footer to the bottom
func (r *Renderer) frame(st ViewState, header, body string) string {
	footer := r.styles.Help.Render(st.Footer)

	height := st.Height - 2 // Main padding
	if height <= 0 {
		height = 22
	}
	height -= st.BottomPadding

	lines := []string{header, ""}
	lines = append(lines, strings.Split(body, "\n")...)
	avail := height - 1
	if avail < 1 {
		avail = 1
	}
	if len(lines) > avail {
		lines = lines[:avail]
	}
	for len(lines) < avail {
		lines = append(lines, "")
	}
	lines = append(lines, footer)
	for i := 0; i < st.BottomPadding; i++ {
		lines = append(lines, "")
	}

	width := st.Width - 4
	if width > 0 {
		for i, l := range lines {
			if lipgloss.Width(l) > width && !strings.Contains(l, "\x1b") {
				lines[i] = runewidth.Truncate(l, width, "…")
			}
		}
	}
	return r.styles.Main.Render(strings.Join(lines, "\n"))
}
