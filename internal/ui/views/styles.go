package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors for one effective theme
type Palette struct {
	Fg      lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Select  lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var (
	darkPalette = Palette{
		Fg:      lipgloss.Color("252"),
		Muted:   lipgloss.Color("241"),
		Accent:  lipgloss.Color("99"),
		Select:  lipgloss.Color("238"),
		Border:  lipgloss.Color("241"),
		Error:   lipgloss.Color("203"),
		Success: lipgloss.Color("78"),
		Warning: lipgloss.Color("214"),
	}
	lightPalette = Palette{
		Fg:      lipgloss.Color("235"),
		Muted:   lipgloss.Color("244"),
		Accent:  lipgloss.Color("25"),
		Select:  lipgloss.Color("253"),
		Border:  lipgloss.Color("248"),
		Error:   lipgloss.Color("160"),
		Success: lipgloss.Color("28"),
		Warning: lipgloss.Color("130"),
	}
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Dark bool

	Title       lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	GroupTitle  lipgloss.Style
	Shortcut    lipgloss.Style
	PaletteBox  lipgloss.Style
	InfoBox     lipgloss.Style
	Card        lipgloss.Style
	Banner      lipgloss.Style
	Toast       lipgloss.Style
	Success     lipgloss.Style
	Bot         lipgloss.Style
	Visitor     lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Bar         lipgloss.Style
}

// NewStyles creates the styles for the dark or light theme
func NewStyles(dark bool) *Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return &Styles{
		Dark: dark,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Dim:  lipgloss.NewStyle().Foreground(p.Muted),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Foreground(p.Fg).
			Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(p.Select),
		GroupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted).
			MarginTop(1),
		Shortcut: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		PaletteBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Border).
			Padding(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Foreground(p.Error).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Error).
			PaddingLeft(1),
		Toast:     lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		Success:   lipgloss.NewStyle().Foreground(p.Success),
		Bot:       lipgloss.NewStyle().Foreground(p.Fg).PaddingLeft(1),
		Visitor:   lipgloss.NewStyle().Foreground(p.Accent).PaddingLeft(1),
		Tab:       lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true).Padding(0, 1),
		Bar:       lipgloss.NewStyle().Foreground(p.Accent),
	}
}
