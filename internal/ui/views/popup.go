package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Overlay draws popup centered over base. The base is greyed out so the
// popup reads as modal. When keepTop is set the popup sits near the top,
// which is where the palette lives.
func Overlay(base, popup string, width, height int, keepTop bool) string {
	baseLines := strings.Split(stripANSI(base), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)
	x := (width - popupW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if keepTop {
		y = height / 6
	}
	if y < 0 {
		y = 0
	}

	out := make([]string, len(baseLines))
	for row, plain := range baseLines {
		i := row - y
		if i < 0 || i >= len(popupLines) {
			out[row] = greyStyle.Render(plain)
			continue
		}
		pl := popupLines[i]
		left := runewidth.FillRight(runewidth.Truncate(plain, x, ""), x)
		right := ""
		if cut := x + lipgloss.Width(pl); runewidth.StringWidth(plain) > cut {
			right = runewidth.TruncateLeft(plain, cut, "")
		}
		out[row] = greyStyle.Render(left) + pl + greyStyle.Render(right)
	}
	if len(out) > height && height > 0 {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

var greyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// stripANSI removes ANSI color/style codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
