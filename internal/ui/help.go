package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "folio/internal/ui/input/types"
)

// keyMap lists the bindings shown in the footer and the help overlay for
// one input mode. Dispatch lives in the input modes; these are labels.
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

func bind(keys, help string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help))
}

var (
	keyToggle   = bind("ctrl+k", "palette")
	keyUpDown   = bind("↑/↓", "move")
	keyEnter    = bind("enter", "open")
	keyEsc      = bind("esc", "back")
	keyTheme    = bind("t", "theme")
	keyHelp     = bind("?", "help")
	keyQuit     = bind("q", "quit")
	keyScroll   = bind("j/k", "scroll")
	keyPage     = bind("pgup/pgdn", "page")
	keyFilter   = bind("←/→", "filter")
	keyPager    = bind("p", "pager")
	keyCopy     = bind("c", "copy email")
	keyRetry    = bind("r", "retry")
	keyDismiss  = bind("x", "dismiss error")
	keyBack     = bind("backspace", "back")
	keyShortcut = bind("alt+1…7", "jump")
	keySend     = bind("enter", "send")
	keyRestart  = bind("ctrl+r", "restart chat")
	keyCopyChat = bind("ctrl+y", "copy email")
)

var keyMaps = map[inputtypes.Mode]keyMap{
	inputtypes.ModePalette: {
		short: []key.Binding{keyUpDown, keyEnter, keyEsc, keyShortcut},
		full: [][]key.Binding{
			{keyUpDown, keyEnter, keyEsc, keyToggle},
			{keyShortcut, bind("alt+t", "theme"), bind("alt+g", "github")},
		},
	},
	inputtypes.ModeContent: {
		short: []key.Binding{keyEsc, keyScroll, keyTheme, keyHelp, keyQuit},
		full: [][]key.Binding{
			{keyScroll, keyPage, keyFilter, keyEsc, keyBack},
			{keyPager, keyCopy, keyRetry, keyDismiss},
			{keyToggle, keyShortcut, keyTheme, keyHelp, keyQuit},
		},
	},
	inputtypes.ModeChat: {
		short: []key.Binding{keySend, keyEsc, keyRestart},
		full: [][]key.Binding{
			{keySend, keyRestart, keyCopyChat, keyEsc},
			{keyToggle, keyShortcut},
		},
	},
	inputtypes.ModeHidden: {
		short: []key.Binding{keyToggle, keyTheme, keyHelp, keyQuit},
		full: [][]key.Binding{
			{bind("/", "palette"), keyToggle, keyShortcut},
			{keyTheme, keyHelp, keyQuit},
		},
	},
}

// footerHelp renders the one-line help for the current mode
func (m *Model) footerHelp() string {
	return m.help.ShortHelpView(keyMaps[m.input.CurrentMode()].ShortHelp())
}

// helpOverlay renders the full help for the current mode
func (m *Model) helpOverlay() string {
	title := m.renderer.Styles().Title.Render("folio help") +
		m.renderer.Styles().Dim.Render(" · "+m.input.ModeName()) + "\n\n"
	return title + m.help.FullHelpView(keyMaps[m.input.CurrentMode()].FullHelp())
}
