package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// HiddenMode is active while the palette overlay is closed and the landing
// page is shown on its own
type HiddenMode struct{}

func NewHiddenMode() *HiddenMode {
	return &HiddenMode{}
}

func (m *HiddenMode) Name() string {
	return "hidden"
}

func (m *HiddenMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HiddenMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HiddenMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, ctx); ok {
		return actions, true
	}

	switch msg.String() {
	case "/", ":", "enter":
		return []types.Action{types.PaletteKeyAction{Key: state.KeyToggle}}, true
	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q", "esc":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// Consume everything else so stray keys do nothing
	return nil, true
}
