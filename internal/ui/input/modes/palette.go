package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// PaletteMode drives the search field and the suggestion list
type PaletteMode struct {
	TextInputMode
}

func NewPaletteMode(ti *textinput.Model) *PaletteMode {
	return &PaletteMode{
		TextInputMode: NewTextInputMode(types.ModePalette, "palette", "Type a command or search...", ti),
	}
}

// Enter restores the session's query into the field
func (m *PaletteMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil && ctx != nil {
		m.textInput.SetValue(ctx.SearchText())
		m.textInput.CursorEnd()
	}
	return nil
}

func (m *PaletteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, ctx); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyCtrlP:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyUp}}, true
	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyDown}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyUp}}, true
	case tea.KeyEnter:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyEnter}}, true
	case tea.KeyEsc:
		if m.textInput != nil && m.value() != "" {
			m.textInput.Reset()
			return []types.Action{types.UpdateSearchAction{Text: "", Immediate: true}}, true
		}
		return []types.Action{types.PaletteKeyAction{Key: state.KeyEscape}}, true
	}

	// Let the handler feed the text input
	return nil, false
}
