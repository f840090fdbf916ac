package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// ChatMode takes replies for the scripted contact conversation
type ChatMode struct {
	TextInputMode
}

func NewChatMode(ti *textinput.Model) *ChatMode {
	return &ChatMode{
		TextInputMode: NewTextInputMode(types.ModeChat, "chat", "Type your reply...", ti),
	}
}

func (m *ChatMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, ctx); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyEscape}}, true
	case tea.KeyEnter:
		text := m.value()
		if m.textInput != nil {
			m.textInput.Reset()
		}
		return []types.Action{types.ChatSubmitAction{Text: text}}, true
	case tea.KeyCtrlR:
		return []types.Action{types.ChatRestartAction{}}, true
	case tea.KeyCtrlY:
		return []types.Action{types.CopyEmailAction{}}, true
	}

	// Let the handler feed the text input
	return nil, false
}
