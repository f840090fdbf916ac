package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/services/navigation"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// handleMouse maps pointer input onto the session: hovering a palette row
// selects it, clicking activates it, the wheel scrolls content and a
// horizontal wheel to the right is a swipe back
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	st := m.session.State()

	switch msg.Button {
	case tea.MouseButtonWheelRight:
		m.session.Swipe(true)
		return nil
	case tea.MouseButtonWheelLeft:
		m.session.Swipe(false)
		return nil
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if st.ViewMode == navigation.ViewContent {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		return nil
	}

	if st.ViewMode != navigation.ViewPalette || !st.IsVisible {
		return nil
	}
	index, ok := m.paletteIndexAt(msg.Y)
	if !ok {
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion && m.caps.Hover:
		m.session.Hover(index)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.flushSearch()
		m.session.Hover(index)
		m.session.HandleKey(state.KeyEnter)
		m.input.SetText(m.session.State().SearchText)
	}
	return nil
}

// paletteIndexAt resolves a screen row to a suggestion index. The palette
// box starts at views.PaletteTop and has a one-row border.
func (m *Model) paletteIndexAt(y int) (int, bool) {
	row := y - views.PaletteTop(m.height) - 1
	if row < 0 || row >= len(m.paletteRows) {
		return 0, false
	}
	idx := m.paletteRows[row].Index
	return idx, idx >= 0
}
