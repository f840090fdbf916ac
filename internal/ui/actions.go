package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/contact"
	"folio/internal/domain"
	"folio/internal/logger"
	"folio/internal/storage"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateSearchAction:
		if a.Immediate || m.searchDelay == 0 {
			m.searchPending = false
			m.searchSeq++
			m.session.SetSearch(a.Text)
			return nil
		}
		m.pendingSearch = a.Text
		m.searchPending = true
		m.searchSeq++
		seq := m.searchSeq
		return tea.Tick(m.searchDelay, func(_ time.Time) tea.Msg {
			return searchTickMsg{seq: seq}
		})

	case inputtypes.PaletteKeyAction:
		m.flushSearch()
		if a.Key == state.KeyToggle || a.Key == state.KeyEscape {
			m.showHelp = false
		}
		res := m.session.HandleKey(a.Key)
		if res.Activated != nil {
			logger.Debug("UI: activated %s", res.Activated.ID)
		}
		m.input.SetText(m.session.State().SearchText)
		return nil

	case inputtypes.ShortcutAction:
		m.flushSearch()
		for _, s := range m.session.AllSuggestions() {
			if s.ID == a.ID {
				s.Run()
				m.session.SetSearch("")
				m.input.SetText("")
				return nil
			}
		}
		return nil

	case inputtypes.ScrollAction:
		switch a.Direction {
		case "up":
			m.viewport.LineUp(1)
		case "down":
			m.viewport.LineDown(1)
		case "pageup":
			m.viewport.ViewUp()
		case "pagedown":
			m.viewport.ViewDown()
		case "top":
			m.viewport.GotoTop()
		case "bottom":
			m.viewport.GotoBottom()
		}
		return nil

	case inputtypes.CycleFilterAction:
		filters := m.portfolio.ProjectCategories()
		if len(filters) == 0 {
			return nil
		}
		m.filterIdx = (m.filterIdx + a.Delta + len(filters)) % len(filters)
		if m.store != nil {
			if err := m.store.Set(storage.ProjectFilterKey, m.currentFilter()); err != nil {
				logger.Warn("UI: saving project filter: %v", err)
			}
		}
		m.viewport.GotoTop()
		return nil

	case inputtypes.DismissErrorAction:
		m.session.DismissError()
		return nil

	case inputtypes.RetryAction:
		m.crashed = false
		return nil

	case inputtypes.OpenPagerAction:
		text := views.ResumeText(m.portfolio.Resume, 100)
		return m.showInPager(m.portfolio.Profile.Name+" - Resume", text)

	case inputtypes.CopyEmailAction:
		return copyToClipboard("email", m.portfolio.Profile.Email)

	case inputtypes.ToggleThemeAction:
		m.session.ToggleTheme()
		return nil

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		return nil

	case inputtypes.ChatSubmitAction:
		return m.chatReply(a.Text)

	case inputtypes.ChatRestartAction:
		m.flow.Restart()
		return nil

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) chatReply(text string) tea.Cmd {
	done, err := m.flow.Reply(text)
	switch {
	case errors.Is(err, contact.ErrInvalidEmail):
		return m.showToast("Please enter a valid email address")
	case errors.Is(err, contact.ErrEmptyReply):
		return m.showToast("Please type a reply")
	case errors.Is(err, contact.ErrFinished):
		return m.showToast("Press ctrl+r to send another message")
	case err != nil:
		return m.showToast(err.Error())
	}
	if done {
		return m.submitContact(m.flow.Draft())
	}
	m.viewport.GotoBottom()
	return nil
}

// refreshContent re-renders the open section into the viewport. A panic
// while rendering marks the panel crashed instead of taking the program
// down; r re-mounts it.
func (m *Model) refreshContent() {
	sec, ok := m.session.Navigation().Section()
	if !ok || m.crashed {
		return
	}
	atBottom := m.viewport.AtBottom()
	body, err := m.safeRender(sec)
	if err != nil {
		logger.Error("UI: rendering %s: %v", sec, err)
		m.crashed = true
		return
	}
	m.viewport.SetContent(body)
	if sec == domain.SectionContact && atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) safeRender(sec domain.Section) (body string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return m.renderer.RenderSection(sec, m.sectionData()), nil
}
