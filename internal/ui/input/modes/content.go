package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/ui/input/types"
	"folio/internal/ui/state"
)

// ContentMode handles keys while a section is open in the content panel
type ContentMode struct{}

func NewContentMode() *ContentMode {
	return &ContentMode{}
}

func (m *ContentMode) Name() string {
	return "content"
}

func (m *ContentMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *ContentMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *ContentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := globalKeys(msg, ctx); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyEsc:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyEscape}}, true

	case tea.KeyBackspace:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyBackspace}}, true

	case tea.KeyUp:
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true

	case tea.KeyPgDown, tea.KeySpace:
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.ScrollAction{Direction: "top"}}, true

	case tea.KeyEnd:
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case tea.KeyLeft:
		if m.onSection(ctx, domain.SectionProjects) {
			return []types.Action{types.CycleFilterAction{Delta: -1}}, true
		}
		return nil, false

	case tea.KeyRight:
		if m.onSection(ctx, domain.SectionProjects) {
			return []types.Action{types.CycleFilterAction{Delta: 1}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.ScrollAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.ScrollAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.ScrollAction{Direction: "top"}}, true

	case "G":
		return []types.Action{types.ScrollAction{Direction: "bottom"}}, true

	case "h", "[":
		if m.onSection(ctx, domain.SectionProjects) {
			return []types.Action{types.CycleFilterAction{Delta: -1}}, true
		}
		return nil, false

	case "l", "]":
		if m.onSection(ctx, domain.SectionProjects) {
			return []types.Action{types.CycleFilterAction{Delta: 1}}, true
		}
		return nil, false

	case "r":
		// Try again after a render failure
		if ctx.Crashed() {
			return []types.Action{types.RetryAction{}}, true
		}
		return nil, false

	case "x":
		if ctx.ErrorShown() {
			return []types.Action{types.DismissErrorAction{}}, true
		}
		return nil, false

	case "p":
		if m.onSection(ctx, domain.SectionResume) {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, false

	case "c":
		return []types.Action{types.CopyEmailAction{}}, true

	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *ContentMode) onSection(ctx types.Context, want domain.Section) bool {
	sec, ok := ctx.ActiveSection()
	return ok && sec == want
}
