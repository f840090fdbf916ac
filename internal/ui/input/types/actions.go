package types

import (
	"folio/internal/ui/state"
)

// Palette actions
type PaletteKeyAction struct {
	Key state.Key
}

func (a PaletteKeyAction) Type() string { return "palette_key" }

// UpdateSearchAction carries the search field's text. The model debounces
// it unless Immediate is set.
type UpdateSearchAction struct {
	Text      string
	Immediate bool
}

func (a UpdateSearchAction) Type() string { return "update_search" }

// ShortcutAction runs the suggestion bound to a keyboard shortcut
type ShortcutAction struct {
	ID string
}

func (a ShortcutAction) Type() string { return "shortcut" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Content panel actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "top", "bottom"
}

func (a ScrollAction) Type() string { return "scroll" }

type CycleFilterAction struct {
	Delta int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type DismissErrorAction struct{}

func (a DismissErrorAction) Type() string { return "dismiss_error" }

// RetryAction re-mounts the content panel after a render failure
type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type CopyEmailAction struct{}

func (a CopyEmailAction) Type() string { return "copy_email" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Chat actions
type ChatSubmitAction struct {
	Text string
}

func (a ChatSubmitAction) Type() string { return "chat_submit" }

type ChatRestartAction struct{}

func (a ChatRestartAction) Type() string { return "chat_restart" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
