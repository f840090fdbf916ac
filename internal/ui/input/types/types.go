package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/domain"
	"folio/internal/ui/services/search"
)

// Mode represents an input mode
type Mode int

const (
	ModePalette Mode = iota
	ModeContent
	ModeChat
	ModeHidden
)

func (m Mode) String() string {
	switch m {
	case ModePalette:
		return "palette"
	case ModeContent:
		return "content"
	case ModeChat:
		return "chat"
	case ModeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	SearchText() string
	HasSelection() bool
	ActiveSection() (domain.Section, bool)
	ErrorShown() bool
	Crashed() bool
	Suggestions() []search.Suggestion
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
