package input

import (
	"folio/internal/domain"
	"folio/internal/ui/services/search"
	"folio/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Session *state.Session
	// Failed is set while the content panel shows the "Try again" fallback
	Failed bool
}

// SearchText returns the applied search query
func (c *ModelContext) SearchText() string {
	return c.Session.State().SearchText
}

// HasSelection returns true if a suggestion is highlighted
func (c *ModelContext) HasSelection() bool {
	_, ok := c.Session.Selected()
	return ok
}

// ActiveSection returns the open section, if any
func (c *ModelContext) ActiveSection() (domain.Section, bool) {
	sec := c.Session.State().ActiveSection
	if sec == nil {
		return "", false
	}
	return *sec, true
}

// ErrorShown returns true while the load error banner is visible
func (c *ModelContext) ErrorShown() bool {
	return c.Session.State().Error != nil
}

// Crashed returns true while the content panel is in its fallback state
func (c *ModelContext) Crashed() bool {
	return c.Failed
}

// Suggestions returns every suggestion, unfiltered, for shortcut lookup
func (c *ModelContext) Suggestions() []search.Suggestion {
	return c.Session.AllSuggestions()
}
