package search

import (
	"folio/internal/domain"
)

// Suggestion is a navigation entry bound to the callback that activates it
type Suggestion struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Icon        string          `json:"icon,omitempty"`
	Category    domain.Category `json:"category"`
	Shortcut    string          `json:"shortcut,omitempty"`
	Description string          `json:"description,omitempty"`
	Route       string          `json:"route,omitempty"`
	Action      func()          `json:"-"`
}

// Run invokes the suggestion's action. A nil action is a no-op.
func (s Suggestion) Run() {
	if s.Action != nil {
		s.Action()
	}
}

// Group is one category heading and the suggestions under it
type Group struct {
	Category domain.Category `json:"category"`
	Title    string          `json:"title"`
	Entries  []Suggestion    `json:"entries"`
}

// Callbacks are the host capabilities suggestions can invoke. Any of them
// may be nil; invoking a suggestion whose callback is missing does nothing.
type Callbacks struct {
	Navigate func(route string)
	Actions  map[domain.ActionKind]func(arg string)
}
