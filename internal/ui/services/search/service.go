package search

import (
	"strings"

	"folio/internal/domain"
	"folio/internal/logger"
)

// BuildSuggestions binds each entry to an action. Explicit actions use the
// matching Actions callback; routes wrap Navigate; inert entries get a
// no-op.
func BuildSuggestions(entries []domain.NavigationEntry, cb Callbacks) []Suggestion {
	out := make([]Suggestion, 0, len(entries))
	for _, e := range entries {
		s := Suggestion{
			ID:          e.ID,
			Label:       e.Label,
			Icon:        e.Icon,
			Category:    e.Category,
			Shortcut:    e.Shortcut,
			Description: e.Description,
		}

		switch t := e.Target.(type) {
		case domain.RouteTarget:
			s.Route = t.Path
			if nav := cb.Navigate; nav != nil {
				path := t.Path
				s.Action = func() { nav(path) }
			}
		case domain.ActionTarget:
			if fn := cb.Actions[t.Kind]; fn != nil {
				arg := t.Arg
				s.Action = func() { fn(arg) }
			}
		}

		out = append(out, s)
	}
	return out
}

// Filter returns the suggestions whose label or shortcut contains query,
// ignoring case. A blank query returns entries unchanged. Order is kept.
func Filter(entries []Suggestion, query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	out := make([]Suggestion, 0, len(entries))
	for _, e := range entries {
		if Matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

// Matches reports whether e matches an already lower-cased query
func Matches(e Suggestion, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(e.Label), lowerQuery) {
		return true
	}
	return e.Shortcut != "" && strings.Contains(strings.ToLower(e.Shortcut), lowerQuery)
}

// GroupByCategory partitions entries by category, keeping the order in
// which categories first appear and the order within each category
func GroupByCategory(entries []Suggestion) []Group {
	var groups []Group
	index := make(map[domain.Category]int, len(domain.Categories))
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, Group{Category: e.Category, Title: e.Category.Title()})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// Flatten lists grouped entries in display order
func Flatten(groups []Group) []Suggestion {
	var out []Suggestion
	for _, g := range groups {
		out = append(out, g.Entries...)
	}
	return out
}

// Service holds the palette's suggestions and the current query
type Service struct {
	all     []Suggestion
	query   string
	groups  []Group
	results []Suggestion
}

// NewService creates a search service over suggestions
func NewService(suggestions []Suggestion) *Service {
	s := &Service{}
	s.SetSuggestions(suggestions)
	return s
}

// SetSuggestions replaces the suggestion set and recomputes the results
func (s *Service) SetSuggestions(suggestions []Suggestion) {
	s.all = suggestions
	s.recompute()
}

// SetQuery updates the query. It reports whether the query changed.
func (s *Service) SetQuery(query string) bool {
	if query == s.query {
		return false
	}
	s.query = query
	s.recompute()
	return true
}

// Query returns the current query
func (s *Service) Query() string {
	return s.query
}

// Results returns the filtered suggestions in display order
func (s *Service) Results() []Suggestion {
	return s.results
}

// Groups returns the filtered suggestions grouped by category
func (s *Service) Groups() []Group {
	return s.groups
}

// Count returns the number of results
func (s *Service) Count() int {
	return len(s.results)
}

// At returns the result at index i
func (s *Service) At(i int) (Suggestion, bool) {
	if i < 0 || i >= len(s.results) {
		return Suggestion{}, false
	}
	return s.results[i], true
}

// All returns every suggestion, unfiltered
func (s *Service) All() []Suggestion {
	return s.all
}

// ShouldHighlight reports whether text contains the current query
func (s *Service) ShouldHighlight(text string) bool {
	q := strings.TrimSpace(s.query)
	if q == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(q))
}

func (s *Service) recompute() {
	s.groups = GroupByCategory(Filter(s.all, s.query))
	s.results = Flatten(s.groups)
	logger.Debug("Search: %q matched %d of %d", s.query, len(s.results), len(s.all))
}
