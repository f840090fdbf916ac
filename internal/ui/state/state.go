package state

import (
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/responsive"
	"folio/internal/theme"
	"folio/internal/ui/services/navigation"
	"folio/internal/ui/services/search"
	"folio/internal/ui/services/selection"
)

// InteractionState is a snapshot of one palette session
type InteractionState struct {
	SearchText      string
	SelectedIndex   int
	IsSearchFocused bool
	CurrentTheme    theme.Preference
	ViewMode        navigation.ViewMode
	ActiveSection   *domain.Section
	ResponsiveTier  responsive.Tier
	Error           *string
	IsVisible       bool
}

// Key is a palette-level key event, independent of the terminal encoding
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyToggle
)

// Result reports what a key did
type Result struct {
	Handled bool
	// Dismissed is set when Escape hid the palette
	Dismissed bool
	// Activated is the suggestion Enter ran, if any
	Activated *search.Suggestion
}

// Options configures a session
type Options struct {
	Entries []domain.NavigationEntry
	Theme   *theme.Controller
	Bus     eventbus.EventBus
	Loader  *Loader
	Tier    responsive.Tier
}

// Session owns the interaction state for as long as the palette is
// mounted. It is not safe for concurrent use; the UI update loop drives it.
type Session struct {
	entries   []domain.NavigationEntry
	search    *search.Service
	selection *selection.Service
	nav       *navigation.Service
	theme     *theme.Controller
	loader    *Loader
	keyboard  *responsive.KeyboardObserver

	tier     responsive.Tier
	widthPx  int
	focused  bool
	err      string
	hasError bool
}

// NewSession creates a session in palette mode with an empty search. Call
// Bind to attach host callbacks.
func NewSession(opts Options) *Session {
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader(false, nil)
	}
	s := &Session{
		entries:   opts.Entries,
		search:    search.NewService(nil),
		selection: selection.NewService(),
		nav:       navigation.NewService(opts.Bus),
		theme:     opts.Theme,
		loader:    loader,
		keyboard:  responsive.NewKeyboardObserver(),
		tier:      opts.Tier,
		focused:   true,
	}
	s.Bind(search.Callbacks{})
	return s
}

// Bind rebuilds the suggestions against new host callbacks. A Navigate
// callback that is nil falls back to the session's own route handling.
func (s *Session) Bind(cb search.Callbacks) {
	if cb.Navigate == nil {
		cb.Navigate = s.NavigateRoute
	}
	s.search.SetSuggestions(search.BuildSuggestions(s.entries, cb))
	s.selection.SetCount(s.search.Count())
}

// SetEntries replaces the navigation entries, e.g. after a content reload
func (s *Session) SetEntries(entries []domain.NavigationEntry, cb search.Callbacks) {
	s.entries = entries
	s.Bind(cb)
}

// State returns a snapshot of the session
func (s *Session) State() InteractionState {
	st := InteractionState{
		SearchText:      s.search.Query(),
		SelectedIndex:   s.selection.Index(),
		IsSearchFocused: s.focused,
		ViewMode:        s.nav.Mode(),
		ResponsiveTier:  s.tier,
		IsVisible:       s.nav.Visible(),
	}
	if s.theme != nil {
		st.CurrentTheme = s.theme.Preference()
	}
	if sec, ok := s.nav.Section(); ok {
		st.ActiveSection = &sec
	}
	if s.hasError {
		e := s.err
		st.Error = &e
	}
	return st
}

// Results returns the filtered suggestions in display order
func (s *Session) Results() []search.Suggestion {
	return s.search.Results()
}

// AllSuggestions returns every bound suggestion, ignoring the query
func (s *Session) AllSuggestions() []search.Suggestion {
	return s.search.All()
}

// Groups returns the filtered suggestions grouped by category
func (s *Session) Groups() []search.Group {
	return s.search.Groups()
}

// Selected returns the highlighted suggestion, if any
func (s *Session) Selected() (search.Suggestion, bool) {
	return s.search.At(s.selection.Index())
}

// SetSearch updates the query. Any change clears the selection.
func (s *Session) SetSearch(text string) {
	if !s.search.SetQuery(text) {
		return
	}
	s.selection.Reset()
	s.selection.SetCount(s.search.Count())
}

// SetSearchFocused records whether the search input has focus
func (s *Session) SetSearchFocused(focused bool) {
	s.focused = focused
}

// Hover moves the selection to a row under the pointer
func (s *Session) Hover(index int) {
	s.selection.Set(index)
}

// HandleKey applies a palette key
func (s *Session) HandleKey(k Key) Result {
	switch k {
	case KeyDown:
		if s.nav.Mode() != navigation.ViewPalette {
			return Result{}
		}
		s.selection.Down()
		return Result{Handled: true}

	case KeyUp:
		if s.nav.Mode() != navigation.ViewPalette {
			return Result{}
		}
		s.selection.Up()
		return Result{Handled: true}

	case KeyEnter:
		if s.nav.Mode() != navigation.ViewPalette {
			return Result{}
		}
		entry, ok := s.Selected()
		if !ok {
			return Result{}
		}
		entry.Run()
		s.SetSearch("")
		s.selection.Reset()
		return Result{Handled: true, Activated: &entry}

	case KeyEscape:
		if s.Back() {
			return Result{Handled: true}
		}
		if s.search.Query() != "" {
			s.SetSearch("")
			return Result{Handled: true}
		}
		s.nav.SetVisible(false)
		return Result{Handled: true, Dismissed: true}

	case KeyBackspace:
		if s.focused || s.nav.Mode() != navigation.ViewContent {
			return Result{}
		}
		return Result{Handled: s.Back()}

	case KeyToggle:
		s.Toggle()
		return Result{Handled: true}
	}
	return Result{}
}

// Navigate opens section in the content panel and starts its load
func (s *Session) Navigate(section domain.Section) uint64 {
	s.SetSearch("")
	s.nav.Navigate(section)
	s.DismissError()
	token := s.loader.Start()
	logger.Debug("Session: navigate %s (load %d)", section, token)
	return token
}

// NavigateRoute navigates to the section a route maps to. Unknown routes
// are logged and ignored.
func (s *Session) NavigateRoute(route string) {
	section, ok := domain.SectionForRoute(route)
	if !ok {
		logger.Warn("Session: no section for route %q", route)
		return
	}
	s.Navigate(section)
}

// Back returns to the palette, cancelling any pending load
func (s *Session) Back() bool {
	if !s.nav.Back() {
		return false
	}
	s.loader.Cancel()
	return true
}

// Toggle is the open shortcut: back out of content, else show or hide the
// palette
func (s *Session) Toggle() {
	if s.Back() {
		return
	}
	s.nav.Toggle()
	if s.nav.Visible() {
		s.focused = true
	}
}

// Swipe handles a horizontal swipe. Swiping right goes back, on mobile only.
func (s *Session) Swipe(right bool) bool {
	if !right || s.tier != responsive.Mobile {
		return false
	}
	return s.Back()
}

// Resize re-classifies the viewport and updates the keyboard observer. A
// width change (rotation, window resize) starts a new height baseline.
func (s *Session) Resize(widthPx, heightPx int) responsive.KeyboardState {
	s.tier = responsive.Classify(widthPx)
	if widthPx != s.widthPx {
		s.widthPx = widthPx
		s.keyboard.Reset()
	}
	return s.keyboard.Observe(heightPx, s.tier)
}

// Tier returns the current responsive tier
func (s *Session) Tier() responsive.Tier {
	return s.tier
}

// Keyboard returns the last keyboard observation
func (s *Session) Keyboard() responsive.KeyboardState {
	return s.keyboard.State()
}

// ToggleTheme cycles the theme preference
func (s *Session) ToggleTheme() {
	if s.theme != nil {
		s.theme.Toggle()
	}
}

// Loading reports whether a content load is pending
func (s *Session) Loading() bool {
	return s.loader.Loading()
}

// PendingLoad returns the token of the pending load, if any
func (s *Session) PendingLoad() (uint64, bool) {
	return s.loader.Pending()
}

// FinishLoad completes the load identified by token. It reports false for
// stale tokens, which must be ignored.
func (s *Session) FinishLoad(token uint64) bool {
	current, err := s.loader.Finish(token)
	if !current {
		return false
	}
	if err != nil {
		s.SetError(err.Error())
	}
	return true
}

// SetError shows the error banner
func (s *Session) SetError(msg string) {
	s.err = msg
	s.hasError = true
}

// DismissError hides the error banner
func (s *Session) DismissError() {
	s.err = ""
	s.hasError = false
}

// Navigation exposes the view state machine for rendering
func (s *Session) Navigation() *navigation.Service {
	return s.nav
}
