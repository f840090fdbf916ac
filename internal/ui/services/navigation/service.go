package navigation

import (
	"folio/internal/domain"
	"folio/internal/eventbus"
)

// ViewMode is the top-level panel being shown
type ViewMode int

const (
	ViewPalette ViewMode = iota
	ViewContent
)

func (m ViewMode) String() string {
	switch m {
	case ViewPalette:
		return "palette"
	case ViewContent:
		return "content"
	default:
		return "unknown"
	}
}

// Service is the palette/content view state machine. Content mode always
// has an active section; palette mode never does. Visibility of the palette
// overlay is tracked separately.
type Service struct {
	mode    ViewMode
	section domain.Section
	visible bool
	bus     eventbus.EventBus
}

// NewService starts in palette mode with the overlay visible. bus may be
// nil.
func NewService(bus eventbus.EventBus) *Service {
	return &Service{mode: ViewPalette, visible: true, bus: bus}
}

// Mode returns the current view mode
func (s *Service) Mode() ViewMode {
	return s.mode
}

// Section returns the active section. ok is false in palette mode.
func (s *Service) Section() (domain.Section, bool) {
	if s.mode != ViewContent {
		return "", false
	}
	return s.section, true
}

// Visible reports whether the palette overlay is shown
func (s *Service) Visible() bool {
	return s.visible
}

// Navigate switches to content mode showing section. Opening content also
// shows the overlay.
func (s *Service) Navigate(section domain.Section) {
	s.mode = ViewContent
	s.section = section
	s.visible = true
	s.publish(eventbus.SectionOpenedEvent{Section: section})
}

// Back returns to palette mode. It reports false when already there.
func (s *Service) Back() bool {
	if s.mode != ViewContent {
		return false
	}
	closed := s.section
	s.mode = ViewPalette
	s.section = ""
	s.publish(eventbus.SectionClosedEvent{Section: closed})
	return true
}

// Toggle is the open/close shortcut: back out of content, otherwise flip
// palette visibility
func (s *Service) Toggle() {
	if s.Back() {
		return
	}
	s.SetVisible(!s.visible)
}

// SetVisible shows or hides the palette overlay
func (s *Service) SetVisible(visible bool) {
	if s.visible == visible {
		return
	}
	s.visible = visible
	s.publish(eventbus.PaletteToggledEvent{Visible: visible})
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
