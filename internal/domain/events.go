package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventThemeChanged     EventType = "ThemeChanged"
	EventSectionOpened    EventType = "SectionOpened"
	EventSectionClosed    EventType = "SectionClosed"
	EventPaletteToggled   EventType = "PaletteToggled"
	EventContentReloaded  EventType = "ContentReloaded"
	EventContactSubmitted EventType = "ContactSubmitted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ThemeChangedEvent is emitted when the theme preference or the effective
// theme changes
type ThemeChangedEvent struct {
	Preference string
	Effective  string
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// SectionOpenedEvent is emitted when the view switches to a content section
type SectionOpenedEvent struct {
	Section Section
}

func (e SectionOpenedEvent) Type() EventType { return EventSectionOpened }

// SectionClosedEvent is emitted when the view returns to the palette
type SectionClosedEvent struct {
	Section Section
}

func (e SectionClosedEvent) Type() EventType { return EventSectionClosed }

// PaletteToggledEvent is emitted when the palette overlay is shown or hidden
type PaletteToggledEvent struct {
	Visible bool
}

func (e PaletteToggledEvent) Type() EventType { return EventPaletteToggled }

// ContentReloadedEvent is emitted after the content file changes on disk
type ContentReloadedEvent struct {
	Source string
}

func (e ContentReloadedEvent) Type() EventType { return EventContentReloaded }

// ContactSubmittedEvent is emitted after a contact message is stored
type ContactSubmittedEvent struct {
	ID   string
	Name string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
