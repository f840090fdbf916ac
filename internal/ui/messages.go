package ui

import (
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ContentReloadedMsg carries a freshly parsed portfolio from the watcher
type ContentReloadedMsg struct {
	Portfolio *content.Portfolio
}

// searchTickMsg fires when the search debounce window closes. Stale
// sequence numbers are ignored.
type searchTickMsg struct {
	seq uint64
}

// loadDoneMsg fires when a simulated section load completes
type loadDoneMsg struct {
	token uint64
}

// clearToastMsg hides the toast it was scheduled for
type clearToastMsg struct {
	seq uint64
}

// contactSentMsg is the result of delivering a chat message
type contactSentMsg struct {
	msg domain.ContactMessage
	err error
}

// pagerMsg is the result of showing content in the pager
type pagerMsg struct {
	err error
}

// externalMsg is the result of handing a URL to the OS or the clipboard
type externalMsg struct {
	toast string
	err   error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
