package contact

import (
	"github.com/gen2brain/beeep"

	"folio/internal/logger"
)

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the desktop notification backend (for tests)
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the notification backend
func ResetNotifier() {
	notifier = beeep.Notify
}

// Notify sends a desktop notification with the given title and message
func Notify(title, message string) error {
	logger.Debug("contact: sending notification title=%q", title)
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("contact: notification failed: %v", err)
	}
	return err
}
