// Package storage persists the small amount of state folio keeps between
// runs: the theme preference, the last project filter and contact messages.
package storage

import (
	"context"
	"errors"

	"folio/internal/domain"
)

// Keys for persisted preferences
const (
	ThemeKey         = "folio.theme"
	ProjectFilterKey = "folio.project-filter"
)

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous key/value preference store
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MessageStore persists contact messages
type MessageStore interface {
	SaveMessage(ctx context.Context, msg domain.ContactMessage) error
	ListMessages(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

// GetOr returns the stored value for key, or def when it is missing or the
// store fails
func GetOr(s Store, key, def string) string {
	if s == nil {
		return def
	}
	v, err := s.Get(key)
	if err != nil {
		return def
	}
	return v
}
