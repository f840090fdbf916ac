package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/logger"
	"folio/internal/storage"
)

// Service stores submitted messages and fans them out to the optional
// mailer and desktop notifier
type Service struct {
	store  storage.MessageStore
	mailer Mailer
	notify bool
	bus    eventbus.EventBus
	now    func() time.Time
}

// Options configures a Service. Store is required.
type Options struct {
	Store         storage.MessageStore
	Mailer        Mailer
	DesktopNotify bool
	Bus           eventbus.EventBus
}

func NewService(opts Options) *Service {
	return &Service{
		store:  opts.Store,
		mailer: opts.Mailer,
		notify: opts.DesktopNotify,
		bus:    opts.Bus,
		now:    time.Now,
	}
}

// Submit validates and persists a message. Mail and notification
// failures are logged and do not fail the submission.
func (s *Service) Submit(ctx context.Context, d Draft) (domain.ContactMessage, error) {
	// names end up in mail headers, so line breaks fold into spaces
	d.Name = strings.Join(strings.Fields(d.Name), " ")
	d.Email = strings.TrimSpace(d.Email)
	d.Message = strings.TrimSpace(d.Message)
	if d.Name == "" || d.Message == "" {
		return domain.ContactMessage{}, ErrEmptyReply
	}
	if !ValidEmail(d.Email) {
		return domain.ContactMessage{}, ErrInvalidEmail
	}

	msg := domain.ContactMessage{
		ID:        uuid.New().String(),
		Name:      d.Name,
		Email:     d.Email,
		Body:      d.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	log := logger.Component("contact")
	log.Info("message stored", "id", msg.ID)

	if s.mailer != nil {
		if err := s.mailer.Send(msg); err != nil {
			log.Warn("mail delivery failed", "id", msg.ID, "err", err)
		}
	}
	if s.notify {
		_ = Notify("New portfolio message", msg.Name+" <"+msg.Email+">")
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ContactSubmittedEvent{ID: msg.ID, Name: msg.Name})
	}
	return msg, nil
}

// Recent returns the latest stored messages, newest first
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	return s.store.ListMessages(ctx, limit)
}
