package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/storage"
)

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StepGreeting, f.Step())

	steps := []struct {
		reply string
		want  Step
	}{
		{"", StepName},
		{"Ada", StepEmail},
		{"ada@example.com", StepMessage},
		{"Hello there", StepConfirm},
	}
	for _, s := range steps {
		done, err := f.Reply(s.reply)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Equal(t, s.want, f.Step())
	}

	done, err := f.Reply("yes")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, Draft{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}, f.Draft())

	f.MarkSent()
	assert.Equal(t, StepSent, f.Step())
	_, err = f.Reply("more")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestFlowRejectsInvalidEmail(t *testing.T) {
	f := NewFlow()
	_, _ = f.Reply("")
	_, _ = f.Reply("Ada")

	for _, bad := range []string{"", "ada", "ada@", "@example.com"} {
		_, err := f.Reply(bad)
		assert.ErrorIs(t, err, ErrInvalidEmail, bad)
		assert.Equal(t, StepEmail, f.Step())
	}
}

func TestFlowRejectsEmptyName(t *testing.T) {
	f := NewFlow()
	_, _ = f.Reply("")
	_, err := f.Reply("   ")
	assert.ErrorIs(t, err, ErrEmptyReply)
	assert.Equal(t, StepName, f.Step())
}

func TestFlowDeclineReturnsToMessage(t *testing.T) {
	f := NewFlow()
	for _, r := range []string{"", "Ada", "ada@example.com", "first"} {
		_, err := f.Reply(r)
		require.NoError(t, err)
	}
	done, err := f.Reply("n")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, StepMessage, f.Step())
}

func TestFlowRestart(t *testing.T) {
	f := NewFlow()
	_, _ = f.Reply("")
	_, _ = f.Reply("Ada")
	f.Restart()

	assert.Equal(t, StepGreeting, f.Step())
	assert.Equal(t, Draft{}, f.Draft())
	require.Len(t, f.Transcript(), 1)
	assert.Equal(t, Bot, f.Transcript()[0].From)
}

type mockNotification struct {
	calls []string
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, title+"|"+message)
	return m.err
}

func TestNotify(t *testing.T) {
	mock := &mockNotification{err: errors.New("no dbus")}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	err := Notify("Title", "Body")
	assert.Error(t, err)
	assert.Equal(t, []string{"Title|Body"}, mock.calls)
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.ContactMessage
	err  error
}

func (r *recordingMailer) Send(msg domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.err
}

func TestServiceSubmit(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	store := storage.NewMemoryStore()
	mailer := &recordingMailer{err: errors.New("relay down")}
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ContactSubmittedEvent, 1)
	unsub := bus.Subscribe(eventbus.EventContactSubmitted, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ContactSubmittedEvent)
	})
	defer unsub()

	svc := NewService(Options{Store: store, Mailer: mailer, DesktopNotify: true, Bus: bus})
	msg, err := svc.Submit(context.Background(), Draft{Name: " Ada ", Email: "ada@example.com", Message: "Hi"})
	require.NoError(t, err, "mail failures do not fail the submission")
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Ada", msg.Name)

	stored, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, msg.ID, stored[0].ID)
	assert.Len(t, mailer.sent, 1)
	assert.Len(t, mock.calls, 1)

	select {
	case e := <-got:
		assert.Equal(t, msg.ID, e.ID)
	case <-time.After(time.Second):
		t.Fatal("ContactSubmittedEvent not published")
	}
}

func TestServiceSubmitValidates(t *testing.T) {
	svc := NewService(Options{Store: storage.NewMemoryStore()})

	_, err := svc.Submit(context.Background(), Draft{Name: "Ada", Email: "nope", Message: "Hi"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
	_, err = svc.Submit(context.Background(), Draft{Name: "", Email: "ada@example.com", Message: "Hi"})
	assert.ErrorIs(t, err, ErrEmptyReply)

	msg, err := svc.Submit(context.Background(), Draft{Name: "Eve\r\nBcc: victim@example.com", Email: "eve@example.com", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, "Eve Bcc: victim@example.com", msg.Name)
}

func TestSMTPMailer(t *testing.T) {
	assert.Nil(t, NewSMTPMailer(config.ContactSettings{SMTPHost: "mail.example.com"}))

	m := NewSMTPMailer(config.ContactSettings{SMTPUser: "me@example.com", SMTPPass: "secret"})
	require.NotNil(t, m)

	var addr string
	var to []string
	var body []byte
	m.sendMail = func(a string, _ smtp.Auth, _ string, rcpt []string, msg []byte) error {
		addr, to, body = a, rcpt, msg
		return nil
	}
	err := m.Send(domain.ContactMessage{ID: "1", Name: "Ada", Email: "ada@example.com", Body: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "smtp.gmail.com:587", addr)
	assert.Equal(t, []string{"me@example.com"}, to)
	assert.True(t, strings.Contains(string(body), "Reply-To: ada@example.com\r\n"))
	assert.Contains(t, string(body), "Subject: Portfolio Contact: Ada")

	err = m.Send(domain.ContactMessage{ID: "2", Name: "Eve\r\nBcc: victim@example.com", Email: "eve@example.com", Body: "Hi"})
	require.NoError(t, err)
	headers, _, _ := strings.Cut(string(body), "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Subject: =?utf-8?q?")

	var nilMailer *SMTPMailer
	assert.ErrorIs(t, nilMailer.Send(domain.ContactMessage{}), ErrMailerNotConfigured)
}
