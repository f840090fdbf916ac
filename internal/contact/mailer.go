package contact

import (
	"errors"
	"fmt"
	"mime"
	"net/smtp"

	"folio/internal/config"
	"folio/internal/domain"
)

// ErrMailerNotConfigured is returned when SMTP credentials are missing
var ErrMailerNotConfigured = errors.New("contact: SMTP credentials not configured")

// Mailer delivers a stored message somewhere a human will read it
type Mailer interface {
	Send(msg domain.ContactMessage) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends messages through an SMTP relay with PLAIN auth
type SMTPMailer struct {
	settings config.ContactSettings
	sendMail sendMailFunc
}

// NewSMTPMailer returns nil when the settings carry no credentials
func NewSMTPMailer(settings config.ContactSettings) *SMTPMailer {
	if settings.SMTPUser == "" || settings.SMTPPass == "" {
		return nil
	}
	if settings.SMTPHost == "" {
		settings.SMTPHost = "smtp.gmail.com"
	}
	if settings.SMTPPort == "" {
		settings.SMTPPort = "587"
	}
	if settings.To == "" {
		settings.To = settings.SMTPUser
	}
	return &SMTPMailer{settings: settings, sendMail: smtp.SendMail}
}

func (m *SMTPMailer) Send(msg domain.ContactMessage) error {
	if m == nil {
		return ErrMailerNotConfigured
	}
	s := m.settings
	auth := smtp.PlainAuth("", s.SMTPUser, s.SMTPPass, s.SMTPHost)
	if err := m.sendMail(s.SMTPHost+":"+s.SMTPPort, auth, s.SMTPUser, []string{s.To}, compose(s.SMTPUser, s.To, msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func compose(from, to string, msg domain.ContactMessage) []byte {
	body := fmt.Sprintf(`New contact message from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Message id %s
`, msg.Name, msg.Email, msg.Body, msg.ID)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + mime.QEncoding.Encode("utf-8", "Portfolio Contact: "+msg.Name) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
