// Package mail delivers account emails.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/osse101/DragonKeeper_Go/internal/logger"
)

// Message is a plain-text email
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends messages
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of sending them
type LogMailer struct{}

// Send logs the message
func (LogMailer) Send(ctx context.Context, msg Message) error {
	logger.FromContext(ctx).Info("Mail (not sent, no SMTP host configured)",
		"to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// SMTPMailer sends through an SMTP relay with PLAIN auth
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer creates a mailer for host:port
func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPMailer{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		auth: auth,
		from: from,
		send: smtp.SendMail,
	}
}

// Send delivers the message
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	log := logger.FromContext(ctx)
	if err := m.send(m.addr, m.auth, m.from, []string{msg.To}, m.compose(msg)); err != nil {
		log.Error("Failed to send mail", "to", msg.To, "error", err)
		return fmt.Errorf("failed to send mail: %w", err)
	}
	log.Info("Mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *SMTPMailer) compose(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}
