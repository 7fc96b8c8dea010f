// Package mail implements the confirmation notifier over SMTP.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/rs/zerolog"

	"github.com/whelansws/booking-system/internal/core/ports"
)

const (
	confirmationSubject = "Booking Confirmation"
	dialTimeout         = 15 * time.Second
)

// Config captures the settings for the SMTP relay.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier sends plaintext confirmation messages through an external
// SMTP relay. Transport-level retries are the relay's responsibility.
type SMTPNotifier struct {
	cfg    Config
	logger zerolog.Logger
}

func NewSMTPNotifier(cfg Config, logger zerolog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// SendConfirmation composes the fixed confirmation template and hands it
// to the relay.
func (n *SMTPNotifier) SendConfirmation(ctx context.Context, in ports.ConfirmationInput) error {
	msg := buildMessage(n.cfg.From, in.To, confirmationSubject, confirmationBody(in))

	if err := n.send(ctx, in.To, msg); err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}

	n.logger.Info().Str("to", in.To).Msg("confirmation sent")
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, rcpt string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	c, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: n.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if n.cfg.Username != "" {
		auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := c.Mail(n.cfg.From); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(rcpt); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}
	return nil
}

// confirmationBody renders the fixed confirmation template.
func confirmationBody(in ports.ConfirmationInput) string {
	return fmt.Sprintf("Hi %s, your %s on %s at %s is confirmed.", in.Name, in.Service, in.Date, in.Time)
}

// buildMessage assembles a minimal plaintext UTF-8 mail message.
func buildMessage(from, to, subject, body string) []byte {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")
	return msg.Bytes()
}
