// Package alert dispatches low-stock notification emails over an
// authenticated SMTP session. One attempt per invocation; the caller
// decides whether to try again.
package alert

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/magazyn-io/magazyn/internal/models"
)

// ErrNotConfigured is returned when sender credentials or the recipient
// are missing. No network call is made in that case.
var ErrNotConfigured = errors.New("alert mailer is not configured")

// Config carries the SMTP submission settings. Port is the submission
// port, normally 587.
type Config struct {
	Server   string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

type Mailer struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// SendLowStock emails a plain-text alert enumerating each item's name and
// quantity, one per line. Transport failures are wrapped and returned;
// there is no retry.
func (m *Mailer) SendLowStock(items []models.Product) error {
	if m.cfg.Server == "" || m.cfg.User == "" || m.cfg.Password == "" ||
		m.cfg.From == "" || m.cfg.To == "" {
		return ErrNotConfigured
	}

	subject := "⚠️ Alert Magazynowy"

	var body strings.Builder
	for _, p := range items {
		fmt.Fprintf(&body, "- %s: %d szt.\n", p.Name, p.Quantity)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.From, m.cfg.To, subject, body.String())

	port := m.cfg.Port
	if port == "" {
		port = "587"
	}
	addr := fmt.Sprintf("%s:%s", m.cfg.Server, port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Server)

	if err := m.send(addr, auth, m.cfg.From, []string{m.cfg.To}, []byte(msg)); err != nil {
		return fmt.Errorf("low-stock alert delivery failed: %w", err)
	}
	return nil
}
