package alert

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/magazyn-io/magazyn/internal/models"
)

func testConfig() Config {
	return Config{
		Server:   "smtp.example.com",
		Port:     "587",
		User:     "magazyn@example.com",
		Password: "hunter2",
		From:     "magazyn@example.com",
		To:       "owner@example.com",
	}
}

func lowStockItems() []models.Product {
	return []models.Product{
		{Name: "Apple", Quantity: 3, Price: decimal.NewFromFloat(2.5)},
		{Name: "Salt", Quantity: 0, Price: decimal.NewFromFloat(1.2)},
	}
}

func TestSendLowStock(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewMailer(testConfig())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := m.SendLowStock(lowStockItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("expected submission to smtp.example.com:587, got %q", gotAddr)
	}
	if gotFrom != "magazyn@example.com" {
		t.Errorf("unexpected sender %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "owner@example.com" {
		t.Errorf("unexpected recipients %v", gotTo)
	}

	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: ⚠️ Alert Magazynowy") {
		t.Errorf("message is missing the alert subject:\n%s", msg)
	}
	if !strings.Contains(msg, "- Apple: 3 szt.\n") {
		t.Errorf("message is missing the Apple line:\n%s", msg)
	}
	if !strings.Contains(msg, "- Salt: 0 szt.\n") {
		t.Errorf("message is missing the Salt line:\n%s", msg)
	}
}

func TestSendLowStockNotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing server", func(c *Config) { c.Server = "" }},
		{"missing user", func(c *Config) { c.User = "" }},
		{"missing password", func(c *Config) { c.Password = "" }},
		{"missing sender", func(c *Config) { c.From = "" }},
		{"missing recipient", func(c *Config) { c.To = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			called := false
			m := NewMailer(cfg)
			m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
				called = true
				return nil
			}

			err := m.SendLowStock(lowStockItems())
			if !errors.Is(err, ErrNotConfigured) {
				t.Errorf("expected ErrNotConfigured, got %v", err)
			}
			if called {
				t.Error("expected no network call when mailer is not configured")
			}
		})
	}
}

func TestSendLowStockDeliveryFailure(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")

	m := NewMailer(testConfig())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		return transportErr
	}

	err := m.SendLowStock(lowStockItems())
	if err == nil {
		t.Fatal("expected an error on transport failure")
	}
	if !errors.Is(err, transportErr) {
		t.Errorf("expected the transport error to be wrapped, got %v", err)
	}
}

func TestSendLowStockDefaultPort(t *testing.T) {
	cfg := testConfig()
	cfg.Port = ""

	var gotAddr string
	m := NewMailer(cfg)
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr = addr
		return nil
	}

	if err := m.SendLowStock(lowStockItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("expected default submission port 587, got %q", gotAddr)
	}
}
