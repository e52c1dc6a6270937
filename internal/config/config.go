// Package config resolves the service configuration at process startup.
// A missing required secret is reported as an explicit error before any
// connection is opened, never as a crash mid-operation.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// LowStockThreshold is the default threshold applied when a request
	// does not supply one.
	LowStockThreshold int

	SMTPServer   string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	AlertFrom    string
	AlertTo      string
}

// requiredKeys are the secrets the process cannot run without.
var requiredKeys = []string{
	"DATABASE_URL",
	"JWT_SECRET",
	"SMTP_SERVER",
	"SMTP_USER",
	"SMTP_PASS",
	"ALERT_FROM",
	"ALERT_TO",
}

// Load reads configuration from the environment, optionally seeded from a
// .env file in the working directory.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // .env is optional; the environment always wins

	v.AutomaticEnv()
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)

	for _, key := range requiredKeys {
		if v.GetString(key) == "" {
			return Config{}, fmt.Errorf("required configuration %s is not set", key)
		}
	}

	cfg := Config{
		Addr:              v.GetString("ADDR"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		LowStockThreshold: v.GetInt("LOW_STOCK_THRESHOLD"),
		SMTPServer:        v.GetString("SMTP_SERVER"),
		SMTPPort:          v.GetString("SMTP_PORT"),
		SMTPUser:          v.GetString("SMTP_USER"),
		SMTPPassword:      v.GetString("SMTP_PASS"),
		AlertFrom:         v.GetString("ALERT_FROM"),
		AlertTo:           v.GetString("ALERT_TO"),
	}

	if cfg.LowStockThreshold < 0 {
		return Config{}, fmt.Errorf("LOW_STOCK_THRESHOLD must not be negative, got %d", cfg.LowStockThreshold)
	}

	return cfg, nil
}
