package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	WebhookURL       string
	Supervisors      []string
	RequestTimeout   time.Duration
	Retries          int
	LogLevel         string
	HeartbeatCron    string
	HeartbeatMessage string
	HeartbeatTitle   string
}

const (
	defaultCron             = "0 9 * * *" // 09:00 every day
	defaultTimeout          = 30 * time.Second
	defaultRetries          = 3
	defaultLogLevel         = "info"
	defaultHeartbeatMessage = "Status: Working"
	defaultHeartbeatTitle   = "slackhook"
)

// Load builds a Config from environment variables with sane defaults.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WebhookURL:       getenvDefault("SLACK_WEBHOOK_URL", ""),
		Supervisors:      splitList(os.Getenv("SLACK_SUPERVISORS")),
		RequestTimeout:   parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		Retries:          parseIntDefault("SEND_RETRIES", defaultRetries),
		LogLevel:         getenvDefault("LOG_LEVEL", defaultLogLevel),
		HeartbeatCron:    getenvDefault("HEARTBEAT_CRON", defaultCron),
		HeartbeatMessage: getenvDefault("HEARTBEAT_MESSAGE", defaultHeartbeatMessage),
		HeartbeatTitle:   getenvDefault("HEARTBEAT_TITLE", defaultHeartbeatTitle),
	}

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("SLACK_WEBHOOK_URL is required")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.Retries <= 0 {
		cfg.Retries = defaultRetries
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

// splitList parses a comma separated list, dropping blanks.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
