package config

import (
	"os"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	LabName        string
	FooterNote     string
	DraftTTL       time.Duration
	IdempotencyTTL time.Duration

	EnableWebUI        bool
	EnableDraftExpirer bool
	WorkerPollInterval time.Duration
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "crystallab"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	labName := strings.TrimSpace(os.Getenv("LAB_NAME"))
	if labName == "" {
		labName = "CRYSTAL LAB"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		LabName:        labName,
		FooterNote:     strings.TrimSpace(os.Getenv("REPORT_FOOTER_NOTE")),
		DraftTTL:       envDuration("DRAFT_TTL", 24*time.Hour),
		IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 7*24*time.Hour),

		EnableWebUI:        envBool("ENABLE_WEB_UI", true),
		EnableDraftExpirer: envBool("ENABLE_DRAFT_EXPIRER", true),
		WorkerPollInterval: envDuration("WORKER_POLL_INTERVAL", time.Minute),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
