package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("expected default model gemini-2.0-flash, got %s", cfg.GeminiModel)
	}
	if cfg.QuoteProvider != "alphavantage" {
		t.Fatalf("expected default quote provider alphavantage, got %s", cfg.QuoteProvider)
	}
	if cfg.HTTPTimeout <= 0 {
		t.Fatalf("expected a positive default HTTP timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("QUOTE_PROVIDER", "yahoo")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("HISTORY_ENABLED", "false")

	cfg := DefaultConfig()

	if cfg.GeminiAPIKey != "key-123" {
		t.Fatalf("expected api key override, got %q", cfg.GeminiAPIKey)
	}
	if cfg.QuoteProvider != "yahoo" {
		t.Fatalf("expected quote provider yahoo, got %s", cfg.QuoteProvider)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.HistoryEnabled {
		t.Fatal("expected history to be disabled")
	}
}
