package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for finassist. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	// Gemini (OpenAI-compatible endpoint) settings for the chat model.
	GeminiAPIKey  string `json:"gemini_api_key"`
	GeminiBaseURL string `json:"gemini_base_url"`
	GeminiModel   string `json:"gemini_model"`

	// Alpha Vantage settings for live quotes.
	AlphaVantageAPIKey  string `json:"alphavantage_api_key"`
	AlphaVantageBaseURL string `json:"alphavantage_base_url"`

	// QuoteProvider selects the live quote source: "alphavantage" or "yahoo".
	QuoteProvider string `json:"quote_provider"`

	// Supabase auth settings. Optional; the chat pipeline works without them.
	SupabaseURL     string `json:"supabase_url"`
	SupabaseAnonKey string `json:"supabase_anon_key"`

	// DataDir holds the local SQLite turn history.
	DataDir        string `json:"data_dir"`
	HistoryEnabled bool   `json:"history_enabled"`

	// HTTPTimeout bounds every outbound quote/auth request.
	HTTPTimeout time.Duration `json:"http_timeout"`

	Debug bool `json:"debug"`
}

// DefaultConfig builds a Config from defaults and the environment.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		GeminiBaseURL: "https://generativelanguage.googleapis.com/v1beta/openai",
		GeminiModel:   "gemini-2.0-flash",

		AlphaVantageBaseURL: "https://www.alphavantage.co",
		QuoteProvider:       "alphavantage",

		DataDir:        filepath.Join(currentDir, "data"),
		HistoryEnabled: true,

		HTTPTimeout: 15 * time.Second,

		Debug: false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.GeminiAPIKey = val
	}
	if val := os.Getenv("GEMINI_BASE_URL"); val != "" {
		c.GeminiBaseURL = val
	}
	if val := os.Getenv("GEMINI_MODEL"); val != "" {
		c.GeminiModel = val
	}

	if val := os.Getenv("ALPHAVANTAGE_API_KEY"); val != "" {
		c.AlphaVantageAPIKey = val
	}
	if val := os.Getenv("ALPHAVANTAGE_BASE_URL"); val != "" {
		c.AlphaVantageBaseURL = val
	}
	if val := os.Getenv("QUOTE_PROVIDER"); val != "" {
		c.QuoteProvider = val
	}

	if val := os.Getenv("SUPABASE_URL"); val != "" {
		c.SupabaseURL = val
	}
	if val := os.Getenv("SUPABASE_ANON_KEY"); val != "" {
		c.SupabaseAnonKey = val
	}

	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("HISTORY_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.HistoryEnabled = enabled
		}
	}

	if val := os.Getenv("HTTP_TIMEOUT_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	if val := os.Getenv("FINASSIST_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

// EnsureDirectories creates the data directory when history is enabled.
func (c *Config) EnsureDirectories() error {
	if !c.HistoryEnabled || c.DataDir == "" {
		return nil
	}
	return os.MkdirAll(c.DataDir, 0o755)
}
