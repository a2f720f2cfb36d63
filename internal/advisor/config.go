package advisor

import (
	"os"
	"strconv"
)

// Config holds all configuration for the advisory subsystem.
type Config struct {
	Enabled      bool
	LogCalls     bool
	Endpoint     string
	Model        string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	TimeoutMs    int
	MaxRetries   int
}

// defaultSystemPrompt frames every advisory query. The trip context is
// appended by the caller, never interpreted from the reply.
const defaultSystemPrompt = "You are a concise, practical travel assistant " +
	"for a trip through France and the Basel border region. Answer in the " +
	"language of the question. Keep answers short and actionable."

// DefaultConfig returns a Config with sensible defaults.
// The advisor is disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		LogCalls:     false,
		Endpoint:     "http://localhost:11434",
		Model:        "llama3.2",
		SystemPrompt: defaultSystemPrompt,
		Temperature:  0.4,
		MaxTokens:    1024,
		TimeoutMs:    15000,
		MaxRetries:   1,
	}
}

// LoadConfig reads advisor configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CARNET_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CARNET_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CARNET_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CARNET_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CARNET_LLM_SYSTEM_PROMPT"); v != "" {
		cfg.SystemPrompt = v
	}
	if v := os.Getenv("CARNET_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CARNET_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CARNET_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("CARNET_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
