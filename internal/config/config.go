// Package config resolves the process-wide settings of setup-neovim from
// the environment and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environment variable names.
const (
	// EnvAPIKey holds the provider credential.
	EnvAPIKey   = "YOUR_API_KEY"
	EnvModel    = "SETUP_NEOVIM_MODEL"
	EnvBaseURL  = "SETUP_NEOVIM_BASE_URL"
	EnvLogLevel = "SETUP_NEOVIM_LOG_LEVEL"
)

// Defaults used when the environment does not override them.
const (
	DefaultModel    = "gemini-1.5-flash"
	DefaultBaseURL  = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultLogLevel = "info"
)

// Config holds everything a run needs besides the user's answers.
type Config struct {
	// APIKey authenticates the generation request. It is not validated
	// locally; a missing key surfaces as a provider error.
	APIKey string

	// Model is the model identifier sent with the request.
	Model string

	// BaseURL is the OpenAI-compatible endpoint of the provider.
	BaseURL string

	// LogLevel controls logging verbosity ("debug", "info", "warn", "error").
	LogLevel string
}

// DefaultConfig returns a Config with default values and no credential.
func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		BaseURL:  DefaultBaseURL,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads the given env files (missing ones are skipped, variables that
// are already set win) and then builds a Config from the environment.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current process environment.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv(EnvAPIKey)

	if v := strings.TrimSpace(os.Getenv(EnvModel)); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg
}

// ZapLevel parses LogLevel. Unknown levels fall back to info.
func (c *Config) ZapLevel() zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}
