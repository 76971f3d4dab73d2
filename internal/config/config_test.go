package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvModel, EnvBaseURL, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvModel, " gemini-2.0-flash ")
	t.Setenv(EnvBaseURL, "http://localhost:8080/v1")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := FromEnv()

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvMissingKeyIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestLoad(t *testing.T) {
	t.Run("reads env file", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("YOUR_API_KEY=from-file\nSETUP_NEOVIM_MODEL=file-model\n"), 0600))
		t.Cleanup(func() {
			os.Unsetenv(EnvAPIKey)
			os.Unsetenv(EnvModel)
		})

		cfg, err := Load(envFile)
		require.NoError(t, err)

		assert.Equal(t, "from-file", cfg.APIKey)
		assert.Equal(t, "file-model", cfg.Model)
	})

	t.Run("environment wins over env file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "from-env")
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("YOUR_API_KEY=from-file\n"), 0600))

		cfg, err := Load(envFile)
		require.NoError(t, err)

		assert.Equal(t, "from-env", cfg.APIKey)
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
		require.NoError(t, err)

		assert.Equal(t, DefaultModel, cfg.Model)
	})
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.ZapLevel().Level())
		})
	}
}
