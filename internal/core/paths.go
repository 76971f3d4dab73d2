package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the name used for the data directory, log file and banner.
const AppName = "setup-neovim"

type Paths struct {
	DataDir string
	LogFile string
	// EnvFile is an optional per-user env file consulted after the working
	// directory's .env.
	EnvFile string
}

var defaultPaths *Paths

// DefaultPaths resolves the per-user paths under the home directory and
// creates the data directory. The result is cached after the first success.
func DefaultPaths() (*Paths, error) {
	if defaultPaths != nil {
		return defaultPaths, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dataDir := filepath.Join(homeDir, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	defaultPaths = &Paths{
		DataDir: dataDir,
		LogFile: filepath.Join(dataDir, AppName+".log"),
		EnvFile: filepath.Join(dataDir, ".env"),
	}
	return defaultPaths, nil
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
