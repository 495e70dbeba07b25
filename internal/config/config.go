// Package config resolves data file locations and user preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	ExpensesFile = "expenses.json"
	TasksFile    = "tasks.json"
	EnvFile      = ".env"
)

// Environment variables consulted by the trackers.
const (
	EnvExpensesFile = "EXPENSE_TRACKER_FILE"
	EnvTasksFile    = "TASK_CLI_FILE"
	EnvLogLevel     = "LOG_LEVEL"
	EnvNoColor      = "NO_COLOR"
)

// LoadEnv loads dir/.env into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, EnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ResolveDataPath picks the data file location. Precedence: explicit flag
// value, then the environment variable, then data_dir from the global
// config, then the current directory.
func ResolveDataPath(flagValue, envVar, fileName string) (string, error) {
	if flagValue != "" {
		return ExpandPath(flagValue), nil
	}
	if v := os.Getenv(envVar); v != "" {
		return ExpandPath(v), nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", err
	}
	if cfg.DataDir != "" {
		return filepath.Join(cfg.DataDir, fileName), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return filepath.Join(cwd, fileName), nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
