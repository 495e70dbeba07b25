package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/trackers/config.yml.
type GlobalConfig struct {
	DataDir    string `yaml:"data_dir,omitempty"`   // Directory holding expenses.json and tasks.json
	Currency   string `yaml:"currency,omitempty"`   // Symbol printed before amounts, default "$"
	Difficulty string `yaml:"difficulty,omitempty"` // Preselected guessing game level: easy, medium, hard
	Color      *bool  `yaml:"color,omitempty"`      // Force task list colors on or off
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "trackers"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// DefaultCurrency is printed before amounts when none is configured.
	DefaultCurrency = "$"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/trackers/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.DataDir != "" {
		cfg.DataDir = ExpandPath(cfg.DataDir)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// CurrencySymbol returns the configured currency symbol or DefaultCurrency.
func (c *GlobalConfig) CurrencySymbol() string {
	if c == nil || c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// ColorEnabled decides whether colored output is wanted. An explicit config
// value wins over NO_COLOR; otherwise isTTY decides.
func (c *GlobalConfig) ColorEnabled(isTTY bool) bool {
	if c != nil && c.Color != nil {
		return *c.Color
	}
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	return isTTY
}
