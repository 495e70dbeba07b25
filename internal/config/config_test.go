package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath(t *testing.T) {
	// Save and restore XDG_CONFIG_HOME
	orig := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", orig)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := GlobalConfigPath()
	want := "/custom/config/trackers/config.yml"
	if path != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", path, want)
	}
}

func TestLoadGlobalConfig_NotFound(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir = %q, want empty", cfg.DataDir)
	}
	if cfg.CurrencySymbol() != "$" {
		t.Errorf("CurrencySymbol() = %q, want $", cfg.CurrencySymbol())
	}
}

func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, GlobalConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, GlobalConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
}

func TestLoadGlobalConfig_Valid(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	writeGlobalConfig(t, "data_dir: ~/ledger\ncurrency: \"€\"\ndifficulty: hard\ncolor: false\n")

	cfg, err := LoadGlobalConfig()
	if err != nil {
		t.Fatalf("LoadGlobalConfig() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "ledger"); cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
	if cfg.CurrencySymbol() != "€" {
		t.Errorf("CurrencySymbol() = %q, want €", cfg.CurrencySymbol())
	}
	if cfg.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, want hard", cfg.Difficulty)
	}
	if cfg.ColorEnabled(true) {
		t.Error("ColorEnabled(true) = true with color: false")
	}
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	writeGlobalConfig(t, "data_dir: [unterminated\n")

	if _, err := LoadGlobalConfig(); err == nil {
		t.Error("LoadGlobalConfig() should return error for invalid YAML")
	}
}

func TestColorEnabled(t *testing.T) {
	t.Setenv(EnvNoColor, "")
	var cfg *GlobalConfig
	if !cfg.ColorEnabled(true) {
		t.Error("nil config on a TTY should enable color")
	}
	if cfg.ColorEnabled(false) {
		t.Error("nil config off a TTY should disable color")
	}

	t.Setenv(EnvNoColor, "1")
	if cfg.ColorEnabled(true) {
		t.Error("NO_COLOR should disable color")
	}

	on := true
	if !(&GlobalConfig{Color: &on}).ColorEnabled(false) {
		t.Error("color: true should override TTY detection")
	}
}

func TestResolveDataPath(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvTasksFile, "")

	cwd, _ := os.Getwd()

	got, err := ResolveDataPath("", EnvTasksFile, TasksFile)
	if err != nil {
		t.Fatalf("ResolveDataPath() error = %v", err)
	}
	if want := filepath.Join(cwd, TasksFile); got != want {
		t.Errorf("default = %q, want %q", got, want)
	}

	t.Setenv(EnvTasksFile, "/env/tasks.json")
	got, _ = ResolveDataPath("", EnvTasksFile, TasksFile)
	if got != "/env/tasks.json" {
		t.Errorf("env = %q, want /env/tasks.json", got)
	}

	got, _ = ResolveDataPath("/flag/tasks.json", EnvTasksFile, TasksFile)
	if got != "/flag/tasks.json" {
		t.Errorf("flag = %q, want /flag/tasks.json", got)
	}
}

func TestResolveDataPath_DataDir(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()
	t.Setenv(EnvExpensesFile, "")
	writeGlobalConfig(t, "data_dir: /srv/trackers\n")

	got, err := ResolveDataPath("", EnvExpensesFile, ExpensesFile)
	if err != nil {
		t.Fatalf("ResolveDataPath() error = %v", err)
	}
	if got != "/srv/trackers/expenses.json" {
		t.Errorf("ResolveDataPath() = %q, want /srv/trackers/expenses.json", got)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	// Missing .env is fine.
	if err := LoadEnv(dir); err != nil {
		t.Fatalf("LoadEnv() without .env error = %v", err)
	}

	t.Setenv(EnvExpensesFile, "")
	os.Unsetenv(EnvExpensesFile)
	if err := os.WriteFile(filepath.Join(dir, EnvFile), []byte(EnvExpensesFile+"=/from/dotenv.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadEnv(dir); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv(EnvExpensesFile); got != "/from/dotenv.json" {
		t.Errorf("%s = %q, want /from/dotenv.json", EnvExpensesFile, got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	if got := ExpandPath("~/x.json"); got != filepath.Join(home, "x.json") {
		t.Errorf("ExpandPath(~/x.json) = %q", got)
	}
	if got := ExpandPath("/abs/x.json"); got != "/abs/x.json" {
		t.Errorf("ExpandPath(/abs/x.json) = %q", got)
	}
}
