package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return configPath
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	if cfg.UI.Theme != "sakura" {
		t.Errorf("Expected default theme sakura, got %s", cfg.UI.Theme)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected default output format text, got %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	configPath := writeTempConfig(t, `version: "1.0"
ui:
  theme: minimal
  initial_screen: record
  language: en
record:
  live_timer: true
  tick_interval: 500ms
output:
  default_format: json
logging:
  verbose: true
`)

	cfg, err := NewLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.UI.InitialScreen != "record" {
		t.Errorf("Expected initial screen record, got %s", cfg.UI.InitialScreen)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("Expected language en, got %s", cfg.UI.Language)
	}
	if !cfg.Record.LiveTimer {
		t.Errorf("Expected live timer to be enabled")
	}
	if cfg.Record.TickInterval != 500*time.Millisecond {
		t.Errorf("Expected tick interval 500ms, got %v", cfg.Record.TickInterval)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.DefaultFormat)
	}
	if !cfg.Logging.Verbose {
		t.Errorf("Expected verbose to be true")
	}
}

func TestLoadConfigKeepsUnsetBooleans(t *testing.T) {
	configPath := writeTempConfig(t, `ui:
  theme: default
`)

	cfg, err := NewLoader().LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// emoji and mouse default to true and are absent from the file
	if !cfg.UI.Emoji {
		t.Errorf("Expected emoji to keep its default")
	}
	if !cfg.UI.Mouse {
		t.Errorf("Expected mouse to keep its default")
	}
	if cfg.Record.TickInterval != time.Second {
		t.Errorf("Expected tick interval to keep its default, got %v", cfg.Record.TickInterval)
	}
}

func TestLoadConfigPriority(t *testing.T) {
	dir := t.TempDir()
	high := filepath.Join(dir, "high.yaml")
	low := filepath.Join(dir, "low.yaml")

	if err := os.WriteFile(low, []byte("ui:\n  theme: minimal\n  language: en\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("ui:\n  theme: high-contrast\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{high, low}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.UI.Theme != "high-contrast" {
		t.Errorf("Expected higher priority theme to win, got %s", cfg.UI.Theme)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("Expected lower priority language to survive, got %s", cfg.UI.Language)
	}

	if sources := loader.Sources(); len(sources) != 2 || sources[1] != high {
		t.Errorf("Expected both files applied with %s last, got %v", high, sources)
	}

	path, found := loader.ResolvePath("")
	if !found || path != high {
		t.Errorf("Expected ResolvePath to pick %s, got %s (found=%v)", high, path, found)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := writeTempConfig(t, `version: "1.0"
ui:
  theme: "sakura
`)

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigInvalidValue(t *testing.T) {
	configPath := writeTempConfig(t, "ui:\n  theme: neon\n")

	_, err := NewLoader().LoadConfig(configPath)
	if err == nil || !strings.Contains(err.Error(), "configuration validation failed") {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("OSANPO_UI_THEME", "minimal")
	t.Setenv("OSANPO_UI_EMOJI", "false")
	t.Setenv("OSANPO_RECORD_LIVE_TIMER", "true")
	t.Setenv("OSANPO_RECORD_TICK_INTERVAL", "2s")
	t.Setenv("OSANPO_OUTPUT_DEFAULT_FORMAT", "csv")

	cfg := DefaultConfig()
	if err := NewLoader().applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal, got %s", cfg.UI.Theme)
	}
	if cfg.UI.Emoji {
		t.Errorf("Expected emoji to be disabled")
	}
	if !cfg.Record.LiveTimer {
		t.Errorf("Expected live timer to be enabled")
	}
	if cfg.Record.TickInterval != 2*time.Second {
		t.Errorf("Expected tick interval 2s, got %v", cfg.Record.TickInterval)
	}
	if cfg.Output.DefaultFormat != "csv" {
		t.Errorf("Expected output format csv, got %s", cfg.Output.DefaultFormat)
	}
}

func TestEnvVars(t *testing.T) {
	vars := EnvVars()
	if len(vars) != len(envBindings) {
		t.Fatalf("Expected %d env vars, got %d", len(envBindings), len(vars))
	}
	for i, name := range vars {
		if !strings.HasPrefix(name, EnvPrefix) {
			t.Errorf("Expected %s prefix on %s", EnvPrefix, name)
		}
		if i > 0 && vars[i-1] >= name {
			t.Errorf("Expected sorted env vars, got %s before %s", vars[i-1], name)
		}
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid bool", "OSANPO_UI_MOUSE", "not-a-bool"},
		{"invalid duration", "OSANPO_RECORD_TICK_INTERVAL", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			if err := NewLoader().applyEnvOverrides(DefaultConfig()); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	var duration time.Duration

	if err := parseDuration("30s", &duration); err != nil {
		t.Errorf("Failed to parse duration: %v", err)
	}
	if duration != 30*time.Second {
		t.Errorf("Expected 30s, got %v", duration)
	}
	if err := parseDuration("invalid", &duration); err == nil {
		t.Error("Expected error for invalid duration, but got none")
	}
}

func TestParseBool(t *testing.T) {
	var value bool

	if err := parseBool("true", &value); err != nil || !value {
		t.Errorf("Expected true, got %v (err=%v)", value, err)
	}
	if err := parseBool("false", &value); err != nil || value {
		t.Errorf("Expected false, got %v (err=%v)", value, err)
	}
	if err := parseBool("not-a-bool", &value); err == nil {
		t.Error("Expected error for invalid bool, but got none")
	}
}

func TestFileExists(t *testing.T) {
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	tempFile := filepath.Join(t.TempDir(), "test-file")
	if err := os.WriteFile(tempFile, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{"valid yaml file", "config.yaml", false, ""},
		{"valid yml file", "config.yml", false, ""},
		{"path traversal attempt", "../../../etc/passwd", true, "path traversal not allowed"},
		{"non-yaml file", "config.txt", true, "config file must have .yaml or .yml extension"},
		{"system file access", "/etc/passwd.yaml", true, "access to system files not allowed"},
		{"proc filesystem access", "/proc/version.yaml", true, "access to system files not allowed"},
		{"relative path with valid extension", "./configs/app.yaml", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("./config.yaml"); got != "./config.yaml" {
		t.Errorf("Relative path should be unchanged, got %s", got)
	}
	if got := expandPath("/etc/osanpo/config.yaml"); got != "/etc/osanpo/config.yaml" {
		t.Errorf("Absolute path should be unchanged, got %s", got)
	}
	if got := ExpandPath("~/.config/osanpo/config.yaml"); strings.HasPrefix(got, "~") {
		t.Errorf("Expected home directory expansion, got %s", got)
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Fatalf("Expected 3 config paths, got %d", len(paths))
	}
	if paths[0] != "./.osanpo.yaml" {
		t.Errorf("Expected project config first, got %s", paths[0])
	}
	if paths[2] != "/etc/osanpo/config.yaml" {
		t.Errorf("Expected system config last, got %s", paths[2])
	}
}
