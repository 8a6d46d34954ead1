package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths are searched highest priority first
var ConfigPaths = []string{
	"./.osanpo.yaml",
	"~/.config/osanpo/config.yaml",
	"/etc/osanpo/config.yaml",
}

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "OSANPO_"

// blockedPrefixes are never read as config, whatever the extension
var blockedPrefixes = []string{"/etc/passwd", "/etc/shadow", "/proc/", "/sys/"}

// envBinding maps one OSANPO_* variable onto a config field
type envBinding struct {
	suffix string
	apply  func(cfg *Config, value string) error
}

var envBindings = []envBinding{
	{"UI_THEME", func(c *Config, v string) error { c.UI.Theme = v; return nil }},
	{"UI_INITIAL_SCREEN", func(c *Config, v string) error { c.UI.InitialScreen = v; return nil }},
	{"UI_LANGUAGE", func(c *Config, v string) error { c.UI.Language = v; return nil }},
	{"UI_EMOJI", func(c *Config, v string) error { return parseBool(v, &c.UI.Emoji) }},
	{"UI_COLOR_MODE", func(c *Config, v string) error { c.UI.ColorMode = v; return nil }},
	{"UI_MOUSE", func(c *Config, v string) error { return parseBool(v, &c.UI.Mouse) }},
	{"RECORD_LIVE_TIMER", func(c *Config, v string) error { return parseBool(v, &c.Record.LiveTimer) }},
	{"RECORD_TICK_INTERVAL", func(c *Config, v string) error { return parseDuration(v, &c.Record.TickInterval) }},
	{"RECORD_TOILET_COUNTERS", func(c *Config, v string) error { return parseBool(v, &c.Record.ToiletCounters) }},
	{"OUTPUT_DEFAULT_FORMAT", func(c *Config, v string) error { c.Output.DefaultFormat = v; return nil }},
	{"LOGGING_FILE", func(c *Config, v string) error { c.Logging.File = v; return nil }},
	{"LOGGING_VERBOSE", func(c *Config, v string) error { return parseBool(v, &c.Logging.Verbose) }},
}

// EnvVars lists every recognised environment variable, sorted
func EnvVars() []string {
	names := make([]string, 0, len(envBindings))
	for _, b := range envBindings {
		names = append(names, EnvPrefix+b.suffix)
	}
	sort.Strings(names)
	return names
}

// Loader layers defaults, config files and the environment
type Loader struct {
	configPaths []string
	sources     []string
}

// NewLoader creates a loader over the standard search paths
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig builds the effective configuration. An explicit customPath is
// the only file read; otherwise every existing search path is layered with
// the highest priority file applied last. Environment overrides win over
// both, and flags are folded in by the caller.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	cfg := DefaultConfig()
	l.sources = l.sources[:0]

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.overlay(cfg, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := l.overlay(cfg, path); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping config %s: %v\n", path, err)
			}
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Sources lists the files applied by the last LoadConfig, lowest priority first
func (l *Loader) Sources() []string {
	return append([]string(nil), l.sources...)
}

// ResolvePath returns the highest priority file LoadConfig would read for
// customPath. The bool is false when only defaults apply.
func (l *Loader) ResolvePath(customPath string) (string, bool) {
	if customPath != "" {
		return customPath, fileExists(customPath)
	}
	for _, p := range l.configPaths {
		if path := expandPath(p); fileExists(path) {
			return path, true
		}
	}
	return "", false
}

// overlay decodes a YAML file on top of cfg. Keys missing from the file
// keep their current values, booleans included.
func (l *Loader) overlay(cfg *Config, path string) error {
	// #nosec G304 - path is a search path or passed validateConfigPath
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	layered := *cfg
	if err := yaml.Unmarshal(data, &layered); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	*cfg = layered
	l.sources = append(l.sources, path)
	return nil
}

func (l *Loader) applyEnvOverrides(cfg *Config) error {
	for _, b := range envBindings {
		name := EnvPrefix + b.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := b.apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}
	return nil
}

// GetConfigPaths returns the search paths with ~ expanded
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	return NewLoader().ResolvePath("")
}

func validateConfigPath(path string) error {
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	switch strings.ToLower(filepath.Ext(cleaned)) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	for _, prefix := range blockedPrefixes {
		if strings.HasPrefix(abs, prefix) {
			return fmt.Errorf("access to system files not allowed")
		}
	}
	return nil
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	return expandPath(path)
}

func expandPath(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func parseBool(s string, dst *bool) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
