package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Record  RecordConfig  `yaml:"record" json:"record"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// UIConfig configures the interactive app
type UIConfig struct {
	Theme         string `yaml:"theme" json:"theme"`                   // default|high-contrast|minimal|sakura
	InitialScreen string `yaml:"initial_screen" json:"initial_screen"` // unknown names open the dashboard
	Language      string `yaml:"language" json:"language"`             // ja|en
	Emoji         bool   `yaml:"emoji" json:"emoji"`
	ColorMode     string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Mouse         bool   `yaml:"mouse" json:"mouse"`
}

// RecordConfig configures the record screen
type RecordConfig struct {
	LiveTimer      bool          `yaml:"live_timer" json:"live_timer"`
	TickInterval   time.Duration `yaml:"tick_interval" json:"tick_interval"`
	ToiletCounters bool          `yaml:"toilet_counters" json:"toilet_counters"`
}

// MarshalJSON writes tick_interval as a duration string, the same form the
// YAML file uses
func (r RecordConfig) MarshalJSON() ([]byte, error) {
	type plain RecordConfig
	return json.Marshal(struct {
		plain
		TickInterval string `json:"tick_interval"`
	}{plain(r), r.TickInterval.String()})
}

// OutputConfig configures non-interactive output
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
}

// LoggingConfig configures the log file
type LoggingConfig struct {
	File    string `yaml:"file" json:"file"`
	Verbose bool   `yaml:"verbose" json:"verbose"`
}

// Accepted values, shared with the packages that consume them
var (
	Themes      = []string{"default", "high-contrast", "minimal", "sakura"}
	Languages   = []string{"ja", "en"}
	Formats     = []string{"text", "json", "markdown", "csv"}
	ColorModes  = []string{"auto", "always", "never"}
	MinInterval = 100 * time.Millisecond
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:         "sakura",
			InitialScreen: "dashboard",
			Language:      "ja",
			Emoji:         true,
			ColorMode:     "auto",
			Mouse:         true,
		},
		Record: RecordConfig{
			LiveTimer:      false,
			TickInterval:   time.Second,
			ToiletCounters: false,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
		Logging: LoggingConfig{
			File:    "~/.cache/osanpo/osanpo.log",
			Verbose: false,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateRecordConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates UI-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" && !contains(Themes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal, sakura)", c.UI.Theme)
	}
	if c.UI.Language != "" && !contains(Languages, c.UI.Language) {
		return fmt.Errorf("invalid language: %s (must be one of: ja, en)", c.UI.Language)
	}
	if c.UI.ColorMode != "" && !contains(ColorModes, c.UI.ColorMode) {
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.UI.ColorMode)
	}
	return nil
}

// validateRecordConfig validates record-screen configuration
func (c *Config) validateRecordConfig() error {
	if c.Record.LiveTimer && c.Record.TickInterval < MinInterval {
		return fmt.Errorf("tick_interval must be at least %s when live_timer is enabled", MinInterval)
	}
	if c.Record.TickInterval < 0 {
		return fmt.Errorf("tick_interval must be non-negative")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" && !contains(Formats, c.Output.DefaultFormat) {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown, csv)", c.Output.DefaultFormat)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
