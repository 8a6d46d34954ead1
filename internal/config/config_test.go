package config

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}
	if cfg.UI.InitialScreen != "dashboard" {
		t.Errorf("Expected initial screen dashboard, got %s", cfg.UI.InitialScreen)
	}
	if cfg.UI.Language != "ja" {
		t.Errorf("Expected language ja, got %s", cfg.UI.Language)
	}
	if cfg.Record.LiveTimer {
		t.Errorf("Expected live timer to be off by default")
	}
	if cfg.Record.ToiletCounters {
		t.Errorf("Expected toilet counters to be off by default")
	}
	if cfg.Record.TickInterval != time.Second {
		t.Errorf("Expected tick interval 1s, got %v", cfg.Record.TickInterval)
	}
	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "empty config",
			config:  &Config{},
			wantErr: false,
		},
		{
			name:    "invalid theme",
			config:  &Config{UI: UIConfig{Theme: "neon"}},
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal, sakura)",
		},
		{
			name:    "invalid language",
			config:  &Config{UI: UIConfig{Language: "fr"}},
			wantErr: true,
			errMsg:  "invalid language: fr (must be one of: ja, en)",
		},
		{
			name:    "invalid color mode",
			config:  &Config{UI: UIConfig{ColorMode: "invalid"}},
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "unknown initial screen is allowed",
			config:  &Config{UI: UIConfig{InitialScreen: "pets"}},
			wantErr: false,
		},
		{
			name:    "live timer with tiny interval",
			config:  &Config{Record: RecordConfig{LiveTimer: true, TickInterval: time.Millisecond}},
			wantErr: true,
			errMsg:  "tick_interval must be at least 100ms when live_timer is enabled",
		},
		{
			name:    "negative interval",
			config:  &Config{Record: RecordConfig{TickInterval: -time.Second}},
			wantErr: true,
			errMsg:  "tick_interval must be non-negative",
		},
		{
			name:    "invalid output format",
			config:  &Config{Output: OutputConfig{DefaultFormat: "invalid"}},
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: text, json, markdown, csv)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			if !strings.Contains(content, "version:") {
				t.Errorf("Sample config should declare a version")
			}
			path := writeTempConfig(t, content)
			cfg, err := NewLoader().LoadConfig(path)
			if err != nil {
				t.Fatalf("Sample config failed to load: %v", err)
			}
			if cfg.UI.Theme != "sakura" {
				t.Errorf("Expected theme sakura, got %s", cfg.UI.Theme)
			}
		})
	}
}

func TestRecordConfigJSON(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     string
	}{
		{time.Second, `"tick_interval":"1s"`},
		{500 * time.Millisecond, `"tick_interval":"500ms"`},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Record.TickInterval = tt.interval
		cfg.Record.LiveTimer = true

		data, err := json.Marshal(cfg)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if !strings.Contains(string(data), tt.want) {
			t.Errorf("Expected %s in %s", tt.want, data)
		}
		if !strings.Contains(string(data), `"live_timer":true`) {
			t.Errorf("Expected the other record fields to be kept, got %s", data)
		}
	}
}
