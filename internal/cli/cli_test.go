package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/osanpo/internal/emoji"
	"github.com/yildizm/osanpo/internal/logger"
	"github.com/yildizm/osanpo/internal/ui"
)

// execute runs the root command with args and returns stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	// keep the search paths away from any real config
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--no-emoji"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "osanpo 1.2.3 (abc123) built on 2026-01-01") {
		t.Errorf("Unexpected version output %q", out)
	}
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "1.2.3\n" {
		t.Errorf("Expected bare version, got %q", out)
	}
}

func TestBuildLabel(t *testing.T) {
	tests := []struct {
		value, placeholder, want string
	}{
		{"v0.3.0", "dev", "v0.3.0"},
		{"dev", "dev", "fallback"},
		{"", "none", "fallback"},
	}

	for _, tt := range tests {
		if got := buildLabel(tt.value, tt.placeholder, "fallback"); got != tt.want {
			t.Errorf("buildLabel(%q, %q) = %q, want %q", tt.value, tt.placeholder, got, tt.want)
		}
	}
}

func TestShowScreens(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"show"}, "Walking Buddies"},
		{[]string{"show", "record"}, "00:00"},
		{[]string{"show", "history"}, "昨日 16:00"},
		{[]string{"show", "stats"}, "4.5時間"},
		{[]string{"show", "settings"}, "Notion連携"},
		{[]string{"show", "nowhere"}, "Walking Buddies"},
		{[]string{"show", "history", "-o", "csv"}, "ID,Pet,Time"},
		{[]string{"show", "stats", "--output", "markdown"}, "# osanpo: Stats"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("show failed: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected %q in output:\n%s", tt.want, out)
			}
		})
	}
}

func TestShowJSONSelectedPet(t *testing.T) {
	out, err := execute(t, "show", "dashboard", "-o", "json", "--pet", "5")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}

	var decoded struct {
		Screen string `json:"screen"`
		Pets   []struct {
			Name     string `json:"name"`
			Selected bool   `json:"selected"`
		} `json:"pets"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v\n%s", err, out)
	}
	if decoded.Screen != "dashboard" {
		t.Errorf("Expected dashboard, got %s", decoded.Screen)
	}
	if len(decoded.Pets) != 2 || decoded.Pets[0].Selected || !decoded.Pets[1].Selected {
		t.Errorf("Expected the out-of-range pet index clamped to the last pet, got %+v", decoded.Pets)
	}
}

func TestShowUnknownFormat(t *testing.T) {
	if _, err := execute(t, "show", "-o", "yaml"); err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

func TestShowUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "osanpo.yaml")
	content := "ui:\n  initial_screen: stats\noutput:\n  default_format: json\nlogging:\n  file: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, `"screen": "stats"`) {
		t.Errorf("Expected config defaults to pick the stats screen as JSON, got:\n%s", out)
	}
}

func TestConfigInitValidateShow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--output", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "Configuration file created at: "+path) {
		t.Errorf("Unexpected init output %q", out)
	}

	if _, err := execute(t, "config", "init", "--output", path); err == nil {
		t.Error("Expected init to refuse overwriting without --force")
	}
	if _, err := execute(t, "config", "init", "--output", path, "--force", "--minimal"); err != nil {
		t.Errorf("Expected --force to overwrite: %v", err)
	}

	out, err = execute(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid") || !strings.Contains(out, "sakura") {
		t.Errorf("Unexpected validate output %q", out)
	}

	out, err = execute(t, "--config", path, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, `"tick_interval": "1s"`) {
		t.Errorf("Expected a duration string for tick_interval, got %q", out)
	}
	if !strings.Contains(out, `"theme": "sakura"`) {
		t.Errorf("Unexpected show output %q", out)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  language: fr\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "config", "validate")
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(out, "Configuration validation failed") {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	for _, want := range []string{"./.osanpo.yaml", "/etc/osanpo/config.yaml", "OSANPO_RECORD_LIVE_TIMER", "No config file found"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output %q", want, out)
		}
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := execute(t, "walk"); err == nil {
		t.Error("Expected unknown command error")
	}
}

func TestWatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "osanpo.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  theme: minimal\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	saved := cfgFile
	cfgFile = path
	defer func() { cfgFile = saved }()

	var buf bytes.Buffer
	log := logger.NewWithCallback("cli", func() bool { return true })
	log.SetOutput(&buf)

	var opts ui.Options
	stop, err := watchConfig(t.Context(), log, &opts)
	if err != nil {
		t.Fatalf("watchConfig failed: %v", err)
	}
	defer stop()

	if opts.Reloads == nil {
		t.Error("Expected the reload channel to be wired into the options")
	}
	if !strings.Contains(buf.String(), "watching "+path) {
		t.Errorf("Expected the watched path in the log, got %q", buf.String())
	}
}
