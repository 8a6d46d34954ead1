package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeTempConfig(t, "ui:\n  theme: sakura\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(path, []byte("ui:\n  theme: minimal\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				continue
			}
			if r.Config.UI.Theme == "minimal" {
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for config reload")
		}
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := writeTempConfig(t, "ui:\n  theme: sakura\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	// a truncating write may surface first as an empty, valid file
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for reload error")
		}
	}
}

// layeredLoader returns a loader over high.yaml (theme) and low.yaml (language)
func layeredLoader(t *testing.T) (*Loader, string, string) {
	t.Helper()
	dir := t.TempDir()
	high := filepath.Join(dir, "high.yaml")
	low := filepath.Join(dir, "low.yaml")
	if err := os.WriteFile(low, []byte("ui:\n  language: en\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("ui:\n  theme: minimal\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return &Loader{configPaths: []string{high, low}}, high, low
}

func TestWatcherReloadKeepsLowerLayers(t *testing.T) {
	loader, high, _ := layeredLoader(t)

	w, err := loader.Watch("")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() { _ = w.Close() }()

	if w.Path() != high {
		t.Errorf("Expected %s as the watched path, got %s", high, w.Path())
	}

	r := w.reload()
	if r.Err != nil {
		t.Fatalf("Reload failed: %v", r.Err)
	}
	if r.Config.UI.Theme != "minimal" {
		t.Errorf("Expected theme minimal from the high layer, got %s", r.Config.UI.Theme)
	}
	if r.Config.UI.Language != "en" {
		t.Errorf("Expected language en from the low layer, got %s", r.Config.UI.Language)
	}
}

func TestWatcherReloadsOnLowerLayerWrite(t *testing.T) {
	loader, _, low := layeredLoader(t)

	w, err := loader.Watch("")
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer func() { _ = w.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	if err := os.WriteFile(low, []byte("ui:\n  language: ja\n  emoji: false\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-w.Updates():
			if r.Err != nil {
				continue
			}
			if !r.Config.UI.Emoji {
				if r.Config.UI.Theme != "minimal" {
					t.Errorf("Expected the high layer to survive, got theme %s", r.Config.UI.Theme)
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for config reload")
		}
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	if _, err := NewWatcher("/path/that/does/not/exist/config.yaml"); err == nil {
		t.Error("Expected error watching a missing directory")
	}
}
