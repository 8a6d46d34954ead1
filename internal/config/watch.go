package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered by a Watcher after the watched file changed. Err is set
// when the new file could not be loaded; Config is nil in that case.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher reloads the configuration whenever one of its files is written.
// Reloads layer the same files LoadConfig would for the original customPath.
type Watcher struct {
	path       string
	customPath string
	files      map[string]bool
	loader     *Loader
	watcher    *fsnotify.Watcher
	updates    chan Reload
}

// NewWatcher watches the single config file at path
func NewWatcher(path string) (*Watcher, error) {
	return NewLoader().Watch(path)
}

// Watch watches the files LoadConfig(customPath) reads. The parent
// directories are watched so that editors replacing a file atomically are
// still noticed.
func (l *Loader) Watch(customPath string) (*Watcher, error) {
	path, found := l.ResolvePath(customPath)
	if !found {
		return nil, fmt.Errorf("no config file to watch")
	}

	files := map[string]bool{filepath.Clean(path): true}
	if customPath == "" {
		for _, p := range l.configPaths {
			if expanded := expandPath(p); fileExists(expanded) {
				files[filepath.Clean(expanded)] = true
			}
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for file := range files {
		dir := filepath.Dir(file)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch config directory: %w", err)
		}
	}

	return &Watcher{
		path:       filepath.Clean(path),
		customPath: customPath,
		files:      files,
		loader:     &Loader{configPaths: l.configPaths},
		watcher:    fw,
		updates:    make(chan Reload, 1),
	}, nil
}

// Path returns the highest priority watched file
func (w *Watcher) Path() string {
	return w.path
}

// Updates returns the channel of reload results
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.updates)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.publish(ctx, w.reload())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.publish(ctx, Reload{Err: fmt.Errorf("watcher error: %w", err)})
		}
	}
}

// Close stops the underlying fsnotify watcher
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.files[filepath.Clean(event.Name)] {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func (w *Watcher) reload() Reload {
	cfg, err := w.loader.LoadConfig(w.customPath)
	if err != nil {
		return Reload{Err: err}
	}
	return Reload{Config: cfg}
}

// publish keeps only the newest reload when the consumer lags behind
func (w *Watcher) publish(ctx context.Context, r Reload) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- r:
	case <-ctx.Done():
	}
}
