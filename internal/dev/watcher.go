package dev

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangePage ChangeType = iota
	ChangeCSS
	ChangeAsset
)

func (t ChangeType) String() string {
	switch t {
	case ChangePage:
		return "page"
	case ChangeCSS:
		return "css"
	default:
		return "asset"
	}
}

// Change represents a detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch. Directories are
	// watched recursively.
	Paths []string

	// Ignore holds base-name globs and path segments to skip.
	Ignore []string

	// Debounce is how long events are collected before they are reported.
	Debounce time.Duration

	// Logger may be nil.
	Logger *slog.Logger
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher reports file changes under its paths, at most one per change
// type per debounce window.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Watcher{config: config}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches until ctx is done or Stop is called. Directories created
// under a watched directory are watched as they appear.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.fsw = fsw
	w.running = true
	w.mu.Unlock()

	for _, p := range w.config.Paths {
		w.add(p)
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending []Change
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.shouldIgnore(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					w.add(ev.Name)
				}
			}
			pending = append(pending, Change{Path: ev.Name, Type: classifyChange(ev.Name)})
			if timer == nil {
				timer = time.NewTimer(w.config.Debounce)
				timerC = timer.C
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("file watcher error", "error", err)

		case <-timerC:
			timer, timerC = nil, nil
			w.report(pending)
			pending = nil
		}
	}
}

// add watches path, and every directory below it when it is a directory.
func (w *Watcher) add(path string) {
	info, err := os.Stat(path)
	if err != nil {
		w.config.Logger.Warn("cannot watch path", "path", path, "error", err)
		return
	}
	if !info.IsDir() {
		if err := w.fsw.Add(path); err != nil {
			w.config.Logger.Warn("cannot watch path", "path", path, "error", err)
		}
		return
	}
	filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if p != path && w.shouldIgnore(p) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			w.config.Logger.Warn("cannot watch path", "path", p, "error", err)
		}
		return nil
	})
}

// report delivers the first change of each type.
func (w *Watcher) report(changes []Change) {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback == nil {
		return
	}

	reported := make(map[ChangeType]bool)
	for _, c := range changes {
		if !reported[c.Type] {
			reported[c.Type] = true
			callback(c)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		w.fsw.Close()
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// shouldIgnore checks if a path should be ignored.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	segments := strings.Split(filepath.ToSlash(fullPath), "/")

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}
		for _, s := range segments {
			if s == pattern {
				return true
			}
		}
	}
	return false
}

// classifyChange determines the type of change based on file extension.
func classifyChange(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ChangePage
	case ".css":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}
