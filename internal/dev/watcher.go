package dev

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/markup/internal/config"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	ChangePage ChangeType = iota
	ChangeCSS
	ChangeAsset
	ChangeConfig
)

func (t ChangeType) String() string {
	switch t {
	case ChangePage:
		return "page"
	case ChangeCSS:
		return "css"
	case ChangeConfig:
		return "config"
	}
	return "asset"
}

// Change represents a detected file change.
type Change struct {
	Path    string
	Type    ChangeType
	Removed bool
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch.
	Paths []string

	// Ignore patterns to skip (names, globs or path segments).
	Ignore []string

	// Interval is the delay between polls.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"tmp",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls files for changes.
type Watcher struct {
	config      WatcherConfig
	onChange    func(Change)
	mu          sync.Mutex
	running     bool
	initialized bool
	stopCh      chan struct{}
	timestamps  map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(cfg WatcherConfig) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = config.DefaultInterval
	}
	if len(cfg.Ignore) == 0 {
		cfg.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     cfg,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stop := w.stopCh
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// walk calls fn for every file under the watched paths that is not
// ignored.
func (w *Watcher) walk(fn func(p string, info os.FileInfo)) {
	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if p != root && w.shouldIgnore(root, p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.shouldIgnore(root, p) {
				fn(p, info)
			}
			return nil
		})
	}
}

// scanInitial records the current modification times.
func (w *Watcher) scanInitial() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.walk(func(p string, info os.FileInfo) {
		w.timestamps[p] = info.ModTime()
	})
	w.initialized = true
}

// checkForChanges reports new, modified and removed files, one change
// per type per poll.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changes []Change
	seen := make(map[string]bool)

	w.mu.Lock()
	w.walk(func(p string, info os.FileInfo) {
		seen[p] = true
		lastMod, exists := w.timestamps[p]
		if exists && !info.ModTime().After(lastMod) {
			return
		}
		w.timestamps[p] = info.ModTime()
		changes = append(changes, Change{Path: p, Type: classifyChange(p)})
	})
	for p := range w.timestamps {
		if !seen[p] {
			delete(w.timestamps, p)
			changes = append(changes, Change{Path: p, Type: classifyChange(p), Removed: true})
		}
	}
	w.mu.Unlock()

	reported := make(map[ChangeType]bool)
	for _, change := range changes {
		if !reported[change.Type] {
			reported[change.Type] = true
			callback(change)
		}
	}
}

// shouldIgnore checks if a path under root should be ignored. Path
// patterns are matched against the part of the path below root.
func (w *Watcher) shouldIgnore(root, fullPath string) bool {
	name := filepath.Base(fullPath)
	rel, err := filepath.Rel(root, fullPath)
	if err != nil || rel == "." {
		rel = name
	}
	normalized := filepath.ToSlash(rel)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if name == pattern {
			return true
		}

		hasPathSep := strings.ContainsAny(pattern, `/\`)
		if strings.ContainsAny(pattern, "*?[") {
			if hasPathSep {
				if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if hasPathSep {
			if hasSegments(normalized, filepath.ToSlash(pattern)) {
				return true
			}
			continue
		}
		if hasSegments(normalized, pattern) {
			return true
		}
	}
	return false
}

// hasSegments reports whether the segments of pattern appear in order,
// adjacent, among the segments of p.
func hasSegments(p, pattern string) bool {
	parts := splitSegments(p)
	want := splitSegments(pattern)
	if len(want) == 0 || len(want) > len(parts) {
		return false
	}
	for i := 0; i <= len(parts)-len(want); i++ {
		match := true
		for j := range want {
			if parts[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func splitSegments(p string) []string {
	var out []string
	for _, part := range strings.Split(p, "/") {
		if part != "" && part != "." {
			out = append(out, part)
		}
	}
	return out
}

// classifyChange determines the type of change from the file name.
func classifyChange(p string) ChangeType {
	if filepath.Base(p) == config.ConfigFileName {
		return ChangeConfig
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		return ChangePage
	case ".css":
		return ChangeCSS
	}
	return ChangeAsset
}
