package dev

import (
	"path/filepath"

	"github.com/vango-dev/markup/internal/config"
)

// CollectWatchPaths returns the deduplicated paths to watch for a
// project: the pages, the static files, markup.json and dev.watch.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{
		cfg.PagesPath(),
		cfg.StaticPath(),
		filepath.Join(cfg.Dir(), config.ConfigFileName),
	}
	paths = append(paths, cfg.WatchPaths()...)

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}
