// Package dev provides hot reload for `markup serve --dev`.
//
//   - Watcher: polls pages, static files and markup.json for changes
//   - ReloadServer: notifies browsers of changes via WebSocket
//   - Reloader: parses changed pages and tells browsers what to do
//
// # Usage
//
//	w := dev.NewWatcher(dev.WatcherConfig{Paths: dev.CollectWatchPaths(cfg)})
//	rl := dev.NewReloader(w, dev.NewReloadServer(logger), logger)
//	router.Handle(dev.ReloadPath, rl.Server())
//	go rl.Run(ctx)
//
// Pages served in dev mode end with a script (ClientScript) that
// connects to ReloadPath.
//
// # Hot Reload Protocol
//
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // full page reload
//	{"type": "css", "file": "..."}    // stylesheet-only reload
//	{"type": "error", "error": "..."} // shows error overlay
//	{"type": "clear"}                 // clears error overlay
package dev
