package dev

import (
	"context"
	"errors"
	"log/slog"

	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/jsonml"
)

// Reloader connects a Watcher to a ReloadServer. Changed pages are
// parsed first, so a broken page shows an overlay instead of a blank
// reload.
type Reloader struct {
	watcher *Watcher
	server  *ReloadServer
	logger  *slog.Logger

	// OnConfigChange is called when markup.json changes.
	OnConfigChange func()
}

// NewReloader creates a reloader. logger may be nil.
func NewReloader(w *Watcher, s *ReloadServer, logger *slog.Logger) *Reloader {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reloader{watcher: w, server: s, logger: logger}
	w.OnChange(r.handle)
	return r
}

// Server returns the reload server, for mounting at ReloadPath.
func (r *Reloader) Server() *ReloadServer {
	return r.server
}

// Run watches until ctx is done.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.server.Close()
	err := r.watcher.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Reloader) handle(c Change) {
	r.logger.Info("file changed", "path", c.Path, "type", c.Type.String(), "removed", c.Removed)

	switch c.Type {
	case ChangePage:
		if !c.Removed {
			if _, err := jsonml.ParseFile(c.Path); err != nil {
				msg := err.Error()
				var me *markuperrors.MarkupError
				if errors.As(err, &me) {
					msg = me.FormatCompact()
				}
				r.logger.Warn("page has errors", "path", c.Path, "error", err)
				r.server.NotifyError(msg)
				return
			}
		}
		r.server.ClearError()
		r.server.NotifyReload()
	case ChangeCSS:
		r.server.NotifyCSS(c.Path)
	case ChangeConfig:
		if r.OnConfigChange != nil {
			r.OnConfigChange()
		}
		r.server.NotifyReload()
	default:
		r.server.NotifyReload()
	}
}
