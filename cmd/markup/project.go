package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vango-dev/markup/internal/config"
	markuperrors "github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attr"
	"github.com/vango-dev/markup/pkg/middleware"
	"github.com/vango-dev/markup/pkg/render"
	"github.com/vango-dev/markup/pkg/server"
)

type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// project is a loaded markup.json with the shared runtime built from
// it.
type project struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	cache    *attr.Cache
}

// loadProject loads markup.json. With optional set, a missing file
// yields the defaults relative to the working directory.
func loadProject(opts *globalOptions, optional bool) (*project, error) {
	if opts.noColor {
		markuperrors.DisableColors()
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		var me *markuperrors.MarkupError
		if !optional || !errors.As(err, &me) || me.Code != "E141" {
			return nil, err
		}
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	p := &project{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}

	var cacheOpts []attr.CacheOption
	if cfg.Metrics.Enabled {
		p.registry = prometheus.NewRegistry()
		p.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		p.metrics = middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(p.registry),
		)
		cacheOpts = append(cacheOpts, attr.WithObserver(p.metrics))
	}
	p.cache = attr.NewCache(cfg.CacheCapacity(), cacheOpts...)
	return p, nil
}

// site returns the pages of the project in their document shell.
func (p *project) site() *server.Site {
	return &server.Site{
		Dir:         p.cfg.PagesPath(),
		Title:       p.cfg.Server.Title,
		Lang:        p.cfg.Server.Lang,
		StyleSheets: p.cfg.Server.StyleSheets,
		Options: []render.Option{
			render.WithCache(p.cache),
			render.WithLogger(p.logger),
		},
	}
}
