package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/vango-dev/markup/internal/dev"
	"github.com/vango-dev/markup/pkg/server"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		port   int
		host   string
		devMod bool
		stream bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pages over HTTP",
		Long: `Serve the pages directory over HTTP, rendering on every request.

With --dev the pages, static files and markup.json are watched and
connected browsers reload when they change. A page that fails to parse
shows an error overlay instead.

Examples:
  markup serve
  markup serve --dev
  markup serve --port=8080 --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts, false)
			if err != nil {
				return err
			}
			if port != 0 {
				p.cfg.Server.Port = port
			}
			if host != "" {
				p.cfg.Server.Host = host
			}
			if err := p.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := server.Config{
				Address:        p.cfg.Address(),
				Site:           p.site(),
				Static:         p.cfg.StaticPath(),
				CacheControl:   server.CacheControlProduction,
				Stream:         stream,
				Metrics:        p.metrics,
				TracerProvider: otel.GetTracerProvider(),
				Logger:         p.logger,
			}
			if p.registry != nil {
				cfg.Gatherer = p.registry
			}

			if devMod {
				cfg.CacheControl = server.CacheControlNone
				if p.cfg.Dev.HotReload {
					reloader, err := startReloader(ctx, p)
					if err != nil {
						return err
					}
					cfg.Reload = reloader.Server()
				}
			}

			out := cmd.OutOrStdout()
			success(out, "Serving %s", p.cfg.URL())
			info(out, "pages   %s", p.cfg.PagesPath())
			if cfg.Gatherer != nil {
				info(out, "metrics %s/metrics", p.cfg.URL())
			}
			if cfg.Reload != nil {
				info(out, "reload  watching every %s", p.cfg.Dev.Interval)
			}

			return server.New(cfg).Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from markup.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from markup.json)")
	cmd.Flags().BoolVar(&devMod, "dev", false, "Watch files and reload browsers")
	cmd.Flags().BoolVar(&stream, "stream", false, "Send the document head before rendering the body")

	return cmd
}

// startReloader watches the project until ctx is done.
func startReloader(ctx context.Context, p *project) (*dev.Reloader, error) {
	interval, err := p.cfg.PollInterval()
	if err != nil {
		return nil, err
	}
	ignore := append([]string{}, dev.DefaultIgnore...)
	ignore = append(ignore, p.cfg.Dev.Ignore...)

	w := dev.NewWatcher(dev.WatcherConfig{
		Paths:    dev.CollectWatchPaths(p.cfg),
		Ignore:   ignore,
		Interval: interval,
	})
	r := dev.NewReloader(w, dev.NewReloadServer(p.logger), p.logger)
	r.OnConfigChange = func() {
		p.logger.Warn("markup.json changed, restart the server to apply it")
	}
	go func() {
		if err := r.Run(ctx); err != nil {
			p.logger.Error("watcher stopped", "error", err)
		}
	}()
	return r, nil
}
