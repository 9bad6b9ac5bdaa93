package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/vango-dev/markup/pkg/server"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Concurrency is the number of pages rendered at once. Default:
	// GOMAXPROCS.
	Concurrency int

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Result describes a finished build.
type Result struct {
	// Keys are the stored documents, sorted.
	Keys []string

	// Bytes is the total size of the stored documents.
	Bytes int

	Duration time.Duration
}

// Build renders every page of site and stores it in sink. Every page
// is attempted; the failures are returned joined, each naming its
// route.
func Build(ctx context.Context, site *server.Site, sink Sink, opts BuildOptions) (*Result, error) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	start := time.Now()
	routes, err := site.Routes()
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		res  = &Result{}
		errs []error
		wg   sync.WaitGroup
	)
	jobs := make(chan string)
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for route := range jobs {
				key, n, err := publishPage(ctx, site, sink, route)
				mu.Lock()
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", route, err))
				} else {
					res.Keys = append(res.Keys, key)
					res.Bytes += n
				}
				mu.Unlock()
				if err != nil {
					opts.Logger.Warn("page failed", "route", route, "error", err)
				} else {
					opts.Logger.Debug("page published", "route", route, "key", key, "bytes", n)
				}
			}
		}()
	}

	canceled := func() {
		mu.Lock()
		errs = append(errs, ctx.Err())
		mu.Unlock()
	}
feed:
	for _, route := range routes {
		if ctx.Err() != nil {
			canceled()
			break
		}
		select {
		case jobs <- route:
		case <-ctx.Done():
			canceled()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sort.Strings(res.Keys)
	res.Duration = time.Since(start)
	opts.Logger.Info("build finished", "pages", len(res.Keys), "failed", len(errs), "bytes", res.Bytes, "duration", res.Duration)
	return res, errors.Join(errs...)
}

func publishPage(ctx context.Context, site *server.Site, sink Sink, route string) (string, int, error) {
	host := site.Host(map[string]any{"path": route})
	out, err := site.Render(ctx, route, host)
	if err != nil {
		return "", 0, err
	}
	key := server.OutputFile(route)
	if err := sink.Put(ctx, key, out); err != nil {
		return "", 0, err
	}
	return key, len(out), nil
}
