// Package app implements the application layer for refdex.
package app

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/refdex/internal/adapters/watcher"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
	"go.trai.ch/refdex/internal/engine/indexer"
	"go.trai.ch/refdex/internal/engine/search"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// progressPollInterval is how often the progress callback is invoked while a
// build runs.
const progressPollInterval = 100 * time.Millisecond

// ProgressFunc receives build progress while an index pass runs.
type ProgressFunc func(completed, total int)

// App owns the index lifecycle and exposes the operations the CLI invokes.
type App struct {
	settings domain.Settings
	indexer  *indexer.Indexer
	engine   *search.Engine
	store    ports.CacheStore
	tracer   ports.Tracer
	log      ports.Logger
}

// New creates a new App instance.
func New(
	settings domain.Settings,
	ix *indexer.Indexer,
	engine *search.Engine,
	store ports.CacheStore,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		settings: settings,
		indexer:  ix,
		engine:   engine,
		store:    store,
		tracer:   tracer,
		log:      log,
	}
}

// Settings returns the resolved project settings.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Index runs one full build of the corpus under the configured root. The
// build itself steps in bounded batches on a single goroutine; a second
// goroutine polls progress for the optional callback.
func (a *App) Index(ctx context.Context, progress ProgressFunc) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		return a.indexer.Run(ctx, a.settings.Root, a.tracer)
	})

	if progress != nil {
		g.Go(func() error {
			ticker := time.NewTicker(progressPollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					progress(a.indexer.Progress())
					return nil
				case <-ticker.C:
					progress(a.indexer.Progress())
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "index build failed")
	}
	return nil
}

// Search answers a reference query for the given target node. On a cold
// start it first tries to adopt the persisted cache; a missing or corrupt
// file falls back to a full build. This is also the path behind "set new
// target" events from a presentation layer: re-query the built cache, build
// first if needed.
func (a *App) Search(ctx context.Context, target string, progress ProgressFunc) (search.Result, error) {
	if !a.indexer.Initialized() {
		if err := a.ensureIndex(ctx, progress); err != nil {
			return search.Result{}, err
		}
	}
	return a.engine.Query(a.indexer.Snapshot(), target)
}

func (a *App) ensureIndex(ctx context.Context, progress ProgressFunc) error {
	entries, err := a.store.Load()
	if err != nil {
		// Corrupt cache: the store has quarantined the file; rebuild.
		a.log.Warn(fmt.Sprintf("cache unusable, rebuilding: %v", err))
	} else if entries != nil {
		return a.indexer.Adopt(entries)
	}
	return a.Index(ctx, progress)
}

// Watch rebuilds the index whenever the corpus changes, after a debounce
// quiet period. It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context, progress ProgressFunc) error {
	w, err := watcher.New(a.log)
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, a.settings.Root); err != nil {
		return zerr.Wrap(err, "failed to watch corpus root")
	}

	debouncer := watcher.NewDebouncer(a.settings.Debounce)
	defer debouncer.Stop()

	// Initial pass so queries work before the first change arrives.
	if err := a.Index(ctx, progress); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case _, ok := <-w.Events():
				if !ok {
					return nil
				}
				debouncer.Touch()
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case _, ok := <-debouncer.Triggers():
				if !ok {
					return nil
				}
				a.log.Info("corpus changed, rebuilding index")
				if err := a.Index(gctx, progress); err != nil {
					return err
				}
			}
		}
	})

	err = g.Wait()
	if ctx.Err() != nil {
		// Normal shutdown path for watch mode.
		return nil
	}
	return err
}
