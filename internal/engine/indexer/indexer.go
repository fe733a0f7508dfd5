// Package indexer implements the batched, cancellable index build.
package indexer

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/core/ports"
	"go.trai.ch/zerr"
)

// StepResult reports the outcome of one build step.
type StepResult struct {
	// Done is true once the build has finished, whether it completed or
	// was cancelled.
	Done bool
	// Cancelled is true when the build ended at a cancellation boundary.
	Cancelled bool
	// Completed is the number of corpus nodes processed so far.
	Completed int
	// Total is the corpus size fixed at Start.
	Total int
	// Skipped counts nodes whose resolution failed and were left out of
	// the index.
	Skipped int
}

// Indexer owns the graph cache lifecycle: construct empty, build or adopt a
// loaded snapshot, query via Snapshot, rebuild wholesale.
//
// One build may be active at a time. Queries always read the committed
// cache; an in-progress build mutates a private cache that is swapped in
// atomically on completion, so readers never observe a half-built index.
type Indexer struct {
	enumerator ports.Enumerator
	resolver   ports.DependencyResolver
	store      ports.CacheStore
	log        ports.Logger
	batchSize  int

	mu        sync.Mutex
	committed *domain.GraphCache
	build     *buildState
}

// buildState is the private state of one in-progress build.
type buildState struct {
	cache     *domain.GraphCache
	pending   []domain.InternedString
	cursor    int
	skipped   int
	cancelled bool
}

// New creates a new Indexer. A batchSize of zero or less falls back to the
// default.
func New(
	enumerator ports.Enumerator,
	resolver ports.DependencyResolver,
	store ports.CacheStore,
	log ports.Logger,
	batchSize int,
) *Indexer {
	if batchSize <= 0 {
		batchSize = domain.DefaultBatchSize
	}
	return &Indexer{
		enumerator: enumerator,
		resolver:   resolver,
		store:      store,
		log:        log,
		batchSize:  batchSize,
		committed:  domain.NewGraphCache(),
	}
}

// Start begins a new build over the corpus under root. It enumerates the
// candidate nodes, which fixes the progress total. Starting while another
// build is active returns domain.ErrBuildActive.
//
// An empty corpus commits an initialized empty cache immediately; the first
// Step then reports done.
func (ix *Indexer) Start(_ context.Context, root string) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if ix.build != nil {
		return zerr.With(zerr.Wrap(domain.ErrBuildActive, ""), "root", root)
	}

	nodes, err := ix.enumerator.ListNodes(root)
	if err != nil {
		// Enumeration failure is recovered locally: warn and build an
		// empty index rather than failing the host.
		ix.log.Warn(fmt.Sprintf("enumeration failed for %q: %v", root, err))
		nodes = nil
	}

	ix.build = &buildState{
		cache:   domain.NewGraphCache(),
		pending: nodes,
	}
	return nil
}

// Step processes one batch of nodes and returns control. Cancellation is
// observed only here, at the batch boundary, never mid-batch. The final
// batch commits the cache, marks it initialized and persists it.
func (ix *Indexer) Step(_ context.Context) (StepResult, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	b := ix.build
	if b == nil {
		return StepResult{}, domain.ErrNoActiveBuild
	}

	if b.cancelled {
		// Discard everything accumulated; the previously committed cache
		// (possibly empty and uninitialized) stays as it was.
		ix.build = nil
		return StepResult{
			Done:      true,
			Cancelled: true,
			Completed: b.cursor,
			Total:     len(b.pending),
			Skipped:   b.skipped,
		}, nil
	}

	end := min(b.cursor+ix.batchSize, len(b.pending))
	for _, node := range b.pending[b.cursor:end] {
		deps, err := ix.resolver.Resolve(node)
		if err != nil {
			// A single node failing to resolve is non-fatal: skip it and
			// keep the build going.
			b.skipped++
			ix.log.Warn(fmt.Sprintf("skipping %s: %v", node.String(), err))
			continue
		}
		b.cache.Touch(node)
		for _, dep := range deps {
			b.cache.AddEdge(node, dep)
		}
	}
	b.cursor = end

	res := StepResult{
		Completed: b.cursor,
		Total:     len(b.pending),
		Skipped:   b.skipped,
	}
	if b.cursor < len(b.pending) {
		return res, nil
	}

	// Full pass finished without cancellation: commit and persist.
	b.cache.MarkInitialized()
	ix.committed = b.cache
	ix.build = nil
	res.Done = true

	if err := ix.store.Save(b.cache.ReverseEntries()); err != nil {
		// The in-memory cache remains authoritative for this session.
		ix.log.Warn(fmt.Sprintf("persisting cache failed: %v", err))
	}
	return res, nil
}

// Cancel requests cooperative cancellation. The active build stops at its
// next Step boundary and discards all accumulated state. Cancelling with no
// active build is a no-op.
func (ix *Indexer) Cancel() {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.build != nil {
		ix.build.cancelled = true
	}
}

// Run drives a complete build: Start, then Step until done. Progress is
// reported on a tracer span per batch. A context cancellation converts into
// a cooperative Cancel and returns ctx.Err(); an external Cancel ends the
// build without error.
func (ix *Indexer) Run(ctx context.Context, root string, tracer ports.Tracer) error {
	if err := ix.Start(ctx, root); err != nil {
		return err
	}

	ctx, span := tracer.Start(ctx, "index "+root)
	defer span.End()

	for {
		if ctx.Err() != nil {
			ix.Cancel()
		}

		res, err := ix.Step(ctx)
		if err != nil {
			span.RecordError(err)
			return err
		}

		span.SetAttribute("completed", res.Completed)
		span.SetAttribute("total", res.Total)

		if res.Cancelled {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		if res.Done {
			if res.Skipped > 0 {
				ix.log.Warn(fmt.Sprintf("indexed %d nodes, skipped %d", res.Completed-res.Skipped, res.Skipped))
			}
			return nil
		}
	}
}

// Adopt installs a loaded reverse-map snapshot as the committed cache,
// marking it initialized without running a build. Adoption is rejected while
// a build is active.
func (ix *Indexer) Adopt(entries []domain.ReverseEntry) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.build != nil {
		return domain.ErrBuildActive
	}
	ix.committed = domain.FromReverse(entries)
	return nil
}

// Snapshot returns the committed cache. It may be empty and uninitialized if
// no build or load has completed yet.
func (ix *Indexer) Snapshot() *domain.GraphCache {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.committed
}

// Initialized reports whether the committed cache is queryable.
func (ix *Indexer) Initialized() bool {
	return ix.Snapshot().Initialized()
}

// Active reports whether a build is currently running.
func (ix *Indexer) Active() bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.build != nil
}

// Progress returns the completed and total node counts of the active build.
// With no active build it reports the committed cache as fully processed.
func (ix *Indexer) Progress() (completed, total int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.build != nil {
		return ix.build.cursor, len(ix.build.pending)
	}
	n := ix.committed.NodeCount()
	return n, n
}

// Skipped returns the skip count of the active build, or zero when idle.
func (ix *Indexer) Skipped() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.build != nil {
		return ix.build.skipped
	}
	return 0
}
