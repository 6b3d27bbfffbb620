package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

type RedirectStore interface {
	SaveNetworkRedirects(ctx context.Context, redirects []NetworkRedirect) error
}

type Loader struct {
	builder *Builder
	table   *Table
	store   RedirectStore
	logger  *slog.Logger
	workers int
}

// NewLoader wires a loader; store may be nil when redirects are only kept in
// memory.
func NewLoader(logger *slog.Logger, builder *Builder, table *Table, store RedirectStore, workers int) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Loader{
		builder: builder,
		table:   table,
		store:   store,
		logger:  logger,
		workers: workers,
	}
}

// Load builds redirects for every entry of reg in parallel and appends them to
// the table in registry order. Malformed entries are skipped by the builder;
// only cancellation and store failures are returned.
func (l *Loader) Load(ctx context.Context, reg Registry) (int, error) {
	entries := reg.Entries()
	built := make([][]NetworkRedirect, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			built[i] = l.builder.Build(entry.Key, entry.URLs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("build network redirects: %w", err)
	}

	var redirects []NetworkRedirect
	for _, r := range built {
		redirects = append(redirects, r...)
	}

	if l.store != nil && len(redirects) > 0 {
		if err := l.store.SaveNetworkRedirects(ctx, redirects); err != nil {
			return 0, fmt.Errorf("save network redirects: %w", err)
		}
	}
	l.table.Add(redirects...)

	l.logger.InfoContext(ctx, "bootstrap registry loaded", "entries", len(entries), "redirects", len(redirects), "skipped", len(entries)-len(redirects))
	return len(redirects), nil
}

// LoadFiles reads and loads each registry file in turn.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) (int, error) {
	total := 0
	for _, path := range paths {
		reg, err := ReadRegistry(path)
		if err != nil {
			return total, err
		}
		n, err := l.Load(ctx, reg)
		if err != nil {
			return total, fmt.Errorf("load %s: %w", path, err)
		}
		total += n
	}
	return total, nil
}
