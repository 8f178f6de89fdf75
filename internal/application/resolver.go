package application

import (
	"context"

	"github.com/fomox/tracescout/internal/core/locator"
	"github.com/fomox/tracescout/internal/core/ports"
	"github.com/fomox/tracescout/internal/core/trace"
	"github.com/fomox/tracescout/internal/core/workspace"
)

// Resolver composes the two locator pipelines into a single resolve
// operation. It is a pure function over its inputs and callable from any
// entry point: the CLI, tests, or an editor integration layer.
type Resolver struct {
	buildLocator *locator.BuildLocator
	traceLocator *locator.TraceLocator
}

// NewResolver creates a Resolver backed by the given searcher.
func NewResolver(searcher ports.FileSearcher) *Resolver {
	return &Resolver{
		buildLocator: locator.NewBuildLocator(searcher),
		traceLocator: locator.NewTraceLocator(searcher),
	}
}

// Resolve locates both the launcher script and the trace archive for the
// identified test. The identifier is validated before any filesystem access;
// the two locator searches are independent and run concurrently, joined
// before the pair is constructed. The first failure wins, launcher lookup
// taking precedence since nothing can be opened without it.
func (r *Resolver) Resolve(ctx context.Context, id trace.TestIdentifier, roots []string, cfg locator.Config) (trace.ResolvedPair, error) {
	if id.Name() == "" {
		return trace.ResolvedPair{}, trace.ErrInvalidIdentifier
	}
	if err := cfg.Validate(); err != nil {
		return trace.ResolvedPair{}, err
	}

	root, err := workspace.PickRoot(roots, id.Origin())
	if err != nil {
		return trace.ResolvedPair{}, err
	}

	type located struct {
		path string
		err  error
	}
	buildCh := make(chan located, 1)
	traceCh := make(chan located, 1)

	go func() {
		path, err := r.buildLocator.Locate(ctx, root, cfg.Flavor, cfg.MaxResults)
		buildCh <- located{path: path, err: err}
	}()
	go func() {
		path, err := r.traceLocator.Locate(ctx, root, id.Name(), cfg.Strategy, cfg.ExtraPatterns, cfg.MaxResults)
		traceCh <- located{path: path, err: err}
	}()

	build := <-buildCh
	archive := <-traceCh

	if build.err != nil {
		return trace.ResolvedPair{}, build.err
	}
	if archive.err != nil {
		return trace.ResolvedPair{}, archive.err
	}

	return trace.ResolvedPair{
		LauncherScript: build.path,
		TraceArchive:   archive.path,
	}, nil
}
