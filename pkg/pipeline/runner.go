package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/radarhq/techradar/pkg/cache"
	"github.com/radarhq/techradar/pkg/observability"
	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/radar/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Load
	input := opts.Input
	if opts.UseSample {
		input = "sample"
	}
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, input)
	ds, err := Load(ctx, opts)
	observability.Pipeline().OnLoadComplete(ctx, input, dsItemCount(ds), time.Since(loadStart), err)
	if err != nil {
		return nil, err
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ItemCount = len(ds.Items)
	result.Stats.SkippedCount = len(ds.Warnings)

	for _, w := range ds.Warnings {
		logger.Warn("skipped record", "detail", w)
	}
	logger.Info("loaded items",
		"items", len(ds.Items),
		"skipped", len(ds.Warnings),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	c, layoutData, layoutHit, err := r.AssembleWithCacheInfo(ctx, ds, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit
	if result.Layout, err = sink.ParseJSON(layoutData); err != nil {
		return nil, err
	}

	logger.Info("computed layout",
		"markers", len(result.Layout.Markers),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, layoutData, ds, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// AssembleWithCacheInfo runs the layout stage with caching. It returns
// the assembled chart together with its serialized layout and whether
// the serialized form came from cache.
//
// The chart is deliberately assembled before the cache is consulted:
// the SVG/PNG/PDF sinks need the live chart regardless of a hit, and
// assembly is deterministic and cheap relative to rendering. What the
// layout cache buys is not skipped assembly here but stable artifact
// keys - a hit returns the previously stored bytes, whose hash anchors
// the artifact cache - plus skipped relaxation work on the paths that
// only need the serialized layout (the browse TUI). Checking the cache
// first would save nothing whenever a non-JSON format is requested.
func (r *Runner) AssembleWithCacheInfo(ctx context.Context, ds *Dataset, opts Options) (*chart.Chart, []byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	observability.Pipeline().OnLayoutStart(ctx, opts.Section, len(ds.Items))
	start := time.Now()

	c, err := AssembleChart(ds, opts)
	if err != nil {
		observability.Pipeline().OnLayoutComplete(ctx, opts.Section, time.Since(start), err)
		return nil, nil, false, err
	}
	layoutData, err := sink.RenderJSON(c)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Section, time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	cacheKey := r.Keyer.LayoutKey(ds.Hash, opts.LayoutKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "layout")
			return c, data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	if err := r.Cache.Set(ctx, cacheKey, layoutData, cache.TTLLayout); err == nil {
		observability.Cache().OnCacheSet(ctx, "layout", len(layoutData))
	}

	return c, layoutData, false, nil
}

// Assemble is a convenience wrapper that discards the cache hit info.
func (r *Runner) Assemble(ctx context.Context, ds *Dataset, opts Options) (*chart.Chart, error) {
	c, _, _, err := r.AssembleWithCacheInfo(ctx, ds, opts)
	return c, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *chart.Chart, layoutData []byte, ds *Dataset, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Artifact keys derive from the layout hash, which encodes both the
	// dataset and the layout options.
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromChart(c, ds.Items, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func dsItemCount(ds *Dataset) int {
	if ds == nil {
		return 0
	}
	return len(ds.Items)
}
