package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoresheet/pkg/cache"
	"github.com/matzehuels/scoresheet/pkg/io"
	"github.com/matzehuels/scoresheet/pkg/observability"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/score"
)

const keyTypeArtifact = "artifact"

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
// When opts.Output is set the PNG is written there after it has been fully
// encoded; on any error nothing is written.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Load
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks.OnLoadStart(ctx, opts.Input)
	loadStart := time.Now()
	doc, data, err := Load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Input, 0, result.Stats.LoadTime, err)
		return nil, err
	}
	result.Document = doc
	result.ChartHash = cache.Hash(data)
	result.Stats.Notes = len(doc.Notes)
	hooks.OnLoadComplete(ctx, opts.Input, len(doc.Notes), result.Stats.LoadTime, nil)

	r.Logger.Info("loaded chart",
		"title", doc.MetaData.Title,
		"notes", len(doc.Notes),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks.OnLayoutStart(ctx, len(doc.Notes))
	layoutStart := time.Now()
	l, err := ComputeLayout(doc, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, 0, result.Stats.LayoutTime, err)
		return nil, err
	}
	result.Layout = l
	result.Stats.Bars = l.NumberOfBars
	result.Stats.Columns = l.Columns()
	result.Stats.Width = layout.PixelSize(l.FinalWidth())
	result.Stats.Height = layout.PixelSize(l.FinalHeight())
	hooks.OnLayoutComplete(ctx, l.NumberOfBars, l.Columns(), result.Stats.LayoutTime, nil)

	r.Logger.Debug("computed layout",
		"bars", l.NumberOfBars,
		"columns", l.Columns(),
		"size", [2]int{result.Stats.Width, result.Stats.Height})

	// Stage 3: Render
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	png, hit, err := r.RenderWithCacheInfo(ctx, result.ChartHash, doc, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	if err != nil {
		return nil, err
	}
	result.PNG = png
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered sheet",
		"bars", l.NumberOfBars,
		"columns", l.Columns(),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	if opts.Output != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := io.WriteFile(opts.Output, png); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// RenderWithCacheInfo renders the sheet, reusing a cached PNG when the
// chart hash and every render setting match. It reports whether the cache
// was hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, chartHash string, doc *score.Document, l layout.Layout, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	fh, err := fontHash(opts)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.ArtifactKey(chartHash, opts.ArtifactKeyOpts(fh))
	cacheHooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			cacheHooks.OnCacheHit(ctx, keyTypeArtifact)
			return data, true, nil
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		cacheHooks.OnCacheMiss(ctx, keyTypeArtifact)
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, FormatPNG)
	start := time.Now()
	png, err := RenderFromLayout(doc, l, opts)
	hooks.OnRenderComplete(ctx, FormatPNG, len(png), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, png, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	} else {
		cacheHooks.OnCacheSet(ctx, keyTypeArtifact, len(png))
	}
	return png, false, nil
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
