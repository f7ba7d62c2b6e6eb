// Package pipeline provides the chart to score sheet pipeline.
//
// This package implements the complete load → layout → render pipeline used
// by the CLI. Keeping it out of the CLI means every entry point caches,
// reports and fails the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the chart file and decode it into a score document
//  2. Layout: Size the sheet from the latest note end
//  3. Render: Draw the sheet and encode it as PNG
//
// The encoded sheet is cached under a key derived from the chart bytes and
// every render setting, so re-rendering an unchanged chart skips stage 3.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "chart.json",
//	    Output: "chart.png",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Stats.Columns, "columns")
//
// Run individual stages:
//
//	doc, data, err := pipeline.Load(opts)
//	l, err := pipeline.ComputeLayout(doc, opts)
//	png, err := pipeline.RenderFromLayout(doc, l, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scoresheet/pkg/cache"
	"github.com/matzehuels/scoresheet/pkg/errors"
	"github.com/matzehuels/scoresheet/pkg/fonts"
	"github.com/matzehuels/scoresheet/pkg/render/sheet/layout"
	"github.com/matzehuels/scoresheet/pkg/score"
)

// FormatPNG is the only output format.
const FormatPNG = "png"

// Options contains all configuration for the render pipeline.
type Options struct {
	// Input is the chart file path.
	Input string
	// Output is where the PNG is written. Empty keeps the PNG in memory only.
	Output string

	// Layout options. A zero value selects layout.DefaultSettings.
	Layout layout.Settings

	// Render options
	Font       string  // metadata font path, empty for the embedded face
	FontSize   float64 // metadata font size, 0 for fonts.DefaultMetaSize
	NoMetadata bool

	// Refresh re-renders even when a cached sheet exists.
	Refresh bool

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the decoded chart.
	Document *score.Document

	// ChartHash is the content hash of the chart file.
	ChartHash string

	// Layout is the sheet geometry.
	Layout layout.Layout

	// PNG is the encoded sheet.
	PNG []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Notes      int
	Bars       int
	Columns    int
	Width      int
	Height     int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the encoded sheet came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input chart is required")
	}
	o.setLoggerDefault()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Layout == (layout.Settings{}) {
		o.Layout = layout.DefaultSettings()
	}
	o.setLoggerDefault()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.Layout.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.FontSize == 0 {
		o.FontSize = fonts.DefaultMetaSize
	}
	o.setLoggerDefault()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.FontSize < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "font size must be positive, got %v", o.FontSize)
	}
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactKeyOpts returns cache key options for the rendered sheet.
func (o *Options) ArtifactKeyOpts(fontHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     FormatPNG,
		Layout:     o.Layout,
		FontHash:   fontHash,
		FontSize:   o.FontSize,
		NoMetadata: o.NoMetadata,
	}
}
