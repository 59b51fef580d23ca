// Package pipeline provides the core rendering pipeline for techradar.
//
// This package implements the complete load → layout → render pipeline
// shared by the CLI commands. By centralizing this logic, we ensure
// consistent behavior across entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read radar items from a CSV/TSV file or the sample dataset
//  2. Layout: Assemble the chart (placement plus overlap relaxation)
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, CSV)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "radar.csv",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/radarhq/techradar/pkg/cache"
	"github.com/radarhq/techradar/pkg/errors"
	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for All Entry Points
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 800

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidFormats is the ordered set of supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatCSV}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
type Options struct {
	// Load options
	Input        string `json:"input,omitempty"`
	UseSample    bool   `json:"use_sample,omitempty"`
	TaxonomyPath string `json:"taxonomy,omitempty"`

	// Layout options
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
	Section string `json:"section,omitempty"` // non-empty selects the detail view

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Title   string   `json:"title,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Dataset is the output of the load stage.
type Dataset struct {
	Items    []radar.Item
	Taxonomy radar.Taxonomy

	// Warnings carries per-row load diagnostics (skipped records).
	Warnings []string

	// Hash is the content hash of the normalized dataset, used as the
	// basis for all downstream cache keys.
	Hash string
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution in logs.
	RunID string

	// Dataset is the loaded input data.
	Dataset *Dataset

	// Layout is the serialized chart layout (positions, rings, glyphs).
	Layout sink.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount    int
	SkippedCount int
	LoadTime     time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" && !o.UseSample {
		return errors.New(errors.ErrCodeInvalidInput, "input file or sample dataset is required")
	}
	if o.Input != "" && o.UseSample {
		return errors.New(errors.ErrCodeInvalidInput, "input file and sample dataset are mutually exclusive")
	}
	if o.Input != "" {
		if err := errors.ValidatePath(o.Input); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates layout and render options.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	return nil
}

// IsDetail reports whether the options select a per-section detail view.
func (o *Options) IsDetail() bool {
	return o.Section != ""
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:   o.Width,
		Height:  o.Height,
		Section: o.Section,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Layout-affecting options need no entry here: artifact keys are built
// from the layout hash, which already encodes them.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
		Title:  o.Title,
	}
}
