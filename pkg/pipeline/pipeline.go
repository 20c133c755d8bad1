// Package pipeline provides the core chart production pipeline for Cascade.
//
// This package implements the complete layout → render pipeline that can
// be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Compute bar geometry from the category dataset
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Title:      "Quarterly Revenue",
//	    Categories: categories,
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	g, err := runner.ComputeLayout(ctx, opts)
//
//	// Render with existing geometry
//	artifacts, err := runner.Render(ctx, g, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cascade/pkg/cache"
	"github.com/matzehuels/cascade/pkg/chart"
	"github.com/matzehuels/cascade/pkg/chart/layout"
	"github.com/matzehuels/cascade/pkg/errors"
	"github.com/matzehuels/cascade/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultStyle is the default visual style.
const DefaultStyle = sink.StyleDefault

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	sink.StyleDefault: true,
	sink.StyleMinimal: true,
}

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Data options
	Title      string           `json:"title,omitempty"`
	Categories []chart.Category `json:"categories"`

	// Layout options
	Chart chart.Config `json:"chart,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`

	// Refresh forces recomputation, bypassing cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Geometry is the computed layout snapshot.
	Geometry *layout.Geometry

	// DataHash is the content hash of the input dataset.
	DataHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BarCount       int
	ConnectorCount int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether geometry came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid style: %q (must be one of: default, minimal)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the dataset and applies layout defaults.
func (o *Options) ValidateForLayout() error {
	if err := chart.ValidateCategories(o.Categories); err != nil {
		return err
	}
	if err := o.Chart.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// LayoutKeyOpts returns cache key options for layout computation. Every
// config field that influences geometry must appear here, margins
// included, or distinct layouts would share a cache entry.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	padding := chart.DefaultBarPadding
	if o.Chart.BarPadding != nil {
		padding = *o.Chart.BarPadding
	}
	return cache.LayoutKeyOpts{
		Width:        o.Chart.Width,
		Height:       o.Chart.Height,
		MarginTop:    o.Chart.Margin.Top,
		MarginRight:  o.Chart.Margin.Right,
		MarginBottom: o.Chart.Margin.Bottom,
		MarginLeft:   o.Chart.Margin.Left,
		Stacked:      o.Chart.Stacked,
		ShowTotal:    o.Chart.ShowTotal,
		TotalLabel:   o.Chart.TotalLabel,
		TotalColor:   o.Chart.TotalColor,
		BarPadding:   padding,
		ScaleType:    o.Chart.ScaleType,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering. The
// title is part of the key because sinks draw it into the artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Title:  o.Title,
	}
}
