// Package pkg provides the core libraries for Cascade chart layout and rendering.
//
// # Overview
//
// Cascade transforms tabular category data into waterfall and stacked bar
// chart geometry, then renders that geometry to SVG, PNG, PDF, or JSON.
// The pkg directory is organized into these areas:
//
//  1. [chart] - Domain logic (data model, aggregation, scales, layout)
//  2. [render] - Output sinks (SVG, PNG, PDF, JSON)
//  3. [pipeline] - Orchestration (layout → render with caching)
//  4. [cache], [store] - Infrastructure (content-addressed cache, chart store)
//  5. [io] - Definition import and geometry export
//
// # Architecture
//
// The typical data flow through Cascade:
//
//	Definition file (JSON/TOML)
//	         ↓
//	    [chart] package (validate, aggregate running totals)
//	         ↓
//	    [chart/scale] package (scale selection + nice domains)
//	         ↓
//	    [chart/layout] package (margins, bars, connectors, labels)
//	         ↓
//	    [render/sink] package
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Compute a layout and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/cascade/pkg/chart"
//	    "github.com/matzehuels/cascade/pkg/chart/layout"
//	    "github.com/matzehuels/cascade/pkg/render/sink"
//	)
//
//	categories := []chart.Category{
//	    {Label: "Q1", Stacks: []chart.Segment{{Value: 45, Color: "#3498db"}}},
//	    {Label: "Q2", Stacks: []chart.Segment{{Value: -15, Color: "#e74c3c"}}},
//	}
//
//	g, err := layout.Build(categories, chart.Config{ShowTotal: true})
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(g, sink.WithTitle("Revenue"))
//
// The [pipeline] package wraps the same flow with content-addressed
// caching for repeated runs, and internal/server exposes it over HTTP.
package pkg
